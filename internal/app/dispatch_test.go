package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biosurvintl/merger-cli/internal/logging"
)

func TestRunReturnsOpResult(t *testing.T) {
	path, err := Run(ActionGenerateTemplate, t.TempDir(), func(log *slog.Logger) (string, error) {
		return "/tmp/out.csv", nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if path != "/tmp/out.csv" {
		t.Errorf("path = %q", path)
	}
}

func TestRunPassesThroughOpError(t *testing.T) {
	want := errors.New("join failed")
	_, err := Run(ActionMergeRunReport, t.TempDir(), func(log *slog.Logger) (string, error) {
		return "", want
	})
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want the op error unchanged", err)
	}
}

func TestRunRecoversPanicIntoErrorLog(t *testing.T) {
	dir := t.TempDir()
	path, err := Run(ActionMergeBarcodes, dir, func(log *slog.Logger) (string, error) {
		var rows [][]string
		_ = rows[3] // out of range
		return "", nil
	})
	if path != "" {
		t.Errorf("path = %q, want empty after panic", path)
	}

	var ue *UnexpectedError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnexpectedError", err)
	}

	data, readErr := os.ReadFile(filepath.Join(dir, logging.ErrorLogName))
	if readErr != nil {
		t.Fatalf("error log not written: %v", readErr)
	}
	entry := string(data)
	if !strings.Contains(entry, "panic") || !strings.Contains(entry, string(ActionMergeBarcodes)) {
		t.Errorf("error log entry missing details: %q", entry)
	}
	if !strings.Contains(entry, "dispatch_test.go") {
		t.Errorf("error log entry carries no stack trace: %q", entry)
	}
}
