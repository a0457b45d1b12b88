// Package app dispatches command invocations to the merge and template
// operations, tagging each one with a unique id and converting panics into
// logged failures instead of crashes.
package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/biosurvintl/merger-cli/internal/logging"
)

// Action identifies one of the operations the tool can perform.
type Action string

const (
	ActionMergeRunReport   Action = "merge-run-report"
	ActionMergeBarcodes    Action = "merge-barcodes"
	ActionGenerateTemplate Action = "generate-template"
)

// UnexpectedError reports a recovered panic. The details have been appended
// to the error log at LogPath; the operator only gets a pointer to it.
type UnexpectedError struct {
	LogPath string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected failure, details logged to %s", e.LogPath)
}

// Op performs one operation and returns the path of the file it produced.
type Op func(log *slog.Logger) (string, error)

// Run executes op under a fresh invocation id. A panic inside op is recovered,
// appended to merger_error.log in logDir with its stack trace, and returned
// as an *UnexpectedError.
func Run(action Action, logDir string, op Op) (path string, err error) {
	id := uuid.NewString()
	log := logging.WithInvocation(id, string(action))

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		entry := fmt.Sprintf("invocation=%s action=%s panic: %v\n%s", id, action, r, debug.Stack())
		logPath, logErr := logging.AppendErrorLog(logDir, entry)
		if logErr != nil {
			log.Error("recovered panic, error log unwritable", "panic", fmt.Sprint(r), "log_error", logErr)
			logPath = logging.ErrorLogName
		} else {
			log.Error("recovered panic", "panic", fmt.Sprint(r), "log", logPath)
		}
		path = ""
		err = &UnexpectedError{LogPath: logPath}
	}()

	log.Info("starting")
	path, err = op(log)
	if err != nil {
		log.Error("failed", "error", err)
		return "", err
	}
	log.Info("done", "output", path)
	return path, nil
}
