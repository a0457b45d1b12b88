package template

import (
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/biosurvintl/merger-cli/internal/schema"
	"github.com/biosurvintl/merger-cli/internal/table"
)

func TestGenerateBarcodes(t *testing.T) {
	dir := t.TempDir()
	path, err := Generate(KindBarcodes, dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if filepath.Base(path) != "template_barcodes.csv" {
		t.Errorf("name = %s", filepath.Base(path))
	}

	out, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if !reflect.DeepEqual(out.Header, []string{"sample", "barcode"}) {
		t.Fatalf("header = %v", out.Header)
	}
	if out.Len() != 96 {
		t.Fatalf("rows = %d, want 96", out.Len())
	}
	for i, row := range out.Rows {
		if row[0] != "" {
			t.Fatalf("row %d sample = %q, want empty", i, row[0])
		}
		if want := fmt.Sprintf("barcode%02d", i+1); row[1] != want {
			t.Fatalf("row %d barcode = %q, want %q", i, row[1], want)
		}
	}
}

func TestGenerateLabInfo(t *testing.T) {
	dir := t.TempDir()
	path, err := Generate(KindLabInfo, dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if !reflect.DeepEqual(out.Header, schema.LabInfoColumns) {
		t.Fatal("header does not match the lab info layout")
	}
	if out.Len() != 96 {
		t.Fatalf("rows = %d, want 96", out.Len())
	}

	wellIdx := slices.Index(out.Header, "Well")
	if got := out.Rows[0][wellIdx]; got != "A01" {
		t.Errorf("first well = %q", got)
	}
	if got := out.Rows[12][wellIdx]; got != "B01" {
		t.Errorf("well 13 = %q, want B01", got)
	}
	if got := out.Rows[95][wellIdx]; got != "H12" {
		t.Errorf("last well = %q", got)
	}
}

func TestGenerateSampleSheet(t *testing.T) {
	dir := t.TempDir()
	path, err := Generate(KindSampleSheet, dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if filepath.Base(path) != "sample_template.csv" {
		t.Errorf("name = %s", filepath.Base(path))
	}

	out, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if !reflect.DeepEqual(out.Header, schema.SampleSheetColumns) {
		t.Fatal("header does not match the sample sheet layout")
	}
	if out.Len() != 0 {
		t.Errorf("rows = %d, want header only", out.Len())
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	if _, err := Generate(Kind("plates"), t.TempDir()); err == nil {
		t.Error("unknown kind accepted")
	}
}
