// Package template emits empty spreadsheet templates carrying the canonical
// header rows, optionally pre-filled with the deterministic barcode or well
// enumeration, so labs start from a sheet the merger will accept.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/biosurvintl/merger-cli/internal/schema"
	"github.com/biosurvintl/merger-cli/internal/table"
)

// Kind selects which template to generate.
type Kind string

const (
	KindBarcodes    Kind = "barcodes"
	KindLabInfo     Kind = "labinfo"
	KindSampleSheet Kind = "sample"
)

// Kinds lists the supported template kinds.
var Kinds = []Kind{KindBarcodes, KindLabInfo, KindSampleSheet}

// Generate writes the template of the given kind into destDir and returns
// the output path.
func Generate(kind Kind, destDir string) (string, error) {
	switch kind {
	case KindBarcodes:
		return barcodes(destDir)
	case KindLabInfo:
		return labInfo(destDir)
	case KindSampleSheet:
		return sampleSheet(destDir)
	default:
		return "", fmt.Errorf("unknown template kind %q", kind)
	}
}

// DefaultDir is the well-known output directory for templates: the
// operator's Downloads folder, falling back to the working directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// barcodes emits template_barcodes.csv: a sample/barcode pairing sheet with
// the 96 barcode labels pre-filled.
func barcodes(destDir string) (string, error) {
	t := table.New(schema.KeySample, schema.KeyBarcode)
	for n := 1; n <= 96; n++ {
		t.Rows = append(t.Rows, []string{"", fmt.Sprintf("barcode%02d", n)})
	}
	path := filepath.Join(destDir, "template_barcodes.csv")
	if err := t.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// labInfo emits template_labinfo.csv: the full lab info layout with the Well
// column pre-filled A01..H12 row-major across a 96-well plate.
func labInfo(destDir string) (string, error) {
	t := table.New(schema.LabInfoColumns...)
	wellIdx := slices.Index(schema.LabInfoColumns, "Well")
	for _, well := range wells() {
		row := make([]string, len(schema.LabInfoColumns))
		row[wellIdx] = well
		t.Rows = append(t.Rows, row)
	}
	path := filepath.Join(destDir, "template_labinfo.csv")
	if err := t.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// sampleSheet emits sample_template.csv: the header-only canonical sample
// sheet for the barcodes merge.
func sampleSheet(destDir string) (string, error) {
	t := table.New(schema.SampleSheetColumns...)
	path := filepath.Join(destDir, "sample_template.csv")
	if err := t.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// wells enumerates plate positions A01..H12, row-major.
func wells() []string {
	out := make([]string, 0, 96)
	for row := 'A'; row <= 'H'; row++ {
		for col := 1; col <= 12; col++ {
			out = append(out, fmt.Sprintf("%c%02d", row, col))
		}
	}
	return out
}
