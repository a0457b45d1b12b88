package merge

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/biosurvintl/merger-cli/internal/schema"
	"github.com/biosurvintl/merger-cli/internal/table"
)

// BarcodesRequest names the inputs of the two-file merge. LabPath and EpiPath
// may arrive swapped; the sample sheet is recognized by its header.
type BarcodesRequest struct {
	LabPath string
	EpiPath string
	DestDir string
	Meta    RunMeta
}

func (r BarcodesRequest) missingInputs() []Input {
	var missing []Input
	if r.LabPath == "" {
		missing = append(missing, InputLab)
	}
	if r.EpiPath == "" {
		missing = append(missing, InputEpi)
	}
	if r.DestDir == "" {
		missing = append(missing, InputDestination)
	}
	if r.Meta.RunNumber == "" {
		missing = append(missing, InputRunNumber)
	}
	return missing
}

// Barcodes joins the sample sheet with an EpiInfo export and stamps the
// operator-entered run metadata into every row, producing the
// <run>_barcodes.csv sheet consumed by the analysis pipeline. Returns the
// output path.
func Barcodes(log *slog.Logger, req BarcodesRequest) (string, error) {
	if missing := req.missingInputs(); len(missing) > 0 {
		return "", &MissingInputError{Inputs: missing}
	}
	if err := req.Meta.Validate(); err != nil {
		return "", err
	}

	first, err := table.ReadFile(req.LabPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", InputLab, err)
	}
	second, err := table.ReadFile(req.EpiPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", InputEpi, err)
	}
	lab, epi, err := orderInputs(first, second)
	if err != nil {
		return "", err
	}
	log.Info("inputs loaded", "lab_rows", lab.Len(), "epi_rows", epi.Len())

	lab, err = selectInput(InputLab, lab, schema.SampleSheetColumns)
	epiSel, epiErr := selectInput(InputEpi, epi, schema.EpiInfoBarcodeColumns)
	if err = errors.Join(err, epiErr); err != nil {
		return "", err
	}
	epi = epiSel

	epi.FoldASCIIColumns(schema.EpiInfoBarcodeColumns...)
	epi.Rename(schema.EpiInfoBarcodeRename)
	lab.FoldASCIIHeader()

	for _, cv := range req.Meta.columns() {
		lab.SetConstant(cv[0], cv[1])
	}

	// The sample sheet carries placeholder epi columns; the EpiInfo export is
	// authoritative for them.
	lab.Drop(schema.EpiOwnedSampleColumns...)
	lab.TrimColumns(schema.KeySample)
	epi.TrimColumns(schema.KeySample)

	merged, err := lab.LeftJoin(epi, schema.KeySample)
	if err != nil {
		return "", err
	}
	out, err := merged.Select(schema.SampleSheetColumns...)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(req.DestDir, req.Meta.RunNumber+"_barcodes.csv")
	if err := out.WriteFile(dest); err != nil {
		return "", err
	}
	log.Info("barcodes sheet written", "path", dest, "rows", out.Len())
	return dest, nil
}

// orderInputs decides which of the two tables is the driving sample sheet:
// the one whose first header cell ends in "sample". Files dropped in either
// order both work.
func orderInputs(a, b *table.Table) (lab, epi *table.Table, err error) {
	if firstColumnIsSample(a) {
		return a, b, nil
	}
	if firstColumnIsSample(b) {
		return b, a, nil
	}
	return nil, nil, &SchemaError{Input: InputLab, Missing: []string{schema.KeySample}}
}

func firstColumnIsSample(t *table.Table) bool {
	return len(t.Header) > 0 && strings.HasSuffix(t.Header[0], schema.KeySample)
}

// selectInput projects a loaded table onto its required schema, mapping the
// column mismatch to a SchemaError naming the input.
func selectInput(in Input, t *table.Table, cols []string) (*table.Table, error) {
	sel, err := t.Select(cols...)
	if err != nil {
		var mc *table.MissingColumnsError
		if errors.As(err, &mc) {
			return nil, &SchemaError{Input: in, Missing: mc.Missing}
		}
		return nil, err
	}
	return sel, nil
}
