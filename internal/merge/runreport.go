// Package merge implements the two merge operations: the three-file detailed
// run report and the two-file barcodes sheet. Both follow the same shape:
// load, validate against the fixed schemas, normalize, left-join, project to
// the canonical column order, write atomically.
package merge

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/biosurvintl/merger-cli/internal/schema"
	"github.com/biosurvintl/merger-cli/internal/table"
)

// RunReportRequest names the inputs of the three-file merge.
type RunReportRequest struct {
	PiranhaPath string
	LabPath     string
	EpiPath     string
	DestDir     string
	RunNumber   string
}

func (r RunReportRequest) missingInputs() []Input {
	var missing []Input
	if r.PiranhaPath == "" {
		missing = append(missing, InputPiranha)
	}
	if r.LabPath == "" {
		missing = append(missing, InputLab)
	}
	if r.EpiPath == "" {
		missing = append(missing, InputEpi)
	}
	if r.DestDir == "" {
		missing = append(missing, InputDestination)
	}
	if r.RunNumber == "" {
		missing = append(missing, InputRunNumber)
	}
	return missing
}

// RunReport joins a Piranha classification report with the lab info and
// EpiInfo sheets into the detailed run report. Returns the output path.
//
// The Piranha report is the driving table: every classified sample appears in
// the output, with lab and epi columns empty where no match exists.
func RunReport(log *slog.Logger, req RunReportRequest) (string, error) {
	if missing := req.missingInputs(); len(missing) > 0 {
		return "", &MissingInputError{Inputs: missing}
	}

	piranha, err := loadInput(InputPiranha, req.PiranhaPath, schema.PiranhaColumns)
	lab, labErr := loadInput(InputLab, req.LabPath, schema.LabInfoColumns)
	epi, epiErr := loadInput(InputEpi, req.EpiPath, schema.EpiInfoColumns)
	// Surface schema problems from every file in one pass rather than making
	// the operator fix them one upload at a time.
	if err = errors.Join(err, labErr, epiErr); err != nil {
		return "", err
	}
	log.Info("inputs loaded",
		"piranha_rows", piranha.Len(), "lab_rows", lab.Len(), "epi_rows", epi.Len())

	epi.FoldASCIIColumns(schema.EpiInfoColumns...)
	epi.Rename(schema.EpiInfoRename)
	piranha.Rename(schema.PiranhaRename)
	lab.FoldASCIIHeader()

	piranha.TrimColumns(schema.KeyLabID, schema.KeyBarcode)
	lab.TrimColumns(schema.KeyLabID, schema.KeyBarcode)
	epi.TrimColumns(schema.KeyLabID)

	equal, err := piranha.KeyColumnsEqual(lab, schema.KeyLabID, schema.KeyBarcode)
	if err != nil {
		return "", err
	}
	if !equal {
		// The sheets are produced from the same physical run; disagreement
		// means one of them is stale or hand-edited. Abort rather than emit a
		// misaligned report.
		return "", &JoinMismatchError{
			Left:  InputPiranha,
			Right: InputLab,
			Keys:  []string{schema.KeyLabID, schema.KeyBarcode},
		}
	}

	merged, err := piranha.LeftJoin(lab, schema.KeyLabID, schema.KeyBarcode)
	if err != nil {
		return "", err
	}
	merged, err = merged.LeftJoin(epi, schema.KeyLabID)
	if err != nil {
		return "", err
	}
	merged.Rename(schema.RunReportRename)
	for _, col := range schema.ExtraInfoColumns {
		merged.SetConstant(col, "")
	}
	out, err := merged.Select(schema.RunReportColumns...)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(req.DestDir, req.RunNumber+"_detailed_run_report.csv")
	if err := out.WriteFile(dest); err != nil {
		return "", err
	}
	log.Info("run report written", "path", dest, "rows", out.Len())
	return dest, nil
}

// loadInput reads one CSV input and projects it onto its required schema.
func loadInput(in Input, path string, cols []string) (*table.Table, error) {
	t, err := table.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	return selectInput(in, t, cols)
}
