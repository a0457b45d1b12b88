package merge

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/biosurvintl/merger-cli/internal/schema"
	"github.com/biosurvintl/merger-cli/internal/table"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// writeSheet writes a CSV fixture whose rows are keyed by column name; columns
// not mentioned stay empty.
func writeSheet(t *testing.T, dir, name string, header []string, rows ...map[string]string) string {
	t.Helper()
	tab := table.New(header...)
	for _, m := range rows {
		row := make([]string, len(header))
		for i, h := range header {
			row[i] = m[h]
		}
		tab.Rows = append(tab.Rows, row)
	}
	path := filepath.Join(dir, name)
	if err := tab.WriteFile(path); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// cell returns the value of the named column in row r.
func cell(t *testing.T, tab *table.Table, r int, col string) string {
	t.Helper()
	i := slices.Index(tab.Header, col)
	if i < 0 {
		t.Fatalf("column %s not in output", col)
	}
	return tab.Rows[r][i]
}

func runReportFixtures(t *testing.T, dir string) RunReportRequest {
	t.Helper()
	piranha := writeSheet(t, dir, "piranha.csv", schema.PiranhaColumns,
		map[string]string{
			"sample": "ENV-001", "barcode": "barcode01", "institute": "CDC",
			"Sabin1-related|num_reads": "1024", "Sabin1-related|classification": "Sabin1-related",
		},
		map[string]string{
			"sample": "ENV-002", "barcode": "barcode02", "institute": "CDC",
			"WPV1|classification": "WPV1",
		},
	)
	lab := writeSheet(t, dir, "lab.csv", schema.LabInfoColumns,
		map[string]string{
			"labid": "ENV-001", "barcode": "barcode01",
			"SequencingLab": "NPL-Chad", "Well": "A01", "RunNumber": "RUN42",
		},
		map[string]string{
			"labid": "ENV-002", "barcode": "barcode02",
			"SequencingLab": "NPL-Chad", "Well": "A02", "RunNumber": "RUN42",
		},
	)
	epi := writeSheet(t, dir, "epi.csv", schema.EpiInfoColumns,
		map[string]string{
			"ICLabID": "ENV-001", "EpidNumber": "TCD-ABC-23-001",
			"Country": "Côte d'Ivoire", "StoolCondition": "Adéquate",
		},
	)
	return RunReportRequest{
		PiranhaPath: piranha,
		LabPath:     lab,
		EpiPath:     epi,
		DestDir:     dir,
		RunNumber:   "RUN42",
	}
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	req := runReportFixtures(t, dir)

	path, err := RunReport(testLogger(), req)
	if err != nil {
		t.Fatalf("RunReport: %v", err)
	}
	if filepath.Base(path) != "RUN42_detailed_run_report.csv" {
		t.Errorf("output name = %s", filepath.Base(path))
	}

	out, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !reflect.DeepEqual(out.Header, schema.RunReportColumns) {
		t.Fatalf("output header does not match the canonical column order")
	}
	if out.Len() != 2 {
		t.Fatalf("rows = %d, want 2", out.Len())
	}

	// Lab and Piranha columns joined onto the driving sample.
	if got := cell(t, out, 0, "sample"); got != "ENV-001" {
		t.Errorf("sample = %q", got)
	}
	if got := cell(t, out, 0, "Well"); got != "A01" {
		t.Errorf("Well = %q", got)
	}
	if got := cell(t, out, 0, "Sabin1-related|num_reads"); got != "1024" {
		t.Errorf("num_reads = %q", got)
	}

	// Epi values ASCII-folded on the way in.
	if got := cell(t, out, 0, "Country"); got != "Cote d'Ivoire" {
		t.Errorf("Country = %q", got)
	}
	if got := cell(t, out, 0, "StoolCondition"); got != "Adequate" {
		t.Errorf("StoolCondition = %q", got)
	}

	// Sample without an epi record keeps empty epi columns.
	if got := cell(t, out, 1, "EpidNumber"); got != "" {
		t.Errorf("unmatched EpidNumber = %q", got)
	}

	// Post-analysis columns appended empty.
	if got := cell(t, out, 0, "DDNSclassification"); got != "" {
		t.Errorf("DDNSclassification = %q", got)
	}
}

func TestRunReportIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	req := runReportFixtures(t, dir)

	path, err := RunReport(testLogger(), req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RunReport(testLogger(), req); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("rerunning the merge changed the output bytes")
	}
}

func TestRunReportMissingInputs(t *testing.T) {
	_, err := RunReport(testLogger(), RunReportRequest{LabPath: "lab.csv"})
	var mi *MissingInputError
	if !errors.As(err, &mi) {
		t.Fatalf("err = %v, want MissingInputError", err)
	}
	want := []Input{InputPiranha, InputEpi, InputDestination, InputRunNumber}
	if !reflect.DeepEqual(mi.Inputs, want) {
		t.Errorf("inputs = %v, want %v", mi.Inputs, want)
	}
}

func TestRunReportSchemaErrorListsEveryColumn(t *testing.T) {
	dir := t.TempDir()
	req := runReportFixtures(t, dir)

	// Rewrite the lab sheet without two of its required columns.
	var short []string
	for _, c := range schema.LabInfoColumns {
		if c != "Well" && c != "RunNumber" {
			short = append(short, c)
		}
	}
	req.LabPath = writeSheet(t, dir, "lab_short.csv", short,
		map[string]string{"labid": "ENV-001", "barcode": "barcode01"})

	_, err := RunReport(testLogger(), req)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want SchemaError", err)
	}
	if se.Input != InputLab {
		t.Errorf("input = %s, want %s", se.Input, InputLab)
	}
	if !reflect.DeepEqual(se.Missing, []string{"Well", "RunNumber"}) {
		t.Errorf("missing = %v, want every absent column", se.Missing)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "RUN42_detailed_run_report.csv")); !os.IsNotExist(statErr) {
		t.Error("output file written despite schema error")
	}
}

func TestRunReportKeyMismatchAborts(t *testing.T) {
	dir := t.TempDir()
	req := runReportFixtures(t, dir)

	// Lab sheet from a different run: same shape, different barcodes.
	req.LabPath = writeSheet(t, dir, "lab_stale.csv", schema.LabInfoColumns,
		map[string]string{"labid": "ENV-001", "barcode": "barcode07"},
		map[string]string{"labid": "ENV-002", "barcode": "barcode08"})

	_, err := RunReport(testLogger(), req)
	var jm *JoinMismatchError
	if !errors.As(err, &jm) {
		t.Fatalf("err = %v, want JoinMismatchError", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "RUN42_detailed_run_report.csv")); !os.IsNotExist(statErr) {
		t.Error("output file written despite key mismatch")
	}
}
