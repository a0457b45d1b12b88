package merge

import (
	"slices"

	"github.com/biosurvintl/merger-cli/internal/schema"
)

// RunMeta carries the operator-entered run metadata copied verbatim into
// every row of the barcodes output. Values are opaque strings; only the
// primer choices are constrained, to their closed option sets.
type RunMeta struct {
	RunNumber          string
	DateSeqRunLoaded   string
	Sequencer          string
	FlowCellID         string
	FlowCellVersion    string
	FlowCellPriorUses  string
	PoresAvailable     string
	RunHours           string
	MinKNOWVersion     string
	DateFastaGenerated string
	PipelineVersion    string
	RTPCRMachine       string
	RTPCRPrimers       string
	VP1Machine         string
	VP1Primers         string
}

// Validate checks the primer choices against their option sets. Empty values
// pass; the sheets tolerate unfilled metadata.
func (m RunMeta) Validate() error {
	if m.RTPCRPrimers != "" && !slices.Contains(schema.RTPCRPrimerOptions, m.RTPCRPrimers) {
		return &InvalidOptionError{Field: "rtpcr-primers", Value: m.RTPCRPrimers, Allowed: schema.RTPCRPrimerOptions}
	}
	if m.VP1Primers != "" && !slices.Contains(schema.VP1PrimerOptions, m.VP1Primers) {
		return &InvalidOptionError{Field: "vp1-primers", Value: m.VP1Primers, Allowed: schema.VP1PrimerOptions}
	}
	return nil
}

// columns maps metadata fields onto their sample-sheet columns.
func (m RunMeta) columns() [][2]string {
	return [][2]string{
		{"RTPCRMachine", m.RTPCRMachine},
		{"RTPCRprimers", m.RTPCRPrimers},
		{"VP1PCRMachine", m.VP1Machine},
		{"VP1primers", m.VP1Primers},
		{"RunNumber", m.RunNumber},
		{"DateSeqRunLoaded", m.DateSeqRunLoaded},
		{"SequencerUsed", m.Sequencer},
		{"FlowCellVersion", m.FlowCellVersion},
		{"FlowCellID", m.FlowCellID},
		{"FlowCellPriorUses", m.FlowCellPriorUses},
		{"PoresAvilableAtFlowCellCheck", m.PoresAvailable},
		{"MinKNOWSoftwareVersion", m.MinKNOWVersion},
		{"RunHoursDuration", m.RunHours},
		{"DateFastaGenerated", m.DateFastaGenerated},
		{"AnalysisPipelineVersion", m.PipelineVersion},
	}
}
