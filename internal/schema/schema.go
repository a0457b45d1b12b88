// Package schema declares the fixed column layouts of the laboratory
// spreadsheets the merger consumes and produces. Column names are carried
// verbatim from the production sheets, spelling quirks included; changing one
// here breaks compatibility with files already in circulation.
package schema

// Key column names shared across the layouts.
const (
	KeySample  = "sample"
	KeyLabID   = "labid"
	KeyBarcode = "barcode"
)

// EpiInfoColumns is the expected layout of an EpiInfo export for the detailed
// run report (three-file) merge, keyed by ICLabID.
var EpiInfoColumns = []string{
	"ICLabID",
	"EpidNumber",
	"CaseOrContact",
	"Country",
	"Province",
	"District",
	"StoolCondition",
	"SpecimenNumber",
	"DateOfOnset",
	"DateStoolCollected",
	"DateStoolSentfromField",
	"DateStoolReceivedNatLevel",
	"DateStoolSentToLab",
	"DateStoolReceivedinLab",
	"FinalCellCultureResult",
	"DateFinalCellCultureResults",
	"FinalITDResult",
	"DateFinalrRTPCRResults",
	"DateIsolateSentforSeq",
	"SequenceName",
	"DateSeqResult",
}

// EpiInfoBarcodeColumns is the reduced EpiInfo layout consumed by the
// barcodes (two-file) merge.
var EpiInfoBarcodeColumns = []string{
	"ICLabID",
	"EpidNumber",
	"CaseOrContact",
	"Country",
	"Province",
	"District",
	"StoolCondition",
	"SpecimenNumber",
	"DateOfOnset",
	"DateStoolCollected",
	"DateStoolReceivedinLab",
}

// LabInfoColumns is the expected layout of the lab info sheet for the
// detailed run report merge, keyed by labid + barcode.
var LabInfoColumns = []string{
	"labid",
	"barcode",
	"IsQCRetest",
	"IfRetestOriginalRun",
	"SequencingLab",
	"SampleType",
	"DelaysInProccessingForDDNS",
	"DetailsOfDelays",
	"DateRNAextraction",
	"ExtractionKit",
	"ExtractionType",
	"DateRTPCR",
	"RTPCRMachine",
	"RTPCRcomments",
	"DatePanEVPCR",
	"PanEVPCRMachine",
	"PanEVprimers",
	"PanEVPCRcomments",
	"DateVP1PCR",
	"VP1PCRMachine",
	"VP1primers",
	"VP1PCRcomments",
	"PositiveControlPCRCheck",
	"NegativeControlPCRCheck",
	"LibraryPreparationKit",
	"Well",
	"RunNumber",
	"DateSeqRunLoaded",
	"SequencerUsed",
	"FlowCellVersion",
	"FlowCellID",
	"FlowCellPriorUses",
	"PoresAvilableAtFlowCellCheck",
	"MinKNOWSoftwareVersion",
	"RunHoursDuration",
}

// piranhaGroups are the per-serotype classification groups in a Piranha
// report, each contributing five columns.
var piranhaGroups = []string{
	"NonPolioEV",
	"Sabin1-related",
	"Sabin2-related",
	"Sabin3-related",
	"WPV1",
	"WPV2",
	"WPV3",
	"PositiveControl",
}

var piranhaGroupFields = []string{
	"closest_reference",
	"num_reads",
	"nt_diff_from_reference",
	"pcent_match",
	"classification",
}

// PiranhaColumns is the expected layout of a Piranha classification report,
// keyed by sample + barcode.
var PiranhaColumns = buildPiranhaColumns()

func buildPiranhaColumns() []string {
	cols := []string{"sample", "barcode", "institute", "EPID"}
	for _, g := range piranhaGroups {
		for _, f := range piranhaGroupFields {
			cols = append(cols, g+"|"+f)
		}
	}
	return append(cols, "comments")
}

// ExtraInfoColumns are appended empty to the detailed run report for manual
// completion after analysis.
var ExtraInfoColumns = []string{
	"DateFastaGenerated",
	"AnalysisPipelineVersion",
	"RunQC",
	"DDNSclassification",
	"SampleQC",
	"SampleQCChecksComplete",
	"QCComments",
	"ToReport",
	"DateReported",
	"EmergenceGroupVDPV1",
	"EmergenceGroupVDPV2",
	"EmergenceGroupVDPV3",
}

// RunReportColumns is the canonical column order of the detailed run report
// written by the three-file merge.
var RunReportColumns = buildRunReportColumns()

func buildRunReportColumns() []string {
	cols := []string{
		"sample",
		"barcode",
		"EPID",
		"institute",
		"IsQCRetest",
		"IfRetestOriginalRun",
		"EpidNumber",
		"SequencingLab",
		"SampleType",
		"CaseOrContact",
		"Country",
		"Province",
		"District",
		"StoolCondition",
		"SpecimenNumber",
		"DateOfOnset",
		"DateStoolCollected",
		"DateStoolSentfromField",
		"DateStoolReceivedNatLevel",
		"DateStoolSentToLab",
		"DateStoolReceivedinLab",
		"FinalCellCultureResult",
		"DateFinalCellCultureResults",
		"FinalITDResult",
		"DateFinalrRTPCRResults",
		"DateIsolateSentforSeq",
		"SequenceName",
		"DateSeqResult",
		"DelaysInProccessingForDDNS",
		"DetailsOfDelays",
		"DateRNAextraction",
		"ExtractionKit",
		"ExtractionType",
		"DateRTPCR",
		"RTPCRMachine",
		"RTPCRcomments",
		"DatePanEVPCR",
		"PanEVPCRMachine",
		"PanEVprimers",
		"PanEVPCRcomments",
		"DateVP1PCR",
		"VP1PCRMachine",
		"VP1primers",
		"VP1PCRcomments",
		"PositiveControlPCRCheck",
		"NegativeControlPCRCheck",
		"LibraryPreparationKit",
		"Well",
		"RunNumber",
		"DateSeqRunLoaded",
		"SequencerUsed",
		"FlowCellVersion",
		"FlowCellID",
		"FlowCellPriorUses",
		"PoresAvilableAtFlowCellCheck",
		"MinKNOWSoftwareVersion",
		"RunHoursDuration",
	}
	cols = append(cols, ExtraInfoColumns...)
	for _, g := range piranhaGroups {
		for _, f := range piranhaGroupFields {
			cols = append(cols, g+"|"+f)
		}
	}
	return append(cols, "comments")
}

// SampleSheetColumns is both the canonical column order of the barcodes
// output and the expected layout of the sample sheet driving the two-file
// merge.
var SampleSheetColumns = []string{
	"sample",
	"barcode",
	"IsQCRetest",
	"IfRetestOriginalRun",
	"EPID",
	"SampleType",
	"CaseOrContact",
	"Country",
	"Province",
	"District",
	"StoolCondition",
	"SpecimenNumber",
	"DateOfOnset",
	"DateStoolCollected",
	"DateStoolReceivedinLab",
	"DateStoolsuspension",
	"DateRNAextraction",
	"DateRTPCR",
	"RTPCRMachine",
	"RTPCRprimers",
	"DateVP1PCR",
	"VP1PCRMachine",
	"VP1primers",
	"PositiveControlPCRCheck",
	"NegativeControlPCRCheck",
	"LibraryPreparationKit",
	"Well",
	"RunNumber",
	"DateSeqRunLoaded",
	"SequencerUsed",
	"FlowCellVersion",
	"FlowCellID",
	"FlowCellPriorUses",
	"PoresAvilableAtFlowCellCheck",
	"MinKNOWSoftwareVersion",
	"RunHoursDuration",
	"DateFastaGenerated",
	"AnalysisPipelineVersion",
	"RunQC",
	"DDNSclassification",
	"SampleQC",
	"SampleQCChecksComplete",
	"QCComments",
	"DateReported",
}

// EpiOwnedSampleColumns are the sample-sheet columns whose values come from
// the EpiInfo side of the two-file merge. They are dropped from the sample
// sheet before joining so the EpiInfo export stays authoritative.
var EpiOwnedSampleColumns = []string{
	"EPID",
	"CaseOrContact",
	"Country",
	"Province",
	"District",
	"StoolCondition",
	"SpecimenNumber",
	"DateOfOnset",
	"DateStoolCollected",
	"DateStoolReceivedinLab",
}

// Rename maps between source layouts and the canonical key names.
var (
	// EpiInfoRename maps the EpiInfo key for the three-file merge.
	EpiInfoRename = map[string]string{"ICLabID": "labid"}
	// EpiInfoBarcodeRename maps EpiInfo columns for the two-file merge.
	EpiInfoBarcodeRename = map[string]string{"ICLabID": "sample", "EpidNumber": "EPID"}
	// PiranhaRename aligns the Piranha sample key with the lab info key.
	PiranhaRename = map[string]string{"sample": "labid"}
	// RunReportRename restores the public key name before output.
	RunReportRename = map[string]string{"labid": "sample"}
)

// RTPCRPrimerOptions is the closed set of rtPCR primer choices.
var RTPCRPrimerOptions = []string{
	"Y7+Cre+nOPV2-mm",
	"5'NTR+Cre+nOPV2-mm",
	"5'NTR+Cre",
}

// VP1PrimerOptions is the closed set of VP1 primer choices.
var VP1PrimerOptions = []string{"Y7+Q8"}
