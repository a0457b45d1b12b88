package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/biosurvintl/merger-cli/internal/app"
	"github.com/biosurvintl/merger-cli/internal/locale"
	"github.com/biosurvintl/merger-cli/internal/merge"
)

var barcodesReq merge.BarcodesRequest

var barcodesCmd = &cobra.Command{
	Use:   "barcodes",
	Short: "Merge a sample sheet and EpiInfo export into the barcodes sheet",
	Long: `Joins a sample/barcode sheet with an EpiInfo export on sample id and
stamps the run metadata entered on the command line into every row, producing
<run-number>_barcodes.csv for the analysis pipeline. The two input files may
be given in either order; the sample sheet is recognized by its header.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.Run(app.ActionMergeBarcodes, logDir(), func(log *slog.Logger) (string, error) {
			return merge.Barcodes(log, barcodesReq)
		})
		if err != nil {
			return err
		}
		fmt.Println("✓", locale.T(localeTag(), "merge.success", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(barcodesCmd)
	f := barcodesCmd.Flags()
	f.StringVar(&barcodesReq.LabPath, "lab", "", "sample/barcode sheet CSV")
	f.StringVar(&barcodesReq.EpiPath, "epi", "", "EpiInfo export CSV")
	f.StringVar(&barcodesReq.DestDir, "dest", "", "destination directory for the barcodes sheet")

	m := &barcodesReq.Meta
	f.StringVar(&m.RunNumber, "run-number", "", "sequencing run number, used to name the output file")
	f.StringVar(&m.DateSeqRunLoaded, "date-sequenced", "", "date the sequencing run was loaded")
	f.StringVar(&m.Sequencer, "sequencer", "", "sequencer used")
	f.StringVar(&m.FlowCellVersion, "flowcell-version", "", "flow cell version")
	f.StringVar(&m.FlowCellID, "flowcell-id", "", "flow cell id")
	f.StringVar(&m.FlowCellPriorUses, "flowcell-uses", "", "number of prior uses of the flow cell")
	f.StringVar(&m.PoresAvailable, "flowcell-pores", "", "pores available at flow cell check")
	f.StringVar(&m.RunHours, "run-hours", "", "run duration in hours")
	f.StringVar(&m.MinKNOWVersion, "minknow-version", "", "MinKNOW software version")
	f.StringVar(&m.DateFastaGenerated, "date-fasta", "", "date the fasta files were generated")
	f.StringVar(&m.PipelineVersion, "pipeline-version", "", "analysis pipeline version")
	f.StringVar(&m.RTPCRMachine, "rtpcr-machine", "", "rtPCR machine used")
	f.StringVar(&m.RTPCRPrimers, "rtpcr-primers", "", "rtPCR primers (Y7+Cre+nOPV2-mm, 5'NTR+Cre+nOPV2-mm, or 5'NTR+Cre)")
	f.StringVar(&m.VP1Machine, "vp1-machine", "", "VP1 PCR machine used")
	f.StringVar(&m.VP1Primers, "vp1-primers", "", "VP1 primers (Y7+Q8)")
}
