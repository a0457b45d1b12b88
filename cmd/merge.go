package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/biosurvintl/merger-cli/internal/app"
	"github.com/biosurvintl/merger-cli/internal/locale"
	"github.com/biosurvintl/merger-cli/internal/merge"
)

var mergeReq merge.RunReportRequest

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a Piranha report, lab info sheet, and EpiInfo export into the detailed run report",
	Long: `Joins the three spreadsheets of one sequencing run into
<run-number>_detailed_run_report.csv: the Piranha classification report is
joined to the lab info sheet on sample id and barcode, then to the EpiInfo
export on sample id. Every file is validated against its required columns
before anything is merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.Run(app.ActionMergeRunReport, logDir(), func(log *slog.Logger) (string, error) {
			return merge.RunReport(log, mergeReq)
		})
		if err != nil {
			return err
		}
		fmt.Println("✓", locale.T(localeTag(), "merge.success", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	f := mergeCmd.Flags()
	f.StringVar(&mergeReq.PiranhaPath, "piranha", "", "Piranha detailed run report CSV")
	f.StringVar(&mergeReq.LabPath, "lab", "", "lab info sheet CSV")
	f.StringVar(&mergeReq.EpiPath, "epi", "", "EpiInfo export CSV")
	f.StringVar(&mergeReq.DestDir, "dest", "", "destination directory for the merged report")
	f.StringVar(&mergeReq.RunNumber, "run-number", "", "sequencing run number, used to name the output file")
}

func logDir() string {
	if cfg == nil {
		return "."
	}
	return cfg.LogDir
}
