package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/biosurvintl/merger-cli/internal/app"
	"github.com/biosurvintl/merger-cli/internal/locale"
	"github.com/biosurvintl/merger-cli/internal/template"
)

var templateDest string

var templateCmd = &cobra.Command{
	Use:   "template <barcodes|labinfo|sample>",
	Short: "Generate an empty input template",
	Long: `Writes an empty spreadsheet template with the canonical header row:
"barcodes" for the sample/barcode pairing sheet (barcode01..barcode96
pre-filled), "labinfo" for the lab info sheet (wells A01..H12 pre-filled), and
"sample" for the header-only sample sheet.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(template.KindBarcodes), string(template.KindLabInfo), string(template.KindSampleSheet)},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := template.Kind(args[0])
		dest := templateDest
		if dest == "" {
			if cfg != nil && cfg.TemplateDir != "" {
				dest = cfg.TemplateDir
			} else {
				dest = template.DefaultDir()
			}
		}
		path, err := app.Run(app.ActionGenerateTemplate, logDir(), func(log *slog.Logger) (string, error) {
			return template.Generate(kind, dest)
		})
		if err != nil {
			return err
		}
		fmt.Println("✓", locale.T(localeTag(), "template.saved", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringVar(&templateDest, "dest", "", "destination directory (default is the configured template dir)")
}
