package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biosurvintl/merger-cli/internal/app"
	cfgpkg "github.com/biosurvintl/merger-cli/internal/config"
	"github.com/biosurvintl/merger-cli/internal/locale"
	"github.com/biosurvintl/merger-cli/internal/logging"
	"github.com/biosurvintl/merger-cli/internal/merge"
	"github.com/biosurvintl/merger-cli/internal/table"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagLocale string

	// Loaded configuration
	cfg *cfgpkg.Global
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "merger",
	Version: Version,
	Short:   "Merge sequencing-run spreadsheets into lab reports",
	Long: `Merger joins the spreadsheets produced around a poliovirus sequencing
run - Piranha classification reports, lab info sheets, and EpiInfo exports -
into the detailed run report and barcodes sheet the downstream pipeline
expects, validating every file against its required columns first.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", renderError(err))
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.merger/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "message language: en, fr, or pt (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{Locale: "en", LogLevel: "info", LogFormat: "text"}
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("locale") {
		cfg.Locale = flagLocale
	}
	if !locale.IsSupported(cfg.Locale) {
		fmt.Fprintf(os.Stderr, "⚠ Warning: unsupported locale %q, using en\n", cfg.Locale)
		cfg.Locale = "en"
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logging.Setup(level, cfg.LogFormat)
	slog.Debug("merger starting", "version", Version, "locale", cfg.Locale)
}

func localeTag() string {
	if cfg == nil {
		return "en"
	}
	return cfg.Locale
}

// renderError maps the typed merge failures onto the operator-facing message
// tables. Joined errors (schema failures collected across several input files)
// are rendered one per line so the operator sees every failing file at once.
// Anything untyped passes through as-is.
func renderError(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		parts := make([]string, len(errs))
		for i, e := range errs {
			parts[i] = renderError(e)
		}
		return strings.Join(parts, "\n")
	}

	tag := localeTag()

	var missing *merge.MissingInputError
	if errors.As(err, &missing) {
		names := make([]string, len(missing.Inputs))
		for i, in := range missing.Inputs {
			names[i] = locale.T(tag, string(in))
		}
		return locale.T(tag, "merge.missing_inputs", strings.Join(names, "\n"))
	}

	var schemaErr *merge.SchemaError
	if errors.As(err, &schemaErr) {
		return locale.T(tag, "merge.schema_missing",
			locale.T(tag, string(schemaErr.Input)), strings.Join(schemaErr.Missing, "\n"))
	}

	var mismatch *merge.JoinMismatchError
	if errors.As(err, &mismatch) {
		return locale.T(tag, "merge.join_mismatch")
	}

	var invalid *merge.InvalidOptionError
	if errors.As(err, &invalid) {
		return locale.T(tag, "merge.invalid_option",
			invalid.Field, invalid.Value, strings.Join(invalid.Allowed, ", "))
	}

	var write *table.WriteError
	if errors.As(err, &write) {
		return locale.T(tag, "merge.write_denied")
	}

	var unexpected *app.UnexpectedError
	if errors.As(err, &unexpected) {
		return locale.T(tag, "error.unexpected")
	}

	return err.Error()
}
