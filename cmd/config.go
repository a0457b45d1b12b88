package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/biosurvintl/merger-cli/internal/config"
	"github.com/biosurvintl/merger-cli/internal/locale"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set merger configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("locale: %s\n", cfg.Locale)
		fmt.Printf("template_dir: %s\n", cfg.TemplateDir)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		fmt.Printf("log_format: %s\n", cfg.LogFormat)
		fmt.Printf("log_dir: %s\n", cfg.LogDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "locale":
			if !locale.IsSupported(val) {
				return fmt.Errorf("invalid locale: %s (use en, fr, or pt)", val)
			}
			cfg.Locale = val
		case "template_dir":
			cfg.TemplateDir = val
		case "log_level":
			switch val {
			case "debug", "info", "warn", "error":
				cfg.LogLevel = val
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn, or error)", val)
			}
		case "log_format":
			switch val {
			case "text", "json":
				cfg.LogFormat = val
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		case "log_dir":
			cfg.LogDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
