package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardpack/internal/config"
	"github.com/arcanaland/cardpack/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a locale directory",
	Long: `Validate checks that a locale directory can name every card of every deck variant.
It verifies the fallback language file, the shared core.toml (weights and suit
symbols) and reports keys that other languages leave to the fallback.

Without a path, the configured locale_dir or the locale library is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var localeDir string
		if len(args) > 0 {
			localeDir = args[0]
		} else {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			localeDir = cfg.GetLocaleDir()
			if localeDir == "" {
				localeDir = config.GetLocaleLibraryPath()
			}
		}

		logger.Debug("validating locales", "dir", localeDir)

		v := validator.NewValidator(localeDir)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Locales in '%s' cover every deck variant.\n", localeDir)
		} else {
			fmt.Printf("❌ Locales in '%s' have %d validation errors:\n", localeDir, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
