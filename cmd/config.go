package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		localeDir := cfg.GetLocaleDir()
		if localeDir == "" {
			localeDir = "(built-in)"
		}

		fmt.Println(colorize.CyanString("Config file:     ") + config.GetConfigFilePath())
		fmt.Println(colorize.CyanString("Default variant: ") + cfg.DefaultVariant)
		fmt.Println(colorize.CyanString("Language:        ") + cfg.GetLanguage())
		fmt.Println(colorize.CyanString("Locales:         ") + localeDir)
		return nil
	},
}

var configSetLanguageCmd = &cobra.Command{
	Use:   "set-language [tag]",
	Short: "Set the display language (e.g. en-US, de)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := language.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid language %q: %w", args[0], err)
		}

		if err := config.SetLanguage(tag.String()); err != nil {
			return fmt.Errorf("error setting language: %w", err)
		}

		fmt.Printf("Language set to: %s\n", tag)
		return nil
	},
}

var configSetVariantCmd = &cobra.Command{
	Use:   "set-variant [variant]",
	Short: "Set the default deck variant",
	Args:  cobra.ExactArgs(1),
	RunE:  deckSetDefaultCmd.RunE,
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetVariantCmd)
	configCmd.AddCommand(configSetLanguageCmd)
}
