package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/config"
	"github.com/arcanaland/cardpack/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build and print decks",
	Long:  `Commands for listing deck variants and printing, shuffling and sorting decks.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available deck variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		for _, f := range deck.Families() {
			line := fmt.Sprintf("%s (%d cards, x%d)", f.Name, f.Build().Len(), f.Multiplier)
			if f.Name == s.config.DefaultVariant {
				fmt.Printf("* %s [DEFAULT]\n", line)
			} else {
				fmt.Printf("  %s\n", line)
			}
		}
		return nil
	},
}

// deckPrintCmd represents the deck print command
var deckPrintCmd = &cobra.Command{
	Use:   "print [variant]",
	Short: "Print every card of a deck",
	Long: `Print builds a deck and prints its cards in the display language.

Examples:
  cardpack deck print
  cardpack deck print tarot --names --lang de
  cardpack deck print spades --shuffle --seed 42 --text`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		f, err := s.family(args)
		if err != nil {
			return err
		}

		d := f.Build()

		shuffle, _ := cmd.Flags().GetBool("shuffle")
		if shuffle {
			d = d.Shuffle(rngFromFlags(cmd))
		}

		sorted, _ := cmd.Flags().GetBool("sort")
		if sorted {
			d.Sort()
		}

		names, _ := cmd.Flags().GetBool("names")
		text, _ := cmd.Flags().GetBool("text")

		logger.Debug("printing deck", "variant", f.Name, "cards", d.Len(), "shuffle", shuffle, "sort", sorted)
		return printDeck(s, d, names, text)
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [variant]",
	Short: "Set the default deck variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := deck.Lookup(args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultVariant(f.Name); err != nil {
			return fmt.Errorf("error setting default variant: %w", err)
		}

		fmt.Printf("Default variant set to: %s\n", f.Name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and locale library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetLocaleLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating locale library: %w", err)
		}

		fmt.Println("Locale library initialized at:", libraryPath)
		fmt.Println("Add <language>.toml files and a core.toml here to override the built-in names.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckPrintCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckPrintCmd.Flags().Bool("shuffle", false, "Shuffle the deck before printing")
	deckPrintCmd.Flags().Uint64("seed", 0, "Seed for a reproducible shuffle (0 uses a random seed)")
	deckPrintCmd.Flags().Bool("sort", false, "Sort the deck, highest card first")
	deckPrintCmd.Flags().Bool("names", false, "Print long card names, one per line")
	deckPrintCmd.Flags().Bool("text", false, "Use suit letters instead of symbols")
}

// rngFromFlags returns a seeded source when --seed is set, or nil for the
// process-wide source.
func rngFromFlags(cmd *cobra.Command) deck.RNG {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		return nil
	}
	return deck.Seeded(seed)
}

func printDeck(s *session, d *deck.Deck, names, text bool) error {
	var words []string
	for _, c := range d.Cards() {
		label, err := cardLabel(s, c, names, text)
		if err != nil {
			return err
		}
		if names {
			fmt.Println(paint(c, label))
			continue
		}
		words = append(words, paint(c, label))
	}

	if !names {
		for _, line := range wrapText(strings.Join(words, " "), terminalWidth()) {
			fmt.Println(line)
		}
	}
	return nil
}

func cardLabel(s *session, c card.Card, names, text bool) (string, error) {
	switch {
	case names:
		return c.Name(s.bundle, s.lang)
	case text:
		return c.Text(s.bundle, s.lang)
	default:
		return c.Localized(s.bundle, s.lang)
	}
}
