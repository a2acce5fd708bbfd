package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardpack/internal/card"
)

var showCmd = &cobra.Command{
	Use:   "show [rank] [suit]",
	Short: "Display information about a specific card",
	Long: `Show displays a card's names, ordering value and weights.
Use identifiers like 'ace spades' or 'fool major-arcana'.

You can specify a variant using the --deck flag. If no variant is specified,
the default variant from your config will be used.

Examples:
  cardpack show ace spades
  cardpack show --deck pinochle ten hearts
  cardpack show --deck tarot hermit major-arcana --lang de`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		deckFlag, _ := cmd.Flags().GetString("deck")
		var variant []string
		if deckFlag != "" {
			variant = []string{deckFlag}
		}

		f, err := s.family(variant)
		if err != nil {
			return err
		}

		c, ok := f.Card(card.Identifier(args[0]), card.Identifier(args[1]))
		if !ok {
			return fmt.Errorf("card not found in %s deck: %s %s", f.Name, args[0], args[1])
		}

		return displayCard(s, c, f.Name)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Specify a deck variant")
}

// displayCard prints the card's details
func displayCard(s *session, c card.Card, variant string) error {
	name, err := c.Name(s.bundle, s.lang)
	if err != nil {
		return err
	}
	short, err := c.Localized(s.bundle, s.lang)
	if err != nil {
		return err
	}
	suitLong, err := c.Suit.Long(s.bundle, s.lang)
	if err != nil {
		return err
	}
	suitSymbol, err := c.Suit.Symbol(s.bundle, s.lang)
	if err != nil {
		return err
	}
	rankLong, err := c.Rank.Long(s.bundle, s.lang)
	if err != nil {
		return err
	}
	rankIndex, err := c.Rank.Index(s.bundle, s.lang)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + colorize.CyanString("Card:  ") + paint(c, short) + " " + colorize.HiWhiteString(name))
	fmt.Println("  " + colorize.CyanString("Deck:  ") + colorize.HiWhiteString(variant))
	fmt.Println("  " + colorize.CyanString("ID:    ") + colorize.HiWhiteString("%s.%s", c.Suit.Name, c.Rank.Name))
	fmt.Println("  " + colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s · %s (value %d)", suitLong, suitSymbol, c.Suit.Value))
	fmt.Println("  " + colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s · %s (weight %d)", rankLong, rankIndex, c.Rank.Weight))
	fmt.Println("  " + colorize.CyanString("Value: ") + colorize.HiWhiteString("%d", c.Value))
	fmt.Println()

	return nil
}
