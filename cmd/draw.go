package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardpack/internal/deck"
)

var drawCmd = &cobra.Command{
	Use:   "draw [variant]",
	Short: "Shuffle a deck and deal cards from the top",
	Long: `Draw shuffles a fresh deck and deals the requested number of cards.

Examples:
  cardpack draw -n 5
  cardpack draw tarot -n 3 --seed 7 --lang de`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if err := checkCount(n); err != nil {
			return err
		}

		s, err := loadSession()
		if err != nil {
			return err
		}

		f, err := s.family(args)
		if err != nil {
			return err
		}

		d := f.Build().Shuffle(rngFromFlags(cmd))

		slots, ok := d.DealSlots(n)
		if !ok {
			return fmt.Errorf("%w: asked for %d, %s deck has %d", deck.ErrInsufficientCards, n, f.Name, d.Len())
		}

		for i := range slots {
			c, _ := slots[i].Deal()
			short, err := c.Localized(s.bundle, s.lang)
			if err != nil {
				return err
			}
			name, err := c.Name(s.bundle, s.lang)
			if err != nil {
				return err
			}
			fmt.Printf("%2d. %s  %s\n", i+1, paint(c, short), name)
		}

		fmt.Println(colorize.CyanString("Remaining: ") + colorize.HiWhiteString("%d", d.Len()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
	drawCmd.Flags().Uint64("seed", 0, "Seed for a reproducible shuffle (0 uses a random seed)")
}

// checkCount rejects draw counts below one.
func checkCount(n int) error {
	if n < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", n)
	}
	return nil
}
