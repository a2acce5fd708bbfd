package deck

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/locale"
)

// Family is a named deck variant: its suits, its ranks, the multiplier
// that folds them into card values, and the recipe that builds it.
// MinorRanks is only set for tarot, whose minor suits rank differently
// from the trumps in Ranks.
type Family struct {
	Name       string
	Multiplier card.Multiplier
	Suits      []card.Suit
	Ranks      []card.Rank
	MinorRanks []card.Rank

	// Weights supplies template weights for cards outside the rank list
	// (jokers). Nil means the built-in templates.
	Weights *locale.Bundle

	recipe func(Family) *Deck
}

// WithWeights returns a copy of f that takes template weights from b.
func (f Family) WithWeights(b *locale.Bundle) Family {
	f = f.clone()
	f.Weights = b
	return f
}

func (f Family) clone() Family {
	f.Suits = slices.Clone(f.Suits)
	f.Ranks = slices.Clone(f.Ranks)
	f.MinorRanks = slices.Clone(f.MinorRanks)
	return f
}

func (f Family) weights() *locale.Bundle {
	if f.Weights == nil {
		return locale.Default()
	}
	return f.Weights
}

// Build returns a fresh deck in recipe order.
func (f Family) Build() *Deck {
	return f.recipe(f)
}

// Card returns the family's card for rank and suit.
func (f Family) Card(rank, suit card.Identifier) (card.Card, bool) {
	for _, c := range f.Build().cards {
		if c.Rank.Name == rank && c.Suit.Name == suit {
			return c, true
		}
	}
	return card.Card{}, false
}

var (
	French = Family{
		Name:       "french",
		Multiplier: card.Hundred,
		Suits:      card.FrenchSuits(),
		Ranks:      card.FrenchRanks(),
		recipe:     crossProduct(1),
	}

	Pinochle = Family{
		Name:       "pinochle",
		Multiplier: card.Hundred,
		Suits:      card.FrenchSuits(),
		Ranks:      card.PinochleRanks(),
		recipe:     crossProduct(2),
	}

	Euchre = Family{
		Name:       "euchre",
		Multiplier: card.Hundred,
		Suits:      card.FrenchSuits(),
		Ranks:      card.EuchreRanks(),
		recipe:     crossProduct(1),
	}

	Canasta = Family{
		Name:       "canasta",
		Multiplier: card.Hundred,
		Suits:      card.FrenchSuits(),
		Ranks:      card.CanastaRanks(),
		recipe:     canasta,
	}

	Skat = Family{
		Name:       "skat",
		Multiplier: card.Hundred,
		Suits:      card.SkatSuits(),
		Ranks:      card.SkatRanks(),
		recipe:     crossProduct(1),
	}

	Tarot = Family{
		Name:       "tarot",
		Multiplier: card.Thousand,
		Suits:      card.ArcanaSuits(),
		Ranks:      card.MajorArcanaRanks(),
		MinorRanks: card.MinorArcanaRanks(),
		recipe:     tarot,
	}

	Spades = Family{
		Name:       "spades",
		Multiplier: card.Hundred,
		Suits:      card.FrenchSuits(),
		Ranks:      card.FrenchRanks(),
		recipe:     spades,
	}
)

var families = []Family{French, Pinochle, Euchre, Canasta, Skat, Tarot, Spades}

// Families returns a copy of every known variant.
func Families() []Family {
	out := make([]Family, 0, len(families))
	for _, f := range families {
		out = append(out, f.clone())
	}
	return out
}

// Lookup finds a variant by name, ignoring case.
func Lookup(name string) (Family, error) {
	for _, f := range families {
		if strings.EqualFold(f.Name, name) {
			return f.clone(), nil
		}
	}
	return Family{}, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
}

// crossProduct emits copies of every card, suit outer and rank inner.
func crossProduct(copies int) func(Family) *Deck {
	return func(f Family) *Deck {
		d := New()
		for _, suit := range f.Suits {
			for _, rank := range f.Ranks {
				c := f.Multiplier.FromStructs(rank, suit)
				for range copies {
					d.Add(c)
				}
			}
		}
		return d
	}
}

// Jokers returns the big and little joker of spades.
func Jokers(m card.Multiplier) *Deck {
	return JokersFrom(locale.Default(), m)
}

// JokersFrom returns the jokers weighted by b's templates.
func JokersFrom(b *locale.Bundle, m card.Multiplier) *Deck {
	return New(
		m.NewFrom(b, card.BigJoker, card.Spades),
		m.NewFrom(b, card.LittleJoker, card.Spades),
	)
}

// spades drops the two of clubs and the two of diamonds from a French
// deck and puts the jokers on top.
func spades(f Family) *Deck {
	d := crossProduct(1)(f)
	two := f.rankNamed(card.Two)
	d.RemoveCard(f.Multiplier.FromStructs(two, card.NewSuit(card.Clubs)))
	d.RemoveCard(f.Multiplier.FromStructs(two, card.NewSuit(card.Diamonds)))
	d.Prepend(JokersFrom(f.weights(), f.Multiplier))
	return d
}

// canasta is two French-suited decks plus four jokers.
func canasta(f Family) *Deck {
	d := crossProduct(2)(f)
	d.Append(JokersFrom(f.weights(), f.Multiplier))
	d.Append(JokersFrom(f.weights(), f.Multiplier))
	return d
}

// tarot builds the major arcana as a single group, then the minor suits.
func tarot(f Family) *Deck {
	d := New()
	for _, rank := range f.Ranks {
		d.Add(f.Multiplier.FromStructs(rank, f.Suits[0]))
	}
	for _, suit := range f.Suits[1:] {
		for _, rank := range f.MinorRanks {
			d.Add(f.Multiplier.FromStructs(rank, suit))
		}
	}
	return d
}

func (f Family) rankNamed(id card.Identifier) card.Rank {
	for _, r := range f.Ranks {
		if r.Name == id {
			return r
		}
	}
	return card.NewRankFrom(f.weights(), id)
}
