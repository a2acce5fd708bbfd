package card

import (
	"cmp"
	"fmt"

	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/locale"
)

// Multiplier folds a suit value and a rank weight into one card value. It
// must exceed every rank weight of its deck family so that comparing by
// value alone orders suit first, rank second.
type Multiplier int

const (
	Hundred  Multiplier = 100
	Thousand Multiplier = 1000
)

// Value returns suit.Value * m + rank.Weight.
func (m Multiplier) Value(suit Suit, rank Rank) int {
	return suit.Value*int(m) + rank.Weight
}

// Fits reports whether m exceeds every weight in ranks.
func (m Multiplier) Fits(ranks []Rank) bool {
	for _, r := range ranks {
		if r.Weight >= int(m) {
			return false
		}
	}
	return true
}

// New builds a card from identifiers using their default weights.
func (m Multiplier) New(rank, suit Identifier) Card {
	return m.FromStructs(NewRank(rank), NewSuit(suit))
}

// NewFrom builds a card from identifiers weighted by b's templates.
func (m Multiplier) NewFrom(b *locale.Bundle, rank, suit Identifier) Card {
	return m.FromStructs(NewRankFrom(b, rank), NewSuit(suit))
}

func (m Multiplier) FromStructs(rank Rank, suit Suit) Card {
	return Card{
		Value: m.Value(suit, rank),
		Suit:  suit,
		Rank:  rank,
	}
}

// Card is an immutable suit and rank pair with its derived total-order
// value.
type Card struct {
	Value int
	Suit  Suit
	Rank  Rank
}

// New builds a card from identifiers with the Hundred multiplier.
func New(rank, suit Identifier) Card {
	return Hundred.New(rank, suit)
}

// FromStructs builds a card with the Hundred multiplier.
func FromStructs(rank Rank, suit Suit) Card {
	return Hundred.FromStructs(rank, suit)
}

// Equal compares cards by value.
func (c Card) Equal(other Card) bool {
	return c.Value == other.Value
}

func (c Card) Compare(other Card) int {
	return cmp.Compare(c.Value, other.Value)
}

// Compare is Card.Compare in a form usable with slices.SortFunc.
func Compare(a, b Card) int {
	return a.Compare(b)
}

// Localized returns the rank index followed by the suit symbol, e.g. "A♠".
func (c Card) Localized(r locale.Resolver, lang language.Tag) (string, error) {
	index, err := c.Rank.Index(r, lang)
	if err != nil {
		return "", err
	}
	symbol, err := c.Suit.Symbol(r, lang)
	if err != nil {
		return "", err
	}
	return index + symbol, nil
}

// Text returns the rank index followed by the suit letter, e.g. "AS".
func (c Card) Text(r locale.Resolver, lang language.Tag) (string, error) {
	index, err := c.Rank.Index(r, lang)
	if err != nil {
		return "", err
	}
	letter, err := c.Suit.Letter(r, lang)
	if err != nil {
		return "", err
	}
	return index + letter, nil
}

// Name returns the long form, e.g. "Ace of Spades". Major arcana cards
// carry only their own name.
func (c Card) Name(r locale.Resolver, lang language.Tag) (string, error) {
	rank, err := c.Rank.Long(r, lang)
	if err != nil {
		return "", err
	}
	if c.Suit.Name == MajorArcana {
		return rank, nil
	}
	suit, err := c.Suit.Long(r, lang)
	if err != nil {
		return "", err
	}
	of, err := Of.Display(r, locale.Long, lang)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", rank, of, suit), nil
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
