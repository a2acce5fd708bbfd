package card

import (
	"cmp"

	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/locale"
)

// Suit is a suit identifier plus the value used for suit-major ordering.
type Suit struct {
	Value int
	Name  Identifier
}

// Direction controls how SuitsFromArray assigns values by position.
type Direction int

const (
	// TopDown gives the first identifier the highest value.
	TopDown Direction = iota
	// BottomUp gives the first identifier the lowest value.
	BottomUp
)

// suitValues is the canonical value of each known suit within its family.
var suitValues = map[Identifier]int{
	Spades:   4,
	Hearts:   3,
	Diamonds: 2,
	Clubs:    1,

	MajorArcana: 5,
	Wands:       4,
	Cups:        3,
	Swords:      2,
	Pentacles:   1,

	Eichel:   4,
	Laub:     3,
	Herz:     2,
	Schellen: 1,
}

// NewSuit returns the suit with its canonical value, or 0 if it has none.
func NewSuit(id Identifier) Suit {
	return NewSuitWithValue(id, suitValues[id])
}

// NewSuitWithValue returns a suit with an explicit value.
func NewSuitWithValue(id Identifier, value int) Suit {
	return Suit{Value: value, Name: id}
}

// SuitsFromArray assigns values to ids by position.
func SuitsFromArray(ids []Identifier, dir Direction) []Suit {
	suits := make([]Suit, 0, len(ids))
	for i, id := range ids {
		value := len(ids) - i
		if dir == BottomUp {
			value = i + 1
		}
		suits = append(suits, NewSuitWithValue(id, value))
	}
	return suits
}

// FrenchSuits returns spades, hearts, diamonds, clubs (high to low).
func FrenchSuits() []Suit {
	return SuitsFromArray([]Identifier{Spades, Hearts, Diamonds, Clubs}, TopDown)
}

// ArcanaSuits returns the major arcana followed by the four minor suits.
func ArcanaSuits() []Suit {
	return SuitsFromArray([]Identifier{MajorArcana, Wands, Cups, Swords, Pentacles}, TopDown)
}

// SkatSuits returns the German suits (high to low).
func SkatSuits() []Suit {
	return SuitsFromArray([]Identifier{Eichel, Laub, Herz, Schellen}, TopDown)
}

// Compare orders suits by value, then name.
func (s Suit) Compare(other Suit) int {
	if c := cmp.Compare(s.Value, other.Value); c != 0 {
		return c
	}
	return cmp.Compare(s.Name, other.Name)
}

func (s Suit) Long(r locale.Resolver, lang language.Tag) (string, error) {
	return s.Name.Display(r, locale.Long, lang)
}

func (s Suit) Letter(r locale.Resolver, lang language.Tag) (string, error) {
	return s.Name.Display(r, locale.Letter, lang)
}

func (s Suit) Symbol(r locale.Resolver, lang language.Tag) (string, error) {
	return s.Name.Display(r, locale.Symbol, lang)
}

// String returns the suit symbol.
func (s Suit) String() string {
	return s.Name.display(locale.Symbol)
}
