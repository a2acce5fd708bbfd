package card

import (
	"cmp"

	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/locale"
)

// Rank is a rank identifier plus the weight used for ordering within a
// suit.
type Rank struct {
	Weight int
	Name   Identifier
}

// NewRank returns the rank with its weight from the default weight
// template, so an ace is 14.
func NewRank(id Identifier) Rank {
	return NewRankWithWeight(id, id.DefaultWeight())
}

// NewRankFrom returns the rank weighted by b's weight template.
func NewRankFrom(b *locale.Bundle, id Identifier) Rank {
	return NewRankWithWeight(id, b.Weight(string(id)))
}

// NewRankWithWeight returns a rank with an explicit weight.
func NewRankWithWeight(id Identifier, weight int) Rank {
	return Rank{Weight: weight, Name: id}
}

// RanksFromArray assigns strictly decreasing weights by position, high to
// low: the first of n ids weighs n+1 and the last weighs 2.
func RanksFromArray(ids []Identifier) []Rank {
	ranks := make([]Rank, 0, len(ids))
	for i, id := range ids {
		ranks = append(ranks, NewRankWithWeight(id, len(ids)+1-i))
	}
	return ranks
}

func FrenchRanks() []Rank {
	return RanksFromArray([]Identifier{
		Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two,
	})
}

func PinochleRanks() []Rank {
	return RanksFromArray([]Identifier{Ace, Ten, King, Queen, Jack, Nine})
}

func EuchreRanks() []Rank {
	return RanksFromArray([]Identifier{Ace, King, Queen, Jack, Ten, Nine})
}

// CanastaRanks ranks deuces above aces.
func CanastaRanks() []Rank {
	return RanksFromArray([]Identifier{
		Two, Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three,
	})
}

func SkatRanks() []Rank {
	return RanksFromArray([]Identifier{Daus, King, Ober, Unter, Ten, Nine, Eight, Seven})
}

func MajorArcanaRanks() []Rank {
	return RanksFromArray([]Identifier{
		Fool, Magician, Priestess, Empress, Emperor, Hierophant, Lovers, Chariot, Strength,
		Hermit, Fortune, Justice, Hanged, Death, Temperance, Devil, Tower, Star, Moon, Sun,
		Judgement, World,
	})
}

func MinorArcanaRanks() []Rank {
	return RanksFromArray([]Identifier{
		King, Queen, Knight, Page, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two, Ace,
	})
}

// Compare orders ranks by weight, then name.
func (r Rank) Compare(other Rank) int {
	if c := cmp.Compare(r.Weight, other.Weight); c != 0 {
		return c
	}
	return cmp.Compare(r.Name, other.Name)
}

// Index is the short form printed in a card's corner.
func (r Rank) Index(res locale.Resolver, lang language.Tag) (string, error) {
	return r.Name.Display(res, locale.Index, lang)
}

func (r Rank) Long(res locale.Resolver, lang language.Tag) (string, error) {
	return r.Name.Display(res, locale.Long, lang)
}

// String returns the en-US index.
func (r Rank) String() string {
	return r.Name.display(locale.Index)
}
