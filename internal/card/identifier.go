package card

import (
	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/locale"
)

// Identifier is the stable semantic name of a suit or rank. It is both the
// weight lookup key and the locale template key, so published identifiers
// never change.
type Identifier string

// French deck ranks
const (
	Ace   Identifier = "ace"
	King  Identifier = "king"
	Queen Identifier = "queen"
	Jack  Identifier = "jack"
	Ten   Identifier = "ten"
	Nine  Identifier = "nine"
	Eight Identifier = "eight"
	Seven Identifier = "seven"
	Six   Identifier = "six"
	Five  Identifier = "five"
	Four  Identifier = "four"
	Three Identifier = "three"
	Two   Identifier = "two"
)

// Jokers
const (
	BigJoker    Identifier = "big-joker"
	LittleJoker Identifier = "little-joker"
)

// Skat ranks
const (
	Daus  Identifier = "daus"
	Ober  Identifier = "ober"
	Unter Identifier = "unter"
)

// Tarot ranks
const (
	Fool       Identifier = "fool"
	Magician   Identifier = "magician"
	Priestess  Identifier = "priestess"
	Empress    Identifier = "empress"
	Emperor    Identifier = "emperor"
	Hierophant Identifier = "hierophant"
	Lovers     Identifier = "lovers"
	Chariot    Identifier = "chariot"
	Strength   Identifier = "strength"
	Hermit     Identifier = "hermit"
	Fortune    Identifier = "fortune"
	Justice    Identifier = "justice"
	Hanged     Identifier = "hanged"
	Death      Identifier = "death"
	Temperance Identifier = "temperance"
	Devil      Identifier = "devil"
	Tower      Identifier = "tower"
	Star       Identifier = "star"
	Moon       Identifier = "moon"
	Sun        Identifier = "sun"
	Judgement  Identifier = "judgement"
	World      Identifier = "world"
	Knight     Identifier = "knight"
	Page       Identifier = "page"
)

// Suits
const (
	Spades   Identifier = "spades"
	Hearts   Identifier = "hearts"
	Diamonds Identifier = "diamonds"
	Clubs    Identifier = "clubs"

	MajorArcana Identifier = "major-arcana"
	Wands       Identifier = "wands"
	Cups        Identifier = "cups"
	Swords      Identifier = "swords"
	Pentacles   Identifier = "pentacles"

	Eichel   Identifier = "eichel"
	Laub     Identifier = "laub"
	Herz     Identifier = "herz"
	Schellen Identifier = "schellen"
)

// Of joins a rank and a suit in long card names ("Ace of Spades").
const Of Identifier = "of"

func (id Identifier) String() string {
	return string(id)
}

// Key returns the locale template key for suffix.
func (id Identifier) Key(suffix string) string {
	return locale.Key(string(id), suffix)
}

// DefaultWeight looks up the identifier in the default weight template.
func (id Identifier) DefaultWeight() int {
	return locale.Default().Weight(string(id))
}

// Display resolves the identifier's suffix entry for lang.
func (id Identifier) Display(r locale.Resolver, suffix string, lang language.Tag) (string, error) {
	return r.Lookup(lang, id.Key(suffix))
}

// display is the en-US form used by String methods; a miss degrades to
// the raw identifier.
func (id Identifier) display(suffix string) string {
	s, err := id.Display(locale.Default(), suffix, locale.USEnglish)
	if err != nil {
		return string(id)
	}
	return s
}
