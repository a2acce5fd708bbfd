package deck

import (
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/card"
	"github.com/arcanaland/cardpack/internal/locale"
)

// Deck is an ordered sequence of cards. Duplicates are allowed. A Deck is
// not safe for concurrent mutation.
type Deck struct {
	cards []card.Card
}

// New returns a deck holding a copy of cards, in order.
func New(cards ...card.Card) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}

// Add puts c at the bottom of the deck.
func (d *Deck) Add(c card.Card) {
	d.cards = append(d.cards, c)
}

// Cards returns a copy of the deck's cards.
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Get returns the card at index i.
func (d *Deck) Get(i int) (card.Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return card.Card{}, false
	}
	return d.cards[i], true
}

func (d *Deck) First() (card.Card, bool) {
	return d.Get(0)
}

func (d *Deck) Last() (card.Card, bool) {
	return d.Get(len(d.cards) - 1)
}

// Random returns a card picked by rng without removing it.
func (d *Deck) Random(rng RNG) (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[source(rng).IntN(len(d.cards))], true
}

// Append adds a copy of other's cards after the deck's cards.
func (d *Deck) Append(other *Deck) {
	d.cards = append(d.cards, other.cards...)
}

// Prepend adds a copy of other's cards before the deck's cards.
func (d *Deck) Prepend(other *Deck) {
	d.cards = append(slices.Clone(other.cards), d.cards...)
}

// Contains reports whether a card equal to c is in the deck.
func (d *Deck) Contains(c card.Card) bool {
	_, ok := d.Position(c)
	return ok
}

// Position returns the index of the first card equal to c.
func (d *Deck) Position(c card.Card) (int, bool) {
	i := slices.IndexFunc(d.cards, c.Equal)
	return i, i >= 0
}

// Remove removes and returns the card at index i.
func (d *Deck) Remove(i int) (card.Card, bool) {
	c, ok := d.Get(i)
	if !ok {
		return card.Card{}, false
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	return c, true
}

// RemoveCard removes the first card equal to c. Other copies stay.
func (d *Deck) RemoveCard(c card.Card) (card.Card, bool) {
	i, ok := d.Position(c)
	if !ok {
		return card.Card{}, false
	}
	return d.Remove(i)
}

// Draw removes the first n cards and returns them as a new deck in their
// original order. It reports false and leaves the deck untouched when
// fewer than n cards remain.
func (d *Deck) Draw(n int) (*Deck, bool) {
	if n < 0 || n > len(d.cards) {
		return nil, false
	}
	drawn := New(d.cards[:n]...)
	d.cards = slices.Clone(d.cards[n:])
	return drawn, true
}

func (d *Deck) DrawFirst() (card.Card, bool) {
	return d.Remove(0)
}

func (d *Deck) DrawLast() (card.Card, bool) {
	return d.Remove(len(d.cards) - 1)
}

// DealSlots draws n cards, each into its own slot.
func (d *Deck) DealSlots(n int) ([]card.Slot, bool) {
	drawn, ok := d.Draw(n)
	if !ok {
		return nil, false
	}
	slots := make([]card.Slot, 0, n)
	for _, c := range drawn.cards {
		slots = append(slots, card.NewSlot(c))
	}
	return slots, true
}

// Shuffle returns a new deck holding a random permutation of the deck's
// cards. A nil rng uses the process-wide source.
func (d *Deck) Shuffle(rng RNG) *Deck {
	shuffled := New(d.cards...)
	r := source(rng)
	for i := len(shuffled.cards) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		shuffled.cards[i], shuffled.cards[j] = shuffled.cards[j], shuffled.cards[i]
	}
	return shuffled
}

// Sort orders the deck highest value first.
func (d *Deck) Sort() {
	slices.SortStableFunc(d.cards, card.Compare)
	slices.Reverse(d.cards)
}

// Equal reports whether both decks hold equal cards in the same order.
func (d *Deck) Equal(other *Deck) bool {
	return slices.EqualFunc(d.cards, other.cards, card.Card.Equal)
}

// Localized renders every card with its suit symbol, space separated.
func (d *Deck) Localized(r locale.Resolver, lang language.Tag) (string, error) {
	return d.join(func(c card.Card) (string, error) { return c.Localized(r, lang) })
}

// Text renders every card with its suit letter, space separated.
func (d *Deck) Text(r locale.Resolver, lang language.Tag) (string, error) {
	return d.join(func(c card.Card) (string, error) { return c.Text(r, lang) })
}

func (d *Deck) join(render func(card.Card) (string, error)) (string, error) {
	parts := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		s, err := render(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

func (d *Deck) String() string {
	parts := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
