package card

// Slot holds at most one card, e.g. a position on the table that is dealt
// from. The zero value is empty. A Slot has a single owner; callers
// serialize access.
type Slot struct {
	card *Card
}

// NewSlot returns a slot holding c.
func NewSlot(c Card) Slot {
	return Slot{card: &c}
}

// Deal removes and returns the card.
func (s *Slot) Deal() (Card, bool) {
	if s.card == nil {
		return Card{}, false
	}
	c := *s.card
	s.card = nil
	return c, true
}

// Peek returns the card without removing it.
func (s *Slot) Peek() (Card, bool) {
	if s.card == nil {
		return Card{}, false
	}
	return *s.card, true
}

// Put places c in an empty slot. It reports false if the slot is occupied.
func (s *Slot) Put(c Card) bool {
	if s.card != nil {
		return false
	}
	s.card = &c
	return true
}

// IsThere reports whether the slot still holds its card.
func (s *Slot) IsThere() bool {
	return s.card != nil
}
