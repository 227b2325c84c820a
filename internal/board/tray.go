package board

import "fmt"

// DefaultCardCount and DefaultCardPattern describe the stock tray of numbered images.
const (
	DefaultCardCount   = 9
	DefaultCardPattern = "img/image (%d).jpg"
)

// CardRef is the opaque image reference carried from a tray card to a cell.
type CardRef string

// Card is an immutable placeable template. Index is one-based.
type Card struct {
	Index  int
	Source CardRef
}

// Tray holds the fixed, ordered set of cards available for the whole session.
// Placing a card copies its reference; the tray is never depleted.
type Tray struct {
	cards []Card
	index map[CardRef]int
}

// NewTray builds count cards whose sources are produced by formatting pattern
// with the card's one-based index.
func NewTray(count int, pattern string) *Tray {
	if count < 0 {
		count = 0
	}
	t := &Tray{
		cards: make([]Card, 0, count),
		index: make(map[CardRef]int, count),
	}
	for i := 1; i <= count; i++ {
		ref := CardRef(fmt.Sprintf(pattern, i))
		t.index[ref] = len(t.cards)
		t.cards = append(t.cards, Card{Index: i, Source: ref})
	}
	return t
}

// DefaultTray returns the stock nine-card tray.
func DefaultTray() *Tray {
	return NewTray(DefaultCardCount, DefaultCardPattern)
}

// List returns the cards in index order.
func (t *Tray) List() []Card {
	if t == nil {
		return nil
	}
	out := make([]Card, len(t.cards))
	copy(out, t.cards)
	return out
}

// Len reports how many cards the tray holds.
func (t *Tray) Len() int {
	if t == nil {
		return 0
	}
	return len(t.cards)
}

// Card returns the card with the given one-based index.
func (t *Tray) Card(index int) (Card, bool) {
	if t == nil || index < 1 || index > len(t.cards) {
		return Card{}, false
	}
	return t.cards[index-1], true
}

// Lookup finds the card carrying ref.
func (t *Tray) Lookup(ref CardRef) (Card, bool) {
	if t == nil {
		return Card{}, false
	}
	i, ok := t.index[ref]
	if !ok {
		return Card{}, false
	}
	return t.cards[i], true
}
