package card

import (
	"math/rand"

	"github.com/owenmb/hexcorp/internal/gamedata"
)

// Deck is a named, ordered pile of cards. The top of the deck is the
// end of the slice, so draws are O(1).
type Deck struct {
	name  string
	cards []Card
}

// NewDeck creates an empty deck with the given name.
func NewDeck(name string) *Deck {
	return &Deck{name: name}
}

// Name returns the deck's name.
func (d *Deck) Name() string {
	return d.name
}

// Load replaces the deck's contents with instances built from the given
// definitions, honoring each definition's copy count. Each copy is an
// independent instance.
func (d *Deck) Load(defs []gamedata.CardDef) {
	d.cards = d.cards[:0]
	for _, def := range defs {
		for i := 0; i < def.Copies; i++ {
			d.cards = append(d.cards, FromDef(def))
		}
	}
}

// Add appends a card to the top of the deck.
func (d *Deck) Add(c Card) {
	d.cards = append(d.cards, c)
}

// Draw removes and returns the top card. The second return is false if
// the deck is empty, in which case the deck is unchanged.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Shuffle permutes the deck uniformly at random using the given source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Size returns the number of cards remaining.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards left.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Names returns the card names in deck order, bottom first. Used for
// diagnostics and tests.
func (d *Deck) Names() []string {
	out := make([]string, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.Name
	}
	return out
}
