package entity

import (
	"sort"

	"github.com/owenmb/hexcorp/internal/card"
)

// Player holds one player's resource ledger, score and card collections.
// A card instance moves by value between the hand, the played set and
// decks; it is never in two collections at once.
type Player struct {
	Name    string
	Company *Company
	Score   int

	resources map[string]int
	hand      []card.Card
	played    []card.Card
}

// NewPlayer creates a player backed by the given company.
func NewPlayer(name string, company *Company) *Player {
	return &Player{
		Name:      name,
		Company:   company,
		resources: make(map[string]int),
	}
}

// AddResource increases a resource by amount. Resources are lazily
// created at zero on first reference; amount may be negative.
func (p *Player) AddResource(resource string, amount int) {
	p.resources[resource] += amount
}

// SpendResource deducts amount from a resource. It returns false and
// mutates nothing if the stored amount is less than requested, so no
// balance ever goes negative through this path.
func (p *Player) SpendResource(resource string, amount int) bool {
	if p.resources[resource] < amount {
		return false
	}
	p.resources[resource] -= amount
	return true
}

// Resource returns the current balance, 0 for unknown types.
func (p *Player) Resource(resource string) int {
	return p.resources[resource]
}

// Resources returns a name-sorted snapshot of the ledger.
func (p *Player) Resources() []ResourceBalance {
	out := make([]ResourceBalance, 0, len(p.resources))
	for name, amount := range p.resources {
		out = append(out, ResourceBalance{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ResourceBalance is one entry of a player's ledger snapshot.
type ResourceBalance struct {
	Name   string
	Amount int
}

// AddScore adjusts the player's score.
func (p *Player) AddScore(amount int) {
	p.Score += amount
}

// AddHeldCard appends a card to the player's hand.
func (p *Player) AddHeldCard(c card.Card) {
	p.hand = append(p.hand, c)
}

// PlayCard moves the first hand card matching name (exact match) from
// the hand to the played set. Returns false, mutating nothing, if no
// card matches.
func (p *Player) PlayCard(name string) bool {
	for i, c := range p.hand {
		if c.Name == name {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			p.played = append(p.played, c)
			return true
		}
	}
	return false
}

// RemoveHeldCard removes all hand cards matching name. Returns whether
// at least one was removed.
func (p *Player) RemoveHeldCard(name string) bool {
	var ok bool
	p.hand, ok = removeAll(p.hand, name)
	return ok
}

// RemovePlayedCard removes all played cards matching name. Returns
// whether at least one was removed.
func (p *Player) RemovePlayedCard(name string) bool {
	var ok bool
	p.played, ok = removeAll(p.played, name)
	return ok
}

// Hand returns the cards currently held.
func (p *Player) Hand() []card.Card {
	out := make([]card.Card, len(p.hand))
	copy(out, p.hand)
	return out
}

// Played returns the cards currently in play, in play order.
func (p *Player) Played() []card.Card {
	out := make([]card.Card, len(p.played))
	copy(out, p.played)
	return out
}

// removeAll filters out every card whose name matches.
func removeAll(cards []card.Card, name string) ([]card.Card, bool) {
	kept := cards[:0]
	removed := false
	for _, c := range cards {
		if c.Name == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	return kept, removed
}

// =============================================================================
// card.ResourceSink implementation
// =============================================================================

// SinkName returns the player's name for trigger log lines.
func (p *Player) SinkName() string { return p.Name }

// Ensure Player implements card.ResourceSink.
var _ card.ResourceSink = (*Player)(nil)
