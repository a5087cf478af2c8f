// Package board provides the hexagonal tile map and its mutation rules.
package board

import (
	"github.com/owenmb/hexcorp/internal/entity"
	"github.com/owenmb/hexcorp/internal/gamedata"
)

// Tile is one cell of the board. Tiles are created at generation and
// never destroyed; only the owner and color change, and only through
// Board or engine calls.
type Tile struct {
	Owner *entity.Company
	Color string
}

// newTile returns the neutral, unowned default.
func newTile() *Tile {
	return &Tile{Color: gamedata.NeutralColor}
}

// Owned reports whether a company holds the tile.
func (t *Tile) Owned() bool {
	return t.Owner != nil
}

// OwnerName returns the owning company's name, or "Unowned".
func (t *Tile) OwnerName() string {
	if t.Owner == nil {
		return "Unowned"
	}
	return t.Owner.Name
}
