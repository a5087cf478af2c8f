package board

import (
	"context"
	"testing"

	"github.com/owenmb/hexcorp/internal/entity"
	"github.com/owenmb/hexcorp/internal/gamedata"
	"github.com/owenmb/hexcorp/internal/hex"
)

func newTestBoard(t *testing.T, radius int) *Board {
	t.Helper()
	b, err := New(radius, gamedata.NewPalette())
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	b.Generate(context.Background())
	return b
}

func TestTileCountFormula(t *testing.T) {
	for radius := 0; radius <= 5; radius++ {
		b := newTestBoard(t, radius)
		want := 3*radius*radius + 3*radius + 1
		if b.Len() != want {
			t.Errorf("Radius %d: tile count = %d, want %d", radius, b.Len(), want)
		}
	}
}

func TestAllCoordsOnCubePlane(t *testing.T) {
	b := newTestBoard(t, 4)
	for _, c := range b.Coords() {
		if !c.Valid() {
			t.Errorf("Coordinate %v violates x+y+z=0", c)
		}
		if abs(c.X) > 4 || abs(c.Y) > 4 || abs(c.Z) > 4 {
			t.Errorf("Coordinate %v outside radius 4", c)
		}
	}
}

func TestNegativeRadiusRejected(t *testing.T) {
	if _, err := New(-1, gamedata.NewPalette()); err == nil {
		t.Error("Negative radius should be rejected")
	}
}

func TestNeighbors(t *testing.T) {
	b := newTestBoard(t, 2)

	// Center tile has all six neighbors.
	center := hex.Coord{}
	neighbors := b.Neighbors(center)
	if len(neighbors) != 6 {
		t.Errorf("Center neighbors = %d, want 6", len(neighbors))
	}

	// Every neighbor exists on the board and is a canonical offset away.
	offsets := make(map[hex.Coord]bool)
	for _, d := range hex.Directions {
		offsets[d] = true
	}
	for _, n := range neighbors {
		if _, ok := b.Tile(n); !ok {
			t.Errorf("Neighbor %v not on board", n)
		}
		diff := hex.Coord{X: n.X - center.X, Y: n.Y - center.Y, Z: n.Z - center.Z}
		if !offsets[diff] {
			t.Errorf("Neighbor %v is not a canonical direction from center", n)
		}
	}

	// Corner tile has fewer neighbors; off-board ones are excluded.
	corner := hex.Coord{X: 2, Y: -2, Z: 0}
	if got := len(b.Neighbors(corner)); got != 3 {
		t.Errorf("Corner neighbors = %d, want 3", got)
	}

	// The queried coordinate itself need not exist.
	outside := hex.Coord{X: 3, Y: -3, Z: 0}
	for _, n := range b.Neighbors(outside) {
		if _, ok := b.Tile(n); !ok {
			t.Errorf("Neighbor %v of off-board coord not on board", n)
		}
	}
}

func TestTileDefaults(t *testing.T) {
	b := newTestBoard(t, 1)
	tile, ok := b.Tile(hex.Coord{})
	if !ok {
		t.Fatal("Center tile missing")
	}
	if tile.Owned() {
		t.Error("New tile should be unowned")
	}
	if tile.Color != gamedata.NeutralColor {
		t.Errorf("New tile color = %q, want %q", tile.Color, gamedata.NeutralColor)
	}
	if tile.OwnerName() != "Unowned" {
		t.Errorf("OwnerName = %q, want 'Unowned'", tile.OwnerName())
	}
}

func TestSetOwner(t *testing.T) {
	b := newTestBoard(t, 1)
	company := entity.NewCompany("Copperline Works", "C")

	if !b.SetOwner(hex.Coord{}, company) {
		t.Fatal("SetOwner on existing tile should succeed")
	}
	tile, _ := b.Tile(hex.Coord{})
	if tile.Owner != company {
		t.Error("Tile should reference the assigned company")
	}

	// Absent coordinate is a reported no-op.
	if b.SetOwner(hex.Coord{X: 9, Y: -9, Z: 0}, company) {
		t.Error("SetOwner on absent tile should report false")
	}

	// nil clears ownership.
	b.SetOwner(hex.Coord{}, nil)
	if tile.Owned() {
		t.Error("SetOwner(nil) should clear ownership")
	}
}

func TestSetColorBestEffort(t *testing.T) {
	b := newTestBoard(t, 1)

	ok, recognized := b.SetColor(hex.Coord{}, "Red")
	if !ok || !recognized {
		t.Errorf("SetColor Red: ok=%v recognized=%v, want true/true", ok, recognized)
	}

	// Unrecognized colors are flagged but the mutation still happens.
	ok, recognized = b.SetColor(hex.Coord{}, "Chartreuse")
	if !ok {
		t.Error("SetColor on existing tile should apply")
	}
	if recognized {
		t.Error("'Chartreuse' should not be recognized")
	}
	tile, _ := b.Tile(hex.Coord{})
	if tile.Color != "Chartreuse" {
		t.Errorf("Best-effort recolor did not apply: %q", tile.Color)
	}

	// Absent coordinate: no-op with diagnostic signal.
	ok, _ = b.SetColor(hex.Coord{X: 9, Y: -9, Z: 0}, "Red")
	if ok {
		t.Error("SetColor on absent tile should report false")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
