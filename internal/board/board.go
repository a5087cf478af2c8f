package board

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/owenmb/hexcorp/internal/entity"
	"github.com/owenmb/hexcorp/internal/gamedata"
	"github.com/owenmb/hexcorp/internal/hex"
	"github.com/owenmb/hexcorp/internal/telemetry"
)

// Board owns the tile map. The coordinate set is fixed for the board's
// lifetime: exactly the cube coordinates with |x|,|y|,|z| <= radius.
type Board struct {
	radius  int
	tiles   map[hex.Coord]*Tile
	palette *gamedata.Palette
}

// New creates an empty board shell. Radius must be non-negative; a
// negative radius is rejected rather than clamped. Call Generate to
// fill in the tiles.
func New(radius int, palette *gamedata.Palette) (*Board, error) {
	if radius < 0 {
		return nil, fmt.Errorf("board radius must be >= 0, got %d", radius)
	}
	return &Board{
		radius:  radius,
		tiles:   make(map[hex.Coord]*Tile),
		palette: palette,
	}, nil
}

// Generate fills the board with default tiles for every valid
// coordinate. For radius R that is 3R²+3R+1 tiles.
func (b *Board) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	start := time.Now()

	for x := -b.radius; x <= b.radius; x++ {
		for y := -b.radius; y <= b.radius; y++ {
			z := -x - y
			if z >= -b.radius && z <= b.radius {
				b.tiles[hex.Coord{X: x, Y: y, Z: z}] = newTile()
			}
		}
	}

	span.SetAttributes(
		attribute.Int("board.radius", b.radius),
		attribute.Int("board.tile_count", len(b.tiles)),
		attribute.Int64("board.generation_us", time.Since(start).Microseconds()),
	)
}

// Radius returns the board radius.
func (b *Board) Radius() int {
	return b.radius
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tile returns the tile at the given coordinate, if present.
func (b *Board) Tile(c hex.Coord) (*Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// Neighbors returns the subset of the six adjacent coordinates that
// exist on the board. The center coordinate itself need not exist.
func (b *Board) Neighbors(c hex.Coord) []hex.Coord {
	result := make([]hex.Coord, 0, len(hex.Directions))
	for _, dir := range hex.Directions {
		n := c.Add(dir)
		if _, ok := b.tiles[n]; ok {
			result = append(result, n)
		}
	}
	return result
}

// Coords returns every coordinate on the board in a stable order.
func (b *Board) Coords() []hex.Coord {
	out := make([]hex.Coord, 0, len(b.tiles))
	for c := range b.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// SetOwner assigns the tile at c to a company (nil clears ownership).
// Returns false if the coordinate is not on the board.
func (b *Board) SetOwner(c hex.Coord, company *entity.Company) bool {
	t, ok := b.tiles[c]
	if !ok {
		return false
	}
	t.Owner = company
	return true
}

// SetColor recolors the tile at c. The first return is false if the
// coordinate is absent (nothing changes). The second return is false
// when the color is not in the recognized palette; the recolor still
// happens in that case, matching the best-effort policy for direct
// recolors. The caller decides whether to warn.
func (b *Board) SetColor(c hex.Coord, color string) (ok bool, recognized bool) {
	t, present := b.tiles[c]
	if !present {
		return false, b.palette.Valid(color)
	}
	t.Color = color
	return true, b.palette.Valid(color)
}
