// Package game provides the engine: turn and day progression, the
// resource economy, card play and trigger orchestration. All game state
// mutation is routed through a Game instance; collaborators (renderer,
// console) only read.
package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/owenmb/hexcorp/internal/board"
	"github.com/owenmb/hexcorp/internal/card"
	"github.com/owenmb/hexcorp/internal/entity"
	"github.com/owenmb/hexcorp/internal/gamedata"
	"github.com/owenmb/hexcorp/internal/hex"
	"github.com/owenmb/hexcorp/internal/telemetry"
)

// CurrentPlayer is the sentinel player index that resolves to whoever
// is currently active.
const CurrentPlayer = -1

// Output receives the engine's human-readable lines: trigger effects,
// warnings, and diagnostics.
type Output interface {
	Println(line string)
}

// OutputFunc adapts a function to the Output interface.
type OutputFunc func(string)

// Println calls the underlying function.
func (f OutputFunc) Println(line string) { f(line) }

// Game owns the board, players, companies and decks, and the day/turn
// state machine over them.
type Game struct {
	board   *board.Board
	palette *gamedata.Palette

	companies []*entity.Company
	players   []*entity.Player
	decks     map[string]*card.Deck
	deckOrder []string

	day     int
	active  int
	started bool

	// StartingHand is how many cards Setup deals to the first player
	// from the primary deck.
	StartingHand int

	rng *rand.Rand
	out Output
}

// New creates an engine over a generated board. The rng drives the
// setup partition and deck shuffles; inject a seeded source for
// reproducible sessions.
func New(b *board.Board, palette *gamedata.Palette, rng *rand.Rand, out Output) *Game {
	if out == nil {
		out = OutputFunc(func(string) {})
	}
	return &Game{
		board:        b,
		palette:      palette,
		decks:        make(map[string]*card.Deck),
		StartingHand: 1,
		rng:          rng,
		out:          out,
	}
}

// AddCompany registers a company in the session arena and returns the
// shared reference tiles and players use.
func (g *Game) AddCompany(name, symbol string) *entity.Company {
	c := entity.NewCompany(name, symbol)
	g.companies = append(g.companies, c)
	return c
}

// AddPlayer seats a player. Turn order is insertion order and is fixed
// once the game starts; adding a player after Setup is an error.
func (g *Game) AddPlayer(name string, company *entity.Company) (*entity.Player, error) {
	if g.started {
		return nil, fmt.Errorf("cannot add player %q after setup", name)
	}
	p := entity.NewPlayer(name, company)
	g.players = append(g.players, p)
	return p, nil
}

// AddDeck registers a deck under its name. The first deck added is the
// primary deck Setup deals from.
func (g *Game) AddDeck(d *card.Deck) {
	if _, exists := g.decks[d.Name()]; !exists {
		g.deckOrder = append(g.deckOrder, d.Name())
	}
	g.decks[d.Name()] = d
}

// Deck looks up a deck by name.
func (g *Game) Deck(name string) (*card.Deck, error) {
	d, ok := g.decks[name]
	if !ok {
		return nil, fmt.Errorf("no deck named %q", name)
	}
	return d, nil
}

// DeckNames returns the registered deck names in registration order.
func (g *Game) DeckNames() []string {
	out := make([]string, len(g.deckOrder))
	copy(out, g.deckOrder)
	return out
}

// Setup performs one-time initialization: a random half of the tiles
// start owned with a random claimable color and a random player's
// company, the other half stays at the neutral baseline; then the
// starting hand is dealt to the first player. Requires at least one
// seated player.
func (g *Game) Setup(ctx context.Context) error {
	if len(g.players) == 0 {
		return fmt.Errorf("setup requires at least one player")
	}
	if g.started {
		return fmt.Errorf("setup already ran")
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.setup")
	defer span.End()

	colors := g.palette.Claimable()

	coords := g.board.Coords()
	g.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	half := len(coords) / 2
	for i, c := range coords {
		tile, _ := g.board.Tile(c)
		if i < half {
			tile.Color = colors[g.rng.Intn(len(colors))]
			tile.Owner = g.players[g.rng.Intn(len(g.players))].Company
		} else {
			tile.Color = gamedata.NeutralColor
			tile.Owner = nil
		}
	}

	dealt := 0
	if primary := g.primaryDeck(); primary != nil {
		for i := 0; i < g.StartingHand; i++ {
			c, ok := primary.Draw()
			if !ok {
				break
			}
			g.players[0].AddHeldCard(c)
			dealt++
		}
	}

	g.started = true

	span.SetAttributes(
		attribute.Int("game.tiles", len(coords)),
		attribute.Int("game.tiles_owned", half),
		attribute.Int("game.players", len(g.players)),
		attribute.Int("game.cards_dealt", dealt),
	)
	return nil
}

// primaryDeck returns the first registered deck, or nil.
func (g *Game) primaryDeck() *card.Deck {
	if len(g.deckOrder) == 0 {
		return nil
	}
	return g.decks[g.deckOrder[0]]
}

// resolvePlayer maps an index (or the CurrentPlayer sentinel) to a
// seated player.
func (g *Game) resolvePlayer(idx int) (*entity.Player, int, error) {
	if idx == CurrentPlayer {
		idx = g.active
	}
	if idx < 0 || idx >= len(g.players) {
		return nil, 0, fmt.Errorf("player index %d out of range [0,%d)", idx, len(g.players))
	}
	return g.players[idx], idx, nil
}

// GiveResource credits a player's ledger. Resources are uncapped, so
// this always succeeds for a valid index.
func (g *Game) GiveResource(idx int, resource string, amount int) error {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return err
	}
	p.AddResource(resource, amount)
	return nil
}

// SpendResource debits a player's ledger. The bool is false when the
// balance is insufficient; in that case nothing changes.
func (g *Game) SpendResource(idx int, resource string, amount int) (bool, error) {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return false, err
	}
	return p.SpendResource(resource, amount), nil
}

// BuildStage is the sole territory-claim action: it assigns the tile to
// the player's company and recolors it in one logical operation. Unlike
// the direct recolor path, an unrecognized color here is a validation
// error and nothing mutates.
func (g *Game) BuildStage(idx int, coord hex.Coord, color string) error {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return err
	}
	if _, ok := g.board.Tile(coord); !ok {
		return fmt.Errorf("tile %s does not exist", coord)
	}
	if !g.palette.Valid(color) {
		return fmt.Errorf("color %q is not a valid color", color)
	}
	g.board.SetOwner(coord, p.Company)
	g.board.SetColor(coord, color)
	return nil
}

// DrawCards draws up to n cards from the named deck into a player's
// hand. It stops early when the deck runs out and reports how many
// cards were actually drawn; cards drawn before exhaustion are kept.
func (g *Game) DrawCards(deckName string, idx, n int) (int, error) {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return 0, err
	}
	d, err := g.Deck(deckName)
	if err != nil {
		return 0, err
	}

	drawn := 0
	for i := 0; i < n; i++ {
		c, ok := d.Draw()
		if !ok {
			g.out.Println(fmt.Sprintf("Deck %q is out of cards.", deckName))
			break
		}
		p.AddHeldCard(c)
		drawn++
	}
	return drawn, nil
}

// PlayCard moves the named card from a player's hand into play and
// fires its onPlay trigger exactly once. The bool is false when no hand
// card matches.
func (g *Game) PlayCard(idx int, name string) (bool, error) {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return false, err
	}
	if !p.PlayCard(name) {
		return false, nil
	}

	played := p.Played()
	played[len(played)-1].ExecuteTrigger(card.TriggerOnPlay, p, g.printf)
	return true, nil
}

// RemovePlayedCard removes all played cards matching name.
func (g *Game) RemovePlayedCard(idx int, name string) (bool, error) {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return false, err
	}
	return p.RemovePlayedCard(name), nil
}

// RemoveHeldCard removes all hand cards matching name.
func (g *Game) RemoveHeldCard(idx int, name string) (bool, error) {
	p, _, err := g.resolvePlayer(idx)
	if err != nil {
		return false, err
	}
	return p.RemoveHeldCard(name), nil
}

// EndTurn advances to the next player. When the turn passes the last
// seated player, the index wraps to 0, the day counter increments and
// every player's played cards fire their start-of-day trigger, in
// player order then card order. There is no terminal state: days grow
// without bound.
func (g *Game) EndTurn(ctx context.Context) error {
	if len(g.players) == 0 {
		return fmt.Errorf("end turn requires at least one player")
	}

	g.active++
	if g.active < len(g.players) {
		return nil
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.start_of_day")
	defer span.End()

	g.active = 0
	g.day++
	g.out.Println(fmt.Sprintf("--- Day %d begins ---", g.day))

	fired := 0
	for _, p := range g.players {
		for _, c := range p.Played() {
			c.ExecuteTrigger(card.TriggerStartOfDay, p, g.printf)
			fired++
		}
	}

	span.SetAttributes(
		attribute.Int("game.day", g.day),
		attribute.Int("game.cards_triggered", fired),
	)
	return nil
}

// printf formats one line into the engine's output sink.
func (g *Game) printf(format string, args ...any) {
	g.out.Println(fmt.Sprintf(format, args...))
}

// Day returns the current day counter.
func (g *Game) Day() int { return g.day }

// ActiveIndex returns the index of the player whose turn it is.
func (g *Game) ActiveIndex() int { return g.active }

// ActivePlayer returns the player whose turn it is, or nil before any
// player is seated.
func (g *Game) ActivePlayer() *entity.Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.active]
}

// Players returns the seated players in turn order. Read-only use.
func (g *Game) Players() []*entity.Player {
	out := make([]*entity.Player, len(g.players))
	copy(out, g.players)
	return out
}

// Companies returns the session's company arena. Read-only use.
func (g *Game) Companies() []*entity.Company {
	out := make([]*entity.Company, len(g.companies))
	copy(out, g.companies)
	return out
}

// Board exposes the board for rendering and direct tile commands.
func (g *Game) Board() *board.Board { return g.board }

// Palette exposes the injected color table.
func (g *Game) Palette() *gamedata.Palette { return g.palette }
