// Package command parses textual commands and dispatches them as
// validated operations against the game engine.
package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/owenmb/hexcorp/internal/entity"
	"github.com/owenmb/hexcorp/internal/game"
	"github.com/owenmb/hexcorp/internal/hex"
	"github.com/owenmb/hexcorp/internal/telemetry"
)

// Printer is the output surface handlers write to. PrintPaged is used
// for listings that can exceed the console height.
type Printer interface {
	Println(line string)
	PrintPaged(lines []string)
}

// Dispatcher routes one command line at a time into the engine. Every
// handler validates its arguments fully before mutating anything, so a
// rejected command leaves the engine untouched.
type Dispatcher struct {
	game *game.Game
	out  Printer
}

// New creates a dispatcher over the given engine and output.
func New(g *game.Game, out Printer) *Dispatcher {
	return &Dispatcher{game: g, out: out}
}

// Dispatch parses and executes a single command line. Unknown keywords
// produce a diagnostic and no mutation.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}
	keyword, args := tokens[0], tokens[1:]

	tracer := telemetry.Tracer("command")
	ctx, span := tracer.Start(ctx, "command.dispatch")
	span.SetAttributes(attribute.String("command.keyword", keyword))
	defer span.End()

	switch keyword {
	case "set_color":
		d.setColor(args)
	case "set_owner":
		d.setOwner(args)
	case "build":
		d.build(args)
	case "list_players":
		d.listPlayers(args)
	case "show_resources":
		d.showResources(args)
	case "show_cards":
		d.showCards(args)
	case "get_card_count":
		d.getCardCount(args)
	case "draw_card":
		d.drawCard(args)
	case "give_resource":
		d.giveResource(args)
	case "spend_resource":
		d.spendResource(args)
	case "play_card":
		d.playCard(args)
	case "remove_played_card":
		d.removePlayedCard(args)
	case "remove_held_card":
		d.removeHeldCard(args)
	case "end_turn":
		d.endTurn(ctx, args)
	case "help":
		d.help(args)
	default:
		d.out.Println(fmt.Sprintf("Unknown command %q (try 'help').", keyword))
	}
}

// parseCoord reads three integer tokens as a cube coordinate.
func parseCoord(args []string) (hex.Coord, error) {
	var c hex.Coord
	parts := [3]*int{&c.X, &c.Y, &c.Z}
	for i, p := range parts {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return c, fmt.Errorf("%q is not an integer", args[i])
		}
		*p = v
	}
	return c, nil
}

// parseNameAndIndex splits tokens into a free-form name and an optional
// trailing player index. Tokens join into the name greedily; only when
// the final token parses as an integer AND at least one token remains
// for the name is it taken as the index. For card names that end in a
// digit, pass the index explicitly (see 'help').
func parseNameAndIndex(args []string) (string, int) {
	idx := game.CurrentPlayer
	nameTokens := args
	if len(args) >= 2 {
		if v, err := strconv.Atoi(args[len(args)-1]); err == nil {
			idx = v
			nameTokens = args[:len(args)-1]
		}
	}
	return strings.Join(nameTokens, " "), idx
}

// parseOptionalIndex reads args as either empty (current player) or a
// single integer index.
func parseOptionalIndex(args []string) (int, error) {
	if len(args) == 0 {
		return game.CurrentPlayer, nil
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("player index %q is not an integer", args[0])
	}
	return v, nil
}

func (d *Dispatcher) setColor(args []string) {
	if len(args) != 4 {
		d.out.Println("Usage: set_color <x> <y> <z> <color>")
		return
	}
	coord, err := parseCoord(args)
	if err != nil {
		d.out.Println("Usage: set_color <x> <y> <z> <color>: " + err.Error())
		return
	}
	color := args[3]

	ok, recognized := d.game.Board().SetColor(coord, color)
	if !ok {
		d.out.Println(fmt.Sprintf("Tile %s does not exist.", coord))
		return
	}
	if !recognized {
		d.out.Println(fmt.Sprintf("Warning: %q is not a recognized color.", color))
	}
	d.out.Println(fmt.Sprintf("Tile %s is now %s.", coord, color))
}

func (d *Dispatcher) setOwner(args []string) {
	if len(args) != 4 {
		d.out.Println("Usage: set_owner <x> <y> <z> <companyIndex>")
		return
	}
	coord, err := parseCoord(args)
	if err != nil {
		d.out.Println("Usage: set_owner <x> <y> <z> <companyIndex>: " + err.Error())
		return
	}
	companies := d.game.Companies()
	ci, err := strconv.Atoi(args[3])
	if err != nil || ci < 0 || ci >= len(companies) {
		d.out.Println(fmt.Sprintf("Company index %q out of range [0,%d).", args[3], len(companies)))
		return
	}

	if !d.game.Board().SetOwner(coord, companies[ci]) {
		d.out.Println(fmt.Sprintf("Tile %s does not exist.", coord))
		return
	}
	d.out.Println(fmt.Sprintf("Tile %s now belongs to %s.", coord, companies[ci].Name))
}

func (d *Dispatcher) build(args []string) {
	if len(args) != 4 && len(args) != 5 {
		d.out.Println("Usage: build <x> <y> <z> <color> [playerIndex]")
		return
	}
	coord, err := parseCoord(args)
	if err != nil {
		d.out.Println("Usage: build <x> <y> <z> <color> [playerIndex]: " + err.Error())
		return
	}
	color := args[3]
	idx, err := parseOptionalIndex(args[4:])
	if err != nil {
		d.out.Println(err.Error())
		return
	}

	if err := d.game.BuildStage(idx, coord, color); err != nil {
		d.out.Println("Build failed: " + err.Error())
		return
	}
	d.out.Println(fmt.Sprintf("Built stage at %s in %s.", coord, color))
}

func (d *Dispatcher) listPlayers(args []string) {
	players := d.game.Players()
	lines := make([]string, 0, len(players)+1)
	lines = append(lines, fmt.Sprintf("Day %d, %d player(s):", d.game.Day(), len(players)))
	for i, p := range players {
		marker := " "
		if i == d.game.ActiveIndex() {
			marker = "*"
		}
		company := "no company"
		if p.Company != nil {
			company = p.Company.Name
		}
		lines = append(lines, fmt.Sprintf("%s %d: %s (%s) score %d", marker, i, p.Name, company, p.Score))
	}
	d.out.PrintPaged(lines)
}

func (d *Dispatcher) showResources(args []string) {
	if len(args) > 1 {
		d.out.Println("Usage: show_resources [playerIndex]")
		return
	}
	idx, err := parseOptionalIndex(args)
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	p, err := d.playerAt(idx)
	if err != nil {
		d.out.Println(err.Error())
		return
	}

	balances := p.Resources()
	lines := make([]string, 0, len(balances)+1)
	lines = append(lines, fmt.Sprintf("Resources for %s:", p.Name))
	for _, b := range balances {
		lines = append(lines, fmt.Sprintf("  %s: %d", b.Name, b.Amount))
	}
	if len(balances) == 0 {
		lines = append(lines, "  (none)")
	}
	d.out.PrintPaged(lines)
}

func (d *Dispatcher) showCards(args []string) {
	if len(args) > 1 {
		d.out.Println("Usage: show_cards [playerIndex]")
		return
	}
	idx, err := parseOptionalIndex(args)
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	p, err := d.playerAt(idx)
	if err != nil {
		d.out.Println(err.Error())
		return
	}

	hand := p.Hand()
	lines := make([]string, 0, len(hand)+1)
	lines = append(lines, fmt.Sprintf("%s holds %d card(s):", p.Name, len(hand)))
	for _, c := range hand {
		line := "  " + c.Name
		if c.Description != "" {
			line += " - " + c.Description
		}
		lines = append(lines, line)
	}
	d.out.PrintPaged(lines)
}

func (d *Dispatcher) getCardCount(args []string) {
	if len(args) != 1 {
		d.out.Println("Usage: get_card_count <deckName>")
		return
	}
	deck, err := d.game.Deck(args[0])
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	d.out.Println(fmt.Sprintf("Deck %q has %d card(s) remaining.", deck.Name(), deck.Size()))
}

func (d *Dispatcher) drawCard(args []string) {
	if len(args) != 2 && len(args) != 3 {
		d.out.Println("Usage: draw_card <deckName> <amount> [playerIndex]")
		return
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil || amount < 1 {
		d.out.Println(fmt.Sprintf("Amount %q must be a positive integer.", args[1]))
		return
	}
	idx, err := parseOptionalIndex(args[2:])
	if err != nil {
		d.out.Println(err.Error())
		return
	}

	drawn, err := d.game.DrawCards(args[0], idx, amount)
	if err != nil {
		d.out.Println("Draw failed: " + err.Error())
		return
	}
	d.out.Println(fmt.Sprintf("Drew %d of %d card(s).", drawn, amount))
}

func (d *Dispatcher) giveResource(args []string) {
	resource, amount, idx, ok := d.parseResourceArgs("give_resource", args)
	if !ok {
		return
	}
	if err := d.game.GiveResource(idx, resource, amount); err != nil {
		d.out.Println(err.Error())
		return
	}
	d.out.Println(fmt.Sprintf("Granted %d %s.", amount, resource))
}

func (d *Dispatcher) spendResource(args []string) {
	resource, amount, idx, ok := d.parseResourceArgs("spend_resource", args)
	if !ok {
		return
	}
	spent, err := d.game.SpendResource(idx, resource, amount)
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	if !spent {
		d.out.Println(fmt.Sprintf("Not enough %s to spend %d.", resource, amount))
		return
	}
	d.out.Println(fmt.Sprintf("Spent %d %s.", amount, resource))
}

// parseResourceArgs handles the shared `<resource> <amount> [playerIndex]`
// grammar of the resource transaction commands.
func (d *Dispatcher) parseResourceArgs(cmd string, args []string) (string, int, int, bool) {
	if len(args) != 2 && len(args) != 3 {
		d.out.Println(fmt.Sprintf("Usage: %s <resource> <amount> [playerIndex]", cmd))
		return "", 0, 0, false
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		d.out.Println(fmt.Sprintf("Amount %q is not an integer.", args[1]))
		return "", 0, 0, false
	}
	idx, err := parseOptionalIndex(args[2:])
	if err != nil {
		d.out.Println(err.Error())
		return "", 0, 0, false
	}
	return args[0], amount, idx, true
}

func (d *Dispatcher) playCard(args []string) {
	if len(args) == 0 {
		d.out.Println("Usage: play_card <cardName> [playerIndex]")
		return
	}
	name, idx := parseNameAndIndex(args)

	ok, err := d.game.PlayCard(idx, name)
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	if !ok {
		d.out.Println(fmt.Sprintf("No held card named %q.", name))
		return
	}
	d.out.Println(fmt.Sprintf("Played %q.", name))
}

func (d *Dispatcher) removePlayedCard(args []string) {
	if len(args) == 0 {
		d.out.Println("Usage: remove_played_card <cardName> [playerIndex]")
		return
	}
	name, idx := parseNameAndIndex(args)

	ok, err := d.game.RemovePlayedCard(idx, name)
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	if !ok {
		d.out.Println(fmt.Sprintf("No played card named %q.", name))
		return
	}
	d.out.Println(fmt.Sprintf("Removed played %q.", name))
}

func (d *Dispatcher) removeHeldCard(args []string) {
	if len(args) == 0 {
		d.out.Println("Usage: remove_held_card <cardName> [playerIndex]")
		return
	}
	name, idx := parseNameAndIndex(args)

	ok, err := d.game.RemoveHeldCard(idx, name)
	if err != nil {
		d.out.Println(err.Error())
		return
	}
	if !ok {
		d.out.Println(fmt.Sprintf("No held card named %q.", name))
		return
	}
	d.out.Println(fmt.Sprintf("Removed held %q.", name))
}

func (d *Dispatcher) endTurn(ctx context.Context, args []string) {
	if err := d.game.EndTurn(ctx); err != nil {
		d.out.Println(err.Error())
		return
	}
	active := d.game.ActivePlayer()
	d.out.Println(fmt.Sprintf("Day %d, %s's turn.", d.game.Day(), active.Name))
}

func (d *Dispatcher) help(args []string) {
	d.out.PrintPaged([]string{
		"Commands:",
		"  set_color <x> <y> <z> <color>         recolor a tile directly",
		"  set_owner <x> <y> <z> <companyIndex>  assign a tile directly",
		"  build <x> <y> <z> <color> [player]    claim and recolor a tile",
		"  list_players                          list players and companies",
		"  show_resources [player]               show a player's resources",
		"  show_cards [player]                   show a player's hand",
		"  get_card_count <deck>                 cards remaining in a deck",
		"  draw_card <deck> <amount> [player]    draw cards into a hand",
		"  give_resource <resource> <n> [player] grant a resource",
		"  spend_resource <resource> <n> [player] spend a resource",
		"  play_card <name> [player]             play a held card",
		"  remove_played_card <name> [player]    discard played copies",
		"  remove_held_card <name> [player]      discard held copies",
		"  end_turn                              pass the turn",
		"  help                                  this listing",
		"",
		"Card names may contain spaces. If the last word of a name is a",
		"number, pass the player index explicitly to disambiguate.",
	})
}

// playerAt resolves an index the way the engine does, for read-only
// listings.
func (d *Dispatcher) playerAt(idx int) (*entity.Player, error) {
	players := d.game.Players()
	if idx == game.CurrentPlayer {
		idx = d.game.ActiveIndex()
	}
	if idx < 0 || idx >= len(players) {
		return nil, fmt.Errorf("player index %d out of range [0,%d)", idx, len(players))
	}
	return players[idx], nil
}
