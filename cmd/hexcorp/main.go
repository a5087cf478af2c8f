// Package main is the entry point for hexcorp.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/owenmb/hexcorp/internal/board"
	"github.com/owenmb/hexcorp/internal/card"
	"github.com/owenmb/hexcorp/internal/command"
	"github.com/owenmb/hexcorp/internal/entity"
	"github.com/owenmb/hexcorp/internal/game"
	"github.com/owenmb/hexcorp/internal/gamedata"
	"github.com/owenmb/hexcorp/internal/telemetry"
	"github.com/owenmb/hexcorp/internal/ui"
)

// config holds process configuration read from the environment.
type config struct {
	// Seed for random number generation. A seed of 0 means a random
	// seed is generated, for reproducible sessions pass a fixed one.
	Seed int64 `env:"HEXCORP_SEED"`
	// Scenario is an optional YAML file describing the session; empty
	// uses the built-in two-player scenario.
	Scenario string `env:"HEXCORP_SCENARIO"`
	// Telemetry toggles the OTLP exporter.
	Telemetry bool `env:"HEXCORP_TELEMETRY" envDefault:"true"`
	// ConsoleLines is the console scrollback height.
	ConsoleLines int `env:"HEXCORP_CONSOLE_LINES" envDefault:"10"`
}

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// run builds the session from the scenario and drives the terminal loop.
func run(ctx context.Context, cfg config) error {
	scenario, err := gamedata.LoadScenario(cfg.Scenario)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	palette := gamedata.NewPalette()
	b, err := board.New(scenario.BoardRadius, palette)
	if err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	b.Generate(ctx)

	console := ui.NewConsole(cfg.ConsoleLines)
	g := game.New(b, palette, rng, console)
	g.StartingHand = scenario.StartingHand

	companies := make(map[string]*entity.Company, len(scenario.Companies))
	for _, spec := range scenario.Companies {
		companies[spec.Name] = g.AddCompany(spec.Name, spec.Symbol)
	}
	for _, spec := range scenario.Players {
		if _, err := g.AddPlayer(spec.Name, companies[spec.Company]); err != nil {
			return fmt.Errorf("add player: %w", err)
		}
	}
	for i := range g.Players() {
		for resource, amount := range scenario.StartingResources {
			if err := g.GiveResource(i, resource, amount); err != nil {
				return fmt.Errorf("starting resources: %w", err)
			}
		}
	}
	for _, spec := range scenario.Decks {
		defs, err := gamedata.LoadCardSet(spec.CardSet)
		if err != nil {
			return fmt.Errorf("deck %q: %w", spec.Name, err)
		}
		deck := card.NewDeck(spec.Name)
		deck.Load(defs)
		if spec.Shuffle {
			deck.Shuffle(rng)
		}
		g.AddDeck(deck)
	}

	if err := g.Setup(ctx); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, palette)
	dispatcher := command.New(g, console)
	console.Println("Welcome to hexcorp. Type 'help' for commands.")

	for {
		renderer.Render(g, console)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			console.HandleKey(ev)
		case *tcell.EventResize:
			screen.Sync()
		}

		for console.HasCommand() {
			dispatcher.Dispatch(ctx, console.NextCommand())
		}
	}
}
