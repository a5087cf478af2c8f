package gamedata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCardSet(t *testing.T) {
	defs, err := LoadCardSet("standard.json")
	if err != nil {
		t.Fatalf("Failed to load card set: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("Expected at least one card definition")
	}

	// Verify expected cards exist with defaults applied.
	byName := make(map[string]CardDef)
	for _, d := range defs {
		byName[d.Name] = d
	}

	scout, ok := byName["Scout"]
	if !ok {
		t.Fatal("Expected card 'Scout' not found")
	}
	if scout.Copies != 3 {
		t.Errorf("Scout copies = %d, want 3", scout.Copies)
	}
	if len(scout.Triggers["onPlay"]) != 1 {
		t.Errorf("Scout onPlay actions = %d, want 1", len(scout.Triggers["onPlay"]))
	}

	depot, ok := byName["Supply Depot"]
	if !ok {
		t.Fatal("Expected card 'Supply Depot' not found")
	}
	if depot.Copies != 1 {
		t.Errorf("Omitted copies should default to 1, got %d", depot.Copies)
	}
}

func TestLoadCardSetMissing(t *testing.T) {
	if _, err := LoadCardSet("no-such-set.json"); err == nil {
		t.Error("Expected error for missing card set")
	}
}

func TestCardDefNormalize(t *testing.T) {
	d := CardDef{}
	d.Normalize()
	if d.Name != "Unnamed Card" {
		t.Errorf("Default name = %q, want 'Unnamed Card'", d.Name)
	}
	if d.Copies != 1 {
		t.Errorf("Default copies = %d, want 1", d.Copies)
	}
}

func TestValidateCardSetRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{nope"},
		{"missing cards key", `{"decks": []}`},
		{"cards not array", `{"cards": {}}`},
		{"copies below one", `{"cards": [{"name": "X", "copies": 0}]}`},
		{"action missing kind", `{"cards": [{"name": "X", "triggers": {"onPlay": [{"type": "funds"}]}}]}`},
		{"unknown field", `{"cards": [{"name": "X", "cost": 3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateCardSet([]byte(tt.raw)); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette()

	for _, name := range []string{"Red", "Yellow", "Blue", "Green", "Purple", "White", "Gray", NeutralColor} {
		if !p.Valid(name) {
			t.Errorf("Palette should recognize %q", name)
		}
	}
	if p.Valid("Chartreuse") {
		t.Error("Palette should not recognize 'Chartreuse'")
	}

	// Unrecognized names fall back to the neutral color.
	if p.Color("Chartreuse") != p.Color(NeutralColor) {
		t.Error("Unknown color should render as neutral")
	}

	claimable := p.Claimable()
	for _, name := range claimable {
		if name == NeutralColor {
			t.Error("Claimable colors must not include the neutral baseline")
		}
	}
	if len(claimable) != len(p.Names())-1 {
		t.Errorf("Claimable count = %d, want %d", len(claimable), len(p.Names())-1)
	}
}

func TestDefaultScenarioValidates(t *testing.T) {
	s := DefaultScenario()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default scenario should validate: %v", err)
	}
	if s.BoardRadius != 3 {
		t.Errorf("Default radius = %d, want 3", s.BoardRadius)
	}
	if len(s.Players) != 2 {
		t.Errorf("Default players = %d, want 2", len(s.Players))
	}
}

func TestLoadScenarioFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	content := `
board_radius: 2
companies:
  - name: Acme
    symbol: A
players:
  - name: Solo
    company: Acme
decks:
  - name: main
    card_set: standard.json
    shuffle: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("Failed to load scenario: %v", err)
	}
	if s.BoardRadius != 2 {
		t.Errorf("Radius = %d, want 2", s.BoardRadius)
	}
	if len(s.Players) != 1 || s.Players[0].Company != "Acme" {
		t.Errorf("Unexpected players: %+v", s.Players)
	}
	// Defaults not overridden by the file survive.
	if s.StartingHand != 1 {
		t.Errorf("StartingHand = %d, want default 1", s.StartingHand)
	}
}

func TestScenarioValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"negative radius", func(s *Scenario) { s.BoardRadius = -1 }},
		{"no players", func(s *Scenario) { s.Players = nil }},
		{"unknown company", func(s *Scenario) { s.Players[0].Company = "Ghost Corp" }},
		{"duplicate deck", func(s *Scenario) { s.Decks = append(s.Decks, s.Decks[0]) }},
		{"deck without card set", func(s *Scenario) { s.Decks[0].CardSet = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScenario()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}
