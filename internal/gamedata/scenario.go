package gamedata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario configures a game session: the board, the companies and
// players at the table, and the decks in play. Loaded from YAML; an
// empty path yields the default two-player session.
type Scenario struct {
	BoardRadius       int            `yaml:"board_radius"`
	StartingHand      int            `yaml:"starting_hand"`
	Companies         []CompanySpec  `yaml:"companies"`
	Players           []PlayerSpec   `yaml:"players"`
	Decks             []DeckSpec     `yaml:"decks"`
	StartingResources map[string]int `yaml:"starting_resources"`
}

// CompanySpec names a company and its one-character board symbol.
type CompanySpec struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// PlayerSpec binds a player to a company by name.
type PlayerSpec struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
}

// DeckSpec names a deck and the embedded card set that fills it.
type DeckSpec struct {
	Name    string `yaml:"name"`
	CardSet string `yaml:"card_set"`
	Shuffle bool   `yaml:"shuffle"`
}

// DefaultScenario returns the built-in two-player session.
func DefaultScenario() Scenario {
	return Scenario{
		BoardRadius:  3,
		StartingHand: 1,
		Companies: []CompanySpec{
			{Name: "Copperline Works", Symbol: "C"},
			{Name: "Ironroot Holdings", Symbol: "I"},
		},
		Players: []PlayerSpec{
			{Name: "Owen", Company: "Copperline Works"},
			{Name: "Aaron", Company: "Ironroot Holdings"},
		},
		Decks: []DeckSpec{
			{Name: "main", CardSet: "standard.json", Shuffle: true},
		},
		StartingResources: map[string]int{
			"talent": 0,
			"staff":  0,
			"gear":   0,
			"funds":  0,
		},
	}
}

// LoadScenario reads a scenario from the given YAML file. An empty path
// returns the default scenario.
func LoadScenario(path string) (Scenario, error) {
	if strings.TrimSpace(path) == "" {
		s := DefaultScenario()
		return s, s.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s := DefaultScenario()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks internal consistency of the scenario.
func (s Scenario) Validate() error {
	if s.BoardRadius < 0 {
		return fmt.Errorf("board_radius must be >= 0, got %d", s.BoardRadius)
	}
	if s.StartingHand < 0 {
		return fmt.Errorf("starting_hand must be >= 0, got %d", s.StartingHand)
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}

	companies := make(map[string]bool, len(s.Companies))
	for _, c := range s.Companies {
		if c.Name == "" {
			return fmt.Errorf("company with empty name")
		}
		if companies[c.Name] {
			return fmt.Errorf("duplicate company %q", c.Name)
		}
		companies[c.Name] = true
	}

	for _, p := range s.Players {
		if p.Name == "" {
			return fmt.Errorf("player with empty name")
		}
		if !companies[p.Company] {
			return fmt.Errorf("player %q references unknown company %q", p.Name, p.Company)
		}
	}

	decks := make(map[string]bool, len(s.Decks))
	for _, d := range s.Decks {
		if d.Name == "" {
			return fmt.Errorf("deck with empty name")
		}
		if decks[d.Name] {
			return fmt.Errorf("duplicate deck %q", d.Name)
		}
		if d.CardSet == "" {
			return fmt.Errorf("deck %q has no card_set", d.Name)
		}
		decks[d.Name] = true
	}
	return nil
}
