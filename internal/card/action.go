// Package card provides card templates, trigger execution and decks.
package card

import "github.com/owenmb/hexcorp/internal/gamedata"

// Kind identifies what an action does. The set is closed: execution
// switches over known kinds and skips anything else, so card sets can
// carry kinds from newer builds without breaking this one.
type Kind string

const (
	// KindAddResource grants (or, with a negative amount, charges) a
	// resource on the triggering player.
	KindAddResource Kind = "addResource"
)

// Action is one effect a card trigger performs.
type Action struct {
	Kind     Kind
	Resource string
	Amount   int
}

// actionFromDef converts a raw action record into a tagged Action.
// Unknown action strings are preserved as-is in Kind and ignored when
// the trigger executes.
func actionFromDef(def gamedata.ActionDef) Action {
	return Action{
		Kind:     Kind(def.Action),
		Resource: def.Type,
		Amount:   def.Amount,
	}
}
