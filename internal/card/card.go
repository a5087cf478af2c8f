package card

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/owenmb/hexcorp/internal/gamedata"
)

// Trigger names the engine fires.
const (
	// TriggerOnPlay fires once when a card is successfully played.
	TriggerOnPlay = "onPlay"
	// TriggerStartOfDay fires on every played card when a new day begins.
	TriggerStartOfDay = "onStartOfDay"
)

// ResourceSink is the part of a player a card trigger can act on.
type ResourceSink interface {
	SinkName() string
	AddResource(resource string, amount int)
}

// Logf receives the human-readable lines trigger execution emits.
type Logf func(format string, args ...any)

// Card is an instance of a card template. Cards are value objects: each
// copy carries its own trigger table and a unique instance ID so copies
// of the same template can be told apart in logs.
type Card struct {
	ID          string
	Name        string
	Description string
	triggers    map[string][]Action
}

// FromDef builds a single card instance from a definition. Call it once
// per copy; every instance gets a fresh ID.
func FromDef(def gamedata.CardDef) Card {
	c := Card{
		ID:          uuid.NewString(),
		Name:        def.Name,
		Description: def.Description,
	}
	if len(def.Triggers) > 0 {
		c.triggers = make(map[string][]Action, len(def.Triggers))
		for trigger, defs := range def.Triggers {
			actions := make([]Action, len(defs))
			for i, d := range defs {
				actions[i] = actionFromDef(d)
			}
			c.triggers[trigger] = actions
		}
	}
	return c
}

// Clone returns a deep copy of the card with a new instance ID.
func (c Card) Clone() Card {
	out := c
	out.ID = uuid.NewString()
	if c.triggers != nil {
		out.triggers = make(map[string][]Action, len(c.triggers))
		for trigger, actions := range c.triggers {
			cp := make([]Action, len(actions))
			copy(cp, actions)
			out.triggers[trigger] = cp
		}
	}
	return out
}

// HasTrigger reports whether the card reacts to the named trigger.
func (c Card) HasTrigger(trigger string) bool {
	_, ok := c.triggers[trigger]
	return ok
}

// ExecuteTrigger applies every action tied to the named trigger, in
// stored order, against the sink. A trigger the card does not carry is
// a silent no-op; cards need not implement every trigger. Unknown
// action kinds are skipped.
func (c Card) ExecuteTrigger(trigger string, sink ResourceSink, logf Logf) {
	actions, ok := c.triggers[trigger]
	if !ok {
		return
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	for _, action := range actions {
		switch action.Kind {
		case KindAddResource:
			sink.AddResource(action.Resource, action.Amount)
			logf("%s gains %d %s from %s (%s)",
				sink.SinkName(), action.Amount, action.Resource, c.Name, trigger)
		default:
			// Forward compatibility: kinds this build does not model
			// are ignored rather than failing the whole trigger.
		}
	}
}

// String returns the card's name and short instance ID.
func (c Card) String() string {
	id := c.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s [%s]", c.Name, id)
}
