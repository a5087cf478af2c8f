package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/owenmb/hexcorp/data"
)

const cardSetSchemaFile = "cardset.schema.json"

// ActionDef is one raw action record inside a card trigger. The action
// field is an open string so card sets can carry kinds this build does
// not model yet; unrecognized kinds are skipped at execution time.
type ActionDef struct {
	Action string `json:"action"`
	Type   string `json:"type,omitempty"`
	Amount int    `json:"amount,omitempty"`
}

// CardDef defines a card template loaded from a card-set JSON file.
type CardDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Copies      int                    `json:"copies,omitempty"`
	Triggers    map[string][]ActionDef `json:"triggers,omitempty"`
}

// Normalize applies the documented defaults to a raw definition.
func (d *CardDef) Normalize() {
	if d.Name == "" {
		d.Name = "Unnamed Card"
	}
	if d.Copies < 1 {
		d.Copies = 1
	}
}

// CardSetFile represents the structure of a card-set JSON file.
type CardSetFile struct {
	Cards []CardDef `json:"cards"`
}

// LoadCardSet loads card definitions from the named embedded card set.
// The raw bytes are validated against the embedded card-set schema
// before decoding, so a malformed file is rejected as a whole rather
// than half-loaded.
func LoadCardSet(filename string) ([]CardDef, error) {
	raw, err := data.FS().ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := validateCardSet(raw); err != nil {
		return nil, fmt.Errorf("card set %s: %w", filename, err)
	}

	var file CardSetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	for i := range file.Cards {
		file.Cards[i].Normalize()
	}
	return file.Cards, nil
}

// MustLoadCardSet loads a card set, panicking on error.
func MustLoadCardSet(filename string) []CardDef {
	defs, err := LoadCardSet(filename)
	if err != nil {
		panic(err)
	}
	return defs
}

// validateCardSet checks raw card-set bytes against the embedded schema.
func validateCardSet(raw []byte) error {
	schemaBytes, err := data.FS().ReadFile(cardSetSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(cardSetSchemaFile, bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("failed to register schema: %w", err)
	}
	schema, err := compiler.Compile(cardSetSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
