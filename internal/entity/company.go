// Package entity provides the game entities: companies and players.
package entity

// Company is an entity that can own tiles. Companies live for the whole
// session in an arena owned by the game engine; tiles and players hold
// shared, non-owning references to them.
type Company struct {
	Name   string
	Symbol string
}

// NewCompany creates a company with the given name and board symbol.
func NewCompany(name, symbol string) *Company {
	return &Company{Name: name, Symbol: symbol}
}

// SymbolRune returns the company symbol as a rune for rendering.
func (c *Company) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return []rune(c.Symbol)[0]
}
