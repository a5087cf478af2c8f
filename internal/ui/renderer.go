package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/owenmb/hexcorp/internal/game"
	"github.com/owenmb/hexcorp/internal/gamedata"
)

// Renderer draws the board, the player status strip and the console.
// It only reads game state; all mutation goes through the dispatcher.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws one full frame.
func (r *Renderer) Render(g *game.Game, console *Console) {
	r.screen.Clear()

	boardRows := r.renderBoard(g)
	r.renderStatus(g, boardRows+1)
	r.renderConsole(console)

	r.screen.Show()
}

// renderBoard projects cube coordinates onto the terminal grid and
// returns the number of rows used. Each tile shows the owning company's
// symbol (or a dot) on the tile's color.
func (r *Renderer) renderBoard(g *game.Game) int {
	b := g.Board()
	radius := b.Radius()

	rows := 0
	for _, c := range b.Coords() {
		tile, _ := b.Tile(c)

		// Axial projection: columns double and shear by the row so hex
		// neighbors stay adjacent on screen.
		row := c.Z + radius
		col := 2*c.X + c.Z + 3*radius

		glyph := '.'
		if tile.Owner != nil {
			glyph = tile.Owner.SymbolRune()
		}
		r.screen.SetContent(col, row, glyph, r.palette.GlyphStyle(tile.Color))
		if row+1 > rows {
			rows = row + 1
		}
	}
	return rows
}

// renderStatus draws the day counter and each player's line.
func (r *Renderer) renderStatus(g *game.Game, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	activeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	r.putString(0, y, fmt.Sprintf("Day %d", g.Day()), style)
	for i, p := range g.Players() {
		s := style
		marker := ' '
		if i == g.ActiveIndex() {
			s = activeStyle
			marker = '*'
		}
		company := "-"
		if p.Company != nil {
			company = p.Company.Name
		}
		line := fmt.Sprintf("%c %d %s (%s)", marker, i, p.Name, company)
		r.putString(0, y+1+i, line, s)
	}
}

// renderConsole draws the scrollback above the prompt at the bottom of
// the screen.
func (r *Renderer) renderConsole(console *Console) {
	_, height := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	promptY := height - 1
	r.putString(0, promptY, "> "+console.InputLine(), style)

	lines := console.Lines()
	y := promptY - len(lines)
	for i, line := range lines {
		r.putString(0, y+i, line, style.Dim(true))
	}
}

// putString writes a string starting at (x, y).
func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
