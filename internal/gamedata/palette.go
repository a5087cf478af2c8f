package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// NeutralColor is the color of unowned tiles and the fallback for
// unknown color names.
const NeutralColor = "Neutral"

// paletteEntry binds a recognized color name to its display color.
type paletteEntry struct {
	name string
	hex  string
}

// defaultEntries is the recognized color table. Order matters: it is the
// order colors are listed to players and the order setup picks from.
var defaultEntries = []paletteEntry{
	{"Red", "#D97B66"},
	{"Yellow", "#E3C567"},
	{"Blue", "#6C8EBF"},
	{"Green", "#7CA982"},
	{"Purple", "#A88EC6"},
	{"White", "#F2E9E4"},
	{"Gray", "#B0A8B9"},
	{NeutralColor, "#4B4A54"},
}

// Palette is the immutable table of recognized tile colors. It is built
// once at startup and injected into the board, engine and renderer.
type Palette struct {
	names  []string
	colors map[string]colorful.Color
}

// NewPalette builds the standard palette.
func NewPalette() *Palette {
	p := &Palette{colors: make(map[string]colorful.Color, len(defaultEntries))}
	for _, e := range defaultEntries {
		c, err := colorful.Hex(e.hex)
		if err != nil {
			panic(fmt.Sprintf("bad palette entry %s: %v", e.name, err))
		}
		p.names = append(p.names, e.name)
		p.colors[e.name] = c
	}
	return p
}

// Valid reports whether the color name is recognized.
func (p *Palette) Valid(name string) bool {
	_, ok := p.colors[name]
	return ok
}

// Names returns the recognized color names in listing order.
func (p *Palette) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Claimable returns the color names a player may build with, which is
// every recognized color except the neutral baseline.
func (p *Palette) Claimable() []string {
	out := make([]string, 0, len(p.names)-1)
	for _, n := range p.names {
		if n != NeutralColor {
			out = append(out, n)
		}
	}
	return out
}

// Color returns the terminal color for a name, falling back to the
// neutral color for unrecognized names.
func (p *Palette) Color(name string) tcell.Color {
	c, ok := p.colors[name]
	if !ok {
		c = p.colors[NeutralColor]
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// GlyphStyle returns a style with the named color as background and a
// readable foreground chosen by luminance.
func (p *Palette) GlyphStyle(name string) tcell.Style {
	c, ok := p.colors[name]
	if !ok {
		c = p.colors[NeutralColor]
	}
	fg := tcell.ColorBlack
	if _, _, l := c.Hsl(); l < 0.5 {
		fg = tcell.ColorWhite
	}
	return tcell.StyleDefault.Background(p.Color(name)).Foreground(fg)
}
