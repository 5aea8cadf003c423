// Package render draws a grid as bordered text with coloured counts.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	Hidden      = ' '
	Defused     = '.'
	Suspected   = '?'
	Detonated   = 'X'
	DefaultMine = '*'
)

// ANSI colours for counts 1 through 8.
var countColors = [...]lipgloss.Color{
	"12", // blue
	"10", // green
	"11", // yellow
	"9",  // red
	"13", // magenta
	"14", // cyan
	"3",  // dark yellow
	"1",  // dark red
}

type Options struct {
	Color     bool
	MineGlyph rune // drawn for mines when they are shown, [DefaultMine] if zero
}

type Renderer struct {
	mine     string
	counts   [9]lipgloss.Style
	exploded lipgloss.Style
}

func New(opts Options) *Renderer {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ANSI
	}
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(profile)

	r := &Renderer{
		mine:     string(DefaultMine),
		exploded: lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	if opts.MineGlyph != 0 {
		r.mine = string(opts.MineGlyph)
	}
	r.counts[0] = lr.NewStyle()
	for i, c := range countColors {
		r.counts[i+1] = lr.NewStyle().Foreground(c)
	}
	return r
}

// Render draws g. With showMines untouched mines are drawn with the mine
// glyph, which is how a lost board is shown.
func (r *Renderer) Render(g mines.Grid, showMines bool) string {
	var (
		b     strings.Builder
		width = g.Width()
		pad   = strings.Repeat(" ", len(strconv.Itoa(width))-1)
	)
	b.WriteString(Header(width))
	b.WriteByte('\n')
	for row := range g {
		b.WriteByte('|')
		for _, t := range g[row] {
			b.WriteString(r.glyph(t, showMines))
			b.WriteByte('|')
			b.WriteString(pad)
		}
		b.WriteByte(' ')
		b.WriteString(mines.RowLabel(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) Fprint(w io.Writer, g mines.Grid, showMines bool) error {
	_, err := io.WriteString(w, r.Render(g, showMines))
	return err
}

func (r *Renderer) glyph(t mines.Tile, showMines bool) string {
	switch t.State {
	case mines.Open:
		return r.counts[t.Count].Render(strconv.Itoa(int(t.Count)))
	case mines.Marked:
		return string(Defused)
	case mines.Question:
		return string(Suspected)
	case mines.Exploded:
		return r.exploded.Render(string(Detonated))
	}
	if t.Mine && showMines {
		return r.mine
	}
	return string(Hidden)
}

// Header numbers the columns from 1, each label padded to the width of the
// widest one plus a space.
func Header(width int) string {
	if width <= 0 {
		return ""
	}
	var (
		b    strings.Builder
		cell = len(strconv.Itoa(width)) + 1
	)
	b.WriteByte(' ')
	for col := 1; col <= width; col++ {
		label := strconv.Itoa(col)
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", cell-len(label)))
	}
	return b.String()
}
