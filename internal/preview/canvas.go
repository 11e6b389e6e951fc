package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal cells are roughly twice as tall as they are wide.
const (
	CellWidth  = 10
	CellHeight = 20

	baseGlyph  = "░"
	emptyGlyph = " "
)

type cell struct {
	glyph string
	color string
}

// Canvas is a rasterized Composition on a grid of terminal cells.
type Canvas struct {
	cols  int
	rows  int
	cells [][]cell
}

// Rasterize draws comp onto a character grid. A composition without a base
// layer yields an empty canvas.
func Rasterize(comp Composition) Canvas {
	if comp.Base == nil || comp.Width <= 0 {
		return Canvas{}
	}

	cols := int(math.Ceil(float64(comp.Width) / CellWidth))
	rows := int(math.Ceil(float64(comp.Width) / CellHeight))
	c := Canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for r := range c.cells {
		c.cells[r] = make([]cell, cols)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{glyph: emptyGlyph}
		}
	}

	c.drawBase(*comp.Base)
	for _, layer := range comp.Layers {
		c.drawLayer(layer)
	}

	return c
}

func (c *Canvas) drawBase(base BaseLayer) {
	radius := float64(base.Width) / 2
	cx := float64(base.MarginLeft) + radius
	cy := radius

	for r := 0; r < c.rows; r++ {
		for col := 0; col < c.cols; col++ {
			px := (float64(col) + 0.5) * CellWidth
			py := (float64(r) + 0.5) * CellHeight
			if math.Hypot(px-cx, py-cy) <= radius {
				c.cells[r][col] = cell{glyph: baseGlyph, color: base.Color}
			}
		}
	}
}

func (c *Canvas) drawLayer(layer ToppingLayer) {
	glyph := layer.Glyph
	if glyph == "" {
		glyph = "*"
	}
	half := float64(layer.Style.Width) / 2

	for _, inst := range layer.Instances {
		col := clamp(int(math.Floor((inst.X+half)/CellWidth)), c.cols)
		row := clamp(int(math.Floor((inst.Y+half)/CellHeight)), c.rows)
		c.cells[row][col] = cell{glyph: glyph, color: layer.Color}
	}
}

func clamp(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

// Size returns the grid dimensions in cells.
func (c Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// GlyphAt returns the glyph drawn at the given cell, or "" when out of range.
func (c Canvas) GlyphAt(col, row int) string {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return ""
	}
	return c.cells[row][col].glyph
}

// Count returns how many cells show glyph.
func (c Canvas) Count(glyph string) int {
	n := 0
	for _, row := range c.cells {
		for _, cl := range row {
			if cl.glyph == glyph {
				n++
			}
		}
	}
	return n
}

// Plain renders the canvas without colour, trailing spaces trimmed.
func (c Canvas) Plain() string {
	lines := make([]string, 0, c.rows)
	for _, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteString(cl.glyph)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// View renders the canvas with each glyph in its layer colour.
func (c Canvas) View() string {
	styles := map[string]lipgloss.Style{}
	lines := make([]string, 0, c.rows)
	for _, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if cl.color == "" {
				b.WriteString(cl.glyph)
				continue
			}
			style, ok := styles[cl.color]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(cl.color))
				styles[cl.color] = style
			}
			b.WriteString(style.Render(cl.glyph))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
