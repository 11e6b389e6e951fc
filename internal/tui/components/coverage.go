package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Coverage shows how many of the available toppings are selected.
type Coverage struct {
	bar   progress.Model
	total int
}

// NewCoverage creates a coverage bar for total available toppings.
func NewCoverage(total int) Coverage {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 20
	return Coverage{bar: bar, total: total}
}

// View renders the bar for the given number of selected toppings.
func (c Coverage) View(selected int) string {
	ratio := 0.0
	if c.total > 0 {
		ratio = math.Min(1.0, float64(selected)/float64(c.total))
	}
	label := mutedStyle.Render(fmt.Sprintf("%d/%d toppings", selected, c.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, c.bar.ViewAs(ratio), " ", label)
}
