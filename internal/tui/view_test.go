package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
)

func TestViewShowsEverySection(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Variant: catalog.Pizza()})
	view := m.View()

	assert.Contains(t, view, "Pizza Builder")
	assert.Contains(t, view, "Select Size")
	assert.Contains(t, view, "Select Toppings")
	assert.Contains(t, view, "Pizza: medium with no toppings")
	assert.Contains(t, view, "0/3 toppings")
	assert.Contains(t, view, "quit")
}

func TestViewTracksSelection(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Variant: catalog.Pizza()})
	m, _ = send(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyTab}, runes("3"))

	view := m.View()
	assert.Contains(t, view, "Pizza: large with tomato")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "1/3 toppings")
}

func TestViewAfterQuitPrintsSummary(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Variant: catalog.Cookie()})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("2"), runes("q"))

	assert.Equal(t, "Cookie: medium with zigzag\n", m.View())
}
