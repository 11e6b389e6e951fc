package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toppings/internal/preview"
)

// View renders the selectors on the left and the preview on the right.
func (m Model) View() string {
	if m.quitting {
		return m.summary() + "\n"
	}

	title := titleStyle.Render(fmt.Sprintf("%s Builder", m.variant.Label))

	sizes, err := m.sizes.View(m.store, m.sizeCursor, m.focus == SectionSizes)
	if err != nil {
		return failureStyle.Render(err.Error())
	}
	toppings, err := m.toppings.View(m.store, m.toppingCursor, m.focus == SectionToppings)
	if err != nil {
		return failureStyle.Render(err.Error())
	}
	pv, err := m.preview.View(m.store)
	if err != nil {
		return failureStyle.Render(err.Error())
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.sectionStyle(SectionSizes).Render(sizes),
		m.sectionStyle(SectionToppings).Render(toppings),
		sectionStyle.Render(m.coverage.View(m.selectedOptionCount())),
	)

	sections := []string{
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, left, previewStyle.Render(pv)),
	}
	if m.err != nil {
		sections = append(sections, failureStyle.Render(m.err.Error()))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) sectionStyle(s Section) lipgloss.Style {
	if m.focus == s {
		return focusedStyle
	}
	return blurredStyle
}

func (m Model) summary() string {
	return preview.Summary(m.variant.Label, m.store.Snapshot())
}
