package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toppings/internal/selection"
)

const sizeSelectorName = "SizeSelector"

// SizeControl is the derived state of one size button.
type SizeControl struct {
	Label  string
	Active bool
}

// SizeSelector renders one button per size option. The options are the
// caller's and are not checked against any catalog.
type SizeSelector struct {
	options []string
}

// NewSizeSelector creates a selector for options.
func NewSizeSelector(options []string) SizeSelector {
	return SizeSelector{options: append([]string(nil), options...)}
}

// Options returns the selectable sizes in display order.
func (s SizeSelector) Options() []string {
	return append([]string(nil), s.options...)
}

// Controls derives each button's state from the store.
func (s SizeSelector) Controls(store *selection.Store) ([]SizeControl, error) {
	store, err := selection.Require(store, sizeSelectorName)
	if err != nil {
		return nil, err
	}
	current := store.Size()
	controls := make([]SizeControl, 0, len(s.options))
	for _, option := range s.options {
		controls = append(controls, SizeControl{Label: option, Active: option == current})
	}
	return controls, nil
}

// Select activates the option at index. Out-of-range indexes are ignored.
func (s SizeSelector) Select(store *selection.Store, index int) error {
	store, err := selection.Require(store, sizeSelectorName)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(s.options) {
		return nil
	}
	store.SetSize(s.options[index])
	return nil
}

// View renders the buttons in a row. cursor marks the focused button when
// focused is true.
func (s SizeSelector) View(store *selection.Store, cursor int, focused bool) (string, error) {
	controls, err := s.Controls(store)
	if err != nil {
		return "", err
	}

	buttons := make([]string, 0, len(controls))
	for i, control := range controls {
		label := control.Label
		style := optionStyle
		if control.Active {
			label = "● " + label
			style = activeStyle
		}
		rendered := style.Render(label)
		if focused && i == cursor {
			rendered = cursorStyle.Render("[") + rendered + cursorStyle.Render("]")
		} else {
			rendered = " " + rendered + " "
		}
		buttons = append(buttons, rendered)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Select Size"),
		strings.Join(buttons, ""),
	), nil
}
