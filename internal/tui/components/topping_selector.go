package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toppings/internal/selection"
)

const toppingSelectorName = "ToppingSelector"

// Checkbox is the derived state of one topping control.
type Checkbox struct {
	Label   string
	Checked bool
}

// ToppingSelector renders one checkbox per topping option. Checked state
// is read from the store on every call and never cached.
type ToppingSelector struct {
	options []string
}

// NewToppingSelector creates a selector for options.
func NewToppingSelector(options []string) ToppingSelector {
	return ToppingSelector{options: append([]string(nil), options...)}
}

// Options returns the selectable toppings in display order.
func (t ToppingSelector) Options() []string {
	return append([]string(nil), t.options...)
}

// Checkboxes derives each control's state from the store.
func (t ToppingSelector) Checkboxes(store *selection.Store) ([]Checkbox, error) {
	store, err := selection.Require(store, toppingSelectorName)
	if err != nil {
		return nil, err
	}
	boxes := make([]Checkbox, 0, len(t.options))
	for _, option := range t.options {
		boxes = append(boxes, Checkbox{Label: option, Checked: store.HasTopping(option)})
	}
	return boxes, nil
}

// Toggle flips the option at index. Out-of-range indexes are ignored.
func (t ToppingSelector) Toggle(store *selection.Store, index int) error {
	store, err := selection.Require(store, toppingSelectorName)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(t.options) {
		return nil
	}
	store.ToggleTopping(t.options[index])
	return nil
}

// View renders the checkboxes one per line.
func (t ToppingSelector) View(store *selection.Store, cursor int, focused bool) (string, error) {
	boxes, err := t.Checkboxes(store)
	if err != nil {
		return "", err
	}

	lines := []string{headingStyle.Render("Select Toppings")}
	for i, box := range boxes {
		mark := "[ ]"
		if box.Checked {
			mark = checkedStyle.Render("[x]")
		}
		pointer := "  "
		if focused && i == cursor {
			pointer = cursorStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", pointer, mark, box.Label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n")), nil
}
