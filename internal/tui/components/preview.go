package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
	"github.com/alexisbeaulieu97/toppings/internal/preview"
	"github.com/alexisbeaulieu97/toppings/internal/selection"
)

const previewName = "Preview"

// Preview shows the summary line above the rasterized composition.
type Preview struct {
	variant catalog.Variant
}

// NewPreview creates a preview bound to a catalog.
func NewPreview(variant catalog.Variant) Preview {
	return Preview{variant: variant}
}

// Composition composes the store's current selection.
func (p Preview) Composition(store *selection.Store) (preview.Composition, error) {
	store, err := selection.Require(store, previewName)
	if err != nil {
		return preview.Composition{}, err
	}
	return preview.Compose(p.variant, store.Snapshot()), nil
}

// View renders the preview.
func (p Preview) View(store *selection.Store) (string, error) {
	comp, err := p.Composition(store)
	if err != nil {
		return "", err
	}

	sections := []string{summaryStyle.Render(comp.Summary)}
	canvas := preview.Rasterize(comp)
	if cols, _ := canvas.Size(); cols > 0 {
		sections = append(sections, previewBorder.Render(canvas.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), nil
}
