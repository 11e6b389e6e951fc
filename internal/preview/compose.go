// Package preview turns a builder selection into a layered composition: a
// base image sized for the selected size with topping images placed on top.
package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
	"github.com/alexisbeaulieu97/toppings/internal/selection"
)

const noToppings = "no toppings"

// Composition is the rendered preview. It is a plain value: two calls to
// Compose with equal inputs return deeply equal compositions.
type Composition struct {
	Variant string         `json:"variant" yaml:"variant"`
	Summary string         `json:"summary" yaml:"summary"`
	Width   int            `json:"width,omitempty" yaml:"width,omitempty"`
	Base    *BaseLayer     `json:"base,omitempty" yaml:"base,omitempty"`
	Layers  []ToppingLayer `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// BaseLayer is the base image scaled for the selected size.
type BaseLayer struct {
	Image      string `json:"image" yaml:"image"`
	Width      int    `json:"width" yaml:"width"`
	MarginLeft int    `json:"margin_left,omitempty" yaml:"margin_left,omitempty"`
	Color      string `json:"-" yaml:"-"`
}

// ToppingLayer holds every instance of one selected topping.
type ToppingLayer struct {
	Name      string        `json:"name" yaml:"name"`
	Image     string        `json:"image" yaml:"image"`
	Style     catalog.Style `json:"style" yaml:"style"`
	Instances []Instance    `json:"instances" yaml:"instances"`
	Glyph     string        `json:"-" yaml:"-"`
	Color     string        `json:"-" yaml:"-"`
}

// Instance is a single placed copy of a topping image. X and Y are the
// resolved top-left corner in preview pixels.
type Instance struct {
	Placement catalog.Placement `json:"placement" yaml:"placement"`
	X         float64           `json:"x" yaml:"x"`
	Y         float64           `json:"y" yaml:"y"`
}

// InstanceCount returns the number of placed topping images.
func (c Composition) InstanceCount() int {
	total := 0
	for _, layer := range c.Layers {
		total += len(layer.Instances)
	}
	return total
}

// Layer returns the layer for the named topping.
func (c Composition) Layer(name string) (ToppingLayer, bool) {
	for _, layer := range c.Layers {
		if layer.Name == name {
			return layer, true
		}
	}
	return ToppingLayer{}, false
}

// Compose renders sel against variant.
//
// An unknown size yields no base layer and no container width. Toppings are
// laid out in catalog order; selected names missing from the catalog
// contribute no layer but still appear in the summary.
func Compose(variant catalog.Variant, sel selection.Selection) Composition {
	comp := Composition{
		Variant: variant.Name,
		Summary: Summary(variant.Label, sel),
	}

	size, ok := variant.LookupSize(sel.Size)
	if ok {
		comp.Width = size.Width
		comp.Base = &BaseLayer{
			Image:      variant.BaseImage,
			Width:      size.Width,
			MarginLeft: size.MarginLeft,
			Color:      variant.BaseColor,
		}
	}

	// The base image is square, so the container is as tall as it is wide.
	container := float64(comp.Width)

	for _, topping := range variant.Toppings {
		if !sel.Toppings.Has(topping.Name) {
			continue
		}
		item := float64(topping.Style.Width)
		layer := ToppingLayer{
			Name:      topping.Name,
			Image:     topping.Image,
			Style:     topping.Style,
			Instances: make([]Instance, 0, len(topping.Placements)),
			Glyph:     topping.Glyph,
			Color:     topping.Color,
		}
		for _, placement := range topping.Placements {
			pt := placement.Resolve(container, container, item, item)
			layer.Instances = append(layer.Instances, Instance{Placement: placement, X: pt.X, Y: pt.Y})
		}
		comp.Layers = append(comp.Layers, layer)
	}

	return comp
}

// Summary builds the human-readable line naming the size and toppings in
// selection order.
func Summary(label string, sel selection.Selection) string {
	if strings.TrimSpace(label) == "" {
		label = "Pizza"
	}
	toppings := noToppings
	if sel.Toppings.Len() > 0 {
		toppings = strings.Join(sel.Toppings.Names(), ", ")
	}
	return fmt.Sprintf("%s: %s with %s", label, sel.Size, toppings)
}
