package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Style is applied to every rendered instance of a topping.
type Style struct {
	Width        int `json:"width" yaml:"width"`
	BorderRadius int `json:"border_radius,omitempty" yaml:"border_radius,omitempty"`
}

// Topping describes one selectable topping and where it lands on the base.
type Topping struct {
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	Placements []Placement `json:"placements"`
	Style      Style       `json:"style"`

	// Glyph and Color are used by the terminal canvas only.
	Glyph string `json:"-"`
	Color string `json:"-"`
}

// Size maps a size name to the base image width. MarginLeft corrects the
// horizontal centering of the base image for that size.
type Size struct {
	Name       string `json:"name"`
	Width      int    `json:"width"`
	MarginLeft int    `json:"margin_left,omitempty"`
}

// Variant is a complete builder catalog: a base image, its size table and
// the toppings that can be placed on it.
type Variant struct {
	Name      string
	Label     string
	BaseImage string
	BaseColor string
	Sizes     []Size
	Toppings  []Topping
}

// SizeNames returns the size names in table order.
func (v Variant) SizeNames() []string {
	names := make([]string, 0, len(v.Sizes))
	for _, s := range v.Sizes {
		names = append(names, s.Name)
	}
	return names
}

// ToppingNames returns the topping names in catalog order.
func (v Variant) ToppingNames() []string {
	names := make([]string, 0, len(v.Toppings))
	for _, t := range v.Toppings {
		names = append(names, t.Name)
	}
	return names
}

// LookupSize resolves a size name against the variant's size table.
func (v Variant) LookupSize(name string) (Size, bool) {
	for _, s := range v.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

// LookupTopping returns the catalog entry for name.
func (v Variant) LookupTopping(name string) (Topping, bool) {
	for _, t := range v.Toppings {
		if t.Name == name {
			return t, true
		}
	}
	return Topping{}, false
}

// DefaultSize is the middle entry of the size table.
func (v Variant) DefaultSize() string {
	return MiddleOption(v.SizeNames())
}

// MiddleOption returns the middle element of options, or "" when empty.
func MiddleOption(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[len(options)/2]
}

// standardSizes returns a fresh size table. Each variant owns its copy.
func standardSizes() []Size {
	return []Size{
		{Name: "small", Width: 150},
		{Name: "medium", Width: 250},
		{Name: "large", Width: 350, MarginLeft: -17},
	}
}

var pizza = Variant{
	Name:      "pizza",
	Label:     "Pizza",
	BaseImage: "images/pizza.png",
	BaseColor: "180",
	Sizes:     standardSizes(),
	Toppings: []Topping{
		{
			Name:  "cheese",
			Image: "images/cheese.png",
			Placements: []Placement{
				PresetCheeseTopLeft,
				PresetCheeseTopRight,
				PresetBottomCenter,
			},
			Style: Style{Width: 20},
			Glyph: "■",
			Color: "220",
		},
		{
			Name:  "mushrooms",
			Image: "images/mushroom.png",
			Placements: []Placement{
				PresetMushroomTopCenter,
				PresetMidLeft,
				PresetMidRight,
				PresetMushroomBottomLeft,
				PresetMushroomBottomRight,
				PresetMushroomCenter,
			},
			Style: Style{Width: 22, BorderRadius: 11},
			Glyph: "♣",
			Color: "137",
		},
		{
			Name:  "tomato",
			Image: "images/tomato.png",
			Placements: []Placement{
				PresetCenter,
				PresetTopLeft,
				PresetTopRight,
				PresetBottomLeft,
				PresetBottomRight,
				PresetTopCenter,
			},
			Style: Style{Width: 30, BorderRadius: 10},
			Glyph: "●",
			Color: "196",
		},
	},
}

var cookie = Variant{
	Name:      "cookie",
	Label:     "Cookie",
	BaseImage: "images/cookie.png",
	BaseColor: "136",
	Sizes:     standardSizes(),
	Toppings: []Topping{
		{
			Name:  "candy",
			Image: "images/candy.png",
			Placements: []Placement{
				PresetCenter,
				PresetTopLeft,
				PresetBottomRight,
			},
			Style: Style{Width: 24, BorderRadius: 12},
			Glyph: "◆",
			Color: "205",
		},
		{
			Name:  "zigzag",
			Image: "images/zigzag.png",
			Placements: []Placement{
				PresetTopCenter,
				PresetMidLeft,
				PresetMidRight,
				PresetBottomLeft,
				PresetBottomRight,
				PresetBottomCenter,
			},
			Style: Style{Width: 18},
			Glyph: "≈",
			Color: "94",
		},
	},
}

var variants = map[string]Variant{
	pizza.Name:  pizza,
	cookie.Name: cookie,
}

// Pizza returns a copy of the pizza catalog.
func Pizza() Variant { return pizza.clone() }

// Cookie returns a copy of the cookie catalog.
func Cookie() Variant { return cookie.clone() }

// clone deep-copies v so callers can never reach the package-level tables.
func (v Variant) clone() Variant {
	out := v
	out.Sizes = append([]Size(nil), v.Sizes...)
	out.Toppings = make([]Topping, len(v.Toppings))
	for i, t := range v.Toppings {
		t.Placements = append([]Placement(nil), t.Placements...)
		out.Toppings[i] = t
	}
	return out
}

// Lookup returns the variant registered under name (case-insensitive).
func Lookup(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(VariantNames(), ", "))
	}
	return v.clone(), nil
}

// VariantNames lists the registered variants alphabetically.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
