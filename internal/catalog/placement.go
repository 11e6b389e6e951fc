package catalog

import (
	"strconv"
	"strings"
)

// Placement positions one topping instance inside the preview container.
// Offsets are CSS-like percentage strings ("25%"); an empty offset is unset.
// Transform accepts translate(x, y), translateX(x) and translateY(y) with
// percentages relative to the instance's own size.
type Placement struct {
	Top       string `json:"top,omitempty" yaml:"top,omitempty"`
	Left      string `json:"left,omitempty" yaml:"left,omitempty"`
	Right     string `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom    string `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Transform string `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// Point is an absolute position in preview pixels, measured from the
// container's top-left corner.
type Point struct {
	X float64
	Y float64
}

// Resolve computes the top-left corner of an item of size itemW x itemH
// placed inside a container of size containerW x containerH.
// Left takes precedence over Right and Top over Bottom.
func (p Placement) Resolve(containerW, containerH, itemW, itemH float64) Point {
	var pt Point

	switch {
	case p.Left != "":
		pt.X = percentOf(p.Left, containerW)
	case p.Right != "":
		pt.X = containerW - percentOf(p.Right, containerW) - itemW
	}

	switch {
	case p.Top != "":
		pt.Y = percentOf(p.Top, containerH)
	case p.Bottom != "":
		pt.Y = containerH - percentOf(p.Bottom, containerH) - itemH
	}

	dx, dy := p.translation()
	pt.X += dx * itemW
	pt.Y += dy * itemH

	return pt
}

// translation returns the transform's offsets as fractions of the item size.
func (p Placement) translation() (float64, float64) {
	fn, args, ok := splitCall(p.Transform)
	if !ok {
		return 0, 0
	}

	switch fn {
	case "translate":
		if len(args) == 1 {
			return fraction(args[0]), 0
		}
		if len(args) == 2 {
			return fraction(args[0]), fraction(args[1])
		}
	case "translatex":
		if len(args) == 1 {
			return fraction(args[0]), 0
		}
	case "translatey":
		if len(args) == 1 {
			return 0, fraction(args[0])
		}
	}

	return 0, 0
}

func splitCall(expr string) (string, []string, bool) {
	expr = strings.TrimSpace(expr)
	open := strings.IndexByte(expr, '(')
	if open <= 0 || !strings.HasSuffix(expr, ")") {
		return "", nil, false
	}

	name := strings.ToLower(strings.TrimSpace(expr[:open]))
	inner := expr[open+1 : len(expr)-1]
	parts := strings.Split(inner, ",")
	args := make([]string, 0, len(parts))
	for _, part := range parts {
		args = append(args, strings.TrimSpace(part))
	}
	return name, args, true
}

// fraction parses "50%" as 0.5. Anything malformed is 0.
func fraction(value string) float64 {
	value = strings.TrimSpace(value)
	if !strings.HasSuffix(value, "%") {
		return 0
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(value, "%")), 64)
	if err != nil {
		return 0
	}
	return parsed / 100
}

func percentOf(value string, total float64) float64 {
	return fraction(value) * total
}
