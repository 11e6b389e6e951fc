package catalog

// Position presets shared by every catalog. Toppings reference these by
// value; a preset is never modified after startup.
var (
	PresetCenter              = Placement{Top: "50%", Left: "50%", Transform: "translate(-50%, -50%)"}
	PresetMushroomCenter      = Placement{Top: "50%", Left: "40%", Transform: "translate(-50%, -50%)"}
	PresetTopLeft             = Placement{Top: "25%", Left: "15%"}
	PresetTopRight            = Placement{Top: "25%", Right: "20%"}
	PresetCheeseTopLeft       = Placement{Top: "25%", Left: "22%"}
	PresetCheeseTopRight      = Placement{Top: "25%", Right: "25%"}
	PresetBottomLeft          = Placement{Bottom: "25%", Left: "20%"}
	PresetBottomRight         = Placement{Bottom: "25%", Right: "20%"}
	PresetMushroomBottomLeft  = Placement{Bottom: "30%", Left: "25%"}
	PresetMushroomBottomRight = Placement{Bottom: "30%", Right: "25%"}
	PresetMidLeft             = Placement{Top: "50%", Left: "5%", Transform: "translateY(-50%)"}
	PresetMidRight            = Placement{Top: "50%", Right: "16%", Transform: "translateY(-50%)"}
	PresetTopCenter           = Placement{Top: "10%", Left: "50%", Transform: "translateX(-50%)"}
	PresetMushroomTopCenter   = Placement{Top: "22%", Left: "50%", Transform: "translateX(-50%)"}
	PresetBottomCenter        = Placement{Bottom: "10%", Left: "50%", Transform: "translateX(-50%)"}
)

var presets = map[string]Placement{
	"center":              PresetCenter,
	"mushroomCenter":      PresetMushroomCenter,
	"topLeft":             PresetTopLeft,
	"topRight":            PresetTopRight,
	"cheeseTopLeft":       PresetCheeseTopLeft,
	"cheeseTopRight":      PresetCheeseTopRight,
	"bottomLeft":          PresetBottomLeft,
	"bottomRight":         PresetBottomRight,
	"mushroomBottomLeft":  PresetMushroomBottomLeft,
	"mushroomBottomRight": PresetMushroomBottomRight,
	"midLeft":             PresetMidLeft,
	"midRight":            PresetMidRight,
	"topCenter":           PresetTopCenter,
	"mushroomTopCenter":   PresetMushroomTopCenter,
	"bottomCenter":        PresetBottomCenter,
}

// Preset looks up a position preset by its symbolic name.
func Preset(name string) (Placement, bool) {
	p, ok := presets[name]
	return p, ok
}
