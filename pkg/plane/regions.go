package plane

// NamedRegion couples a preset viewport with the name it goes by on the
// command line.
type NamedRegion struct {
	Name        string
	Description string
	View        Viewport
}

// Regions are preset viewports over classic landmarks of the Mandelbrot set.
var Regions = []NamedRegion{
	{
		Name:        "overview",
		Description: "the whole set, main cardioid and period bulbs in frame",
		View:        Viewport{UpperLeft: complex(-2.5, 1.25), LowerRight: complex(1.0, -1.25)},
	},
	{
		Name:        "seahorse",
		Description: "Seahorse Valley, dense filaments and repeating seahorse curls",
		View:        Viewport{UpperLeft: complex(-0.8, 0.15), LowerRight: complex(-0.7, 0.05)},
	},
	{
		Name:        "elephant",
		Description: "Elephant Valley, large bulb with trunk-like tendrils",
		View:        Viewport{UpperLeft: complex(-1.85, -0.02), LowerRight: complex(-1.75, -0.10)},
	},
	{
		Name:        "spiral-minibrot",
		Description: "small Mandelbrot copy with tight spiral arms",
		View:        Viewport{UpperLeft: complex(-0.7435, 0.1325), LowerRight: complex(-0.7420, 0.1310)},
	},
	{
		Name:        "triple-spiral",
		Description: "threefold symmetric spiral structure",
		View:        Viewport{UpperLeft: complex(-0.748, 0.098), LowerRight: complex(-0.745, 0.095)},
	},
	{
		Name:        "dragon",
		Description: "Valley of the Dragon, deep and highly detailed spiral filaments",
		View:        Viewport{UpperLeft: complex(-0.74, 0.185), LowerRight: complex(-0.735, 0.18)},
	},
	{
		Name:        "minibrot",
		Description: "self-similar Mandelbrot copy inside a spiral arm",
		View:        Viewport{UpperLeft: complex(-1.739, -0.022), LowerRight: complex(-1.7375, -0.0235)},
	},
}

// LookupRegion returns the preset region with the given name.
func LookupRegion(name string) (NamedRegion, bool) {
	for _, r := range Regions {
		if r.Name == name {
			return r, true
		}
	}
	return NamedRegion{}, false
}
