// Package fractal renders the Mandelbrot set with the quadratic escape-time
// iteration z = z*z + c. The package owns the viewport math, the adaptive
// iteration policy, the color palettes and the band-parallel renderer; window,
// web and CLI hosts live under cmd/ and drive it through Engine.
package fractal

// Region is a rectangular window into the complex plane.
// Xmin < Xmax and Ymin < Ymax must hold for a usable region.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Home is the default view: the whole set with some margin.
var Home = Region{
	Xmin: -2.0,
	Xmax: 1.0,
	Ymin: -1.5,
	Ymax: 1.5,
}

// Classic regions / landmarks in the Mandelbrot set.
// cmd/render accepts these by name as starting viewports.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmarks maps region names to the predefined regions above.
var Landmarks = map[string]Region{
	"home":       Home,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 {
	return r.Xmax - r.Xmin
}

// Height returns the vertical extent of the region.
func (r Region) Height() float64 {
	return r.Ymax - r.Ymin
}

func (r Region) valid() bool {
	return r.Xmin < r.Xmax && r.Ymin < r.Ymax
}
