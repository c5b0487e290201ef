package fractal

import "image/color"

// PaletteMode selects how escape iteration counts map to colors.
type PaletteMode int

const (
	// PaletteColor is the default cubic palette: the conventional
	// orange-to-blue Mandelbrot gradient.
	PaletteColor PaletteMode = iota

	// PaletteGray maps the normalized iteration count to a gray level.
	PaletteGray

	// PaletteLegacy is the historical direct mapping, iterations mod 256
	// on all channels. Kept as an explicit mode, never mixed in silently.
	PaletteLegacy
)

// String returns the name cmd hosts use to select the mode.
func (m PaletteMode) String() string {
	switch m {
	case PaletteGray:
		return "gray"
	case PaletteLegacy:
		return "legacy"
	default:
		return "color"
	}
}

// ParsePaletteMode maps a mode name back to its PaletteMode.
func ParsePaletteMode(s string) (PaletteMode, bool) {
	switch s {
	case "color":
		return PaletteColor, true
	case "gray", "grey":
		return PaletteGray, true
	case "legacy":
		return PaletteLegacy, true
	}
	return PaletteColor, false
}

// interior is the color of points that never escaped within the budget.
var interior = color.RGBA{A: 0xff}

// Shade maps an escape iteration count to a color. iter == maxIter means
// the point is presumed inside the set and always yields the interior
// color, whatever the mode.
func Shade(iter, maxIter int, mode PaletteMode) color.RGBA {
	if iter >= maxIter {
		return interior
	}
	switch mode {
	case PaletteGray:
		t := float64(iter) / float64(maxIter)
		g := uint8(255*t + 0.5)
		return color.RGBA{R: g, G: g, B: g, A: 0xff}
	case PaletteLegacy:
		v := uint8(iter % 256)
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	default:
		t := float64(iter) / float64(maxIter)
		return color.RGBA{
			R: clampChan(9 * (1 - t) * t * t * t * 255),
			G: clampChan(15 * (1 - t) * (1 - t) * t * t * 255),
			B: clampChan(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255),
			A: 0xff,
		}
	}
}

func clampChan(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
