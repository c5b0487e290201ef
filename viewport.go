package fractal

// MinZoomWidth is the narrowest viewport the zoom operations will produce.
// Below roughly this width the per-pixel step approaches float64 round-off
// and further zooming only magnifies noise, so zoom requests that would
// shrink the view past it are refused.
const MinZoomWidth = 1e-12

// Viewport maps the pixel raster onto a region of the complex plane.
// It remembers the region it was created with so Reset can restore it.
// Viewport itself is not goroutine safe; Engine serializes access.
type Viewport struct {
	Region
	home Region
}

// NewViewport returns a viewport over r, capturing r as the home region.
func NewViewport(r Region) *Viewport {
	if !r.valid() {
		r = Home
	}
	return &Viewport{Region: r, home: r}
}

// PixelToComplex converts pixel (px, py) of a width×height raster to the
// complex plane point it covers. px ranges over [0,width] and py over
// [0,height]; the extremes land exactly on the region bounds.
func (v *Viewport) PixelToComplex(px, py, width, height int) (x0, y0 float64) {
	x0 = v.Xmin + (v.Xmax-v.Xmin)*float64(px)/float64(width)
	y0 = v.Ymin + (v.Ymax-v.Ymin)*float64(py)/float64(height)
	return x0, y0
}

// ZoomTo recenters the viewport on the complex point under pixel (px, py)
// and scales both extents by factor. A factor below 1 zooms in, above 1
// zooms out. Returns false without mutating if the resulting width would
// drop below MinZoomWidth or the factor is not positive.
func (v *Viewport) ZoomTo(px, py, width, height int, factor float64) bool {
	cx, cy := v.PixelToComplex(px, py, width, height)
	return v.recenter(cx, cy, factor)
}

// ZoomCentered scales the extents by factor around the current midpoint.
// Same refusal rules as ZoomTo.
func (v *Viewport) ZoomCentered(factor float64) bool {
	cx := (v.Xmin + v.Xmax) / 2
	cy := (v.Ymin + v.Ymax) / 2
	return v.recenter(cx, cy, factor)
}

func (v *Viewport) recenter(cx, cy, factor float64) bool {
	if factor <= 0 {
		return false
	}
	newW := v.Width() * factor
	newH := v.Height() * factor
	if newW < MinZoomWidth {
		return false
	}
	v.Xmin = cx - newW/2
	v.Xmax = cx + newW/2
	v.Ymin = cy - newH/2
	v.Ymax = cy + newH/2
	return true
}

// Reset restores the home region captured at construction.
func (v *Viewport) Reset() {
	v.Region = v.home
}
