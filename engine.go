package fractal

import (
	"image"
	"sync"
)

// Engine owns the mutable rendering state: viewport, iteration policy and
// palette mode. All mutation entry points and Render may be called from
// different goroutines; a mutex serializes them. Render snapshots the
// state under the lock and computes outside it, so a mutation that lands
// while a pass is in flight simply takes effect on the next pass.
type Engine struct {
	width, height int

	mu     sync.Mutex
	vp     *Viewport
	policy *IterPolicy
	mode   PaletteMode
}

// NewEngine returns an engine rendering a width×height raster of region r
// with the default iteration budget and the colorized palette.
func NewEngine(width, height int, r Region) *Engine {
	return &Engine{
		width:  width,
		height: height,
		vp:     NewViewport(r),
		policy: NewIterPolicy(DefaultIterations),
	}
}

// Render produces a complete frame of the current state. Synchronous;
// the buffer is fully written when it returns.
func (e *Engine) Render() *image.RGBA {
	e.mu.Lock()
	vp := *e.vp
	maxIter := e.policy.Effective(vp.Width())
	mode := e.mode
	e.mu.Unlock()

	return Render(e.width, e.height, &vp, maxIter, mode)
}

// ZoomAt zooms toward the complex point under pixel (px, py). On a
// successful zoom-in the iteration budget grows per the policy. Returns
// false if the viewport refused the zoom (floor reached or bad factor).
func (e *Engine) ZoomAt(px, py int, factor float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.vp.ZoomTo(px, py, e.width, e.height, factor) {
		return false
	}
	if factor < 1 {
		e.policy.OnZoomIn()
	}
	return true
}

// ZoomCentered zooms around the viewport midpoint, with the same budget
// growth rule as ZoomAt.
func (e *Engine) ZoomCentered(factor float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.vp.ZoomCentered(factor) {
		return false
	}
	if factor < 1 {
		e.policy.OnZoomIn()
	}
	return true
}

// Reset restores the home viewport. The iteration budget is kept; only
// an explicit SetIterations changes it outside the zoom rules.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vp.Reset()
}

// SetIterations sets the stored iteration budget, clamped to the hard
// cap. Negative values are rejected and leave the budget unchanged.
func (e *Engine) SetIterations(n int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.policy.SetExplicit(n)
}

// SetPaletteMode switches the palette used by subsequent passes.
func (e *Engine) SetPaletteMode(m PaletteMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = m
}

// Bounds returns the current viewport region.
func (e *Engine) Bounds() Region {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp.Region
}

// Iterations returns the stored iteration budget.
func (e *Engine) Iterations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.policy.Budget()
}

// PaletteModeNow returns the palette mode of the next pass.
func (e *Engine) PaletteModeNow() PaletteMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// PixelToComplex exposes the viewport mapping for hosts that log or
// display the point under the cursor.
func (e *Engine) PixelToComplex(px, py int) (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp.PixelToComplex(px, py, e.width, e.height)
}

// Size returns the raster dimensions the engine renders.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}
