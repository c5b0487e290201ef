package fractal

import "fmt"

// Iteration policy constants. These are tuning knobs, not derived math.
const (
	// HardIterCap bounds the per-pixel worst case; explicit requests and
	// zoom accumulation both clamp to it.
	HardIterCap = 10000

	// ZoomIterBonus is added to the budget after every successful zoom-in,
	// since deeper views need more iterations to resolve boundary detail.
	ZoomIterBonus = 250

	// NarrowWidth is the viewport width below which float64 round-off
	// starts to dominate the escape decision.
	NarrowWidth = 1e-4

	// NarrowIterCap caps the effective budget for passes over viewports
	// narrower than NarrowWidth; iterations past it buy no detail there.
	NarrowIterCap = 500

	// DefaultIterations is the starting budget.
	DefaultIterations = 1000
)

// IterPolicy holds the iteration budget and applies the adaptive rules:
// explicit set (clamped), zoom-in growth (clamped), and a per-pass
// reduction once the viewport is too narrow for extra iterations to matter.
type IterPolicy struct {
	budget int
}

// NewIterPolicy returns a policy with budget n clamped to [0, HardIterCap].
func NewIterPolicy(n int) *IterPolicy {
	p := &IterPolicy{}
	p.budget = clampBudget(n)
	return p
}

// Budget returns the stored budget, before any narrowing override.
func (p *IterPolicy) Budget() int {
	return p.budget
}

// SetExplicit sets the budget to n, clamped to HardIterCap. Negative
// values are rejected and leave the budget unchanged.
func (p *IterPolicy) SetExplicit(n int) error {
	if n < 0 {
		return fmt.Errorf("iteration count must be non-negative, got %d", n)
	}
	p.budget = clampBudget(n)
	return nil
}

// OnZoomIn grows the budget by ZoomIterBonus, capped at HardIterCap.
// Called after every successful zoom-in.
func (p *IterPolicy) OnZoomIn() {
	p.budget = clampBudget(p.budget + ZoomIterBonus)
}

// Effective returns the budget for the next render pass over a viewport
// of the given width. The narrowing override only ever lowers the value;
// it does not persist in the stored budget.
func (p *IterPolicy) Effective(viewWidth float64) int {
	if viewWidth < NarrowWidth && p.budget > NarrowIterCap {
		return NarrowIterCap
	}
	return p.budget
}

func clampBudget(n int) int {
	if n < 0 {
		return 0
	}
	if n > HardIterCap {
		return HardIterCap
	}
	return n
}
