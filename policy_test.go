package fractal

import "testing"

func TestSetExplicitClampsToCap(t *testing.T) {
	p := NewIterPolicy(DefaultIterations)
	if err := p.SetExplicit(HardIterCap + 123); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Budget() != HardIterCap {
		t.Errorf("budget = %d, want %d", p.Budget(), HardIterCap)
	}
}

func TestSetExplicitRejectsNegative(t *testing.T) {
	p := NewIterPolicy(DefaultIterations)
	if err := p.SetExplicit(-1); err == nil {
		t.Fatal("negative iteration count accepted")
	}
	if p.Budget() != DefaultIterations {
		t.Errorf("budget changed on rejected input: %d", p.Budget())
	}
}

func TestOnZoomInGrowsAndCaps(t *testing.T) {
	p := NewIterPolicy(DefaultIterations)
	p.OnZoomIn()
	if p.Budget() != DefaultIterations+ZoomIterBonus {
		t.Errorf("budget = %d, want %d", p.Budget(), DefaultIterations+ZoomIterBonus)
	}

	for i := 0; i < 100; i++ {
		p.OnZoomIn()
	}
	if p.Budget() != HardIterCap {
		t.Errorf("budget = %d, want cap %d", p.Budget(), HardIterCap)
	}
}

func TestEffectiveNarrowingOverride(t *testing.T) {
	p := NewIterPolicy(4000)

	if got := p.Effective(1.0); got != 4000 {
		t.Errorf("wide view: effective = %d, want 4000", got)
	}
	if got := p.Effective(NarrowWidth / 10); got != NarrowIterCap {
		t.Errorf("narrow view: effective = %d, want %d", got, NarrowIterCap)
	}
	// Per-pass override only; the stored budget is untouched.
	if p.Budget() != 4000 {
		t.Errorf("stored budget = %d, want 4000", p.Budget())
	}
}

func TestEffectiveNeverRaises(t *testing.T) {
	p := NewIterPolicy(100)
	if got := p.Effective(NarrowWidth / 10); got != 100 {
		t.Errorf("effective = %d, want 100 (override must not raise)", got)
	}
}
