package fractal

import (
	"bytes"
	"testing"
)

func TestEngineZoomInGrowsBudget(t *testing.T) {
	e := NewEngine(800, 800, Home)
	before := e.Iterations()

	if !e.ZoomAt(400, 400, 0.2) {
		t.Fatal("zoom refused")
	}
	if got := e.Iterations(); got != before+ZoomIterBonus {
		t.Errorf("budget after zoom-in = %d, want %d", got, before+ZoomIterBonus)
	}
}

func TestEngineZoomOutKeepsBudget(t *testing.T) {
	e := NewEngine(800, 800, Home)
	before := e.Iterations()

	if !e.ZoomCentered(2.0) {
		t.Fatal("zoom out refused")
	}
	if got := e.Iterations(); got != before {
		t.Errorf("budget after zoom-out = %d, want %d", got, before)
	}
}

func TestEngineRefusedZoomKeepsBudget(t *testing.T) {
	e := NewEngine(800, 800, Home)
	for i := 0; i < 100; i++ {
		e.ZoomCentered(0.2)
	}
	budget := e.Iterations()
	if e.ZoomCentered(0.2) {
		t.Fatal("zoom below the floor accepted")
	}
	if got := e.Iterations(); got != budget {
		t.Errorf("refused zoom changed budget: %d -> %d", budget, got)
	}
}

func TestEngineSetIterations(t *testing.T) {
	e := NewEngine(800, 800, Home)

	if err := e.SetIterations(HardIterCap * 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Iterations(); got != HardIterCap {
		t.Errorf("budget = %d, want clamp to %d", got, HardIterCap)
	}

	if err := e.SetIterations(-5); err == nil {
		t.Error("negative iteration count accepted")
	}
	if got := e.Iterations(); got != HardIterCap {
		t.Errorf("budget changed by rejected input: %d", got)
	}
}

func TestEngineResetRestoresViewportOnly(t *testing.T) {
	e := NewEngine(800, 800, Home)
	e.ZoomAt(100, 100, 0.2)
	e.ZoomAt(100, 100, 0.2)
	budget := e.Iterations()

	e.Reset()
	if got := e.Bounds(); got != Home {
		t.Errorf("bounds after reset = %+v, want %+v", got, Home)
	}
	if got := e.Iterations(); got != budget {
		t.Errorf("reset changed budget: %d -> %d", budget, got)
	}
}

func TestEngineRenderStable(t *testing.T) {
	e := NewEngine(64, 64, Home)
	e.ZoomAt(20, 40, 0.5)
	e.SetPaletteMode(PaletteGray)

	a := e.Render()
	b := e.Render()
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("consecutive passes over unchanged state differ")
	}
}

func TestEnginePaletteToggle(t *testing.T) {
	e := NewEngine(64, 64, Home)
	if e.PaletteModeNow() != PaletteColor {
		t.Errorf("default mode = %s, want color", e.PaletteModeNow())
	}

	a := e.Render()
	e.SetPaletteMode(PaletteGray)
	b := e.Render()
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("palette toggle did not change the rendered buffer")
	}
}
