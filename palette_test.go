package fractal

import "testing"

func TestShadeInteriorIsBlack(t *testing.T) {
	for _, mode := range []PaletteMode{PaletteColor, PaletteGray, PaletteLegacy} {
		c := Shade(250, 250, mode)
		if c != interior {
			t.Errorf("mode %s: interior color = %+v, want %+v", mode, c, interior)
		}
	}
}

func TestShadeChannelsInRange(t *testing.T) {
	// uint8 can't leave [0,255]; check the float clamp directly at the
	// extremes of the cubic terms instead.
	for _, v := range []float64{-10, 0, 127.4, 255, 300} {
		c := clampChan(v)
		if v <= 0 && c != 0 {
			t.Errorf("clampChan(%g) = %d, want 0", v, c)
		}
		if v >= 255 && c != 255 {
			t.Errorf("clampChan(%g) = %d, want 255", v, c)
		}
	}

	const m = 500
	for i := 0; i < m; i++ {
		c := Shade(i, m, PaletteColor)
		if c.A != 0xff {
			t.Fatalf("iter %d: alpha = %d", i, c.A)
		}
	}
}

func TestShadeGray(t *testing.T) {
	c := Shade(50, 100, PaletteGray)
	if c.R != c.G || c.G != c.B {
		t.Errorf("gray shade has unequal channels: %+v", c)
	}
	if c.R != 128 { // round(255 * 0.5)
		t.Errorf("gray at t=0.5 = %d, want 128", c.R)
	}
}

func TestShadeLegacyModulo(t *testing.T) {
	c := Shade(300, 1000, PaletteLegacy)
	want := uint8(300 % 256)
	if c.R != want || c.G != want || c.B != want {
		t.Errorf("legacy shade = %+v, want all channels %d", c, want)
	}
}
