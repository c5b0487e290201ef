package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Kire2oo2/fractal"
)

const (
	// clickZoomFactor shrinks the view to a fifth on each left click.
	clickZoomFactor = 0.2

	// wheelZoomFactor is the per-notch scroll zoom step.
	wheelZoomFactor = 0.8
)

type game struct {
	engine      *fractal.Engine
	offscreen   *ebiten.Image
	commands    <-chan command
	clicks      *clickLog
	needsRedraw bool
}

func (g *game) Update() error {
	g.drainCommands()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := g.engine.PixelToComplex(mx, my)
		g.clicks.record(x, y)
		if g.engine.ZoomAt(mx, my, clickZoomFactor) {
			g.needsRedraw = true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if g.engine.ZoomCentered(1 / clickZoomFactor) {
			g.needsRedraw = true
		}
	}

	if _, scrollY := ebiten.Wheel(); scrollY != 0 {
		factor := wheelZoomFactor
		if scrollY < 0 {
			factor = 1 / wheelZoomFactor
		}
		if g.engine.ZoomCentered(factor) {
			g.needsRedraw = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.needsRedraw = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.SetPaletteMode(fractal.PaletteColor)
		g.needsRedraw = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.engine.SetPaletteMode(fractal.PaletteGray)
		g.needsRedraw = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.engine.SetPaletteMode(fractal.PaletteLegacy)
		g.needsRedraw = true
	}

	if g.needsRedraw {
		img := g.engine.Render()
		g.offscreen.WritePixels(img.Pix)
		g.needsRedraw = false
	}
	return nil
}

// drainCommands applies every pending console command. Commands queue on
// the channel while a pass is in flight and land strictly between passes.
func (g *game) drainCommands() {
	for {
		select {
		case cmd, ok := <-g.commands:
			if !ok {
				return
			}
			g.apply(cmd)
		default:
			return
		}
	}
}

func (g *game) apply(cmd command) {
	switch cmd.op {
	case opIter:
		if err := g.engine.SetIterations(cmd.n); err != nil {
			log.Printf("iter: %v", err)
			return
		}
	case opZoom:
		if !g.engine.ZoomCentered(cmd.factor) {
			log.Printf("zoom %g refused", cmd.factor)
			return
		}
	case opReset:
		g.engine.Reset()
	case opPalette:
		g.engine.SetPaletteMode(cmd.mode)
	}
	g.needsRedraw = true
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen, nil)

	b := g.engine.Bounds()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"x [%g, %g]\ny [%g, %g]\niterations %d  palette %s",
		b.Xmin, b.Xmax, b.Ymin, b.Ymax,
		g.engine.Iterations(), g.engine.PaletteModeNow()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
