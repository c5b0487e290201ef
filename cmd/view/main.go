// view is the interactive desktop viewer. Left click zooms toward the
// cursor, right click zooms back out, R resets the view and C/G/L switch
// palettes. Stdin doubles as a command console ("help" lists commands).
// Clicked complex coordinates are appended to a log file.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Kire2oo2/fractal"
)

const (
	screenWidth  = 800
	screenHeight = 800
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	clickLogPath := flag.String("clicklog", "clicks.log", "file receiving clicked complex coordinates")
	flag.Parse()

	clicks, err := openClickLog(*clickLogPath)
	if err != nil {
		return fmt.Errorf("open click log: %w", err)
	}
	defer clicks.Close()

	g := &game{
		engine:      fractal.NewEngine(screenWidth, screenHeight, fractal.Home),
		offscreen:   ebiten.NewImage(screenWidth, screenHeight),
		commands:    readCommands(),
		clicks:      clicks,
		needsRedraw: true,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Mandelbrot Viewer")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
