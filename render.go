package fractal

import (
	"image"
	"runtime"
	"sync"
)

// band is a contiguous run of raster rows, [y0, y1), owned by one worker.
type band struct {
	y0, y1 int
}

// splitRows partitions height rows into at most n contiguous bands.
// Every row lands in exactly one band; the last band absorbs the
// remainder when height does not divide evenly.
func splitRows(height, n int) []band {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	per := height / n
	bands := make([]band, 0, n)
	for i := 0; i < n; i++ {
		b := band{y0: i * per, y1: (i + 1) * per}
		if i == n-1 {
			b.y1 = height
		}
		bands = append(bands, b)
	}
	return bands
}

// Render fills a width×height RGBA buffer with the escape-time image of
// the viewport, one worker per available CPU. It blocks until every band
// is written; the returned image is complete and safe to blit.
func Render(width, height int, vp *Viewport, maxIter int, mode PaletteMode) *image.RGBA {
	return renderWorkers(width, height, vp, maxIter, mode, runtime.NumCPU())
}

// renderWorkers is Render with an explicit worker count. Bands are
// disjoint, so workers share the pixel buffer without locking.
func renderWorkers(width, height int, vp *Viewport, maxIter int, mode PaletteMode, workers int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var wg sync.WaitGroup
	for _, b := range splitRows(height, workers) {
		wg.Add(1)
		go func(b band) {
			defer wg.Done()
			renderBand(img, b, width, height, vp, maxIter, mode)
		}(b)
	}
	wg.Wait()

	return img
}

func renderBand(img *image.RGBA, b band, width, height int, vp *Viewport, maxIter int, mode PaletteMode) {
	for py := b.y0; py < b.y1; py++ {
		for px := 0; px < width; px++ {
			x0, y0 := vp.PixelToComplex(px, py, width, height)
			iter := Iterate(x0, y0, maxIter)
			c := Shade(iter, maxIter, mode)

			p := 4 * (py*width + px)
			img.Pix[p+0] = c.R
			img.Pix[p+1] = c.G
			img.Pix[p+2] = c.B
			img.Pix[p+3] = c.A
		}
	}
}
