// render writes a single Mandelbrot frame to a PNG file. The starting
// viewport is either a named landmark region or explicit bounds.
package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kire2oo2/fractal"
)

type options struct {
	width, height int
	iterations    int
	palette       string
	region        string
	bounds        string
	zoom          float64
	out           string
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:  "render",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runCmd(opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 800, "image width in pixels")
	f.IntVar(&opts.height, "height", 800, "image height in pixels")
	f.IntVar(&opts.iterations, "iter", fractal.DefaultIterations, "iteration budget")
	f.StringVar(&opts.palette, "palette", "color", "palette: color, gray or legacy")
	f.StringVar(&opts.region, "region", "home", "named region ("+landmarkNames()+")")
	f.StringVar(&opts.bounds, "bounds", "", "explicit bounds xmin,xmax,ymin,ymax (overrides --region)")
	f.Float64Var(&opts.zoom, "zoom", 1.0, "centered zoom applied to the region before rendering")
	f.StringVar(&opts.out, "out", "mandel.png", "output PNG file")

	return cmd
}

func runCmd(opts *options) error {
	region, err := pickRegion(opts)
	if err != nil {
		return err
	}
	mode, ok := fractal.ParsePaletteMode(opts.palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", opts.palette)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}

	vp := fractal.NewViewport(region)
	if opts.zoom != 1.0 && !vp.ZoomCentered(opts.zoom) {
		return fmt.Errorf("zoom %g refused: viewport would shrink below the minimum width", opts.zoom)
	}

	policy := fractal.NewIterPolicy(0)
	if err := policy.SetExplicit(opts.iterations); err != nil {
		return err
	}
	maxIter := policy.Effective(vp.Width())
	if maxIter != policy.Budget() {
		log.Printf("viewport narrower than %g, iteration budget reduced to %d", fractal.NarrowWidth, maxIter)
	}

	start := time.Now()
	img := fractal.Render(opts.width, opts.height, vp, maxIter, mode)
	log.Printf("rendered %dx%d at %d iterations in %s", opts.width, opts.height, maxIter, time.Since(start))

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	log.Printf("saved to %q", opts.out)
	return nil
}

func pickRegion(opts *options) (fractal.Region, error) {
	if opts.bounds != "" {
		return parseBounds(opts.bounds)
	}
	region, ok := fractal.Landmarks[opts.region]
	if !ok {
		return fractal.Region{}, fmt.Errorf("unknown region %q (known: %s)", opts.region, landmarkNames())
	}
	return region, nil
}

func parseBounds(s string) (fractal.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fractal.Region{}, fmt.Errorf("bounds must be xmin,xmax,ymin,ymax, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fractal.Region{}, fmt.Errorf("bounds: %q is not a number", p)
		}
		vals[i] = v
	}
	r := fractal.Region{Xmin: vals[0], Xmax: vals[1], Ymin: vals[2], Ymax: vals[3]}
	if r.Xmin >= r.Xmax || r.Ymin >= r.Ymax {
		return fractal.Region{}, fmt.Errorf("bounds %q are empty or inverted", s)
	}
	return r, nil
}

func landmarkNames() string {
	names := make([]string, 0, len(fractal.Landmarks))
	for name := range fractal.Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
