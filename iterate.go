package fractal

// Iterate runs the escape-time loop for c = x0 + y0·i and returns the
// number of iterations taken to leave the |z| <= 2 disk, or maxIter if
// z stayed bounded for the whole budget. The bailout test compares the
// squared magnitude against 4 to avoid a square root per step.
func Iterate(x0, y0 float64, maxIter int) int {
	var x, y float64
	x2, y2 := 0.0, 0.0
	iter := 0
	for x2+y2 <= 4 && iter < maxIter {
		y = 2*x*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		iter++
	}
	return iter
}
