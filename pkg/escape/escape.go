// Package escape implements the escape-time iteration z = z*z + c used to
// decide whether a plane point belongs to the Mandelbrot set.
package escape

import "math"

// DefaultRadius is the standard escape radius. An orbit that leaves the
// radius-2 disk around the origin is guaranteed to diverge.
const DefaultRadius = 2.0

// Result is the outcome of iterating a single plane point.
//
// Iterations and Smooth are meaningful only when Escaped is true. The zero
// value is a bounded result: the orbit stayed inside the radius for the whole
// iteration budget, so the point is presumed to be in the set.
type Result struct {
	Iterations int     // iteration at which the orbit escaped, 0 <= Iterations < limit
	Smooth     float64 // fractional escape offset in [0,1) for continuous coloring
	Escaped    bool
}

// Evaluate iterates z = z*z + c from z = 0 for at most limit steps and
// reports when the orbit's squared magnitude first exceeds radius squared
// (squared on both sides, so no square root per step). A c outside the
// radius escapes on iteration 0. radius <= 0 falls back to DefaultRadius.
func Evaluate(c complex128, limit int, radius float64) Result {
	if radius <= 0 {
		radius = DefaultRadius
	}
	r2 := radius * radius

	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		re, im := real(z), imag(z)
		if m2 := re*re + im*im; m2 > r2 {
			return Result{
				Iterations: i,
				Smooth:     smooth(math.Sqrt(m2), radius),
				Escaped:    true,
			}
		}
	}
	return Result{}
}

// smooth is the continuous escape fraction 1 - log2(ln|z| / ln radius),
// clamped to [0,1).
func smooth(mag, radius float64) float64 {
	f := 1 - math.Log(math.Log(mag)/math.Log(radius))/math.Ln2
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f >= 1:
		return math.Nextafter(1, 0)
	}
	return f
}
