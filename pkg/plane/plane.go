// Package plane maps pixel coordinates of a raster image onto points of the
// complex plane.
package plane

import "fmt"

// Viewport is the rectangular region of the complex plane covered by a
// rendered image. Rows grow downward while the imaginary axis points up, so
// UpperLeft carries the smaller real part and the larger imaginary part.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Validate checks the corner orientation: real(UpperLeft) < real(LowerRight)
// and imag(UpperLeft) > imag(LowerRight).
func (v Viewport) Validate() error {
	if real(v.UpperLeft) >= real(v.LowerRight) {
		return fmt.Errorf("upper-left real part %g must be less than lower-right real part %g",
			real(v.UpperLeft), real(v.LowerRight))
	}
	if imag(v.UpperLeft) <= imag(v.LowerRight) {
		return fmt.Errorf("upper-left imaginary part %g must be greater than lower-right imaginary part %g",
			imag(v.UpperLeft), imag(v.LowerRight))
	}
	return nil
}

// Point returns the plane point for the pixel at (row, col) in a
// width x height image, by linear interpolation between the corners.
// Pixel (0,0) maps exactly to UpperLeft. width and height must be positive;
// that is the caller's responsibility, not checked here.
func (v Viewport) Point(row, col, width, height int) complex128 {
	re := real(v.UpperLeft) + float64(col)/float64(width)*(real(v.LowerRight)-real(v.UpperLeft))
	im := imag(v.UpperLeft) + float64(row)/float64(height)*(imag(v.LowerRight)-imag(v.UpperLeft))
	return complex(re, im)
}

// PixelSize returns the plane extent covered by one pixel of a
// width x height raster, on the real and imaginary axes.
func (v Viewport) PixelSize(width, height int) (px, py float64) {
	px = (real(v.LowerRight) - real(v.UpperLeft)) / float64(width)
	py = (imag(v.UpperLeft) - imag(v.LowerRight)) / float64(height)
	return px, py
}
