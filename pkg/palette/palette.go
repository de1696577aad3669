// Package palette turns escape results into pixel bytes.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mjdavy/mandelbrot/pkg/escape"
)

// A Colorizer maps one escape result to the bytes of a single pixel.
// Shade writes exactly Channels() bytes into pix. Every palette colors
// bounded points black and preserves the ordering of escape iterations.
type Colorizer interface {
	Channels() int
	Shade(res escape.Result, pix []uint8)
}

// Grayscale writes one byte per pixel: black for bounded points, intensity
// rising with the escape iteration.
type Grayscale struct {
	limit int
}

// NewGrayscale returns a grayscale colorizer for renders capped at limit
// iterations.
func NewGrayscale(limit int) *Grayscale {
	if limit < 1 {
		limit = 1
	}
	return &Grayscale{limit: limit}
}

func (g *Grayscale) Channels() int { return 1 }

func (g *Grayscale) Shade(res escape.Result, pix []uint8) {
	if !res.Escaped {
		pix[0] = 0
		return
	}
	pix[0] = uint8(255 * res.Iterations / g.limit)
}

// Rainbow writes three bytes per pixel through fixed spectral bands: points
// that escape immediately render white, then red through violet as the escape
// slows, and bounded points are black.
type Rainbow struct {
	limit int
}

// NewRainbow returns a banded rainbow colorizer for renders capped at limit
// iterations.
func NewRainbow(limit int) *Rainbow {
	if limit < 1 {
		limit = 1
	}
	return &Rainbow{limit: limit}
}

func (r *Rainbow) Channels() int { return 3 }

func (r *Rainbow) Shade(res escape.Result, pix []uint8) {
	if !res.Escaped {
		pix[0], pix[1], pix[2] = 0, 0, 0
		return
	}

	// Iterations scale to v in [1,255]; 0 stays reserved for bounded points.
	v := 255 - 255*res.Iterations/r.limit
	switch {
	case v <= 35: // violet
		pix[0], pix[1], pix[2] = 148, 0, 211
	case v <= 70: // indigo
		pix[0], pix[1], pix[2] = 75, 0, 130
	case v <= 105: // blue
		pix[0], pix[1], pix[2] = 0, 0, 255
	case v <= 140: // green
		pix[0], pix[1], pix[2] = 0, 255, 0
	case v <= 175: // yellow
		pix[0], pix[1], pix[2] = 255, 255, 0
	case v <= 210: // orange
		pix[0], pix[1], pix[2] = 255, 127, 0
	case v <= 254: // red
		pix[0], pix[1], pix[2] = 255, 0, 0
	default: // white
		pix[0], pix[1], pix[2] = 255, 255, 255
	}
}

// Smooth writes three bytes per pixel from a keypoint gradient sampled at the
// continuous escape position (iteration plus smoothing fraction), so band
// edges disappear. Bounded points are black.
type Smooth struct {
	limit int
	stops []gradientStop
}

type gradientStop struct {
	col colorful.Color
	pos float64
}

// NewSmooth returns a smooth-gradient colorizer for renders capped at limit
// iterations.
func NewSmooth(limit int) *Smooth {
	if limit < 1 {
		limit = 1
	}
	return &Smooth{
		limit: limit,
		stops: []gradientStop{
			{rgb255(0, 7, 100), 0.0},
			{rgb255(32, 107, 203), 0.16},
			{rgb255(237, 255, 255), 0.42},
			{rgb255(255, 170, 0), 0.6425},
			{rgb255(0, 2, 0), 0.8575},
			{rgb255(0, 7, 100), 1.0},
		},
	}
}

func (s *Smooth) Channels() int { return 3 }

func (s *Smooth) Shade(res escape.Result, pix []uint8) {
	if !res.Escaped {
		pix[0], pix[1], pix[2] = 0, 0, 0
		return
	}

	t := (float64(res.Iterations) + res.Smooth) / float64(s.limit)
	pix[0], pix[1], pix[2] = s.at(t).RGB255()
}

// at blends between the two stops bracketing t. Blending happens in Luv
// space, which keeps the intermediate colors from washing out.
func (s *Smooth) at(t float64) colorful.Color {
	for i := 0; i < len(s.stops)-1; i++ {
		lo, hi := s.stops[i], s.stops[i+1]
		if lo.pos <= t && t <= hi.pos {
			return lo.col.BlendLuv(hi.col, (t-lo.pos)/(hi.pos-lo.pos)).Clamped()
		}
	}
	return s.stops[len(s.stops)-1].col
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
