// Package render computes escape-time renderings of the Mandelbrot set.
//
// A render maps every pixel of the output raster onto the complex plane,
// runs the escape-time iteration for that point and shades the result into
// a flat pixel buffer. The raster is split into horizontal bands that are
// rendered concurrently; because pixel values depend only on render options
// the number of workers never changes the output bytes.
package render

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/mjdavy/mandelbrot/pkg/escape"
	"github.com/mjdavy/mandelbrot/pkg/palette"
	"github.com/mjdavy/mandelbrot/pkg/plane"
)

// Render failures are detected up front, before any pixel work starts.
var (
	// ErrInvalidDimensions reports a raster with a non-positive width or
	// height.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrInvalidViewport reports a viewport whose corners do not describe
	// a proper rectangle on the complex plane.
	ErrInvalidViewport = errors.New("invalid viewport")
)

// Options describe one render.
type Options struct {
	// Width and Height give the raster size in pixels. Both must be
	// positive.
	Width  int
	Height int

	// View is the region of the complex plane the raster covers.
	View plane.Viewport

	// Limit caps the escape-time iteration count per pixel.
	Limit int

	// Radius is the escape radius. Zero or negative means
	// escape.DefaultRadius.
	Radius float64

	// Workers is the number of bands rendered concurrently. Zero or
	// negative means runtime.NumCPU(); 1 renders sequentially.
	Workers int

	// Colorizer shades escape results into pixels and fixes the buffer's
	// channel count. Nil means grayscale.
	Colorizer palette.Colorizer
}

// Render computes the image described by opts and returns the filled
// buffer. Validation happens before any pixel is computed, so a non-nil
// error means no partial result was produced.
func Render(opts Options) (*Buffer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opts.Width, opts.Height)
	}
	if err := opts.View.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidViewport, err)
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Colorizer == nil {
		opts.Colorizer = palette.NewGrayscale(opts.Limit)
	}

	buf := NewBuffer(opts.Width, opts.Height, opts.Colorizer.Channels())
	bands := SplitBands(opts.Height, opts.Workers)

	if len(bands) == 1 {
		renderBand(bands[0], buf.rows(bands[0].Start, bands[0].End), opts)
		return buf, nil
	}

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, band := range bands {
		go func(b Band) {
			defer wg.Done()
			renderBand(b, buf.rows(b.Start, b.End), opts)
		}(band)
	}
	wg.Wait()

	return buf, nil
}

// renderBand fills pix, the slice of the output buffer holding exactly the
// band's rows, in row-major order. It writes nothing outside that slice.
func renderBand(b Band, pix []uint8, opts Options) {
	ch := opts.Colorizer.Channels()
	i := 0
	for row := b.Start; row < b.End; row++ {
		for col := 0; col < opts.Width; col++ {
			c := opts.View.Point(row, col, opts.Width, opts.Height)
			res := escape.Evaluate(c, opts.Limit, opts.Radius)
			opts.Colorizer.Shade(res, pix[i:i+ch])
			i += ch
		}
	}
}
