// Package encode writes finished renders to an image file or to stdout.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/mjdavy/mandelbrot/pkg/plane"
)

// StdoutIsTerminal reports whether standard output is an interactive
// terminal rather than a pipe or a file.
func StdoutIsTerminal() bool {
	stat, err := os.Stdout.Stat()
	return err == nil && stat.Mode()&os.ModeCharDevice != 0
}

// Write encodes img to path. An empty path writes PNG to stdout so renders
// can be piped, but never onto a terminal. Otherwise the encoding follows
// the file extension: .png, .jpg/.jpeg, .gif, .tif/.tiff or .bmp.
func Write(img image.Image, path string) error {
	if path == "" {
		if StdoutIsTerminal() {
			return fmt.Errorf("didn't specify output file and standard output is a terminal")
		}
		fmt.Fprintf(os.Stderr, "Output PNG: stdout\n")
		return png.Encode(os.Stdout, img)
	}

	fmt.Fprintf(os.Stderr, "Output image: %s\n", path)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("can't save %s: %w", path, err)
	}
	return nil
}

// WritePlaneFile writes a world file style sidecar next to path describing
// the affine mapping from pixel coordinates back to the complex plane: pixel
// width, two zero rotation terms, negative pixel height, then the real and
// imaginary parts of the upper-left corner. Tools reading the image can
// recover the point under any pixel from these six numbers.
func WritePlaneFile(path string, view plane.Viewport, width, height int) error {
	if path == "" {
		return fmt.Errorf("can't write a plane file when writing to stdout")
	}

	px, py := view.PixelSize(width, height)

	name := path
	if idx := strings.LastIndex(name, "."); idx != -1 {
		name = name[:idx]
	}
	name += ".plane"

	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "%.17g\n", px)
	fmt.Fprintf(file, "%.17g\n", 0.0)
	fmt.Fprintf(file, "%.17g\n", 0.0)
	fmt.Fprintf(file, "%.17g\n", -py)
	fmt.Fprintf(file, "%.17g\n", real(view.UpperLeft))
	fmt.Fprintf(file, "%.17g\n", imag(view.UpperLeft))

	fmt.Fprintf(os.Stderr, "Plane file written to '%s'.\n", name)
	return nil
}
