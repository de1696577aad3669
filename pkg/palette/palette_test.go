package palette

import (
	"testing"

	"github.com/mjdavy/mandelbrot/pkg/escape"
)

func escaped(i int, smooth float64) escape.Result {
	return escape.Result{Iterations: i, Smooth: smooth, Escaped: true}
}

func TestGrayscaleBoundedIsBlack(t *testing.T) {
	g := NewGrayscale(256)
	pix := []uint8{0xff}
	g.Shade(escape.Result{}, pix)
	if pix[0] != 0 {
		t.Errorf("bounded pixel = %d, want 0", pix[0])
	}
}

func TestGrayscaleMonotonic(t *testing.T) {
	g := NewGrayscale(256)
	pix := make([]uint8, 1)

	prev := uint8(0)
	for i := 0; i < 256; i++ {
		g.Shade(escaped(i, 0), pix)
		if pix[0] < prev {
			t.Fatalf("intensity decreased at iteration %d: %d -> %d", i, prev, pix[0])
		}
		prev = pix[0]
	}

	g.Shade(escaped(255, 0), pix)
	if pix[0] == 0 {
		t.Error("slowest escape is black, indistinguishable from bounded")
	}
}

func TestRainbowBands(t *testing.T) {
	r := NewRainbow(255)
	tests := []struct {
		name string
		res  escape.Result
		want [3]uint8
	}{
		{"bounded is black", escape.Result{}, [3]uint8{0, 0, 0}},
		{"instant escape is white", escaped(0, 0), [3]uint8{255, 255, 255}},
		{"mid escape is yellow", escaped(100, 0), [3]uint8{255, 255, 0}},
		{"slowest escape is violet", escaped(254, 0), [3]uint8{148, 0, 211}},
	}

	pix := make([]uint8, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Shade(tt.res, pix)
			if [3]uint8{pix[0], pix[1], pix[2]} != tt.want {
				t.Errorf("got (%d,%d,%d), want %v", pix[0], pix[1], pix[2], tt.want)
			}
		})
	}
}

func TestRainbowEscapedNeverBlack(t *testing.T) {
	r := NewRainbow(97)
	pix := make([]uint8, 3)
	for i := 0; i < 97; i++ {
		r.Shade(escaped(i, 0), pix)
		if pix[0] == 0 && pix[1] == 0 && pix[2] == 0 {
			t.Fatalf("escaped iteration %d rendered black", i)
		}
	}
}

func TestSmoothBoundedIsBlack(t *testing.T) {
	s := NewSmooth(500)
	pix := []uint8{1, 2, 3}
	s.Shade(escape.Result{}, pix)
	if pix[0] != 0 || pix[1] != 0 || pix[2] != 0 {
		t.Errorf("bounded pixel = (%d,%d,%d), want black", pix[0], pix[1], pix[2])
	}
}

func TestSmoothDistinguishesIterations(t *testing.T) {
	s := NewSmooth(500)
	fast := make([]uint8, 3)
	slow := make([]uint8, 3)

	s.Shade(escaped(10, 0.5), fast)
	s.Shade(escaped(400, 0.5), slow)

	if fast[0] == slow[0] && fast[1] == slow[1] && fast[2] == slow[2] {
		t.Errorf("iterations 10 and 400 both shade to (%d,%d,%d)", fast[0], fast[1], fast[2])
	}
}

func TestChannelCounts(t *testing.T) {
	if got := NewGrayscale(10).Channels(); got != 1 {
		t.Errorf("Grayscale channels = %d, want 1", got)
	}
	if got := NewRainbow(10).Channels(); got != 3 {
		t.Errorf("Rainbow channels = %d, want 3", got)
	}
	if got := NewSmooth(10).Channels(); got != 3 {
		t.Errorf("Smooth channels = %d, want 3", got)
	}
}
