package render

import (
	"image"
	"image/color"
)

// Buffer is the flat pixel buffer a render fills in: row-major, one byte per
// pixel for grayscale or three for RGB. The pixel at (x, y) starts at
// Pix[(y*Width+x)*Channels].
//
// Buffer implements image.Image so a finished render can be handed straight
// to an encoder.
type Buffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// NewBuffer allocates a zeroed width x height buffer with the given number
// of channels per pixel.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Pix:      make([]uint8, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// rows returns the sub-slice of Pix holding rows [start, end). Slices for
// disjoint row ranges never overlap.
func (b *Buffer) rows(start, end int) []uint8 {
	stride := b.Width * b.Channels
	return b.Pix[start*stride : end*stride]
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	if b.Channels == 1 {
		return color.GrayModel
	}
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	i := (y*b.Width + x) * b.Channels
	if b.Channels == 1 {
		return color.Gray{Y: b.Pix[i]}
	}
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 255}
}
