package raster

import (
	"math"

	"go3dgame/internal/colorutil"
)

// ColorBuffer addresses an 8-bit three-channel pixel region through byte
// strides. The first channel of pixel (x, y) lives at Base + x*StrideX +
// y*StrideY; the second and third channels follow at StrideC and 2*StrideC.
// Strides may be negative as long as every addressed byte stays inside Pix,
// which together with a nonzero Base expresses BGR and other swapped layouts
// over the same allocation.
//
// The buffer is externally owned. Nothing here allocates, and the only bounds
// checking is the slice's own.
type ColorBuffer struct {
	Pix     []uint8
	Base    int
	StrideX int
	StrideY int
	StrideC int
}

// PackedRGB returns a buffer over a fresh w*h*3 slice in row-major
// RGB-interleaved order.
func PackedRGB(w, h int) ColorBuffer {
	return ColorBuffer{
		Pix:     make([]uint8, w*h*3),
		StrideX: 3,
		StrideY: 3 * w,
		StrideC: 1,
	}
}

// Offset returns the byte offset of the first channel of pixel (x, y).
func (b ColorBuffer) Offset(x, y int) int {
	return b.Base + x*b.StrideX + y*b.StrideY
}

// SetRGB writes one pixel's three channels.
func (b ColorBuffer) SetRGB(x, y int, c colorutil.RGB) {
	o := b.Offset(x, y)
	b.Pix[o] = c.R
	b.Pix[o+b.StrideC] = c.G
	b.Pix[o+2*b.StrideC] = c.B
}

// At reads one pixel back. Meant for tests and tools, not the pixel loop.
func (b ColorBuffer) At(x, y int) colorutil.RGB {
	o := b.Offset(x, y)
	return colorutil.RGB{R: b.Pix[o], G: b.Pix[o+b.StrideC], B: b.Pix[o+2*b.StrideC]}
}

// DepthBuffer addresses a float32 depth plane through byte strides, mirroring
// ColorBuffer so color and depth can share one (x, y) walk. Strides stay in
// bytes even though elements are four bytes wide; Index does the division.
type DepthBuffer struct {
	Z       []float32
	StrideX int
	StrideY int
}

// PackedDepth returns a row-major depth buffer over a fresh w*h plane, every
// element at +Inf so the first write at each pixel passes the depth test.
func PackedDepth(w, h int) DepthBuffer {
	z := make([]float32, w*h)
	inf := float32(math.Inf(1))
	for i := range z {
		z[i] = inf
	}
	return DepthBuffer{
		Z:       z,
		StrideX: 4,
		StrideY: 4 * w,
	}
}

// Index returns the element index of pixel (x, y) in Z.
func (b DepthBuffer) Index(x, y int) int {
	return (x*b.StrideX + y*b.StrideY) / 4
}

// Clear resets every element to +Inf, so any finite depth wins again.
func (b DepthBuffer) Clear() {
	inf := float32(math.Inf(1))
	for i := range b.Z {
		b.Z[i] = inf
	}
}

// At reads the depth at (x, y).
func (b DepthBuffer) At(x, y int) float32 { return b.Z[b.Index(x, y)] }

// Set writes the depth at (x, y).
func (b DepthBuffer) Set(x, y int, d float32) { b.Z[b.Index(x, y)] = d }
