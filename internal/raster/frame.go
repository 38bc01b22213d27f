package raster

import (
	"image"

	"go3dgame/internal/colorutil"
)

// Frame couples a packed color buffer with its depth plane and remembers the
// dimensions the two share. It is the single writer for both buffers; the
// renderer draws into one Frame per goroutine.
type Frame struct {
	W, H  int
	Color ColorBuffer
	Depth DepthBuffer
}

// NewFrame allocates a w by h frame, color zeroed and depth at +Inf.
func NewFrame(w, h int) *Frame {
	return &Frame{
		W:     w,
		H:     h,
		Color: PackedRGB(w, h),
		Depth: PackedDepth(w, h),
	}
}

// Clear fills the color buffer with bg and resets every depth to +Inf.
func (f *Frame) Clear(bg colorutil.RGB) {
	FillBackground(f.Color, bg, f.W, f.H)
	f.ClearDepth()
}

// ClearDepth resets the depth plane without touching color.
func (f *Frame) ClearDepth() {
	f.Depth.Clear()
}

// Image copies the frame into a fully opaque NRGBA image.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	src := f.Color.Pix
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		img.Pix[j] = src[i]
		img.Pix[j+1] = src[i+1]
		img.Pix[j+2] = src[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img
}
