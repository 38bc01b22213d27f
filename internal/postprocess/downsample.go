package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img to w by h with Catmull-Rom filtering, which keeps
// supersampled edges smooth without halo artifacts. Rendered frames are
// opaque, so no premultiplication pass is needed. An image already at the
// target size is returned as is.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
