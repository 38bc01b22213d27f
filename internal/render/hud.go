package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"go3dgame/internal/colorutil"
	"go3dgame/internal/raster"
)

// bufferImage adapts a ColorBuffer to draw.Image so the font drawer can blit
// glyphs straight into strided pixels.
type bufferImage struct {
	buf  raster.ColorBuffer
	w, h int
}

func (b *bufferImage) ColorModel() color.Model { return color.NRGBAModel }

func (b *bufferImage) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

func (b *bufferImage) At(x, y int) color.Color {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return color.NRGBA{}
	}
	c := b.buf.At(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (b *bufferImage) Set(x, y int, c color.Color) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	r, g, bl, _ := c.RGBA()
	b.buf.SetRGB(x, y, colorutil.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)})
}

// DrawText renders one line of text in the fixed 7x13 face with its top left
// corner at (x, y).
func DrawText(dst raster.ColorBuffer, w, h, x, y int, text string, c colorutil.RGB) {
	d := &font.Drawer{
		Dst:  &bufferImage{buf: dst, w: w, h: h},
		Src:  image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
}
