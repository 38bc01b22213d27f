package raster

import "go3dgame/internal/colorutil"

// FillBackground writes c to all three channels of every pixel in
// [0,w)x[0,h). The depth plane is never touched; callers that want the fill
// to be overdrawable reset depth themselves (see Frame.Clear).
func FillBackground(dst ColorBuffer, c colorutil.RGB, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGB(x, y, c)
		}
	}
}
