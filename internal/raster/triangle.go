package raster

import "go3dgame/internal/colorutil"

// Vertex is a screen-space triangle corner: X and Y in pixels, Z the depth
// value the rasterizer interpolates and tests. Smaller Z is nearer.
type Vertex struct {
	X, Y, Z float32
}

// DrawTriangle rasterizes one solid triangle into dst, depth-tested against
// zbuf. Vertices are truncated to the pixel grid, the bounding box is clamped
// to [0,w)x[0,h), and the scan runs on integer edge functions, so the only
// float work per pixel is the depth interpolation.
//
// This is the hot path: zero allocation, no error channel. A fully off-screen
// or zero-area triangle returns without touching either buffer; everything
// else about buffer sizing is the caller's contract.
func DrawTriangle(dst ColorBuffer, zbuf DepthBuffer, p1, p2, p3 Vertex, c colorutil.RGB, w, h int) {
	p1x, p1y := int(p1.X), int(p1.Y)
	p2x, p2y := int(p2.X), int(p2.Y)
	p3x, p3y := int(p3.X), int(p3.Y)

	minX := max(min(p1x, p2x, p3x), 0)
	maxX := min(max(p1x, p2x, p3x), w-1)
	minY := max(min(p1y, p2y, p3y), 0)
	maxY := min(max(p1y, p2y, p3y), h-1)

	if minX > maxX+1 || minY > maxY+1 {
		return
	}

	// Edge deltas and per-edge cross terms; s_i below is the signed area
	// (doubled) of the sub-triangle opposite vertex i.
	d12x := p1x - p2x
	d23x := p2x - p3x
	d31x := p3x - p1x
	d12y := p1y - p2y
	d23y := p2y - p3y
	d31y := p3y - p1y
	c12 := d12x*p2y - d12y*p2x
	c23 := d23x*p3y - d23y*p3x
	c31 := d31x*p1y - d31y*p1x

	area := d31y*d23x - d31x*d23y
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			s1 := d12y*x - d12x*y + c12
			s2 := d23y*x - d23x*y + c23
			s3 := d31y*x - d31x*y + c31
			if !covers(s1, s2, s3) {
				continue
			}
			depth := (p1.Z*float32(s2) + p2.Z*float32(s3) + p3.Z*float32(s1)) * invArea
			di := zbuf.Index(x, y)
			if depth < zbuf.Z[di] {
				dst.SetRGB(x, y, c)
				zbuf.Z[di] = depth
			}
		}
	}
}

// covers reports whether a pixel with edge values s1, s2, s3 lies in the
// triangle: strictly inside under one winding, or on-or-inside under the
// other. The asymmetry gives shared edges to exactly one of two triangles
// drawn with opposite windings.
func covers(s1, s2, s3 int) bool {
	return (s1 > 0 && s2 > 0 && s3 > 0) || (s1 <= 0 && s2 <= 0 && s3 <= 0)
}
