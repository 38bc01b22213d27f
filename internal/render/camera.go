package render

import (
	"math"

	"go3dgame/internal/mathutil"
	"go3dgame/internal/raster"
	"go3dgame/internal/scene"
)

// Camera casts world-space points onto a view plane Zoom units along Dir and
// maps them to pixels through the derived screen basis (xs to the right, ys
// down). Dir is kept unit length; the basis follows every orientation change.
type Camera struct {
	Pos  mathutil.Vec3
	Dir  mathutil.Vec3
	Zoom float64

	xs, ys mathutil.Vec3
}

// NewCamera builds a camera at pos looking along dir with the default zoom.
func NewCamera(pos, dir mathutil.Vec3) *Camera {
	c := &Camera{Pos: pos, Dir: dir.Normalize(), Zoom: 1000}
	c.updateBasis()
	return c
}

// updateBasis derives the screen basis xs = Dir x z, ys = Dir x xs. Looking
// straight up or down degenerates the z reference, so the y axis stands in.
func (c *Camera) updateBasis() {
	c.xs = c.Dir.Cross(mathutil.Vec3{0, 0, 1})
	if c.xs.Len() < 1e-9 {
		c.xs = c.Dir.Cross(mathutil.Vec3{0, 1, 0})
	}
	c.ys = c.Dir.Cross(c.xs)
}

// Project returns p as a screen-space vertex for a w by h viewport, with
// depth the Euclidean camera distance. ok is false for points on or behind
// the camera plane, which have no projection.
func (c *Camera) Project(p mathutil.Vec3, w, h int) (raster.Vertex, bool) {
	u := p.Sub(c.Pos)
	d := u.Dot(c.Dir)
	if d <= 1e-9 {
		return raster.Vertex{}, false
	}
	proj := c.Pos.Add(u.Scale(c.Zoom / d))
	rel := proj.Sub(c.Pos.Add(c.Dir.Scale(c.Zoom)))
	return raster.Vertex{
		X: float32(c.xs.Dot(rel) + float64(w)/2),
		Y: float32(c.ys.Dot(rel) + float64(h)/2),
		Z: float32(u.Len()),
	}, true
}

// Move shifts the camera in its own frame: forward along Dir, right along
// the screen x axis, up along world z.
func (c *Camera) Move(forward, right, up float64) {
	c.Pos = c.Pos.Add(c.Dir.Scale(forward))
	if l := c.xs.Len(); l > 1e-12 {
		c.Pos = c.Pos.Add(c.xs.Scale(right / l))
	}
	c.Pos = c.Pos.Add(mathutil.Vec3{0, 0, up})
}

// Rotate turns the view by yaw about world z and tilts it by pitch. Pitch
// stops just short of the poles so the screen basis never collapses.
func (c *Camera) Rotate(yaw, pitch float64) {
	az := math.Atan2(c.Dir[1], c.Dir[0]) + yaw
	el := math.Asin(max(-1, min(1, c.Dir[2]))) + pitch

	const lim = math.Pi/2 - 0.01
	if el > lim {
		el = lim
	}
	if el < -lim {
		el = -lim
	}

	c.Dir = mathutil.Vec3{
		math.Cos(el) * math.Cos(az),
		math.Cos(el) * math.Sin(az),
		math.Sin(el),
	}
	c.updateBasis()
}

// LookAt points the camera at target, keeping its position.
func (c *Camera) LookAt(target mathutil.Vec3) {
	d := target.Sub(c.Pos)
	if d.Len() < 1e-12 {
		return
	}
	c.Dir = d.Normalize()
	c.updateBasis()
}

// FitCamera places a camera on the -x axis looking at the center of the
// scene, backed off far enough that every body fits the viewport with some
// margin. A zoom of zero keeps the default. An empty scene gets a default
// camera at the origin.
func FitCamera(sc *scene.Scene, w, h int, zoom float64) *Camera {
	c := NewCamera(mathutil.Vec3{}, mathutil.Vec3{1, 0, 0})
	if zoom > 0 {
		c.Zoom = zoom
	}

	center, radius := boundingSphere(sc)
	if radius == 0 {
		return c
	}

	dist := 2.5*radius*c.Zoom/float64(min(w, h)) + radius
	c.Pos = center.Sub(mathutil.Vec3{dist, 0, 0})
	return c
}

func boundingSphere(sc *scene.Scene) (mathutil.Vec3, float64) {
	var center mathutil.Vec3
	n := 0
	for _, b := range sc.Bodies() {
		for _, v := range b.World() {
			center = center.Add(v)
			n++
		}
	}
	if n == 0 {
		return mathutil.Vec3{}, 0
	}
	center = center.Scale(1 / float64(n))

	radius := 0.0
	for _, b := range sc.Bodies() {
		for _, v := range b.World() {
			if d := v.Sub(center).Len(); d > radius {
				radius = d
			}
		}
	}
	return center, radius
}
