package render

import (
	"go3dgame/internal/colorutil"
	"go3dgame/internal/mathutil"
	"go3dgame/internal/raster"
	"go3dgame/internal/scene"
)

// Renderer draws a scene through a camera into an owned frame. Faces are
// backface culled against the camera, flat lit by the scene light and
// rasterized with depth testing, so draw order never matters.
type Renderer struct {
	Cam   *Camera
	Scene *scene.Scene

	frame *raster.Frame
}

// New builds a renderer with a w by h frame.
func New(cam *Camera, sc *scene.Scene, w, h int) *Renderer {
	return &Renderer{Cam: cam, Scene: sc, frame: raster.NewFrame(w, h)}
}

// Frame exposes the renderer's target for callers that read pixels directly.
func (r *Renderer) Frame() *raster.Frame { return r.frame }

// Render clears the frame to the scene background, draws every body and
// returns the frame.
func (r *Renderer) Render() *raster.Frame {
	r.frame.Clear(r.Scene.Background)
	r.RenderInto(r.frame.Color, r.frame.Depth, r.frame.W, r.frame.H)
	return r.frame
}

// RenderInto rasterizes the scene into caller-supplied buffers, for targets
// like window surfaces that are not owned by the renderer. The caller clears
// both planes beforehand; pixels are only written where triangles land.
func (r *Renderer) RenderInto(dst raster.ColorBuffer, zb raster.DepthBuffer, w, h int) {
	for _, b := range r.Scene.Bodies() {
		r.renderBody(dst, zb, w, h, b)
	}
}

func (r *Renderer) renderBody(dst raster.ColorBuffer, zb raster.DepthBuffer, w, h int, b *scene.Body) {
	world := b.World()
	for i, n := range b.Normals() {
		// Normals point into the body, so a face is visible exactly when
		// the camera-to-face ray runs with its normal.
		if world[b.Faces[i][0]].Sub(r.Cam.Pos).Dot(n) <= 0 {
			continue
		}
		r.renderFace(dst, zb, w, h, b, world, i)
	}
}

func (r *Renderer) renderFace(dst raster.ColorBuffer, zb raster.DepthBuffer, w, h int, b *scene.Body, world []mathutil.Vec3, i int) {
	f := b.Faces[i]
	var vs [3]raster.Vertex
	for j := 0; j < 3; j++ {
		v, ok := r.Cam.Project(world[f[j]], w, h)
		if !ok {
			return
		}
		vs[j] = v
	}

	intensity := b.Normals()[i].Dot(r.Scene.Light)/2 + 0.5
	c := colorutil.Darken(b.FaceColor(i), intensity)
	raster.DrawTriangle(dst, zb, vs[0], vs[1], vs[2], c, w, h)
}
