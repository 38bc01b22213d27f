package scene

import (
	"go3dgame/internal/colorutil"
	"go3dgame/internal/mathutil"
)

// Body is one rigid mesh in a scene: model-space vertices, triangle faces,
// and a world placement. World-space vertices and per-face normals are cached
// and refreshed whenever the placement changes.
type Body struct {
	Name     string
	Vertices []mathutil.Vec3
	Faces    [][3]int

	Pos mathutil.Vec3
	Rot mathutil.Quat

	// Spin state driving Rotate: Angle accumulates about Axis.
	Axis  mathutil.Vec3
	Angle float64

	// Color paints every face; Colors overrides it when it carries exactly
	// one entry per face.
	Color  colorutil.RGB
	Colors []colorutil.RGB

	world   []mathutil.Vec3
	normals []mathutil.Vec3
}

// NewBody builds a white body at the origin with identity orientation and
// fills its world-space caches.
func NewBody(name string, vertices []mathutil.Vec3, faces [][3]int) *Body {
	b := &Body{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
		Rot:      mathutil.QuatIdentity(),
		Axis:     mathutil.Vec3{0, 0, 1},
		Color:    colorutil.White,
	}
	b.Update()
	return b
}

// Update refreshes the world-space caches from the current placement. The
// transform order is rotate(v + Pos): the body translates first, then the
// rotation swings it about the world origin. The Move family calls this;
// callers that mutate Pos or Rot directly must call it themselves.
func (b *Body) Update() {
	rot := b.Rot.ToMat3()
	m := mathutil.FromMat3Translation(rot, rot.MulVec3(b.Pos))
	if cap(b.world) < len(b.Vertices) {
		b.world = make([]mathutil.Vec3, len(b.Vertices))
	}
	b.world = b.world[:len(b.Vertices)]
	if m.IsIdentity() {
		copy(b.world, b.Vertices)
	} else {
		for i, v := range b.Vertices {
			b.world[i] = m.MulPoint(v)
		}
	}
	b.computeNormals()
}

// computeNormals caches one unit normal per face. The edge order makes the
// normals point into the body; the renderer's visibility and lighting tests
// both assume that orientation.
func (b *Body) computeNormals() {
	if cap(b.normals) < len(b.Faces) {
		b.normals = make([]mathutil.Vec3, len(b.Faces))
	}
	b.normals = b.normals[:len(b.Faces)]
	for i, f := range b.Faces {
		e1 := b.world[f[1]].Sub(b.world[f[0]])
		e2 := b.world[f[2]].Sub(b.world[f[0]])
		b.normals[i] = e2.Cross(e1).Normalize()
	}
}

// World returns the cached world-space vertices. The slice is owned by the
// body and valid until the next placement change.
func (b *Body) World() []mathutil.Vec3 { return b.world }

// Normals returns the cached unit face normals, same ownership as World.
func (b *Body) Normals() []mathutil.Vec3 { return b.normals }

// Move places the body at pos with orientation rot.
func (b *Body) Move(pos mathutil.Vec3, rot mathutil.Quat) {
	b.Pos = pos
	b.Rot = rot
	b.Update()
}

// RelativeMove shifts the body by dpos and composes drot onto the current
// orientation, applied after it in the world frame.
func (b *Body) RelativeMove(dpos mathutil.Vec3, drot mathutil.Quat) {
	b.Pos = b.Pos.Add(dpos)
	b.Rot = b.Rot.Mul(drot)
	b.Update()
}

// Rotate spins the body by angle radians about its Axis. The angle
// accumulates across calls; any orientation set through Move or RelativeMove
// is replaced by the accumulated spin.
func (b *Body) Rotate(angle float64) {
	b.Angle += angle
	b.Rot = mathutil.AxisAngle(b.Angle, b.Axis)
	b.Update()
}

// RotateDeg spins the body by an angle in degrees.
func (b *Body) RotateDeg(angle float64) {
	b.Rotate(mathutil.Deg2Rad(angle))
}

// FaceColor returns the color of face i.
func (b *Body) FaceColor(i int) colorutil.RGB {
	if len(b.Colors) == len(b.Faces) {
		return b.Colors[i]
	}
	return b.Color
}

// Clone returns a deep copy that shares no slices, so two goroutines can
// animate the same body independently.
func (b *Body) Clone() *Body {
	c := *b
	c.Vertices = append([]mathutil.Vec3(nil), b.Vertices...)
	c.Faces = append([][3]int(nil), b.Faces...)
	c.Colors = append([]colorutil.RGB(nil), b.Colors...)
	c.world = append([]mathutil.Vec3(nil), b.world...)
	c.normals = append([]mathutil.Vec3(nil), b.normals...)
	return &c
}
