package scene

import (
	"go3dgame/internal/colorutil"
	"go3dgame/internal/mathutil"
)

// Scene holds the background color, the directional light, and the bodies in
// draw order.
type Scene struct {
	Background colorutil.RGB
	Light      mathutil.Vec3

	bodies []*Body
	index  map[string]int
}

// NewScene builds an empty scene. The light vector is normalized; a zero
// vector stays zero and lights every face at half intensity.
func NewScene(bg colorutil.RGB, light mathutil.Vec3) *Scene {
	return &Scene{
		Background: bg,
		Light:      light.Normalize(),
		index:      make(map[string]int),
	}
}

// AddBody appends b to the draw order. A body with an already present name
// replaces the old one in place.
func (s *Scene) AddBody(b *Body) {
	if i, ok := s.index[b.Name]; ok {
		s.bodies[i] = b
		return
	}
	s.index[b.Name] = len(s.bodies)
	s.bodies = append(s.bodies, b)
}

// Body returns the body with the given name, or nil.
func (s *Scene) Body(name string) *Body {
	if i, ok := s.index[name]; ok {
		return s.bodies[i]
	}
	return nil
}

// Bodies returns the bodies in insertion order. The slice is owned by the
// scene.
func (s *Scene) Bodies() []*Body { return s.bodies }

// Clone deep-copies the scene and every body in it, so a second goroutine
// can animate its own copy.
func (s *Scene) Clone() *Scene {
	c := NewScene(s.Background, s.Light)
	for _, b := range s.bodies {
		c.AddBody(b.Clone())
	}
	return c
}

// Demo returns the built-in sample scene: a six-color cube with a small
// white moon. The moon's offset runs through its body rotation, so a
// turntable makes it orbit.
func Demo() *Scene {
	sc := NewScene(colorutil.RGB{R: 15, G: 15, B: 25}, mathutil.Vec3{0, 1, -1})
	sc.AddBody(Cube("cube", 2,
		colorutil.Red, colorutil.Green, colorutil.Blue,
		colorutil.Yellow, colorutil.Purple, colorutil.Cyan,
	))
	moon := Sphere("moon", 0.5, 2, colorutil.White)
	moon.Move(mathutil.Vec3{0, 3, 0}, mathutil.QuatIdentity())
	sc.AddBody(moon)
	return sc
}
