package scene

import (
	"math"

	"go3dgame/internal/colorutil"
	"go3dgame/internal/mathutil"
)

// Cube builds an axis-aligned cube with edge length dim centered on the body
// origin. colors may be empty (white), one color for the whole cube, one per
// side (six, expanded to the two triangles of each side), or one per face
// (twelve). Other counts leave the cube white.
func Cube(name string, dim float64, colors ...colorutil.RGB) *Body {
	d := dim / 2
	verts := []mathutil.Vec3{
		{d, d, d},
		{d, -d, -d},
		{d, d, -d},
		{d, -d, d},
		{-d, d, -d},
		{-d, d, d},
		{-d, -d, d},
		{-d, -d, -d},
	}
	faces := [][3]int{
		{0, 1, 2}, {0, 3, 1},
		{1, 3, 6}, {1, 6, 7},
		{5, 0, 2}, {5, 2, 4},
		{6, 5, 4}, {7, 6, 4},
		{0, 5, 6}, {0, 6, 3},
		{2, 7, 4}, {2, 1, 7},
	}
	b := NewBody(name, verts, faces)
	paint(b, colors)
	return b
}

// Sphere builds an icosphere of the given radius. quality counts subdivision
// rounds, giving 20 * 4^quality faces; 0 is the bare icosahedron.
func Sphere(name string, radius float64, quality int, colors ...colorutil.RGB) *Body {
	t := (1 + math.Sqrt(5)) / 2
	verts := []mathutil.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	for q := 0; q < quality; q++ {
		verts, faces = subdivide(verts, faces)
	}
	for i, v := range verts {
		verts[i] = v.Normalize().Scale(radius)
	}
	b := NewBody(name, verts, faces)
	paint(b, colors)
	return b
}

// subdivide splits every face into four, routing midpoint vertices through a
// shared cache so neighboring faces stay welded.
func subdivide(verts []mathutil.Vec3, faces [][3]int) ([]mathutil.Vec3, [][3]int) {
	mid := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		k := [2]int{min(a, b), max(a, b)}
		if i, ok := mid[k]; ok {
			return i
		}
		verts = append(verts, verts[a].Add(verts[b]).Scale(0.5))
		i := len(verts) - 1
		mid[k] = i
		return i
	}

	out := make([][3]int, 0, len(faces)*4)
	for _, f := range faces {
		a := midpoint(f[0], f[1])
		b := midpoint(f[1], f[2])
		c := midpoint(f[2], f[0])
		out = append(out,
			[3]int{f[0], a, c},
			[3]int{a, f[1], b},
			[3]int{c, b, f[2]},
			[3]int{a, b, c},
		)
	}
	return verts, out
}

// paint applies the constructor color forms: none, one for the whole body,
// one per face, or one per face pair.
func paint(b *Body, colors []colorutil.RGB) {
	switch len(colors) {
	case 0:
	case 1:
		b.Color = colors[0]
	case len(b.Faces):
		b.Colors = append([]colorutil.RGB(nil), colors...)
	case len(b.Faces) / 2:
		cs := make([]colorutil.RGB, 0, len(b.Faces))
		for _, c := range colors {
			cs = append(cs, c, c)
		}
		b.Colors = cs
	}
}
