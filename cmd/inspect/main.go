// Command inspect prints mesh statistics for a scene or OBJ file: vertex and
// face counts, bounding boxes, and surface area grouped by facing direction.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go3dgame/internal/mathutil"
	"go3dgame/internal/scene"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <scene.yaml|mesh.obj>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("Bodies: %d\n", len(s.Bodies()))
	for _, b := range s.Bodies() {
		inspect(b)
	}
	return nil
}

func inspect(b *scene.Body) {
	world := b.World()
	lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range world {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}

	fmt.Printf("  %s: verts=%d, faces=%d\n", b.Name, len(b.Vertices), len(b.Faces))
	if b.Pos != (mathutil.Vec3{}) || b.Angle != 0 {
		fmt.Printf("    Placed at (%.2f, %.2f, %.2f), turned %.1f deg\n",
			b.Pos[0], b.Pos[1], b.Pos[2], mathutil.Rad2Deg(b.Angle))
	}
	fmt.Printf("    BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n",
		lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("    Size: %.2f x %.2f x %.2f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])

	// Cached normals point into the body, so the outward side is the
	// negation.
	areaByDir := map[string]float64{}
	total := 0.0
	for i, f := range b.Faces {
		e1 := world[f[1]].Sub(world[f[0]])
		e2 := world[f[2]].Sub(world[f[0]])
		area := e1.Cross(e2).Len() / 2
		total += area
		areaByDir[dominantDir(b.Normals()[i].Neg())] += area
	}
	fmt.Printf("    Surface: %.2f sq units\n", total)
	for _, d := range []string{"+x", "-x", "+y", "-y", "+z", "-z"} {
		if a := areaByDir[d]; a > 0 {
			fmt.Printf("      %s: %.2f\n", d, a)
		}
	}
}

// dominantDir labels a vector by its largest axis component.
func dominantDir(v mathutil.Vec3) string {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	switch {
	case ax >= ay && ax >= az:
		if v[0] >= 0 {
			return "+x"
		}
		return "-x"
	case ay >= az:
		if v[1] >= 0 {
			return "+y"
		}
		return "-y"
	default:
		if v[2] >= 0 {
			return "+z"
		}
		return "-z"
	}
}
