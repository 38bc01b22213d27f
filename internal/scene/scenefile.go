package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go3dgame/internal/colorutil"
	"go3dgame/internal/mathutil"
)

// Load reads a scene from path by extension: a YAML scene file, or a bare
// OBJ mesh wrapped in a one-body scene with the default background and
// light.
func Load(path string) (*Scene, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		b, err := FromOBJ(path, strings.TrimSuffix(filepath.Base(path), ext))
		if err != nil {
			return nil, err
		}
		s := NewScene(colorutil.Black, mathutil.Vec3{0, 1, -1})
		s.AddBody(b)
		return s, nil
	case ".yaml", ".yml":
		return LoadFile(path)
	default:
		return nil, fmt.Errorf("scene: %s: want a .yaml scene or .obj mesh", path)
	}
}

// fileScene mirrors the YAML scene schema:
//
//	background: [20, 20, 30]
//	light: [0, 1, -1]
//	bodies:
//	  - name: spinner
//	    shape: cube            # cube | sphere | obj
//	    size: 10               # cube edge / sphere radius
//	    quality: 2             # sphere subdivision rounds
//	    path: models/ship.obj  # obj only, relative to the scene file
//	    colors: [[255,0,0], [0,255,0]]
//	    pos: [0, 0, 5]
//	    rot: {angle_deg: 45, axis: [0, 0, 1]}
//
// A rotation may also be given as XYZ Euler angles,
// rot: {euler_deg: [90, 0, 45]}, which is converted to the equivalent
// axis-angle pair.
type fileScene struct {
	Background [3]uint8   `yaml:"background"`
	Light      [3]float64 `yaml:"light"`
	Bodies     []fileBody `yaml:"bodies"`
}

type fileBody struct {
	Name    string     `yaml:"name"`
	Shape   string     `yaml:"shape"`
	Size    float64    `yaml:"size"`
	Quality int        `yaml:"quality"`
	Path    string     `yaml:"path"`
	Colors  [][3]uint8 `yaml:"colors"`
	Pos     [3]float64 `yaml:"pos"`
	Rot     fileRot    `yaml:"rot"`
}

type fileRot struct {
	AngleDeg float64    `yaml:"angle_deg"`
	Axis     [3]float64 `yaml:"axis"`
	EulerDeg [3]float64 `yaml:"euler_deg"`
}

// quat resolves the rotation forms. euler_deg wins when present; otherwise
// angle_deg spins about axis (default +z).
func (r fileRot) quat() (mathutil.Quat, error) {
	if r.EulerDeg != [3]float64{} {
		if r.AngleDeg != 0 || r.Axis != [3]float64{} {
			return mathutil.Quat{}, fmt.Errorf("rot has both euler_deg and angle_deg/axis")
		}
		return mathutil.EulerToQuat(
			mathutil.Deg2Rad(r.EulerDeg[0]),
			mathutil.Deg2Rad(r.EulerDeg[1]),
			mathutil.Deg2Rad(r.EulerDeg[2]),
		), nil
	}
	axis := mathutil.Vec3{r.Axis[0], r.Axis[1], r.Axis[2]}
	if axis == (mathutil.Vec3{}) {
		axis = mathutil.Vec3{0, 0, 1}
	}
	return mathutil.AxisAngle(mathutil.Deg2Rad(r.AngleDeg), axis.Normalize()), nil
}

// LoadFile builds a scene from a declarative YAML file. An omitted light
// defaults to (0, 1, -1) normalized; an omitted rot axis defaults to +z.
func LoadFile(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var fs fileScene
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	light := mathutil.Vec3{fs.Light[0], fs.Light[1], fs.Light[2]}
	if light == (mathutil.Vec3{}) {
		light = mathutil.Vec3{0, 1, -1}
	}
	s := NewScene(colorutil.RGB{R: fs.Background[0], G: fs.Background[1], B: fs.Background[2]}, light)

	for i, fb := range fs.Bodies {
		if fb.Name == "" {
			return nil, fmt.Errorf("scene: %s: body %d has no name", path, i)
		}
		if s.Body(fb.Name) != nil {
			return nil, fmt.Errorf("scene: %s: duplicate body name %q", path, fb.Name)
		}

		colors := make([]colorutil.RGB, len(fb.Colors))
		for j, c := range fb.Colors {
			colors[j] = colorutil.RGB{R: c[0], G: c[1], B: c[2]}
		}

		var b *Body
		switch fb.Shape {
		case "cube":
			if fb.Size <= 0 {
				return nil, fmt.Errorf("scene: %s: body %q: cube needs a positive size", path, fb.Name)
			}
			b = Cube(fb.Name, fb.Size, colors...)
		case "sphere":
			if fb.Size <= 0 {
				return nil, fmt.Errorf("scene: %s: body %q: sphere needs a positive size", path, fb.Name)
			}
			b = Sphere(fb.Name, fb.Size, fb.Quality, colors...)
		case "obj":
			if fb.Path == "" {
				return nil, fmt.Errorf("scene: %s: body %q: obj needs a path", path, fb.Name)
			}
			objPath := fb.Path
			if !filepath.IsAbs(objPath) {
				objPath = filepath.Join(filepath.Dir(path), objPath)
			}
			b, err = FromOBJ(objPath, fb.Name)
			if err != nil {
				return nil, fmt.Errorf("scene: %s: body %q: %w", path, fb.Name, err)
			}
			paint(b, colors)
		default:
			return nil, fmt.Errorf("scene: %s: body %q: unknown shape %q", path, fb.Name, fb.Shape)
		}

		rot, err := fb.Rot.quat()
		if err != nil {
			return nil, fmt.Errorf("scene: %s: body %q: %w", path, fb.Name, err)
		}
		// The spin state mirrors the placement, so Rotate continues from the
		// file's orientation instead of snapping back to identity.
		b.Angle, b.Axis = rot.ToAxisAngle()
		b.Move(mathutil.Vec3{fb.Pos[0], fb.Pos[1], fb.Pos[2]}, rot)
		s.AddBody(b)
	}
	return s, nil
}
