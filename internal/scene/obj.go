package scene

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go3dgame/internal/mathutil"
)

// FromOBJ reads a Wavefront OBJ mesh into a Body. It handles v and f
// statements; faces with more than three corners are fan-triangulated, and
// indices may be 1-based or negative (counting back from the vertices read so
// far). vt/vn references after a slash are dropped, and every other statement
// is skipped.
func FromOBJ(path, name string) (*Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", path, err)
	}
	return parseOBJ(data, path, name)
}

func parseOBJ(data []byte, path, name string) (*Body, error) {
	var verts []mathutil.Vec3
	var faces [][3]int

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: %s:%d: vertex needs three coordinates", path, lineNo)
			}
			var p [3]float64
			for i := range p {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("obj: %s:%d: bad coordinate %q: %w", path, lineNo, fields[i+1], err)
				}
				p[i] = f
			}
			verts = append(verts, mathutil.Vec3{p[0], p[1], p[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: %s:%d: face needs at least three corners", path, lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := faceIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("obj: %s:%d: %w", path, lineNo, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				faces = append(faces, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", path, err)
	}
	if len(verts) == 0 {
		return nil, fmt.Errorf("obj: %s: no vertices", path)
	}
	return NewBody(name, verts, faces), nil
}

// faceIndex resolves one face corner token to a zero-based vertex index.
func faceIndex(tok string, nv int) (int, error) {
	ref := tok
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", tok, err)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += nv
	default:
		return 0, fmt.Errorf("face index 0 in %q", tok)
	}
	if n < 0 || n >= nv {
		return 0, fmt.Errorf("face index %q out of range (%d vertices)", tok, nv)
	}
	return n, nil
}
