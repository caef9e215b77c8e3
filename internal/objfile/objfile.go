// Package objfile loads the Wavefront OBJ subset the model viewer needs:
// v/vn/vt records and triangulated f records (larger faces are fanned).
// Unknown directives are skipped. Meshes without normals get area-weighted
// smooth normals generated after parsing.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Vertex is the interleaved GPU layout the viewer uploads:
// position, normal, texture coordinate, all float32.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// ErrNoGeometry is returned for OBJ input that defines no faces.
var ErrNoGeometry = errors.New("objfile: no faces in input")

// LoadFile parses the OBJ file at path.
func LoadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: %s: %w", path, err)
	}
	return m, nil
}

// corner identifies one face corner by its (position, texcoord, normal)
// index triple. Zero means "absent" (OBJ indices are 1-based).
type corner struct {
	v, vt, vn int
}

// Parse reads OBJ data and builds an indexed mesh. Corners that share the
// same index triple are merged into one vertex.
func Parse(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		texcoords [][2]float32

		mesh    Mesh
		remap   = make(map[corner]uint32)
		hasNorm = true
	)

	resolve := func(c corner) (uint32, error) {
		if idx, ok := remap[c]; ok {
			return idx, nil
		}
		var vtx Vertex
		i, err := absIndex(c.v, len(positions))
		if err != nil {
			return 0, fmt.Errorf("vertex %w", err)
		}
		vtx.Position = positions[i]
		if c.vt != 0 {
			i, err := absIndex(c.vt, len(texcoords))
			if err != nil {
				return 0, fmt.Errorf("texcoord %w", err)
			}
			vtx.TexCoord = texcoords[i]
		}
		if c.vn != 0 {
			i, err := absIndex(c.vn, len(normals))
			if err != nil {
				return 0, fmt.Errorf("normal %w", err)
			}
			vtx.Normal = normals[i]
		} else {
			hasNorm = false
		}
		idx := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, vtx)
		remap[c] = idx
		return idx, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: v: %w", lineno, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vn: %w", lineno, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt: want at least 2 components, got %d", lineno, len(fields)-1)
			}
			u, err := parseFloat(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: vt: %w", lineno, err)
			}
			v, err := parseFloat(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: vt: %w", lineno, err)
			}
			texcoords = append(texcoords, [2]float32{u, v})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: f: want at least 3 corners, got %d", lineno, len(fields)-1)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, fld := range fields[1:] {
				c, err := parseCorner(fld)
				if err != nil {
					return nil, fmt.Errorf("line %d: f: %w", lineno, err)
				}
				idx, err := resolve(c)
				if err != nil {
					return nil, fmt.Errorf("line %d: f: %w", lineno, err)
				}
				corners = append(corners, idx)
			}
			// Fan-triangulate polygons.
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		default:
			// o, g, s, mtllib, usemtl and friends carry no geometry.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(mesh.Indices) == 0 {
		return nil, ErrNoGeometry
	}
	if !hasNorm {
		mesh.GenerateNormals()
	}
	return &mesh, nil
}

// GenerateNormals replaces all vertex normals with area-weighted smooth
// normals: each triangle's cross-product normal is accumulated into its
// three corners, then every accumulator is normalized. The cross product's
// magnitude is twice the triangle area, which gives the weighting for free.
func (m *Mesh) GenerateNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = [3]float32{}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := &m.Vertices[m.Indices[i]]
		b := &m.Vertices[m.Indices[i+1]]
		c := &m.Vertices[m.Indices[i+2]]

		var e1, e2, n [3]float32
		for k := 0; k < 3; k++ {
			e1[k] = b.Position[k] - a.Position[k]
			e2[k] = c.Position[k] - a.Position[k]
		}
		n[0] = e1[1]*e2[2] - e1[2]*e2[1]
		n[1] = e1[2]*e2[0] - e1[0]*e2[2]
		n[2] = e1[0]*e2[1] - e1[1]*e2[0]

		for _, v := range []*Vertex{a, b, c} {
			for k := 0; k < 3; k++ {
				v.Normal[k] += n[k]
			}
		}
	}
	for i := range m.Vertices {
		n := &m.Vertices[i].Normal
		l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if l > 0 {
			n[0] /= l
			n[1] /= l
			n[2] /= l
		}
	}
}

// Bounds returns the axis-aligned bounding box of the mesh positions.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			min[k] = math32.Min(min[k], v.Position[k])
			max[k] = math32.Max(max[k], v.Position[k])
		}
	}
	return min, max
}

// absIndex converts a 1-based, possibly negative OBJ index into a slice
// index. Negative indices count back from the end of the current list.
func absIndex(idx, n int) (int, error) {
	switch {
	case idx > 0 && idx <= n:
		return idx - 1, nil
	case idx < 0 && -idx <= n:
		return n + idx, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", idx, n)
	}
}

// parseCorner parses one face corner: "v", "v/vt", "v//vn" or "v/vt/vn".
func parseCorner(s string) (corner, error) {
	var c corner
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return c, fmt.Errorf("malformed corner %q", s)
	}
	var err error
	if c.v, err = strconv.Atoi(parts[0]); err != nil {
		return c, fmt.Errorf("malformed corner %q", s)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = strconv.Atoi(parts[1]); err != nil {
			return c, fmt.Errorf("malformed corner %q", s)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = strconv.Atoi(parts[2]); err != nil {
			return c, fmt.Errorf("malformed corner %q", s)
		}
	}
	if c.v == 0 {
		return c, fmt.Errorf("corner %q has no vertex index", s)
	}
	return c, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func parseFloats3(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := parseFloat(fields[i])
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
