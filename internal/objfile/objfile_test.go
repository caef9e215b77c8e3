package objfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cube = `# unit quad split in two
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

func TestParse_IndexedQuad(t *testing.T) {
	m, err := Parse(strings.NewReader(cube))
	require.NoError(t, err)

	// Four distinct (v,vt,vn) triples, six indices.
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)

	assert.Equal(t, [3]float32{1, 1, 0}, m.Vertices[2].Position)
	assert.Equal(t, [3]float32{0, 0, 1}, m.Vertices[2].Normal)
	assert.Equal(t, [2]float32{1, 1}, m.Vertices[2].TexCoord)
}

func TestParse_SharedCornersMerge(t *testing.T) {
	m, err := Parse(strings.NewReader(cube))
	require.NoError(t, err)

	// Corner 1/1/1 appears in both faces but is stored once.
	assert.Equal(t, m.Indices[0], m.Indices[3])
}

func TestParse_FanTriangulation(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
}

func TestParse_NegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Indices, 3)
	assert.Equal(t, [3]float32{0, 0, 0}, m.Vertices[m.Indices[0]].Position)
	assert.Equal(t, [3]float32{0, 1, 0}, m.Vertices[m.Indices[2]].Position)
}

func TestParse_GeneratedNormals(t *testing.T) {
	// CCW triangle in the XY plane: normal must be +Z.
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	for _, v := range m.Vertices {
		assert.InDelta(t, 0, v.Normal[0], 1e-6)
		assert.InDelta(t, 0, v.Normal[1], 1e-6)
		assert.InDelta(t, 1, v.Normal[2], 1e-6)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "short vertex", src: "v 1 2\nf 1 1 1\n"},
		{name: "bad float", src: "v a b c\nf 1 1 1\n"},
		{name: "face index out of range", src: "v 0 0 0\nf 1 2 3\n"},
		{name: "malformed corner", src: "v 0 0 0\nf 1/2/3/4 1 1\n"},
		{name: "face too short", src: "v 0 0 0\nf 1 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestParse_NoGeometry(t *testing.T) {
	_, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\n"))
	assert.True(t, errors.Is(err, ErrNoGeometry))
}

func TestMesh_Bounds(t *testing.T) {
	src := `
v -1 2 -3
v 4 -5 6
v 0 0 0
f 1 2 3
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	min, max := m.Bounds()
	assert.Equal(t, [3]float32{-1, -5, -3}, min)
	assert.Equal(t, [3]float32{4, 2, 6}, max)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
