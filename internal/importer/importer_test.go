package importer

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

const asciiCube = `solid cube
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 10 10 0
    vertex 10 0 0
  endloop
endfacet
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 0 10 0
    vertex 10 10 0
  endloop
endfacet
endsolid cube
`

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// cubeMesh builds a closed cube with outward winding.
func cubeMesh(side float64) *geometry.Mesh {
	s := side
	v := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: s, Y: 0, Z: 0}, {X: s, Y: s, Z: 0}, {X: 0, Y: s, Z: 0},
		{X: 0, Y: 0, Z: s}, {X: s, Y: 0, Z: s}, {X: s, Y: s, Z: s}, {X: 0, Y: s, Z: s},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{2, 3, 7}, {2, 7, 6},
		{1, 2, 6}, {1, 6, 5},
		{3, 0, 4}, {3, 4, 7},
	}
	m := geometry.NewMesh("cube")
	for _, f := range faces {
		m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, v[f[0]], v[f[1]], v[f[2]]))
	}
	return m
}

func TestParseASCIISTL(t *testing.T) {
	path := writeTempFile(t, "cube.stl", []byte(asciiCube))

	mesh, err := ParseSTL(path)
	require.NoError(t, err)

	assert.Equal(t, "cube", mesh.Name)
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.InDelta(t, 100.0, mesh.Triangles[0].Area()+mesh.Triangles[1].Area(), 1e-9)
}

func TestBinarySTLRoundTrip(t *testing.T) {
	original := cubeMesh(10)
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, WriteBinarySTL(path, original))

	parsed, err := ParseSTL(path)
	require.NoError(t, err)
	require.Equal(t, original.TriangleCount(), parsed.TriangleCount())
	assert.Equal(t, "cube", parsed.Name)

	stats, err := geometry.ComputeStats(parsed)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, stats.Volume, 1e-3)
	assert.InDelta(t, 600.0, stats.Area, 1e-3)

	// A 10 mm cube must reach the pricing engine as exactly 1 cm³
	assert.InDelta(t, 1.0, stats.VolumeCm3(), 1e-6)
}

func TestImportCADDispatchSTL(t *testing.T) {
	path := writeTempFile(t, "part.stl", []byte(asciiCube))

	result, err := ImportCAD(path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Mesh.TriangleCount())
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 2, result.Stats.FaceCount)
}

func TestImportCADStepPlaceholder(t *testing.T) {
	path := writeTempFile(t, "bracket.step", []byte("ISO-10303-21;"))

	result, err := ImportCAD(path)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings, "placeholder import must warn")
	assert.Equal(t, "bracket", result.Mesh.Name)
	assert.Positive(t, result.Stats.Volume)
	assert.Positive(t, result.Stats.Area)

	// Placeholder geometry is centered on its center of mass.
	com := result.Stats.CenterOfMass
	assert.InDelta(t, 0, com.Length(), 1.0)
}

func TestImportCADPlaceholderDeterministic(t *testing.T) {
	a := writeTempFile(t, "part.sldprt", []byte("x"))
	b := writeTempFile(t, "part.sldprt", []byte("y"))

	ra, err := ImportCAD(a)
	require.NoError(t, err)
	rb, err := ImportCAD(b)
	require.NoError(t, err)

	assert.Equal(t, ra.Stats.Volume, rb.Stats.Volume)
	assert.Equal(t, ra.Stats.FaceCount, rb.Stats.FaceCount)
}

func TestImportCADUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "drawing.dwg", []byte("junk"))

	_, err := ImportCAD(path)
	require.Error(t, err)
	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".dwg", formatErr.Extension)
}

func TestPlaceholderMeshClosed(t *testing.T) {
	mesh := PlaceholderMesh("demo")
	require.Equal(t, placeholderSegments*placeholderRingSegments*2, mesh.TriangleCount())

	stats, err := geometry.ComputeStats(mesh)
	require.NoError(t, err)

	// A closed swept tube encloses a stable, strictly positive volume.
	assert.Positive(t, stats.Volume)
	assert.False(t, math.IsInf(stats.Volume, 0))

	size := stats.BoundingBox.Size()
	assert.Greater(t, size.X, placeholderRadius)
	assert.Greater(t, size.Y, placeholderRadius)
}
