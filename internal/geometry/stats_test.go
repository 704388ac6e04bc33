package geometry

import (
	"errors"
	"math"
	"testing"
)

// cubeMesh builds an axis-aligned cube of the given side length with one
// corner at the origin and consistent outward winding (12 triangles).
func cubeMesh(side float64) *Mesh {
	s := side
	v := []Vector3{
		{0, 0, 0}, {s, 0, 0}, {s, s, 0}, {0, s, 0}, // bottom (z=0)
		{0, 0, s}, {s, 0, s}, {s, s, s}, {0, s, s}, // top (z=s)
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom, normal -Z
		{4, 5, 6}, {4, 6, 7}, // top, normal +Z
		{0, 1, 5}, {0, 5, 4}, // front, normal -Y
		{2, 3, 7}, {2, 7, 6}, // back, normal +Y
		{1, 2, 6}, {1, 6, 5}, // right, normal +X
		{3, 0, 4}, {3, 4, 7}, // left, normal -X
	}
	m := NewMesh("cube")
	for _, f := range faces {
		m.AddTriangle(NewTriangle(Vector3{}, v[f[0]], v[f[1]], v[f[2]]))
	}
	return m
}

func TestStatsUnitConversion(t *testing.T) {
	// A 10 mm cube encloses 1000 mm³ of raw mesh volume but one
	// physical cm³; pricing consumes the converted value.
	m := cubeMesh(10)
	stats, err := ComputeStats(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(stats.Volume-1000.0) > 1e-9 {
		t.Errorf("raw volume must stay in mm³: expected 1000, got %.6f", stats.Volume)
	}
	if math.Abs(stats.VolumeCm3()-1.0) > 1e-9 {
		t.Errorf("expected 1 cm³, got %.6f", stats.VolumeCm3())
	}
	if math.Abs(stats.AreaCm2()-6.0) > 1e-9 {
		t.Errorf("expected 6 cm², got %.6f", stats.AreaCm2())
	}
}

func TestComputeStatsCubeVolume(t *testing.T) {
	m := cubeMesh(10)
	stats, err := ComputeStats(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(stats.Volume-1000.0) > 1e-9 {
		t.Errorf("expected volume 1000, got %.6f", stats.Volume)
	}
	if math.Abs(stats.Area-600.0) > 1e-9 {
		t.Errorf("expected area 600, got %.6f", stats.Area)
	}
	if stats.FaceCount != 12 {
		t.Errorf("expected 12 faces, got %d", stats.FaceCount)
	}
	if stats.VertexCount != 36 {
		t.Errorf("expected 36 soup vertices, got %d", stats.VertexCount)
	}

	center := stats.BoundingBox.Center()
	for _, c := range []float64{center.X, center.Y, center.Z} {
		if math.Abs(c-5.0) > 1e-9 {
			t.Errorf("expected bbox center at 5 per axis, got %+v", center)
		}
	}
	com := stats.CenterOfMass
	for _, c := range []float64{com.X, com.Y, com.Z} {
		if math.Abs(c-5.0) > 1e-9 {
			t.Errorf("expected center of mass at 5 per axis, got %+v", com)
		}
	}
}

func TestComputeStatsWindingReversal(t *testing.T) {
	m := cubeMesh(7)
	reversed := NewMesh("reversed")
	for _, tri := range m.Triangles {
		reversed.AddTriangle(NewTriangle(tri.Normal, tri.V1, tri.V3, tri.V2))
	}

	a, err := ComputeStats(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ComputeStats(reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(a.Volume-b.Volume) > 1e-9 {
		t.Errorf("absolute volume changed under winding reversal: %.6f vs %.6f", a.Volume, b.Volume)
	}
	if math.Abs(a.Area-b.Area) > 1e-9 {
		t.Errorf("area changed under winding reversal: %.6f vs %.6f", a.Area, b.Area)
	}
}

func TestComputeStatsAreaRigidMotionInvariance(t *testing.T) {
	m := cubeMesh(4)
	base, err := ComputeStats(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rotate 30° about Z and translate.
	angle := math.Pi / 6
	cos, sin := math.Cos(angle), math.Sin(angle)
	rotate := func(v Vector3) Vector3 {
		return Vector3{
			X: v.X*cos - v.Y*sin + 100,
			Y: v.X*sin + v.Y*cos - 50,
			Z: v.Z + 25,
		}
	}
	moved := NewMesh("moved")
	for _, tri := range m.Triangles {
		moved.AddTriangle(NewTriangle(tri.Normal, rotate(tri.V1), rotate(tri.V2), rotate(tri.V3)))
	}

	got, err := ComputeStats(moved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.Area-base.Area) > 1e-9 {
		t.Errorf("area not invariant under rigid motion: %.9f vs %.9f", got.Area, base.Area)
	}
	if math.Abs(got.Volume-base.Volume) > 1e-9 {
		t.Errorf("volume not invariant under rigid motion: %.9f vs %.9f", got.Volume, base.Volume)
	}
}

func TestComputeStatsBoundingBox(t *testing.T) {
	m := NewMesh("slab")
	m.AddTriangle(NewTriangle(Vector3{},
		Vector3{X: -3, Y: 2, Z: 1},
		Vector3{X: 5, Y: -4, Z: 0},
		Vector3{X: 1, Y: 1, Z: 8},
	))
	stats, err := ComputeStats(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bb := stats.BoundingBox
	if bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y || bb.Min.Z > bb.Max.Z {
		t.Errorf("bounding box min > max: %+v", bb)
	}
	size := bb.Size()
	want := Vector3{X: 8, Y: 6, Z: 8}
	if size != want {
		t.Errorf("expected size %+v, got %+v", want, size)
	}
}

func TestComputeStatsEmptyMesh(t *testing.T) {
	stats, err := ComputeStats(NewMesh("empty"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Volume != 0 || stats.Area != 0 || stats.FaceCount != 0 {
		t.Errorf("expected zero stats for empty mesh, got %+v", stats)
	}
	if stats.BoundingBox.Size() != (Vector3{}) {
		t.Errorf("expected degenerate zero-size box, got %+v", stats.BoundingBox)
	}

	stats, err = ComputeStats(nil)
	if err != nil {
		t.Fatalf("unexpected error for nil mesh: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("expected zero stats for nil mesh, got %+v", stats)
	}
}

func TestComputeStatsDegenerateTriangle(t *testing.T) {
	m := NewMesh("degenerate")
	// All three vertices collinear: zero area, zero volume contribution.
	m.AddTriangle(NewTriangle(Vector3{},
		Vector3{X: 0, Y: 0, Z: 0},
		Vector3{X: 1, Y: 1, Z: 1},
		Vector3{X: 2, Y: 2, Z: 2},
	))
	stats, err := ComputeStats(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Area != 0 {
		t.Errorf("expected zero area for degenerate triangle, got %.9f", stats.Area)
	}
}

func TestComputeStatsNonFiniteCoordinate(t *testing.T) {
	m := NewMesh("bad")
	m.AddTriangle(NewTriangle(Vector3{},
		Vector3{X: 0, Y: 0, Z: 0},
		Vector3{X: math.NaN(), Y: 1, Z: 0},
		Vector3{X: 1, Y: 0, Z: 0},
	))
	_, err := ComputeStats(m)
	if err == nil {
		t.Fatal("expected InvalidMeshError for NaN coordinate")
	}
	var meshErr *InvalidMeshError
	if !errors.As(err, &meshErr) {
		t.Fatalf("expected *InvalidMeshError, got %T", err)
	}
	if meshErr.Triangle != 0 {
		t.Errorf("expected offending triangle 0, got %d", meshErr.Triangle)
	}
}

func TestTriangleSignedVolumeSignFlips(t *testing.T) {
	tri := NewTriangle(Vector3{},
		Vector3{X: 1, Y: 0, Z: 0},
		Vector3{X: 0, Y: 1, Z: 0},
		Vector3{X: 0, Y: 0, Z: 1},
	)
	flipped := NewTriangle(Vector3{}, tri.V1, tri.V3, tri.V2)
	if tri.SignedVolume() != -flipped.SignedVolume() {
		t.Errorf("expected sign flip: %.6f vs %.6f", tri.SignedVolume(), flipped.SignedVolume())
	}
}
