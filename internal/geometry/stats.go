package geometry

import (
	"fmt"
	"math"
)

// InvalidMeshError reports a mesh that cannot be analyzed: a non-finite
// vertex coordinate or carried-over normal component.
type InvalidMeshError struct {
	Triangle int    // index of the offending triangle
	Reason   string // human-readable cause
}

func (e *InvalidMeshError) Error() string {
	return fmt.Sprintf("invalid mesh: triangle %d: %s", e.Triangle, e.Reason)
}

// Stats is a read-only snapshot of the derived geometry of a mesh.
// It is computed once per loaded mesh and replaced wholesale when a new
// file is loaded; callers must not mutate it.
//
// Volume is the absolute enclosed volume in the raw units of the source
// file, conventionally millimeters for CAD data; VolumeCm3 performs the
// conversion the pricing engine expects. The value is only physically
// meaningful for watertight meshes; closure is not verified.
type Stats struct {
	Volume       float64     `json:"volume"`
	Area         float64     `json:"area"`
	BoundingBox  BoundingBox `json:"bounding_box"`
	CenterOfMass Vector3     `json:"center_of_mass"`
	VertexCount  int         `json:"vertex_count"`
	FaceCount    int         `json:"face_count"`
}

// Conversion factors from the raw millimeter-based mesh units.
const (
	mm3PerCm3 = 1000.0
	mm2PerCm2 = 100.0
)

// VolumeCm3 returns the enclosed volume converted from mm³ to cm³.
func (s Stats) VolumeCm3() float64 { return s.Volume / mm3PerCm3 }

// AreaCm2 returns the surface area converted from mm² to cm².
func (s Stats) AreaCm2() float64 { return s.Area / mm2PerCm2 }

// Width returns the X extent of the bounding box.
func (s Stats) Width() float64 { return s.BoundingBox.Size().X }

// Height returns the Y extent of the bounding box.
func (s Stats) Height() float64 { return s.BoundingBox.Size().Y }

// Depth returns the Z extent of the bounding box.
func (s Stats) Depth() float64 { return s.BoundingBox.Size().Z }

// ComputeStats derives volume, surface area, bounding box and center of
// mass from a triangle-soup mesh in a single pass.
//
// Volume uses the divergence theorem: the signed tetrahedron volumes
// v1·(v2×v3)/6 are accumulated over all triangles and the absolute value
// of the sum is reported, so winding direction does not affect the result.
// An open (non-watertight) mesh still yields a numerically defined but
// physically meaningless value.
//
// A mesh with zero triangles yields the zero Stats value. Any non-finite
// vertex coordinate yields an *InvalidMeshError.
func ComputeStats(m *Mesh) (Stats, error) {
	if m == nil || len(m.Triangles) == 0 {
		return Stats{}, nil
	}

	var (
		signedVolume float64
		area         float64
		weightedCOM  Vector3
		vertexSum    Vector3
	)

	bbox := BoundingBox{Min: m.Triangles[0].V1, Max: m.Triangles[0].V1}

	for i, t := range m.Triangles {
		if !t.V1.IsFinite() || !t.V2.IsFinite() || !t.V3.IsFinite() {
			return Stats{}, &InvalidMeshError{Triangle: i, Reason: "non-finite vertex coordinate"}
		}

		sv := t.SignedVolume()
		signedVolume += sv
		area += t.Area()

		// Tetrahedron centroid is the mean of its four corners; the
		// fourth corner is the origin.
		centroid := t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 4.0)
		weightedCOM = weightedCOM.Add(centroid.Mul(sv))

		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
		vertexSum = vertexSum.Add(t.V1).Add(t.V2).Add(t.V3)
	}

	volume := math.Abs(signedVolume)

	var com Vector3
	if math.Abs(signedVolume) > 1e-12 {
		com = weightedCOM.Mul(1.0 / signedVolume)
	} else {
		// Open or flat geometry: fall back to the vertex average.
		com = vertexSum.Mul(1.0 / float64(len(m.Triangles)*3))
	}

	return Stats{
		Volume:       volume,
		Area:         area,
		BoundingBox:  bbox,
		CenterOfMass: com,
		VertexCount:  m.VertexCount(),
		FaceCount:    m.TriangleCount(),
	}, nil
}
