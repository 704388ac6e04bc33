package importer

import (
	"math"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// Placeholder geometry parameters: a (2,3) torus knot sized like a small
// mechanical part, matching the demo geometry used while no CAD kernel
// is wired in.
const (
	placeholderRadius       = 40.0
	placeholderTube         = 12.0
	placeholderSegments     = 128
	placeholderRingSegments = 32
)

// PlaceholderMesh builds the deterministic stand-in mesh used for STEP
// and SolidWorks files. The result is watertight, consistently wound and
// centered on its center of mass, so the downstream statistics are
// stable across imports of the same file.
func PlaceholderMesh(name string) *geometry.Mesh {
	mesh := geometry.NewMesh(name)

	const p, q = 2.0, 3.0
	segments := placeholderSegments
	ringSegments := placeholderRingSegments

	// Sweep a circular tube along the knot curve. Ring frames use the
	// curve tangent and a projected normal; the small step keeps frame
	// twist negligible at this tessellation density.
	rings := make([][]geometry.Vector3, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		center := knotPoint(p, q, t)
		tangent := knotPoint(p, q, t+1e-4).Sub(center).Normalize()

		// Build an orthonormal frame around the tangent.
		ref := geometry.NewVector3(0, 0, 1)
		if math.Abs(tangent.Dot(ref)) > 0.9 {
			ref = geometry.NewVector3(1, 0, 0)
		}
		normal := ref.Sub(tangent.Mul(ref.Dot(tangent))).Normalize()
		binormal := tangent.Cross(normal)

		ring := make([]geometry.Vector3, ringSegments)
		for j := 0; j < ringSegments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(ringSegments)
			offset := normal.Mul(math.Cos(theta)).Add(binormal.Mul(math.Sin(theta))).Mul(placeholderTube)
			ring[j] = center.Add(offset)
		}
		rings[i] = ring
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		for j := 0; j < ringSegments; j++ {
			jn := (j + 1) % ringSegments
			a, b := rings[i][j], rings[i][jn]
			c, d := rings[next][j], rings[next][jn]

			mesh.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, b))
			mesh.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, b, c, d))
		}
	}

	// Center on the center of mass, like the reference placeholder.
	if stats, err := geometry.ComputeStats(mesh); err == nil {
		mesh.Translate(stats.CenterOfMass.Mul(-1))
	}

	return mesh
}

// knotPoint evaluates the (p,q) torus knot curve at parameter t, scaled
// to the placeholder's major radius.
func knotPoint(p, q, t float64) geometry.Vector3 {
	r := placeholderRadius * (2 + math.Cos(q*t)) / 3
	return geometry.NewVector3(
		r*math.Cos(p*t),
		r*math.Sin(p*t),
		placeholderRadius*math.Sin(q*t)/3,
	)
}
