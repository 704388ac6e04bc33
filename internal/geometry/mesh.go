package geometry

// Triangle represents a single facet of a triangulated surface.
// The normal is carried through from the source file but is not trusted:
// all derived quantities are computed from the vertices alone.
type Triangle struct {
	Normal Vector3 `json:"normal"`
	V1     Vector3 `json:"v1"`
	V2     Vector3 `json:"v2"`
	V3     Vector3 `json:"v3"`
}

// NewTriangle creates a triangle from a normal and three vertices.
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Area returns the triangle area via the cross-product formula.
// Degenerate (collinear) triangles have area 0.
func (t Triangle) Area() float64 {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	return e1.Cross(e2).Length() / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron formed by the
// triangle and the origin. Summed over a closed, consistently wound mesh
// this yields the enclosed volume (divergence theorem).
func (t Triangle) SignedVolume() float64 {
	return t.V1.Dot(t.V2.Cross(t.V3)) / 6.0
}

// Mesh represents a triangulated surface as an ordered triangle soup.
// No connectivity or topology is stored; a mesh is only meaningful for
// volume computation when it approximates a closed surface.
type Mesh struct {
	Name      string     `json:"name"`
	Triangles []Triangle `json:"triangles"`
}

// NewMesh creates an empty mesh with the given name.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name, Triangles: []Triangle{}}
}

// AddTriangle appends a triangle to the mesh.
func (m *Mesh) AddTriangle(t Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertices in the soup (3 per triangle,
// shared corners counted once per use).
func (m *Mesh) VertexCount() int {
	return len(m.Triangles) * 3
}

// Translate shifts every vertex of the mesh by the given offset.
func (m *Mesh) Translate(offset Vector3) {
	for i := range m.Triangles {
		m.Triangles[i].V1 = m.Triangles[i].V1.Add(offset)
		m.Triangles[i].V2 = m.Triangles[i].V2.Add(offset)
		m.Triangles[i].V3 = m.Triangles[i].V3.Add(offset)
	}
}

// BoundingBox represents an axis-aligned box.
type BoundingBox struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// Extend grows the box to include the given point.
func (b *BoundingBox) Extend(v Vector3) {
	b.Min = b.Min.Min(v)
	b.Max = b.Max.Max(v)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extent of the box (max − min).
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal.
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}
