package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// maxPreviewTriangles caps how many triangles are rendered as wireframe
// edges. Dense meshes are subsampled evenly so the preview stays responsive.
const maxPreviewTriangles = 1500

// View planes for the 2D wireframe projection.
type ViewPlane int

const (
	ViewTop   ViewPlane = iota // XY plane
	ViewFront                  // XZ plane
	ViewSide                   // YZ plane
)

func (v ViewPlane) String() string {
	switch v {
	case ViewFront:
		return "Front (XZ)"
	case ViewSide:
		return "Side (YZ)"
	default:
		return "Top (XY)"
	}
}

// MeshPreview renders a 2D wireframe projection of a triangle mesh.
type MeshPreview struct {
	widget.BaseWidget
	mesh      *geometry.Mesh
	plane     ViewPlane
	maxWidth  float32
	maxHeight float32
}

func NewMeshPreview(mesh *geometry.Mesh, plane ViewPlane, maxW, maxH float32) *MeshPreview {
	mp := &MeshPreview{
		mesh:      mesh,
		plane:     plane,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	mp.ExtendBaseWidget(mp)
	return mp
}

// SetPlane switches the projection plane and redraws.
func (mp *MeshPreview) SetPlane(plane ViewPlane) {
	mp.plane = plane
	mp.Refresh()
}

func (mp *MeshPreview) CreateRenderer() fyne.WidgetRenderer {
	return newMeshPreviewRenderer(mp)
}

type meshPreviewRenderer struct {
	mp      *MeshPreview
	objects []fyne.CanvasObject
}

func newMeshPreviewRenderer(mp *MeshPreview) *meshPreviewRenderer {
	r := &meshPreviewRenderer{mp: mp}
	r.rebuild()
	return r
}

// project maps a 3D vertex onto the active 2D view plane.
func (r *meshPreviewRenderer) project(v geometry.Vector3) (float64, float64) {
	switch r.mp.plane {
	case ViewFront:
		return v.X, v.Z
	case ViewSide:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

func (r *meshPreviewRenderer) rebuild() {
	r.objects = nil

	mesh := r.mp.mesh
	if mesh == nil || mesh.TriangleCount() == 0 {
		return
	}

	// Projected bounding box
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range mesh.Triangles {
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			x, y := r.project(v)
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 || spanY <= 0 {
		return
	}

	scale := math.Min(float64(r.mp.maxWidth)/spanX, float64(r.mp.maxHeight)/spanY)
	canvasW := float32(spanX * scale)
	canvasH := float32(spanY * scale)

	// Background panel
	bg := canvas.NewRectangle(color.NRGBA{R: 28, G: 32, B: 38, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Outline border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 1
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Subsample evenly so huge meshes stay responsive
	step := 1
	if mesh.TriangleCount() > maxPreviewTriangles {
		step = mesh.TriangleCount() / maxPreviewTriangles
	}

	// Y axis points down on screen, so flip vertically
	toScreen := func(x, y float64) fyne.Position {
		sx := float32((x - minX) * scale)
		sy := canvasH - float32((y-minY)*scale)
		return fyne.NewPos(sx, sy)
	}

	edgeColor := color.NRGBA{R: 90, G: 200, B: 250, A: 150}
	for i := 0; i < len(mesh.Triangles); i += step {
		t := mesh.Triangles[i]
		corners := []geometry.Vector3{t.V1, t.V2, t.V3}
		for j := range corners {
			ax, ay := r.project(corners[j])
			bx, by := r.project(corners[(j+1)%3])

			line := canvas.NewLine(edgeColor)
			line.StrokeWidth = 1
			line.Position1 = toScreen(ax, ay)
			line.Position2 = toScreen(bx, by)
			r.objects = append(r.objects, line)
		}
	}
}

func (r *meshPreviewRenderer) Layout(size fyne.Size)        {}
func (r *meshPreviewRenderer) Refresh()                     { r.rebuild() }
func (r *meshPreviewRenderer) Destroy()                     {}
func (r *meshPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *meshPreviewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.mp.maxWidth, r.mp.maxHeight)
}

// RenderPartPreview creates the part view for a loaded mesh: triple
// wireframe projections plus a geometry summary line.
func RenderPartPreview(mesh *geometry.Mesh, stats geometry.Stats) fyne.CanvasObject {
	if mesh == nil || mesh.TriangleCount() == 0 {
		return widget.NewLabel("No part loaded. Open a CAD file to begin.")
	}

	var items []fyne.CanvasObject

	size := stats.BoundingBox.Size()
	summary := widget.NewLabel(fmt.Sprintf(
		"%s — %.2f cm³, %.2f cm², %d triangles, %.1f × %.1f × %.1f mm",
		mesh.Name, stats.VolumeCm3(), stats.AreaCm2(), stats.FaceCount, size.X, size.Y, size.Z,
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary, widget.NewSeparator())

	for _, plane := range []ViewPlane{ViewTop, ViewFront, ViewSide} {
		header := widget.NewLabel(plane.String())
		header.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, header, NewMeshPreview(mesh, plane, 420, 280), widget.NewSeparator())
	}

	return container.NewVScroll(container.NewVBox(items...))
}
