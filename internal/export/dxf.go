package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// DefaultPlateMargin is the clearance added around the part footprint on
// each side of the cavity plate, in mm.
const DefaultPlateMargin = 50.0

// ExportPlateDXF writes a 2D cavity-plate drawing derived from the part
// bounding box: the plate outline with the given margin around the part
// footprint, the part footprint itself, and centerlines.
func ExportPlateDXF(path string, stats geometry.Stats, margin float64) error {
	size := stats.BoundingBox.Size()
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("part footprint is empty, nothing to draw")
	}
	if margin <= 0 {
		margin = DefaultPlateMargin
	}

	plateW := size.X + 2*margin
	plateH := size.Y + 2*margin

	d := dxf.NewDrawing()

	// Plate outline
	d.AddLayer("PLATE", dxf.DefaultColor, dxf.DefaultLineType, true)
	if err := drawRect(d, 0, 0, plateW, plateH); err != nil {
		return err
	}

	// Part footprint centered on the plate
	d.AddLayer("PART", color.Red, table.LT_CONTINUOUS, true)
	if err := drawRect(d, margin, margin, size.X, size.Y); err != nil {
		return err
	}

	// Centerlines
	d.AddLayer("CENTER", color.Green, table.LT_CONTINUOUS, true)
	if _, err := d.Line(plateW/2, 0, 0, plateW/2, plateH, 0); err != nil {
		return err
	}
	if _, err := d.Line(0, plateH/2, 0, plateW, plateH/2, 0); err != nil {
		return err
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four line entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
