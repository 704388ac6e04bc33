// Package importer loads CAD part files into the triangle-soup mesh
// representation. STL files (binary and ASCII) are parsed locally.
// STEP and SolidWorks files require a CAD kernel this application does
// not embed: they currently yield a deterministic placeholder mesh with
// an explicit warning, behind a seam that a real kernel or backend
// service can replace.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/piwi3910/MoldQuote/internal/geometry"
	"github.com/piwi3910/MoldQuote/internal/logging"
)

// Result holds a loaded mesh, its derived statistics, and any
// non-fatal warnings produced during import.
type Result struct {
	Mesh     *geometry.Mesh
	Stats    geometry.Stats
	Warnings []string
}

// UnsupportedFormatError reports a file extension no importer handles.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported CAD format %q", e.Extension)
}

// ImportCAD loads a CAD file by extension: .stl is parsed, .step/.stp/
// .sldprt produce placeholder geometry. The returned stats are computed
// from the loaded mesh; a mesh that fails validation fails the import.
func ImportCAD(path string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".stl":
		mesh, err := ParseSTL(path)
		if err != nil {
			return nil, err
		}
		return finishImport(mesh, nil)

	case ".step", ".stp", ".sldprt":
		logging.Warn("no CAD kernel available, using placeholder geometry", "ext", ext)
		mesh := PlaceholderMesh(strings.TrimSuffix(filepath.Base(path), ext))
		warning := fmt.Sprintf(
			"%s import is not backed by a CAD kernel; showing representative placeholder geometry", ext)
		return finishImport(mesh, []string{warning})

	default:
		return nil, &UnsupportedFormatError{Extension: ext}
	}
}

func finishImport(mesh *geometry.Mesh, warnings []string) (*Result, error) {
	stats, err := geometry.ComputeStats(mesh)
	if err != nil {
		return nil, fmt.Errorf("analyzing imported mesh: %w", err)
	}
	if mesh.TriangleCount() == 0 {
		warnings = append(warnings, "File contains no triangles")
	}
	logging.Debug("imported mesh", "name", mesh.Name, "triangles", mesh.TriangleCount(), "volume_mm3", stats.Volume)
	return &Result{Mesh: mesh, Stats: stats, Warnings: warnings}, nil
}
