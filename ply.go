package bounce3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePLY writes im as an ASCII PLY file with per-vertex normals.
func WritePLY(w io.Writer, im *IndexedMesh) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by bounce3d")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(im.Points))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintln(writer, "property float nx")
	_, _ = fmt.Fprintln(writer, "property float ny")
	_, _ = fmt.Fprintln(writer, "property float nz")
	_, _ = fmt.Fprintf(writer, "element face %d\n", im.TriangleCount())
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for i, p := range im.Points {
		n := im.Normals[i]
		_, _ = fmt.Fprintf(writer, "%f %f %f %f %f %f\n", p[0], p[1], p[2], n[0], n[1], n[2])
	}

	for i := 0; i+2 < len(im.Indices); i += 3 {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", im.Indices[i], im.Indices[i+1], im.Indices[i+2])
	}

	return writer.Flush()
}

// SavePLY writes im to fileName.
func SavePLY(fileName string, im *IndexedMesh) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WritePLY(file, im); err != nil {
		return fmt.Errorf("could not write PLY file %s: %w", fileName, err)
	}
	return nil
}
