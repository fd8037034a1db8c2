package bounce3d

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrMeshTooLarge is returned when a mesh needs more vertices than a 16-bit
// index buffer can address.
var ErrMeshTooLarge = errors.New("mesh too large for 16-bit indices")

// CheckUint16 reports ErrMeshTooLarge when im cannot be drawn with uint16
// indices.
func (im *IndexedMesh) CheckUint16() error {
	if len(im.Points) > math.MaxUint16+1 {
		return fmt.Errorf("%w: %d vertices", ErrMeshTooLarge, len(im.Points))
	}
	return nil
}

// DepthOrder returns the instance indices sorted farthest first in view
// space. Instances at equal depth keep their insertion order.
func DepthOrder(view mgl64.Mat4, instances []Instance) []int {
	order := make([]int, len(instances))
	depth := make([]float64, len(instances))
	for i, inst := range instances {
		order[i] = i
		depth[i] = TransformPoint(view, inst.Position)[2]
	}
	sort.SliceStable(order, func(i, j int) bool {
		return depth[order[i]] < depth[order[j]]
	})
	return order
}

// AppendVisible appends to dst the triangles of indices whose vertices are
// all visible and which face the eye. viewPts and viewNrm are the mesh
// vertices and normals in view space.
func AppendVisible(dst []uint16, indices []int, visible []bool, viewPts, viewNrm []Vector3) []uint16 {
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		if !visible[a] || !visible[b] || !visible[c] {
			continue
		}
		center := viewPts[a].Add(viewPts[b]).Add(viewPts[c]).Mul(1.0 / 3)
		normal := viewNrm[a].Add(viewNrm[b]).Add(viewNrm[c])
		if !IsFrontFacing(center, normal) {
			continue
		}
		dst = append(dst, uint16(a), uint16(b), uint16(c))
	}
	return dst
}
