package bounce3d

// IndexedMesh holds unique vertices with their normals and a triangle list
// of indices into them.
type IndexedMesh struct {
	Points     []Vector3
	Normals    []Vector3
	Indices    []int
	pointIndex map[[3]float32]int
}

func NewIndexedMesh(capacity int) *IndexedMesh {
	return &IndexedMesh{
		Points:     make([]Vector3, 0, capacity),
		Normals:    make([]Vector3, 0, capacity),
		pointIndex: make(map[[3]float32]int, capacity),
	}
}

// AddPoint returns the index of point, adding it if no point with the same
// float32 coordinates exists yet.
func (im *IndexedMesh) AddPoint(point, normal Vector3) int {
	key := [3]float32{float32(point[0]), float32(point[1]), float32(point[2])}
	if index, found := im.pointIndex[key]; found {
		return index
	}

	im.Points = append(im.Points, point)
	im.Normals = append(im.Normals, normal)
	newIndex := len(im.Points) - 1
	im.pointIndex[key] = newIndex
	return newIndex
}

func (im *IndexedMesh) TriangleCount() int {
	return len(im.Indices) / 3
}
