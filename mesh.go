package bounce3d

// Mesh is a triangle soup: every three consecutive vertices form a triangle
// and Normals[i] belongs to Vertices[i].
type Mesh struct {
	Vertices []Vector3
	Normals  []Vector3
}

func NewMesh(triangles int) *Mesh {
	return &Mesh{
		Vertices: make([]Vector3, 0, triangles*3),
		Normals:  make([]Vector3, 0, triangles*3),
	}
}

// AddTriangle appends the triangle (a,b,c) with the matching normals.
func (m *Mesh) AddTriangle(a, b, c, na, nb, nc Vector3) {
	m.Vertices = append(m.Vertices, a, b, c)
	m.Normals = append(m.Normals, na, nb, nc)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// VertexBuffer flattens the vertices into x,y,z float32 triples ready for a
// GPU array buffer.
func (m *Mesh) VertexBuffer() []float32 {
	return flatten(m.Vertices)
}

func (m *Mesh) NormalBuffer() []float32 {
	return flatten(m.Normals)
}

func flatten(vs []Vector3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, float32(v[0]), float32(v[1]), float32(v[2]))
	}
	return out
}

// Indexed builds an indexed copy of the mesh, merging vertices that agree to
// float32 precision.
func (m *Mesh) Indexed() *IndexedMesh {
	im := NewIndexedMesh(len(m.Vertices) / 2)
	for i := range m.Vertices {
		idx := im.AddPoint(m.Vertices[i], m.Normals[i])
		im.Indices = append(im.Indices, idx)
	}
	return im
}
