package bounce3d

// DefaultSubdivisionDepth gives 16384 triangles.
const DefaultSubdivisionDepth = 6

// Vertices of a regular tetrahedron inscribed in the unit sphere.
var (
	seedA = Vector3{0.0, 0.0, -1.0}
	seedB = Vector3{0.0, 0.942809, 0.333333}
	seedC = Vector3{-0.816497, -0.471405, 0.333333}
	seedD = Vector3{0.816497, -0.471405, 0.333333}
)

// seedFaces lists the tetrahedron faces in emission order.
var seedFaces = [4][3]Vector3{
	{seedA, seedB, seedC},
	{seedD, seedC, seedB},
	{seedA, seedD, seedB},
	{seedA, seedC, seedD},
}

// TrianglesAtDepth returns 4*4^depth.
func TrianglesAtDepth(depth int) int {
	if depth < 0 {
		depth = 0
	}
	return 4 << (2 * uint(depth))
}

// GenerateSphereMesh approximates the unit sphere by splitting every
// tetrahedron face depth times, pushing each new midpoint back onto the
// sphere. Normals equal the vertices since the mesh is a unit sphere at the
// origin.
func GenerateSphereMesh(depth int) *Mesh {
	if depth < 0 {
		depth = 0
	}
	m := NewMesh(TrianglesAtDepth(depth))
	for _, f := range seedFaces {
		divideTriangle(m, f[0], f[1], f[2], depth)
	}
	return m
}

func divideTriangle(m *Mesh, a, b, c Vector3, depth int) {
	if depth == 0 {
		m.AddTriangle(a, b, c, a, b, c)
		return
	}

	ab := Normalize(Lerp(a, b, 0.5))
	ac := Normalize(Lerp(a, c, 0.5))
	bc := Normalize(Lerp(b, c, 0.5))

	divideTriangle(m, a, ab, ac, depth-1)
	divideTriangle(m, ab, b, bc, depth-1)
	divideTriangle(m, bc, c, ac, depth-1)
	divideTriangle(m, ab, bc, ac, depth-1)
}

type subdivisionItem struct {
	a, b, c Vector3
	depth   int
}

// GenerateSphereMeshIterative produces the same mesh as GenerateSphereMesh
// using an explicit stack instead of recursion.
func GenerateSphereMeshIterative(depth int) *Mesh {
	if depth < 0 {
		depth = 0
	}
	m := NewMesh(TrianglesAtDepth(depth))
	stack := make([]subdivisionItem, 0, 3*depth+4)

	// pushed in reverse so the first face pops first
	for i := len(seedFaces) - 1; i >= 0; i-- {
		f := seedFaces[i]
		stack = append(stack, subdivisionItem{f[0], f[1], f[2], depth})
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.depth == 0 {
			m.AddTriangle(it.a, it.b, it.c, it.a, it.b, it.c)
			continue
		}

		ab := Normalize(Lerp(it.a, it.b, 0.5))
		ac := Normalize(Lerp(it.a, it.c, 0.5))
		bc := Normalize(Lerp(it.b, it.c, 0.5))
		d := it.depth - 1
		stack = append(stack,
			subdivisionItem{ab, bc, ac, d},
			subdivisionItem{bc, it.c, ac, d},
			subdivisionItem{ab, it.b, bc, d},
			subdivisionItem{it.a, ab, ac, d},
		)
	}
	return m
}
