package bounce3d

import (
	"errors"
	"testing"
)

func TestDepthOrder(t *testing.T) {
	view := DefaultCamera().ViewMatrix()

	testCases := []struct {
		name      string
		positions []Vector3
		expected  []int
	}{
		{"empty", nil, []int{}},
		{"already far to near", []Vector3{{0, 0, -2}, {0, 0, 0}, {0, 0, 2}}, []int{0, 1, 2}},
		{"near to far", []Vector3{{0, 0, 2}, {0, 0, 0}, {0, 0, -2}}, []int{2, 1, 0}},
		{"ties keep insertion order", []Vector3{{1, 0, 0}, {-1, 0, 0}, {0, 0, -1}}, []int{2, 0, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			instances := make([]Instance, len(tc.positions))
			for i, p := range tc.positions {
				instances[i] = Instance{Position: p}
			}
			got := DepthOrder(view, instances)
			if len(got) != len(tc.expected) {
				t.Fatalf("DepthOrder() = %v, want %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("DepthOrder() = %v, want %v", got, tc.expected)
				}
			}
		})
	}
}

func TestAppendVisible(t *testing.T) {
	// two triangles at z=-5: the first faces the eye, the second away
	pts := []Vector3{{0, 0, -5}, {1, 0, -5}, {0, 1, -5}, {1, 1, -5}}
	toward := []Vector3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	away := []Vector3{{0, 0, -1}, {0, 0, -1}, {0, 0, -1}, {0, 0, -1}}
	indices := []int{0, 1, 2, 1, 3, 2}
	all := []bool{true, true, true, true}

	testCases := []struct {
		name     string
		normals  []Vector3
		visible  []bool
		expected []uint16
	}{
		{"front faces kept", toward, all, []uint16{0, 1, 2, 1, 3, 2}},
		{"back faces culled", away, all, []uint16{}},
		{"one hidden vertex drops its triangles", toward, []bool{true, true, true, false}, []uint16{0, 1, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AppendVisible(nil, indices, tc.visible, pts, tc.normals)
			if len(got) != len(tc.expected) {
				t.Fatalf("AppendVisible() = %v, want %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("AppendVisible() = %v, want %v", got, tc.expected)
				}
			}
		})
	}
}

func TestAppendVisibleReusesBuffer(t *testing.T) {
	buf := make([]uint16, 0, 8)
	pts := []Vector3{{0, 0, -5}, {1, 0, -5}, {0, 1, -5}}
	nrm := []Vector3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	got := AppendVisible(buf[:0], []int{0, 1, 2}, []bool{true, true, true}, pts, nrm)
	if &got[0] != &buf[:1][0] {
		t.Error("AppendVisible() reallocated a buffer with spare capacity")
	}
}

// About half of a sphere seen from the default camera survives culling.
func TestAppendVisibleSphere(t *testing.T) {
	im := GenerateSphereMesh(3).Indexed()
	mv := DefaultCamera().ViewMatrix().Mul4(ModelMatrix(Vector3{}, Vector3{1, 1, 1}))
	nm := NormalMatrix(mv)

	pts := make([]Vector3, len(im.Points))
	nrm := make([]Vector3, len(im.Points))
	visible := make([]bool, len(im.Points))
	for i := range im.Points {
		pts[i] = TransformPoint(mv, im.Points[i]).Vec3()
		nrm[i] = nm.Mul3x1(im.Normals[i])
		visible[i] = true
	}

	drawn := len(AppendVisible(nil, im.Indices, visible, pts, nrm)) / 3
	total := im.TriangleCount()
	if drawn <= total/3 || drawn > total/2 {
		t.Errorf("%d of %d triangles drawn, want a little under half", drawn, total)
	}
}

func TestCheckUint16(t *testing.T) {
	testCases := []struct {
		name   string
		points int
		err    error
	}{
		{"seed mesh", 4, nil},
		{"exactly addressable", 65536, nil},
		{"one too many", 65537, ErrMeshTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			im := &IndexedMesh{Points: make([]Vector3, tc.points)}
			if err := im.CheckUint16(); !errors.Is(err, tc.err) {
				t.Errorf("CheckUint16() = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestDeepestMeshFitsUint16(t *testing.T) {
	testCases := []struct {
		depth  int
		points int
		err    error
	}{
		{6, 8194, nil},
		{7, 32770, nil},
		{8, 131074, ErrMeshTooLarge},
	}

	for _, tc := range testCases {
		im := GenerateSphereMesh(tc.depth).Indexed()
		if len(im.Points) != tc.points {
			t.Errorf("depth %d: %d unique points, want %d", tc.depth, len(im.Points), tc.points)
		}
		if err := im.CheckUint16(); !errors.Is(err, tc.err) {
			t.Errorf("depth %d: CheckUint16() = %v, want %v", tc.depth, err, tc.err)
		}
	}
}
