package bounce3d

import (
	"math"
	"testing"
)

func TestWallsOrder(t *testing.T) {
	expected := []string{"right", "left", "bottom", "top", "front", "back"}
	walls := DefaultBox().Walls()
	for i, w := range walls {
		if w.Name != expected[i] {
			t.Errorf("wall %d = %s, want %s", i, w.Name, expected[i])
		}
	}
	if walls[0].Axis != AxisX || walls[2].Axis != AxisY || walls[5].Axis != AxisZ {
		t.Errorf("unexpected wall axes: %v", walls)
	}
}

func TestTimeToImpact(t *testing.T) {
	right := Wall{Name: "right", Axis: AxisX, Coord: 2.5}
	left := Wall{Name: "left", Axis: AxisX, Coord: -2.5}

	testCases := []struct {
		name     string
		wall     Wall
		p, v     Vector3
		radius   float64
		expected float64
	}{
		{
			name:     "approaching takes the nearer surface",
			wall:     right,
			p:        Vector3{2.29, 0, 0},
			v:        Vector3{5, 0, 0},
			radius:   0.2,
			expected: 0.002,
		},
		{
			name:     "moving away from the right wall",
			wall:     right,
			p:        Vector3{0, 0, 0},
			v:        Vector3{-1, 0, 0},
			radius:   0.5,
			expected: -3,
		},
		{
			name:     "approaching the left wall",
			wall:     left,
			p:        Vector3{0, 0, 0},
			v:        Vector3{-2, 0, 0},
			radius:   0.5,
			expected: 1,
		},
		{
			name:     "already overlapping keeps the far root",
			wall:     right,
			p:        Vector3{2.4, 0, 0},
			v:        Vector3{1, 0, 0},
			radius:   0.2,
			expected: 0.3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.wall.TimeToImpact(tc.p, tc.v, tc.radius)
			if !almostEqual(got, tc.expected) {
				t.Errorf("TimeToImpact() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestTimeToImpactZeroVelocity(t *testing.T) {
	top := Wall{Name: "top", Axis: AxisY, Coord: 3}
	got := top.TimeToImpact(Vector3{0, 0, 0}, Vector3{1, 0, 0}, 0.2)
	if !math.IsInf(got, 0) {
		t.Errorf("TimeToImpact() with zero velocity = %v, want Inf", got)
	}
}

func TestBoxContains(t *testing.T) {
	b := DefaultBox()
	testCases := []struct {
		name     string
		p        Vector3
		radius   float64
		expected bool
	}{
		{"centre", Vector3{0, 0, 0}, 0.3, true},
		{"close to right", Vector3{2.2, 0, 0}, 0.2, true},
		{"through right", Vector3{2.4, 0, 0}, 0.2, false},
		{"below floor", Vector3{0, -2.4, 0}, 0.2, false},
		{"near back", Vector3{0, 0, -2.7}, 0.2, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p, tc.radius); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.p, tc.radius, got, tc.expected)
			}
		})
	}
}
