package bounce3d

// Axis indexes a component of a Vector3.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Wall is the plane axis == Coord.
type Wall struct {
	Name  string
	Axis  Axis
	Coord float64
}

// Box is the space the spheres bounce in. It need not be centred on the
// origin.
type Box struct {
	Right, Left float64
	Bottom, Top float64
	Front, Back float64
}

func DefaultBox() Box {
	return Box{
		Right:  2.5,
		Left:   -2.5,
		Bottom: -2.5,
		Top:    3,
		Front:  2.5,
		Back:   -3,
	}
}

// Walls returns the six planes in the order collisions are checked.
func (b Box) Walls() [6]Wall {
	return [6]Wall{
		{Name: "right", Axis: AxisX, Coord: b.Right},
		{Name: "left", Axis: AxisX, Coord: b.Left},
		{Name: "bottom", Axis: AxisY, Coord: b.Bottom},
		{Name: "top", Axis: AxisY, Coord: b.Top},
		{Name: "front", Axis: AxisZ, Coord: b.Front},
		{Name: "back", Axis: AxisZ, Coord: b.Back},
	}
}

// Contains reports whether a sphere of the given radius at p lies fully
// inside the box.
func (b Box) Contains(p Vector3, radius float64) bool {
	return p[0]-radius >= b.Left && p[0]+radius <= b.Right &&
		p[1]-radius >= b.Bottom && p[1]+radius <= b.Top &&
		p[2]-radius >= b.Back && p[2]+radius <= b.Front
}

// TimeToImpact returns when a sphere at p moving with v touches the wall.
// Of the two roots (leading and trailing surface point) the later one is
// discarded when the earlier one is not in the past. A zero velocity
// component yields ±Inf or NaN.
func (w Wall) TimeToImpact(p, v Vector3, radius float64) float64 {
	a := int(w.Axis)
	t1 := (w.Coord - p[a] + radius) / v[a]
	t2 := (w.Coord - p[a] - radius) / v[a]
	if t1 > t2 && t2 >= 0 {
		t1 = t2
	}
	return t1
}
