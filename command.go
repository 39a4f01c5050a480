package paths

import "fmt"

// CommandKind discriminates the three ways a segment reaches its end point.
type CommandKind int

const (
	LineKind CommandKind = iota
	CubicKind
	ArcKind
)

func (k CommandKind) String() string {
	switch k {
	case LineKind:
		return "L"
	case CubicKind:
		return "C"
	case ArcKind:
		return "A"
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command describes how a segment is drawn from its contextual start point to the vertex that
// carries it. It is a struct-encoded sum type: only the fields of the tagged kind are meaningful.
type Command struct {
	Kind CommandKind

	// cubic Bézier control points
	Control1, Control2 Point

	// elliptical arc parameters in SVG endpoint form
	Radii    Point
	Rotation float64 // x-axis rotation in degrees
	Large    bool
	Sweep    bool
}

// LineCommand returns a straight-line command.
func LineCommand() Command {
	return Command{Kind: LineKind}
}

// CubicCommand returns a cubic Bézier command with the given control points.
func CubicCommand(control1, control2 Point) Command {
	return Command{Kind: CubicKind, Control1: control1, Control2: control2}
}

// QuadCommand returns a cubic Bézier command equivalent to the quadratic Bézier from start over
// control to end, using degree elevation. The stored model has no quadratic kind.
func QuadCommand(start, control, end Point) Command {
	control1 := start.Interpolate(control, 2.0/3.0)
	control2 := end.Interpolate(control, 2.0/3.0)
	return CubicCommand(control1, control2)
}

// ArcCommand returns an elliptical arc command in SVG endpoint form, with radii, the x-axis
// rotation in degrees, and the large-arc and sweep flags.
func ArcCommand(radii Point, rotation float64, large, sweep bool) Command {
	return Command{Kind: ArcKind, Radii: radii, Rotation: rotation, Large: large, Sweep: sweep}
}

// Equals returns true if the commands have the same kind and payload with tolerance Epsilon.
func (cmd Command) Equals(o Command) bool {
	if cmd.Kind != o.Kind {
		return false
	}
	switch cmd.Kind {
	case LineKind:
		return true
	case CubicKind:
		return cmd.Control1.Equals(o.Control1) && cmd.Control2.Equals(o.Control2)
	case ArcKind:
		return cmd.Radii.Equals(o.Radii) && equal(cmd.Rotation, o.Rotation) &&
			cmd.Large == o.Large && cmd.Sweep == o.Sweep
	}
	return false
}

// Vertex is the end point of a segment together with the command describing how to reach it from
// the previous vertex. A vertex never stores its own start point; that is supplied contextually by
// its predecessor or by a closed curve's wraparound.
type Vertex struct {
	Point   Point
	Command Command
}

// LineVertex returns a vertex reached by a straight line.
func LineVertex(p Point) Vertex {
	return Vertex{Point: p, Command: LineCommand()}
}

// CubicVertex returns a vertex reached by a cubic Bézier.
func CubicVertex(control1, control2, p Point) Vertex {
	return Vertex{Point: p, Command: CubicCommand(control1, control2)}
}

// ArcVertex returns a vertex reached by an elliptical arc.
func ArcVertex(radii Point, rotation float64, large, sweep bool, p Point) Vertex {
	return Vertex{Point: p, Command: ArcCommand(radii, rotation, large, sweep)}
}

// Equals returns true if the vertices are equal with tolerance Epsilon.
func (v Vertex) Equals(o Vertex) bool {
	return v.Point.Equals(o.Point) && v.Command.Equals(o.Command)
}
