package paths

import (
	"fmt"
	"math"
)

// LocationKind discriminates the three ways to address a point along a segment.
type LocationKind int

const (
	// UnitKind addresses by fraction of arclength in [0,1].
	UnitKind LocationKind = iota
	// OffsetKind addresses by absolute arclength from the segment start.
	OffsetKind
	// TimeKind addresses by the native curve parameter in [0,1], which is non-uniform in
	// arclength except for lines and circular arcs.
	TimeKind
)

// Location addresses a point along a segment by unit fraction, arclength offset, or time. Every
// geometric query first funnels its location through ToTime, since all evaluation formulas are
// parameterized by time.
type Location struct {
	Kind  LocationKind
	Value float64
}

// Unit returns a location at the given fraction of arclength, 0 being the start and 1 the end.
func Unit(v float64) Location {
	return Location{UnitKind, v}
}

// Offset returns a location at the given arclength from the segment start.
func Offset(v float64) Location {
	return Location{OffsetKind, v}
}

// Time returns a location at the given native curve parameter.
func Time(v float64) Location {
	return Location{TimeKind, v}
}

// clamp saturates t into [0,1]. Out-of-range locations clamp, they never error.
func clamp(t float64) float64 {
	if t < 0.0 {
		return 0.0
	} else if 1.0 < t {
		return 1.0
	}
	return t
}

////////////////////////////////////////////////////////////////

// Segment is a single interpolation step between two points. Segments are value objects derived
// on demand from adjacent curve vertices and are never mutated; all transforms return new values.
type Segment struct {
	Start, End Point
	Command    Command
}

// IsZero returns true for a degenerate segment whose start and end coincide and that spans no
// area, ie. it contributes zero length and collapses to a point in bounds unions. Detected
// directly on the end points since the arc parameterization is unstable there.
func (seg Segment) IsZero() bool {
	if !seg.Start.Equals(seg.End) {
		return false
	}
	switch seg.kind() {
	case LineKind, ArcKind:
		return true
	case CubicKind:
		return seg.Command.Control1.Equals(seg.Start) && seg.Command.Control2.Equals(seg.Start)
	}
	return true
}

// kind returns the command kind used for dispatch. An arc whose radii have a zero or non-finite
// component has no center parameterization; per the SVG arc conversion notes such an arc is drawn
// as a straight line to its end point.
func (seg Segment) kind() CommandKind {
	if seg.Command.Kind == ArcKind {
		rx, ry := math.Abs(seg.Command.Radii.X), math.Abs(seg.Command.Radii.Y)
		if !(0.0 < rx) || !(0.0 < ry) {
			return LineKind
		}
	}
	return seg.Command.Kind
}

// ToTime resolves a location to the segment's native time parameter in [0,1]. Unit and offset
// locations of non-uniform-speed segments invert the arclength parameterization by bisection.
func (seg Segment) ToTime(loc Location) float64 {
	u := loc.Value
	switch loc.Kind {
	case TimeKind:
		return clamp(u)
	case OffsetKind:
		length := seg.Length()
		if equal(length, 0.0) {
			return 0.0
		}
		u /= length
	case UnitKind:
		// handled below
	default:
		panic(fmt.Sprintf("paths: invalid location kind %d", int(loc.Kind)))
	}

	u = clamp(u)
	switch seg.kind() {
	case LineKind:
		return u
	case CubicKind:
		return cubicBezierTimeAt(seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End, u)
	case ArcKind:
		if seg.IsZero() {
			return 0.0
		}
		params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
		return arcTimeAt(params, u)
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}

// Length returns the arclength of the segment.
func (seg Segment) Length() float64 {
	if seg.IsZero() {
		return 0.0
	}
	switch seg.kind() {
	case LineKind:
		return seg.End.Sub(seg.Start).Length()
	case CubicKind:
		return cubicBezierLength(seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End)
	case ArcKind:
		params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
		return ellipseLength(params.Radii.X, params.Radii.Y, params.Angles.Start, params.Angles.End)
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}

// Bounds returns the bounding rectangle of the segment.
func (seg Segment) Bounds() Rect {
	switch seg.kind() {
	case LineKind:
		return RectFromPoints(seg.Start, seg.End)
	case CubicKind:
		return cubicBezierBounds(seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End)
	case ArcKind:
		return arcBounds(seg)
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}

// Pos returns the position along the segment at the given location.
func (seg Segment) Pos(loc Location) Point {
	t := seg.ToTime(loc)
	switch seg.kind() {
	case LineKind:
		return seg.Start.Interpolate(seg.End, t)
	case CubicKind:
		return cubicBezierPos(seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End, t)
	case ArcKind:
		if seg.IsZero() {
			return seg.Start
		}
		params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
		theta := params.Angles.Start + t*params.Angles.Delta()
		return ellipsePos(params.Radii.X, params.Radii.Y, params.Rotation, params.Center.X, params.Center.Y, theta)
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}

// Deriv returns the derivative with respect to time along the segment at the given location.
func (seg Segment) Deriv(loc Location) Point {
	t := seg.ToTime(loc)
	switch seg.kind() {
	case LineKind:
		return seg.End.Sub(seg.Start)
	case CubicKind:
		return cubicBezierDeriv(seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End, t)
	case ArcKind:
		if seg.IsZero() {
			return Point{}
		}
		params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
		delta := params.Angles.Delta()
		theta := params.Angles.Start + t*delta
		return ellipseDeriv(params.Radii.X, params.Radii.Y, params.Rotation, params.Sweep, theta).Mul(math.Abs(delta))
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}

// Tangent returns the unit tangent at the given location.
func (seg Segment) Tangent(loc Location) Point {
	return seg.Deriv(loc).Norm(1.0)
}

// Normal returns the unit normal at the given location, ie. the tangent rotated 90 degrees CCW.
func (seg Segment) Normal(loc Location) Point {
	return seg.Tangent(loc).Rot90CCW()
}

// Orientation returns the affine frame at the given location: the x-axis is the tangent, the
// y-axis the normal, and the origin the position. Callers use it to place oriented marks along a
// path.
func (seg Segment) Orientation(loc Location) Matrix {
	t := seg.Tangent(loc)
	n := t.Rot90CCW()
	p := seg.Pos(loc)
	return Matrix{
		{t.X, n.X, p.X},
		{t.Y, n.Y, p.Y},
	}
}

// CenterParams returns the center parameterization of an arc segment. It panics for other kinds.
func (seg Segment) CenterParams() CenterParams {
	if seg.Command.Kind != ArcKind {
		panic("paths: center parameterization requires an arc segment")
	}
	return arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
}

// Transform applies an affine transformation to the segment.
func (seg Segment) Transform(m Matrix) Segment {
	switch seg.kind() {
	case LineKind:
		return Segment{m.Dot(seg.Start), m.Dot(seg.End), seg.Command}
	case CubicKind:
		cmd := CubicCommand(m.Dot(seg.Command.Control1), m.Dot(seg.Command.Control2))
		return Segment{m.Dot(seg.Start), m.Dot(seg.End), cmd}
	case ArcKind:
		return transformArc(seg, m)
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}

// Split subdivides the segment at the given location, returning both halves. The halves join
// exactly at the location's position; arc halves recompute their large-arc flags.
func (seg Segment) Split(loc Location) (Segment, Segment) {
	t := seg.ToTime(loc)
	switch seg.kind() {
	case LineKind:
		mid := seg.Start.Interpolate(seg.End, t)
		return Segment{seg.Start, mid, LineCommand()}, Segment{mid, seg.End, LineCommand()}
	case CubicKind:
		q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End, t)
		return Segment{q0, q3, CubicCommand(q1, q2)}, Segment{r0, r3, CubicCommand(r1, r2)}
	case ArcKind:
		if seg.IsZero() {
			return Segment{seg.Start, seg.Start, seg.Command}, seg
		}
		params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
		delta := params.Angles.Delta()
		theta := params.Angles.Start + t*delta
		mid := ellipsePos(params.Radii.X, params.Radii.Y, params.Rotation, params.Center.X, params.Center.Y, theta)
		rotation := params.Rotation * 180.0 / math.Pi
		cmd1 := ArcCommand(params.Radii, rotation, math.Pi < math.Abs(t*delta), seg.Command.Sweep)
		cmd2 := ArcCommand(params.Radii, rotation, math.Pi < math.Abs((1.0-t)*delta), seg.Command.Sweep)
		return Segment{seg.Start, mid, cmd1}, Segment{mid, seg.End, cmd2}
	}
	panic(fmt.Sprintf("paths: unknown command kind %d", int(seg.Command.Kind)))
}
