package paths

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// split the curve and replace it by lines as long as the maximum deviation = flatness is
// maintained
func flattenSmoothCubicBezier(points []Point, p0, p1, p2, p3 Point, flatness float64) []Point {
	t := 0.0
	for t < 1.0 {
		s2nom := (p2.X-p0.X)*(p1.Y-p0.Y) - (p2.Y-p0.Y)*(p1.X-p0.X)
		s2denom := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
		if s2nom*s2denom == 0.0 {
			break
		}
		t = 2.0 * math.Sqrt(flatness/3.0*math.Abs(s2denom/s2nom))
		if 1.0 <= t {
			break
		}
		_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t)
		points = append(points, p0)
	}
	return append(points, p3)
}

func findInflectionPointsCubicBezier(p0, p1, p2, p3 Point) (float64, float64) {
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	bx := 3.0*p0.X - 6.0*p1.X + 3.0*p2.X
	by := 3.0*p0.Y - 6.0*p1.Y + 3.0*p2.Y
	cx := -3.0*p0.X + 3.0*p1.X
	cy := -3.0*p0.Y + 3.0*p1.Y

	tcusp := -0.5 * ((ay*cx - ax*cy) / (ay*bx - ax*by))
	if !(0.0 <= tcusp && tcusp <= 1.0) { // handles NaN and Infs too
		return math.NaN(), math.NaN()
	}

	discriminant := tcusp*tcusp - ((by*cx-bx*cy)/(ay*bx-ax*by))/3.0
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return tcusp, math.NaN()
	}
	q := math.Sqrt(discriminant)
	return tcusp - q, tcusp + q
}

func findInflectionPointRange(p0, p1, p2, p3 Point, t, flatness float64) (float64, float64) {
	if math.IsNaN(t) {
		return math.Inf(1), math.Inf(1)
	}

	// we state that s(t) = 3*s2*t^2 + (s3 - 3*s2)*t^3 (see paper on the r-s coordinate system)
	// with s(t) aligned perpendicular to the curve at t = 0
	// then we impose that s(tf) = flatness and find tf
	// at inflection points however, s2 = 0, so that s(t) = s3*t^3

	_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t)
	nr := p1.Sub(p0)
	ns := p3.Sub(p0)
	if nr.X == 0.0 && nr.Y == 0.0 {
		// if p0=p1, then rn (the velocity at t=0) needs adjustment
		// nr = lim[t->0](B'(t)) = 3*(p1-p0) + 6*t*((p1-p0)+(p2-p1)) + second order terms of t
		// if (p1-p0)->0, we use (p2-p1)
		nr = p2.Sub(p1)
	}
	if nr.X == 0.0 && nr.Y == 0.0 {
		// if rn is still zero, this curve has p0=p1=p2, so it is straight
		return 0.0, 1.0
	}

	s3 := math.Abs(ns.X*nr.Y-ns.Y*nr.X) / math.Hypot(nr.X, nr.Y)
	if s3 == 0.0 {
		return 0.0, 1.0 // can approximate whole curve linearly
	}

	tf := math.Cbrt(flatness / s3)
	return t - tf*(1.0-t), t + tf*(1.0-t)
}

// flattenCubicBezier appends the polyline approximation of the cubic Bézier, excluding the start
// point, within the maximum deviation flatness.
// see Flat, precise flattening of cubic Bezier path and offset curves, by T.F. Hain et al., 2005
// https://www.sciencedirect.com/science/article/pii/S0097849305001287
func flattenCubicBezier(points []Point, p0, p1, p2, p3 Point, flatness float64) []Point {
	// 0 <= t1 <= 1 if t1 exists
	// 0 <= t2 <= 1 and t1 < t2 if t2 exists
	t1, t2 := findInflectionPointsCubicBezier(p0, p1, p2, p3)
	if math.IsNaN(t1) && math.IsNaN(t2) {
		// There are no inflection points or cusps, approximate linearly by subdivision.
		return flattenSmoothCubicBezier(points, p0, p1, p2, p3, flatness)
	}

	// t1min <= t1max; with t1min <= 1 and t1max >= 0
	// t2min <= t2max; with t2min <= 1 and t2max >= 0
	t1min, t1max := findInflectionPointRange(p0, p1, p2, p3, t1, flatness)
	t2min, t2max := findInflectionPointRange(p0, p1, p2, p3, t2, flatness)

	if math.IsNaN(t2) && t1min <= 0.0 && 1.0 <= t1max {
		// There is no second inflection point, and the first inflection point can be entirely
		// approximated linearly.
		return append(points, p3)
	}

	if 0.0 < t1min {
		// Flatten up to t1min
		q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t1min)
		points = flattenSmoothCubicBezier(points, q0, q1, q2, q3, flatness)
	}

	if 0.0 < t1max && t1max < 1.0 && t1max < t2min {
		// t1 and t2 ranges do not overlap, approximate t1 linearly
		_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t1max)
		points = append(points, q0)
		if 1.0 <= t2min {
			// No t2 present, approximate the rest linearly by subdivision
			return flattenSmoothCubicBezier(points, q0, q1, q2, q3, flatness)
		}
	} else if 1.0 <= t2min {
		// t1 and t2 overlap but past the curve, approximate linearly
		return append(points, p3)
	}

	// t1 and t2 exist and ranges might overlap
	if 0.0 < t2min {
		if t2min < t1max {
			// t2 range starts inside t1 range, approximate t1 range linearly
			_, _, _, _, q0, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t1max)
			points = append(points, q0)
		} else if 0.0 < t1max {
			// no overlap
			_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t1max)
			t2minq := (t2min - t1max) / (1.0 - t1max)
			q0, q1, q2, q3, _, _, _, _ = splitCubicBezier(q0, q1, q2, q3, t2minq)
			points = flattenSmoothCubicBezier(points, q0, q1, q2, q3, flatness)
		} else {
			// no t1, approximate up to t2min linearly by subdivision
			q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t2min)
			points = flattenSmoothCubicBezier(points, q0, q1, q2, q3, flatness)
		}
	}

	// handle (the rest of) t2
	if t2max < 1.0 {
		_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t2max)
		points = append(points, q0)
		return flattenSmoothCubicBezier(points, q0, q1, q2, q3, flatness)
	}
	// t2max extends beyond 1
	return append(points, p3)
}

// flattenArc appends the polyline approximation of the arc segment, excluding the start point.
// The angular step is chosen so that the sagitta of each chord stays within flatness.
func flattenArc(points []Point, seg Segment, flatness float64) []Point {
	if seg.IsZero() {
		return append(points, seg.End)
	}

	params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
	delta := params.Angles.Delta()
	if equal(delta, 0.0) {
		return append(points, seg.End)
	}

	rmax := math.Max(params.Radii.X, params.Radii.Y)
	step := 2.0 * math.Acos(math.Max(-1.0, 1.0-flatness/rmax))
	if step <= 0.0 || math.IsNaN(step) {
		step = math.Pi / 2.0
	}
	n := int(math.Ceil(math.Abs(delta) / step))
	for i := 1; i < n; i++ {
		theta := params.Angles.Start + float64(i)/float64(n)*delta
		points = append(points, ellipsePos(params.Radii.X, params.Radii.Y, params.Rotation, params.Center.X, params.Center.Y, theta))
	}
	return append(points, seg.End)
}

// flattenCurve returns the polyline approximation of the curve within the maximum deviation
// flatness. Closed curves include the wraparound back to the first point.
func flattenCurve(c *Curve, flatness float64) []Point {
	if len(c.Vertices) == 0 {
		return nil
	}
	points := []Point{c.Vertices[0].Point}
	for i := 0; i < c.NumSegments(); i++ {
		seg := c.Segment(i)
		switch seg.kind() {
		case LineKind:
			points = append(points, seg.End)
		case CubicKind:
			points = flattenCubicBezier(points, seg.Start, seg.Command.Control1, seg.Command.Control2, seg.End, flatness)
		case ArcKind:
			points = flattenArc(points, seg, flatness)
		}
	}
	return points
}

// Flatten replaces all curved segments by line segments within the maximum deviation flatness and
// returns the new path.
func (p *Path) Flatten(flatness float64) *Path {
	q := &Path{Curves: make([]*Curve, 0, len(p.Curves))}
	for _, c := range p.Curves {
		points := flattenCurve(c, flatness)
		if len(points) == 0 {
			q.Curves = append(q.Curves, &Curve{Closed: c.Closed})
			continue
		}
		if c.Closed && 1 < len(points) {
			// the wraparound point duplicates the first vertex
			points = points[:len(points)-1]
		}
		vertices := make([]Vertex, len(points))
		for i, pt := range points {
			vertices[i] = LineVertex(pt)
		}
		q.Curves = append(q.Curves, &Curve{Vertices: vertices, Closed: c.Closed})
	}
	return q
}

// Polylines returns the flattened representation of the path as point slices, one per curve, the
// interchange format for planar boolean/offset and rasterizer collaborators.
func (p *Path) Polylines(flatness float64) [][]Point {
	polys := make([][]Point, 0, len(p.Curves))
	for _, c := range p.Curves {
		if points := flattenCurve(c, flatness); 0 < len(points) {
			polys = append(polys, points)
		}
	}
	return polys
}

func toF32Vec(p Point) f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

func toP26_6(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toI26_6(p.X), Y: toI26_6(p.Y)}
}

func toI26_6(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}

// PolylinesF32 returns the flattened path in single precision for GPU renderer collaborators.
func (p *Path) PolylinesF32(flatness float64) [][]f32.Vec2 {
	polys := p.Polylines(flatness)
	out := make([][]f32.Vec2, len(polys))
	for i, poly := range polys {
		out[i] = make([]f32.Vec2, len(poly))
		for j, pt := range poly {
			out[i][j] = toF32Vec(pt)
		}
	}
	return out
}

// Polylines26_6 returns the flattened path in 26.6 fixed point for rasterizer collaborators.
func (p *Path) Polylines26_6(flatness float64) [][]fixed.Point26_6 {
	polys := p.Polylines(flatness)
	out := make([][]fixed.Point26_6, len(polys))
	for i, poly := range polys {
		out[i] = make([]fixed.Point26_6, len(poly))
		for j, pt := range poly {
			out[i][j] = toP26_6(pt)
		}
	}
	return out
}
