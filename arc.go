package paths

import "math"

// AngleRange is an angular span in radians. Start is the normalized start angle and End is
// Start plus the signed delta; a positive delta sweeps in the positive-angle direction, matching
// an SVG sweep flag of true.
type AngleRange struct {
	Start, End float64
}

// Delta returns the signed angular extent of the range.
func (r AngleRange) Delta() float64 {
	return r.End - r.Start
}

// Sweep returns true when the range sweeps in the positive-angle direction.
func (r AngleRange) Sweep() bool {
	return 0.0 < r.Delta()
}

// Contains returns true when a periodic angular parameter passes through theta while sweeping
// monotonically from Start to End, excluding the end points themselves.
func (r AngleRange) Contains(theta float64) bool {
	return angleBetween(theta, r.Start, r.End)
}

// CenterParams is the center parameterization of an elliptical arc: center, (corrected) radii, the
// angular span, and the x-axis rotation in radians. Sweep is Angles.Sweep(), kept as a field since
// renderers consume this record directly; its field names and the positive-delta convention are a
// wire contract.
type CenterParams struct {
	Center   Point
	Radii    Point
	Angles   AngleRange
	Rotation float64 // x-axis rotation in radians
	Sweep    bool
}

// arcToCenter converts an elliptical arc from the SVG endpoint form (start, radii, rotation in
// degrees, large-arc and sweep flags, end) to the center parameterization.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(start Point, radii Point, rotation float64, large, sweep bool, end Point) CenterParams {
	phi := rotation * math.Pi / 180.0
	if start.Equals(end) {
		// zero-length arc, the parameterization formulas divide by near-zero terms here
		return CenterParams{Center: start, Radii: radii, Rotation: phi}
	}

	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if !(0.0 < rx) || !(0.0 < ry) {
		// a zero radius cannot be corrected upward, the arc degenerates to its chord
		return CenterParams{Center: start.Interpolate(end, 0.5), Radii: Point{rx, ry}, Rotation: phi}
	}
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(start.X-end.X)/2.0 + sinphi*(start.Y-end.Y)/2.0
	y1p := -sinphi*(start.X-end.X)/2.0 + cosphi*(start.Y-end.Y)/2.0

	// correct radii upward when the chord does not fit the requested ellipse
	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if 1.0 < radiiCheck {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (start.X+end.X)/2.0
	cy := sinphi*cxp + cosphi*cyp + (start.Y+end.Y)/2.0

	// unit vectors from center to start and end in the unrotated frame
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}

	// the sweep flag requests the positive-angle direction
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return CenterParams{
		Center:   Point{cx, cy},
		Radii:    Point{rx, ry},
		Angles:   AngleRange{theta, theta + delta},
		Rotation: phi,
		Sweep:    0.0 < delta,
	}
}

// ellipsePos returns the position on the ellipse with radii rx,ry rotated by phi around center
// cx,cy at parametric angle theta.
func ellipsePos(rx, ry, phi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

// ellipseDeriv returns the derivative of ellipsePos with respect to theta. With sweep false the
// arc is traversed along a negative angle and the direction is reversed.
func ellipseDeriv(rx, ry, phi float64, sweep bool, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	if !sweep {
		return Point{-dx, -dy}
	}
	return Point{dx, dy}
}

// ellipseLength returns the arclength of the ellipse with radii rx,ry between parametric angles
// theta1 and theta2. Circular arcs are exact; elliptical arcs integrate the arclength element
// with the midpoint rule at a fixed angular step.
func ellipseLength(rx, ry, theta1, theta2 float64) float64 {
	if theta2 < theta1 {
		theta1, theta2 = theta2, theta1
	}
	if equal(rx, ry) {
		return math.Abs(rx) * (theta2 - theta1)
	}

	const angleStep = 0.25 // rad
	n := int(math.Ceil((theta2 - theta1) / angleStep))
	if n == 0 {
		return 0.0
	}
	h := (theta2 - theta1) / float64(n)
	length := 0.0
	for i := 0; i < n; i++ {
		theta := theta1 + (float64(i)+0.5)*h
		length += math.Hypot(rx*math.Sin(theta), ry*math.Cos(theta))
	}
	return length * h
}

// arcTimeAt inverts the arclength parameterization of the arc: it returns the time in [0,1] at
// which the traversed arclength is the fraction u of the total. Circular arcs have uniform speed
// in the angle so unit fraction equals time; elliptical arcs are inverted by bisection.
func arcTimeAt(params CenterParams, u float64) float64 {
	delta := params.Angles.Delta()
	if equal(delta, 0.0) {
		return 0.0
	}
	rx, ry := params.Radii.X, params.Radii.Y
	if equal(rx, ry) {
		return u
	}

	total := ellipseLength(rx, ry, params.Angles.Start, params.Angles.End)
	if equal(total, 0.0) {
		return 0.0
	}
	target := u * total
	lo, hi := 0.0, 1.0
	for i := 0; i < 16; i++ {
		mid := 0.5 * (lo + hi)
		if ellipseLength(rx, ry, params.Angles.Start, params.Angles.Start+mid*delta) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// arcBounds returns the bounding rectangle of an arc segment. The ellipse attains its axis extrema
// at four candidate angles; each is included only when the arc's angular span actually passes
// through it, otherwise the end points bound that axis.
func arcBounds(seg Segment) Rect {
	if seg.IsZero() {
		return RectFromPoints(seg.Start)
	}

	params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
	rx, ry := params.Radii.X, params.Radii.Y
	phi := params.Rotation
	r := RectFromPoints(seg.Start, seg.End)

	thetaX := math.Atan2(-ry*math.Sin(phi), rx*math.Cos(phi))
	thetaY := math.Atan2(ry*math.Cos(phi), rx*math.Sin(phi))
	for _, theta := range []float64{thetaX, thetaX + math.Pi, thetaY, thetaY + math.Pi} {
		if params.Angles.Contains(theta) {
			r = r.AddPoint(ellipsePos(rx, ry, phi, params.Center.X, params.Center.Y, theta))
		}
	}
	return r
}

// arcToCube approximates an arc segment by a chain of cubic Bézier vertices. The span is divided
// into equal angular steps of at most maxAngleStep; each step maps the unit-circle approximation
// with handle length 4/3*tan(step/4) through the ellipse's affine transform. A maxAngleStep of
// zero selects quarter-circle steps, the accuracy floor for a single cubic.
func arcToCube(seg Segment, maxAngleStep float64) []Vertex {
	if maxAngleStep <= 0.0 {
		maxAngleStep = math.Pi / 2.0
	}
	if seg.IsZero() {
		return []Vertex{LineVertex(seg.End)}
	}

	params := arcToCenter(seg.Start, seg.Command.Radii, seg.Command.Rotation, seg.Command.Large, seg.Command.Sweep, seg.End)
	delta := params.Angles.Delta()
	if equal(delta, 0.0) {
		return []Vertex{LineVertex(seg.End)}
	}
	rx, ry := params.Radii.X, params.Radii.Y
	phi := params.Rotation
	cx, cy := params.Center.X, params.Center.Y

	n := int(math.Ceil(math.Abs(delta) / maxAngleStep))
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4.0) // signed along the sweep direction

	vertices := make([]Vertex, 0, n)
	theta0 := params.Angles.Start
	pos0 := ellipsePos(rx, ry, phi, cx, cy, theta0)
	for i := 0; i < n; i++ {
		theta1 := theta0 + step
		pos1 := ellipsePos(rx, ry, phi, cx, cy, theta1)
		if i == n-1 {
			pos1 = seg.End // avoid drift on the final vertex
		}
		control1 := pos0.Add(ellipseDeriv(rx, ry, phi, true, theta0).Mul(k))
		control2 := pos1.Sub(ellipseDeriv(rx, ry, phi, true, theta1).Mul(k))
		vertices = append(vertices, CubicVertex(control1, control2, pos1))
		theta0, pos0 = theta1, pos1
	}
	return vertices
}

// transformArc applies an affine transformation to an arc segment while preserving its ellipse
// structure. The ellipse is the image of the unit circle under A = L·R(phi)·S(rx,ry); composing
// with the matrix's linear part L' gives the conic Q = A·Aᵀ whose eigenvalues are the squared new
// radii and whose eigenvectors give the new rotation. Orientation-reversing transforms flip the
// sweep flag.
func transformArc(seg Segment, m Matrix) Segment {
	cmd := seg.Command
	rx, ry := math.Abs(cmd.Radii.X), math.Abs(cmd.Radii.Y)
	phi := cmd.Rotation * math.Pi / 180.0
	sinphi, cosphi := math.Sincos(phi)

	a := m[0][0]*cosphi*rx + m[0][1]*sinphi*rx
	b := -m[0][0]*sinphi*ry + m[0][1]*cosphi*ry
	c := m[1][0]*cosphi*rx + m[1][1]*sinphi*rx
	d := -m[1][0]*sinphi*ry + m[1][1]*cosphi*ry

	// Q = A·Aᵀ is symmetric positive semi-definite
	q := Matrix{
		{a*a + b*b, a*c + b*d, 0.0},
		{a*c + b*d, c*c + d*d, 0.0},
	}
	lambda1, lambda2, v1, v2 := q.Eigen()
	major, minor, axis := lambda2, lambda1, v2
	if lambda2 < lambda1 {
		major, minor, axis = lambda1, lambda2, v1
	}

	nrx := math.Sqrt(math.Max(0.0, major))
	nry := math.Sqrt(math.Max(0.0, minor))
	nphi := 0.0
	if !equal(major, minor) {
		nphi = axis.Angle()
	}

	sweep := cmd.Sweep
	if m.Det() < 0.0 {
		sweep = !sweep
	}
	return Segment{
		Start:   m.Dot(seg.Start),
		End:     m.Dot(seg.End),
		Command: ArcCommand(Point{nrx, nry}, nphi*180.0/math.Pi, cmd.Large, sweep),
	}
}
