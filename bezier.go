package paths

import "math"

// cubicBezierPos evaluates the cubic Bézier at parameter t.
func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul((1.0 - t) * (1.0 - t) * (1.0 - t))
	p1 = p1.Mul(3.0 * t * (1.0 - t) * (1.0 - t))
	p2 = p2.Mul(3.0 * t * t * (1.0 - t))
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// cubicBezierDeriv evaluates the derivative of the cubic Bézier at parameter t.
func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	q0 := p1.Sub(p0).Mul(3.0 * (1.0 - t) * (1.0 - t))
	q1 := p2.Sub(p1).Mul(6.0 * (1.0 - t) * t)
	q2 := p3.Sub(p2).Mul(3.0 * t * t)
	return q0.Add(q1).Add(q2)
}

// cubicBezierPartialLength returns the arclength of the cubic Bézier over [0,t] using
// Gauss-Legendre quadrature.
func cubicBezierPartialLength(p0, p1, p2, p3 Point, t float64) float64 {
	speed := func(u float64) float64 {
		return cubicBezierDeriv(p0, p1, p2, p3, u).Length()
	}
	return gaussLegendre5(speed, 0.0, t)
}

// cubicBezierLength returns the total arclength of the cubic Bézier.
func cubicBezierLength(p0, p1, p2, p3 Point) float64 {
	return cubicBezierPartialLength(p0, p1, p2, p3, 1.0)
}

// cubicBezierTimeAt inverts the arclength parameterization: it returns the parameter t in [0,1] at
// which the partial length is the fraction u of the total length, by bisection.
func cubicBezierTimeAt(p0, p1, p2, p3 Point, u float64) float64 {
	total := cubicBezierLength(p0, p1, p2, p3)
	if equal(total, 0.0) {
		return 0.0
	}
	target := u * total
	lo, hi := 0.0, 1.0
	for i := 0; i < 16; i++ {
		mid := 0.5 * (lo + hi)
		if cubicBezierPartialLength(p0, p1, p2, p3, mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// cubicBezierBounds returns the bounding rectangle of the cubic Bézier, found by solving for the
// roots of the derivative polynomial per axis and including the positions at the in-range roots.
func cubicBezierBounds(p0, p1, p2, p3 Point) Rect {
	r := RectFromPoints(p0, p3)

	// B'(t) per axis is a quadratic a*t^2 + b*t + c
	ax := 3.0 * (-p0.X + 3.0*p1.X - 3.0*p2.X + p3.X)
	bx := 6.0 * (p0.X - 2.0*p1.X + p2.X)
	cx := 3.0 * (p1.X - p0.X)
	ay := 3.0 * (-p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y)
	by := 6.0 * (p0.Y - 2.0*p1.Y + p2.Y)
	cy := 3.0 * (p1.Y - p0.Y)

	t1, t2 := solveQuadraticFormula(ax, bx, cx)
	t3, t4 := solveQuadraticFormula(ay, by, cy)
	for _, t := range []float64{t1, t2, t3, t4} {
		if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
			r = r.AddPoint(cubicBezierPos(p0, p1, p2, p3, t))
		}
	}
	return r
}

// splitCubicBezier splits the cubic Bézier at parameter t using De Casteljau's algorithm, returning
// the control points of both halves.
func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}
