package paths

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestCubicBezierPos(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0}
	test.T(t, cubicBezierPos(p0, p1, p2, p3, 0.0), p0)
	test.T(t, cubicBezierPos(p0, p1, p2, p3, 1.0), p3)
	test.That(t, cubicBezierPos(p0, p1, p2, p3, 0.5).Equals(Point{5.0, 7.5}))
}

func TestCubicBezierDeriv(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0}
	test.That(t, cubicBezierDeriv(p0, p1, p2, p3, 0.0).Equals(Point{0.0, 30.0}))
	test.That(t, cubicBezierDeriv(p0, p1, p2, p3, 1.0).Equals(Point{0.0, -30.0}))
	test.That(t, cubicBezierDeriv(p0, p1, p2, p3, 0.5).Equals(Point{15.0, 0.0}))
}

func TestCubicBezierLength(t *testing.T) {
	// control points at thirds make the parameterization uniform
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{100.0 / 3.0, 0.0}, Point{200.0 / 3.0, 0.0}, Point{100.0, 0.0}
	if length := cubicBezierLength(p0, p1, p2, p3); 1e-3 < math.Abs(length-100.0) {
		test.Fail(t, "length is", length)
	}
	if length := cubicBezierPartialLength(p0, p1, p2, p3, 0.25); 1e-3 < math.Abs(length-25.0) {
		test.Fail(t, "partial length is", length)
	}
}

func TestCubicBezierTimeAt(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{100.0 / 3.0, 0.0}, Point{200.0 / 3.0, 0.0}, Point{100.0, 0.0}
	for _, u := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		tt := cubicBezierTimeAt(p0, p1, p2, p3, u)
		if 1e-4 < math.Abs(tt-u) {
			test.Fail(t, "time at", u, "is", tt)
		}
	}
}

func TestCubicBezierBounds(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 200.0 / 3.0}, Point{100.0, 200.0 / 3.0}, Point{100.0, 0.0}
	r := cubicBezierBounds(p0, p1, p2, p3)
	test.That(t, r.Equals(Rect{0.0, 0.0, 100.0, 50.0}))

	// extrema inside the parameter range extend the bounds beyond the anchors
	p0, p1, p2, p3 = Point{0.0, 0.0}, Point{-10.0, 0.0}, Point{110.0, 0.0}, Point{100.0, 0.0}
	r = cubicBezierBounds(p0, p1, p2, p3)
	test.That(t, r.X < 0.0 && 100.0 < r.X+r.W)
}

func TestCubicBezierSplit(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)
	test.T(t, q0, p0)
	test.T(t, r3, p3)
	test.That(t, q3.Equals(r0))
	test.That(t, q3.Equals(cubicBezierPos(p0, p1, p2, p3, 0.5)))

	// both halves reproduce the original curve
	test.That(t, cubicBezierPos(q0, q1, q2, q3, 0.5).Equals(cubicBezierPos(p0, p1, p2, p3, 0.25)))
	test.That(t, cubicBezierPos(r0, r1, r2, r3, 0.5).Equals(cubicBezierPos(p0, p1, p2, p3, 0.75)))
}
