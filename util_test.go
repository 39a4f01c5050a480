package paths

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	test.Float(t, angleNorm(0.0), 0.0)
	test.Float(t, angleNorm(1.0), 1.0)
	test.Float(t, angleNorm(2.0*math.Pi), 0.0)
	test.Float(t, angleNorm(-1.0), 2.0*math.Pi-1.0)
	test.Float(t, angleNorm(3.0*math.Pi), math.Pi)
}

func TestAngleBetween(t *testing.T) {
	var tts = []struct {
		theta, lower, upper float64
		between             bool
	}{
		{1.0, 0.0, 2.0, true},
		{0.0, 0.0, 2.0, false}, // exclusive end points
		{2.0, 0.0, 2.0, false},
		{1.0, 2.0, 0.0, true}, // negative sweep
		{3.0, 0.0, 2.0, false},
		{0.0, -1.0, 1.0, true},
		{2.0 * math.Pi, -1.0, 1.0, true},
		{0.5, 2.0 * math.Pi, 2.0*math.Pi + 2.0, true},
		{-math.Pi, 0.75 * math.Pi, 1.25 * math.Pi, true},
	}
	for _, tt := range tts {
		test.That(t, angleBetween(tt.theta, tt.lower, tt.upper) == tt.between, "angleBetween", tt.theta, tt.lower, tt.upper)
	}
}

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.Float(t, p.Length(), 5.0)
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, p.Neg(), Point{-3.0, -4.0})
	test.T(t, p.Rot90CCW(), Point{-4.0, 3.0})
	test.T(t, p.Rot90CW(), Point{4.0, -3.0})
	test.Float(t, p.Dot(Point{4.0, -3.0}), 0.0)
	test.Float(t, Point{1.0, 0.0}.AngleBetween(Point{0.0, 1.0}), math.Pi/2.0)
	test.T(t, p.Norm(10.0), Point{6.0, 8.0})
	test.T(t, Point{}.Norm(1.0), Point{})
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{10.0, 20.0}, 0.25), Point{2.5, 5.0})
}

func TestRect(t *testing.T) {
	r := RectFromPoints(Point{1.0, 2.0})
	test.T(t, r, Rect{1.0, 2.0, 0.0, 0.0})

	r = r.AddPoint(Point{-1.0, 5.0})
	test.T(t, r, Rect{-1.0, 2.0, 2.0, 3.0})

	// point rectangles extend unions instead of disappearing
	q := Rect{10.0, 10.0, 0.0, 0.0}
	test.T(t, r.Union(q), Rect{-1.0, 2.0, 11.0, 8.0})

	test.T(t, Rect{0.0, 0.0, 1.0, 1.0}.Move(Point{2.0, 3.0}), Rect{2.0, 3.0, 1.0, 1.0})
}

func TestMatrix(t *testing.T) {
	test.T(t, Identity.Translate(3.0, 4.0).Dot(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.That(t, Identity.Rotate(90.0).Dot(Point{1.0, 0.0}).Equals(Point{0.0, 1.0}))
	test.T(t, Identity.Scale(2.0, 3.0).Dot(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.That(t, Identity.ReflectY().Dot(Point{1.0, 1.0}).Equals(Point{1.0, -1.0}))

	m := Identity.Translate(1.0, 2.0).Rotate(30.0).Scale(2.0, 3.0)
	p := Point{3.0, -7.0}
	test.That(t, m.Inv().Dot(m.Dot(p)).Equals(p))
	test.Float(t, m.Det(), 6.0)
	test.Float(t, Identity.ReflectX().Det(), -1.0)
}

func TestMatrixEigen(t *testing.T) {
	// the lowest eigenvalue comes first, also on the diagonal fast path
	lambda1, lambda2, v1, v2 := Matrix{{4.0, 0.0, 0.0}, {0.0, 1.0, 0.0}}.Eigen()
	test.Float(t, lambda1, 1.0)
	test.Float(t, lambda2, 4.0)
	test.T(t, v1, Point{0.0, 1.0})
	test.T(t, v2, Point{1.0, 0.0})

	lambda1, lambda2, v1, v2 = Matrix{{2.0, 1.0, 0.0}, {1.0, 2.0, 0.0}}.Eigen()
	test.Float(t, lambda1, 1.0)
	test.Float(t, lambda2, 3.0)
	test.That(t, v1.Norm(1.0).Equals(Point{1.0, -1.0}.Norm(1.0)) || v1.Norm(1.0).Equals(Point{-1.0, 1.0}.Norm(1.0)))
	test.That(t, v2.Norm(1.0).Equals(Point{1.0, 1.0}.Norm(1.0)) || v2.Norm(1.0).Equals(Point{-1.0, -1.0}.Norm(1.0)))
}

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(1.0, -3.0, 2.0)
	test.Float(t, x1, 1.0)
	test.Float(t, x2, 2.0)

	x1, x2 = solveQuadraticFormula(0.0, 2.0, -4.0)
	test.Float(t, x1, 2.0)
	test.That(t, math.IsNaN(x2))

	x1, x2 = solveQuadraticFormula(1.0, 0.0, 1.0)
	test.That(t, math.IsNaN(x1) && math.IsNaN(x2))

	x1, x2 = solveQuadraticFormula(1.0, -2.0, 1.0)
	test.Float(t, x1, 1.0)
	test.That(t, math.IsNaN(x2))
}

func TestGaussLegendre(t *testing.T) {
	// n=5 quadrature is not exact for these integrands, compare within its own accuracy
	test.FloatDiff(t, gaussLegendre5(math.Log, 0.0, 1.0), -0.9790015665942131, 1e-10)
	test.FloatDiff(t, gaussLegendre5(math.Cos, 0.0, math.Pi/2.0), 1.0, 1e-6)
}
