package paths

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathBuilder(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(10.0, 0.0).LineTo(20.0, 0.0).CubeTo(25.0, 10.0, 30.0, 10.0, 35.0, 0.0)
	test.That(t, !p.Empty())
	test.T(t, len(p.Curves), 1)
	test.T(t, p.Curves[0].NumSegments(), 2)
	test.T(t, p.Pos(), Point{35.0, 0.0})

	// drawing after a close implicitly starts a new curve at the current position
	p = (&Path{}).MoveTo(0.0, 0.0).LineTo(10.0, 0.0).Close()
	p.LineTo(5.0, 5.0)
	test.T(t, len(p.Curves), 2)
	test.T(t, p.Curves[1].Vertices[0].Point, Point{0.0, 0.0})

	// a line without a preceding move starts at the origin
	p = (&Path{}).LineTo(5.0, 5.0)
	test.T(t, p.Curves[0].Vertices[0].Point, Point{0.0, 0.0})

	// arcs with a zero radius degenerate to lines
	p = (&Path{}).MoveTo(0.0, 0.0).ArcTo(0.0, 5.0, 0.0, false, true, 10.0, 0.0)
	test.T(t, p.Curves[0].Vertices[1].Command.Kind, LineKind)
	test.Float(t, p.Length(), 10.0)
}

func TestPathClose(t *testing.T) {
	p := (&Path{}).MoveTo(0.0, 0.0).LineTo(10.0, 0.0).LineTo(10.0, 10.0).Close()
	test.That(t, p.Curves[0].Closed)
	test.T(t, p.Curves[0].NumSegments(), 3)

	// a trailing segment ending on the start point becomes the closing segment
	p = (&Path{}).MoveTo(0.0, 0.0).LineTo(10.0, 0.0).ArcTo(5.0, 5.0, 0.0, false, false, 0.0, 0.0).Close()
	test.T(t, len(p.Curves[0].Vertices), 2)
	test.T(t, p.Curves[0].Vertices[0].Command.Kind, ArcKind)
	test.T(t, p.Curves[0].NumSegments(), 2)

	// closing twice or closing an empty path is a no-op
	p.Close()
	test.T(t, p.Curves[0].NumSegments(), 2)
	(&Path{}).Close()
}

func TestPathParse(t *testing.T) {
	p, err := ParseSVGPath("M10 0L20 0")
	test.Error(t, err)
	test.That(t, p.Equals((&Path{}).MoveTo(10.0, 0.0).LineTo(20.0, 0.0)))

	// relative commands, horizontal and vertical lines
	p = MustParseSVGPath("m10 10l5 0h5v5z")
	q := (&Path{}).MoveTo(10.0, 10.0).LineTo(15.0, 10.0).LineTo(20.0, 10.0).LineTo(20.0, 15.0).Close()
	test.That(t, p.Equals(q))

	// extra coordinate pairs after a move are implicit lines
	p = MustParseSVGPath("M0 0 10 10 20 0")
	q = (&Path{}).MoveTo(0.0, 0.0).LineTo(10.0, 10.0).LineTo(20.0, 0.0)
	test.That(t, p.Equals(q))

	// repeated commands without a letter
	p = MustParseSVGPath("M0 0L10 0 10 10")
	q = (&Path{}).MoveTo(0.0, 0.0).LineTo(10.0, 0.0).LineTo(10.0, 10.0)
	test.That(t, p.Equals(q))

	// arc flags
	p = MustParseSVGPath("M0 0A10 10 0 1 0 20 0")
	cmd := p.Curves[0].Vertices[1].Command
	test.T(t, cmd.Kind, ArcKind)
	test.That(t, cmd.Large && !cmd.Sweep)
}

func TestPathQuad(t *testing.T) {
	// degree elevation keeps the end points and the tangent directions at both ends
	p := (&Path{}).MoveTo(0.0, 0.0).QuadTo(50.0, 100.0, 100.0, 0.0)
	seg := p.Curves[0].Segment(0)
	test.T(t, seg.Command.Kind, CubicKind)
	test.That(t, seg.Command.Control1.Equals(Point{100.0 / 3.0, 200.0 / 3.0}))
	test.That(t, seg.Command.Control2.Equals(Point{100.0 - 100.0/3.0, 200.0 / 3.0}))
	test.That(t, seg.Tangent(Time(0.0)).Equals(Point{50.0, 100.0}.Norm(1.0)))
	test.That(t, seg.Tangent(Time(1.0)).Equals(Point{50.0, -100.0}.Norm(1.0)))
}

func TestPathParseSmooth(t *testing.T) {
	// the smooth cubic control point reflects the previous one
	p := MustParseSVGPath("M0 0C0 10 10 10 10 0S20 -10 20 0")
	test.That(t, p.Curves[0].Vertices[2].Command.Control1.Equals(Point{10.0, -10.0}))

	// without a preceding cubic the control point collapses onto the current point
	p = MustParseSVGPath("M0 0S10 10 10 0")
	test.That(t, p.Curves[0].Vertices[1].Command.Control1.Equals(Point{0.0, 0.0}))

	// smooth quadratic
	p = MustParseSVGPath("M0 0Q5 10 10 0T20 0")
	test.That(t, p.Curves[0].Vertices[2].Command.Control1.Equals(Point{10.0, 0.0}.Interpolate(Point{15.0, -10.0}, 2.0/3.0)))
}

func TestPathParseErrors(t *testing.T) {
	var tts = []string{
		"M10",
		"X5 5",
		"M0 0L10",
		"M0 0A10 10 0 1",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			if _, err := ParseSVGPath(tt); err == nil {
				test.Fail(t, "must give error")
			}
		})
	}
}

func TestPathString(t *testing.T) {
	var tts = []string{
		"M10 0L20 0",
		"M10 0L20 0C25 10 30 10 35 0",
		"M0 0L10 0L10 10z",
		"M0 0A10 10 0 1 0 20 0",
		"M10 0A5 5 0 0 1 20 0A5 5 0 0 1 10 0z",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			p := MustParseSVGPath(tt)
			test.That(t, p.Equals(MustParseSVGPath(p.String())), "string is", p.String())
		})
	}
}

func TestPathLength(t *testing.T) {
	var tts = []struct {
		p      string
		length float64
	}{
		{"M0 0L10 0", 10.0},
		{"M0 0L10 0L10 10z", 10.0 + 10.0 + math.Sqrt(200.0)},
		{"M0 0C0 66.67 100 66.67 100 0", 158.5824},
		{"M0 0Q50 66.67 100 0", 124.5313},
		{"M0 0A10 10 0 0 0 20 0", 31.41593},
		{"M0 0A10 20 0 0 0 20 0", 48.44224},
		{"M0 0A10 20 0 1 1 20 0", 48.44224},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			length := MustParseSVGPath(tt.p).Length()
			if math.Abs(tt.length-length) > 0.01*tt.length {
				test.Fail(t, length, "!=", tt.length, "±1%")
			}
		})
	}
}

func TestPathBounds(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10zM20 20L25 25")
	test.T(t, p.Bounds(), Rect{0.0, 0.0, 25.0, 25.0})
	test.T(t, (&Path{}).Bounds(), Rect{})
}

func TestPathAppend(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0")
	q := MustParseSVGPath("M20 0L30 0")
	r := p.Append(q)
	test.T(t, len(r.Curves), 2)
	test.That(t, r.Equals(MustParseSVGPath("M0 0L10 0M20 0L30 0")))
	test.That(t, p.Append(nil).Equals(p))
}

func TestPathTransform(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10z")
	test.That(t, p.Translate(5.0, 5.0).Equals(MustParseSVGPath("M5 5L15 5L15 15z")))
	test.That(t, p.Scale(2.0, 2.0).Equals(MustParseSVGPath("M0 0L20 0L20 20z")))

	rotated := MustParseSVGPath("M0 0L10 0").Rotate(90.0)
	test.That(t, rotated.Pos().Equals(Point{0.0, 10.0}))
}

func TestPathSubdivide(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10z").Subdivide()
	test.T(t, p.Curves[0].NumSegments(), 6)
	if length := p.Length() - (20.0 + math.Sqrt(200.0)); 1e-6 < math.Abs(length) {
		test.Fail(t, "length differs by", length)
	}
}
