package paths

import "math"

// Curve is an ordered chain of vertices defining a sequence of segments, optionally closed. The
// first vertex is the start anchor; for closed curves the closing segment runs from the last
// vertex back to the first using the first vertex's command. A curve with fewer than two vertices
// has no segments.
type Curve struct {
	Vertices []Vertex
	Closed   bool
}

// NumSegments returns the number of segments of the curve.
func (c *Curve) NumSegments() int {
	if len(c.Vertices) < 2 {
		return 0
	}
	if c.Closed {
		return len(c.Vertices)
	}
	return len(c.Vertices) - 1
}

// Segment materializes the i'th segment from its adjacent vertices, the last segment of a closed
// curve being the wraparound from the last vertex to the first.
func (c *Curve) Segment(i int) Segment {
	if i == len(c.Vertices)-1 && c.Closed {
		return Segment{c.Vertices[i].Point, c.Vertices[0].Point, c.Vertices[0].Command}
	}
	return Segment{c.Vertices[i].Point, c.Vertices[i+1].Point, c.Vertices[i+1].Command}
}

// Segments materializes all segments of the curve.
func (c *Curve) Segments() []Segment {
	segs := make([]Segment, c.NumSegments())
	for i := range segs {
		segs[i] = c.Segment(i)
	}
	return segs
}

// Length returns the arclength of the curve, the sum over its segments. Degenerate segments
// contribute zero.
func (c *Curve) Length() float64 {
	length := 0.0
	for i := 0; i < c.NumSegments(); i++ {
		length += c.Segment(i).Length()
	}
	return length
}

// Bounds returns the bounding rectangle of the curve.
func (c *Curve) Bounds() Rect {
	if len(c.Vertices) == 0 {
		return Rect{}
	}
	r := RectFromPoints(c.Vertices[0].Point)
	for i := 0; i < c.NumSegments(); i++ {
		r = r.Union(c.Segment(i).Bounds())
	}
	return r
}

// resolve maps a curve-level location to a segment index and a segment-local location. Unit and
// offset locations address the curve's total arclength; time spreads uniformly over the segments.
func (c *Curve) resolve(loc Location) (int, Location) {
	n := c.NumSegments()
	if n == 0 {
		return -1, loc
	}

	switch loc.Kind {
	case TimeKind:
		t := clamp(loc.Value) * float64(n)
		i := int(t)
		if i == n {
			i = n - 1
		}
		return i, Time(t - float64(i))
	case UnitKind, OffsetKind:
		target := loc.Value
		if loc.Kind == UnitKind {
			target = clamp(target) * c.Length()
		}
		if target < 0.0 {
			target = 0.0
		}
		for i := 0; i < n; i++ {
			length := c.Segment(i).Length()
			if target <= length || i == n-1 {
				return i, Offset(target)
			}
			target -= length
		}
	}
	return n - 1, Offset(c.Segment(n - 1).Length())
}

// Pos returns the position along the curve at the given location.
func (c *Curve) Pos(loc Location) Point {
	i, sloc := c.resolve(loc)
	if i < 0 {
		if len(c.Vertices) == 1 {
			return c.Vertices[0].Point
		}
		return Point{}
	}
	return c.Segment(i).Pos(sloc)
}

// Tangent returns the unit tangent along the curve at the given location.
func (c *Curve) Tangent(loc Location) Point {
	i, sloc := c.resolve(loc)
	if i < 0 {
		return Point{}
	}
	return c.Segment(i).Tangent(sloc)
}

// Normal returns the unit normal along the curve at the given location.
func (c *Curve) Normal(loc Location) Point {
	i, sloc := c.resolve(loc)
	if i < 0 {
		return Point{}
	}
	return c.Segment(i).Normal(sloc)
}

// Orientation returns the affine frame along the curve at the given location.
func (c *Curve) Orientation(loc Location) Matrix {
	i, sloc := c.resolve(loc)
	if i < 0 {
		return Identity
	}
	return c.Segment(i).Orientation(sloc)
}

// Transform applies an affine transformation and returns the new curve.
func (c *Curve) Transform(m Matrix) *Curve {
	if len(c.Vertices) == 0 {
		return &Curve{Closed: c.Closed}
	}

	vertices := make([]Vertex, len(c.Vertices))
	vertices[0] = Vertex{m.Dot(c.Vertices[0].Point), c.Vertices[0].Command}
	for i := 0; i < c.NumSegments(); i++ {
		seg := c.Segment(i).Transform(m)
		if i == len(c.Vertices)-1 && c.Closed {
			vertices[0].Command = seg.Command
		} else {
			vertices[i+1] = Vertex{seg.End, seg.Command}
		}
	}
	return &Curve{Vertices: vertices, Closed: c.Closed}
}

// Subdivide splits every segment at its arclength midpoint and returns the new curve.
func (c *Curve) Subdivide() *Curve {
	if len(c.Vertices) < 2 {
		return &Curve{Vertices: append([]Vertex{}, c.Vertices...), Closed: c.Closed}
	}

	vertices := make([]Vertex, 0, 2*len(c.Vertices))
	vertices = append(vertices, c.Vertices[0])
	for i := 0; i < c.NumSegments(); i++ {
		first, second := c.Segment(i).Split(Unit(0.5))
		vertices = append(vertices, Vertex{first.End, first.Command})
		if i == len(c.Vertices)-1 && c.Closed {
			vertices[0].Command = second.Command
		} else {
			vertices = append(vertices, Vertex{second.End, second.Command})
		}
	}
	return &Curve{Vertices: vertices, Closed: c.Closed}
}

// Distort maps the curve through an arbitrary point mapping. Arc segments have no closed form
// under non-affine maps and are first replaced by their cubic Bézier approximations, after which
// all anchor and control points are mapped.
func (c *Curve) Distort(f func(Point) Point) *Curve {
	arcless := c.arcsToCubes(math.Pi / 2.0)
	vertices := make([]Vertex, len(arcless.Vertices))
	for i, v := range arcless.Vertices {
		cmd := v.Command
		if cmd.Kind == CubicKind {
			cmd = CubicCommand(f(cmd.Control1), f(cmd.Control2))
		}
		vertices[i] = Vertex{f(v.Point), cmd}
	}
	return &Curve{Vertices: vertices, Closed: arcless.Closed}
}

// arcsToCubes returns the curve with every arc segment replaced by its cubic approximation.
func (c *Curve) arcsToCubes(maxAngleStep float64) *Curve {
	if len(c.Vertices) < 2 {
		return &Curve{Vertices: append([]Vertex{}, c.Vertices...), Closed: c.Closed}
	}

	vertices := make([]Vertex, 0, len(c.Vertices))
	vertices = append(vertices, c.Vertices[0])
	closing := c.Vertices[0].Command
	for i := 0; i < c.NumSegments(); i++ {
		seg := c.Segment(i)
		expanded := []Vertex{{seg.End, seg.Command}}
		if seg.kind() == ArcKind {
			expanded = arcToCube(seg, maxAngleStep)
		}
		if i == len(c.Vertices)-1 && c.Closed {
			vertices = append(vertices, expanded[:len(expanded)-1]...)
			closing = expanded[len(expanded)-1].Command
		} else {
			vertices = append(vertices, expanded...)
		}
	}
	curve := &Curve{Vertices: vertices, Closed: c.Closed}
	if c.Closed {
		curve.Vertices[0].Command = closing
	}
	return curve
}

// Equals returns true if the curves have the same vertices and closedness with tolerance Epsilon.
func (c *Curve) Equals(o *Curve) bool {
	if c.Closed != o.Closed || len(c.Vertices) != len(o.Vertices) {
		return false
	}
	for i, v := range c.Vertices {
		if !v.Equals(o.Vertices[i]) {
			return false
		}
	}
	return true
}
