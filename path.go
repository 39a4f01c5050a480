package paths

// Path is a collection of independent curves. Curves may overlap, nest, or be disjoint;
// compound-path semantics such as boolean operations are owned by a planar boolean/offset
// collaborator consuming the flattened representation.
type Path struct {
	Curves []*Curve
}

// Empty returns true if the path contains no segments.
func (p *Path) Empty() bool {
	for _, c := range p.Curves {
		if 0 < c.NumSegments() {
			return false
		}
	}
	return true
}

// Pos returns the current end position of the path, used for relative commands and implicit
// line starts.
func (p *Path) Pos() Point {
	if len(p.Curves) == 0 {
		return Point{}
	}
	c := p.Curves[len(p.Curves)-1]
	if len(c.Vertices) == 0 {
		return Point{}
	}
	if c.Closed {
		return c.Vertices[0].Point
	}
	return c.Vertices[len(c.Vertices)-1].Point
}

// current returns the open curve under construction, starting one implicitly when needed.
func (p *Path) current() *Curve {
	if len(p.Curves) == 0 || p.Curves[len(p.Curves)-1].Closed {
		pos := p.Pos()
		p.MoveTo(pos.X, pos.Y)
	}
	return p.Curves[len(p.Curves)-1]
}

// MoveTo starts a new curve at (x,y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Curves = append(p.Curves, &Curve{Vertices: []Vertex{LineVertex(Point{x, y})}})
	return p
}

// LineTo adds a straight line towards (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	c := p.current()
	c.Vertices = append(c.Vertices, LineVertex(Point{x, y}))
	return p
}

// QuadTo adds a quadratic Bézier towards (x,y) with control point (cpx,cpy). It is stored as the
// equivalent degree-elevated cubic.
func (p *Path) QuadTo(cpx, cpy, x, y float64) *Path {
	start := p.Pos()
	c := p.current()
	end := Point{x, y}
	c.Vertices = append(c.Vertices, Vertex{end, QuadCommand(start, Point{cpx, cpy}, end)})
	return p
}

// CubeTo adds a cubic Bézier towards (x,y) with control points (cpx1,cpy1) and (cpx2,cpy2).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *Path {
	c := p.current()
	c.Vertices = append(c.Vertices, CubicVertex(Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}))
	return p
}

// ArcTo adds an elliptical arc towards (x,y) with radii rx,ry, the ellipse rotated by rot degrees,
// and the large-arc and sweep flags selecting which of the four candidate arcs to draw.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return p.LineTo(x, y)
	}
	c := p.current()
	c.Vertices = append(c.Vertices, ArcVertex(Point{rx, ry}, rot, large, sweep, Point{x, y}))
	return p
}

// Close closes the current curve; its closing segment runs back to the curve's first vertex as a
// straight line. Closing an already closed or empty path is a no-op.
func (p *Path) Close() *Path {
	if len(p.Curves) == 0 {
		return p
	}
	c := p.Curves[len(p.Curves)-1]
	if c.Closed || len(c.Vertices) == 0 {
		return p
	}
	// a trailing segment that already ends on the start point becomes the wraparound segment
	last := c.Vertices[len(c.Vertices)-1]
	if 1 < len(c.Vertices) && last.Point.Equals(c.Vertices[0].Point) {
		c.Vertices[0].Command = last.Command
		c.Vertices = c.Vertices[:len(c.Vertices)-1]
	}
	c.Closed = true
	return p
}

// Append adds the curves of q after the curves of p and returns the combined path.
func (p *Path) Append(q *Path) *Path {
	if q == nil {
		return p
	}
	r := &Path{}
	r.Curves = append(r.Curves, p.Curves...)
	r.Curves = append(r.Curves, q.Curves...)
	return r
}

// Length returns the arclength of the path, the sum over its curves.
func (p *Path) Length() float64 {
	length := 0.0
	for _, c := range p.Curves {
		length += c.Length()
	}
	return length
}

// Bounds returns the bounding rectangle of the path.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	for _, c := range p.Curves {
		if len(c.Vertices) == 0 {
			continue
		}
		if first {
			r = c.Bounds()
			first = false
		} else {
			r = r.Union(c.Bounds())
		}
	}
	return r
}

// Transform applies an affine transformation and returns the new path.
func (p *Path) Transform(m Matrix) *Path {
	q := &Path{Curves: make([]*Curve, len(p.Curves))}
	for i, c := range p.Curves {
		q.Curves[i] = c.Transform(m)
	}
	return q
}

// Translate translates the path by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	return p.Transform(Identity.Translate(x, y))
}

// Scale scales the path by (x,y).
func (p *Path) Scale(x, y float64) *Path {
	return p.Transform(Identity.Scale(x, y))
}

// Rotate rotates the path by rot degrees CCW around the origin.
func (p *Path) Rotate(rot float64) *Path {
	return p.Transform(Identity.Rotate(rot))
}

// Subdivide splits every segment of every curve at its arclength midpoint and returns the new
// path.
func (p *Path) Subdivide() *Path {
	q := &Path{Curves: make([]*Curve, len(p.Curves))}
	for i, c := range p.Curves {
		q.Curves[i] = c.Subdivide()
	}
	return q
}

// Distort maps the path through an arbitrary point mapping, replacing arcs by cubic Béziers
// first.
func (p *Path) Distort(f func(Point) Point) *Path {
	q := &Path{Curves: make([]*Curve, len(p.Curves))}
	for i, c := range p.Curves {
		q.Curves[i] = c.Distort(f)
	}
	return q
}

// Equals returns true if both paths have equal curves with tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.Curves) != len(q.Curves) {
		return false
	}
	for i, c := range p.Curves {
		if !c.Equals(q.Curves[i]) {
			return false
		}
	}
	return true
}
