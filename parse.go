package paths

import (
	"fmt"
	"math"
	stdstrconv "strconv"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParseSVGPath parses an SVG path data string into a path. It supports the full command set
// (MmZzLlHhVvCcSsQqTtAa); quadratic Béziers are stored as their degree-elevated cubics.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // previous control point for smooth commands

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		}
		pos := p.Pos()
		x, y := pos.X, pos.Y

		nums := func(k int) ([]float64, bool) {
			fs := make([]float64, k)
			for j := 0; j < k; j++ {
				f, n := parseNum(path[i:])
				if n == 0 {
					return nil, false
				}
				fs[j] = f
				i += n
			}
			return fs, true
		}

		switch cmd {
		case 'M', 'm':
			fs, ok := nums(2)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'm' {
				fs[0] += x
				fs[1] += y
			}
			p.MoveTo(fs[0], fs[1])
			// subsequent pairs are implicit LineTo
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			fs, ok := nums(2)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'l' {
				fs[0] += x
				fs[1] += y
			}
			p.LineTo(fs[0], fs[1])
		case 'H', 'h':
			fs, ok := nums(1)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'h' {
				fs[0] += x
			}
			p.LineTo(fs[0], y)
		case 'V', 'v':
			fs, ok := nums(1)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'v' {
				fs[0] += y
			}
			p.LineTo(x, fs[0])
		case 'C', 'c':
			fs, ok := nums(6)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'c' {
				for j := 0; j < 6; j += 2 {
					fs[j] += x
					fs[j+1] += y
				}
			}
			p.CubeTo(fs[0], fs[1], fs[2], fs[3], fs[4], fs[5])
			cpx, cpy = fs[2], fs[3]
		case 'S', 's':
			fs, ok := nums(4)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 's' {
				for j := 0; j < 4; j += 2 {
					fs[j] += x
					fs[j+1] += y
				}
			}
			cx, cy := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cx, cy = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(cx, cy, fs[0], fs[1], fs[2], fs[3])
			cpx, cpy = fs[0], fs[1]
		case 'Q', 'q':
			fs, ok := nums(4)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'q' {
				for j := 0; j < 4; j += 2 {
					fs[j] += x
					fs[j+1] += y
				}
			}
			p.QuadTo(fs[0], fs[1], fs[2], fs[3])
			cpx, cpy = fs[0], fs[1]
		case 'T', 't':
			fs, ok := nums(2)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 't' {
				fs[0] += x
				fs[1] += y
			}
			cx, cy := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cx, cy = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(cx, cy, fs[0], fs[1])
			cpx, cpy = cx, cy
		case 'A', 'a':
			fs, ok := nums(7)
			if !ok {
				return nil, fmt.Errorf("bad number in %c command at position %d", cmd, i)
			}
			if cmd == 'a' {
				fs[5] += x
				fs[6] += y
			}
			large := math.Abs(fs[3]-1.0) < 1e-10
			sweep := math.Abs(fs[4]-1.0) < 1e-10
			p.ArcTo(fs[0], fs[1], fs[2], large, sweep, fs[5], fs[6])
		default:
			return nil, fmt.Errorf("unknown command '%c' at position %d", cmd, i)
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath parses an SVG path data string and panics on failure.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func ftos(f float64) string {
	return stdstrconv.FormatFloat(f, 'g', -1, 64)
}

func btos(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeCommand(sb *strings.Builder, v Vertex) {
	cmd := v.Command
	switch cmd.Kind {
	case LineKind:
		sb.WriteString("L" + ftos(v.Point.X) + " " + ftos(v.Point.Y))
	case CubicKind:
		sb.WriteString("C" + ftos(cmd.Control1.X) + " " + ftos(cmd.Control1.Y))
		sb.WriteString(" " + ftos(cmd.Control2.X) + " " + ftos(cmd.Control2.Y))
		sb.WriteString(" " + ftos(v.Point.X) + " " + ftos(v.Point.Y))
	case ArcKind:
		sb.WriteString("A" + ftos(cmd.Radii.X) + " " + ftos(cmd.Radii.Y) + " " + ftos(cmd.Rotation))
		sb.WriteString(" " + btos(cmd.Large) + " " + btos(cmd.Sweep))
		sb.WriteString(" " + ftos(v.Point.X) + " " + ftos(v.Point.Y))
	}
}

// String returns the SVG path data representation of the path. Parsing it back yields an equal
// path.
func (p *Path) String() string {
	sb := strings.Builder{}
	for _, c := range p.Curves {
		if len(c.Vertices) == 0 {
			continue
		}
		start := c.Vertices[0].Point
		sb.WriteString("M" + ftos(start.X) + " " + ftos(start.Y))
		for _, v := range c.Vertices[1:] {
			writeCommand(&sb, v)
		}
		if c.Closed {
			// a non-line closing segment must be written out before the close
			if c.Vertices[0].Command.Kind != LineKind {
				writeCommand(&sb, c.Vertices[0])
			}
			sb.WriteString("z")
		}
	}
	return sb.String()
}
