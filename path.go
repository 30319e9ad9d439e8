package textpath

import (
	"fmt"
	"strings"
)

// Segment is a single drawing instruction of a path, either a MoveTo or a CubeTo.
type Segment interface {
	// End returns the end point of the segment, which is the start point of the next segment.
	End() Point
	// Points returns all coordinates of the segment, i.e. the control points followed by the end point.
	Points() []Point

	transform(func(Point) Point) Segment
}

// MoveTo starts the path at a point.
type MoveTo struct {
	P Point
}

func (s MoveTo) End() Point {
	return s.P
}

func (s MoveTo) Points() []Point {
	return []Point{s.P}
}

func (s MoveTo) transform(f func(Point) Point) Segment {
	return MoveTo{f(s.P)}
}

func (s MoveTo) String() string {
	return fmt.Sprintf("M%v,%v", dec(s.P.X), dec(s.P.Y))
}

// CubeTo is a cubic Bézier from the end point of the previous segment to P3, with control points P1 and P2.
type CubeTo struct {
	P1, P2, P3 Point
}

// LinearCubeTo returns a cubic Bézier that traces the straight line from start to end. The control points lie at 1/3 and 2/3 of the line.
func LinearCubeTo(start, end Point) CubeTo {
	d := end.Sub(start)
	return CubeTo{
		P1: start.Add(d.Mul(1.0 / 3.0)),
		P2: start.Add(d.Mul(2.0 / 3.0)),
		P3: end,
	}
}

func (s CubeTo) End() Point {
	return s.P3
}

func (s CubeTo) Points() []Point {
	return []Point{s.P1, s.P2, s.P3}
}

func (s CubeTo) transform(f func(Point) Point) Segment {
	return CubeTo{f(s.P1), f(s.P2), f(s.P3)}
}

func (s CubeTo) String() string {
	return fmt.Sprintf("C%v,%v %v,%v %v,%v", dec(s.P1.X), dec(s.P1.Y), dec(s.P2.X), dec(s.P2.Y), dec(s.P3.X), dec(s.P3.Y))
}

////////////////////////////////////////////////////////////////

// Path is an ordered list of segments. A non-empty path always starts with a single MoveTo that is followed by CubeTo segments only. Paths are values: all modifying methods return a new path and leave the receiver untouched, so that copies kept in the history never alias.
type Path struct {
	segs []Segment
}

// NewPath returns a path from a list of segments, validating that the first segment is a MoveTo and the rest are CubeTo.
func NewPath(segs ...Segment) (*Path, error) {
	for i, seg := range segs {
		switch seg.(type) {
		case MoveTo:
			if i != 0 {
				return nil, fmt.Errorf("segment %d: MoveTo must be the first segment", i)
			}
		case CubeTo:
			if i == 0 {
				return nil, fmt.Errorf("segment 0: path must start with MoveTo")
			}
		default:
			return nil, fmt.Errorf("segment %d: unknown segment type %T", i, seg)
		}
	}
	p := &Path{}
	if 0 < len(segs) {
		p.segs = append(make([]Segment, 0, len(segs)), segs...)
	}
	return p, nil
}

// MustNewPath is like NewPath but panics on an invalid list of segments.
func MustNewPath(segs ...Segment) *Path {
	p, err := NewPath(segs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return p == nil || len(p.segs) == 0
}

// Len returns the number of segments, including the initial MoveTo.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.segs)
}

// Segments returns a copy of the path's segments.
func (p *Path) Segments() []Segment {
	if p.Empty() {
		return nil
	}
	return append([]Segment{}, p.segs...)
}

// Segment returns the i-th segment.
func (p *Path) Segment(i int) Segment {
	return p.segs[i]
}

// Copy returns a copy of p. Segments are values, so the copy shares no state with p.
func (p *Path) Copy() *Path {
	q := &Path{}
	if !p.Empty() {
		q.segs = append(make([]Segment, 0, len(p.segs)), p.segs...)
	}
	return q
}

// Equals returns true if p and q have the same segments with tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := range p.Len() {
		a, b := p.segs[i].Points(), q.segs[i].Points()
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if !a[j].Equals(b[j]) {
				return false
			}
		}
	}
	return true
}

// Pos returns the current position of the path, which is the end point of the last segment or the origin for an empty path.
func (p *Path) Pos() Point {
	if p.Empty() {
		return Point{}
	}
	return p.segs[len(p.segs)-1].End()
}

// StartOf returns the start point of the i-th segment, which is the end point of the previous segment or the origin for the first segment.
func (p *Path) StartOf(i int) Point {
	if i <= 0 || p.Len() < i {
		return Point{}
	}
	return p.segs[i-1].End()
}

// Cubics returns the number of cubic Bézier segments.
func (p *Path) Cubics() int {
	n := 0
	for _, seg := range p.Segments() {
		if _, ok := seg.(CubeTo); ok {
			n++
		}
	}
	return n
}

// Coords returns all coordinates of all segments in order.
func (p *Path) Coords() []Point {
	coords := []Point{}
	for _, seg := range p.Segments() {
		coords = append(coords, seg.Points()...)
	}
	return coords
}

// Bounds returns the bounding box of all coordinates, including control points. It returns false for an empty path.
func (p *Path) Bounds() (Rect, bool) {
	return RectFromPoints(p.Coords()...)
}

////////////////////////////////////////////////////////////////

// MoveTo returns a path with a MoveTo to (x,y) appended. It may only be called on an empty path.
func (p *Path) MoveTo(x, y float64) *Path {
	if !p.Empty() {
		panic("MoveTo must be the first segment")
	}
	return &Path{[]Segment{MoveTo{Point{x, y}}}}
}

// CubeTo returns a path with a cubic Bézier appended. An empty path is started at the origin.
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) *Path {
	return p.appendCubic(CubeTo{Point{x1, y1}, Point{x2, y2}, Point{x, y}})
}

// LineTo returns a path with a straight line appended, expressed as a linear cubic Bézier. An empty path is started at the origin.
func (p *Path) LineTo(x, y float64) *Path {
	return p.appendCubic(LinearCubeTo(p.Pos(), Point{x, y}))
}

func (p *Path) appendCubic(c CubeTo) *Path {
	q := p.Copy()
	if q.Empty() {
		q.segs = append(q.segs, MoveTo{})
	}
	q.segs = append(q.segs, c)
	return q
}

// AddPoint returns a path extended to point p0: an empty path starts at p0 and otherwise a straight line to p0 is appended.
func (p *Path) AddPoint(p0 Point) *Path {
	if p.Empty() {
		return p.MoveTo(p0.X, p0.Y)
	}
	return p.LineTo(p0.X, p0.Y)
}

// SetPoint returns a path where a single coordinate of segment i is replaced. For a MoveTo the handle is ignored, for a CubeTo the handle selects the first control point (0), the second control point (1) or the end point (2).
func (p *Path) SetPoint(i, handle int, p0 Point) (*Path, error) {
	if i < 0 || p.Len() <= i {
		return nil, &InvalidParameterError{Field: "segment", Value: fmt.Sprint(i)}
	}
	q := p.Copy()
	switch seg := q.segs[i].(type) {
	case MoveTo:
		q.segs[i] = MoveTo{p0}
	case CubeTo:
		switch handle {
		case 0:
			seg.P1 = p0
		case 1:
			seg.P2 = p0
		case 2:
			seg.P3 = p0
		default:
			return nil, &InvalidParameterError{Field: "handle", Value: fmt.Sprint(handle)}
		}
		q.segs[i] = seg
	}
	return q, nil
}

// Transform returns a path where f is applied to every coordinate.
func (p *Path) Transform(f func(Point) Point) *Path {
	q := &Path{}
	if !p.Empty() {
		q.segs = make([]Segment, len(p.segs))
		for i, seg := range p.segs {
			q.segs[i] = seg.transform(f)
		}
	}
	return q
}

// Scale returns a path where every coordinate is scaled by f and then translated by d.
func (p *Path) Scale(f float64, d Point) *Path {
	return p.Transform(func(q Point) Point {
		return q.Mul(f).Add(d)
	})
}

// String returns the path data with explicit M and C commands.
func (p *Path) String() string {
	sb := strings.Builder{}
	for i, seg := range p.Segments() {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, seg)
	}
	return sb.String()
}
