package textpath

// RenderSamples is the number of points each cubic Bézier is flattened into for rendering.
const RenderSamples = 20

// cubicBezierPos evaluates the cubic Bézier with start point p0 at t in [0,1].
func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3.0 * mt * mt * t
	c := 3.0 * mt * t * t
	d := t * t * t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Eval returns the point on the cubic Bézier starting at start for parameter t in [0,1].
func (s CubeTo) Eval(start Point, t float64) Point {
	return cubicBezierPos(start, s.P1, s.P2, s.P3, t)
}

// flattenCubic appends n points of the cubic Bézier at t = 1/n, 2/n, ..., 1. The start point itself is not included.
func flattenCubic(coords []Point, start Point, s CubeTo, n int) []Point {
	for j := 1; j <= n; j++ {
		coords = append(coords, s.Eval(start, float64(j)/float64(n)))
	}
	return coords
}

// SampleForRender flattens the path for drawing, with RenderSamples points per cubic Bézier at equal parameter steps. The start of the path is not included in the coordinates but is returned as the polyline's start point.
func SampleForRender(p *Path) *Polyline {
	poly := &Polyline{}
	if p.Empty() {
		return poly
	}
	poly.start = p.StartOf(1)
	for i, seg := range p.Segments() {
		if c, ok := seg.(CubeTo); ok {
			poly.coords = flattenCubic(poly.coords, p.StartOf(i), c, RenderSamples)
		}
	}
	return poly
}

// SampleForText returns points along the path to place text on. The first point is the MoveTo, after which n is divided equally (rounding down) between the cubic Béziers. Samples that do not divide equally are dropped. The points are equally spaced in the Bézier parameter, not in arc length.
func SampleForText(p *Path, n int) []Point {
	if p.Empty() {
		return nil
	}

	coords := []Point{p.StartOf(1)}
	perSegment := n / max(1, p.Len()-1)
	if perSegment <= 0 {
		return coords
	}
	for i, seg := range p.Segments() {
		if c, ok := seg.(CubeTo); ok {
			coords = flattenCubic(coords, p.StartOf(i), c, perSegment)
		}
	}
	return coords
}
