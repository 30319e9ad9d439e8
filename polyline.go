package textpath

// Polyline is a flattened path: a start point followed by the points sampled along each cubic Bézier.
type Polyline struct {
	start  Point
	coords []Point
}

// Empty returns true if the polyline has no sampled points.
func (p *Polyline) Empty() bool {
	return len(p.coords) == 0
}

// Len returns the number of sampled points, excluding the start point.
func (p *Polyline) Len() int {
	return len(p.coords)
}

// Start returns the start point, i.e. the MoveTo of the path it was sampled from.
func (p *Polyline) Start() Point {
	return p.start
}

// Coords returns the sampled points, excluding the start point.
func (p *Polyline) Coords() []Point {
	return p.coords
}

// Points returns the start point followed by the sampled points, which is the list of vertices to draw.
func (p *Polyline) Points() []Point {
	if p.Empty() {
		return nil
	}
	return append([]Point{p.start}, p.coords...)
}

// Bounds returns the bounding box of the drawn vertices. It returns false for an empty polyline.
func (p *Polyline) Bounds() (Rect, bool) {
	return RectFromPoints(p.Points()...)
}

// Length returns the total length of the line segments between the drawn vertices.
func (p *Polyline) Length() float64 {
	d := 0.0
	points := p.Points()
	for i := 1; i < len(points); i++ {
		d += points[i-1].Distance(points[i])
	}
	return d
}
