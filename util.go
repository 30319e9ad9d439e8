package textpath

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
const Epsilon = 1e-10

// Precision is the number of fractional digits written for path data and view boxes.
const Precision = 2

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// clamp limits f to the range [lo,hi].
func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(f, hi))
}

// dec formats a number with exactly Precision fractional digits.
type dec float64

func (f dec) String() string {
	s := strconv.FormatFloat(float64(f), 'f', Precision, 64)
	if s == "-0.00" {
		// avoid negative zero after rounding, e.g. -0.001
		s = "0.00"
	}
	return s
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Interpolate returns a point on PQ that is linearly interpolated by t in [0,1], i.e. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Distance returns the distance between P and Q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Clamp limits the point to the rectangle (0,0)-(w,h).
func (p Point) Clamp(w, h float64) Point {
	return Point{clamp(p.X, 0.0, w), clamp(p.Y, 0.0, h)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", dec(p.X), dec(p.Y))
}

////////////////////////////////////////////////////////////////

// Rect is a rectangle in 2D defined by a position and its width and height.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints returns the smallest rectangle that contains all points. It returns false for an empty list.
func RectFromPoints(ps ...Point) (Rect, bool) {
	if len(ps) == 0 {
		return Rect{}, false
	}
	x0, y0 := ps[0].X, ps[0].Y
	x1, y1 := x0, y0
	for _, p := range ps[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}, true
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.X + r.W, r.Y + r.H}
}

// Expand grows the rectangle by d on all sides.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2.0*d, r.H + 2.0*d}
}

// Contains returns true if the point lies in the rectangle, including its border.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// ViewBox formats the rectangle as an SVG viewBox attribute value.
func (r Rect) ViewBox() string {
	return fmt.Sprintf("%v %v %v %v", dec(r.X), dec(r.Y), dec(r.W), dec(r.H))
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", dec(r.X), dec(r.Y), dec(r.X+r.W), dec(r.Y+r.H))
}
