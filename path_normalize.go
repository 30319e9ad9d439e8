package textpath

import "math"

// Padding is the default margin kept free around a normalized path, and the margin added around the path in an SVG view box.
const Padding = 50.0

// Normalize scales and centers the path uniformly so that its bounding box fits in a width x height rectangle with Padding on all sides.
func Normalize(p *Path, width, height float64) *Path {
	return NormalizePadding(p, width, height, Padding)
}

// NormalizePadding is like Normalize but with a custom padding. An extent of zero along an axis is treated as one so that a single point or a straight horizontal or vertical path is still centered.
func NormalizePadding(p *Path, width, height, padding float64) *Path {
	bounds, ok := p.Bounds()
	if !ok {
		return p.Copy()
	}

	w, h := bounds.W, bounds.H
	if w == 0.0 {
		w = 1.0
	}
	if h == 0.0 {
		h = 1.0
	}

	scale := math.Min((width-2.0*padding)/w, (height-2.0*padding)/h)
	offset := Point{
		(width-w*scale)/2.0 - bounds.X*scale,
		(height-h*scale)/2.0 - bounds.Y*scale,
	}
	return p.Scale(scale, offset)
}
