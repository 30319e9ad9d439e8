// Package rasterizer draws a path, its control points and the text placed on it to an image.
package rasterizer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/tdewolff/textpath"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	pathColor   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	anchorColor = color.RGBA{0x00, 0x00, 0xff, 0xff}
	cp1Color    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	cp2Color    = color.RGBA{0x00, 0x80, 0x00, 0xff}
)

// StrokeWidth is the width of the drawn path.
const StrokeWidth = 2.0

// Draw draws the editor's path with its anchor and control points and the text preview on a new white image of the editor's canvas size.
func Draw(e *textpath.Editor) *image.RGBA {
	return draw0(e, e.Preview())
}

// DrawFrame is like Draw but with the animated text at the given time.
func DrawFrame(e *textpath.Editor, now time.Time) *image.RGBA {
	return draw0(e, e.Tick(now))
}

func draw0(e *textpath.Editor, glyphs []textpath.Glyph) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(e.Width+0.5), int(e.Height+0.5)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := New(img)
	r.RenderPolyline(e.Polyline(), StrokeWidth, pathColor)
	r.RenderHandles(e.Path())
	col, ok := ParseColor(e.Text.Color)
	if !ok {
		col = pathColor
	}
	r.RenderGlyphs(glyphs, col)
	return img
}

// Renderer draws onto an image.
type Renderer struct {
	img draw.Image
}

// New creates a renderer that draws to a rasterized image.
func New(img draw.Image) *Renderer {
	return &Renderer{
		img: img,
	}
}

// Size returns the width and height in pixels.
func (r *Renderer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

func (r *Renderer) fill(ras *vector.Rasterizer, col color.Color) {
	size := r.img.Bounds().Size()
	ras.Draw(r.img, image.Rect(0, 0, size.X, size.Y), image.NewUniform(col), image.Point{})
}

func (r *Renderer) rasterizer() *vector.Rasterizer {
	size := r.img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	ras.DrawOp = draw.Over
	return ras
}

// RenderPolyline strokes the polyline with the given width.
func (r *Renderer) RenderPolyline(poly *textpath.Polyline, width float64, col color.Color) {
	r.RenderLines(poly.Points(), width, col)
}

// RenderLines strokes the lines between consecutive points with the given width. Every line is drawn as a rectangle, joins are not rounded.
func (r *Renderer) RenderLines(points []textpath.Point, width float64, col color.Color) {
	if len(points) < 2 {
		return
	}

	ras := r.rasterizer()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := b.Sub(a)
		length := a.Distance(b)
		if length == 0.0 {
			continue
		}
		n := textpath.Pt(-d.Y, d.X).Mul(width / 2.0 / length)
		ras.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		ras.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		ras.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		ras.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		ras.ClosePath()
	}
	r.fill(ras, col)
}

// RenderCircle fills a circle, approximated by a polygon.
func (r *Renderer) RenderCircle(c textpath.Point, radius float64, col color.Color) {
	const n = 16
	ras := r.rasterizer()
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2.0 * math.Pi * float64(i) / n)
		x, y := float32(c.X+radius*cos), float32(c.Y+radius*sin)
		if i == 0 {
			ras.MoveTo(x, y)
		} else {
			ras.LineTo(x, y)
		}
	}
	ras.ClosePath()
	r.fill(ras, col)
}

// RenderHandles draws the anchor points of the path in blue and the first and second control points of each cubic Bézier in red and green, connected to their anchor point.
func (r *Renderer) RenderHandles(p *textpath.Path) {
	for i, seg := range p.Segments() {
		switch seg := seg.(type) {
		case textpath.MoveTo:
			r.RenderCircle(seg.P, 5.0, anchorColor)
		case textpath.CubeTo:
			start := p.StartOf(i)
			r.RenderLines([]textpath.Point{start, seg.P1}, 1.0, cp1Color)
			r.RenderLines([]textpath.Point{seg.P3, seg.P2}, 1.0, cp2Color)
			r.RenderCircle(seg.P1, 4.0, cp1Color)
			r.RenderCircle(seg.P2, 4.0, cp2Color)
			r.RenderCircle(seg.P3, 5.0, anchorColor)
		}
	}
}

// RenderGlyphs draws each character centered on its position with a fixed-size bitmap font.
func (r *Renderer) RenderGlyphs(glyphs []textpath.Glyph, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	metrics := face.Metrics()
	for _, glyph := range glyphs {
		w := d.MeasureString(glyph.Char)
		x := fixed.Int26_6(glyph.Pos.X*64.0) - w/2
		y := fixed.Int26_6(glyph.Pos.Y*64.0) + (metrics.Ascent-metrics.Descent)/2
		d.Dot = fixed.Point26_6{X: x, Y: y}
		d.DrawString(glyph.Char)
	}
}
