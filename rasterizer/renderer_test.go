package rasterizer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/tdewolff/test"
	"github.com/tdewolff/textpath"
)

func newEditor(t *testing.T, data string) *textpath.Editor {
	t.Helper()
	cfg := textpath.DefaultConfig()
	cfg.Width, cfg.Height = 200, 150
	e := textpath.NewEditor(cfg)
	if err := e.LoadPathData(data); err != nil {
		t.Fatal(err)
	}
	return e
}

func isWhite(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y) == color.RGBA{255, 255, 255, 255}
}

func TestDrawEmpty(t *testing.T) {
	e := textpath.NewEditor(textpath.DefaultConfig())
	img := Draw(e)
	test.T(t, img.Bounds(), image.Rect(0, 0, 800, 600))
	for _, p := range []image.Point{{0, 0}, {400, 300}, {799, 599}} {
		test.That(t, isWhite(img, p.X, p.Y), p)
	}
}

func TestDraw(t *testing.T) {
	e := newEditor(t, "M0,0 10,0")
	e.Text.Text = ""
	img := Draw(e)
	test.T(t, img.Bounds(), image.Rect(0, 0, 200, 150))

	// horizontal line through the middle from x=50 to x=150 with anchors at both ends
	test.T(t, e.PathData(), "M50.00,70.00 C83.33,70.00 116.67,70.00 150.00,70.00")
	test.That(t, !isWhite(img, 100, 70))
	test.That(t, !isWhite(img, 50, 70))
	test.That(t, !isWhite(img, 150, 70))
	test.That(t, isWhite(img, 100, 20))
	test.That(t, isWhite(img, 10, 70))
	test.That(t, !isWhite(img, 100, 69))
}

func TestDrawText(t *testing.T) {
	e := newEditor(t, "M0,0 10,0")
	e.Text.Text = "WWWWWWWW"
	e.Text.Color = "lime"
	img := Draw(e)

	lime := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.G == 255 && c.R < 128 && c.B < 128 {
				lime++
			}
		}
	}
	test.That(t, 0 < lime, "text must be drawn in the text color")

	frame := DrawFrame(e, time.Unix(5, 0))
	test.That(t, !bytes.Equal(frame.Pix, img.Pix), "animated text at half the duration must differ from the static preview")
}

func TestRenderLines(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := New(img)
	w, h := r.Size()
	test.Float(t, w, 20)
	test.Float(t, h, 20)

	r.RenderLines([]textpath.Point{{X: 2, Y: 10}, {X: 18, Y: 10}}, 4, color.Black)
	test.That(t, img.RGBAAt(10, 10).A != 0)
	test.T(t, img.RGBAAt(10, 2), color.RGBA{})

	// a single point or a zero-length line draws nothing
	img = image.NewRGBA(image.Rect(0, 0, 20, 20))
	r = New(img)
	r.RenderLines([]textpath.Point{{X: 10, Y: 10}}, 4, color.Black)
	r.RenderLines([]textpath.Point{{X: 10, Y: 10}, {X: 10, Y: 10}}, 4, color.Black)
	test.T(t, img.RGBAAt(10, 10), color.RGBA{})
}

func TestWriterFor(t *testing.T) {
	e := newEditor(t, "M0,0 10,10")
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif"} {
		writer, ok := WriterFor(ext)
		test.That(t, ok, ext)

		b := &bytes.Buffer{}
		test.Error(t, writer(b, Draw(e)))
		test.That(t, 0 < b.Len(), ext)
	}
	_, ok := WriterFor(".bmp")
	test.That(t, !ok)

	b := &bytes.Buffer{}
	test.Error(t, PNGWriter()(b, Draw(e)))
	img, err := png.Decode(b)
	test.Error(t, err)
	test.T(t, img.Bounds(), image.Rect(0, 0, 200, 150))
}
