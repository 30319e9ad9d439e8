package textpath

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())
	test.T(t, p.Len(), 0)
	test.T(t, p.String(), "")

	var q *Path
	test.That(t, q.Empty())
	test.T(t, q.Len(), 0)

	p = p.MoveTo(5, 2)
	test.That(t, !p.Empty())
	test.T(t, p.Len(), 1)
}

func TestNewPath(t *testing.T) {
	var tts = []struct {
		segs []Segment
		err  bool
	}{
		{nil, false},
		{[]Segment{MoveTo{Pt(1, 2)}}, false},
		{[]Segment{MoveTo{Pt(1, 2)}, CubeTo{Pt(1, 2), Pt(3, 4), Pt(5, 6)}}, false},
		{[]Segment{CubeTo{Pt(1, 2), Pt(3, 4), Pt(5, 6)}}, true},
		{[]Segment{MoveTo{Pt(1, 2)}, MoveTo{Pt(3, 4)}}, true},
	}
	for _, tt := range tts {
		t.Run(PathData(&Path{tt.segs}), func(t *testing.T) {
			_, err := NewPath(tt.segs...)
			test.T(t, err != nil, tt.err)
		})
	}
}

func TestPathEquals(t *testing.T) {
	test.That(t, !MustParsePath("M5 0 5 10").Equals(MustParsePath("M5 0")))
	test.That(t, !MustParsePath("M5 0 5 10").Equals(MustParsePath("M5 0 5 9")))
	test.That(t, MustParsePath("M5 0 5 10").Equals(MustParsePath("M5 0 5 10")))
	test.That(t, MustParsePath("M5 0 5 10").Equals(MustParsePath("M5,0 C5,3.33333333333333 5,6.66666666666667 5,10")))
	test.That(t, (&Path{}).Equals(nil))
}

func TestPathBuild(t *testing.T) {
	p := &Path{}
	q := p.AddPoint(Pt(10, 20))
	test.That(t, p.Empty(), "receiver must not change")
	test.T(t, q.String(), "M10.00,20.00")

	q = q.AddPoint(Pt(40, 20))
	test.T(t, q.String(), "M10.00,20.00 C20.00,20.00 30.00,20.00 40.00,20.00")
	test.T(t, q.Cubics(), 1)
	test.T(t, q.Pos(), Pt(40, 20))
	test.T(t, q.StartOf(0), Point{})
	test.T(t, q.StartOf(1), Pt(10, 20))

	q = q.CubeTo(40, 40, 60, 40, 60, 20)
	test.T(t, q.Len(), 3)
	test.T(t, q.StartOf(2), Pt(40, 20))

	// cubic on an empty path starts at the origin
	test.T(t, (&Path{}).LineTo(3, 6).String(), "M0.00,0.00 C1.00,2.00 2.00,4.00 3.00,6.00")
}

func TestPathMoveToPanics(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParsePath("M0 0").MoveTo(5, 5)
}

func TestPathSetPoint(t *testing.T) {
	p := MustParsePath("M0 0C10 0 20 0 30 0")

	var tts = []struct {
		i, handle int
		expected  string
	}{
		{0, 0, "M5.00,5.00 C10.00,0.00 20.00,0.00 30.00,0.00"},
		{0, 2, "M5.00,5.00 C10.00,0.00 20.00,0.00 30.00,0.00"},
		{1, 0, "M0.00,0.00 C5.00,5.00 20.00,0.00 30.00,0.00"},
		{1, 1, "M0.00,0.00 C10.00,0.00 5.00,5.00 30.00,0.00"},
		{1, 2, "M0.00,0.00 C10.00,0.00 20.00,0.00 5.00,5.00"},
	}
	for _, tt := range tts {
		t.Run(tt.expected, func(t *testing.T) {
			q, err := p.SetPoint(tt.i, tt.handle, Pt(5, 5))
			test.Error(t, err)
			test.T(t, q.String(), tt.expected)
		})
	}
	test.T(t, p.String(), "M0.00,0.00 C10.00,0.00 20.00,0.00 30.00,0.00")

	var perr *InvalidParameterError
	_, err := p.SetPoint(2, 0, Pt(5, 5))
	test.That(t, errors.As(err, &perr))
	test.T(t, perr.Field, "segment")

	_, err = p.SetPoint(1, 3, Pt(5, 5))
	test.That(t, errors.As(err, &perr))
	test.T(t, perr.Field, "handle")
}

func TestPathBounds(t *testing.T) {
	_, ok := (&Path{}).Bounds()
	test.That(t, !ok)

	bounds, ok := MustParsePath("M10 20C0 50 100 -10 40 30").Bounds()
	test.That(t, ok)
	test.T(t, bounds, Rect{0, -10, 100, 60})
}

func TestPathTransform(t *testing.T) {
	p := MustParsePath("M1 2C3 4 5 6 7 8")
	test.T(t, p.Scale(2, Pt(1, -1)).String(), "M3.00,3.00 C7.00,7.00 11.00,11.00 15.00,15.00")
	test.T(t, p.String(), "M1.00,2.00 C3.00,4.00 5.00,6.00 7.00,8.00")
}

func TestPathSegmentsCopy(t *testing.T) {
	p := MustParsePath("M1 2C3 4 5 6 7 8")
	segs := p.Segments()
	segs[0] = MoveTo{Pt(100, 100)}
	test.T(t, p.Segment(0), Segment(MoveTo{Pt(1, 2)}))
}
