package textpath

import (
	"io"
	"strings"
	"time"
)

// Editor holds the path being edited together with its undo history, the canvas size and the text parameters. Every modification saves the previous path in the history first. An Editor is not safe for concurrent use.
type Editor struct {
	Config

	path    *Path
	history *History
}

// NewEditor returns an editor with an empty path.
func NewEditor(cfg Config) *Editor {
	return &Editor{
		Config:  cfg,
		path:    &Path{},
		history: NewHistory(cfg.HistoryCapacity),
	}
}

// Path returns a copy of the current path.
func (e *Editor) Path() *Path {
	return e.path.Copy()
}

// History returns the editor's undo history.
func (e *Editor) History() *History {
	return e.history
}

func (e *Editor) set(op string, p *Path) {
	e.history.Push(e.path)
	e.path = p
	undo, redo := e.history.Len()
	Logger().Debug("path edited", "op", op, "segments", e.path.Len(), "undo", undo, "redo", redo)
}

// LoadPathData parses path data and, if FitOnLoad is set, fits it to the canvas. Empty data is ignored. On error the path and history are left unchanged.
func (e *Editor) LoadPathData(data string) error {
	if strings.TrimSpace(data) == "" {
		return nil
	}
	p, err := ParsePath(data)
	if err != nil {
		Logger().Warn("invalid path data", "error", err)
		return err
	}
	if e.FitOnLoad {
		p = NormalizePadding(p, e.Width, e.Height, e.Padding)
	}
	e.set("load", p)
	return nil
}

// LoadFile loads file contents with either bare path data or an SVG document with a path element.
func (e *Editor) LoadFile(r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	data, err := LoadPathData(content)
	if err != nil {
		return err
	}
	return e.LoadPathData(data)
}

// Fit scales and centers the path to the canvas. It does nothing for an empty path.
func (e *Editor) Fit() {
	if e.path.Empty() {
		return
	}
	e.set("fit", NormalizePadding(e.path, e.Width, e.Height, e.Padding))
}

// AddPoint extends the path to (x,y), which is clamped to the canvas. The first point starts the path, further points add a straight cubic Bézier.
func (e *Editor) AddPoint(x, y float64) {
	p := Point{x, y}.Clamp(e.Width, e.Height)
	e.set("add", e.path.AddPoint(p))
}

// MovePoint moves a single coordinate of segment i to (x,y), which is clamped to the canvas. For cubic Béziers handle selects the first control point (0), second control point (1) or end point (2).
func (e *Editor) MovePoint(i, handle int, x, y float64) error {
	p, err := e.path.SetPoint(i, handle, Point{x, y}.Clamp(e.Width, e.Height))
	if err != nil {
		return err
	}
	e.set("move", p)
	return nil
}

// Clear empties the path. Clearing an empty path is not saved in the history.
func (e *Editor) Clear() {
	if e.path.Empty() {
		return
	}
	e.set("clear", &Path{})
}

// Undo restores the path before the last modification. It returns false if there is nothing to undo.
func (e *Editor) Undo() bool {
	p, ok := e.history.Undo(e.path)
	if ok {
		e.path = p
		Logger().Debug("undo", "segments", e.path.Len())
	}
	return ok
}

// Redo restores the path of the last undo. It returns false if there is nothing to redo.
func (e *Editor) Redo() bool {
	p, ok := e.history.Redo(e.path)
	if ok {
		e.path = p
		Logger().Debug("redo", "segments", e.path.Len())
	}
	return ok
}

// Polyline returns the flattened path for drawing.
func (e *Editor) Polyline() *Polyline {
	return SampleForRender(e.path)
}

// Preview returns the text placed on the path at its start offset.
func (e *Editor) Preview() []Glyph {
	samples := SampleForText(e.path, e.PreviewSamples)
	return LayoutText(samples, e.Text.Text, e.Text)
}

// Tick returns the animated text for the given time. It keeps no state, so it can be called at any rate by the caller's scheduler.
func (e *Editor) Tick(now time.Time) []Glyph {
	t := float64(now.UnixNano()) / 1e9
	samples := SampleForText(e.path, e.AnimationSamples)
	return AnimateText(samples, e.Text.Text, e.Text, t)
}

// PathData returns the path data of the current path.
func (e *Editor) PathData() string {
	return PathData(e.path)
}

// SVG returns the SVG document of the current path and text, or NoPathDefined for an empty path.
func (e *Editor) SVG() string {
	return Document(e.path, e.Text)
}

// WriteSVG writes the SVG document, minified if minify is set.
func (e *Editor) WriteSVG(w io.Writer, minify bool) error {
	if minify {
		return MinifyDocument(w, e.path, e.Text)
	}
	return WriteDocument(w, e.path, e.Text)
}
