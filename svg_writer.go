package textpath

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// NoPathDefined is written instead of a document when the path is empty.
const NoPathDefined = "No path defined yet."

// PathID is the identifier of the path element that the text path refers to.
const PathID = "curve"

// PathData returns the path data with an explicit M or C command for every segment and two fractional digits for every number.
func PathData(p *Path) string {
	return p.String()
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escape(s string) string {
	b := &bytes.Buffer{}
	_ = xml.EscapeText(b, []byte(s))
	return b.String()
}

// WriteDocument writes an SVG document with the path and the text following the path. The text's start offset is animated from 100% to -100% every params.Duration seconds. For an empty path NoPathDefined is written instead.
func WriteDocument(w io.Writer, p *Path, params TextParams) error {
	bounds, ok := p.Bounds()
	if !ok {
		_, err := io.WriteString(w, NoPathDefined)
		return err
	}

	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg"
viewBox="%s"
width="100%%"
height="100%%">
    <path id="%s"
        d="%s"
        fill="none"
        stroke="black"
        stroke-width="2"/>
    <text font-size="%d"
        fill="%s"
        letter-spacing="%dpx">
        <textPath href="#%s"
            startOffset="%s%%">
            %s
            <animate
                attributeName="startOffset"
                from="100%%"
                to="-100%%"
                dur="%ss"
                repeatCount="indefinite"/>
        </textPath>
    </text>
</svg>`,
		bounds.Expand(Padding).ViewBox(),
		PathID, PathData(p),
		params.FontSize, escape(params.Color), params.LetterSpacing,
		PathID, fmtFloat(params.StartOffset),
		escape(params.Text),
		fmtFloat(params.Duration))
	return err
}

// Document returns the SVG document written by WriteDocument.
func Document(p *Path, params TextParams) string {
	b := &bytes.Buffer{}
	_ = WriteDocument(b, p, params)
	return b.String()
}

// MinifyDocument writes the SVG document in minified form. For an empty path NoPathDefined is written.
func MinifyDocument(w io.Writer, p *Path, params TextParams) error {
	if p.Empty() {
		_, err := io.WriteString(w, NoPathDefined)
		return err
	}

	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m.Minify("image/svg+xml", w, bytes.NewBufferString(Document(p, params)))
}
