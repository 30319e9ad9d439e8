package textpath

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ExtractPathData returns the d attribute of the first path element in an SVG document that has one.
func ExtractPathData(r io.Reader) (string, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return "", fmt.Errorf("bad SVG: %w", l.Err())
			}
			return "", ErrNoPathData
		case xml.StartTagToken:
			tag := string(l.Text())
			for {
				ttAttr, _ := l.Next()
				if ttAttr != xml.AttributeToken {
					break
				}
				if tag != "path" || string(l.Text()) != "d" {
					continue
				}
				val := l.AttrVal()
				if 1 < len(val) && (val[0] == '\'' || val[0] == '"') && val[0] == val[len(val)-1] {
					val = val[1 : len(val)-1]
				}
				if 0 < len(bytes.TrimSpace(val)) {
					return string(val), nil
				}
			}
		}
	}
}

// IsDocument returns true if the content looks like an SVG or XML document rather than bare path data.
func IsDocument(content []byte) bool {
	content = bytes.TrimSpace(content)
	return 0 < len(content) && content[0] == '<'
}

// LoadPathData returns the path data of file contents, which is either bare path data or an SVG document with a path element.
func LoadPathData(content []byte) (string, error) {
	if IsDocument(content) {
		return ExtractPathData(bytes.NewReader(content))
	}
	return string(bytes.TrimSpace(content)), nil
}
