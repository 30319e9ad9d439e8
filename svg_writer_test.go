package textpath

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathData(t *testing.T) {
	var tts = []struct {
		data     string
		expected string
	}{
		{"M12 34", "M12.00,34.00"},
		{"M0,0 10,10", "M0.00,0.00 C3.33,3.33 6.67,6.67 10.00,10.00"},
		{"M-0.001,1.004 c0 0 0 0 1 1", "M0.00,1.00 C0.00,1.00 0.00,1.00 1.00,2.00"},
	}
	for _, tt := range tts {
		t.Run(tt.data, func(t *testing.T) {
			test.T(t, PathData(MustParsePath(tt.data)), tt.expected)
		})
	}
	test.T(t, PathData(&Path{}), "")
}

func TestDocument(t *testing.T) {
	params := TextParams{"Hello", 20, -2, 12.5, "red", 4}
	doc := Document(MustParsePath("M0,0 10,10"), params)

	test.That(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg"`), doc)
	for _, s := range []string{
		`viewBox="-50.00 -50.00 110.00 110.00"`,
		`<path id="curve"`,
		`d="M0.00,0.00 C3.33,3.33 6.67,6.67 10.00,10.00"`,
		`font-size="20"`,
		`fill="red"`,
		`letter-spacing="-2px"`,
		`<textPath href="#curve"`,
		`startOffset="12.5%"`,
		`attributeName="startOffset"`,
		`from="100%"`,
		`to="-100%"`,
		`dur="4s"`,
		`repeatCount="indefinite"`,
		"Hello",
	} {
		test.That(t, strings.Contains(doc, s), s)
	}
	test.That(t, strings.HasSuffix(doc, "</svg>"))
}

func TestDocumentEscape(t *testing.T) {
	params := DefaultTextParams
	params.Text = `<b>"Fish" & Chips</b>`
	params.Color = `"red`
	doc := Document(MustParsePath("M0,0 10,10"), params)
	test.That(t, strings.Contains(doc, "&lt;b&gt;&#34;Fish&#34; &amp; Chips&lt;/b&gt;"), doc)
	test.That(t, strings.Contains(doc, `fill="&#34;red"`), doc)

	// the written document can be read back
	data, err := ExtractPathData(strings.NewReader(doc))
	test.Error(t, err)
	test.T(t, data, "M0.00,0.00 C3.33,3.33 6.67,6.67 10.00,10.00")
}

func TestDocumentEmpty(t *testing.T) {
	test.T(t, Document(&Path{}, DefaultTextParams), NoPathDefined)

	b := &bytes.Buffer{}
	test.Error(t, MinifyDocument(b, &Path{}, DefaultTextParams))
	test.T(t, b.String(), NoPathDefined)
}

func TestMinifyDocument(t *testing.T) {
	p := MustParsePath("M0,0 10,10")
	b := &bytes.Buffer{}
	test.Error(t, MinifyDocument(b, p, DefaultTextParams))

	doc := b.String()
	test.That(t, len(doc) < len(Document(p, DefaultTextParams)), doc)
	test.That(t, strings.HasPrefix(doc, "<svg"), doc)
	test.That(t, strings.Contains(doc, "curve"), doc)
	test.That(t, strings.Contains(doc, "textPath"), doc)
	test.That(t, strings.Contains(doc, DefaultTextParams.Text), doc)
}
