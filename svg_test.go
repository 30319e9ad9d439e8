package textpath

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestExtractPathData(t *testing.T) {
	var tts = []struct {
		svg      string
		expected string
	}{
		{`<svg><path d="M1 2 3 4"/></svg>`, "M1 2 3 4"},
		{`<svg xmlns="http://www.w3.org/2000/svg"><g><path fill="none" d='M5,5 C1,1 2,2 3,3'></path></g></svg>`, "M5,5 C1,1 2,2 3,3"},
		{`<?xml version="1.0"?><svg><rect d="M0 0"/><path d=""/><path id="curve" d="M9 9"/></svg>`, "M9 9"},
	}
	for _, tt := range tts {
		t.Run(tt.svg, func(t *testing.T) {
			data, err := ExtractPathData(strings.NewReader(tt.svg))
			test.Error(t, err)
			test.T(t, data, tt.expected)
		})
	}

	_, err := ExtractPathData(strings.NewReader(`<svg><rect width="10"/></svg>`))
	test.T(t, err, ErrNoPathData)

	_, err = ExtractPathData(strings.NewReader(``))
	test.T(t, err, ErrNoPathData)
}

func TestLoadPathData(t *testing.T) {
	var tts = []struct {
		content  string
		expected string
	}{
		{"M1 2 3 4\n", "M1 2 3 4"},
		{"  \n<svg><path d=\"M1 2\"/></svg>", "M1 2"},
		{"", ""},
	}
	for _, tt := range tts {
		t.Run(tt.content, func(t *testing.T) {
			data, err := LoadPathData([]byte(tt.content))
			test.Error(t, err)
			test.T(t, data, tt.expected)
		})
	}

	test.That(t, IsDocument([]byte(" <svg/>")))
	test.That(t, !IsDocument([]byte("M0 0")))
	test.That(t, !IsDocument(nil))
}
