package textpath

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CharWidthRatio is the width of a character relative to the font size.
const CharWidthRatio = 0.6

// TextParams are the parameters of the text that follows the path.
type TextParams struct {
	Text          string  `yaml:"text"`
	FontSize      int     `yaml:"font_size"`      // in pixels
	LetterSpacing int     `yaml:"letter_spacing"` // in pixels, negative values overlap characters
	StartOffset   float64 `yaml:"start_offset"`   // in percent of the path
	Color         string  `yaml:"color"`
	Duration      float64 `yaml:"duration"` // animation period in seconds
}

// DefaultTextParams are the text parameters used when none are given.
var DefaultTextParams = TextParams{
	Text:          "Animated Text",
	FontSize:      16,
	LetterSpacing: 0,
	StartOffset:   0.0,
	Color:         "black",
	Duration:      10.0,
}

// ParseTextParams parses text parameters from their textual form, as entered in a form, on top of base. Empty strings keep the value of base.
func ParseTextParams(base TextParams, text, fontSize, letterSpacing, startOffset, color, duration string) (TextParams, error) {
	params := base
	if text != "" {
		params.Text = text
	}
	if color = strings.TrimSpace(color); color != "" {
		params.Color = color
	}

	var err error
	if fontSize = strings.TrimSpace(fontSize); fontSize != "" {
		if params.FontSize, err = strconv.Atoi(fontSize); err != nil {
			return params, &InvalidParameterError{"font size", fontSize}
		}
	}
	if letterSpacing = strings.TrimSpace(letterSpacing); letterSpacing != "" {
		if params.LetterSpacing, err = strconv.Atoi(letterSpacing); err != nil {
			return params, &InvalidParameterError{"letter spacing", letterSpacing}
		}
	}
	if startOffset = strings.TrimSpace(startOffset); startOffset != "" {
		if params.StartOffset, err = strconv.ParseFloat(startOffset, 64); err != nil {
			return params, &InvalidParameterError{"start offset", startOffset}
		}
	}
	if duration = strings.TrimSpace(duration); duration != "" {
		if params.Duration, err = strconv.ParseFloat(duration, 64); err != nil {
			return params, &InvalidParameterError{"duration", duration}
		}
	}
	return params, params.Validate()
}

// Validate checks that font size and duration are positive and the start offset is finite.
func (params TextParams) Validate() error {
	if params.FontSize <= 0 {
		return &InvalidParameterError{"font size", strconv.Itoa(params.FontSize)}
	} else if math.IsNaN(params.StartOffset) || math.IsInf(params.StartOffset, 0) {
		return &InvalidParameterError{"start offset", strconv.FormatFloat(params.StartOffset, 'g', -1, 64)}
	} else if !(0.0 < params.Duration) || math.IsInf(params.Duration, 0) {
		return &InvalidParameterError{"duration", strconv.FormatFloat(params.Duration, 'g', -1, 64)}
	}
	return nil
}

// CharWidth returns the number of samples a character occupies, which is the font size times CharWidthRatio rounded down.
func (params TextParams) CharWidth() int {
	return int(math.Floor(float64(params.FontSize) * CharWidthRatio))
}

// Advance returns the number of samples between consecutive characters. It may be zero or negative for negative letter spacing.
func (params TextParams) Advance() int {
	return params.CharWidth() + params.LetterSpacing
}

////////////////////////////////////////////////////////////////

// Glyph is a character placed on a sample point of a path.
type Glyph struct {
	Char  string
	Index int // index into the samples
	Pos   Point
}

// Characters splits a string into the characters that are placed individually. The string is NFC normalized and combining marks stay with their base character.
func Characters(s string) []string {
	chars := []string{}
	var it norm.Iter
	it.InitString(norm.NFC, s)
	for !it.Done() {
		chars = append(chars, string(it.Next()))
	}
	return chars
}

// LayoutText places the characters of text on the samples. The first character is placed at StartOffset percent of the samples, and each following character advances by Advance samples. Characters that run past the last sample are dropped. A negative advance can move below the first sample, where positions count back from the last sample; the walk stops once it moves back more than the number of samples.
func LayoutText(samples []Point, text string, params TextParams) []Glyph {
	n := len(samples)
	if n == 0 {
		return nil
	}
	start := int(math.Floor(float64(n) * params.StartOffset / 100.0))
	start = max(0, min(start, n-1))

	glyphs := []Glyph{}
	i, advance := start, params.Advance()
	for _, char := range Characters(text) {
		j := i
		if j < 0 {
			j += n
		}
		if n <= i || j < 0 {
			break
		}
		glyphs = append(glyphs, Glyph{char, j, samples[j]})
		i += advance
	}
	return glyphs
}

// AnimateText places the text like LayoutText, but with a start position that moves from the end of the path towards its beginning once every Duration seconds. Characters at negative sample positions are skipped rather than wrapped. The time t is in seconds and may be any clock, only its value modulo Duration is used.
func AnimateText(samples []Point, text string, params TextParams, t float64) []Glyph {
	n := len(samples)
	if n == 0 || !(0.0 < params.Duration) {
		return nil
	}
	progress := math.Mod(t, params.Duration) / params.Duration
	if progress < 0.0 {
		progress += 1.0
	}
	start := int(math.Floor(float64(n) * (1.0 - progress)))
	return placeText(samples, text, start, params.Advance())
}

func placeText(samples []Point, text string, i, advance int) []Glyph {
	glyphs := []Glyph{}
	for _, char := range Characters(text) {
		if len(samples) <= i {
			break
		} else if 0 <= i {
			glyphs = append(glyphs, Glyph{char, i, samples[i]})
		}
		i += advance
	}
	return glyphs
}
