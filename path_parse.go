package textpath

import (
	"errors"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrSubpath is returned when path data starts a second subpath, which a path cannot represent.
var ErrSubpath = errors.New("path data has more than one subpath")

type pathToken struct {
	cmd rune // zero for numbers
	num float64
	pos int
}

// skipCommaWhitespace returns the number of bytes of commas and Unicode whitespace at the start of path.
func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) {
		r, n := utf8.DecodeRune(path[i:])
		if r != ',' && !unicode.IsSpace(r) {
			break
		}
		i += n
	}
	return i
}

// parseNum parses the number at the start of path and returns the number of bytes it spans, which is zero for a malformed or non-finite number. A decimal point must be followed by a digit.
func parseNum(path []byte) (float64, int) {
	_, n := parseStrconv.ParseFloat(path)
	if n == 0 {
		return 0.0, 0
	}
	for j, c := range path[:n] {
		if c == '.' && (n <= j+1 || path[j+1] < '0' || '9' < path[j+1]) {
			return 0.0, 0
		}
	}

	// parse/v2 loses precision for long mantissas, only its length is used
	f, err := strconv.ParseFloat(string(path[:n]), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0.0, 0
	}
	return f, n
}

// tokenizePath splits path data into command letters and numbers.
func tokenizePath(data string) ([]pathToken, error) {
	path := []byte(data)
	tokens := []pathToken{}
	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		if r, n := utf8.DecodeRune(path[i:]); unicode.IsLetter(r) {
			tokens = append(tokens, pathToken{cmd: r, pos: i})
			i += n
			continue
		}
		f, n := parseNum(path[i:])
		if n == 0 {
			return nil, newMalformedNumberError(data, i)
		}
		tokens = append(tokens, pathToken{num: f, pos: i})
		i += n
	}
	return tokens, nil
}

type pathParser struct {
	tokens []pathToken
	i      int
	segs   []Segment
	pos    Point // current position
}

// numbers returns true if at least n numbers follow.
func (z *pathParser) numbers(n int) bool {
	if len(z.tokens) < z.i+n {
		return false
	}
	for _, t := range z.tokens[z.i : z.i+n] {
		if t.cmd != 0 {
			return false
		}
	}
	return true
}

// atNumber returns true if the next token is a number.
func (z *pathParser) atNumber() bool {
	return z.i < len(z.tokens) && z.tokens[z.i].cmd == 0
}

// point consumes a coordinate pair, relative to the current position if rel is set.
func (z *pathParser) point(rel bool) Point {
	p := Point{z.tokens[z.i].num, z.tokens[z.i+1].num}
	z.i += 2
	if rel {
		p = p.Add(z.pos)
	}
	return p
}

func (z *pathParser) emit(seg Segment) {
	z.segs = append(z.segs, seg)
	z.pos = seg.End()
}

func (z *pathParser) moveTo(cmd rune) error {
	if 0 < len(z.segs) {
		return ErrSubpath
	} else if !z.numbers(2) {
		return &IncompleteCommandError{cmd}
	}
	rel := cmd == 'm'
	z.emit(MoveTo{z.point(rel)})

	// implicit line-to, converted to linear cubic Béziers
	for z.atNumber() {
		if !z.numbers(2) {
			return &IncompleteCommandError{cmd}
		}
		start := z.pos
		z.emit(LinearCubeTo(start, z.point(rel)))
	}
	return nil
}

func (z *pathParser) cubeTo(cmd rune) error {
	rel := cmd == 'c'
	for z.atNumber() {
		if !z.numbers(6) {
			return &IncompleteCommandError{cmd}
		}
		if len(z.segs) == 0 {
			z.emit(MoveTo{})
		}
		// relative points are all with respect to the start of the segment
		start := z.pos
		p1 := z.point(false)
		p2 := z.point(false)
		p3 := z.point(false)
		if rel {
			p1, p2, p3 = p1.Add(start), p2.Add(start), p3.Add(start)
		}
		z.emit(CubeTo{p1, p2, p3})
	}
	return nil
}

// ParsePath parses path data consisting of the commands M, m, C, c, Z and z. Coordinate pairs following a M or m are implicit line-to commands and are converted to linear cubic Béziers, while coordinates following a C or c repeat the command. A cubic Bézier without a preceding move starts at the origin. Z and z are accepted but do not close the path.
func ParsePath(data string) (*Path, error) {
	tokens, err := tokenizePath(data)
	if err != nil {
		return nil, err
	}

	z := &pathParser{tokens: tokens}
	for z.i < len(z.tokens) {
		t := z.tokens[z.i]
		z.i++
		switch t.cmd {
		case 'M', 'm':
			err = z.moveTo(t.cmd)
		case 'C', 'c':
			err = z.cubeTo(t.cmd)
		case 'Z', 'z':
			// TODO: close the path by a line back to the MoveTo once the path model supports it
		case 0:
			// number without a preceding command
			err = &UnsupportedCommandError{rune(data[t.pos])}
		default:
			err = &UnsupportedCommandError{t.cmd}
		}
		if err != nil {
			return nil, err
		}
	}
	if len(z.segs) == 0 {
		return nil, ErrNoSegments
	}
	return &Path{z.segs}, nil
}

// MustParsePath parses path data and panics on error.
func MustParsePath(data string) *Path {
	p, err := ParsePath(data)
	if err != nil {
		panic(err)
	}
	return p
}
