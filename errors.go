package textpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// ErrNoSegments is returned when path data contains no drawing commands.
var ErrNoSegments = errors.New("no valid path commands found")

// ErrNoPathData is returned when a document contains no path element with path data.
var ErrNoPathData = errors.New("no path data found in SVG")

// MalformedNumberError is returned when the path data has a character at Pos that starts neither a command nor a number.
type MalformedNumberError struct {
	Pos       int
	Line, Col int
	Context   string
}

func newMalformedNumberError(data string, pos int) *MalformedNumberError {
	line, col, context := parse.Position(strings.NewReader(data), pos)
	return &MalformedNumberError{
		Pos:     pos,
		Line:    line,
		Col:     col,
		Context: context,
	}
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number at position %d (line %d, column %d)\n%s", e.Pos, e.Line, e.Col, e.Context)
}

// IncompleteCommandError is returned when a command has fewer numeric arguments than it needs.
type IncompleteCommandError struct {
	Cmd rune
}

func (e *IncompleteCommandError) Error() string {
	return fmt.Sprintf("incomplete '%c' command", e.Cmd)
}

// UnsupportedCommandError is returned for command letters other than M, C and Z (case-insensitive).
type UnsupportedCommandError struct {
	Cmd rune
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported path command: %c", e.Cmd)
}

// InvalidParameterError is returned for text parameters or edit arguments that have an invalid value.
type InvalidParameterError struct {
	Field string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
