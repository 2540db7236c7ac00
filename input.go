package comb

import (
	"fmt"
	"strings"
)

// Position of a point in the input, for error reporting.
//
// Line and Column are 1-based. Offset is the byte offset into the
// original source.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// Input is a read-only cursor over the unconsumed suffix of a source
// string.
//
// An Input never owns a copy of the text. Advancing yields a new Input
// sharing the same underlying source with a larger offset, so slicing
// is O(1) and repetition over an Input is linear in the bytes consumed.
// The zero Input is an empty, unnamed input.
type Input struct {
	filename string
	source   string
	offset   int
}

// NewInput returns an Input positioned at the start of text.
func NewInput(text string) Input {
	return Input{source: text}
}

// NewNamedInput is like NewInput but records a filename reported in
// Positions derived from the input.
func NewNamedInput(filename, text string) Input {
	return Input{filename: filename, source: text}
}

// Rest returns the unconsumed text.
func (i Input) Rest() string { return i.source[i.offset:] }

// Len returns the number of unconsumed bytes.
func (i Input) Len() int { return len(i.source) - i.offset }

// Empty reports whether all input has been consumed.
func (i Input) Empty() bool { return i.offset >= len(i.source) }

// Advance returns the input with n more bytes consumed. It panics if n
// is negative or larger than Len, since either would break the
// guarantee that every remainder is a suffix of its input.
func (i Input) Advance(n int) Input {
	if n < 0 || n > i.Len() {
		panic(fmt.Sprintf("comb: Advance(%d) outside remaining input (%d bytes)", n, i.Len()))
	}
	i.offset += n
	return i
}

// Position computes the line/column position of the cursor. The scan is
// proportional to the consumed prefix, so this is intended for error
// reporting, not per-step bookkeeping.
func (i Input) Position() Position {
	consumed := i.source[:i.offset]
	line := strings.Count(consumed, "\n") + 1
	column := i.offset - strings.LastIndexByte(consumed, '\n')
	return Position{
		Filename: i.filename,
		Offset:   i.offset,
		Line:     line,
		Column:   column,
	}
}

func (i Input) String() string { return i.Rest() }
