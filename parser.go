package comb

// A Parser consumes a prefix of its input and produces a value of type
// T.
//
// On success Parse returns the value, the unconsumed remainder (always
// a suffix of in) and a nil error. On failure it returns the zero
// value, the input at the point the failure occurred, and a non-nil
// error; a failing parser never consumes input, so for primitives the
// returned Input is identical to in. Sequencing combinators report the
// input their failing sub-parser was given, which tracks how far
// parsing progressed.
//
// Parsers must be pure: no internal mutable state, identical outcomes
// for identical inputs. Both primitives and combinators satisfy this
// interface, which is what makes them freely composable.
type Parser[T any] interface {
	Parse(in Input) (T, Input, error)
}

// Func adapts an ordinary function to the Parser interface, in the same
// way http.HandlerFunc adapts functions to http.Handler. All of the
// combinators in this package are implemented as Funcs.
type Func[T any] func(in Input) (T, Input, error)

func (f Func[T]) Parse(in Input) (T, Input, error) { return f(in) }

// ParseString runs p against text and requires it to consume the
// entire input. It is a convenience for whole-document parsers; use
// Parser.Parse directly when trailing input is acceptable.
func ParseString[T any](p Parser[T], text string) (T, error) {
	return parseAll(p, NewInput(text))
}

// ParseNamedString is ParseString with a filename recorded for error
// positions.
func ParseNamedString[T any](p Parser[T], filename, text string) (T, error) {
	return parseAll(p, NewNamedInput(filename, text))
}

func parseAll[T any](p Parser[T], in Input) (T, error) {
	v, rest, err := p.Parse(in)
	if err != nil {
		return v, err
	}
	if !rest.Empty() {
		var zero T
		return zero, Errorf(rest.Position(), "unexpected trailing input %q", truncate(rest.Rest()))
	}
	return v, nil
}

func truncate(s string) string {
	const max = 16
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
