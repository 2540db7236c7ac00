package comb

import (
	"fmt"
	"io"
)

// Trace wraps p so that every invocation writes the attempted position
// and its outcome to w, tagged with name. The wrapped parser is
// otherwise transparent: values, remainders and failures pass through
// unchanged.
//
// Tracing is a debugging aid for grammar authors; it is the one place
// a parser performs I/O, so traced parsers should not be shared between
// goroutines unless w is safe for concurrent writes.
func Trace[T any](w io.Writer, name string, p Parser[T]) Parser[T] {
	return Func[T](func(in Input) (T, Input, error) {
		fmt.Fprintf(w, "%s: try %s %q\n", name, in.Position(), truncate(in.Rest()))
		v, rest, err := p.Parse(in)
		if err != nil {
			fmt.Fprintf(w, "%s: fail %s\n", name, err)
		} else {
			fmt.Fprintf(w, "%s: ok, %d bytes\n", name, in.Len()-rest.Len())
		}
		return v, rest, err
	})
}
