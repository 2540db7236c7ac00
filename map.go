package comb

// Map transforms the result of a successful parse with f, leaving the
// remainder untouched. Failures pass through unchanged and f is never
// called for them.
//
// f must be total over A. A transformation that can itself reject its
// input belongs in the grammar as a parser (see Pred), not as a
// panicking map function.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Func[B](func(in Input) (B, Input, error) {
		a, rest, err := p.Parse(in)
		if err != nil {
			var zero B
			return zero, rest, err
		}
		return f(a), rest, nil
	})
}

// AndThen runs p, then uses its result to choose the parser for the
// rest of the input. This is the engine's only data-dependent
// combinator; a grammar needs it when later syntax must agree with
// earlier content, such as a closing tag matching its opening tag.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Func[B](func(in Input) (B, Input, error) {
		a, rest, err := p.Parse(in)
		if err != nil {
			var zero B
			return zero, rest, err
		}
		return f(a).Parse(rest)
	})
}

// Pred filters a successful parse: if keep rejects the value the parser
// fails at the input it was entered with, consuming nothing. desc names
// what was expected, for error messages.
func Pred[T any](p Parser[T], desc string, keep func(T) bool) Parser[T] {
	return Func[T](func(in Input) (T, Input, error) {
		v, rest, err := p.Parse(in)
		if err != nil {
			return v, rest, err
		}
		if !keep(v) {
			return failf[T](in, "expected %s", desc)
		}
		return v, rest, nil
	})
}
