package comb

// ZeroOrMore applies p repeatedly, collecting the results in order and
// advancing past each match. It stops at p's first failure and succeeds
// with whatever was collected, so it never fails: zero matches yield a
// nil slice and the untouched input.
//
// p must consume input on every success. Repeating a parser that can
// succeed on nothing will not terminate; guaranteeing progress is the
// grammar's obligation, not something the engine detects.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(in Input) ([]T, Input, error) {
		var out []T
		for {
			v, rest, err := p.Parse(in)
			if err != nil {
				return out, in, nil
			}
			out = append(out, v)
			in = rest
		}
	})
}

// OneOrMore is ZeroOrMore with a minimum of one match. If the first
// attempt fails the whole combinator fails at the original input, so
// the failure is pinned to where repetition was entered rather than to
// anything p consumed while failing.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	more := ZeroOrMore(p)
	return Func[[]T](func(in Input) ([]T, Input, error) {
		first, next, err := p.Parse(in)
		if err != nil {
			return failf[[]T](in, "expected at least one match")
		}
		out, next, _ := more.Parse(next)
		return append([]T{first}, out...), next, nil
	})
}
