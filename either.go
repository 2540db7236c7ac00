package comb

// Either tries each parser in order against the same input and returns
// the first success. Failed alternatives never consume input, so every
// alternative is tried from the same position.
//
// On total failure the last alternative's failure is returned. There is
// no ranking of alternative failures and no recovery; Either is plain
// ordered choice.
func Either[T any](parsers ...Parser[T]) Parser[T] {
	return Func[T](func(in Input) (T, Input, error) {
		if len(parsers) == 0 {
			return failf[T](in, "no alternatives")
		}
		var (
			v    T
			rest Input
			err  error
		)
		for _, p := range parsers {
			v, rest, err = p.Parse(in)
			if err == nil {
				return v, rest, nil
			}
		}
		var zero T
		return zero, in, err
	})
}

// Lazy defers construction of a parser until it is first used, which
// lets a grammar refer to itself:
//
//	var element comb.Parser[Element]
//	children := comb.ZeroOrMore(comb.Lazy(func() comb.Parser[Element] { return element }))
//	element = ...
//
// build is called on every Parse; it should be a cheap closure over an
// already-constructed parser variable.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return Func[T](func(in Input) (T, Input, error) {
		return build().Parse(in)
	})
}
