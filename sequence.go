package comb

// A Tuple holds the ordered results of two sequenced parsers.
type Tuple[A, B any] struct {
	A A
	B B
}

// Pair sequences two parsers, keeping both results.
//
// If p1 fails the failure is reported at the original input and p2 is
// never tried. If p2 fails the failure is reported at the input p2 was
// given, after p1's consumption; p1 is not backtracked. The asymmetry
// is deliberate: failure positions track how far parsing progressed.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return Func[Tuple[A, B]](func(in Input) (Tuple[A, B], Input, error) {
		a, rest, err := p1.Parse(in)
		if err != nil {
			return Tuple[A, B]{}, rest, err
		}
		b, rest2, err := p2.Parse(rest)
		if err != nil {
			return Tuple[A, B]{}, rest2, err
		}
		return Tuple[A, B]{A: a, B: b}, rest2, nil
	})
}

// Left sequences two parsers and keeps only the first result. The
// second parser must still succeed and its consumption is kept.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A { return t.A })
}

// Right sequences two parsers and keeps only the second result.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B { return t.B })
}
