// Package comb provides composable parsing primitives for building
// recursive-descent parsers without a separate lexer.
//
// A parser is any value implementing Parser[T]: a pure function from an
// Input to a parsed value of type T plus the unconsumed remainder, or an
// error pinned to the position where matching stopped. Primitives
// (Literal, Identifier, Rune, Satisfy) read input directly; combinators
// (Pair, Map, ZeroOrMore, OneOrMore, Either, ...) take parsers and
// return new parsers. Because both sides of that bargain are the same
// Parser[T] interface, grammars of arbitrary depth are built by plain
// function composition:
//
//	tag := comb.Pair(comb.Pair(comb.Literal("<"), comb.Identifier), comb.Literal(">"))
//	value, rest, err := tag.Parse(comb.NewInput("<demo-id>"))
//
// Failure is a returned value, never a panic. A failed parser never
// consumes input: the Input returned alongside a non-nil error is
// exactly the Input the failing parser was given, so positional error
// messages fall out of comparing offsets.
//
// Input is a cursor into an immutable string, advanced by re-slicing
// rather than copying, so repetition combinators are linear in the
// amount of text consumed.
//
// Parsers hold no mutable state. The same composite parser value can be
// reused across calls and shared between goroutines parsing independent
// inputs.
package comb
