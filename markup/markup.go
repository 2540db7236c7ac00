// Package markup parses a small tag-delimited markup language into an
// element tree, using only the combinators from the comb package. It
// doubles as the reference consumer of the engine: everything here is
// plain composition of Literal, Identifier, Rune and the generic
// combinators.
//
// The concrete syntax is a simplified XML-like form:
//
//	<ident key="value" .../>
//	<ident key="value" ...> children... </ident>
//
// Attribute values are double-quoted and contain no escape sequences.
// Whitespace around elements and between attributes is insignificant.
// Closing tags must match their opening tag by name.
package markup

import (
	"unicode"

	"github.com/parserkit/comb"
)

// An Attribute is a single key="value" pair on an element.
type Attribute struct {
	Key   string
	Value string
}

// An Element is a named node with ordered attributes and ordered child
// elements. Both orders are document order; duplicate attribute keys
// are preserved, not collapsed.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []Element
}

// Document parses a single element, consuming insignificant whitespace
// around it. It is exported as a comb.Parser so markup can be embedded
// in larger grammars.
var Document comb.Parser[Element] = newDocumentParser()

// Parse parses text as a complete document: one root element and
// nothing but whitespace around it.
func Parse(text string) (Element, error) {
	return comb.ParseString(Document, text)
}

// ParseNamed is Parse with a filename recorded in error positions.
func ParseNamed(filename, text string) (Element, error) {
	return comb.ParseNamedString(Document, filename, text)
}

func newDocumentParser() comb.Parser[Element] {
	space0 := comb.ZeroOrMore(comb.Satisfy("whitespace", unicode.IsSpace))
	space1 := comb.OneOrMore(comb.Satisfy("whitespace", unicode.IsSpace))

	quoted := comb.Right(comb.Rune('"'),
		comb.Left(
			comb.Map(
				comb.ZeroOrMore(comb.Satisfy("string character", func(r rune) bool { return r != '"' })),
				func(rs []rune) string { return string(rs) },
			),
			comb.Rune('"')))

	attribute := comb.Map(
		comb.Pair(comb.Identifier, comb.Right(comb.Literal("="), quoted)),
		func(t comb.Tuple[string, string]) Attribute { return Attribute{Key: t.A, Value: t.B} })

	attributes := comb.ZeroOrMore(comb.Right(space1, attribute))

	// "<" name attributes, shared by both element forms.
	start := comb.Right(comb.Rune('<'), comb.Pair(comb.Identifier, attributes))

	toElement := func(t comb.Tuple[string, []Attribute]) Element {
		return Element{Name: t.A, Attributes: t.B}
	}

	single := comb.Map(
		comb.Left(start, comb.Right(space0, comb.Literal("/>"))),
		toElement)

	open := comb.Map(
		comb.Left(start, comb.Right(space0, comb.Literal(">"))),
		toElement)

	// Leading whitespace is consumed here rather than by the last child
	// so that childless parents like "<a>\n</a>" still close.
	closeTag := func(name string) comb.Parser[string] {
		return comb.Right(space0, comb.Right(comb.Literal("</"),
			comb.Left(
				comb.Pred(comb.Identifier, "closing tag </"+name+">",
					func(found string) bool { return found == name }),
				comb.Literal(">"))))
	}

	// element refers to itself through its children; Lazy breaks the
	// cycle during construction.
	var element comb.Parser[Element]
	self := comb.Lazy(func() comb.Parser[Element] { return element })

	parent := comb.AndThen(open, func(el Element) comb.Parser[Element] {
		return comb.Map(
			comb.Left(comb.ZeroOrMore(self), closeTag(el.Name)),
			func(children []Element) Element {
				el.Children = children
				return el
			})
	})

	element = comb.Right(space0, comb.Left(comb.Either(single, parent), space0))
	return element
}
