package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A hand-written Func is interchangeable with the built-in parsers.
func TestFuncAdapter(t *testing.T) {
	digits := Func[string](func(in Input) (string, Input, error) {
		rest := in.Rest()
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end == 0 {
			return failf[string](in, "expected digits")
		}
		return rest[:end], in.Advance(end), nil
	})

	p := Pair(digits, Literal("px"))
	v, rest, err := p.Parse(NewInput("42px;"))
	assert.NoError(t, err)
	assert.Equal(t, Tuple[string, string]{A: "42", B: "px"}, v)
	assert.Equal(t, ";", rest.Rest())
}

func TestParseString(t *testing.T) {
	v, err := ParseString(Identifier, "demo-id")
	assert.NoError(t, err)
	assert.Equal(t, "demo-id", v)
}

func TestParseStringTrailingInput(t *testing.T) {
	_, err := ParseString(Identifier, "demo-id>")
	assert.Error(t, err)
	perr, ok := err.(Error)
	assert.True(t, ok)
	assert.Equal(t, 7, perr.Position().Offset)
}

func TestParseNamedString(t *testing.T) {
	_, err := ParseNamedString(Literal("<"), "doc.mk", "oops")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "doc.mk:1:1")
}

// The same composite parser value is reusable and yields identical
// outcomes for identical inputs.
func TestParserReuse(t *testing.T) {
	p := Pair(Literal("<"), Identifier)
	for i := 0; i < 3; i++ {
		v, rest, err := p.Parse(NewInput("<demo-id>"))
		assert.NoError(t, err)
		assert.Equal(t, Tuple[string, string]{A: "<", B: "demo-id"}, v)
		assert.Equal(t, ">", rest.Rest())
	}
}
