package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	tag := Pair(Pair(Literal("<"), Identifier), Literal(">"))
	v, rest, err := tag.Parse(NewInput("<demo-id>"))
	assert.NoError(t, err)
	assert.Equal(t, Tuple[Tuple[string, string], string]{
		A: Tuple[string, string]{A: "<", B: "demo-id"},
		B: ">",
	}, v)
	assert.Equal(t, "", rest.Rest())
}

func TestPairFirstFails(t *testing.T) {
	in := NewInput("demo-id>")
	tag := Pair(Literal("<"), Identifier)
	_, rest, err := tag.Parse(in)
	assert.Error(t, err)
	// p2 is never tried; the failure is at the original input.
	assert.Equal(t, in, rest)
}

func TestPairSecondFailsAfterConsumption(t *testing.T) {
	tag := Pair(Literal("<"), Identifier)
	_, rest, err := tag.Parse(NewInput("<123>"))
	assert.Error(t, err)
	// The failure tracks how far parsing progressed: past "<", at the
	// input Identifier was given. No backtracking.
	assert.Equal(t, "123>", rest.Rest())
	assert.Equal(t, 1, rest.Position().Offset)
}

func TestLeftRight(t *testing.T) {
	name := Right(Literal("<"), Left(Identifier, Literal(">")))
	v, rest, err := name.Parse(NewInput("<demo-id> tail"))
	assert.NoError(t, err)
	assert.Equal(t, "demo-id", v)
	assert.Equal(t, " tail", rest.Rest())
}

func TestRightDropsConsumptionNotInput(t *testing.T) {
	p := Right(Literal("a"), Literal("b"))
	v, rest, err := p.Parse(NewInput("abc"))
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, "c", rest.Rest())
}
