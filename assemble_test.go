package pronto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAssemblePreambleWords(t *testing.T) {
	ctx := NewContext(38000, 21)
	body := Body{1, 2, 3, 4}
	code := Assemble(ctx, body, 0, false)
	words := strings.Fields(code)
	assert.Equal(t, "0000", words[0])
	assert.Equal(t, "006D", words[1])
	assert.Equal(t, "0000", words[2])
	assert.Equal(t, "0002", words[3])
	assert.Len(t, words, 4+4)
}

func TestAssembleRepeatsDuplicateBody(t *testing.T) {
	ctx := NewContext(38000, 21)
	body := Body{1, 2, 3, 4}
	code := Assemble(ctx, body, 2, false)
	words := strings.Fields(code)
	assert.Len(t, words, 4+4*3)
}

func TestAssembleJVCRepeatSkipsLeadIn(t *testing.T) {
	ctx := NewContext(38000, 20)
	body := Body{0x150, 0x0A8, 1, 2, 3, 4}
	code := Assemble(ctx, body, 1, true)
	words := strings.Fields(code)
	// preamble(4) + first copy(6) + repeat copy minus lead-in(4)
	assert.Len(t, words, 4+6+4)
}

// Every word in an assembled code is a 4-hex uppercase integer (§8
// invariant 2), and the total body word count is always even (§8
// invariant 3).
func TestAssembleWordsAreHexAndEven(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		body := make(Body, n*2)
		for i := range body {
			body[i] = uint16(rapid.IntRange(0, 0xFFFF).Draw(t, "word"))
		}
		repeats := rapid.IntRange(0, 5).Draw(t, "repeats")
		ctx := NewContext(38000, 21)
		code := Assemble(ctx, body, repeats, false)
		words := strings.Fields(code)
		assert.True(t, len(words)%2 == 0)
		for _, w := range words {
			assert.Len(t, w, 4)
			assert.Equal(t, strings.ToUpper(w), w)
		}
	})
}
