package pronto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// RC5 device=5, fnc=35(0x23): §8 gives the expected half-bit strings
// for the start/toggle prefix and the D/F fields.
func TestAppendBiphaseRC5Prefix(t *testing.T) {
	var acc strings.Builder
	AppendBiphase(&acc, 1, 1, false) // start bit 1
	AppendBiphase(&acc, 1, 1, false) // start bit 2
	AppendBiphase(&acc, 0, 1, false) // toggle = 0
	assert.Equal(t, "010110", acc.String())
}

func TestAppendBiphaseRC5Fields(t *testing.T) {
	var d, f strings.Builder
	AppendBiphase(&d, 5, 5, false)
	assert.Equal(t, "1010011001", d.String())

	AppendBiphase(&f, 35, 6, false)
	assert.Equal(t, "011010100101", f.String())
}

func TestManchesterToProntoEndsOnMark(t *testing.T) {
	ctx := NewContext(36000, 32)
	var body Body
	// "0110" collapses to a single mark, a double-width space and a
	// single mark: three bursts, already ending on a mark, so no
	// correction burst is appended. Verify the resulting body has odd
	// length (ends on a mark) and starts with a non-zero mark.
	ctx.ManchesterToPronto(&body, "0110", false)
	assert.True(t, len(body)%2 == 1)
	assert.NotZero(t, body[0])
}

func TestRC6TrailerWidth(t *testing.T) {
	assert.Equal(t, 3.0, rc6TrailerWidth(7, 1))  // position 8 (1-indexed)
	assert.Equal(t, 2.0, rc6TrailerWidth(8, 1))  // position 9
	assert.Equal(t, 3.0, rc6TrailerWidth(9, 1))  // position 10
	assert.Equal(t, 1.0, rc6TrailerWidth(10, 1)) // position 11, reverts
}
