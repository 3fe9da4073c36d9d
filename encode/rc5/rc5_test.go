package rc5

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

// §8: RC5, device 5, fnc 35 (0x23). D's half-bit groupings are
// "1010011001" and F's are "011010100101" under RC5's high="01"
// convention.
func TestRC5FieldManchesterGroupings(t *testing.T) {
	var d, f strings.Builder
	pronto.AppendBiphase(&d, 5, 5, false)
	pronto.AppendBiphase(&f, 35, 6, false)
	assert.Equal(t, "1010011001", d.String())
	assert.Equal(t, "011010100101", f.String())
}

func TestRC5FrameLength(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteD: 5, ByteF: 35}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)

	sum := 0
	for _, w := range body {
		sum += int(w)
	}
	assert.InDelta(t, ctx.FrameCycles(FrameMs), sum, 1)
}

func TestRC5ToggleChangesEncoding(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f1 := Frame{ByteD: 5, ByteF: 35, Toggle: false}
	f2 := Frame{ByteD: 5, ByteF: 35, Toggle: true}

	b1, err := f1.Encode(ctx)
	assert.NoError(t, err)
	b2, err := f2.Encode(ctx)
	assert.NoError(t, err)

	assert.NotEqual(t, b1, b2)
}
