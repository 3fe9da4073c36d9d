package sony

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

// §8: SONY12, device 1, fnc 46, repeats 2. Lead-in (4,-1); after the
// body the last space is absorbed into the lead-out pad.
func TestSony12LastSpaceAbsorbed(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteF: 46, ByteD: 1, DBits: 5}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)

	// lead-in(2) + F:7(14) + D:5(10) = 26 words; the last of those 26
	// is overwritten, not appended to, so len(body) stays 26.
	assert.Equal(t, 26, len(body))

	sum := 0
	for _, w := range body {
		sum += int(w)
	}
	assert.InDelta(t, ctx.FrameCycles(FrameMs), sum, 1)
}

func TestSony20ExtensionByte(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteF: 1, ByteD: 1, DBits: 5, Extension: true, ByteE: 0x7F}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)
	// lead-in(2) + F:7(14) + D:5(10) + E:8(16) = 42 words
	assert.Equal(t, 42, len(body))
}
