package nec

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

// §8: NEC2, device 4, subdev -1, fnc 8, repeats 0. Verifies the
// leading burst pairs bit-exact against the worked scenario.
func TestNEC2Scenario(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	assert.Equal(t, uint16(0x006D), ctx.Prescaler)

	byteD := byte(pronto.ReverseBits(4, 8))
	byteS := byte(0xFF - 4)
	byteF := byte(pronto.ReverseBits(8, 8))

	assert.Equal(t, byte(0x20), byteD)
	assert.Equal(t, byte(0xFB), byteS)
	assert.Equal(t, byte(0x10), byteF)

	f := Frame{ByteD: byteD, ByteS: byteS, ByteF: byteF}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)

	code := pronto.Assemble(ctx, body, 0, false)
	words := strings.Fields(code)

	got := strings.Join(words[:7], " ")
	assert.Equal(t, "0000 006D 0000 0022 0150 00A8 0015", got)
}

// §8 invariant 4: sum of emitted cycles equals round(true_carrier *
// 0.108) within 1 cycle, for any NEC-variant button.
func TestNECFrameLength(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	for d := 0; d < 256; d += 37 {
		f := Frame{ByteD: byte(d), ByteS: byte(^d), ByteF: byte(d ^ 0xAA)}
		body, err := f.Encode(ctx)
		assert.NoError(t, err)
		sum := 0
		for _, w := range body {
			sum += int(w)
		}
		assert.InDelta(t, ctx.FrameCycles(FrameMs), sum, 1, fmt.Sprintf("device %d", d))
	}
}

func TestSamsungNECxLeadIn(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteD: 1, ByteS: 2, ByteF: 3, NECx: true}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)
	assert.Equal(t, ctx.FrameCycles(FrameMs), func() int {
		s := 0
		for _, w := range body {
			s += int(w)
		}
		return s
	}())
}
