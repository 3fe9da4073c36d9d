package denonsharp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

// §8: the SHARP variant's ext field is 0b01, which after LSB-first
// transmission reads as "10" — the bit-level reversal lives in
// pronto/validate, not here; this package just encodes whatever Ext
// byte it is given, plus its complement in the second frame.
func TestDenonSharpTwoFrameComplement(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteD: 0x05, ByteF: 0x12, Ext: 0x2}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)

	// frame1: D:5(10)+F:8(16)+ext:2(4) = 30, gap(2), frame2 same shape(30)
	assert.Equal(t, 30+2+30, len(body))
}
