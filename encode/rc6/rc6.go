// Package rc6 encodes the RC6 family: RC6-0-16, RC6-6-20 (Sky) and
// RC6-6-32/MCE, which share a lead-in, a start bit, a 3-bit mode
// field and a double-width toggle bit ahead of their per-variant data
// fields.
package rc6

import (
	"strings"

	"github.com/sparques/pronto"
)

// UnitCycles is RC6's basic time unit, in master-clock cycles.
const UnitCycles = 16

// Carrier is RC6's carrier frequency.
const Carrier = 36000

// FrameMs is the fixed total frame length RC6 frames are padded to.
const FrameMs = 106.667

// Variant selects which of the three RC6 data-field layouts to emit.
type Variant int

const (
	V0_16 Variant = iota
	V6_20
	V6_32 // also MCE
)

// Frame is the validated byte layout an RC6-family button encodes to.
type Frame struct {
	Variant Variant
	ByteD   byte
	ByteS   byte // used by V6_20 (4 bits) and V6_32 (8 bits, OEM2)
	ByteF   byte

	// MCEToggle is the long-lived MCE alternation bit (§5), written
	// into bit 7 of the device byte for V6_32. Unused otherwise.
	MCEToggle bool
}

func modeValue(v Variant) uint32 {
	if v == V0_16 {
		return 0b000
	}
	return 0b110
}

// Encode implements RC6's framing: a lead-in burst, then a Manchester
// stream of start bit, mode field, toggle bit and the variant's data
// fields, collapsed through the family's double-width trailer-bit
// quirk (pronto.Context.ManchesterToPronto's weirdRC6 mode), then a
// lead-out pad to FrameMs.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	cycles := ctx.MakeBurst(&body, 6, 2)

	var acc strings.Builder
	pronto.AppendBiphase(&acc, 1, 1, true)             // start bit, always 1
	pronto.AppendBiphase(&acc, modeValue(f.Variant), 3, true)
	pronto.AppendBiphase(&acc, 0, 1, true) // toggle bit; always 0 (§9 Open Questions)

	switch f.Variant {
	case V0_16:
		pronto.AppendBiphase(&acc, uint32(f.ByteD), 8, true)
		pronto.AppendBiphase(&acc, uint32(f.ByteF), 8, true)
	case V6_20:
		pronto.AppendBiphase(&acc, uint32(f.ByteD), 8, true)
		pronto.AppendBiphase(&acc, uint32(f.ByteS), 4, true)
		pronto.AppendBiphase(&acc, uint32(f.ByteF), 8, true)
	case V6_32:
		d := f.ByteD &^ 0x80
		if f.MCEToggle {
			d |= 0x80
		}
		pronto.AppendBiphase(&acc, 0x80, 8, true) // OEM1
		pronto.AppendBiphase(&acc, uint32(f.ByteS), 8, true) // OEM2
		pronto.AppendBiphase(&acc, uint32(d), 8, true)
		pronto.AppendBiphase(&acc, uint32(f.ByteF), 8, true)
	}

	cycles += ctx.ManchesterToPronto(&body, acc.String(), true)
	ctx.AppendCycles(&body, ctx.FrameCycles(FrameMs)-cycles)
	return body, nil
}
