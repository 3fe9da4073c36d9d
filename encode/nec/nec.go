// Package nec encodes the NEC family of IR protocols: NEC, NEC2, LG,
// SAMSUNG (NECx2 lead-in), SHARP, DENON-NEC and PIONEER (which shares
// NEC2's framing but a dual carrier, see pronto.NewPioneerContext).
package nec

import "github.com/sparques/pronto"

// UnitCycles is the NEC family's basic time unit, in master-clock
// cycles ("k" in §4.3).
const UnitCycles = 21

// Carrier is the NEC family's carrier frequency. PIONEER uses
// pronto.NewPioneerContext instead of pronto.NewContext(Carrier, ...).
const Carrier = 38000

// FrameMs is the fixed total frame length NEC-family frames are
// padded out to.
const FrameMs = 108

// Frame is the validated, LSB-first byte layout an NEC-family button
// encodes to.
type Frame struct {
	ByteD, ByteS, ByteF byte
	// NECx selects the short (8,-8) lead-in used by SAMSUNG's NECx2
	// variant instead of the standard (16,-8) lead-in.
	NECx bool
}

var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

// Encode implements the NEC family's framing: a lead-in pulse, four
// LSB-first data bytes (D, S, F, ~F), a single trailing mark, and a
// lead-out pad bringing the frame to FrameMs.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	cycles := 0

	if f.NECx {
		cycles += ctx.MakeBurst(&body, 8, 8)
	} else {
		cycles += ctx.MakeBurst(&body, 16, 8)
	}

	cycles += ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteD), timing)
	cycles += ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteS), timing)
	cycles += ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteF), timing)
	cycles += ctx.PDMBurstsLSB(&body, 8, uint32(^f.ByteF), timing)

	cycles += ctx.AppendUnit(&body, 1)

	ctx.AppendCycles(&body, ctx.FrameCycles(FrameMs)-cycles)
	return body, nil
}
