// Package denonsharp encodes the older, non-Kaseikyo two-frame
// DENON/SHARP PDM protocol: two back-to-back frames, the second
// carrying the complement of the function and extension fields.
package denonsharp

import "github.com/sparques/pronto"

// UnitCycles is this protocol's basic time unit, in master-clock
// cycles.
const UnitCycles = 10

// Carrier is this protocol's carrier frequency.
const Carrier = 38000

// The table in §4.3 gives this protocol's framing but not its mark
// timing; it is modeled on the same low/high ratio every other PDM
// family in this codec uses (NEC, Kaseikyo), documented in DESIGN.md.
var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

// Frame is the validated byte layout a DENON/SHARP button encodes to.
// Ext is the protocol's 2-bit extension field: 0b00 for DENON, 0b01
// for the SHARP variant of this family.
type Frame struct {
	ByteD byte // 5 bits
	ByteF byte // 8 bits
	Ext   byte // 2 bits
}

// Encode implements the two-frame layout: frame1 = D:5,F:8,ext:2;
// a fixed inter-frame gap; frame2 = D:5,~F:8,~ext:2.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body

	ctx.PDMBurstsLSB(&body, 5, uint32(f.ByteD), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteF), timing)
	ctx.PDMBurstsLSB(&body, 2, uint32(f.Ext), timing)

	ctx.MakeBurst(&body, 1, 165)

	ctx.PDMBurstsLSB(&body, 5, uint32(f.ByteD), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(^f.ByteF)&0xFF, timing)
	ctx.PDMBurstsLSB(&body, 2, uint32(^f.Ext)&0x3, timing)

	return body, nil
}
