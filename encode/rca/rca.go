// Package rca encodes the RCA protocol: a lead-in, MSB-first D/F/~D/~F
// fields and a fixed trailer.
package rca

import "github.com/sparques/pronto"

// UnitCycles is RCA's basic time unit, in master-clock cycles.
const UnitCycles = 28

// Carrier is RCA's carrier frequency.
const Carrier = 56700

var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 2, HighMark: 1, HighSpace: 4}

// Frame is the validated byte layout an RCA button encodes to.
type Frame struct {
	ByteD byte // 4 bits
	ByteF byte // 8 bits
}

// Encode implements RCA's framing: lead-in, D:4, F:8, ~D:4, ~F:8 all
// MSB-first, then a fixed trailer space.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	ctx.MakeBurst(&body, 8, 8)

	ctx.PDMBurstsMSB(&body, 4, uint32(f.ByteD), timing)
	ctx.PDMBurstsMSB(&body, 8, uint32(f.ByteF), timing)
	ctx.PDMBurstsMSB(&body, 4, uint32(^f.ByteD)&0xF, timing)
	ctx.PDMBurstsMSB(&body, 8, uint32(^f.ByteF)&0xFF, timing)

	ctx.MakeBurst(&body, 1, 16)
	return body, nil
}
