// Package jvc encodes the JVC protocol: a lead-in, D:8,F:8 PDM data
// and a fixed trailer. JVC's "lead-in only on the first frame of a
// repeat group" exception (§4.3) is handled by the assembler, not
// here — every frame this package encodes includes its lead-in, and
// pronto.Assemble strips it from copies after the first when told to.
package jvc

import "github.com/sparques/pronto"

// UnitCycles is JVC's basic time unit, in master-clock cycles.
const UnitCycles = 20

// Carrier is JVC's carrier frequency.
const Carrier = 38000

var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

// Frame is the validated byte layout a JVC button encodes to.
type Frame struct {
	ByteD, ByteF byte
}

// Encode implements JVC's framing: lead-in, D:8, F:8 LSB-first, then
// a fixed trailer space.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	ctx.MakeBurst(&body, 16, 8)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteD), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteF), timing)
	ctx.MakeBurst(&body, 1, 45)
	return body, nil
}
