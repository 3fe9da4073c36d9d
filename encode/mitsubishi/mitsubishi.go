// Package mitsubishi encodes the (plain, non-Kaseikyo) MITSUBISHI
// protocol: a lead-in-free D:8,F:8 PDM frame with a fixed trailer.
package mitsubishi

import "github.com/sparques/pronto"

// UnitCycles is MITSUBISHI's basic time unit, in master-clock cycles.
const UnitCycles = 10

// Carrier is MITSUBISHI's carrier frequency.
const Carrier = 32600

var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 3, HighMark: 1, HighSpace: 7}

// Frame is the validated byte layout a MITSUBISHI button encodes to.
type Frame struct {
	ByteD, ByteF byte
}

// Encode implements MITSUBISHI's framing: D:8, F:8 LSB-first, then a
// fixed trailer space.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteD), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteF), timing)
	ctx.MakeBurst(&body, 1, 80)
	return body, nil
}
