// Package sony encodes the Sony family: SONY12, SONY15 and SONY20,
// which differ only in device-field width and whether a subdevice
// extension byte is sent.
package sony

import "github.com/sparques/pronto"

// UnitCycles is the Sony family's basic time unit, in master-clock
// cycles.
const UnitCycles = 24

// Carrier is the Sony family's carrier frequency.
const Carrier = 40000

// FrameMs is the fixed total frame length Sony frames are padded to.
const FrameMs = 45

var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 2, HighSpace: 1}

// Frame is the validated byte layout a Sony button encodes to.
type Frame struct {
	ByteF byte // 7 bits
	ByteD byte
	DBits int // 5 for SONY12/SONY20, 8 for SONY15

	Extension bool // SONY20
	ByteE     byte
}

// Encode implements the Sony family's framing: a lead-in, F:7 then
// D:DBits then (SONY20 only) E:8, all LSB-first. The last data bit's
// space is not followed by a separate lead-out word — it is
// overwritten in place with the pad needed to reach FrameMs.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	cycles := ctx.MakeBurst(&body, 4, 1)

	cycles += ctx.PDMBurstsLSB(&body, 7, uint32(f.ByteF), timing)
	cycles += ctx.PDMBurstsLSB(&body, f.DBits, uint32(f.ByteD), timing)
	if f.Extension {
		cycles += ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteE), timing)
	}

	last := len(body) - 1
	lastSpace := int(body[last])
	pad := ctx.FrameCycles(FrameMs) - (cycles - lastSpace)
	if pad < 0 {
		pad = 0
	}
	body[last] = uint16(pad)
	return body, nil
}
