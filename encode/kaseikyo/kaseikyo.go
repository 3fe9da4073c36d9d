// Package kaseikyo encodes the Kaseikyo family of 48-bit-framed IR
// protocols — PANASONIC, JVC48 and DENON-K, plus the four variants
// (FUJITSU, SHARPDVD, TEAC-K, MITSUBISHI-K) the family table declares
// but whose data layout is a documented stub (see DESIGN.md).
package kaseikyo

import "github.com/sparques/pronto"

// UnitCycles is the Kaseikyo family's basic time unit. SHARPDVD uses
// 15 instead, see §4.3.
const UnitCycles = 16

// Carrier is the Kaseikyo family's carrier frequency. SHARPDVD uses
// 38000 instead.
const Carrier = 36700

var timing = pronto.PDMTiming{LowMark: 1, LowSpace: 1, HighMark: 1, HighSpace: 3}

// OEMTable gives each Kaseikyo-family member's two-byte OEM ID.
// PANASONIC's pair is confirmed against the literal test vector in
// §8; the rest have no such vector in this codec's source material
// and are documented best-effort defaults (§9 Open Questions) — a
// caller with a better value for one of them should construct Frame
// directly instead of going through these defaults.
var OEMTable = map[pronto.Tag][2]byte{
	pronto.PANASONIC: {0x02, 0x20},
	pronto.JVC48:     {0x01, 0x08},
	pronto.DENONK:    {0x02, 0x20},
	pronto.FUJITSU:   {0x14, 0x63},
	pronto.SHARPDVD:  {0x5A, 0xAA},
	pronto.TEACK:     {0x43, 0xAB},
	pronto.MITSUK:    {0xCB, 0x23},
}

// Frame is the validated, LSB-first byte layout a Kaseikyo-family
// button encodes to: an OEM ID pair, an optional extra "X" byte used
// by the "-56" sub-variants, the D/S/F payload bytes, and an optional
// trailing XOR checksum.
type Frame struct {
	OEMm, OEMn byte

	XByte    byte
	XPresent bool

	ByteD, ByteS, ByteF byte

	// NoChecksum omits the trailing XOR(D,S,F[,X]) byte — FUJITSU's
	// stub layout (§1, §9).
	NoChecksum bool

	// TrailerSpace overrides the trailer's space length in basic time
	// units; zero means the family default of 173. FUJITSU uses 110.
	TrailerSpace float64
}

// PackDenonK repacks DENON-K's device:4, subdevice:4, function:12
// fields into the family's three payload bytes. The source's own
// comment is uncertain whether device/subdevice truly map to Genre1/
// Genre2 this way; this layout is kept as the documented default
// (§9 Open Questions, DESIGN.md).
func PackDenonK(device, subdevice, function uint32) (b0, b1, b2 byte) {
	b0 = byte(device&0xF) | byte(subdevice&0xF)<<4
	b1 = byte(function & 0xF)
	b2 = byte((function >> 4) & 0xFF)
	return
}

// Encode implements the Kaseikyo family's framing: a lead-in, the OEM
// ID bytes, the optional X byte, the D/S/F payload, an optional
// checksum, and a trailer space.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body

	ctx.MakeBurst(&body, 8, 4)

	ctx.PDMBurstsLSB(&body, 8, uint32(f.OEMm), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.OEMn), timing)
	if f.XPresent {
		ctx.PDMBurstsLSB(&body, 8, uint32(f.XByte), timing)
	}
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteD), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteS), timing)
	ctx.PDMBurstsLSB(&body, 8, uint32(f.ByteF), timing)

	if !f.NoChecksum {
		chk := pronto.XOR8(f.ByteD, f.ByteS, f.ByteF)
		if f.XPresent {
			chk = pronto.XOR8(chk, f.XByte)
		}
		ctx.PDMBurstsLSB(&body, 8, uint32(chk), timing)
	}

	trailer := f.TrailerSpace
	if trailer == 0 {
		trailer = 173
	}
	ctx.MakeBurst(&body, 1, trailer)

	return body, nil
}
