// Package rc5 encodes the RC5 protocol: a bi-phase (Manchester) frame
// with two start bits, a toggle bit, a 5-bit device field and a 6-bit
// function field, all MSB-first.
package rc5

import (
	"strings"

	"github.com/sparques/pronto"
)

// UnitCycles is RC5's basic time unit, in master-clock cycles.
const UnitCycles = 32

// Carrier is RC5's carrier frequency.
const Carrier = 36000

// FrameMs is the fixed total frame length RC5 frames are padded to.
const FrameMs = 113.778

// Frame is the validated byte layout an RC5 button encodes to.
type Frame struct {
	ByteD byte // 5 bits
	ByteF byte // 6 bits

	// Toggle overrides the toggle bit, which the source always emits
	// as 0 (§9 Open Questions); defaults to false.
	Toggle bool
}

// Encode implements RC5's framing. RC5 uses "01"=high,"10"=low, the
// opposite convention from RC6. Its first logical bit begins with a
// space half, which Pronto's mark-first convention requires dropping
// before the run-length collapse (§4.2).
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var acc strings.Builder
	pronto.AppendBiphase(&acc, 1, 1, false) // start bit 1
	pronto.AppendBiphase(&acc, 1, 1, false) // start bit 2

	var toggle uint32
	if f.Toggle {
		toggle = 1
	}
	pronto.AppendBiphase(&acc, toggle, 1, false)

	pronto.AppendBiphase(&acc, uint32(f.ByteD), 5, false)
	pronto.AppendBiphase(&acc, uint32(f.ByteF), 6, false)

	man := acc.String()[1:]

	var body pronto.Body
	cycles := ctx.ManchesterToPronto(&body, man, false)
	ctx.AppendCycles(&body, ctx.FrameCycles(FrameMs)-cycles)
	return body, nil
}
