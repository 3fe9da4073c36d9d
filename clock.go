package pronto

import "math"

// MasterClockHz is the historical Pronto master oscillator frequency
// every prescaler and carrier derivation is computed against.
const MasterClockHz = 4145152

// Context carries the clock state a single encode operation needs:
// the true carrier after prescaler rounding and the number of
// master-clock cycles in one basic time unit. The source this codec
// is modeled on keeps these as two process-level globals written at
// the start of every encode; here they travel explicitly so an encode
// never reads stale state left by a previous, unrelated one.
type Context struct {
	Prescaler     uint16
	TrueCarrierHz float64
	UnitCycles    int // cycles per basic time unit ("k")
}

// NewContext computes the Pronto prescaler for the requested carrier,
// the resulting true carrier, and stores the per-protocol basic time
// unit (in master-clock cycles).
func NewContext(requestedHz float64, unitCycles int) Context {
	prescaler := uint16(math.Round(MasterClockHz / requestedHz))
	return Context{
		Prescaler:     prescaler,
		TrueCarrierHz: MasterClockHz / float64(prescaler),
		UnitCycles:    unitCycles,
	}
}

// NewPioneerContext implements PIONEER's two-clock quirk: the Pronto
// header carries the 40kHz prescaler, but every burst length in the
// body is computed against the 38kHz clock.
func NewPioneerContext(unitCycles int) Context {
	header := NewContext(40000, unitCycles)
	body := NewContext(38000, unitCycles)
	body.Prescaler = header.Prescaler
	return body
}

// cyclesFor converts a quantity of basic time units into master-clock
// cycles, rounded to the nearest integer.
func (c Context) cyclesFor(units float64) uint16 {
	return uint16(math.Round(units * float64(c.UnitCycles)))
}

// FrameCycles returns the number of master-clock cycles in frameMs of
// true-carrier time, used to compute the lead-out pad that brings a
// frame up to its fixed total length.
func (c Context) FrameCycles(frameMs float64) int {
	return int(math.Round(c.TrueCarrierHz * frameMs * 1e-3))
}
