// Package gc100 passes a Global Cache-format burst list through to
// Pronto words unscaled: the raw code's own numbers already count
// cycles of its own carrier, one-to-one with a basic time unit.
package gc100

import "github.com/sparques/pronto"

// Frame holds a GC100 code's raw integers in order: clock Hz, repeat
// count, offset, then the burst-length sequence.
type Frame struct {
	Values []int
}

// Encode skips the three header values and formats the remainder as
// Pronto words, taking the absolute value of each.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	var body pronto.Body
	if len(f.Values) <= 3 {
		return body, nil
	}
	for _, v := range f.Values[3:] {
		if v < 0 {
			v = -v
		}
		body = append(body, uint16(v))
	}
	return body, nil
}
