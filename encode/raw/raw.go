// Package raw encodes an arbitrary list of microsecond burst lengths
// against a caller-chosen carrier, for remotes with no named protocol.
package raw

import (
	"math"

	"github.com/sparques/pronto"
)

// Frame holds a signed-microsecond burst list; sign carries no
// meaning and is discarded.
type Frame struct {
	Values []int
}

// Encode rounds each microsecond value to the nearest cycle count at
// ctx's true carrier.
func (f Frame) Encode(ctx pronto.Context) (pronto.Body, error) {
	body := make(pronto.Body, 0, len(f.Values))
	for _, v := range f.Values {
		if v < 0 {
			v = -v
		}
		cycles := math.Round(float64(v) * 1e-6 * ctx.TrueCarrierHz)
		body = append(body, uint16(cycles))
	}
	return body, nil
}
