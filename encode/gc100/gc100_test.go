package gc100

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

func TestGC100SkipsHeaderAndAbsolutizes(t *testing.T) {
	ctx := pronto.NewContext(38000, 1)
	f := Frame{Values: []int{38000, 1, 1, 100, -200, 300}}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)
	assert.Equal(t, pronto.Body{100, 200, 300}, body)
}

func TestGC100ShortValuesYieldEmptyBody(t *testing.T) {
	ctx := pronto.NewContext(38000, 1)
	f := Frame{Values: []int{38000, 1, 1}}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)
	assert.Len(t, body, 0)
}
