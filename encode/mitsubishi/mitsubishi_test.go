package mitsubishi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

func TestMitsubishiFrameWordCount(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteD: 0x12, ByteF: 0x34}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)
	// D:8(16) + F:8(16) + trailer(2)
	assert.Equal(t, 34, len(body))
}
