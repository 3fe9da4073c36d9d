package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/sparques/pronto"
	"github.com/sparques/pronto/remote"
)

func mustRemote(protocol string, device, subdevice int, fnc int) *remote.Remote {
	return &remote.Remote{
		Model: "test",
		Encoding: remote.Encoding{
			Protocol:  protocol,
			Device:    device,
			Subdevice: subdevice,
			Repeats:   1,
		},
		Functions: map[string]*remote.Button{
			"btn": {Fnc: json.RawMessage(mustJSON(fnc))},
		},
	}
}

func mustJSON(v int) []byte {
	b, _ := json.Marshal(v)
	return b
}

// §8: NEC2, device 4, subdevice -1, fnc 8. Subdevice's complement
// bypasses necByte; device and function go through it.
func TestValidateNEC2Scenario(t *testing.T) {
	r := mustRemote("NEC2", 4, -1, 8)
	err := Remote("den", r)
	assert.NoError(t, err)

	btn := r.Functions["btn"]
	assert.Equal(t, byte(0x20), btn.CmdBytes.ByteD)
	assert.Equal(t, byte(0xFB), btn.CmdBytes.ByteS)
	assert.Equal(t, byte(0x10), btn.CmdBytes.ByteF)
}

func TestValidateNECSubdeviceGoesThroughNecByte(t *testing.T) {
	r := mustRemote("NEC2", 4, 8, 8)
	err := Remote("den", r)
	assert.NoError(t, err)

	btn := r.Functions["btn"]
	assert.Equal(t, byte(pronto.ReverseBits(8, 8)), btn.CmdBytes.ByteS)
}

func TestValidateSony20SubdeviceComplementNotUsed(t *testing.T) {
	r := mustRemote("SONY20", 1, -1, 46)
	err := Remote("tv", r)
	assert.NoError(t, err)

	btn := r.Functions["btn"]
	// SONY20 with no subdevice sends no extension byte, not a complement.
	assert.Equal(t, byte(0), btn.CmdBytes.ByteE)
}

func TestValidateRepeatsClampedToZero(t *testing.T) {
	r := mustRemote("NEC2", 4, -1, 8)
	r.Encoding.Repeats = 9
	err := Remote("den", r)
	assert.NoError(t, err)
	assert.Equal(t, remote.FlexInt(0), r.Encoding.Repeats)
}

func TestValidateRejectsOutOfRangeDevice(t *testing.T) {
	r := mustRemote("NEC2", 999, -1, 8)
	err := Remote("den", r)
	assert.Error(t, err)
}

func TestValidateMissingModelRejected(t *testing.T) {
	r := mustRemote("NEC2", 4, -1, 8)
	r.Model = ""
	err := Remote("den", r)
	assert.Error(t, err)
}

// §8 property 5: field() is an involution under the false branch and
// an identity under the true branch, for any width/value.
func TestFieldInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 16).Draw(t, "width")
		v := rapid.Uint32Range(0, (1<<uint(width))-1).Draw(t, "v")

		assert.Equal(t, v, field(v, width, true))
		assert.Equal(t, v, field(field(v, width, false), width, false))
	})
}

// necByte composed with itself under the same lsbFirst value is not
// generally an involution (it includes the unconditional reversal),
// but under lsb_first=false the two reversals cancel to identity.
func TestNecByteLSBFalseIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint32Range(0, 0xFF).Draw(t, "v")
		assert.Equal(t, v, necByte(v, 8, false))
	})
}

func TestNecByteLSBTrueIsPlainReverse8(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint32Range(0, 0xFF).Draw(t, "v")
		assert.Equal(t, pronto.ReverseBits(v, 8), necByte(v, 8, true))
	})
}
