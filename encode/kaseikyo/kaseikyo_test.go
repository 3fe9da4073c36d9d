package kaseikyo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparques/pronto"
)

// §8: KASEIKYO/PANASONIC, D=8, S=0, F=0x3D. OEM=(m=2,n=32).
// Checksum = 8 XOR 0 XOR 0x3D = 0x35.
func TestPanasonicChecksumScenario(t *testing.T) {
	f := Frame{
		OEMm:  2,
		OEMn:  32,
		ByteD: 8,
		ByteS: 0,
		ByteF: 0x3D,
	}
	ctx := pronto.NewContext(Carrier, UnitCycles)
	body, err := f.Encode(ctx)
	assert.NoError(t, err)

	// lead-in(2) + OEMm(16) + OEMn(16) + D(16) + S(16) + F(16) + checksum(16) + trailer(2)
	assert.Equal(t, 100, len(body))

	checksumByte := pronto.XOR8(f.ByteD, f.ByteS, f.ByteF)
	assert.Equal(t, byte(0x35), checksumByte)
}

func TestFujitsuStubOmitsChecksum(t *testing.T) {
	ctx := pronto.NewContext(Carrier, UnitCycles)
	f := Frame{ByteD: 1, ByteS: 2, ByteF: 3, NoChecksum: true, TrailerSpace: 110}
	body, err := f.Encode(ctx)
	assert.NoError(t, err)
	// lead-in(2) + OEMm(16) + OEMn(16) + D(16) + S(16) + F(16) + trailer(2), no checksum burst
	assert.Equal(t, 84, len(body))
}

func TestOEMTableHasAllFamilyMembers(t *testing.T) {
	for _, tag := range []pronto.Tag{pronto.PANASONIC, pronto.JVC48, pronto.DENONK, pronto.FUJITSU, pronto.SHARPDVD, pronto.TEACK, pronto.MITSUK} {
		_, ok := OEMTable[tag]
		assert.True(t, ok, "missing OEM entry for %s", tag)
	}
}
