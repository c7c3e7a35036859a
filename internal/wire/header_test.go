package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// spec.md §8 invariant 1: encoding the decoded header reproduces the
// original 24 bytes.
func TestHeaderRoundTrips(t *testing.T) {
	raw := []byte{
		0xE6, 0x07, // packetFormat = 2022
		1, 23, 1, // gameMajorVersion, gameMinorVersion, packetVersion
		2,                                      // packetId = LapData
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // sessionUID
		0x00, 0x00, 0x48, 0x43, // sessionTime = 200.0f
		0x2A, 0x00, 0x00, 0x00, // frameIdentifier = 42
		0,   // playerCarIndex
		255, // secondaryPlayerCarIndex
	}
	h, ok := DecodeHeader(raw)
	assert.True(t, ok)
	assert.Equal(t, uint16(2022), h.PacketFormat)
	assert.Equal(t, uint8(2), h.PacketID)
	assert.Equal(t, float32(200.0), h.SessionTime)
	assert.Equal(t, uint32(42), h.FrameIdentifier)
	assert.Equal(t, uint8(255), h.SecondaryPlayerCarIndex)

	assert.Equal(t, raw, h.Encode())
}

func TestDecodeHeaderTruncated(t *testing.T) {
	_, ok := DecodeHeader([]byte{1, 2, 3})
	assert.False(t, ok)
}
