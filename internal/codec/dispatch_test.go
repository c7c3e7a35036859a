package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawHeader(packetID uint8) []byte {
	h := make([]byte, 24)
	h[0], h[1] = 0xE6, 0x07 // packetFormat 2022
	h[2], h[3], h[4] = 1, 23, 1
	h[5] = packetID
	h[22] = 0
	h[23] = 255
	return h
}

func TestDispatchUnknownPacketID(t *testing.T) {
	datagram := append(rawHeader(99), make([]byte, 32)...)
	pkt := Dispatch(datagram)
	assert.False(t, pkt.Known)
	assert.Equal(t, PacketID(99), pkt.ID)
}

func TestDispatchTruncatedHeader(t *testing.T) {
	pkt := Dispatch([]byte{1, 2, 3})
	assert.False(t, pkt.Known)
}

func TestDispatchEventSSTA(t *testing.T) {
	body := []byte("SSTA")
	datagram := append(rawHeader(3), body...)
	pkt := Dispatch(datagram)
	require.True(t, pkt.Known)
	require.NotNil(t, pkt.Event)
	_, ok := pkt.Event.(SessionStarted)
	assert.True(t, ok)
	assert.Equal(t, "SSTA", pkt.Event.Tag())
}

func TestDispatchEventUnknownTagIsNotAFailure(t *testing.T) {
	body := []byte("ZZZZ")
	datagram := append(rawHeader(3), body...)
	pkt := Dispatch(datagram)
	require.True(t, pkt.Known)
	_, ok := pkt.Event.(UnknownEvent)
	assert.True(t, ok)
}

func TestDispatchLapPacket(t *testing.T) {
	body := make([]byte, 22*lapSlotSize+2)
	// car 0: currentLapNum is the 26th byte of its slot (see decodeLapSlot)
	body[25] = 3
	datagram := append(rawHeader(2), body...)
	pkt := Dispatch(datagram)
	require.True(t, pkt.Known)
	require.NotNil(t, pkt.Lap)
	assert.Equal(t, uint8(3), pkt.Lap.Cars[0].CurrentLapNum)
}

// lapSlotSize mirrors the byte layout decodeLapSlot consumes per car, used
// only to size the synthetic test buffer above.
const lapSlotSize = 4*2 + 2*2 + 4*3 + 1*14 + 2*2 + 1
