package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLapSlotSectorAndDistance(t *testing.T) {
	slot := make([]byte, lapSlotSize)
	binary.LittleEndian.PutUint16(slot[8:10], 28400) // sector1TimeInMS
	slot[28] = 1                                     // sector
	binary.LittleEndian.PutUint32(slot[12:16], math.Float32bits(-50.0)) // lapDistance

	body := make([]byte, 0, MaxCars*lapSlotSize+2)
	body = append(body, slot...)
	body = append(body, make([]byte, (MaxCars-1)*lapSlotSize+2)...)

	datagram := append(rawHeader(2), body...)
	pkt := Dispatch(datagram)
	require.True(t, pkt.Known)
	require.NotNil(t, pkt.Lap)
	assert.Equal(t, uint16(28400), pkt.Lap.Cars[0].Sector1TimeInMS)
	assert.Equal(t, uint8(1), pkt.Lap.Cars[0].Sector)
	assert.Less(t, pkt.Lap.Cars[0].LapDistance, float32(0))
}
