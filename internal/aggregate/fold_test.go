package aggregate

import (
	"testing"

	"github.com/Dygear/pitwall/internal/codec"
	"github.com/Dygear/pitwall/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyLapPacket() *codec.LapPacket {
	p := &codec.LapPacket{}
	p.TimeTrialPBCarIdx = 255
	p.TimeTrialRivalCarIdx = 255
	return p
}

// Scenario A: sector-3 derivation.
func TestFoldDerivesSector3OnLapTransition(t *testing.T) {
	s := NewSession()
	s.Cars[0].Sector1.latch(28_400, 0, 2)
	s.Cars[0].Sector2.latch(41_200, 0, 2)
	s.Cars[0].Sector = 2

	lap := emptyLapPacket()
	lap.Cars[0].CarPosition = 1
	lap.Cars[0].LapDistance = 10
	lap.Cars[0].Sector = 0
	lap.Cars[0].LastLapTimeInMS = 90_500
	lap.Cars[0].CurrentLapNum = 4

	Fold(s, lap)

	assert.Equal(t, uint32(20_900), s.Cars[0].Sector3.InMS)
	assert.True(t, s.Cars[0].Sector3.IsSet)
	assert.Equal(t, uint32(90_500), s.Cars[0].LastLap.InMS)
}

// Scenario B: overall-best latching with two drivers.
func TestFoldOverallBestLatchingTwoDrivers(t *testing.T) {
	s := NewSession()

	// Driver 0 sets sector1 = 28400 on lap 2 (transition 0->1).
	s.Cars[0].Sector = 0
	lap1 := emptyLapPacket()
	lap1.Cars[0].CarPosition = 1
	lap1.Cars[0].LapDistance = 10
	lap1.Cars[0].Sector = 1
	lap1.Cars[0].Sector1TimeInMS = 28_400
	lap1.Cars[0].CurrentLapTimeInMS = 28_400
	lap1.Cars[0].CurrentLapNum = 2
	Fold(s, lap1)

	// Driver 1 sets sector1 = 28250 on lap 3 (transition 0->1).
	s.Cars[1].Sector = 0
	lap2 := emptyLapPacket()
	lap2.Cars[1].CarPosition = 2
	lap2.Cars[1].LapDistance = 10
	lap2.Cars[1].Sector = 1
	lap2.Cars[1].Sector1TimeInMS = 28_250
	lap2.Cars[1].CurrentLapTimeInMS = 28_250
	lap2.Cars[1].CurrentLapNum = 3
	Fold(s, lap2)

	require.True(t, s.OverallBest.Sector1.IsSet)
	assert.Equal(t, uint32(28_250), s.OverallBest.Sector1.InMS)
	assert.Equal(t, uint8(1), s.OverallBest.Sector1.DriverIdx)
	assert.Equal(t, uint8(3), s.OverallBest.Sector1.OnLap)

	assert.True(t, s.Cars[1].Sector1.IsPB)
	assert.True(t, s.Cars[1].Sector1.IsOB)
	assert.True(t, s.Cars[0].Sector1.IsPB)
	assert.False(t, s.Cars[0].Sector1.IsOB)
}

// Scenario C: theoretical best.
func TestRecomputeTheoreticalMonotonicNonWorsening(t *testing.T) {
	b := &Bests{}
	b.Sector1.latch(28_250, 1, 3)
	b.Sector2.latch(40_900, 1, 3)
	b.Sector3.latch(20_800, 1, 3)
	b.recomputeTheoretical()
	require.Equal(t, uint32(89_950), b.Possible)

	// A full lap of 89,900 becomes the new lap-time best but does not
	// move Possible, since no sector best improved.
	b.LapTime.latch(89_900, 2, 5)
	assert.Equal(t, uint32(89_950), b.Possible)
}

// Scenario D: formation-lap guard.
func TestFoldFormationLapGuardSkipsTiming(t *testing.T) {
	s := NewSession()
	lap := emptyLapPacket()
	lap.Cars[0].CarPosition = 1
	lap.Cars[0].LapDistance = -50.0
	lap.Cars[0].LastLapTimeInMS = 0
	lap.Cars[0].Sector = 0
	lap.Cars[0].CurrentLapNum = 1

	Fold(s, lap)

	assert.False(t, s.Cars[0].Sector3.IsSet)
	assert.False(t, s.Cars[0].LastLap.IsSet)
	assert.Equal(t, 0, s.Positions[1]) // position table still updated
}

// Scenario E: session reset.
func TestSessionResetClearsBestsAndRows(t *testing.T) {
	s := NewSession()
	s.Cars[0].Sector1.latch(28_400, 0, 2)
	s.OverallBest.Sector1.latch(28_400, 0, 2)
	s.OverallBest.Possible = 12345

	HandleEvent(s, codec.SessionStarted{})

	assert.False(t, s.OverallBest.Sector1.IsSet)
	assert.Equal(t, uint32(0), s.OverallBest.Possible)
	assert.False(t, s.Cars[0].Sector1.IsSet)
}

// Scenario F: poisoned packet id.
func TestDispatchPoisonedPacketIDDoesNotMutateState(t *testing.T) {
	datagram := make([]byte, wire.HeaderSize+4)
	datagram[5] = 99 // packet id

	pkt := codec.Dispatch(datagram)
	assert.False(t, pkt.Known)

	s := NewSession()
	if pkt.Lap != nil {
		Fold(s, pkt.Lap)
	}
	assert.Equal(t, uint8(0), s.ActiveCars)
}
