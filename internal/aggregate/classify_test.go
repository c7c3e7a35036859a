package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyZeroMSNeverLatched(t *testing.T) {
	s := NewSession()
	var driverRecord TimeRecord
	classify(s, Sector1, 0, 0, 1, &driverRecord)

	assert.False(t, driverRecord.IsSet)
	assert.False(t, s.OverallBest.Sector1.IsSet)
}

func TestClassifyFirstObservationAlwaysBest(t *testing.T) {
	s := NewSession()
	var driverRecord TimeRecord
	classify(s, Sector2, 40_000, 3, 1, &driverRecord)

	assert.True(t, driverRecord.IsSet)
	assert.True(t, driverRecord.IsPB)
	assert.True(t, driverRecord.IsOB)
	assert.Equal(t, uint32(40_000), s.OverallBest.Sector2.InMS)
}

func TestClassifyWorseTimeDoesNotOverwrite(t *testing.T) {
	s := NewSession()
	var driverRecord TimeRecord
	classify(s, Sector1, 30_000, 0, 1, &driverRecord)
	classify(s, Sector1, 31_000, 0, 2, &driverRecord)

	assert.Equal(t, uint32(30_000), driverRecord.InMS)
	assert.Equal(t, uint32(30_000), s.OverallBest.Sector1.InMS)
}

func TestOverallBestPossibleNeverExceedsLapTime(t *testing.T) {
	b := &Bests{}
	b.Sector1.latch(28_250, 1, 3)
	b.Sector2.latch(40_900, 1, 3)
	b.Sector3.latch(20_800, 1, 3)
	b.recomputeTheoretical()
	b.LapTime.latch(89_900, 2, 5)

	assert.LessOrEqual(t, b.Possible, b.LapTime.InMS)
}
