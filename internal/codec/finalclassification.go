package codec

import "github.com/Dygear/pitwall/internal/wire"

const maxTyreStints = 8

// FinalClassification is one car's final result. Grounded field-for-field
// on original_source/src/packet.rs's FinalClassificationData. spec.md
// §4.3 lists this packet as "decoded for completeness; not consumed by
// the bests engine."
type FinalClassification struct {
	Position         uint8
	NumLaps          uint8
	GridPosition     uint8
	Points           uint8
	NumPitStops      uint8
	ResultStatus     ResultStatus
	BestLapTimeInMS  uint32
	TotalRaceTimeSec float64
	PenaltiesTimeSec uint8
	NumPenalties     uint8
	NumTyreStints    uint8
	TyreStintsActual [maxTyreStints]uint8
	TyreStintsVisual [maxTyreStints]uint8
	TyreStintsEndLaps [maxTyreStints]uint8
}

func decodeFinalClassificationSlot(d *wire.Reader) FinalClassification {
	var c FinalClassification
	c.Position = d.U8()
	c.NumLaps = d.U8()
	c.GridPosition = d.U8()
	c.Points = d.U8()
	c.NumPitStops = d.U8()
	c.ResultStatus = resultStatusFromRaw(d.U8())
	c.BestLapTimeInMS = d.U32()
	c.TotalRaceTimeSec = d.F64()
	c.PenaltiesTimeSec = d.U8()
	c.NumPenalties = d.U8()
	c.NumTyreStints = d.U8()
	for i := range c.TyreStintsActual {
		c.TyreStintsActual[i] = d.U8()
	}
	for i := range c.TyreStintsVisual {
		c.TyreStintsVisual[i] = d.U8()
	}
	for i := range c.TyreStintsEndLaps {
		c.TyreStintsEndLaps[i] = d.U8()
	}
	return c
}

// FinalClassificationPacket carries the end-of-race result for every car.
type FinalClassificationPacket struct {
	Header  wire.Header
	NumCars uint8
	Cars    [MaxCars]FinalClassification
}

func decodeFinalClassification(h wire.Header, body []byte) (FinalClassificationPacket, bool) {
	d := wire.NewReader(body)
	var p FinalClassificationPacket
	p.Header = h
	p.NumCars = d.U8()
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeFinalClassificationSlot(d)
	}
	return p, d.OK()
}
