package codec

import "github.com/Dygear/pitwall/internal/wire"

const maxLapHistory = 100

// LapHistory is one completed lap's archived splits. Grounded
// field-for-field on original_source/src/packet.rs's LapHistoryData.
type LapHistory struct {
	LapTimeInMS     uint32
	Sector1TimeInMS uint16
	Sector2TimeInMS uint16
	Sector3TimeInMS uint16
	LapValid        bool
	Sector1Valid    bool
	Sector2Valid    bool
	Sector3Valid    bool
}

func decodeLapHistory(d *wire.Reader) LapHistory {
	var l LapHistory
	l.LapTimeInMS = d.U32()
	l.Sector1TimeInMS = d.U16()
	l.Sector2TimeInMS = d.U16()
	l.Sector3TimeInMS = d.U16()
	flags := d.U8()
	l.LapValid = flags&0x01 != 0
	l.Sector1Valid = flags&0x02 != 0
	l.Sector2Valid = flags&0x04 != 0
	l.Sector3Valid = flags&0x08 != 0
	return l
}

// TyreStintHistory is one tyre stint's archived usage. Grounded on
// packet.rs's TyreStintHistoryData.
type TyreStintHistory struct {
	EndLap             uint8 // 255 for the current (unfinished) stint
	TyreActualCompound uint8
	TyreVisualCompound uint8
}

func decodeTyreStintHistory(d *wire.Reader) TyreStintHistory {
	var t TyreStintHistory
	t.EndLap = d.U8()
	t.TyreActualCompound = d.U8()
	t.TyreVisualCompound = d.U8()
	return t
}

// SessionHistoryPacket carries one car's full lap and tyre-stint history.
// Unlike the other per-car packets, this one relates to a single car
// (CarIdx) and is cycled across the grid over time (spec.md §4.3: "decoded
// for completeness; not consumed by the bests engine").
type SessionHistoryPacket struct {
	Header wire.Header

	CarIdx        uint8
	NumLaps       uint8
	NumTyreStints uint8

	BestLapTimeLapNum uint8
	BestSector1LapNum uint8
	BestSector2LapNum uint8
	BestSector3LapNum uint8

	LapHistory        [maxLapHistory]LapHistory
	TyreStintsHistory [maxTyreStints]TyreStintHistory
}

func decodeSessionHistory(h wire.Header, body []byte) (SessionHistoryPacket, bool) {
	d := wire.NewReader(body)
	var p SessionHistoryPacket
	p.Header = h
	p.CarIdx = d.U8()
	p.NumLaps = d.U8()
	p.NumTyreStints = d.U8()
	p.BestLapTimeLapNum = d.U8()
	p.BestSector1LapNum = d.U8()
	p.BestSector2LapNum = d.U8()
	p.BestSector3LapNum = d.U8()
	for i := 0; i < maxLapHistory; i++ {
		p.LapHistory[i] = decodeLapHistory(d)
	}
	for i := 0; i < maxTyreStints; i++ {
		p.TyreStintsHistory[i] = decodeTyreStintHistory(d)
	}
	return p, d.OK()
}
