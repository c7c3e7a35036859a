package codec

import "github.com/Dygear/pitwall/internal/wire"

// Lap is one car's lap-data slot. Grounded field-for-field on
// original_source/src/packet.rs's LapData (older wire layout: plain u16
// sector splits, no delta-to-leader/car-in-front fields — those only
// exist on the newer layout this implementation doesn't carry, per
// SPEC_FULL.md §1).
type Lap struct {
	LastLapTimeInMS    uint32
	CurrentLapTimeInMS uint32
	Sector1TimeInMS    uint16
	Sector2TimeInMS    uint16
	LapDistance        float32 // negative before the start/finish line
	TotalDistance      float32
	SafetyCarDelta     float32
	CarPosition        uint8 // 1-based race position; 0 = not set
	CurrentLapNum      uint8
	PitStatus          PitStatus
	NumPitStops        uint8
	Sector             uint8 // 0, 1, or 2 — spec.md §3 invariant
	CurrentLapInvalid  bool
	Penalties          uint8
	Warnings           uint8
	NumUnservedDriveThroughPens uint8
	NumUnservedStopGoPens       uint8
	GridPosition       uint8
	DriverStatus       DriverStatus
	ResultStatus       ResultStatus
	PitLaneTimerActive bool
	PitLaneTimeInLaneMS uint16
	PitStopTimerMS      uint16
	PitStopShouldServePen bool
}

func decodeLapSlot(d *wire.Reader) Lap {
	var l Lap
	l.LastLapTimeInMS = d.U32()
	l.CurrentLapTimeInMS = d.U32()
	l.Sector1TimeInMS = d.U16()
	l.Sector2TimeInMS = d.U16()
	l.LapDistance = d.F32()
	l.TotalDistance = d.F32()
	l.SafetyCarDelta = d.F32()
	l.CarPosition = d.U8()
	l.CurrentLapNum = d.U8()
	l.PitStatus = pitStatusFromRaw(d.U8())
	l.NumPitStops = d.U8()
	l.Sector = d.U8()
	l.CurrentLapInvalid = d.U8() != 0
	l.Penalties = d.U8()
	l.Warnings = d.U8()
	l.NumUnservedDriveThroughPens = d.U8()
	l.NumUnservedStopGoPens = d.U8()
	l.GridPosition = d.U8()
	l.DriverStatus = driverStatusFromRaw(d.U8())
	l.ResultStatus = resultStatusFromRaw(d.U8())
	l.PitLaneTimerActive = d.U8() != 0
	l.PitLaneTimeInLaneMS = d.U16()
	l.PitStopTimerMS = d.U16()
	l.PitStopShouldServePen = d.U8() != 0
	return l
}

// LapPacket carries lap timing data for every car. This is the packet
// that drives the session fold (spec.md §4.4).
type LapPacket struct {
	Header wire.Header
	Cars   [MaxCars]Lap

	TimeTrialPBCarIdx    uint8 // 255 if invalid
	TimeTrialRivalCarIdx uint8
}

func decodeLap(h wire.Header, body []byte) (LapPacket, bool) {
	d := wire.NewReader(body)
	var p LapPacket
	p.Header = h
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeLapSlot(d)
	}
	p.TimeTrialPBCarIdx = d.U8()
	p.TimeTrialRivalCarIdx = d.U8()
	return p, d.OK()
}
