package codec

import "github.com/Dygear/pitwall/internal/wire"

// Event is the decoded tagged union carried by an Event packet. Grounded
// on design note §9 of spec.md ("represent the decoded event as a sum of
// named variants with an 'unknown' fallback; do not model it as an
// unchecked overlapping memory view") and on original_source/src/packet.rs's
// EventDetails union / EventStringCode enum, reshaped into a Go interface
// instead of a C-style union.
type Event interface {
	// Tag returns the 4-byte ASCII discriminator this event was decoded
	// from, e.g. "SSTA".
	Tag() string
	isEvent()
}

type eventBase struct{ tag string }

func (e eventBase) Tag() string { return e.tag }
func (eventBase) isEvent()      {}

// SessionStarted is the only event that mutates core state (spec.md
// §4.3/§4.6): it triggers a full session reset.
type SessionStarted struct{ eventBase }

// SessionEnded carries no body; mutates no core state in this spec.
type SessionEnded struct{ eventBase }

// FastestLap announces a new fastest lap by vehicleIdx, with the lap time
// in seconds (not milliseconds, unlike everywhere else on the wire).
type FastestLap struct {
	eventBase
	VehicleIdx uint8
	LapTimeSec float32
}

// Retirement announces a car retiring.
type Retirement struct {
	eventBase
	VehicleIdx uint8
}

// TeamMateInPits announces the player's team mate entering the pits.
type TeamMateInPits struct {
	eventBase
	VehicleIdx uint8
}

// RaceWinner announces the race winner.
type RaceWinner struct {
	eventBase
	VehicleIdx uint8
}

// Penalty announces a penalty being issued.
type Penalty struct {
	eventBase
	PenaltyType      uint8
	InfringementType uint8
	VehicleIdx       uint8
	OtherVehicleIdx  uint8
	TimeSeconds      uint8
	LapNum           uint8
	PlacesGained     uint8
}

// SpeedTrap announces a speed trap being triggered.
type SpeedTrap struct {
	eventBase
	VehicleIdx                 uint8
	SpeedKph                   float32
	IsOverallFastestInSession  bool
	IsDriverFastestInSession   bool
	FastestVehicleIdxInSession uint8
	FastestSpeedInSessionKph   float32
}

// StartLights announces the number of start lights currently lit.
type StartLights struct {
	eventBase
	NumLights uint8
}

// LightsOut carries no body.
type LightsOut struct{ eventBase }

// DriveThroughPenaltyServed announces a drive-through penalty served.
type DriveThroughPenaltyServed struct {
	eventBase
	VehicleIdx uint8
}

// StopGoPenaltyServed announces a stop-go penalty served.
type StopGoPenaltyServed struct {
	eventBase
	VehicleIdx uint8
}

// Flashback announces a flashback (rewind) being used.
type Flashback struct {
	eventBase
	FlashbackFrameIdentifier uint32
	FlashbackSessionTime     float32
}

// ChequeredFlag carries no body.
type ChequeredFlag struct{ eventBase }

// DRSEnabled carries no body.
type DRSEnabled struct{ eventBase }

// DRSDisabled carries no body.
type DRSDisabled struct{ eventBase }

// Buttons announces a change in button press bit flags.
type Buttons struct {
	eventBase
	ButtonStatus uint32
}

// UnknownEvent is the poisoned fallback for a tag this implementation
// doesn't recognize (spec.md §9's enum-with-unknown pattern, applied to
// the event tagged union as well as plain enums).
type UnknownEvent struct{ eventBase }

func decodeEvent(h wire.Header, body []byte) (Event, bool) {
	d := wire.NewReader(body)
	tag := string(d.Bytes(4))
	if !d.OK() {
		return nil, false
	}

	switch tag {
	case "SSTA":
		return SessionStarted{eventBase{tag}}, true
	case "SEND":
		return SessionEnded{eventBase{tag}}, true
	case "FTLP":
		idx := d.U8()
		t := d.F32()
		return FastestLap{eventBase{tag}, idx, t}, d.OK()
	case "RTMT":
		return Retirement{eventBase{tag}, d.U8()}, d.OK()
	case "DRSE":
		return DRSEnabled{eventBase{tag}}, true
	case "DRSD":
		return DRSDisabled{eventBase{tag}}, true
	case "TMPT":
		return TeamMateInPits{eventBase{tag}, d.U8()}, d.OK()
	case "CHQF":
		return ChequeredFlag{eventBase{tag}}, true
	case "RCWN":
		return RaceWinner{eventBase{tag}, d.U8()}, d.OK()
	case "PENA":
		p := Penalty{eventBase: eventBase{tag}}
		p.PenaltyType = d.U8()
		p.InfringementType = d.U8()
		p.VehicleIdx = d.U8()
		p.OtherVehicleIdx = d.U8()
		p.TimeSeconds = d.U8()
		p.LapNum = d.U8()
		p.PlacesGained = d.U8()
		return p, d.OK()
	case "SPTP":
		s := SpeedTrap{eventBase: eventBase{tag}}
		s.VehicleIdx = d.U8()
		s.SpeedKph = d.F32()
		s.IsOverallFastestInSession = d.U8() != 0
		s.IsDriverFastestInSession = d.U8() != 0
		s.FastestVehicleIdxInSession = d.U8()
		s.FastestSpeedInSessionKph = d.F32()
		return s, d.OK()
	case "STLG":
		return StartLights{eventBase{tag}, d.U8()}, d.OK()
	case "LGOT":
		return LightsOut{eventBase{tag}}, true
	case "DTSV":
		return DriveThroughPenaltyServed{eventBase{tag}, d.U8()}, d.OK()
	case "SGSV":
		return StopGoPenaltyServed{eventBase{tag}, d.U8()}, d.OK()
	case "FLBK":
		frame := d.U32()
		t := d.F32()
		return Flashback{eventBase{tag}, frame, t}, d.OK()
	case "BUTN":
		return Buttons{eventBase{tag}, d.U32()}, d.OK()
	default:
		return UnknownEvent{eventBase{tag}}, true
	}
}
