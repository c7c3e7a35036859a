package aggregate

import "github.com/Dygear/pitwall/internal/codec"

// ApplyParticipants copies driver-identity fields into each car row.
// Lap packets drive the state machine; every other packet type is a
// field update into the row at its slot index (spec.md §4.3).
func ApplyParticipants(session *Session, p *codec.ParticipantsPacket) {
	session.ActiveCars = p.NumActiveCars
	for idx := 0; idx < codec.MaxCars; idx++ {
		src := &p.Cars[idx]
		row := &session.Cars[idx]
		row.AIControlled = src.AIControlled
		row.DriverID = src.DriverID
		row.NetworkID = src.NetworkID
		row.TeamID = src.TeamID
		row.MyTeam = src.MyTeam
		row.RaceNumber = src.RaceNumber
		row.Nationality = src.Nationality
		row.Name = src.Name
		row.YourTelemetry = src.YourTelemetry
	}
}

// ApplyCarTelemetry copies live telemetry into each car row.
func ApplyCarTelemetry(session *Session, p *codec.CarTelemetryPacket) {
	for idx := 0; idx < codec.MaxCars; idx++ {
		src := &p.Cars[idx]
		row := &session.Cars[idx]
		row.SpeedKph = src.SpeedKph
		row.Gear = src.Gear
		row.EngineRPM = src.EngineRPM
		row.RevLightsPct = src.RevLightsPercent
		row.DRSOpen = src.DRSOpen
	}
}

// ApplyCarStatus copies assist, tyre, and flag-zone state into each car
// row.
func ApplyCarStatus(session *Session, p *codec.CarStatusPacket) {
	for idx := 0; idx < codec.MaxCars; idx++ {
		src := &p.Cars[idx]
		row := &session.Cars[idx]
		row.DRSAllowed = src.DRSAllowed
		row.TractionControl = src.TractionControl
		row.ABS = src.AntiLockBrakes
		row.TyreActualCompound = src.ActualTyreCompound
		row.TyreVisualCompound = src.VisualTyreCompound
		row.TyreAge = src.TyresAgeLaps
		row.FlagZone = src.VehicleFIAFlags
	}
}

// ApplySession copies the session kind into the session. Total laps and
// marshal zones are decoded in the packet but not stored on the Session.
// Player-car index travels in every packet's header rather than in the
// session payload itself; Fold copies it from the lap packet's header.
func ApplySession(session *Session, p *codec.SessionPacket) {
	session.SessionKind = p.SessionKind
}
