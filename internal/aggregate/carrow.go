package aggregate

import "github.com/Dygear/pitwall/internal/codec"

// CarRow is the per-slot aggregate world model for one car, accumulated
// across every packet type the fold consumes (spec.md §3 "Car row").
// A car row is mutated only by decoded packets addressed to its slot
// index; its lifetime equals the session.
type CarRow struct {
	// Driver identity.
	DriverID      uint8
	NetworkID     uint8
	RaceNumber    uint8
	Nationality   uint8
	Name          string
	AIControlled  bool
	YourTelemetry bool
	FlagZone      codec.ZoneFlag

	// Team.
	TeamID uint8
	MyTeam bool

	// DRS.
	DRSOpen    bool
	DRSAllowed bool

	// Assist state.
	TractionControl codec.TractionControlLevel
	ABS             bool

	// Tyres.
	TyreActualCompound uint8
	TyreVisualCompound uint8
	TyreAge            uint8

	// Telemetry.
	SpeedKph     uint16
	Gear         int8
	EngineRPM    uint16
	RevLightsPct uint8

	// Timing. Sector1/Sector2/Sector3/LastLap double as this driver's own
	// personal-best records for each period — classify_sector (spec.md
	// §4.5) overwrites them only when a new time beats what's stored, so
	// a row's Sector1.InMS is always this driver's best sector-1 split
	// of the session, not merely the latest one observed. Current holds
	// the live, not-yet-classified estimate of the sector in progress.
	Sector1         TimeRecord
	Sector2         TimeRecord
	Sector3         TimeRecord
	LastLap         TimeRecord
	Current         TimeRecord
	IntervalAheadMS uint32
	IntervalLeadMS  uint32
	TheoreticalMS   uint32

	// Race state.
	GridPosition  uint8
	RacePosition  uint8
	CurrentLapNum uint8
	NumPitStops   uint8
	DriverStatus  codec.DriverStatus
	Sector        uint8 // 0, 1, or 2 — spec.md §3 invariant

	// currentLapTimeInMS as last reported; not a TimeRecord because it
	// is not a completed, classifiable period.
	currentLapTimeMS uint32
}

func (c *CarRow) reset() {
	*c = CarRow{}
}
