package codec

import "github.com/Dygear/pitwall/internal/wire"

const (
	maxMarshalZones  = 21
	maxWeatherSamples = 56
)

// MarshalZone is one track-fraction flag zone. Grounded on packet.rs's
// MarshalZone.
type MarshalZone struct {
	ZoneStart float32 // fraction (0..1) of the lap where the zone starts
	ZoneFlag  ZoneFlag
}

func decodeMarshalZone(d *wire.Reader) MarshalZone {
	start := d.F32()
	flag := zoneFlagFromRaw(d.I8())
	return MarshalZone{ZoneStart: start, ZoneFlag: flag}
}

// WeatherForecastSample is one entry of the session's weather forecast.
// Grounded on packet.rs's WeatherForecastSample.
type WeatherForecastSample struct {
	SessionKind            SessionKind
	TimeOffsetMinutes      uint8
	Weather                Weather
	TrackTemperature       int8
	TrackTemperatureChange int8
	AirTemperature         int8
	AirTemperatureChange   int8
	RainPercentage         uint8
}

func decodeWeatherForecastSample(d *wire.Reader) WeatherForecastSample {
	var w WeatherForecastSample
	w.SessionKind = sessionKindFromRaw(d.U8())
	w.TimeOffsetMinutes = d.U8()
	w.Weather = weatherFromRaw(d.U8())
	w.TrackTemperature = d.I8()
	w.TrackTemperatureChange = d.I8()
	w.AirTemperature = d.I8()
	w.AirTemperatureChange = d.I8()
	w.RainPercentage = d.U8()
	return w
}

// SessionPacket carries session-wide state: track, weather, rules, and
// the marshal zones with their flag colours. Grounded field-for-field on
// packet.rs's PacketSessionData. Of these fields the aggregate keeps only
// SessionKind (see aggregate.ApplySession); the rest is carried for
// completeness.
type SessionPacket struct {
	Header wire.Header

	Weather            Weather
	TrackTemperature   int8
	AirTemperature     int8
	TotalLaps          uint8
	TrackLengthMeters  uint16
	SessionKind        SessionKind
	TrackID            int8
	Formula            Formula
	SessionTimeLeftSec uint16
	SessionDurationSec uint16
	PitSpeedLimitKph   uint8
	GamePaused         bool
	IsSpectating       bool
	SpectatorCarIndex  uint8
	SLIProNativeSupport bool
	MarshalZones       []MarshalZone

	SafetyCarStatus      SafetyCarStatus
	NetworkGame          bool
	WeatherForecast      []WeatherForecastSample
	ForecastAccuracy     uint8
	AIDifficulty         uint8
	SeasonLinkID         uint32
	WeekendLinkID        uint32
	SessionLinkID        uint32
	PitStopWindowIdeal   uint8
	PitStopWindowLatest  uint8
	PitStopRejoinPos     uint8
	SteeringAssist       bool
	BrakingAssist        uint8
	GearboxAssist        uint8
	PitAssist            bool
	PitReleaseAssist     bool
	ERSAssist            bool
	DRSAssist            bool
	DynamicRacingLine    uint8
	DynamicRacingLineType uint8
	GameMode             uint8
	RuleSet              uint8
	TimeOfDayMinutes     uint32
	SessionLength        SessionLength
}

func decodeSession(h wire.Header, body []byte) (SessionPacket, bool) {
	d := wire.NewReader(body)
	var p SessionPacket
	p.Header = h

	p.Weather = weatherFromRaw(d.U8())
	p.TrackTemperature = d.I8()
	p.AirTemperature = d.I8()
	p.TotalLaps = d.U8()
	p.TrackLengthMeters = d.U16()
	p.SessionKind = sessionKindFromRaw(d.U8())
	p.TrackID = d.I8()
	p.Formula = formulaFromRaw(d.U8())
	p.SessionTimeLeftSec = d.U16()
	p.SessionDurationSec = d.U16()
	p.PitSpeedLimitKph = d.U8()
	p.GamePaused = d.U8() != 0
	p.IsSpectating = d.U8() != 0
	p.SpectatorCarIndex = d.U8()
	p.SLIProNativeSupport = d.U8() != 0

	numZones := d.U8()
	zones := make([]MarshalZone, maxMarshalZones)
	for i := range zones {
		zones[i] = decodeMarshalZone(d)
	}
	if int(numZones) <= len(zones) {
		p.MarshalZones = zones[:numZones]
	} else {
		p.MarshalZones = zones
	}

	p.SafetyCarStatus = safetyCarStatusFromRaw(d.U8())
	p.NetworkGame = d.U8() != 0

	numForecasts := d.U8()
	samples := make([]WeatherForecastSample, maxWeatherSamples)
	for i := range samples {
		samples[i] = decodeWeatherForecastSample(d)
	}
	if int(numForecasts) <= len(samples) {
		p.WeatherForecast = samples[:numForecasts]
	} else {
		p.WeatherForecast = samples
	}

	p.ForecastAccuracy = d.U8()
	p.AIDifficulty = d.U8()
	p.SeasonLinkID = d.U32()
	p.WeekendLinkID = d.U32()
	p.SessionLinkID = d.U32()
	p.PitStopWindowIdeal = d.U8()
	p.PitStopWindowLatest = d.U8()
	p.PitStopRejoinPos = d.U8()
	p.SteeringAssist = d.U8() != 0
	p.BrakingAssist = d.U8()
	p.GearboxAssist = d.U8()
	p.PitAssist = d.U8() != 0
	p.PitReleaseAssist = d.U8() != 0
	p.ERSAssist = d.U8() != 0
	p.DRSAssist = d.U8() != 0
	p.DynamicRacingLine = d.U8()
	p.DynamicRacingLineType = d.U8()
	p.GameMode = d.U8()
	p.RuleSet = d.U8()
	p.TimeOfDayMinutes = d.U32()
	p.SessionLength = sessionLengthFromRaw(d.U8())

	return p, d.OK()
}
