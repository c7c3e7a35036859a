package codec

// Every enumeration on the wire carries a reserved "poisoned" variant for
// codes this implementation doesn't recognize (spec.md §4.1/§9): forward
// compatibility with newer wire versions, not an error condition. Signed
// enumerations (flag colour) are read as signed bytes before matching,
// per spec.md §4.1.

// ZoneFlag is a marshal zone's or a car's current flag colour.
// Grounded on original_source/src/packet.rs's ZoneFlag (#[repr(i8)]).
type ZoneFlag int8

const (
	ZoneFlagInvalid  ZoneFlag = -1
	ZoneFlagNone     ZoneFlag = 0
	ZoneFlagGreen    ZoneFlag = 1
	ZoneFlagBlue     ZoneFlag = 2
	ZoneFlagYellow   ZoneFlag = 3
	ZoneFlagRed      ZoneFlag = 4
	ZoneFlagPoisoned ZoneFlag = -128
)

func zoneFlagFromRaw(raw int8) ZoneFlag {
	switch raw {
	case -1, 0, 1, 2, 3, 4:
		return ZoneFlag(raw)
	default:
		return ZoneFlagPoisoned
	}
}

// SessionKind is the type of session in progress (practice/quali/race/...).
// Grounded on packet.rs's Session enum (#[repr(u8)]).
type SessionKind uint8

const (
	SessionKindUnknown       SessionKind = 0
	SessionKindPractice1     SessionKind = 1
	SessionKindPractice2     SessionKind = 2
	SessionKindPractice3     SessionKind = 3
	SessionKindShortPractice SessionKind = 4
	SessionKindQuali1        SessionKind = 5
	SessionKindQuali2        SessionKind = 6
	SessionKindQuali3        SessionKind = 7
	SessionKindShortQuali    SessionKind = 8
	SessionKindOneShotQuali  SessionKind = 9
	SessionKindRace          SessionKind = 10
	SessionKindRace2         SessionKind = 11
	SessionKindRace3         SessionKind = 12
	SessionKindTimeTrial     SessionKind = 13
	SessionKindPoisoned      SessionKind = 0xFF
)

func sessionKindFromRaw(raw uint8) SessionKind {
	if raw <= 13 {
		return SessionKind(raw)
	}
	return SessionKindPoisoned
}

// IsRaceLike reports whether the session is a race or a time trial. The
// fold does not call it; it treats every session kind identically per
// spec.md §4.4.
func (k SessionKind) IsRaceLike() bool {
	switch k {
	case SessionKindRace, SessionKindRace2, SessionKindRace3, SessionKindTimeTrial:
		return true
	default:
		return false
	}
}

// Weather is the current weather state. Grounded on packet.rs's Weather.
type Weather uint8

const (
	WeatherClear      Weather = 0
	WeatherLightCloud Weather = 1
	WeatherOvercast   Weather = 2
	WeatherRainLight  Weather = 3
	WeatherRainHeavy  Weather = 4
	WeatherRainStorm  Weather = 5
	WeatherPoisoned   Weather = 0xFF
)

func weatherFromRaw(raw uint8) Weather {
	if raw <= 5 {
		return Weather(raw)
	}
	return WeatherPoisoned
}

// Formula is the car formula/series. Grounded on packet.rs's Formula.
type Formula uint8

const (
	FormulaModern      Formula = 0
	FormulaClassic     Formula = 1
	FormulaF2          Formula = 2
	FormulaGeneric     Formula = 3
	FormulaBeta        Formula = 4
	FormulaSupercars   Formula = 5
	FormulaEsports     Formula = 6
	FormulaF2_2021     Formula = 7
	FormulaPoisoned    Formula = 0xFF
)

func formulaFromRaw(raw uint8) Formula {
	if raw <= 7 {
		return Formula(raw)
	}
	return FormulaPoisoned
}

// SafetyCarStatus. Grounded on packet.rs's SafetyCar.
type SafetyCarStatus uint8

const (
	SafetyCarReady        SafetyCarStatus = 0
	SafetyCarDeployed     SafetyCarStatus = 1
	SafetyCarVirtual      SafetyCarStatus = 2
	SafetyCarFormationLap SafetyCarStatus = 3
	SafetyCarPoisoned     SafetyCarStatus = 0xFF
)

func safetyCarStatusFromRaw(raw uint8) SafetyCarStatus {
	if raw <= 3 {
		return SafetyCarStatus(raw)
	}
	return SafetyCarPoisoned
}

// SessionLength. Grounded on packet.rs's SessionLength.
type SessionLength uint8

const (
	SessionLengthNone       SessionLength = 0
	SessionLengthVeryShort  SessionLength = 2
	SessionLengthShort      SessionLength = 3
	SessionLengthMedium     SessionLength = 4
	SessionLengthMediumLong SessionLength = 5
	SessionLengthLong       SessionLength = 6
	SessionLengthFull       SessionLength = 7
	SessionLengthPoisoned   SessionLength = 0xFF
)

func sessionLengthFromRaw(raw uint8) SessionLength {
	switch raw {
	case 0, 2, 3, 4, 5, 6, 7:
		return SessionLength(raw)
	default:
		return SessionLengthPoisoned
	}
}

// PitStatus is a car's current pit state. Grounded on packet.rs's PitStatus.
type PitStatus uint8

const (
	PitStatusNone      PitStatus = 0
	PitStatusPitting   PitStatus = 1
	PitStatusInPitArea PitStatus = 2
	PitStatusPoisoned  PitStatus = 0xFF
)

func pitStatusFromRaw(raw uint8) PitStatus {
	if raw <= 2 {
		return PitStatus(raw)
	}
	return PitStatusPoisoned
}

// DriverStatus is a car's current on-track state. Grounded on packet.rs's
// Driver enum; renamed to avoid colliding with a participant's driver id.
type DriverStatus uint8

const (
	DriverStatusInGarage    DriverStatus = 0
	DriverStatusFlyingLap   DriverStatus = 1
	DriverStatusInLap       DriverStatus = 2
	DriverStatusOutLap      DriverStatus = 3
	DriverStatusOnTrack     DriverStatus = 4
	DriverStatusPoisoned    DriverStatus = 0xFF
)

func driverStatusFromRaw(raw uint8) DriverStatus {
	if raw <= 4 {
		return DriverStatus(raw)
	}
	return DriverStatusPoisoned
}

// ResultStatus. Grounded on packet.rs's ResultStatus.
type ResultStatus uint8

const (
	ResultStatusInvalid      ResultStatus = 0
	ResultStatusInactive     ResultStatus = 1
	ResultStatusActive       ResultStatus = 2
	ResultStatusFinished     ResultStatus = 3
	ResultStatusDidNotFinish ResultStatus = 4
	ResultStatusDisqualified ResultStatus = 5
	ResultStatusNotClassified ResultStatus = 6
	ResultStatusRetired      ResultStatus = 7
	ResultStatusPoisoned     ResultStatus = 0xFF
)

func resultStatusFromRaw(raw uint8) ResultStatus {
	if raw <= 7 {
		return ResultStatus(raw)
	}
	return ResultStatusPoisoned
}

// TractionControlLevel. Grounded on packet.rs's TractionControl.
type TractionControlLevel uint8

const (
	TractionControlOff      TractionControlLevel = 0
	TractionControlMedium   TractionControlLevel = 1
	TractionControlFull     TractionControlLevel = 2
	TractionControlPoisoned TractionControlLevel = 0xFF
)

func tractionControlFromRaw(raw uint8) TractionControlLevel {
	if raw <= 2 {
		return TractionControlLevel(raw)
	}
	return TractionControlPoisoned
}

// FuelMix. Grounded on packet.rs's FuelMix.
type FuelMix uint8

const (
	FuelMixLean     FuelMix = 0
	FuelMixStandard FuelMix = 1
	FuelMixRich     FuelMix = 2
	FuelMixMax      FuelMix = 3
	FuelMixPoisoned FuelMix = 0xFF
)

func fuelMixFromRaw(raw uint8) FuelMix {
	if raw <= 3 {
		return FuelMix(raw)
	}
	return FuelMixPoisoned
}

// ErsDeployMode. Grounded on packet.rs's ErsDeployMode.
type ErsDeployMode uint8

const (
	ErsDeployModeNone     ErsDeployMode = 0
	ErsDeployModeMedium   ErsDeployMode = 1
	ErsDeployModeHotlap   ErsDeployMode = 2
	ErsDeployModeOvertake ErsDeployMode = 3
	ErsDeployModePoisoned ErsDeployMode = 0xFF
)

func ersDeployModeFromRaw(raw uint8) ErsDeployMode {
	if raw <= 3 {
		return ErsDeployMode(raw)
	}
	return ErsDeployModePoisoned
}
