package codec

import "github.com/Dygear/pitwall/internal/wire"

// CarTelemetry is one car's live telemetry sample. Grounded field-for-field
// on original_source/src/packet.rs's CarTelemetryData. The aggregate copies
// speed, gear, rpm, rev-lights percentage, and the DRS-open flag into
// aggregate.CarRow; RevLightsBitValue and the rest are carried for
// completeness and not copied.
type CarTelemetry struct {
	SpeedKph               uint16
	Throttle               float32 // 0.0 to 1.0
	Steer                  float32 // -1.0 (full left) to 1.0 (full right)
	Brake                  float32 // 0.0 to 1.0
	Clutch                 uint8   // 0 to 100
	Gear                   int8    // N=0, R=-1
	EngineRPM              uint16
	DRSOpen                bool
	RevLightsPercent       uint8
	RevLightsBitValue      uint16
	BrakesTemperature      [4]uint16
	TyresSurfaceTemperature [4]uint8
	TyresInnerTemperature   [4]uint8
	EngineTemperature       uint16
	TyresPressure           [4]float32
	SurfaceType             [4]uint8
}

func decodeCarTelemetrySlot(d *wire.Reader) CarTelemetry {
	var t CarTelemetry
	t.SpeedKph = d.U16()
	t.Throttle = d.F32()
	t.Steer = d.F32()
	t.Brake = d.F32()
	t.Clutch = d.U8()
	t.Gear = d.I8()
	t.EngineRPM = d.U16()
	t.DRSOpen = d.U8() != 0
	t.RevLightsPercent = d.U8()
	t.RevLightsBitValue = d.U16()
	for i := range t.BrakesTemperature {
		t.BrakesTemperature[i] = d.U16()
	}
	for i := range t.TyresSurfaceTemperature {
		t.TyresSurfaceTemperature[i] = d.U8()
	}
	for i := range t.TyresInnerTemperature {
		t.TyresInnerTemperature[i] = d.U8()
	}
	t.EngineTemperature = d.U16()
	for i := range t.TyresPressure {
		t.TyresPressure[i] = d.F32()
	}
	for i := range t.SurfaceType {
		t.SurfaceType[i] = d.U8()
	}
	return t
}

// CarTelemetryPacket carries live telemetry for every car.
type CarTelemetryPacket struct {
	Header wire.Header
	Cars   [MaxCars]CarTelemetry

	MFDPanelIndex                 uint8 // 255 = closed
	MFDPanelIndexSecondaryPlayer  uint8
	SuggestedGear                 int8 // 0 if none suggested
}

func decodeCarTelemetry(h wire.Header, body []byte) (CarTelemetryPacket, bool) {
	d := wire.NewReader(body)
	var p CarTelemetryPacket
	p.Header = h
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeCarTelemetrySlot(d)
	}
	p.MFDPanelIndex = d.U8()
	p.MFDPanelIndexSecondaryPlayer = d.U8()
	p.SuggestedGear = d.I8()
	return p, d.OK()
}
