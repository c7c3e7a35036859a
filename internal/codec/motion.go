package codec

import "github.com/Dygear/pitwall/internal/wire"

// MaxCars is the fixed per-car array bound carried by the older wire
// layout (spec.md §6/§9: "fixed-size array for participants").
const MaxCars = 22

// CarMotion is one car's physics sample. Grounded field-for-field on
// original_source/src/packet.rs's CarMotionData.
type CarMotion struct {
	WorldPositionX, WorldPositionY, WorldPositionZ float32
	WorldVelocityX, WorldVelocityY, WorldVelocityZ float32
	WorldForwardDirX, WorldForwardDirY, WorldForwardDirZ int16
	WorldRightDirX, WorldRightDirY, WorldRightDirZ       int16
	GForceLateral, GForceLongitudinal, GForceVertical    float32
	Yaw, Pitch, Roll                                     float32
}

func decodeCarMotion(d *wire.Reader) CarMotion {
	var m CarMotion
	m.WorldPositionX = d.F32()
	m.WorldPositionY = d.F32()
	m.WorldPositionZ = d.F32()
	m.WorldVelocityX = d.F32()
	m.WorldVelocityY = d.F32()
	m.WorldVelocityZ = d.F32()
	m.WorldForwardDirX = d.I16()
	m.WorldForwardDirY = d.I16()
	m.WorldForwardDirZ = d.I16()
	m.WorldRightDirX = d.I16()
	m.WorldRightDirY = d.I16()
	m.WorldRightDirZ = d.I16()
	m.GForceLateral = d.F32()
	m.GForceLongitudinal = d.F32()
	m.GForceVertical = d.F32()
	m.Yaw = d.F32()
	m.Pitch = d.F32()
	m.Roll = d.F32()
	return m
}

// MotionPacket carries physics data for every car, plus extended
// suspension/wheel telemetry for the player's own car. Not consumed by
// the bests engine (spec.md names no fold step for it); decoded for
// completeness per SPEC_FULL.md §4.
type MotionPacket struct {
	Header wire.Header
	Cars   [MaxCars]CarMotion

	SuspensionPosition     [4]float32
	SuspensionVelocity     [4]float32
	SuspensionAcceleration [4]float32
	WheelSpeed             [4]float32
	WheelSlip              [4]float32
	LocalVelocityX         float32
	LocalVelocityY         float32
	LocalVelocityZ         float32
	AngularVelocityX       float32
	AngularVelocityY       float32
	AngularVelocityZ       float32
	AngularAccelerationX   float32
	AngularAccelerationY   float32
	AngularAccelerationZ   float32
	FrontWheelsAngle       float32
}

func decodeMotion(h wire.Header, body []byte) (MotionPacket, bool) {
	d := wire.NewReader(body)
	var p MotionPacket
	p.Header = h
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeCarMotion(d)
	}
	for i := range p.SuspensionPosition {
		p.SuspensionPosition[i] = d.F32()
	}
	for i := range p.SuspensionVelocity {
		p.SuspensionVelocity[i] = d.F32()
	}
	for i := range p.SuspensionAcceleration {
		p.SuspensionAcceleration[i] = d.F32()
	}
	for i := range p.WheelSpeed {
		p.WheelSpeed[i] = d.F32()
	}
	for i := range p.WheelSlip {
		p.WheelSlip[i] = d.F32()
	}
	p.LocalVelocityX = d.F32()
	p.LocalVelocityY = d.F32()
	p.LocalVelocityZ = d.F32()
	p.AngularVelocityX = d.F32()
	p.AngularVelocityY = d.F32()
	p.AngularVelocityZ = d.F32()
	p.AngularAccelerationX = d.F32()
	p.AngularAccelerationY = d.F32()
	p.AngularAccelerationZ = d.F32()
	p.FrontWheelsAngle = d.F32()
	return p, d.OK()
}
