package codec

import "github.com/Dygear/pitwall/internal/wire"

// CarSetup is one car's setup parameters. Grounded field-for-field on
// original_source/src/packet.rs's CarSetupData. spec.md §4.2 lists
// "car-setups" in the known packet-id set; §4.3's contract table has no
// row for it because the bests engine never reads it — decoded here for
// completeness per SPEC_FULL.md §4.
type CarSetup struct {
	FrontWing              uint8
	RearWing               uint8
	OnThrottle             uint8
	OffThrottle            uint8
	FrontCamber            float32
	RearCamber             float32
	FrontToe               float32
	RearToe                float32
	FrontSuspension        uint8
	RearSuspension         uint8
	FrontAntiRollBar       uint8
	RearAntiRollBar        uint8
	FrontSuspensionHeight  uint8
	RearSuspensionHeight   uint8
	BrakePressure          uint8
	BrakeBias              uint8
	RearLeftTyrePressure   float32
	RearRightTyrePressure  float32
	FrontLeftTyrePressure  float32
	FrontRightTyrePressure float32
	Ballast                uint8
	FuelLoad               float32
}

func decodeCarSetup(d *wire.Reader) CarSetup {
	var s CarSetup
	s.FrontWing = d.U8()
	s.RearWing = d.U8()
	s.OnThrottle = d.U8()
	s.OffThrottle = d.U8()
	s.FrontCamber = d.F32()
	s.RearCamber = d.F32()
	s.FrontToe = d.F32()
	s.RearToe = d.F32()
	s.FrontSuspension = d.U8()
	s.RearSuspension = d.U8()
	s.FrontAntiRollBar = d.U8()
	s.RearAntiRollBar = d.U8()
	s.FrontSuspensionHeight = d.U8()
	s.RearSuspensionHeight = d.U8()
	s.BrakePressure = d.U8()
	s.BrakeBias = d.U8()
	s.RearLeftTyrePressure = d.F32()
	s.RearRightTyrePressure = d.F32()
	s.FrontLeftTyrePressure = d.F32()
	s.FrontRightTyrePressure = d.F32()
	s.Ballast = d.U8()
	s.FuelLoad = d.F32()
	return s
}

// CarSetupsPacket carries every car's setup.
type CarSetupsPacket struct {
	Header wire.Header
	Cars   [MaxCars]CarSetup
}

func decodeCarSetups(h wire.Header, body []byte) (CarSetupsPacket, bool) {
	d := wire.NewReader(body)
	var p CarSetupsPacket
	p.Header = h
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeCarSetup(d)
	}
	return p, d.OK()
}
