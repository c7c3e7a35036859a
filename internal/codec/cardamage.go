package codec

import "github.com/Dygear/pitwall/internal/wire"

// CarDamage is one car's damage state. Grounded field-for-field on
// original_source/src/packet.rs's CarDamageData. spec.md §4.3 lists this
// packet as "decoded for completeness; not consumed by the bests engine."
type CarDamage struct {
	TyresWear           [4]float32
	TyresDamage         [4]uint8
	BrakesDamage        [4]uint8
	FrontLeftWingDamage uint8
	FrontRightWingDamage uint8
	RearWingDamage      uint8
	FloorDamage         uint8
	DiffuserDamage      uint8
	SidepodDamage       uint8
	DRSFault            bool
	ERSFault            bool
	GearBoxDamage       uint8
	EngineDamage        uint8
	EngineMGUHWear      uint8
	EngineESWear        uint8
	EngineCEWear        uint8
	EngineICEWear       uint8
	EngineMGUKWear      uint8
	EngineTCWear        uint8
	EngineBlown         bool
	EngineSeized        bool
}

func decodeCarDamageSlot(d *wire.Reader) CarDamage {
	var c CarDamage
	for i := range c.TyresWear {
		c.TyresWear[i] = d.F32()
	}
	for i := range c.TyresDamage {
		c.TyresDamage[i] = d.U8()
	}
	for i := range c.BrakesDamage {
		c.BrakesDamage[i] = d.U8()
	}
	c.FrontLeftWingDamage = d.U8()
	c.FrontRightWingDamage = d.U8()
	c.RearWingDamage = d.U8()
	c.FloorDamage = d.U8()
	c.DiffuserDamage = d.U8()
	c.SidepodDamage = d.U8()
	c.DRSFault = d.U8() != 0
	c.ERSFault = d.U8() != 0
	c.GearBoxDamage = d.U8()
	c.EngineDamage = d.U8()
	c.EngineMGUHWear = d.U8()
	c.EngineESWear = d.U8()
	c.EngineCEWear = d.U8()
	c.EngineICEWear = d.U8()
	c.EngineMGUKWear = d.U8()
	c.EngineTCWear = d.U8()
	c.EngineBlown = d.U8() != 0
	c.EngineSeized = d.U8() != 0
	return c
}

// CarDamagePacket carries damage status for every car.
type CarDamagePacket struct {
	Header wire.Header
	Cars   [MaxCars]CarDamage
}

func decodeCarDamage(h wire.Header, body []byte) (CarDamagePacket, bool) {
	d := wire.NewReader(body)
	var p CarDamagePacket
	p.Header = h
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeCarDamageSlot(d)
	}
	return p, d.OK()
}
