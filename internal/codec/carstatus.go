package codec

import "github.com/Dygear/pitwall/internal/wire"

// CarStatus is one car's status sample. Grounded field-for-field on
// original_source/src/packet.rs's CarStatusData. spec.md §4.3 names
// drsAllowed, TC, ABS, actual/visual tyre, tyre age, and vehicle flag zone
// as what the fold reads.
type CarStatus struct {
	TractionControl        TractionControlLevel
	AntiLockBrakes         bool
	FuelMix                FuelMix
	FrontBrakeBias         uint8
	PitLimiterActive       bool
	FuelInTankKg           float32
	FuelCapacityKg         float32
	FuelRemainingLaps      float32
	MaxRPM                 uint16
	IdleRPM                uint16
	MaxGears               uint8
	DRSAllowed             bool
	DRSActivationDistanceM uint16
	ActualTyreCompound     uint8
	VisualTyreCompound     uint8
	TyresAgeLaps           uint8
	VehicleFIAFlags        ZoneFlag
	ERSStoreEnergyJ        float32
	ERSDeployMode          ErsDeployMode
	ERSHarvestedThisLapMGUK float32
	ERSHarvestedThisLapMGUH float32
	ERSDeployedThisLap      float32
	NetworkPaused           bool
}

func decodeCarStatusSlot(d *wire.Reader) CarStatus {
	var s CarStatus
	s.TractionControl = tractionControlFromRaw(d.U8())
	s.AntiLockBrakes = d.U8() != 0
	s.FuelMix = fuelMixFromRaw(d.U8())
	s.FrontBrakeBias = d.U8()
	s.PitLimiterActive = d.U8() != 0
	s.FuelInTankKg = d.F32()
	s.FuelCapacityKg = d.F32()
	s.FuelRemainingLaps = d.F32()
	s.MaxRPM = d.U16()
	s.IdleRPM = d.U16()
	s.MaxGears = d.U8()
	s.DRSAllowed = d.U8() != 0
	s.DRSActivationDistanceM = d.U16()
	s.ActualTyreCompound = d.U8()
	s.VisualTyreCompound = d.U8()
	s.TyresAgeLaps = d.U8()
	s.VehicleFIAFlags = zoneFlagFromRaw(d.I8())
	s.ERSStoreEnergyJ = d.F32()
	s.ERSDeployMode = ersDeployModeFromRaw(d.U8())
	s.ERSHarvestedThisLapMGUK = d.F32()
	s.ERSHarvestedThisLapMGUH = d.F32()
	s.ERSDeployedThisLap = d.F32()
	s.NetworkPaused = d.U8() != 0
	return s
}

// CarStatusPacket carries status for every car.
type CarStatusPacket struct {
	Header wire.Header
	Cars   [MaxCars]CarStatus
}

func decodeCarStatus(h wire.Header, body []byte) (CarStatusPacket, bool) {
	d := wire.NewReader(body)
	var p CarStatusPacket
	p.Header = h
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeCarStatusSlot(d)
	}
	return p, d.OK()
}
