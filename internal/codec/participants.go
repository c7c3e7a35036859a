package codec

import "github.com/Dygear/pitwall/internal/wire"

const nameFieldBytes = 48

// Participant is one car's driver/team identity. Grounded field-for-field
// on original_source/src/packet.rs's ParticipantData.
type Participant struct {
	AIControlled  bool
	DriverID      uint8 // 255 if network human
	NetworkID     uint8
	TeamID        uint8
	MyTeam        bool
	RaceNumber    uint8
	Nationality   uint8
	Name          string // UTF-8, null-padded, truncated on overrun (spec.md §4.1)
	YourTelemetry bool   // 0 = restricted, 1 = public
}

func decodeParticipant(d *wire.Reader) Participant {
	var p Participant
	p.AIControlled = d.U8() != 0
	p.DriverID = d.U8()
	p.NetworkID = d.U8()
	p.TeamID = d.U8()
	p.MyTeam = d.U8() != 0
	p.RaceNumber = d.U8()
	p.Nationality = d.U8()
	p.Name = d.FixedString(nameFieldBytes)
	p.YourTelemetry = d.U8() != 0
	return p
}

// ParticipantsPacket lists every car's driver/team identity. Grounded on
// packet.rs's PacketParticipantsData. spec.md §4.3 names numActiveCars and
// the per-slot identity/telemetry-flag fields as what the fold consumes.
type ParticipantsPacket struct {
	Header        wire.Header
	NumActiveCars uint8
	Cars          [MaxCars]Participant
}

func decodeParticipants(h wire.Header, body []byte) (ParticipantsPacket, bool) {
	d := wire.NewReader(body)
	var p ParticipantsPacket
	p.Header = h
	p.NumActiveCars = d.U8()
	for i := 0; i < MaxCars; i++ {
		p.Cars[i] = decodeParticipant(d)
	}
	return p, d.OK()
}
