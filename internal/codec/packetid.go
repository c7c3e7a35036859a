package codec

// PacketID identifies which record decoder a packet's payload routes to.
// Values follow original_source/src/packet.rs's PacketId enum and
// spec.md §6's packet-id assignment table for the older wire layout.
type PacketID uint8

const (
	PacketIDMotion               PacketID = 0
	PacketIDSession              PacketID = 1
	PacketIDLap                  PacketID = 2
	PacketIDEvent                PacketID = 3
	PacketIDParticipants         PacketID = 4
	PacketIDCarSetups            PacketID = 5
	PacketIDCarTelemetry         PacketID = 6
	PacketIDCarStatus            PacketID = 7
	PacketIDFinalClassification  PacketID = 8
	PacketIDLobbyInfo            PacketID = 9
	PacketIDCarDamage            PacketID = 10
	PacketIDSessionHistory       PacketID = 11
)

// packetIDFromRaw maps the raw header byte to a known PacketID. An
// unrecognized id (e.g. one of the newer wire version's ids 12-15, or
// outright garbage) reports ok=false rather than failing — per spec.md
// §4.2 unknown ids "produce a diagnostic-only 'unknown' record and are
// discarded by the fold," never a hard decode error. The raw byte is
// still returned as a PacketID (rather than a separate sentinel) so a
// diagnostic log can report which unrecognized id arrived.
func packetIDFromRaw(raw uint8) (PacketID, bool) {
	switch PacketID(raw) {
	case PacketIDMotion, PacketIDSession, PacketIDLap, PacketIDEvent,
		PacketIDParticipants, PacketIDCarSetups, PacketIDCarTelemetry,
		PacketIDCarStatus, PacketIDFinalClassification, PacketIDLobbyInfo,
		PacketIDCarDamage, PacketIDSessionHistory:
		return PacketID(raw), true
	default:
		return PacketID(raw), false
	}
}

func (id PacketID) String() string {
	switch id {
	case PacketIDMotion:
		return "Motion"
	case PacketIDSession:
		return "Session"
	case PacketIDLap:
		return "Lap"
	case PacketIDEvent:
		return "Event"
	case PacketIDParticipants:
		return "Participants"
	case PacketIDCarSetups:
		return "CarSetups"
	case PacketIDCarTelemetry:
		return "CarTelemetry"
	case PacketIDCarStatus:
		return "CarStatus"
	case PacketIDFinalClassification:
		return "FinalClassification"
	case PacketIDLobbyInfo:
		return "LobbyInfo"
	case PacketIDCarDamage:
		return "CarDamage"
	case PacketIDSessionHistory:
		return "SessionHistory"
	default:
		return "Unknown"
	}
}
