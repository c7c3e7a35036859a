package codec

import "github.com/Dygear/pitwall/internal/wire"

// ReadyStatus is a lobby player's ready state. Grounded on
// original_source/src/packet.rs's ReadyStatus.
type ReadyStatus uint8

const (
	ReadyStatusNotReady   ReadyStatus = 0
	ReadyStatusReady      ReadyStatus = 1
	ReadyStatusSpectating ReadyStatus = 2
	ReadyStatusPoisoned   ReadyStatus = 0xFF
)

func readyStatusFromRaw(raw uint8) ReadyStatus {
	if raw <= 2 {
		return ReadyStatus(raw)
	}
	return ReadyStatusPoisoned
}

// LobbyInfo is one player's lobby entry. Grounded field-for-field on
// original_source/src/packet.rs's LobbyInfoData. spec.md §4.3 lists this
// packet as "decoded for completeness; not consumed by the bests engine."
type LobbyInfo struct {
	AIControlled bool
	TeamID       uint8 // 255 if no team selected
	Nationality  uint8
	Name         string
	CarNumber    uint8
	ReadyStatus  ReadyStatus
}

func decodeLobbyInfoSlot(d *wire.Reader) LobbyInfo {
	var l LobbyInfo
	l.AIControlled = d.U8() != 0
	l.TeamID = d.U8()
	l.Nationality = d.U8()
	l.Name = d.FixedString(nameFieldBytes)
	l.CarNumber = d.U8()
	l.ReadyStatus = readyStatusFromRaw(d.U8())
	return l
}

// LobbyInfoPacket lists every player currently in a multiplayer lobby.
type LobbyInfoPacket struct {
	Header     wire.Header
	NumPlayers uint8
	Players    [MaxCars]LobbyInfo
}

func decodeLobbyInfo(h wire.Header, body []byte) (LobbyInfoPacket, bool) {
	d := wire.NewReader(body)
	var p LobbyInfoPacket
	p.Header = h
	p.NumPlayers = d.U8()
	for i := 0; i < MaxCars; i++ {
		p.Players[i] = decodeLobbyInfoSlot(d)
	}
	return p, d.OK()
}
