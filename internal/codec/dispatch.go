package codec

import "github.com/Dygear/pitwall/internal/wire"

// Packet is the result of dispatching one datagram: the decoded header,
// plus exactly one of the typed payloads below (or none, for an unknown
// packet id). Grounded on the teacher's Client.listen() switch over
// msgType, which routes the remaining buffer bytes to one Unmarshal*
// function per message type.
type Packet struct {
	Header wire.Header
	ID     PacketID
	Known  bool // false => unrecognized packet id, diagnostic only

	Motion               *MotionPacket
	Session              *SessionPacket
	Lap                  *LapPacket
	Event                Event
	Participants         *ParticipantsPacket
	CarSetups            *CarSetupsPacket
	CarTelemetry         *CarTelemetryPacket
	CarStatus            *CarStatusPacket
	FinalClassification  *FinalClassificationPacket
	LobbyInfo            *LobbyInfoPacket
	CarDamage            *CarDamagePacket
	SessionHistory       *SessionHistoryPacket
}

// Dispatch reads the common header from a datagram and routes the
// remaining bytes to the matching record decoder (spec.md §4.2). It never
// returns an error: a too-short datagram or an unrecognized packet id
// yields Packet{Known: false} so the caller (the session fold) can simply
// ignore it, per spec.md §7's "codec malformation is non-fatal" rule.
func Dispatch(datagram []byte) Packet {
	h, ok := wire.DecodeHeader(datagram)
	if !ok {
		return Packet{Known: false}
	}

	body := datagram[wire.HeaderSize:]

	id, known := packetIDFromRaw(h.PacketID)
	if !known {
		return Packet{Header: h, ID: id, Known: false}
	}

	pkt := Packet{Header: h, ID: id, Known: true}
	switch id {
	case PacketIDMotion:
		if v, ok := decodeMotion(h, body); ok {
			pkt.Motion = &v
		} else {
			pkt.Known = false
		}
	case PacketIDSession:
		if v, ok := decodeSession(h, body); ok {
			pkt.Session = &v
		} else {
			pkt.Known = false
		}
	case PacketIDLap:
		if v, ok := decodeLap(h, body); ok {
			pkt.Lap = &v
		} else {
			pkt.Known = false
		}
	case PacketIDEvent:
		if v, ok := decodeEvent(h, body); ok {
			pkt.Event = v
		} else {
			pkt.Known = false
		}
	case PacketIDParticipants:
		if v, ok := decodeParticipants(h, body); ok {
			pkt.Participants = &v
		} else {
			pkt.Known = false
		}
	case PacketIDCarSetups:
		if v, ok := decodeCarSetups(h, body); ok {
			pkt.CarSetups = &v
		} else {
			pkt.Known = false
		}
	case PacketIDCarTelemetry:
		if v, ok := decodeCarTelemetry(h, body); ok {
			pkt.CarTelemetry = &v
		} else {
			pkt.Known = false
		}
	case PacketIDCarStatus:
		if v, ok := decodeCarStatus(h, body); ok {
			pkt.CarStatus = &v
		} else {
			pkt.Known = false
		}
	case PacketIDFinalClassification:
		if v, ok := decodeFinalClassification(h, body); ok {
			pkt.FinalClassification = &v
		} else {
			pkt.Known = false
		}
	case PacketIDLobbyInfo:
		if v, ok := decodeLobbyInfo(h, body); ok {
			pkt.LobbyInfo = &v
		} else {
			pkt.Known = false
		}
	case PacketIDCarDamage:
		if v, ok := decodeCarDamage(h, body); ok {
			pkt.CarDamage = &v
		} else {
			pkt.Known = false
		}
	case PacketIDSessionHistory:
		if v, ok := decodeSessionHistory(h, body); ok {
			pkt.SessionHistory = &v
		} else {
			pkt.Known = false
		}
	}
	return pkt
}
