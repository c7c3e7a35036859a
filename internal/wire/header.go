package wire

// HeaderSize is the byte length of the older 24-byte packet header this
// implementation carries coherently throughout (spec.md §4.2/§6). The newer
// 29-byte layout — game-year byte, overall frame identifier — is not
// decoded; see SPEC_FULL.md §1 for why.
const HeaderSize = 24

// Header is the fixed preamble present on every packet, little-endian and
// tightly packed (spec.md §6). Field order matches
// original_source/src/packet.rs's Header byte-for-byte.
type Header struct {
	PacketFormat            uint16 // e.g. 2022
	GameMajorVersion        uint8
	GameMinorVersion        uint8
	PacketVersion           uint8 // version of this packet type, starts at 1
	PacketID                uint8 // raw on-wire id, see codec.PacketID
	SessionUID              uint64
	SessionTime             float32
	FrameIdentifier         uint32
	PlayerCarIndex          uint8
	SecondaryPlayerCarIndex uint8 // 255 if no second player (splitscreen)
}

// DecodeHeader reads the fixed 24-byte header from the front of a
// datagram. ok is false if fewer than HeaderSize bytes were available.
func DecodeHeader(b []byte) (h Header, ok bool) {
	if len(b) < HeaderSize {
		return Header{}, false
	}
	d := NewReader(b[:HeaderSize])
	h.PacketFormat = d.U16()
	h.GameMajorVersion = d.U8()
	h.GameMinorVersion = d.U8()
	h.PacketVersion = d.U8()
	h.PacketID = d.U8()
	h.SessionUID = d.U64()
	h.SessionTime = d.F32()
	h.FrameIdentifier = d.U32()
	h.PlayerCarIndex = d.U8()
	h.SecondaryPlayerCarIndex = d.U8()
	return h, d.OK()
}

// Encode reproduces the original 24 header bytes. Used to test the
// round-trip invariant in spec.md §8.1; nothing in the live receive path
// re-encodes a header.
func (h Header) Encode() []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = appendU16(buf, h.PacketFormat)
	buf = append(buf, h.GameMajorVersion, h.GameMinorVersion, h.PacketVersion, h.PacketID)
	buf = appendU64(buf, h.SessionUID)
	buf = appendF32(buf, h.SessionTime)
	buf = appendU32(buf, h.FrameIdentifier)
	buf = append(buf, h.PlayerCarIndex, h.SecondaryPlayerCarIndex)
	return buf
}
