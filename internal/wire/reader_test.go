package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// In this feed, as in the teacher's ACC interface, all data is little-endian.
func TestReaderLittleEndian(t *testing.T) {
	r := NewReader([]byte{0x01, 0x00, 0x01, 0x00})
	assert.Equal(t, uint16(1), r.U16())
	assert.Equal(t, uint16(1), r.U16())
	assert.True(t, r.OK())
}

// Mirrors the teacher's TestShortCircuitAnd/TestShortCircuitOr: once a read
// runs past the end of the buffer, every subsequent read is a no-op and OK
// stays false.
func TestReaderShortCircuitsOnTruncation(t *testing.T) {
	r := NewReader([]byte{0x01})
	first := r.U16()
	assert.False(t, r.OK())
	assert.Equal(t, uint16(0), first)

	second := r.U8()
	assert.False(t, r.OK())
	assert.Equal(t, uint8(0), second)
}

func TestFixedStringTruncatesAtNull(t *testing.T) {
	r := NewReader([]byte{'M', 'a', 'x', 0, 0, 0, 0, 0})
	assert.Equal(t, "Max", r.FixedString(8))
	assert.True(t, r.OK())
}

func TestFixedStringInvalidUTF8YieldsEmptyNotFailure(t *testing.T) {
	r := NewReader([]byte{0xff, 0xfe, 'x', 0})
	s := r.FixedString(4)
	assert.Equal(t, "", s)
	assert.True(t, r.OK(), "invalid utf-8 in a string field must not fail the packet")
}

func TestFixedStringTruncationOnOverrun(t *testing.T) {
	name := make([]byte, 48)
	copy(name, "a very very very very long driver display name…")
	r := NewReader(name)
	s := r.FixedString(48)
	assert.LessOrEqual(t, len(s), 48)
}
