package nxt

import (
	"encoding/binary"

	"github.com/tormodg/gonxt/mapping"
)

// Telegram is a single outbound command packet under construction. The
// buffer is seeded with the two framing bytes at construction and only
// ever grows; appends serialize field values in call order after the
// framing. A Telegram is not safe for concurrent use and is built and
// read within one call sequence.
type Telegram struct {
	opcode Opcode
	buf    []byte
}

// NewTelegram seeds a telegram for the given opcode. Opcodes outside
// the closed command set fail with InvalidOpcodeError.
func NewTelegram(op Opcode) (*Telegram, error) {
	if !op.Valid() {
		return nil, InvalidOpcodeError{Opcode: op}
	}
	t := &Telegram{
		opcode: op,
		buf:    make([]byte, 0, 32),
	}
	t.buf = append(t.buf, byte(op.PacketType()), byte(op))
	return t, nil
}

// Opcode returns the opcode the telegram was created with.
func (t *Telegram) Opcode() Opcode {
	return t.opcode
}

// Len returns the current buffer length, framing bytes included.
func (t *Telegram) Len() int {
	return len(t.buf)
}

// Bytes returns a snapshot of the wire bytes built so far. The caller
// gets its own copy, so later appends do not show through.
func (t *Telegram) Bytes() []byte {
	out := make([]byte, len(t.buf))
	copy(out, t.buf)
	return out
}

// AddString appends a fixed-width string field: exactly maxLen bytes,
// the value truncated if longer and zero-padded if shorter. Truncation
// is silent; the fixed slot is the wire contract, not the value length.
func (t *Telegram) AddString(maxLen int, s string) {
	if maxLen <= 0 {
		return
	}
	b := []byte(s)
	if len(b) > maxLen {
		b = b[:maxLen]
	}
	t.buf = append(t.buf, b...)
	for i := len(b); i < maxLen; i++ {
		t.buf = append(t.buf, 0)
	}
}

// AddFilename appends the fixed 20-byte filename slot. The name must be
// ASCII and leave room for the NUL terminator; nothing is appended on
// failure.
func (t *Telegram) AddFilename(name string) error {
	if len(name)+1 > mapping.FilenameLen {
		return FilenameError{Name: name, Reason: "too long"}
	}
	for i := 0; i < len(name); i++ {
		if name[i] > 0x7F {
			return FilenameError{Name: name, Reason: "must be ASCII"}
		}
	}
	t.AddString(mapping.FilenameLen, name)
	return nil
}

// AddBool appends a single byte, 1 for true and 0 for false.
func (t *Telegram) AddBool(v bool) {
	if v {
		t.buf = append(t.buf, 1)
	} else {
		t.buf = append(t.buf, 0)
	}
}

// AddU8 appends a one-byte unsigned value.
func (t *Telegram) AddU8(v uint8) {
	t.buf = append(t.buf, v)
}

// AddI8 appends a one-byte signed value.
func (t *Telegram) AddI8(v int8) {
	t.buf = append(t.buf, byte(v))
}

// AddU16 appends a little-endian two-byte unsigned value.
func (t *Telegram) AddU16(v uint16) {
	t.buf = binary.LittleEndian.AppendUint16(t.buf, v)
}

// AddI16 appends a little-endian two-byte signed value.
func (t *Telegram) AddI16(v int16) {
	t.buf = binary.LittleEndian.AppendUint16(t.buf, uint16(v))
}

// AddU32 appends a little-endian four-byte unsigned value.
func (t *Telegram) AddU32(v uint32) {
	t.buf = binary.LittleEndian.AppendUint32(t.buf, v)
}

// AddI32 appends a little-endian four-byte signed value.
func (t *Telegram) AddI32(v int32) {
	t.buf = binary.LittleEndian.AppendUint32(t.buf, uint32(v))
}

// AddBytes appends raw bytes as-is.
func (t *Telegram) AddBytes(data []byte) {
	t.buf = append(t.buf, data...)
}

// AddUint appends an unsigned value little-endian at the requested
// width (1, 2 or 4 bytes). A value that does not fit the width fails
// with ValueOutOfRangeError and appends nothing.
func (t *Telegram) AddUint(width int, v uint64) error {
	switch width {
	case 1:
		if v > 0xFF {
			return ValueOutOfRangeError{Value: v, Width: width}
		}
		t.AddU8(uint8(v))
	case 2:
		if v > 0xFFFF {
			return ValueOutOfRangeError{Value: v, Width: width}
		}
		t.AddU16(uint16(v))
	case 4:
		if v > 0xFFFFFFFF {
			return ValueOutOfRangeError{Value: v, Width: width}
		}
		t.AddU32(uint32(v))
	default:
		return FieldWidthError{Width: width}
	}
	return nil
}

// AddInt appends a signed value little-endian (two's complement) at the
// requested width (1, 2 or 4 bytes). A value that does not fit the
// width fails with ValueOutOfRangeError and appends nothing.
func (t *Telegram) AddInt(width int, v int64) error {
	switch width {
	case 1:
		if v < -0x80 || v > 0x7F {
			return ValueOutOfRangeError{Value: uint64(v), Signed: true, Width: width}
		}
		t.AddI8(int8(v))
	case 2:
		if v < -0x8000 || v > 0x7FFF {
			return ValueOutOfRangeError{Value: uint64(v), Signed: true, Width: width}
		}
		t.AddI16(int16(v))
	case 4:
		if v < -0x80000000 || v > 0x7FFFFFFF {
			return ValueOutOfRangeError{Value: uint64(v), Signed: true, Width: width}
		}
		t.AddI32(int32(v))
	default:
		return FieldWidthError{Width: width}
	}
	return nil
}
