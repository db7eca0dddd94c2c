package nxt

import "fmt"

// InvalidOpcodeError reports construction with an opcode outside the
// closed command set. This is a caller bug, not a recoverable condition.
type InvalidOpcodeError struct {
	Opcode Opcode
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02X", uint8(e.Opcode))
}

// ValueOutOfRangeError reports an integer field value that does not fit
// the requested fixed width. Value holds the raw bits; Signed says how
// to read them.
type ValueOutOfRangeError struct {
	Value  uint64
	Signed bool
	Width  int
}

func (e ValueOutOfRangeError) Error() string {
	if e.Signed {
		return fmt.Sprintf("value %d does not fit in %d byte(s)", int64(e.Value), e.Width)
	}
	return fmt.Sprintf("value %d does not fit in %d byte(s)", e.Value, e.Width)
}

// FilenameError reports a filename that cannot occupy the fixed
// 20-byte slot.
type FilenameError struct {
	Name   string
	Reason string
}

func (e FilenameError) Error() string {
	return fmt.Sprintf("invalid filename %q: %s", e.Name, e.Reason)
}

// FieldWidthError reports an unsupported integer field width.
type FieldWidthError struct {
	Width int
}

func (e FieldWidthError) Error() string {
	return fmt.Sprintf("unsupported field width %d: must be 1, 2 or 4", e.Width)
}
