package mapping

import "fmt"

// StatusCode is the status byte the brick returns as the first data byte
// of every reply. StatusOK means the command succeeded; anything else is
// an error condition defined by the firmware command tables.
type StatusCode uint8

const (
	StatusOK                  StatusCode = 0x00
	StatusPendingTransaction  StatusCode = 0x20
	StatusMailboxQueueEmpty   StatusCode = 0x40
	StatusNoMoreHandles       StatusCode = 0x81
	StatusNoSpace             StatusCode = 0x82
	StatusNoMoreFiles         StatusCode = 0x83
	StatusEndOfFileExpected   StatusCode = 0x84
	StatusEndOfFile           StatusCode = 0x85
	StatusNotALinearFile      StatusCode = 0x86
	StatusFileNotFound        StatusCode = 0x87
	StatusHandleAlreadyClosed StatusCode = 0x88
	StatusNoLinearSpace       StatusCode = 0x89
	StatusUndefinedError      StatusCode = 0x8A
	StatusFileBusy            StatusCode = 0x8B
	StatusNoWriteBuffers      StatusCode = 0x8C
	StatusAppendNotPossible   StatusCode = 0x8D
	StatusFileIsFull          StatusCode = 0x8E
	StatusFileExists          StatusCode = 0x8F
	StatusModuleNotFound      StatusCode = 0x90
	StatusOutOfBounds         StatusCode = 0x91
	StatusIllegalFileName     StatusCode = 0x92
	StatusIllegalHandle       StatusCode = 0x93
	StatusRequestFailed       StatusCode = 0xBD
	StatusUnknownCommand      StatusCode = 0xBE
	StatusInsanePacket        StatusCode = 0xBF
	StatusValueOutOfRange     StatusCode = 0xC0
	StatusBusError            StatusCode = 0xDD
	StatusBufferFull          StatusCode = 0xDE
	StatusInvalidChannel      StatusCode = 0xDF
	StatusUnconfiguredChannel StatusCode = 0xE0
	StatusNoActiveProgram     StatusCode = 0xEC
	StatusIllegalSize         StatusCode = 0xED
	StatusIllegalQueueID      StatusCode = 0xEE
	StatusInvalidField        StatusCode = 0xEF
	StatusBadInputOrOutput    StatusCode = 0xF0
	StatusInsufficientMemory  StatusCode = 0xFB
	StatusBadArguments        StatusCode = 0xFF
)

var statusText = map[StatusCode]string{
	StatusOK:                  "success",
	StatusPendingTransaction:  "pending communication transaction in progress",
	StatusMailboxQueueEmpty:   "specified mailbox queue is empty",
	StatusNoMoreHandles:       "no more handles",
	StatusNoSpace:             "no space",
	StatusNoMoreFiles:         "no more files",
	StatusEndOfFileExpected:   "end of file expected",
	StatusEndOfFile:           "end of file",
	StatusNotALinearFile:      "not a linear file",
	StatusFileNotFound:        "file not found",
	StatusHandleAlreadyClosed: "handle already closed",
	StatusNoLinearSpace:       "no linear space",
	StatusUndefinedError:      "undefined error",
	StatusFileBusy:            "file is busy",
	StatusNoWriteBuffers:      "no write buffers",
	StatusAppendNotPossible:   "append not possible",
	StatusFileIsFull:          "file is full",
	StatusFileExists:          "file exists",
	StatusModuleNotFound:      "module not found",
	StatusOutOfBounds:         "out of bounds",
	StatusIllegalFileName:     "illegal file name",
	StatusIllegalHandle:       "illegal handle",
	StatusRequestFailed:       "request failed",
	StatusUnknownCommand:      "unknown command opcode",
	StatusInsanePacket:        "insane packet",
	StatusValueOutOfRange:     "data contains out-of-range values",
	StatusBusError:            "communication bus error",
	StatusBufferFull:          "no free memory in communication buffer",
	StatusInvalidChannel:      "specified channel/connection is not valid",
	StatusUnconfiguredChannel: "specified channel/connection not configured or busy",
	StatusNoActiveProgram:     "no active program",
	StatusIllegalSize:         "illegal size specified",
	StatusIllegalQueueID:      "illegal mailbox queue ID specified",
	StatusInvalidField:        "attempted to access invalid field of a structure",
	StatusBadInputOrOutput:    "bad input or output specified",
	StatusInsufficientMemory:  "insufficient memory available",
	StatusBadArguments:        "bad arguments",
}

func (s StatusCode) String() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(s))
}

// Err maps the status byte to an error, nil for StatusOK.
func (s StatusCode) Err() error {
	if s == StatusOK {
		return nil
	}
	return BrickError{Status: s}
}

// BrickError wraps a non-zero reply status from the brick.
type BrickError struct {
	Status StatusCode
}

func (e BrickError) Error() string {
	return fmt.Sprintf("brick error 0x%02X: %s", uint8(e.Status), e.Status)
}
