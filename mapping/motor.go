package mapping

import "fmt"

// RunForever as a tacho limit keeps the motor running until further
// instruction.
const RunForever uint32 = 0

// OutPort selects an output port or port combination. Not every command
// accepts the combination shorthands; SetOutputState does.
type OutPort uint8

const (
	OutPortA   OutPort = 0
	OutPortB   OutPort = 1
	OutPortC   OutPort = 2
	OutPortAB  OutPort = 3
	OutPortAC  OutPort = 4
	OutPortBC  OutPort = 5
	OutPortABC OutPort = 6
	OutPortAll OutPort = 0xFF
)

func (p OutPort) Valid() bool {
	return p <= OutPortABC || p == OutPortAll
}

func (p OutPort) String() string {
	switch p {
	case OutPortA:
		return "A"
	case OutPortB:
		return "B"
	case OutPortC:
		return "C"
	case OutPortAB:
		return "AB"
	case OutPortAC:
		return "AC"
	case OutPortBC:
		return "BC"
	case OutPortABC:
		return "ABC"
	case OutPortAll:
		return "ALL"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(p))
	}
}

// OutMode is the output mode bitfield of SetOutputState.
type OutMode uint8

const (
	OutModeIdle      OutMode = 0x00
	OutModeOn        OutMode = 0x01
	OutModeBrake     OutMode = 0x02
	OutModeRegulated OutMode = 0x04
)

// RegulationMode selects power regulation for a running motor.
type RegulationMode uint8

const (
	RegulationIdle  RegulationMode = 0
	RegulationSpeed RegulationMode = 1
	RegulationSync  RegulationMode = 2
)

func (m RegulationMode) Valid() bool {
	return m <= RegulationSync
}

func (m RegulationMode) String() string {
	switch m {
	case RegulationIdle:
		return "IDLE"
	case RegulationSpeed:
		return "SPEED"
	case RegulationSync:
		return "SYNC"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(m))
	}
}

// RunState tells the firmware whether to ramp the motor or hold power.
type RunState uint8

const (
	RunStateIdle     RunState = 0x00
	RunStateRampUp   RunState = 0x10
	RunStateRunning  RunState = 0x20
	RunStateRampDown RunState = 0x40
)

func (s RunState) Valid() bool {
	switch s {
	case RunStateIdle, RunStateRampUp, RunStateRunning, RunStateRampDown:
		return true
	}
	return false
}

func (s RunState) String() string {
	switch s {
	case RunStateIdle:
		return "IDLE"
	case RunStateRampUp:
		return "RAMP_UP"
	case RunStateRunning:
		return "RUNNING"
	case RunStateRampDown:
		return "RAMP_DOWN"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(s))
	}
}
