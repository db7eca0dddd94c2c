package mapping

import "fmt"

// InPort selects one of the four sensor ports.
type InPort uint8

const (
	InPort1 InPort = 0
	InPort2 InPort = 1
	InPort3 InPort = 2
	InPort4 InPort = 3
)

func (p InPort) Valid() bool {
	return p <= InPort4
}

func (p InPort) String() string {
	if p.Valid() {
		return fmt.Sprintf("S%d", uint8(p)+1)
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(p))
}

// SensorType identifies the hardware attached to an input port.
type SensorType uint8

const (
	SensorNone          SensorType = 0
	SensorSwitch        SensorType = 1
	SensorTemperature   SensorType = 2
	SensorReflection    SensorType = 3
	SensorAngle         SensorType = 4
	SensorLightActive   SensorType = 5
	SensorLightInactive SensorType = 6
	SensorSoundDB       SensorType = 7
	SensorSoundDBA      SensorType = 8
	SensorCustom        SensorType = 9
	SensorLowSpeed      SensorType = 10
	SensorLowSpeed9V    SensorType = 11
	SensorHighSpeed     SensorType = 12
	SensorColourFull    SensorType = 13
	SensorColourRed     SensorType = 14
	SensorColourGreen   SensorType = 15
	SensorColourBlue    SensorType = 16
	SensorColourNone    SensorType = 17
	SensorColourExit    SensorType = 18
)

func (t SensorType) Valid() bool {
	return t <= SensorColourExit
}

// SensorMode selects how raw readings are interpreted and scaled.
type SensorMode uint8

const (
	SensorModeRaw        SensorMode = 0x00
	SensorModeBool       SensorMode = 0x20
	SensorModeEdge       SensorMode = 0x40
	SensorModePulse      SensorMode = 0x60
	SensorModePercent    SensorMode = 0x80
	SensorModeCelsius    SensorMode = 0xA0
	SensorModeFahrenheit SensorMode = 0xC0
	SensorModeRotation   SensorMode = 0xE0
)

func (m SensorMode) Valid() bool {
	switch m {
	case SensorModeRaw, SensorModeBool, SensorModeEdge, SensorModePulse,
		SensorModePercent, SensorModeCelsius, SensorModeFahrenheit, SensorModeRotation:
		return true
	}
	return false
}

// BufType selects which poll buffer a poll command reads.
type BufType uint8

const (
	BufUSB       BufType = 0
	BufHighSpeed BufType = 1
)

func (b BufType) Valid() bool {
	return b <= BufHighSpeed
}
