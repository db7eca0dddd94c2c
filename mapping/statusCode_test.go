package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeString(t *testing.T) {
	assert.Equal(t, "success", StatusOK.String())
	assert.Equal(t, "file not found", StatusFileNotFound.String())
	assert.Equal(t, "bad arguments", StatusBadArguments.String())
	assert.Equal(t, "UNKNOWN(0x42)", StatusCode(0x42).String())
}

func TestStatusCodeErr(t *testing.T) {
	assert.NoError(t, StatusOK.Err())

	err := StatusFileNotFound.Err()
	require.Error(t, err)
	assert.IsType(t, BrickError{}, err)
	assert.Contains(t, err.Error(), "file not found")
	assert.Contains(t, err.Error(), "0x87")
}

func TestPacketTypeString(t *testing.T) {
	assert.Equal(t, "DIRECT", PacketDirect.String())
	assert.Equal(t, "SYSTEM", PacketSystem.String())
	assert.Equal(t, "REPLY", PacketReply.String())
	assert.Equal(t, "SYSTEM_NO_REPLY", PacketSystemNoReply.String())
	assert.Equal(t, "UNKNOWN(0x42)", PacketType(0x42).String())
}

func TestOutPortValid(t *testing.T) {
	for _, p := range []OutPort{OutPortA, OutPortB, OutPortC, OutPortAB, OutPortAC, OutPortBC, OutPortABC, OutPortAll} {
		assert.True(t, p.Valid(), "port %s", p)
	}
	assert.False(t, OutPort(7).Valid())
	assert.False(t, OutPort(0xFE).Valid())
}

func TestRunStateValid(t *testing.T) {
	for _, s := range []RunState{RunStateIdle, RunStateRampUp, RunStateRunning, RunStateRampDown} {
		assert.True(t, s.Valid(), "state %s", s)
	}
	assert.False(t, RunState(0x30).Valid())
}

func TestSensorModeValid(t *testing.T) {
	for _, m := range []SensorMode{SensorModeRaw, SensorModeBool, SensorModeEdge, SensorModePulse,
		SensorModePercent, SensorModeCelsius, SensorModeFahrenheit, SensorModeRotation} {
		assert.True(t, m.Valid())
	}
	assert.False(t, SensorMode(0x10).Valid())
}
