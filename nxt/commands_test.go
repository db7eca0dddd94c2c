package nxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tormodg/gonxt/mapping"
)

func TestGetBatteryLevel(t *testing.T) {
	tg, err := GetBatteryLevel()
	require.NoError(t, err)
	assert.Equal(t, battLevelVector, tg.Bytes())
}

func TestSetBrickName(t *testing.T) {
	tg, err := SetBrickName("test")
	require.NoError(t, err)
	assert.Equal(t, brickNameVector, tg.Bytes())
}

func TestSetBrickNameTruncates(t *testing.T) {
	tg, err := SetBrickName("a brick name well over the slot size")
	require.NoError(t, err)

	got := tg.Bytes()
	assert.Equal(t, 2+mapping.BrickNameLen, len(got))
	assert.Equal(t, []byte("a brick name we"), got[2:])
}

func TestPlayTone(t *testing.T) {
	tg, err := PlayTone(440, 1000)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x03, 0xB8, 0x01, 0xE8, 0x03}, tg.Bytes())
}

func TestStartProgram(t *testing.T) {
	tg, err := StartProgram("demo.rxe")
	require.NoError(t, err)

	want := append([]byte{0x00, 0x00}, []byte("demo.rxe")...)
	want = append(want, make([]byte, 12)...)
	assert.Equal(t, want, tg.Bytes())
}

func TestStartProgramBadName(t *testing.T) {
	_, err := StartProgram("a_name_that_is_way_too_long.rxe")
	require.Error(t, err)
	assert.IsType(t, FilenameError{}, err)
}

func TestPlaySoundFile(t *testing.T) {
	tg, err := PlaySoundFile("beep.rso", true)
	require.NoError(t, err)

	want := append([]byte{0x00, 0x02, 0x01}, []byte("beep.rso")...)
	want = append(want, make([]byte, 12)...)
	assert.Equal(t, want, tg.Bytes())
}

func TestSetOutputState(t *testing.T) {
	tg, err := SetOutputState(mapping.OutPortB, -75,
		mapping.OutModeOn|mapping.OutModeBrake|mapping.OutModeRegulated,
		mapping.RegulationSync, -100, mapping.RunStateRampUp, 360)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x00, 0x04,
		0x01,                   // port B
		0xB5,                   // power -75
		0x07,                   // on | brake | regulated
		0x02,                   // sync
		0x9C,                   // turn ratio -100
		0x10,                   // ramp up
		0x68, 0x01, 0x00, 0x00, // tacho limit 360
	}, tg.Bytes())
}

func TestSetOutputStateInvalidPort(t *testing.T) {
	_, err := SetOutputState(mapping.OutPort(7), 0, mapping.OutModeIdle,
		mapping.RegulationIdle, 0, mapping.RunStateIdle, 0)
	require.Error(t, err)
}

func TestSetInputMode(t *testing.T) {
	tg, err := SetInputMode(mapping.InPort4, mapping.SensorLightActive,
		mapping.SensorModePercent)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x05, 0x03, 0x05, 0x80}, tg.Bytes())
}

func TestSetInputModeInvalidMode(t *testing.T) {
	_, err := SetInputMode(mapping.InPort1, mapping.SensorSwitch, mapping.SensorMode(0x10))
	require.Error(t, err)
}

func TestMessageWrite(t *testing.T) {
	tg, err := MessageWrite(3, []byte("go"))
	require.NoError(t, err)
	// inbox, length incl. terminator, payload, NUL
	assert.Equal(t, []byte{0x00, 0x09, 0x03, 0x03, 'g', 'o', 0x00}, tg.Bytes())
}

func TestMessageWriteLimits(t *testing.T) {
	_, err := MessageWrite(mapping.MaxInboxID+1, []byte("x"))
	require.Error(t, err)

	_, err = MessageWrite(0, make([]byte, mapping.MaxMessageLen+1))
	require.Error(t, err)

	tg, err := MessageWrite(mapping.MaxInboxID, make([]byte, mapping.MaxMessageLen))
	require.NoError(t, err)
	assert.Equal(t, 2+2+mapping.MaxMessageLen+1, tg.Len())
}

func TestMessageRead(t *testing.T) {
	tg, err := MessageRead(10, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x13, 0x0A, 0x00, 0x01}, tg.Bytes())
}

func TestResetMotorPosition(t *testing.T) {
	tg, err := ResetMotorPosition(mapping.OutPortC, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x0A, 0x02, 0x01}, tg.Bytes())
}

func TestLsWrite(t *testing.T) {
	tg, err := LsWrite(mapping.InPort2, []byte{0x02, 0x42}, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x0F, 0x01, 0x02, 0x01, 0x02, 0x42}, tg.Bytes())
}

func TestFileOpenWrite(t *testing.T) {
	tg, err := FileOpenWrite("data.log", 4096)
	require.NoError(t, err)

	want := append([]byte{0x01, 0x81}, []byte("data.log")...)
	want = append(want, make([]byte, 12)...)
	want = append(want, 0x00, 0x10, 0x00, 0x00)
	assert.Equal(t, want, tg.Bytes())
}

func TestFileRead(t *testing.T) {
	tg, err := FileRead(2, 512)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x82, 0x02, 0x00, 0x02, 0x00, 0x00}, tg.Bytes())
}

func TestFileClose(t *testing.T) {
	tg, err := FileClose(7)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x84, 0x07}, tg.Bytes())
}

func TestReadIOMap(t *testing.T) {
	tg, err := ReadIOMap(0x000A0001, 0x0010, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x01, 0x94,
		0x01, 0x00, 0x0A, 0x00,
		0x10, 0x00,
		0x08, 0x00,
	}, tg.Bytes())
}

func TestWriteIOMap(t *testing.T) {
	tg, err := WriteIOMap(0x000A0001, 0x0010, []byte{0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x01, 0x95,
		0x01, 0x00, 0x0A, 0x00,
		0x10, 0x00,
		0x02, 0x00,
		0xAA, 0xBB,
	}, tg.Bytes())
}

func TestBoot(t *testing.T) {
	tg, err := Boot()
	require.NoError(t, err)

	want := append([]byte{0x01, 0x97}, []byte("Let's dance: SAMBA")...)
	want = append(want, 0x00)
	assert.Equal(t, want, tg.Bytes())
}

func TestNoFieldCommands(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Telegram, error)
		want  []byte
	}{
		{"stop program", StopProgram, []byte{0x00, 0x01}},
		{"stop sound", StopSoundPlayback, []byte{0x00, 0x0C}},
		{"keep alive", KeepAlive, []byte{0x00, 0x0D}},
		{"current program", GetCurrentProgramName, []byte{0x00, 0x11}},
		{"firmware version", GetFirmwareVersion, []byte{0x01, 0x88}},
		{"device info", GetDeviceInfo, []byte{0x01, 0x9B}},
		{"delete user flash", DeleteUserFlash, []byte{0x01, 0xA0}},
		{"bt factory reset", BluetoothFactoryReset, []byte{0x01, 0xA4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tg, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.want, tg.Bytes())
		})
	}
}

func TestPollCommands(t *testing.T) {
	tg, err := PollCommandLength(mapping.BufHighSpeed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xA1, 0x01}, tg.Bytes())

	tg, err = PollCommand(mapping.BufUSB, 32)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xA2, 0x00, 0x20}, tg.Bytes())
}
