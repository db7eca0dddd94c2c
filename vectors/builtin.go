package vectors

import (
	"fmt"

	"github.com/tormodg/gonxt/mapping"
	"github.com/tormodg/gonxt/nxt"
)

// Builtin returns the default fixture set. The first two entries are
// the reference vectors the downstream suite was originally seeded
// with; the rest cover the other field encodings.
func Builtin() ([]Vector, error) {
	var out []Vector

	add := func(name string, t *nxt.Telegram, err error) error {
		if err != nil {
			return fmt.Errorf("building vector %s: %w", name, err)
		}
		out = append(out, FromTelegram(name, t))
		return nil
	}

	battLevel, err := nxt.GetBatteryLevel()
	if err := add("BATT_LEVEL", battLevel, err); err != nil {
		return nil, err
	}

	brickName, err := nxt.SetBrickName("test")
	if err := add("BRICK_NAME", brickName, err); err != nil {
		return nil, err
	}

	playTone, err := nxt.PlayTone(440, 1000)
	if err := add("PLAY_TONE", playTone, err); err != nil {
		return nil, err
	}

	startProgram, err := nxt.StartProgram("demo.rxe")
	if err := add("START_PROGRAM", startProgram, err); err != nil {
		return nil, err
	}

	outState, err := nxt.SetOutputState(mapping.OutPortA, 75,
		mapping.OutModeOn|mapping.OutModeRegulated, mapping.RegulationSpeed,
		0, mapping.RunStateRunning, mapping.RunForever)
	if err := add("SET_OUT_STATE", outState, err); err != nil {
		return nil, err
	}

	inMode, err := nxt.SetInputMode(mapping.InPort1, mapping.SensorSwitch,
		mapping.SensorModeBool)
	if err := add("SET_IN_MODE", inMode, err); err != nil {
		return nil, err
	}

	messageWrite, err := nxt.MessageWrite(0, []byte("hello"))
	if err := add("MESSAGE_WRITE", messageWrite, err); err != nil {
		return nil, err
	}

	openWrite, err := nxt.FileOpenWrite("data.log", 4096)
	if err := add("FILE_OPEN_WRITE", openWrite, err); err != nil {
		return nil, err
	}

	ioMapRead, err := nxt.ReadIOMap(0x00030001, 0, 8)
	if err := add("IOMAP_READ", ioMapRead, err); err != nil {
		return nil, err
	}

	keepAlive, err := nxt.KeepAlive()
	if err := add("KEEP_ALIVE", keepAlive, err); err != nil {
		return nil, err
	}

	return out, nil
}
