package nxt

import (
	"fmt"

	"github.com/tormodg/gonxt/mapping"
)

// Command creation functions. Each builds a complete request telegram;
// none of them touch a transport. Field order follows the firmware
// command tables.

// StartProgram requests execution of a compiled program file.
func StartProgram(name string) (*Telegram, error) {
	t, err := NewTelegram(DirectStartProgram)
	if err != nil {
		return nil, err
	}
	if err := t.AddFilename(name); err != nil {
		return nil, err
	}
	return t, nil
}

// StopProgram halts the running program.
func StopProgram() (*Telegram, error) {
	return NewTelegram(DirectStopProgram)
}

// PlaySoundFile plays a sound file, optionally looping.
func PlaySoundFile(file string, loop bool) (*Telegram, error) {
	t, err := NewTelegram(DirectPlaySoundFile)
	if err != nil {
		return nil, err
	}
	t.AddBool(loop)
	if err := t.AddFilename(file); err != nil {
		return nil, err
	}
	return t, nil
}

// PlayTone plays a tone at freq Hz for durationMs milliseconds.
func PlayTone(freq, durationMs uint16) (*Telegram, error) {
	t, err := NewTelegram(DirectPlayTone)
	if err != nil {
		return nil, err
	}
	t.AddU16(freq)
	t.AddU16(durationMs)
	return t, nil
}

// SetOutputState configures a motor output port.
func SetOutputState(port mapping.OutPort, power int8, mode mapping.OutMode,
	regulation mapping.RegulationMode, turnRatio int8, runState mapping.RunState,
	tachoLimit uint32) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid output port 0x%02X", uint8(port))
	}
	if !regulation.Valid() {
		return nil, fmt.Errorf("invalid regulation mode 0x%02X", uint8(regulation))
	}
	if !runState.Valid() {
		return nil, fmt.Errorf("invalid run state 0x%02X", uint8(runState))
	}
	t, err := NewTelegram(DirectSetOutState)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	t.AddI8(power)
	t.AddU8(uint8(mode))
	t.AddU8(uint8(regulation))
	t.AddI8(turnRatio)
	t.AddU8(uint8(runState))
	t.AddU32(tachoLimit)
	return t, nil
}

// SetInputMode configures a sensor input port.
func SetInputMode(port mapping.InPort, sensorType mapping.SensorType,
	sensorMode mapping.SensorMode) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid input port 0x%02X", uint8(port))
	}
	if !sensorType.Valid() {
		return nil, fmt.Errorf("invalid sensor type 0x%02X", uint8(sensorType))
	}
	if !sensorMode.Valid() {
		return nil, fmt.Errorf("invalid sensor mode 0x%02X", uint8(sensorMode))
	}
	t, err := NewTelegram(DirectSetInMode)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	t.AddU8(uint8(sensorType))
	t.AddU8(uint8(sensorMode))
	return t, nil
}

// GetOutputState requests the state of a motor output port.
func GetOutputState(port mapping.OutPort) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid output port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectGetOutState)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	return t, nil
}

// GetInputValues requests the current readings of a sensor port.
func GetInputValues(port mapping.InPort) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid input port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectGetInVals)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	return t, nil
}

// ResetInputScaledValue zeroes the scaled reading of a sensor port.
func ResetInputScaledValue(port mapping.InPort) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid input port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectResetInVal)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	return t, nil
}

// MessageWrite posts a message to a mailbox queue. The length byte and
// trailing NUL are part of the wire format.
func MessageWrite(inbox uint8, message []byte) (*Telegram, error) {
	if inbox > mapping.MaxInboxID {
		return nil, fmt.Errorf("invalid mailbox ID %d", inbox)
	}
	if len(message) > mapping.MaxMessageLen {
		return nil, fmt.Errorf("message too long: %d bytes (max %d)", len(message), mapping.MaxMessageLen)
	}
	t, err := NewTelegram(DirectMessageWrite)
	if err != nil {
		return nil, err
	}
	t.AddU8(inbox)
	t.AddU8(uint8(len(message)) + 1)
	t.AddBytes(message)
	t.AddU8(0)
	return t, nil
}

// ResetMotorPosition resets a motor's tacho counter, relative to the
// last movement if relative is set.
func ResetMotorPosition(port mapping.OutPort, relative bool) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid output port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectResetPosition)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	t.AddBool(relative)
	return t, nil
}

// GetBatteryLevel requests the battery voltage in millivolts.
func GetBatteryLevel() (*Telegram, error) {
	return NewTelegram(DirectGetBattLevel)
}

// StopSoundPlayback stops any playing sound.
func StopSoundPlayback() (*Telegram, error) {
	return NewTelegram(DirectStopSound)
}

// KeepAlive resets the brick's auto-sleep timer.
func KeepAlive() (*Telegram, error) {
	return NewTelegram(DirectKeepAlive)
}

// LsGetStatus asks how many bytes are ready on a low-speed (I2C) port.
func LsGetStatus(port mapping.InPort) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid input port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectLsGetStatus)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	return t, nil
}

// LsWrite sends data on a low-speed (I2C) port and declares how many
// reply bytes to expect.
func LsWrite(port mapping.InPort, txData []byte, rxBytes uint8) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid input port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectLsWrite)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	t.AddU8(uint8(len(txData)))
	t.AddU8(rxBytes)
	t.AddBytes(txData)
	return t, nil
}

// LsRead reads buffered data from a low-speed (I2C) port.
func LsRead(port mapping.InPort) (*Telegram, error) {
	if !port.Valid() {
		return nil, fmt.Errorf("invalid input port 0x%02X", uint8(port))
	}
	t, err := NewTelegram(DirectLsRead)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(port))
	return t, nil
}

// GetCurrentProgramName requests the name of the running program.
func GetCurrentProgramName() (*Telegram, error) {
	return NewTelegram(DirectGetCurrProgram)
}

// MessageRead fetches a message from a remote mailbox into a local one.
func MessageRead(remoteInbox, localInbox uint8, remove bool) (*Telegram, error) {
	t, err := NewTelegram(DirectMessageRead)
	if err != nil {
		return nil, err
	}
	t.AddU8(remoteInbox)
	t.AddU8(localInbox)
	t.AddBool(remove)
	return t, nil
}

// FileOpenRead opens a file for reading.
func FileOpenRead(name string) (*Telegram, error) {
	return filenameCommand(SystemOpenRead, name)
}

// FileOpenWrite opens a file for writing with a declared size.
func FileOpenWrite(name string, length uint32) (*Telegram, error) {
	t, err := filenameCommand(SystemOpenWrite, name)
	if err != nil {
		return nil, err
	}
	t.AddU32(length)
	return t, nil
}

// FileRead reads up to length bytes from an open file handle.
func FileRead(handle uint8, length uint32) (*Telegram, error) {
	t, err := NewTelegram(SystemRead)
	if err != nil {
		return nil, err
	}
	t.AddU8(handle)
	t.AddU32(length)
	return t, nil
}

// FileWrite appends data to an open file handle.
func FileWrite(handle uint8, data []byte) (*Telegram, error) {
	t, err := NewTelegram(SystemWrite)
	if err != nil {
		return nil, err
	}
	t.AddU8(handle)
	t.AddBytes(data)
	return t, nil
}

// FileClose closes an open file handle.
func FileClose(handle uint8) (*Telegram, error) {
	return handleCommand(SystemClose, handle)
}

// FileDelete removes a file by name.
func FileDelete(name string) (*Telegram, error) {
	return filenameCommand(SystemDelete, name)
}

// FileFindFirst starts a directory search for the given pattern.
func FileFindFirst(pattern string) (*Telegram, error) {
	return filenameCommand(SystemFindFirst, pattern)
}

// FileFindNext continues a directory search.
func FileFindNext(handle uint8) (*Telegram, error) {
	return handleCommand(SystemFindNext, handle)
}

// FileOpenWriteLinear opens a file in contiguous flash for writing.
func FileOpenWriteLinear(name string, length uint32) (*Telegram, error) {
	t, err := filenameCommand(SystemOpenWriteLinear, name)
	if err != nil {
		return nil, err
	}
	t.AddU32(length)
	return t, nil
}

// FileOpenWriteData opens a data file for writing.
func FileOpenWriteData(name string, length uint32) (*Telegram, error) {
	t, err := filenameCommand(SystemOpenWriteData, name)
	if err != nil {
		return nil, err
	}
	t.AddU32(length)
	return t, nil
}

// FileOpenAppendData opens a data file for appending.
func FileOpenAppendData(name string) (*Telegram, error) {
	return filenameCommand(SystemOpenAppendData, name)
}

// ModuleFindFirst starts a firmware module search for the given pattern.
func ModuleFindFirst(pattern string) (*Telegram, error) {
	return filenameCommand(SystemFindFirstModule, pattern)
}

// ModuleFindNext continues a firmware module search.
func ModuleFindNext(handle uint8) (*Telegram, error) {
	return handleCommand(SystemFindNextModule, handle)
}

// ModuleClose closes a module search handle.
func ModuleClose(handle uint8) (*Telegram, error) {
	return handleCommand(SystemCloseModHandle, handle)
}

// ReadIOMap reads count bytes from a module's IO map at offset.
func ReadIOMap(moduleID uint32, offset, count uint16) (*Telegram, error) {
	t, err := NewTelegram(SystemIOMapRead)
	if err != nil {
		return nil, err
	}
	t.AddU32(moduleID)
	t.AddU16(offset)
	t.AddU16(count)
	return t, nil
}

// WriteIOMap writes data into a module's IO map at offset.
func WriteIOMap(moduleID uint32, offset uint16, data []byte) (*Telegram, error) {
	t, err := NewTelegram(SystemIOMapWrite)
	if err != nil {
		return nil, err
	}
	t.AddU32(moduleID)
	t.AddU16(offset)
	if err := t.AddUint(2, uint64(len(data))); err != nil {
		return nil, err
	}
	t.AddBytes(data)
	return t, nil
}

// Boot sends the firmware reboot handshake. Not recoverable without
// reflashing; callers get no second confirmation here.
func Boot() (*Telegram, error) {
	t, err := NewTelegram(SystemBootCmd)
	if err != nil {
		return nil, err
	}
	t.AddBytes([]byte("Let's dance: SAMBA\x00"))
	return t, nil
}

// SetBrickName sets the device name. Names longer than the fixed slot
// are silently truncated, matching the on-wire fixed-width field.
func SetBrickName(name string) (*Telegram, error) {
	t, err := NewTelegram(SystemSetBrickName)
	if err != nil {
		return nil, err
	}
	t.AddString(mapping.BrickNameLen, name)
	return t, nil
}

// GetDeviceInfo requests the name, Bluetooth address and flash stats.
func GetDeviceInfo() (*Telegram, error) {
	return NewTelegram(SystemDeviceInfo)
}

// GetFirmwareVersion requests protocol and firmware version numbers.
func GetFirmwareVersion() (*Telegram, error) {
	return NewTelegram(SystemVersions)
}

// DeleteUserFlash erases the user flash area.
func DeleteUserFlash() (*Telegram, error) {
	return NewTelegram(SystemDeleteUserFlash)
}

// PollCommandLength asks how many bytes are waiting in a poll buffer.
func PollCommandLength(buf mapping.BufType) (*Telegram, error) {
	if !buf.Valid() {
		return nil, fmt.Errorf("invalid poll buffer 0x%02X", uint8(buf))
	}
	t, err := NewTelegram(SystemPollCmdLen)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(buf))
	return t, nil
}

// PollCommand reads length bytes from a poll buffer.
func PollCommand(buf mapping.BufType, length uint8) (*Telegram, error) {
	if !buf.Valid() {
		return nil, fmt.Errorf("invalid poll buffer 0x%02X", uint8(buf))
	}
	t, err := NewTelegram(SystemPollCmd)
	if err != nil {
		return nil, err
	}
	t.AddU8(uint8(buf))
	t.AddU8(length)
	return t, nil
}

// BluetoothFactoryReset resets the Bluetooth settings to defaults.
func BluetoothFactoryReset() (*Telegram, error) {
	return NewTelegram(SystemBtFactoryReset)
}

func filenameCommand(op Opcode, name string) (*Telegram, error) {
	t, err := NewTelegram(op)
	if err != nil {
		return nil, err
	}
	if err := t.AddFilename(name); err != nil {
		return nil, err
	}
	return t, nil
}

func handleCommand(op Opcode, handle uint8) (*Telegram, error) {
	t, err := NewTelegram(op)
	if err != nil {
		return nil, err
	}
	t.AddU8(handle)
	return t, nil
}
