package nxt

import (
	"fmt"

	"github.com/tormodg/gonxt/mapping"
)

// Opcode identifies an NXT command. Direct commands live below 0x80,
// system commands at 0x80 and above; the high bit decides the
// command-category tag written ahead of the opcode.
type Opcode uint8

const (
	DirectStartProgram      Opcode = 0x00
	DirectStopProgram       Opcode = 0x01
	DirectPlaySoundFile     Opcode = 0x02
	DirectPlayTone          Opcode = 0x03
	DirectSetOutState       Opcode = 0x04
	DirectSetInMode         Opcode = 0x05
	DirectGetOutState       Opcode = 0x06
	DirectGetInVals         Opcode = 0x07
	DirectResetInVal        Opcode = 0x08
	DirectMessageWrite      Opcode = 0x09
	DirectResetPosition     Opcode = 0x0A
	DirectGetBattLevel      Opcode = 0x0B
	DirectStopSound         Opcode = 0x0C
	DirectKeepAlive         Opcode = 0x0D
	DirectLsGetStatus       Opcode = 0x0E
	DirectLsWrite           Opcode = 0x0F
	DirectLsRead            Opcode = 0x10
	DirectGetCurrProgram    Opcode = 0x11
	DirectGetButtonState    Opcode = 0x12
	DirectMessageRead       Opcode = 0x13
	DirectDatalogRead       Opcode = 0x19
	DirectDatalogSetTimes   Opcode = 0x1A
	DirectBtGetContactCount Opcode = 0x1B
	DirectBtGetContactName  Opcode = 0x1C
	DirectBtGetConnCount    Opcode = 0x1D
	DirectBtGetConnName     Opcode = 0x1E
	DirectSetProperty       Opcode = 0x1F
	DirectGetProperty       Opcode = 0x20
	DirectUpdateResetCount  Opcode = 0x21

	SystemOpenRead        Opcode = 0x80
	SystemOpenWrite       Opcode = 0x81
	SystemRead            Opcode = 0x82
	SystemWrite           Opcode = 0x83
	SystemClose           Opcode = 0x84
	SystemDelete          Opcode = 0x85
	SystemFindFirst       Opcode = 0x86
	SystemFindNext        Opcode = 0x87
	SystemVersions        Opcode = 0x88
	SystemOpenWriteLinear Opcode = 0x89
	SystemOpenReadLinear  Opcode = 0x8A
	SystemOpenWriteData   Opcode = 0x8B
	SystemOpenAppendData  Opcode = 0x8C
	SystemCropDataFile    Opcode = 0x8D
	SystemFindFirstModule Opcode = 0x90
	SystemFindNextModule  Opcode = 0x91
	SystemCloseModHandle  Opcode = 0x92
	SystemIOMapRead       Opcode = 0x94
	SystemIOMapWrite      Opcode = 0x95
	SystemBootCmd         Opcode = 0x97
	SystemSetBrickName    Opcode = 0x98
	SystemBtGetAddr       Opcode = 0x9A
	SystemDeviceInfo      Opcode = 0x9B
	SystemDeleteUserFlash Opcode = 0xA0
	SystemPollCmdLen      Opcode = 0xA1
	SystemPollCmd         Opcode = 0xA2
	SystemRenameFile      Opcode = 0xA3
	SystemBtFactoryReset  Opcode = 0xA4
	SystemResizeDataFile  Opcode = 0xD0
	SystemSeekFromStart   Opcode = 0xD1
	SystemSeekFromCurrent Opcode = 0xD2
	SystemSeekFromEnd     Opcode = 0xD3
)

var opcodeNames = map[Opcode]string{
	DirectStartProgram:      "DIRECT_START_PROGRAM",
	DirectStopProgram:       "DIRECT_STOP_PROGRAM",
	DirectPlaySoundFile:     "DIRECT_PLAY_SOUND_FILE",
	DirectPlayTone:          "DIRECT_PLAY_TONE",
	DirectSetOutState:       "DIRECT_SET_OUT_STATE",
	DirectSetInMode:         "DIRECT_SET_IN_MODE",
	DirectGetOutState:       "DIRECT_GET_OUT_STATE",
	DirectGetInVals:         "DIRECT_GET_IN_VALS",
	DirectResetInVal:        "DIRECT_RESET_IN_VAL",
	DirectMessageWrite:      "DIRECT_MESSAGE_WRITE",
	DirectResetPosition:     "DIRECT_RESET_POSITION",
	DirectGetBattLevel:      "DIRECT_GET_BATT_LVL",
	DirectStopSound:         "DIRECT_STOP_SOUND",
	DirectKeepAlive:         "DIRECT_KEEP_ALIVE",
	DirectLsGetStatus:       "DIRECT_LS_GET_STATUS",
	DirectLsWrite:           "DIRECT_LS_WRITE",
	DirectLsRead:            "DIRECT_LS_READ",
	DirectGetCurrProgram:    "DIRECT_GET_CURR_PROGRAM",
	DirectGetButtonState:    "DIRECT_GET_BUTTON_STATE",
	DirectMessageRead:       "DIRECT_MESSAGE_READ",
	DirectDatalogRead:       "DIRECT_DATALOG_READ",
	DirectDatalogSetTimes:   "DIRECT_DATALOG_SET_TIMES",
	DirectBtGetContactCount: "DIRECT_BT_GET_CONTACT_COUNT",
	DirectBtGetContactName:  "DIRECT_BT_GET_CONTACT_NAME",
	DirectBtGetConnCount:    "DIRECT_BT_GET_CONN_COUNT",
	DirectBtGetConnName:     "DIRECT_BT_GET_CONN_NAME",
	DirectSetProperty:       "DIRECT_SET_PROPERTY",
	DirectGetProperty:       "DIRECT_GET_PROPERTY",
	DirectUpdateResetCount:  "DIRECT_UPDATE_RESET_COUNT",
	SystemOpenRead:          "SYSTEM_OPENREAD",
	SystemOpenWrite:         "SYSTEM_OPENWRITE",
	SystemRead:              "SYSTEM_READ",
	SystemWrite:             "SYSTEM_WRITE",
	SystemClose:             "SYSTEM_CLOSE",
	SystemDelete:            "SYSTEM_DELETE",
	SystemFindFirst:         "SYSTEM_FINDFIRST",
	SystemFindNext:          "SYSTEM_FINDNEXT",
	SystemVersions:          "SYSTEM_VERSIONS",
	SystemOpenWriteLinear:   "SYSTEM_OPENWRITELINEAR",
	SystemOpenReadLinear:    "SYSTEM_OPENREADLINEAR",
	SystemOpenWriteData:     "SYSTEM_OPENWRITEDATA",
	SystemOpenAppendData:    "SYSTEM_OPENAPPENDDATA",
	SystemCropDataFile:      "SYSTEM_CROPDATAFILE",
	SystemFindFirstModule:   "SYSTEM_FINDFIRSTMODULE",
	SystemFindNextModule:    "SYSTEM_FINDNEXTMODULE",
	SystemCloseModHandle:    "SYSTEM_CLOSEMODHANDLE",
	SystemIOMapRead:         "SYSTEM_IOMAPREAD",
	SystemIOMapWrite:        "SYSTEM_IOMAPWRITE",
	SystemBootCmd:           "SYSTEM_BOOTCMD",
	SystemSetBrickName:      "SYSTEM_SETBRICKNAME",
	SystemBtGetAddr:         "SYSTEM_BTGETADDR",
	SystemDeviceInfo:        "SYSTEM_DEVICEINFO",
	SystemDeleteUserFlash:   "SYSTEM_DELETEUSERFLASH",
	SystemPollCmdLen:        "SYSTEM_POLLCMDLEN",
	SystemPollCmd:           "SYSTEM_POLLCMD",
	SystemRenameFile:        "SYSTEM_RENAMEFILE",
	SystemBtFactoryReset:    "SYSTEM_BTFACTORYRESET",
	SystemResizeDataFile:    "SYSTEM_RESIZE_DATA_FILE",
	SystemSeekFromStart:     "SYSTEM_SEEK_FROM_START",
	SystemSeekFromCurrent:   "SYSTEM_SEEK_FROM_CURRENT",
	SystemSeekFromEnd:       "SYSTEM_SEEK_FROM_END",
}

// Valid reports whether op is part of the closed command set. The
// command tables have gaps, so a range check is not enough.
func (op Opcode) Valid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// IsSystem reports whether op is a system command rather than a direct
// command.
func (op Opcode) IsSystem() bool {
	return op&0x80 != 0
}

func (op Opcode) IsDirect() bool {
	return !op.IsSystem()
}

// PacketType returns the command-category tag written ahead of op.
func (op Opcode) PacketType() mapping.PacketType {
	if op.IsSystem() {
		return mapping.PacketSystem
	}
	return mapping.PacketDirect
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(op))
}

// OpcodeByName resolves the wire name used in manifests and generated
// vector labels back to an opcode.
func OpcodeByName(name string) (Opcode, error) {
	for op, n := range opcodeNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown opcode name %q", name)
}
