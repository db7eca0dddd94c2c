package mapping

import "fmt"

// PacketType is the command-category tag written at offset 0 of every
// telegram. The 0x80 bit suppresses the reply; the encoder always emits
// the reply-required forms so that generated vectors match the reference
// fixtures.
type PacketType uint8

const (
	PacketDirect        PacketType = 0x00
	PacketSystem        PacketType = 0x01
	PacketReply         PacketType = 0x02
	PacketDirectNoReply PacketType = 0x80
	PacketSystemNoReply PacketType = 0x81
)

func (p PacketType) String() string {
	switch p {
	case PacketDirect:
		return "DIRECT"
	case PacketSystem:
		return "SYSTEM"
	case PacketReply:
		return "REPLY"
	case PacketDirectNoReply:
		return "DIRECT_NO_REPLY"
	case PacketSystemNoReply:
		return "SYSTEM_NO_REPLY"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(p))
	}
}
