package mapping

// Field slot sizes and limits from the firmware command tables.
const (
	// FilenameLen is the fixed filename slot size, including the NUL
	// terminator.
	FilenameLen = 20

	// BrickNameLen is the fixed brick-name slot size, including the NUL
	// terminator.
	BrickNameLen = 15

	// MaxMessageLen is the largest mailbox message payload, excluding
	// the NUL terminator.
	MaxMessageLen = 58

	// MaxInboxID is the highest addressable mailbox queue.
	MaxInboxID = 19
)
