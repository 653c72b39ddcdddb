package broadcast

import "strings"

// Command is one entry in the closed vocabulary a broadcaster may send.
type Command string

const (
	CmdScroll              Command = "scroll"
	CmdScrollSpeed1        Command = "scroll:speed_1"
	CmdScrollSpeed2        Command = "scroll:speed_2"
	CmdScrollSpeed3        Command = "scroll:speed_3"
	CmdScrollSpeed4        Command = "scroll:speed_4"
	CmdScrollSpeed5        Command = "scroll:speed_5"
	CmdTimingOneMinute     Command = "timing:one_minute"
	CmdTimingThirtySeconds Command = "timing:thirty_seconds"
	CmdTimingWrap          Command = "timing:wrap"
	CmdTimingHardWrap      Command = "timing:hard_wrap"
	CmdTimingReset         Command = "timing:reset"
	CmdStateEnd            Command = "state:end"
)

// InvalidMessageNotice replaces any frame that does not parse as a command.
// The original text is discarded, never echoed to subscribers.
const InvalidMessageNotice = "Invalid message"

var commands = map[string]Command{
	string(CmdScroll):              CmdScroll,
	string(CmdScrollSpeed1):        CmdScrollSpeed1,
	string(CmdScrollSpeed2):        CmdScrollSpeed2,
	string(CmdScrollSpeed3):        CmdScrollSpeed3,
	string(CmdScrollSpeed4):        CmdScrollSpeed4,
	string(CmdScrollSpeed5):        CmdScrollSpeed5,
	string(CmdTimingOneMinute):     CmdTimingOneMinute,
	string(CmdTimingThirtySeconds): CmdTimingThirtySeconds,
	string(CmdTimingWrap):          CmdTimingWrap,
	string(CmdTimingHardWrap):      CmdTimingHardWrap,
	string(CmdTimingReset):         CmdTimingReset,
	string(CmdStateEnd):            CmdStateEnd,
}

// ParseCommand matches text against the vocabulary, case-insensitively.
// The second return value is false for unrecognized text.
func ParseCommand(text string) (Command, bool) {
	cmd, ok := commands[strings.ToLower(text)]
	return cmd, ok
}
