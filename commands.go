package wintoast

// Command is a system-defined button of the alarm and incoming call
// scenarios.
type Command int

const (
	CommandAlarmSnooze Command = iota
	CommandAlarmDismiss
	CommandIncomingCallVideo
	CommandIncomingCallVoice
	CommandIncomingCallDecline
)

// Scenario returns the commands scenario the command belongs to.
func (c Command) Scenario() Scenario {
	if c == CommandAlarmSnooze || c == CommandAlarmDismiss {
		return ScenarioAlarm
	}
	return ScenarioIncomingCall
}

// String returns the command id, e.g. "snooze".
func (c Command) String() string {
	switch c {
	case CommandAlarmDismiss:
		return "dismiss"
	case CommandIncomingCallVideo:
		return "video"
	case CommandIncomingCallVoice:
		return "voice"
	case CommandIncomingCallDecline:
		return "decline"
	default:
		return "snooze"
	}
}

// ParseCommand parses a command id such as "snooze" or "decline".
func ParseCommand(s string) (Command, error) {
	return parseEnum("command", s, []Command{
		CommandAlarmSnooze,
		CommandAlarmDismiss,
		CommandIncomingCallVideo,
		CommandIncomingCallVoice,
		CommandIncomingCallDecline,
	})
}

// AddCommand adds a commands element holding cmd. arguments is handed back to
// the app when the user picks the command.
func (t *Toast) AddCommand(cmd Command, arguments string) error {
	commands := t.doc.CreateElement("commands")
	commands.SetAttribute("scenario", cmd.Scenario().String())

	command := commands.CreateChild("command")
	command.SetAttribute("id", cmd.String())
	command.SetAttribute("arguments", arguments)

	return t.root.AppendChild(commands)
}
