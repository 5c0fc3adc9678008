package wintoast

import "strconv"

// Duration is how long the toast stays on screen.
type Duration int

const (
	// DurationShort shows the toast for about 7 seconds.
	DurationShort Duration = iota
	// DurationLong shows the toast for about 25 seconds.
	DurationLong
)

func (d Duration) String() string {
	if d == DurationLong {
		return "long"
	}
	return "short"
}

// ParseDuration parses "short" or "long".
func ParseDuration(s string) (Duration, error) {
	return parseEnum("duration", s, []Duration{DurationShort, DurationLong})
}

// Scenario is what the toast is used for. It changes how long the toast
// stays on screen and which sounds it plays by default.
type Scenario int

const (
	// ScenarioReminder is displayed pre-expanded and stays until dismissed.
	// It is ignored unless the toast has a button activating in background.
	ScenarioReminder Scenario = iota
	// ScenarioAlarm is displayed pre-expanded, stays until dismissed and
	// loops alarm audio by default.
	ScenarioAlarm
	// ScenarioIncomingCall uses the call layout, stays until dismissed and
	// loops ringtone audio by default.
	ScenarioIncomingCall
	// ScenarioUrgent can break through Focus Assist when the user allows it.
	ScenarioUrgent
)

func (s Scenario) String() string {
	switch s {
	case ScenarioAlarm:
		return "alarm"
	case ScenarioIncomingCall:
		return "incomingCall"
	case ScenarioUrgent:
		return "urgent"
	default:
		return "reminder"
	}
}

// ParseScenario parses a scenario name such as "incomingCall".
func ParseScenario(s string) (Scenario, error) {
	return parseEnum("scenario", s, []Scenario{ScenarioReminder, ScenarioAlarm, ScenarioIncomingCall, ScenarioUrgent})
}

// SetDuration sets how long the toast is displayed.
func (t *Toast) SetDuration(d Duration) {
	t.root.SetAttribute("duration", d.String())
}

// SetLaunch sets the string passed to the application when the user clicks
// the toast body. Its format is defined by the application.
func (t *Toast) SetLaunch(launch string) {
	t.root.SetAttribute("launch", launch)
}

// SetScenario sets the toast scenario.
func (t *Toast) SetScenario(s Scenario) {
	t.root.SetAttribute("scenario", s.String())
}

// SetStyledButton enables hint-buttonStyle on actions.
func (t *Toast) SetStyledButton(styled bool) {
	t.root.SetAttribute("useButtonStyle", strconv.FormatBool(styled))
}

// SetTitle replaces the text of the title element.
func (t *Toast) SetTitle(title string) {
	t.title.SetInnerText(title)
}
