package wintoast

import (
	"fmt"
	"strings"
)

// Sound is one of the system notification sounds.
type Sound int

const (
	SoundDefault Sound = iota
	SoundIM
	SoundMail
	SoundReminder
	SoundSMS
	SoundLoopingAlarm
	SoundLoopingAlarm2
	SoundLoopingAlarm3
	SoundLoopingAlarm4
	SoundLoopingAlarm5
	SoundLoopingAlarm6
	SoundLoopingAlarm7
	SoundLoopingAlarm8
	SoundLoopingAlarm9
	SoundLoopingAlarm10
	SoundLoopingCall
	SoundLoopingCall2
	SoundLoopingCall3
	SoundLoopingCall4
	SoundLoopingCall5
	SoundLoopingCall6
	SoundLoopingCall7
	SoundLoopingCall8
	SoundLoopingCall9
	SoundLoopingCall10
)

// soundEvents maps each sound to its name after the ms-winsoundevent:Notification. prefix.
var soundEvents = [...]string{
	SoundDefault:        "Default",
	SoundIM:             "IM",
	SoundMail:           "Mail",
	SoundReminder:       "Reminder",
	SoundSMS:            "SMS",
	SoundLoopingAlarm:   "Looping.Alarm",
	SoundLoopingAlarm2:  "Looping.Alarm2",
	SoundLoopingAlarm3:  "Looping.Alarm3",
	SoundLoopingAlarm4:  "Looping.Alarm4",
	SoundLoopingAlarm5:  "Looping.Alarm5",
	SoundLoopingAlarm6:  "Looping.Alarm6",
	SoundLoopingAlarm7:  "Looping.Alarm7",
	SoundLoopingAlarm8:  "Looping.Alarm8",
	SoundLoopingAlarm9:  "Looping.Alarm9",
	SoundLoopingAlarm10: "Looping.Alarm10",
	SoundLoopingCall:    "Looping.Call",
	SoundLoopingCall2:   "Looping.Call2",
	SoundLoopingCall3:   "Looping.Call3",
	SoundLoopingCall4:   "Looping.Call4",
	SoundLoopingCall5:   "Looping.Call5",
	SoundLoopingCall6:   "Looping.Call6",
	SoundLoopingCall7:   "Looping.Call7",
	SoundLoopingCall8:   "Looping.Call8",
	SoundLoopingCall9:   "Looping.Call9",
	SoundLoopingCall10:  "Looping.Call10",
}

const soundEventPrefix = "ms-winsoundevent:Notification."

// Sounds returns every sound, in declaration order.
func Sounds() []Sound {
	all := make([]Sound, len(soundEvents))
	for i := range all {
		all[i] = Sound(i)
	}
	return all
}

// String returns the event name, e.g. "Looping.Alarm2".
func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundEvents) {
		return soundEvents[SoundDefault]
	}
	return soundEvents[s]
}

// URI returns the audio src value, e.g. "ms-winsoundevent:Notification.Looping.Alarm2".
func (s Sound) URI() string {
	return soundEventPrefix + s.String()
}

// ParseSound parses an event name such as "Mail" or "Looping.Call3". The
// dot is optional and a full ms-winsoundevent URI is accepted too.
func ParseSound(name string) (Sound, error) {
	name = strings.TrimPrefix(name, soundEventPrefix)
	for _, s := range Sounds() {
		event := s.String()
		if strings.EqualFold(event, name) || strings.EqualFold(strings.ReplaceAll(event, ".", ""), name) {
			return s, nil
		}
	}
	return SoundDefault, fmt.Errorf("%w for sound: %q", ErrUnknownValue, name)
}
