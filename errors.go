package wintoast

import "errors"

var (
	// ErrReservedID is returned when a text other than the title uses id 0.
	ErrReservedID = errors.New("id 0 is reserved for the title")
	// ErrAlreadyHasAudio is returned by AddAudio when the toast already carries an audio element.
	ErrAlreadyHasAudio = errors.New("toast already has audio")
	// ErrProgressOutOfRange is returned for progress values outside [0, 1].
	ErrProgressOutOfRange = errors.New("progress value must be between 0 and 1")
	// ErrUnknownValue is returned by the Parse functions for names they do not recognize.
	ErrUnknownValue = errors.New("unknown value")
)
