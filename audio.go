package wintoast

import "github.com/llehouerou/wintoast/dom"

// Audio replaces the default toast sound.
type Audio struct {
	src    Sound
	loop   bool
	silent bool
}

// NewAudio plays src once.
func NewAudio(src Sound) Audio {
	return Audio{src: src}
}

// Loop repeats the sound while the toast is shown. The toast duration must be
// set too, and the Looping sounds are the ones meant for it.
func (a Audio) Loop() Audio {
	a.loop = true
	return a
}

// Silent mutes the toast.
func (a Audio) Silent() Audio {
	a.silent = true
	return a
}

// Element renders the audio element. loop and silent are only written when set.
func (a Audio) Element(doc *dom.Document) (*dom.Element, error) {
	el := doc.CreateElement("audio")
	el.SetAttribute("src", a.src.URI())
	if a.loop {
		el.SetAttribute("loop", "true")
	}
	if a.silent {
		el.SetAttribute("silent", "true")
	}
	return el, nil
}

// AddAudio sets the toast sound. A toast has at most one audio element;
// further calls fail with ErrAlreadyHasAudio.
func (t *Toast) AddAudio(audio Audio) error {
	if t.hasAudio {
		return ErrAlreadyHasAudio
	}
	if err := t.append(t.root, audio); err != nil {
		return err
	}
	t.hasAudio = true
	return nil
}

// HasAudio reports whether AddAudio succeeded on this toast.
func (t *Toast) HasAudio() bool {
	return t.hasAudio
}
