package definition

import (
	"fmt"

	"github.com/llehouerou/wintoast"
)

// Build creates a toast from the definition. opts are applied before the
// definition, so an app_id in the file wins over WithAppID.
//
// Tags are added in a fixed order: texts, images, progress bars, subgroups,
// inputs, actions, headers, commands, audio.
func (d *Definition) Build(opts ...wintoast.Option) (*wintoast.Toast, error) {
	t := wintoast.New(opts...)
	if d.AppID != "" {
		t.SetAppID(d.AppID)
	}
	if d.Title != "" {
		t.SetTitle(d.Title)
	}

	if err := d.applyRoot(t); err != nil {
		return nil, err
	}
	d.applyVisual(t)

	for i, text := range d.Texts {
		if err := t.AddText(text.tag()); err != nil {
			return nil, fmt.Errorf("text[%d]: %w", i, err)
		}
	}
	for i, image := range d.Images {
		tag, err := image.tag()
		if err == nil {
			err = t.AddImage(tag)
		}
		if err != nil {
			return nil, fmt.Errorf("image[%d]: %w", i, err)
		}
	}
	for i, p := range d.Progress {
		if err := t.AddProgress(p.tag()); err != nil {
			return nil, fmt.Errorf("progress[%d]: %w", i, err)
		}
	}
	for i, sg := range d.SubGroups {
		children, err := sg.tags()
		if err == nil {
			err = t.AddSubGroup(children...)
		}
		if err != nil {
			return nil, fmt.Errorf("subgroup[%d]: %w", i, err)
		}
	}
	for i, in := range d.Inputs {
		if err := t.AddInput(in.tag()); err != nil {
			return nil, fmt.Errorf("input[%d]: %w", i, err)
		}
	}
	for i, a := range d.Actions {
		tag, err := a.tag()
		if err == nil {
			err = t.AddAction(tag)
		}
		if err != nil {
			return nil, fmt.Errorf("action[%d]: %w", i, err)
		}
	}
	for i, h := range d.Headers {
		tag, err := h.tag()
		if err == nil {
			err = t.AddHeader(tag)
		}
		if err != nil {
			return nil, fmt.Errorf("header[%d]: %w", i, err)
		}
	}
	for i, c := range d.Commands {
		cmd, err := wintoast.ParseCommand(c.ID)
		if err == nil {
			err = t.AddCommand(cmd, c.Arguments)
		}
		if err != nil {
			return nil, fmt.Errorf("command[%d]: %w", i, err)
		}
	}
	if d.Audio != nil {
		tag, err := d.Audio.tag()
		if err == nil {
			err = t.AddAudio(tag)
		}
		if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
	}

	return t, nil
}

func (d *Definition) applyRoot(t *wintoast.Toast) error {
	if d.Duration != "" {
		duration, err := wintoast.ParseDuration(d.Duration)
		if err != nil {
			return err
		}
		t.SetDuration(duration)
	}
	if d.Scenario != "" {
		scenario, err := wintoast.ParseScenario(d.Scenario)
		if err != nil {
			return err
		}
		t.SetScenario(scenario)
	}
	if d.Launch != nil {
		t.SetLaunch(*d.Launch)
	}
	if d.StyledButtons != nil {
		t.SetStyledButton(*d.StyledButtons)
	}
	return nil
}

func (d *Definition) applyVisual(t *wintoast.Toast) {
	if d.Binding.AddImageQuery {
		t.BindingAddImageQuery()
	}
	if d.Binding.BaseURI != "" {
		t.SetBindingBaseURI(d.Binding.BaseURI)
	}
	if d.Binding.Fallback != "" {
		t.SetBindingFallback(d.Binding.Fallback)
	}
	if d.Visual.AddImageQuery {
		t.VisualAddImageQuery()
	}
	if d.Visual.BaseURI != "" {
		t.SetVisualBaseURI(d.Visual.BaseURI)
	}
}

func (x Text) tag() wintoast.Text {
	text := wintoast.NewText(x.Content)
	if x.ID != nil {
		text = text.WithID(*x.ID)
	}
	if x.Bottom {
		text = text.BottomText()
	}
	if x.Center {
		text = text.HintCallScenarioCenterAlign()
	}
	return text
}

func (x Image) tag() (wintoast.Image, error) {
	image := wintoast.NewImage(x.Src)
	if x.Src == "" {
		return image, fmt.Errorf("%w: image without src", ErrInvalid)
	}
	if x.ID != nil {
		image = image.WithID(*x.ID)
	}
	if x.Alt != "" {
		image = image.WithAlt(x.Alt)
	}
	if x.Placement != "" {
		placement, err := wintoast.ParsePlacement(x.Placement)
		if err != nil {
			return image, err
		}
		image = image.WithPlacement(placement)
	}
	crop, err := wintoast.ParseCrop(x.Crop)
	if err != nil {
		return image, err
	}
	image = image.WithHintCrop(crop)
	if x.AddImageQuery {
		image = image.AddImageQuery()
	}
	return image, nil
}

func (x Progress) tag() wintoast.Progress {
	value := wintoast.IndeterminateValue()
	if x.Value != nil {
		value = wintoast.FloatingValue(*x.Value)
	}
	p := wintoast.NewProgress(x.Status, value)
	if x.Title != nil {
		p = p.WithTitle(*x.Title)
	}
	if x.ValueOverride != nil {
		p = p.WithValueStringOverride(*x.ValueOverride)
	}
	return p
}

func (x SubGroup) tags() ([]wintoast.SubGroupChild, error) {
	children := make([]wintoast.SubGroupChild, 0, len(x.Children))
	for i, c := range x.Children {
		switch {
		case c.Text != nil && c.Image != nil:
			return nil, fmt.Errorf("%w: child %d is both text and image", ErrInvalid, i)
		case c.Text != nil:
			children = append(children, c.Text.tag())
		case c.Image != nil:
			image, err := c.Image.tag()
			if err != nil {
				return nil, err
			}
			children = append(children, image)
		default:
			return nil, fmt.Errorf("%w: child %d is empty", ErrInvalid, i)
		}
	}
	return children, nil
}

func (x Input) tag() wintoast.Input {
	if len(x.Selections) == 0 {
		in := wintoast.NewTextInput(x.ID)
		if x.Title != nil {
			in = in.WithTitle(*x.Title)
		}
		if x.PlaceHolder != nil {
			in = in.WithPlaceHolderContent(*x.PlaceHolder)
		}
		return in
	}

	selections := make([]wintoast.Selection, len(x.Selections))
	for i, s := range x.Selections {
		selections[i] = wintoast.Selection{ID: s.ID, Content: s.Content}
	}
	in := wintoast.NewSelectionInput(x.ID, selections...)
	if x.Title != nil {
		in = in.WithTitle(*x.Title)
	}
	if x.Default != nil {
		in = in.WithDefaultInput(*x.Default)
	}
	return in
}

func (x Action) tag() (wintoast.Action, error) {
	a := wintoast.NewAction(x.Content, x.Arguments)
	if x.Activation != "" {
		activation, err := wintoast.ParseActivationType(x.Activation)
		if err != nil {
			return a, err
		}
		a = a.WithActivationType(activation)
	}
	if x.ContextMenu {
		a = a.ContextMenu()
	}
	if x.ImageURI != nil {
		a = a.WithImageURI(*x.ImageURI)
	}
	if x.InputID != nil {
		a = a.WithHintInputID(*x.InputID)
	}
	if x.ButtonStyle != "" {
		style, err := wintoast.ParseButtonStyle(x.ButtonStyle)
		if err != nil {
			return a, err
		}
		a = a.WithHintButtonStyle(style)
	}
	if x.ToolTip != nil {
		a = a.WithHintToolTip(*x.ToolTip)
	}
	return a, nil
}

func (x Header) tag() (wintoast.Header, error) {
	h := wintoast.NewHeader(x.ID, x.Title, x.Arguments)
	if x.Activation != "" {
		activation, err := wintoast.ParseHeaderActivationType(x.Activation)
		if err != nil {
			return h, err
		}
		h = h.WithActivationType(activation)
	}
	return h, nil
}

func (x Audio) tag() (wintoast.Audio, error) {
	sound := wintoast.SoundDefault
	if x.Sound != "" {
		var err error
		if sound, err = wintoast.ParseSound(x.Sound); err != nil {
			return wintoast.Audio{}, err
		}
	}
	audio := wintoast.NewAudio(sound)
	if x.Loop {
		audio = audio.Loop()
	}
	if x.Silent {
		audio = audio.Silent()
	}
	return audio, nil
}
