package wintoast

import "github.com/llehouerou/wintoast/dom"

// ActivationType decides what happens when the user clicks an action.
type ActivationType int

const (
	// ActivationForeground launches the foreground app.
	ActivationForeground ActivationType = iota
	// ActivationBackground triggers the app's background task without
	// interrupting the user.
	ActivationBackground
	// ActivationProtocol launches another app through protocol activation.
	ActivationProtocol
)

func (a ActivationType) String() string {
	switch a {
	case ActivationBackground:
		return "background"
	case ActivationProtocol:
		return "protocol"
	default:
		return "foreground"
	}
}

// ParseActivationType parses "foreground", "background" or "protocol".
func ParseActivationType(s string) (ActivationType, error) {
	return parseEnum("activation type", s, []ActivationType{ActivationForeground, ActivationBackground, ActivationProtocol})
}

// ButtonStyle colors an action button. The toast must use SetStyledButton(true).
type ButtonStyle int

const (
	// ButtonSuccess is a green button.
	ButtonSuccess ButtonStyle = iota
	// ButtonCritical is a red button.
	ButtonCritical
)

func (b ButtonStyle) String() string {
	if b == ButtonCritical {
		return "Critical"
	}
	return "Success"
}

// ParseButtonStyle parses "Success" or "Critical".
func ParseButtonStyle(s string) (ButtonStyle, error) {
	return parseEnum("button style", s, []ButtonStyle{ButtonSuccess, ButtonCritical})
}

// Action is a button, or a context menu entry, of the toast.
type Action struct {
	content        string
	arguments      string
	activationType optional[ActivationType]
	contextMenu    bool
	imageURI       optional[string]
	hintInputID    optional[string]
	buttonStyle    optional[ButtonStyle]
	tooltip        optional[string]
}

// NewAction creates a button labelled content. arguments is handed back to
// the app when the button is clicked.
func NewAction(content, arguments string) Action {
	return Action{content: content, arguments: arguments}
}

// WithActivationType sets what the button activates.
func (a Action) WithActivationType(t ActivationType) Action {
	a.activationType = some(t)
	return a
}

// ContextMenu turns the action into an entry of the toast context menu.
func (a Action) ContextMenu() Action {
	a.contextMenu = true
	return a
}

// WithImageURI sets the button icon, a white transparent 16x16 image. Once one
// button has an icon, all of them should.
func (a Action) WithImageURI(uri string) Action {
	a.imageURI = some(uri)
	return a
}

// WithHintInputID places the button next to the input with that id.
func (a Action) WithHintInputID(id string) Action {
	a.hintInputID = some(id)
	return a
}

// WithHintButtonStyle sets the button color.
func (a Action) WithHintButtonStyle(s ButtonStyle) Action {
	a.buttonStyle = some(s)
	return a
}

// WithHintToolTip sets the tooltip shown for a button with empty content.
func (a Action) WithHintToolTip(tooltip string) Action {
	a.tooltip = some(tooltip)
	return a
}

// Element renders the action.
func (a Action) Element(doc *dom.Document) (*dom.Element, error) {
	el := doc.CreateElement("action")
	el.SetAttribute("content", a.content)
	el.SetAttribute("arguments", a.arguments)
	if a.activationType.set {
		el.SetAttribute("activationType", a.activationType.value.String())
	}
	if a.contextMenu {
		el.SetAttribute("placement", "contextMenu")
	}
	if a.imageURI.set {
		el.SetAttribute("imageUri", a.imageURI.value)
	}
	if a.hintInputID.set {
		el.SetAttribute("hint-inputId", a.hintInputID.value)
	}
	if a.buttonStyle.set {
		el.SetAttribute("hint-buttonStyle", a.buttonStyle.value.String())
	}
	if a.tooltip.set {
		el.SetAttribute("hint-tooltip", a.tooltip.value)
	}
	return el, nil
}

// AddAction adds a button to the actions element.
func (t *Toast) AddAction(action Action) error {
	return t.append(t.actions, action)
}
