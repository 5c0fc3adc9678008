package wintoast

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/llehouerou/wintoast/dom"
)

// Text is a line of text in the binding or in a subgroup.
type Text struct {
	content     string
	id          optional[int]
	bottom      bool
	centerAlign bool
}

// NewText creates a text element.
func NewText(content string) Text {
	return Text{content: content}
}

// WithID sets the text position in the template. Id 0 is the title and is
// rejected when the text is rendered.
func (t Text) WithID(id int) Text {
	t.id = some(id)
	return t
}

// BottomText places the text at the bottom of the toast, next to the app
// identity or timestamp. Only one bottom text is shown.
func (t Text) BottomText() Text {
	t.bottom = true
	return t
}

// HintCallScenarioCenterAlign centers the text. Only used with
// ScenarioIncomingCall.
func (t Text) HintCallScenarioCenterAlign() Text {
	t.centerAlign = true
	return t
}

// Element renders the text.
func (t Text) Element(doc *dom.Document) (*dom.Element, error) {
	if t.id.set && t.id.value == TitleID {
		return nil, ErrReservedID
	}

	el := doc.CreateElement("text")
	el.SetInnerText(t.content)
	if t.id.set {
		el.SetAttribute("id", strconv.Itoa(t.id.value))
	}
	if t.bottom {
		el.SetAttribute("placement", "attribution")
	}
	if t.centerAlign {
		el.SetAttribute("hint-callScenarioCenterAlign", "true")
	}
	return el, nil
}

func (Text) subGroupChild() {}

// AddText adds a text to the binding. When the text has an id and a text
// element with that id already exists, that element takes the content and
// attributes of text instead of a second one being added.
func (t *Toast) AddText(text Text) error {
	el, err := text.Element(t.doc)
	if err != nil {
		return err
	}
	if !text.id.set {
		return t.binding.AppendChild(el)
	}

	existing, err := t.textByID(text.id.value)
	if err != nil {
		return err
	}
	if existing == nil {
		return t.binding.AppendChild(el)
	}
	existing.SetInnerText(text.content)
	// The new text replaces the optional attributes of the old one.
	existing.RemoveAttribute("placement")
	existing.RemoveAttribute("hint-callScenarioCenterAlign")
	for _, a := range el.Attributes() {
		existing.SetAttribute(a.Name, a.Value)
	}
	return nil
}

// SetText sets the content of the text with the given id, adding it to the
// binding if it does not exist yet.
func (t *Toast) SetText(id int, content string) error {
	return t.upsertText(id, content, false)
}

// SetBottomText is SetText for a text placed at the bottom of the toast.
func (t *Toast) SetBottomText(id int, content string) error {
	return t.upsertText(id, content, true)
}

func (t *Toast) upsertText(id int, content string, bottom bool) error {
	if id == TitleID {
		return ErrReservedID
	}

	existing, err := t.textByID(id)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.SetInnerText(content)
		return nil
	}

	text := NewText(content).WithID(id)
	if bottom {
		text = text.BottomText()
	}
	return t.append(t.binding, text)
}

// textByID returns the text element carrying id, or nil if there is none.
func (t *Toast) textByID(id int) (*dom.Element, error) {
	el, err := t.doc.SelectSingleNode(fmt.Sprintf("//text[@id='%d']", id))
	switch {
	case err == nil:
		return el, nil
	case errors.Is(err, dom.ErrNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find text %d: %w", id, err)
	}
}
