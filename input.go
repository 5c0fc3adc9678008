package wintoast

import (
	"slices"

	"github.com/llehouerou/wintoast/dom"
)

// Input is a text box or a selection box shown above the buttons.
type Input interface {
	Tag
	input()
}

// Selection is one choice of a SelectionInput.
type Selection struct {
	ID      string
	Content string
}

// TextInput is a free text box.
type TextInput struct {
	id          string
	title       optional[string]
	placeholder optional[string]
}

// NewTextInput creates a text box. Actions refer to it by id through
// WithHintInputID.
func NewTextInput(id string) TextInput {
	return TextInput{id: id}
}

// WithTitle sets the label shown above the box.
func (in TextInput) WithTitle(title string) TextInput {
	in.title = some(title)
	return in
}

// WithPlaceHolderContent sets the placeholder shown while the box is empty.
func (in TextInput) WithPlaceHolderContent(placeholder string) TextInput {
	in.placeholder = some(placeholder)
	return in
}

// Element renders the text box.
func (in TextInput) Element(doc *dom.Document) (*dom.Element, error) {
	el := doc.CreateElement("input")
	el.SetAttribute("id", in.id)
	el.SetAttribute("type", "text")
	if in.title.set {
		el.SetAttribute("title", in.title.value)
	}
	if in.placeholder.set {
		el.SetAttribute("placeHolderContent", in.placeholder.value)
	}
	return el, nil
}

func (TextInput) input() {}

// SelectionInput is a drop-down list.
type SelectionInput struct {
	id           string
	title        optional[string]
	defaultInput optional[string]
	selections   []Selection
}

// NewSelectionInput creates a drop-down list with the given choices, in order.
func NewSelectionInput(id string, selections ...Selection) SelectionInput {
	return SelectionInput{id: id, selections: slices.Clone(selections)}
}

// WithTitle sets the label shown above the list.
func (in SelectionInput) WithTitle(title string) SelectionInput {
	in.title = some(title)
	return in
}

// WithDefaultInput sets the id of the selection chosen initially.
func (in SelectionInput) WithDefaultInput(selectionID string) SelectionInput {
	in.defaultInput = some(selectionID)
	return in
}

// Element renders the list with one selection child per choice.
func (in SelectionInput) Element(doc *dom.Document) (*dom.Element, error) {
	el := doc.CreateElement("input")
	el.SetAttribute("id", in.id)
	el.SetAttribute("type", "selection")
	if in.title.set {
		el.SetAttribute("title", in.title.value)
	}
	if in.defaultInput.set {
		el.SetAttribute("defaultInput", in.defaultInput.value)
	}
	for _, s := range in.selections {
		child := el.CreateChild("selection")
		child.SetAttribute("id", s.ID)
		child.SetAttribute("content", s.Content)
	}
	return el, nil
}

func (SelectionInput) input() {}

// AddInput adds a text box or selection list to the actions element.
func (t *Toast) AddInput(in Input) error {
	return t.append(t.actions, in)
}
