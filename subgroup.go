package wintoast

import "github.com/llehouerou/wintoast/dom"

// SubGroupChild is a Text or an Image placed in a subgroup column.
type SubGroupChild interface {
	Tag
	subGroupChild()
}

// AddSubGroup adds a column holding children, in order. All columns share a
// single group element, created by the first call.
func (t *Toast) AddSubGroup(children ...SubGroupChild) error {
	elements := make([]*dom.Element, 0, len(children))
	for _, child := range children {
		el, err := child.Element(t.doc)
		if err != nil {
			return err
		}
		elements = append(elements, el)
	}

	if t.group == nil {
		t.group = t.binding.CreateChild("group")
	}

	sub := t.group.CreateChild("subgroup")
	for _, el := range elements {
		if err := sub.AppendChild(el); err != nil {
			return err
		}
	}
	return nil
}
