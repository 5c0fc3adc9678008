package dom

import "github.com/beevik/etree"

func (e *Element) raw() *etree.Element {
	return (*etree.Element)(e)
}

// TagName returns the element name.
func (e *Element) TagName() string {
	return e.raw().Tag
}

// SetAttribute sets name to value, replacing any previous value.
func (e *Element) SetAttribute(name, value string) {
	e.raw().CreateAttr(name, value)
}

// RemoveAttribute deletes name and reports whether it was set.
func (e *Element) RemoveAttribute(name string) bool {
	return e.raw().RemoveAttr(name) != nil
}

// Attribute returns the value of name and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	a := e.raw().SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Attributes returns the attributes in document order.
func (e *Element) Attributes() []Attr {
	raw := e.raw()
	attrs := make([]Attr, 0, len(raw.Attr))
	for i := range raw.Attr {
		attrs = append(attrs, Attr{Name: raw.Attr[i].FullKey(), Value: raw.Attr[i].Value})
	}
	return attrs
}

// SetInnerText replaces the text content of the element.
func (e *Element) SetInnerText(text string) {
	e.raw().SetText(text)
}

// InnerText returns the text content of the element.
func (e *Element) InnerText() string {
	return e.raw().Text()
}

// AppendChild adds child as the last child of e. Only parentless elements can
// be appended; moving nodes between parents is not supported.
func (e *Element) AppendChild(child *Element) error {
	c := child.raw()
	if c.Parent() != nil {
		return ErrHasParent
	}
	for p := e.raw(); p != nil; p = p.Parent() {
		if p == c {
			return ErrCycle
		}
	}
	e.raw().AddChild(c)
	return nil
}

// CreateChild creates a new element named tag and appends it to e.
func (e *Element) CreateChild(tag string) *Element {
	return (*Element)(e.raw().CreateElement(tag))
}

// Children returns the child elements in order.
func (e *Element) Children() []*Element {
	raw := e.raw().ChildElements()
	children := make([]*Element, len(raw))
	for i, c := range raw {
		children[i] = (*Element)(c)
	}
	return children
}

// ChildrenByTag returns the child elements named tag, in order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var children []*Element
	for _, c := range e.raw().ChildElements() {
		if c.Tag == tag {
			children = append(children, (*Element)(c))
		}
	}
	return children
}

// Parent returns the parent element, or nil for the root and for detached
// elements.
func (e *Element) Parent() *Element {
	p := e.raw().Parent()
	// The root's parent is the document node itself, which has no tag.
	if p == nil || p.Tag == "" {
		return nil
	}
	return (*Element)(p)
}
