// Package dom is a small ordered element tree used to assemble toast markup.
//
// It wraps an etree document and narrows it to the operations the toast
// builders need: parentless element creation, attribute upserts, inner text,
// append-only child lists, unique path and id lookups, and serialization.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

var (
	// ErrNotFound is returned when a lookup matches no element.
	ErrNotFound = errors.New("no matching element")
	// ErrAmbiguous is returned when a lookup that must be unique matches more than one element.
	ErrAmbiguous = errors.New("more than one matching element")
	// ErrHasParent is returned when appending an element that is already part of a tree.
	ErrHasParent = errors.New("element already has a parent")
	// ErrCycle is returned when appending an element below one of its own descendants.
	ErrCycle = errors.New("element cannot contain itself")
	// ErrInvalidPath is returned for paths that cannot be compiled.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNoRoot is returned when parsed markup has no root element.
	ErrNoRoot = errors.New("document has no root element")
)

// Document is an element tree with exactly one root element.
type Document struct {
	tree *etree.Document
}

// Element is a node of a Document, or a parentless node waiting to be appended.
type Element etree.Element

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// New creates a document whose root element is named rootTag.
func New(rootTag string) *Document {
	tree := etree.NewDocument()
	tree.CreateElement(rootTag)
	return &Document{tree: tree}
}

// Parse reads markup into a document.
func Parse(markup string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if tree.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Document{tree: tree}, nil
}

// Root returns the root element.
func (d *Document) Root() *Element {
	return (*Element)(d.tree.Root())
}

// CreateElement returns a new element with no parent, attributes or children.
func (d *Document) CreateElement(tag string) *Element {
	return (*Element)(etree.NewElement(tag))
}

// SelectSingleNode resolves path to exactly one element.
//
// Plain absolute paths such as /toast/visual/binding are walked one segment at
// a time and every segment must match exactly one child. Any other path
// (descendant axis, predicates) is evaluated as an etree path and the whole
// result must contain exactly one element.
func (d *Document) SelectSingleNode(path string) (*Element, error) {
	if isPlainPath(path) {
		return d.walk(path)
	}

	compiled, err := etree.CompilePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPath, path, err)
	}
	return single(path, d.tree.FindElementsPath(compiled))
}

// ElementByID returns the only element whose id attribute equals id.
func (d *Document) ElementByID(id string) (*Element, error) {
	var found []*etree.Element
	var visit func(e *etree.Element)
	visit = func(e *etree.Element) {
		if a := e.SelectAttr("id"); a != nil && a.Value == id {
			found = append(found, e)
		}
		for _, child := range e.ChildElements() {
			visit(child)
		}
	}
	if root := d.tree.Root(); root != nil {
		visit(root)
	}
	return single("id="+id, found)
}

// XML serializes the document.
func (d *Document) XML() (string, error) {
	s, err := d.tree.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return s, nil
}

// IndentedXML serializes an indented copy of the document. The document
// itself is left untouched.
func (d *Document) IndentedXML(spaces int) (string, error) {
	c := d.tree.Copy()
	c.Indent(spaces)
	s, err := c.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return s, nil
}

func (d *Document) walk(path string) (*Element, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	root := d.tree.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	if root.Tag != segments[0] {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	current := root
	for _, segment := range segments[1:] {
		var matches []*etree.Element
		for _, child := range current.ChildElements() {
			if child.Tag == segment {
				matches = append(matches, child)
			}
		}
		next, err := single(path, matches)
		if err != nil {
			return nil, err
		}
		current = (*etree.Element)(next)
	}
	return (*Element)(current), nil
}

func single(query string, found []*etree.Element) (*Element, error) {
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, query)
	case 1:
		return (*Element)(found[0]), nil
	default:
		return nil, fmt.Errorf("%w: %s (%d matches)", ErrAmbiguous, query, len(found))
	}
}

// isPlainPath reports whether path is an absolute path made only of tag names.
func isPlainPath(path string) bool {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return false
	}
	return !strings.ContainsAny(path, "[]*.@() ") && !strings.Contains(path, "//")
}
