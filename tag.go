package wintoast

import (
	"fmt"
	"strings"

	"github.com/llehouerou/wintoast/dom"
)

// Tag is a value that can render itself as one element of the toast markup.
//
// Element only creates nodes; attaching the result to the document is up to
// the caller.
type Tag interface {
	Element(doc *dom.Document) (*dom.Element, error)
}

// optional holds a value that is only rendered when it was explicitly set.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

// enum is implemented by the closed sets of attribute values.
type enum interface {
	~int
	String() string
}

// parseEnum finds the value of all whose String matches name, ignoring case.
func parseEnum[T enum](kind, name string, all []T) (T, error) {
	for _, v := range all {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w for %s: %q", ErrUnknownValue, kind, name)
}
