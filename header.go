package wintoast

import "github.com/llehouerou/wintoast/dom"

// HeaderActivationType decides what happens when the user clicks a header.
type HeaderActivationType int

const (
	// HeaderActivationForeground launches the foreground app.
	HeaderActivationForeground HeaderActivationType = iota
	// HeaderActivationProtocol launches another app through protocol activation.
	HeaderActivationProtocol
)

func (a HeaderActivationType) String() string {
	if a == HeaderActivationProtocol {
		return "protocol"
	}
	return "foreground"
}

// ParseHeaderActivationType parses "foreground" or "protocol".
func ParseHeaderActivationType(s string) (HeaderActivationType, error) {
	return parseEnum("header activation type", s, []HeaderActivationType{HeaderActivationForeground, HeaderActivationProtocol})
}

// Header groups toasts in Action Center. Toasts sharing a header id are shown
// under the same header.
type Header struct {
	id             string
	title          string
	arguments      string
	activationType optional[HeaderActivationType]
}

// NewHeader creates a header. arguments is handed back to the app when the
// header is clicked.
func NewHeader(id, title, arguments string) Header {
	return Header{id: id, title: title, arguments: arguments}
}

// WithActivationType sets what the header activates.
func (h Header) WithActivationType(t HeaderActivationType) Header {
	h.activationType = some(t)
	return h
}

// Element renders the header.
func (h Header) Element(doc *dom.Document) (*dom.Element, error) {
	el := doc.CreateElement("header")
	el.SetAttribute("id", h.id)
	el.SetAttribute("title", h.title)
	el.SetAttribute("arguments", h.arguments)
	if h.activationType.set {
		el.SetAttribute("activationType", h.activationType.value.String())
	}
	return el, nil
}

// AddHeader adds a header to the toast.
func (t *Toast) AddHeader(header Header) error {
	return t.append(t.root, header)
}
