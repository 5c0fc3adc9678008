// Package wintoast builds Windows toast notification documents and hands them
// to the desktop notification service.
//
// A Toast starts from the minimal ToastGeneric skeleton and is filled in with
// tag values (Text, Image, Action, Input, Audio, Progress, Header) that render
// themselves into the shared document:
//
//	t := wintoast.New()
//	t.SetTitle("Hello")
//	_ = t.AddText(wintoast.NewText("Body").WithID(1))
//	_ = t.AddAction(wintoast.NewAction("Open", "action=open"))
//	err := t.Show()
//
// A Toast is not safe for concurrent use.
package wintoast

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/llehouerou/wintoast/dom"
	"github.com/llehouerou/wintoast/internal/notify"
)

// PowerShellAppID can be used when the caller has no registered
// AppUserModelID. The toast will then report its origin as PowerShell.
const PowerShellAppID = `{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\WindowsPowerShell\v1.0\powershell.exe`

// TitleID is the text id reserved for the toast title.
const TitleID = 0

// DefaultDisplayWait is how long Show blocks after submitting a toast.
const DefaultDisplayWait = 10 * time.Millisecond

// Notifier submits a serialized toast document on behalf of an application.
type Notifier interface {
	Show(appID, document string) error
}

// Toast owns one toast document and the identity it is shown under.
type Toast struct {
	doc *dom.Document

	// Fixed skeleton nodes, created once in New.
	root    *dom.Element
	visual  *dom.Element
	binding *dom.Element
	title   *dom.Element
	actions *dom.Element
	group   *dom.Element // created by the first AddSubGroup

	appID    string
	hasAudio bool

	notifier    Notifier
	logger      *slog.Logger
	displayWait time.Duration
}

// Option configures a Toast.
type Option func(*Toast)

// WithAppID sets the AppUserModelID the toast is shown under.
func WithAppID(appID string) Option {
	return func(t *Toast) {
		t.appID = appID
	}
}

// WithNotifier replaces the platform notification service.
func WithNotifier(n Notifier) Option {
	return func(t *Toast) {
		t.notifier = n
	}
}

// WithLogger sets the logger used by Show.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Toast) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithDisplayWait sets how long Show blocks after submission. The
// notification service returns before the toast is displayed and a process
// that exits immediately can lose it; the wait is a heuristic, not a
// guarantee. Zero disables it.
func WithDisplayWait(d time.Duration) Option {
	return func(t *Toast) {
		t.displayWait = d
	}
}

// New creates a toast with an empty title, an empty actions list and the
// PowerShell identity.
func New(opts ...Option) *Toast {
	doc := dom.New("toast")
	root := doc.Root()
	visual := root.CreateChild("visual")
	binding := visual.CreateChild("binding")
	binding.SetAttribute("template", "ToastGeneric")
	title := binding.CreateChild("text")
	title.SetAttribute("id", "0")
	actions := root.CreateChild("actions")

	t := &Toast{
		doc:         doc,
		root:        root,
		visual:      visual,
		binding:     binding,
		title:       title,
		actions:     actions,
		appID:       PowerShellAppID,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		displayWait: DefaultDisplayWait,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetAppID sets the AppUserModelID used by Show.
func (t *Toast) SetAppID(appID string) {
	t.appID = appID
}

// AppID returns the AppUserModelID used by Show.
func (t *Toast) AppID() string {
	return t.appID
}

// Document returns the live document behind the toast. Changes made through
// it show up in XML and Show. The toast keeps handles to the skeleton
// elements, so callers must not remove them or add a second binding or
// actions element.
func (t *Toast) Document() *dom.Document {
	return t.doc
}

// XML returns the serialized toast document.
func (t *Toast) XML() (string, error) {
	return t.doc.XML()
}

// IndentedXML returns the serialized toast document indented by two spaces.
func (t *Toast) IndentedXML() (string, error) {
	return t.doc.IndentedXML(2)
}

// Show serializes the toast and submits it to the notification service.
// Submission errors are returned as is; nothing is retried.
func (t *Toast) Show() error {
	xml, err := t.XML()
	if err != nil {
		return err
	}
	t.logger.Debug("showing toast", "app_id", t.appID, "xml", xml)

	n := t.notifier
	if n == nil {
		n, err = notify.New()
		if err != nil {
			return fmt.Errorf("open notification service: %w", err)
		}
	}

	err = n.Show(t.appID, xml)
	if t.displayWait > 0 {
		time.Sleep(t.displayWait)
	}
	if err != nil {
		t.logger.Warn("toast submission failed", "app_id", t.appID, "err", err)
		return fmt.Errorf("show toast: %w", err)
	}
	return nil
}

// append converts tag and appends it to parent.
func (t *Toast) append(parent *dom.Element, tag Tag) error {
	el, err := tag.Element(t.doc)
	if err != nil {
		return err
	}
	return parent.AppendChild(el)
}
