package wintoast

import (
	"fmt"
	"math"
	"strconv"

	"github.com/llehouerou/wintoast/dom"
)

// ProgressValue is the fill of a progress bar: a fraction between 0 and 1,
// or indeterminate.
type ProgressValue struct {
	fraction      float64
	indeterminate bool
}

// FloatingValue is a progress bar filled to fraction, between 0.0 and 1.0.
func FloatingValue(fraction float64) ProgressValue {
	return ProgressValue{fraction: fraction}
}

// IndeterminateValue is a progress bar showing a loading animation.
func IndeterminateValue() ProgressValue {
	return ProgressValue{indeterminate: true}
}

// String returns the value attribute, e.g. "0.42" or "indeterminate".
func (v ProgressValue) String() string {
	if v.indeterminate {
		return "indeterminate"
	}
	return strconv.FormatFloat(v.fraction, 'f', -1, 64)
}

func (v ProgressValue) validate() error {
	if v.indeterminate {
		return nil
	}
	if math.IsNaN(v.fraction) || v.fraction < 0 || v.fraction > 1 {
		return fmt.Errorf("%w: %v", ErrProgressOutOfRange, v.fraction)
	}
	return nil
}

// Progress is a progress bar.
type Progress struct {
	title               optional[string]
	status              string
	value               ProgressValue
	valueStringOverride optional[string]
}

// NewProgress creates a progress bar. status is shown below the bar on the
// left, e.g. "Downloading...".
func NewProgress(status string, value ProgressValue) Progress {
	return Progress{status: status, value: value}
}

// WithTitle sets the title shown above the bar.
func (p Progress) WithTitle(title string) Progress {
	p.title = some(title)
	return p
}

// WithValueStringOverride replaces the percentage shown below the bar on the
// right.
func (p Progress) WithValueStringOverride(s string) Progress {
	p.valueStringOverride = some(s)
	return p
}

// Element renders the progress bar.
func (p Progress) Element(doc *dom.Document) (*dom.Element, error) {
	if err := p.value.validate(); err != nil {
		return nil, err
	}

	el := doc.CreateElement("progress")
	if p.title.set {
		el.SetAttribute("title", p.title.value)
	}
	el.SetAttribute("status", p.status)
	el.SetAttribute("value", p.value.String())
	if p.valueStringOverride.set {
		el.SetAttribute("valueStringOverride", p.valueStringOverride.value)
	}
	return el, nil
}

// AddProgress adds a progress bar to the binding.
func (t *Toast) AddProgress(progress Progress) error {
	return t.append(t.binding, progress)
}
