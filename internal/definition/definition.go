// Package definition loads toasts described in TOML files.
//
// A definition mirrors the builder calls: top-level keys set the toast
// attributes and each array of tables adds tags in file order.
//
//	title = "Alarm"
//	scenario = "alarm"
//
//	[[text]]
//	content = "Wake up"
//	id = 1
//
//	[[action]]
//	content = "Snooze"
//	arguments = "snooze"
//	activation = "background"
package definition

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalid is returned for definitions that cannot describe a toast.
var ErrInvalid = errors.New("invalid toast definition")

// Definition is a toast described declaratively.
type Definition struct {
	AppID         string  `koanf:"app_id"`
	Title         string  `koanf:"title"`
	Duration      string  `koanf:"duration"`
	Scenario      string  `koanf:"scenario"`
	Launch        *string `koanf:"launch"`
	StyledButtons *bool   `koanf:"styled_buttons"`

	Binding Binding `koanf:"binding"`
	Visual  Visual  `koanf:"visual"`

	Texts     []Text     `koanf:"text"`
	Images    []Image    `koanf:"image"`
	Progress  []Progress `koanf:"progress"`
	SubGroups []SubGroup `koanf:"subgroup"`
	Inputs    []Input    `koanf:"input"`
	Actions   []Action   `koanf:"action"`
	Headers   []Header   `koanf:"header"`
	Commands  []Command  `koanf:"command"`
	Audio     *Audio     `koanf:"audio"`
}

// Binding holds the binding attributes.
type Binding struct {
	AddImageQuery bool   `koanf:"add_image_query"`
	BaseURI       string `koanf:"base_uri"`
	Fallback      string `koanf:"fallback"`
}

// Visual holds the visual attributes.
type Visual struct {
	AddImageQuery bool   `koanf:"add_image_query"`
	BaseURI       string `koanf:"base_uri"`
}

type Text struct {
	Content string `koanf:"content"`
	ID      *int   `koanf:"id"`
	Bottom  bool   `koanf:"bottom"`
	Center  bool   `koanf:"center"` // hint-callScenarioCenterAlign
}

type Image struct {
	Src           string `koanf:"src"`
	ID            *int   `koanf:"id"`
	Alt           string `koanf:"alt"`
	Placement     string `koanf:"placement"`
	Crop          string `koanf:"crop"`
	AddImageQuery bool   `koanf:"add_image_query"`
}

type Progress struct {
	Title         *string  `koanf:"title"`
	Status        string   `koanf:"status"`
	Value         *float64 `koanf:"value"` // unset means indeterminate
	ValueOverride *string  `koanf:"value_override"`
}

// SubGroup is one column; each child is either a text or an image.
type SubGroup struct {
	Children []SubGroupChild `koanf:"child"`
}

type SubGroupChild struct {
	Text  *Text  `koanf:"text"`
	Image *Image `koanf:"image"`
}

// Input is a text box, or a selection list when Selections is not empty.
type Input struct {
	ID          string      `koanf:"id"`
	Title       *string     `koanf:"title"`
	PlaceHolder *string     `koanf:"placeholder"`
	Default     *string     `koanf:"default"`
	Selections  []Selection `koanf:"selection"`
}

type Selection struct {
	ID      string `koanf:"id"`
	Content string `koanf:"content"`
}

type Action struct {
	Content     string  `koanf:"content"`
	Arguments   string  `koanf:"arguments"`
	Activation  string  `koanf:"activation"`
	ContextMenu bool    `koanf:"context_menu"`
	ImageURI    *string `koanf:"image_uri"`
	InputID     *string `koanf:"input_id"`
	ButtonStyle string  `koanf:"button_style"`
	ToolTip     *string `koanf:"tooltip"`
}

type Header struct {
	ID         string `koanf:"id"`
	Title      string `koanf:"title"`
	Arguments  string `koanf:"arguments"`
	Activation string `koanf:"activation"`
}

type Command struct {
	ID        string `koanf:"id"`
	Arguments string `koanf:"arguments"`
}

type Audio struct {
	Sound  string `koanf:"sound"`
	Loop   bool   `koanf:"loop"`
	Silent bool   `koanf:"silent"`
}

// Load reads a definition file.
func Load(path string) (*Definition, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	def := &Definition{}
	if err := k.Unmarshal("", def); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return def, nil
}
