package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/dom"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toast.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func load(t *testing.T, content string) *Definition {
	t.Helper()
	def, err := Load(writeDefinition(t, content))
	require.NoError(t, err)
	return def
}

func node(t *testing.T, toast *wintoast.Toast, path string) *dom.Element {
	t.Helper()
	el, err := toast.Document().SelectSingleNode(path)
	require.NoError(t, err)
	return el
}

func attr(el *dom.Element, name string) string {
	v, _ := el.Attribute(name)
	return v
}

const fullDefinition = `
app_id = "Contoso.Alarms"
title = "Alarm"
duration = "long"
scenario = "alarm"
launch = "action=open"
styled_buttons = true

[binding]
base_uri = "https://example.com/"

[visual]
add_image_query = true

[[text]]
content = "Wake up"
id = 1

[[text]]
content = "via Alarms"
id = 2
bottom = true

[[image]]
src = "https://example.com/logo.png"
crop = "circle"

[[image]]
src = "https://example.com/hero.png"
placement = "hero"
alt = "Sunrise"

[[progress]]
status = "Snoozed"
value = 0.5
title = "Snoozes"

[[progress]]
status = "Waiting"

[[subgroup]]
[[subgroup.child]]
[subgroup.child.text]
content = "Mon"
[[subgroup.child]]
[subgroup.child.image]
src = "sun.png"

[[input]]
id = "minutes"
title = "Snooze for"
default = "5"
[[input.selection]]
id = "5"
content = "5 minutes"
[[input.selection]]
id = "10"
content = "10 minutes"

[[input]]
id = "note"
placeholder = "Add a note"

[[action]]
content = "Snooze"
arguments = "snooze"
activation = "background"
input_id = "minutes"
button_style = "success"

[[action]]
content = "Settings"
arguments = "settings"
context_menu = true

[[header]]
id = "alarms"
title = "Alarms"
arguments = "header=alarms"
activation = "protocol"

[[command]]
id = "dismiss"
arguments = "dismiss"

[audio]
sound = "Looping.Alarm2"
loop = true
`

func TestLoadAndBuildFullDefinition(t *testing.T) {
	def := load(t, fullDefinition)

	toast, err := def.Build(wintoast.WithAppID("Ignored.App"))
	require.NoError(t, err)
	assert.Equal(t, "Contoso.Alarms", toast.AppID())

	root := toast.Document().Root()
	assert.Equal(t, "long", attr(root, "duration"))
	assert.Equal(t, "alarm", attr(root, "scenario"))
	assert.Equal(t, "action=open", attr(root, "launch"))
	assert.Equal(t, "true", attr(root, "useButtonStyle"))

	assert.Equal(t, "https://example.com/", attr(node(t, toast, "/toast/visual/binding"), "baseUri"))
	assert.Equal(t, "true", attr(node(t, toast, "/toast/visual"), "addImageQuery"))

	assert.Equal(t, "Alarm", node(t, toast, "//text[@id='0']").InnerText())
	assert.Equal(t, "Wake up", node(t, toast, "//text[@id='1']").InnerText())
	assert.Equal(t, "attribution", attr(node(t, toast, "//text[@id='2']"), "placement"))

	binding := node(t, toast, "/toast/visual/binding")
	images := binding.ChildrenByTag("image")
	require.Len(t, images, 2)
	assert.Equal(t, "circle", attr(images[0], "hint-crop"))
	assert.Equal(t, "appLogoOverride", attr(images[0], "placement"))
	assert.Equal(t, "hero", attr(images[1], "placement"))
	assert.Equal(t, "Sunrise", attr(images[1], "alt"))

	progress := binding.ChildrenByTag("progress")
	require.Len(t, progress, 2)
	assert.Equal(t, "0.5", attr(progress[0], "value"))
	assert.Equal(t, "Snoozes", attr(progress[0], "title"))
	assert.Equal(t, "indeterminate", attr(progress[1], "value"))

	subgroup := node(t, toast, "/toast/visual/binding/group/subgroup")
	children := subgroup.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "text", children[0].TagName())
	assert.Equal(t, "Mon", children[0].InnerText())
	assert.Equal(t, "image", children[1].TagName())

	actions := node(t, toast, "/toast/actions")
	inputs := actions.ChildrenByTag("input")
	require.Len(t, inputs, 2)
	assert.Equal(t, "selection", attr(inputs[0], "type"))
	assert.Equal(t, "5", attr(inputs[0], "defaultInput"))
	assert.Len(t, inputs[0].Children(), 2)
	assert.Equal(t, "text", attr(inputs[1], "type"))
	assert.Equal(t, "Add a note", attr(inputs[1], "placeHolderContent"))

	buttons := actions.ChildrenByTag("action")
	require.Len(t, buttons, 2)
	assert.Equal(t, "background", attr(buttons[0], "activationType"))
	assert.Equal(t, "minutes", attr(buttons[0], "hint-inputId"))
	assert.Equal(t, "Success", attr(buttons[0], "hint-buttonStyle"))
	assert.Equal(t, "contextMenu", attr(buttons[1], "placement"))

	header := root.ChildrenByTag("header")
	require.Len(t, header, 1)
	assert.Equal(t, "protocol", attr(header[0], "activationType"))

	commands := root.ChildrenByTag("commands")
	require.Len(t, commands, 1)
	assert.Equal(t, "alarm", attr(commands[0], "scenario"))

	audio := root.ChildrenByTag("audio")
	require.Len(t, audio, 1)
	assert.Equal(t, "ms-winsoundevent:Notification.Looping.Alarm2", attr(audio[0], "src"))
	assert.Equal(t, "true", attr(audio[0], "loop"))
	assert.True(t, toast.HasAudio())
}

func TestBuildMinimalDefinition(t *testing.T) {
	def := load(t, `title = "Hi"`)

	toast, err := def.Build(wintoast.WithAppID("Contoso.App"))
	require.NoError(t, err)

	assert.Equal(t, "Contoso.App", toast.AppID())
	xml, err := toast.XML()
	require.NoError(t, err)
	assert.Equal(t,
		`<toast><visual><binding template="ToastGeneric"><text id="0">Hi</text></binding></visual><actions/></toast>`,
		xml)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		target     error
		contains   string
	}{
		{
			name:       "reserved text id",
			definition: "[[text]]\ncontent = \"x\"\nid = 0\n",
			target:     wintoast.ErrReservedID,
			contains:   "text[0]",
		},
		{
			name:       "unknown scenario",
			definition: `scenario = "party"`,
			target:     wintoast.ErrUnknownValue,
		},
		{
			name:       "unknown activation",
			definition: "[[action]]\ncontent = \"x\"\nactivation = \"later\"\n",
			target:     wintoast.ErrUnknownValue,
			contains:   "action[0]",
		},
		{
			name:       "progress out of range",
			definition: "[[progress]]\nstatus = \"x\"\nvalue = 2.5\n",
			target:     wintoast.ErrProgressOutOfRange,
			contains:   "progress[0]",
		},
		{
			name:       "image without src",
			definition: "[[image]]\nalt = \"nothing\"\n",
			target:     ErrInvalid,
			contains:   "image[0]",
		},
		{
			name:       "empty subgroup child",
			definition: "[[subgroup]]\n[[subgroup.child]]\n",
			target:     ErrInvalid,
			contains:   "subgroup[0]",
		},
		{
			name:       "unknown sound",
			definition: "[audio]\nsound = \"Trumpet\"\n",
			target:     wintoast.ErrUnknownValue,
			contains:   "audio",
		},
		{
			name:       "unknown command",
			definition: "[[command]]\nid = \"nap\"\n",
			target:     wintoast.ErrUnknownValue,
			contains:   "command[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.definition).Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = Load(writeDefinition(t, "title = [[["))
	require.Error(t, err)
}
