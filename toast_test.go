package wintoast

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wintoast/dom"
)

const skeleton = `<toast><visual><binding template="ToastGeneric"><text id="0"/></binding></visual><actions/></toast>`

// fakeNotifier records submissions.
type fakeNotifier struct {
	appID    string
	document string
	calls    int
	err      error
}

func (f *fakeNotifier) Show(appID, document string) error {
	f.calls++
	f.appID = appID
	f.document = document
	return f.err
}

func mustXML(t *testing.T, toast *Toast) string {
	t.Helper()
	xml, err := toast.XML()
	require.NoError(t, err)
	return xml
}

func mustNode(t *testing.T, toast *Toast, path string) *dom.Element {
	t.Helper()
	el, err := toast.Document().SelectSingleNode(path)
	require.NoError(t, err)
	return el
}

func TestNewSkeleton(t *testing.T) {
	toast := New()
	assert.Equal(t, skeleton, mustXML(t, toast))
	assert.Equal(t, PowerShellAppID, toast.AppID())
	assert.False(t, toast.HasAudio())
}

func TestSetAppID(t *testing.T) {
	toast := New(WithAppID("Contoso.Mail"))
	assert.Equal(t, "Contoso.Mail", toast.AppID())

	toast.SetAppID("Contoso.Calendar")
	assert.Equal(t, "Contoso.Calendar", toast.AppID())
	// The identity is not part of the document.
	assert.Equal(t, skeleton, mustXML(t, toast))
}

func TestSetTitle(t *testing.T) {
	toast := New()
	toast.SetTitle("first")
	toast.SetTitle("Hello, world!")

	title, err := toast.Document().ElementByID("0")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", title.InnerText())
}

func TestSetTitleWithImageSharingIDZero(t *testing.T) {
	toast := New()
	require.NoError(t, toast.AddImage(NewImage("logo.png").WithID(0)))

	toast.SetTitle("still works")
	assert.Equal(t, "still works", mustNode(t, toast, "//text[@id='0']").InnerText())
}

func TestRootAttributes(t *testing.T) {
	toast := New()
	toast.SetDuration(DurationLong)
	toast.SetLaunch("action=open&id=7")
	toast.SetScenario(ScenarioIncomingCall)
	toast.SetStyledButton(true)
	toast.SetDuration(DurationShort)

	root := toast.Document().Root()
	assert.Equal(t, []dom.Attr{
		{Name: "duration", Value: "short"},
		{Name: "launch", Value: "action=open&id=7"},
		{Name: "scenario", Value: "incomingCall"},
		{Name: "useButtonStyle", Value: "true"},
	}, root.Attributes())

	toast.SetStyledButton(false)
	v, _ := root.Attribute("useButtonStyle")
	assert.Equal(t, "false", v)
}

func TestBindingAndVisualAttributes(t *testing.T) {
	toast := New()
	toast.BindingAddImageQuery()
	toast.SetBindingBaseURI("https://example.com/")
	toast.SetBindingFallback("ToastImageAndText02")
	toast.VisualAddImageQuery()
	toast.SetVisualBaseURI("ms-appx:///images/")

	assert.Equal(t, []dom.Attr{
		{Name: "template", Value: "ToastGeneric"},
		{Name: "addImageQuery", Value: "true"},
		{Name: "baseUri", Value: "https://example.com/"},
		{Name: "fallback", Value: "ToastImageAndText02"},
	}, mustNode(t, toast, "/toast/visual/binding").Attributes())

	assert.Equal(t, []dom.Attr{
		{Name: "addImageQuery", Value: "true"},
		{Name: "baseUri", Value: "ms-appx:///images/"},
	}, mustNode(t, toast, "/toast/visual").Attributes())
}

func TestShow(t *testing.T) {
	fake := &fakeNotifier{}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	toast := New(WithNotifier(fake), WithLogger(logger), WithDisplayWait(0), WithAppID("Contoso.App"))
	toast.SetTitle("Hi")

	require.NoError(t, toast.Show())
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "Contoso.App", fake.appID)
	assert.Equal(t, mustXML(t, toast), fake.document)
	assert.Contains(t, logs.String(), "showing toast")

	// Showing does not clear anything.
	require.NoError(t, toast.Show())
	assert.Equal(t, 2, fake.calls)
	assert.Contains(t, fake.document, ">Hi<")
}

func TestShowPropagatesSubmissionError(t *testing.T) {
	submitErr := errors.New("access denied")
	fake := &fakeNotifier{err: submitErr}
	toast := New(WithNotifier(fake), WithDisplayWait(0))

	err := toast.Show()
	require.Error(t, err)
	assert.ErrorIs(t, err, submitErr)
	assert.Equal(t, 1, fake.calls, "submission is not retried")
}

func TestShowWaitsAfterSubmission(t *testing.T) {
	toast := New(WithNotifier(&fakeNotifier{}), WithDisplayWait(20*time.Millisecond))

	start := time.Now()
	require.NoError(t, toast.Show())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestExampleToastRoundTrip(t *testing.T) {
	toast := New()
	toast.SetTitle("Hello, world!")
	require.NoError(t, toast.AddText(NewText("Jill Bender").WithID(1)))
	require.NoError(t, toast.AddImage(
		NewImage("https://unsplash.it/64?image=1027").
			WithPlacement(PlacementAppLogoOverride).
			WithHintCrop(CropCircle)))
	require.NoError(t, toast.AddInput(NewTextInput("textbox").WithPlaceHolderContent("reply")))
	require.NoError(t, toast.AddAction(
		NewAction("Send", "action=reply&threadId=92187").
			WithImageURI("").
			WithHintInputID("textbox").
			WithActivationType(ActivationBackground)))

	doc, err := dom.Parse(mustXML(t, toast))
	require.NoError(t, err)

	binding, err := doc.SelectSingleNode("/toast/visual/binding")
	require.NoError(t, err)
	texts := binding.ChildrenByTag("text")
	require.Len(t, texts, 2)
	ids := []string{}
	for _, text := range texts {
		id, _ := text.Attribute("id")
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"0", "1"}, ids)

	images := binding.ChildrenByTag("image")
	require.Len(t, images, 1)
	placement, _ := images[0].Attribute("placement")
	crop, _ := images[0].Attribute("hint-crop")
	assert.Equal(t, "appLogoOverride", placement)
	assert.Equal(t, "circle", crop)

	actions, err := doc.SelectSingleNode("/toast/actions")
	require.NoError(t, err)
	inputs := actions.ChildrenByTag("input")
	require.Len(t, inputs, 1)
	inputType, _ := inputs[0].Attribute("type")
	inputID, _ := inputs[0].Attribute("id")
	assert.Equal(t, "text", inputType)
	assert.Equal(t, "textbox", inputID)

	buttons := actions.ChildrenByTag("action")
	require.Len(t, buttons, 1)
	content, _ := buttons[0].Attribute("content")
	activation, _ := buttons[0].Attribute("activationType")
	hintInput, _ := buttons[0].Attribute("hint-inputId")
	args, _ := buttons[0].Attribute("arguments")
	assert.Equal(t, "Send", content)
	assert.Equal(t, "background", activation)
	assert.Equal(t, "textbox", hintInput)
	assert.Equal(t, "action=reply&threadId=92187", args)
}

func TestDocumentIsLive(t *testing.T) {
	toast := New()
	binding := mustNode(t, toast, "/toast/visual/binding")
	binding.CreateChild("text").SetInnerText("added directly")

	require.NoError(t, toast.AddText(NewText("added by toast").WithID(1)))
	texts := binding.ChildrenByTag("text")
	require.Len(t, texts, 3)
	assert.Contains(t, mustXML(t, toast), "<text>added directly</text>")
}

func TestFailedMutationLeavesEarlierChanges(t *testing.T) {
	toast := New()
	require.NoError(t, toast.AddText(NewText("kept").WithID(1)))
	require.ErrorIs(t, toast.AddText(NewText("rejected").WithID(0)), ErrReservedID)

	xml := mustXML(t, toast)
	assert.Contains(t, xml, "kept")
	assert.NotContains(t, xml, "rejected")
}
