package notify

import (
	"fmt"
	"html"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/llehouerou/wintoast/dom"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Expiration timeouts matching the toast durations, in ms.
const (
	timeoutDefault int32 = -1
	timeoutShort   int32 = 7000
	timeoutLong    int32 = 25000
)

// Notification is a toast document flattened into a freedesktop notification.
type Notification struct {
	AppName       string   // Sender name
	Title         string   // Summary text, from the title text
	Body          string   // Remaining texts and progress status, one per line, markup escaped
	Icon          string   // App logo image path (optional)
	Image         string   // Hero image path (optional)
	Actions       []string // Alternating action keys and labels
	Timeout       int32    // ms, -1 = server default
	Urgency       Urgency  // From the toast scenario
	SoundName     string   // Freedesktop sound theme name (optional)
	SuppressSound bool     // Audio marked silent
	Progress      int32    // 0-100, -1 when there is no determinate progress bar
}

// FromDocument flattens a serialized toast document for the freedesktop
// notification service. Markup it cannot represent (inputs, headers,
// commands, subgroups) is dropped.
func FromDocument(appID, document string) (Notification, error) {
	doc, err := dom.Parse(document)
	if err != nil {
		return Notification{}, err
	}
	root := doc.Root()
	if root.TagName() != "toast" {
		return Notification{}, fmt.Errorf("unexpected root element %q", root.TagName())
	}

	n := Notification{
		AppName:  appName(appID),
		Timeout:  timeoutDefault,
		Urgency:  UrgencyNormal,
		Progress: -1,
	}

	switch attr(root, "duration") {
	case "short":
		n.Timeout = timeoutShort
	case "long":
		n.Timeout = timeoutLong
	}
	switch attr(root, "scenario") {
	case "alarm", "incomingCall", "urgent":
		n.Urgency = UrgencyCritical
	}

	if binding, err := doc.SelectSingleNode("/toast/visual/binding"); err == nil {
		readBinding(binding, &n)
	}

	if actions, err := doc.SelectSingleNode("/toast/actions"); err == nil {
		for _, a := range actions.ChildrenByTag("action") {
			n.Actions = append(n.Actions, attr(a, "arguments"), attr(a, "content"))
		}
	}

	if audio := root.ChildrenByTag("audio"); len(audio) > 0 {
		n.SuppressSound = attr(audio[0], "silent") == "true"
		n.SoundName = soundName(attr(audio[0], "src"))
	}

	return n, nil
}

func readBinding(binding *dom.Element, n *Notification) {
	var lines, attribution []string
	for _, el := range binding.Children() {
		switch el.TagName() {
		case "text":
			switch {
			case attr(el, "id") == "0":
				n.Title = el.InnerText()
			case attr(el, "placement") == "attribution":
				attribution = append(attribution, el.InnerText())
			case el.InnerText() != "":
				lines = append(lines, el.InnerText())
			}
		case "image":
			path := imagePath(attr(el, "src"))
			if attr(el, "placement") == "hero" {
				n.Image = path
			} else if n.Icon == "" {
				n.Icon = path
			}
		case "progress":
			if status := attr(el, "status"); status != "" {
				lines = append(lines, status)
			}
			if n.Progress < 0 {
				if v, err := strconv.ParseFloat(attr(el, "value"), 64); err == nil {
					n.Progress = int32(math.Round(v * 100))
				}
			}
		}
	}
	// Servers with the body-markup capability parse the body as markup.
	body := append(lines, attribution...)
	for i, line := range body {
		body[i] = html.EscapeString(line)
	}
	n.Body = strings.Join(body, "\n")
}

func attr(el *dom.Element, name string) string {
	v, _ := el.Attribute(name)
	return v
}

// imagePath turns file URIs into plain paths, which notification servers
// expect for local images.
func imagePath(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Scheme != "file" {
		return src
	}
	return u.Path
}

// appName derives a display name from an AppUserModelID or executable path.
func appName(appID string) string {
	name := appID
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".exe")
}

// soundName maps Windows sound events onto freedesktop sound theme names.
func soundName(src string) string {
	event := strings.TrimPrefix(src, "ms-winsoundevent:Notification.")
	switch {
	case event == "IM" || event == "SMS":
		return "message-new-instant"
	case event == "Mail":
		return "message-new-email"
	case event == "Reminder" || strings.HasPrefix(event, "Looping.Alarm"):
		return "alarm-clock-elapsed"
	case strings.HasPrefix(event, "Looping.Call"):
		return "phone-incoming-call"
	case event == "Default":
		return "message"
	default:
		return ""
	}
}
