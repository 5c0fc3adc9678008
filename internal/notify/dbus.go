//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier shows toasts as freedesktop notifications.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// If D-Bus is unavailable the returned notifier fails every Show with
// ErrUnavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &unavailableNotifier{reason: err}, nil
	}

	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

// Show flattens the toast document and sends it via D-Bus.
func (n *dbusNotifier) Show(appID, document string) error {
	notif, err := FromDocument(appID, document)
	if err != nil {
		return err
	}
	_, err = n.notify(notif)
	return err
}

func (n *dbusNotifier) notify(notif Notification) (uint32, error) {
	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,              // flags
		notif.AppName,  // app_name
		uint32(0),      // replaces_id
		notif.Icon,     // app_icon (path or icon name)
		notif.Title,    // summary
		notif.Body,     // body
		actions(notif), // actions
		hints(notif),   // hints
		notif.Timeout,  // expire_timeout
	)

	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func actions(notif Notification) []string {
	if notif.Actions == nil {
		return []string{}
	}
	return notif.Actions
}

func hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(notif.Urgency)),
	}
	if notif.Image != "" {
		h["image-path"] = dbus.MakeVariant(notif.Image)
	}
	if notif.SoundName != "" {
		h["sound-name"] = dbus.MakeVariant(notif.SoundName)
	}
	if notif.SuppressSound {
		h["suppress-sound"] = dbus.MakeVariant(true)
	}
	if notif.Progress >= 0 {
		h["value"] = dbus.MakeVariant(notif.Progress)
	}
	return h
}
