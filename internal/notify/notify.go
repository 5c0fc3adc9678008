// Package notify hands serialized toast documents to the desktop
// notification service.
package notify

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no notification service can be reached.
var ErrUnavailable = errors.New("notification service unavailable")

// Notifier submits toast documents.
type Notifier interface {
	// Show submits document on behalf of appID. It returns once the service
	// accepted the toast, which may be before it is displayed.
	Show(appID, document string) error
}

// unavailableNotifier fails every submission with the reason the service
// could not be reached.
type unavailableNotifier struct {
	reason error
}

func (n *unavailableNotifier) Show(_, _ string) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, n.reason)
}
