//go:build !linux && !windows

package notify

import (
	"errors"
	"runtime"
)

// New returns a notifier that always fails: there is no supported
// notification service on this platform.
func New() (Notifier, error) {
	return &unavailableNotifier{reason: errors.New("unsupported platform " + runtime.GOOS)}, nil
}
