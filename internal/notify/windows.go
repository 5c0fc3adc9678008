//go:build windows

package notify

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// Environment variables carrying the toast to the PowerShell script, which
// avoids quoting the document into the script text.
const (
	envDocument = "WINTOAST_DOCUMENT"
	envAppID    = "WINTOAST_APP_ID"
)

const showScript = `
$ErrorActionPreference = 'Stop'
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] > $null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] > $null
$doc = New-Object Windows.Data.Xml.Dom.XmlDocument
$doc.LoadXml($env:WINTOAST_DOCUMENT)
$toast = [Windows.UI.Notifications.ToastNotification]::new($doc)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier($env:WINTOAST_APP_ID).Show($toast)
`

// powershellNotifier shows toasts through the WinRT notification manager,
// driven by a hidden PowerShell process.
type powershellNotifier struct {
	powershell string
}

// New creates a Notifier backed by Windows.UI.Notifications.
func New() (Notifier, error) {
	path, err := exec.LookPath("powershell.exe")
	if err != nil {
		return &unavailableNotifier{reason: err}, nil
	}
	return &powershellNotifier{powershell: path}, nil
}

// Show loads the document into a WinRT XmlDocument and shows it.
func (n *powershellNotifier) Show(appID, document string) error {
	cmd := n.command(appID, document)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (n *powershellNotifier) command(appID, document string) *exec.Cmd {
	cmd := exec.Command(n.powershell, "-NoProfile", "-NonInteractive", "-Command", showScript)
	cmd.Env = append(os.Environ(), envDocument+"="+document, envAppID+"="+appID)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
	return cmd
}
