//go:build windows

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowershellCommand(t *testing.T) {
	n := &powershellNotifier{powershell: "powershell.exe"}
	doc := `<toast><visual><binding template="ToastGeneric"><text id="0">It's "quoted"</text></binding></visual></toast>`

	cmd := n.command("Contoso.App", doc)

	assert.Contains(t, cmd.Args, "-NonInteractive")
	assert.Contains(t, cmd.Env, envDocument+"="+doc)
	assert.Contains(t, cmd.Env, envAppID+"=Contoso.App")
	assert.True(t, cmd.SysProcAttr.HideWindow)
	// The document never ends up in the script text.
	assert.NotContains(t, cmd.Args[len(cmd.Args)-1], "quoted")
}
