package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/definition"
	"github.com/llehouerou/wintoast/internal/errmsg"
)

// newSendCmd creates the send command.
func (a *App) newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <definition.toml>",
		Short: "Show a toast described in a TOML file",
		Long: `Show a toast described in a TOML definition file.

Example definition:
  title = "Alarm"
  scenario = "alarm"

  [[text]]
  content = "Wake up"
  id = 1

  [[action]]
  content = "Snooze"
  arguments = "snooze"
  activation = "background"

  [audio]
  sound = "Looping.Alarm2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.buildDefinition(args[0])
			if err != nil {
				return err
			}
			return a.show(t)
		},
	}
}

// newPrintCmd creates the print command.
func (a *App) newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <definition.toml>",
		Short: "Print the XML of a toast definition without showing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.buildDefinition(args[0])
			if err != nil {
				return err
			}
			if err := a.applyDefaults(t); err != nil {
				return &opError{op: errmsg.OpToastBuild, context: args[0], err: err}
			}
			xml, err := t.IndentedXML()
			if err != nil {
				return &opError{op: errmsg.OpToastRender, context: args[0], err: err}
			}

			fmt.Fprintln(a.stdout, headerStyle.Render(args[0]))
			fmt.Fprintln(a.stdout, dimStyle.Render("app id: "+t.AppID()))
			fmt.Fprint(a.stdout, xml)
			return nil
		},
	}
}

func (a *App) buildDefinition(path string) (*wintoast.Toast, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, &opError{op: errmsg.OpDefinitionLoad, context: path, err: err}
	}
	t, err := def.Build(a.toastOptions()...)
	if err != nil {
		return nil, &opError{op: errmsg.OpToastBuild, context: path, err: err}
	}
	return t, nil
}
