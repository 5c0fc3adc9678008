package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/errmsg"
)

// notifyOptions holds options for the notify command.
type notifyOptions struct {
	title    string
	texts    []string
	bottom   string
	logo     string
	hero     string
	sound    string
	silent   bool
	duration string
	scenario string
	launch   string
	actions  []string
	appID    string
}

// newNotifyCmd creates the notify command.
func (a *App) newNotifyCmd() *cobra.Command {
	opts := &notifyOptions{}

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show a toast built from flags",
		Long: `Show a toast built from command line flags.

Examples:
  # Title and one line of text
  wintoast notify -t "Build finished" -m "All tests passed"

  # Alarm with a snooze button
  wintoast notify -t Alarm --scenario alarm --sound Looping.Alarm2 --action "Snooze=snooze"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.notifyToast(opts)
			if err != nil {
				return &opError{op: errmsg.OpToastBuild, err: err}
			}
			return a.show(t)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Toast title")
	cmd.Flags().StringArrayVarP(&opts.texts, "message", "m", nil, "Line of text (repeatable)")
	cmd.Flags().StringVar(&opts.bottom, "attribution", "", "Text shown at the bottom of the toast")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "App logo image (defaults to app_logo from the config)")
	cmd.Flags().StringVar(&opts.hero, "hero", "", "Hero image")
	cmd.Flags().StringVar(&opts.sound, "sound", "", "Sound name, e.g. Mail or Looping.Call2")
	cmd.Flags().BoolVar(&opts.silent, "silent", false, "Mute the toast")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "short or long")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "reminder, alarm, incomingCall or urgent")
	cmd.Flags().StringVar(&opts.launch, "launch", "", "Arguments passed to the app when the toast is clicked")
	cmd.Flags().StringArrayVar(&opts.actions, "action", nil, "Button as content=arguments (repeatable)")
	cmd.Flags().StringVar(&opts.appID, "app-id", "", "AppUserModelID to show the toast as")

	return cmd
}

func (a *App) notifyToast(opts *notifyOptions) (*wintoast.Toast, error) {
	t := wintoast.New(a.toastOptions()...)
	if opts.appID != "" {
		t.SetAppID(opts.appID)
	}
	t.SetTitle(opts.title)

	if opts.duration != "" {
		d, err := wintoast.ParseDuration(opts.duration)
		if err != nil {
			return nil, err
		}
		t.SetDuration(d)
	}
	if opts.scenario != "" {
		s, err := wintoast.ParseScenario(opts.scenario)
		if err != nil {
			return nil, err
		}
		t.SetScenario(s)
	}
	if opts.launch != "" {
		t.SetLaunch(opts.launch)
	}

	for i, text := range opts.texts {
		if err := t.SetText(i+1, text); err != nil {
			return nil, err
		}
	}
	if opts.bottom != "" {
		if err := t.SetBottomText(len(opts.texts)+1, opts.bottom); err != nil {
			return nil, err
		}
	}

	logo := opts.logo
	if logo == "" {
		logo = a.cfg.AppLogo
	}
	if logo != "" {
		if err := t.AddImage(wintoast.NewImage(imageURI(logo))); err != nil {
			return nil, err
		}
	}
	if opts.hero != "" {
		if err := t.AddImage(wintoast.NewImage(imageURI(opts.hero)).WithPlacement(wintoast.PlacementHero)); err != nil {
			return nil, err
		}
	}

	for _, raw := range opts.actions {
		content, arguments, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("action %q: want content=arguments", raw)
		}
		if err := t.AddAction(wintoast.NewAction(content, arguments)); err != nil {
			return nil, err
		}
	}

	if opts.sound != "" || opts.silent {
		sound := wintoast.SoundDefault
		if opts.sound != "" {
			var err error
			if sound, err = wintoast.ParseSound(opts.sound); err != nil {
				return nil, err
			}
		}
		audio := wintoast.NewAudio(sound)
		if opts.silent {
			audio = audio.Silent()
		}
		if err := t.AddAudio(audio); err != nil {
			return nil, err
		}
	}

	return t, nil
}
