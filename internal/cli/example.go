package cli

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/errmsg"
)

// newExampleCmd creates the example command.
func (a *App) newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Show a sample conversation toast",
		Long: `Show a toast with a title, two lines of text, a circular app logo,
a hero image, a reply box and a Send button.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := exampleToast(a.toastOptions()...)
			if err != nil {
				return &opError{op: errmsg.OpToastBuild, err: err}
			}
			return a.show(t)
		},
	}
}

func exampleToast(opts ...wintoast.Option) (*wintoast.Toast, error) {
	t := wintoast.New(opts...)
	t.SetTitle("Hello, world!")

	steps := []func() error{
		func() error { return t.AddText(wintoast.NewText("Jill Bender")) },
		func() error {
			return t.AddText(wintoast.NewText("Check out where we camped last weekend! It was incredible, wish you could have come on the backpacking trip!"))
		},
		func() error {
			return t.AddImage(wintoast.NewImage("https://unsplash.it/64?image=1027").
				WithPlacement(wintoast.PlacementAppLogoOverride).
				WithHintCrop(wintoast.CropCircle))
		},
		func() error {
			return t.AddImage(wintoast.NewImage("https://unsplash.it/360/180?image=1043").
				WithPlacement(wintoast.PlacementHero))
		},
		func() error {
			return t.AddInput(wintoast.NewTextInput("textbox").WithPlaceHolderContent("reply"))
		},
		func() error {
			return t.AddAction(wintoast.NewAction("Send", "action=reply&threadId=92187").
				WithImageURI("").
				WithHintInputID("textbox").
				WithActivationType(wintoast.ActivationBackground))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
