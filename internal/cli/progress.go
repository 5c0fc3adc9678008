package cli

import (
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/errmsg"
)

// progressOptions holds options for the progress command.
type progressOptions struct {
	title    string
	label    string
	status   string
	done     int64
	total    int64
	appID    string
	duration string
}

// newProgressCmd creates the progress command.
func (a *App) newProgressCmd() *cobra.Command {
	opts := &progressOptions{}

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a toast with a transfer progress bar",
		Long: `Show a toast with a progress bar for a transfer of --done out of --total
bytes. Without --total the bar is indeterminate.

Example:
  wintoast progress -t "Downloading" --label "ubuntu.iso" --done 1200000000 --total 4700000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.progressToast(opts)
			if err != nil {
				return &opError{op: errmsg.OpToastBuild, err: err}
			}
			return a.show(t)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Toast title")
	cmd.Flags().StringVar(&opts.label, "label", "", "Progress bar title")
	cmd.Flags().StringVar(&opts.status, "status", "Downloading...", "Status shown below the bar")
	cmd.Flags().Int64Var(&opts.done, "done", 0, "Bytes transferred")
	cmd.Flags().Int64Var(&opts.total, "total", 0, "Total bytes")
	cmd.Flags().StringVar(&opts.appID, "app-id", "", "AppUserModelID to show the toast as")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "short or long")

	return cmd
}

func (a *App) progressToast(opts *progressOptions) (*wintoast.Toast, error) {
	if opts.done < 0 || opts.total < 0 {
		return nil, errors.New("byte counts must not be negative")
	}
	if opts.total > 0 && opts.done > opts.total {
		return nil, errors.New("done is larger than total")
	}

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

	value := wintoast.IndeterminateValue()
	if opts.total > 0 {
		value = wintoast.FloatingValue(float64(opts.done) / float64(opts.total))
	}
	bar := wintoast.NewProgress(opts.status, value)
	if opts.label != "" {
		bar = bar.WithTitle(opts.label)
	}
	switch {
	case opts.total > 0:
		bar = bar.WithValueStringOverride(humanize.Bytes(uint64(opts.done)) + " / " + humanize.Bytes(uint64(opts.total))) //nolint:gosec // checked non-negative above
	case opts.done > 0:
		bar = bar.WithValueStringOverride(humanize.Bytes(uint64(opts.done))) //nolint:gosec // checked non-negative above
	}

	if err := t.AddProgress(bar); err != nil {
		return nil, err
	}
	return t, nil
}
