// Package cli implements the wintoast command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/config"
	"github.com/llehouerou/wintoast/internal/errmsg"
)

// Version is set at build time.
var Version = "dev"

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	verbose     bool
	configPaths []string // nil means the standard locations
	notifier    wintoast.Notifier

	cfg    *config.Config
	logger *slog.Logger
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "wintoast",
		Short: "Build and show Windows toast notifications",
		Long: `wintoast builds toast notification documents and submits them to the
desktop notification service. On Windows the toast is shown through
PowerShell; on Linux it is flattened into a freedesktop notification.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}
	app.root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log the generated XML and submission details")

	app.root.AddCommand(
		app.newExampleCmd(),
		app.newNotifyCmd(),
		app.newSendCmd(),
		app.newPrintCmd(),
		app.newProgressCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithConfigPaths replaces the config file search path.
func (a *App) WithConfigPaths(paths ...string) *App {
	a.configPaths = paths
	return a
}

// WithNotifier replaces the platform notification service.
func (a *App) WithNotifier(n wintoast.Notifier) *App {
	a.notifier = n
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// PrintError writes err to stderr.
func (a *App) PrintError(err error) {
	fmt.Fprintln(a.stderr, errorStyle.Render("Error:")+" "+err.Error())
}

func (a *App) setup(*cobra.Command, []string) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPaths != nil {
		cfg, err = config.LoadFrom(a.configPaths...)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return &opError{op: errmsg.OpConfigLoad, err: err}
	}
	a.cfg = cfg

	level := cfg.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// toastOptions returns the options shared by every toast the CLI creates.
func (a *App) toastOptions() []wintoast.Option {
	opts := []wintoast.Option{
		wintoast.WithLogger(a.logger),
		wintoast.WithDisplayWait(a.cfg.DisplayWait()),
	}
	if a.cfg.AppID != "" {
		opts = append(opts, wintoast.WithAppID(a.cfg.AppID))
	}
	if a.notifier != nil {
		opts = append(opts, wintoast.WithNotifier(a.notifier))
	}
	return opts
}

// applyDefaults applies the configured duration and sound to t. Values
// already set on the toast are kept.
func (a *App) applyDefaults(t *wintoast.Toast) error {
	if _, ok := t.Document().Root().Attribute("duration"); !ok && a.cfg.Duration != "" {
		d, err := wintoast.ParseDuration(a.cfg.Duration)
		if err != nil {
			return err
		}
		t.SetDuration(d)
	}

	if t.HasAudio() || (a.cfg.Sound == "" && !a.cfg.Silent) {
		return nil
	}
	sound := wintoast.SoundDefault
	if a.cfg.Sound != "" {
		var err error
		if sound, err = wintoast.ParseSound(a.cfg.Sound); err != nil {
			return err
		}
	}
	audio := wintoast.NewAudio(sound)
	if a.cfg.Silent {
		audio = audio.Silent()
	}
	return t.AddAudio(audio)
}

// show applies the configured defaults and submits t.
func (a *App) show(t *wintoast.Toast) error {
	if err := a.applyDefaults(t); err != nil {
		return &opError{op: errmsg.OpToastBuild, err: err}
	}
	if err := t.Show(); err != nil {
		return &opError{op: errmsg.OpToastShow, err: err}
	}
	a.logger.Info("toast shown", "app_id", t.AppID())
	return nil
}

// opError attaches the failed operation to an error for display.
type opError struct {
	op      errmsg.Op
	context string
	err     error
}

func (e *opError) Error() string {
	return errmsg.FormatWith(e.op, e.context, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}
