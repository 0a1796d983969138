// Package app wires configuration, logging, metrics, the render sink and
// the interactive session into the lagcalc program.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/agbru/lagcalc/internal/cli"
	"github.com/agbru/lagcalc/internal/config"
	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/lagrange"
	"github.com/agbru/lagcalc/internal/logging"
	"github.com/agbru/lagcalc/internal/metrics"
	"github.com/agbru/lagcalc/internal/overlay"
	"github.com/agbru/lagcalc/internal/plot"
	"github.com/agbru/lagcalc/internal/tui"
	"github.com/agbru/lagcalc/internal/ui"
)

// Application represents the lagcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// In is the interactive input. Commands come from it unless
	// Config.InputFile is set; the plot viewer always reads keys from it.
	In io.Reader

	root        *cobra.Command
	completion  string
	showVersion bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the interactive input, os.Stdin by default.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name. Requests for help yield pflag.ErrHelp after
// the usage has been written to errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin, Config: config.Default()}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	ran := false
	app.root = app.newRootCommand(&ran)
	app.root.SetArgs(cmdArgs)
	app.root.SetOut(errWriter)
	app.root.SetErr(errWriter)

	if err := app.root.Execute(); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return nil, err
	}
	if !ran {
		return nil, pflag.ErrHelp
	}
	return app, nil
}

func (a *Application) newRootCommand(ran *bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "lagcalc",
		Short: "Interactive Lagrange interpolation calculator",
		Long: `lagcalc reads points from the console, builds the Lagrange polynomial
through them, prints its formula and plots it next to an optional
reference curve.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			*ran = true
			return config.Finalize(&a.Config, cmd.Flags())
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	fs := root.Flags()
	config.RegisterFlags(fs, &a.Config)
	fs.BoolVarP(&a.showVersion, "version", "V", false, "Print version information and exit")
	registerFlagCompletions(root)

	root.AddCommand(&cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate a shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(_ *cobra.Command, args []string) error {
			*ran = true
			a.completion = args[0]
			return nil
		},
	})
	return root
}

// registerFlagCompletions suggests the accepted values of enumerated flags.
func registerFlagCompletions(root *cobra.Command) {
	fixed := func(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	overlays := []string{fmt.Sprintf("%d\tnone", overlay.None)}
	for _, o := range overlay.All() {
		overlays = append(overlays, fmt.Sprintf("%d\t%s (%s)", o.ID, o.Name, o.Label))
	}

	for flag, values := range map[string][]string{
		"plot":       config.PlotModes(),
		"theme":      config.Themes(),
		"log-level":  config.LogLevels(),
		"log-format": config.LogFormats(),
		"overlay":    overlays,
	} {
		_ = root.RegisterFlagCompletionFunc(flag, fixed(values))
	}
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.showVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor, a.Config.Theme)
	logger := logging.New(a.ErrWriter, a.Config.LogLevel, a.Config.LogFormat)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	commands := a.In
	if a.Config.InputFile != "" {
		f, err := os.Open(a.Config.InputFile)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: opening input: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer f.Close()
		commands = f
	}

	recorder := metrics.NewRecorder()
	renderer := a.newRenderer(commands, out)
	// The viewer reads keys from a.In; without an input file the session
	// reads commands from it too.
	_, viewer := renderer.(*tui.Viewer)
	shared := viewer && a.Config.InputFile == ""
	logger.Debug("session starting",
		logging.String("plot", a.Config.Plot),
		logging.Int("samples", a.Config.Samples),
		logging.Int("overlay", a.Config.Overlay),
	)

	session := cli.NewSession(
		cli.WithInput(commands),
		cli.WithOutput(out),
		cli.WithRenderer(renderer),
		cli.WithBuilder(lagrange.NewBuilder()),
		cli.WithLogger(logger),
		cli.WithMetrics(recorder),
		cli.WithVerbose(a.Config.Verbose),
		cli.WithSharedInput(shared),
		cli.WithOverlay(overlay.ID(a.Config.Overlay)),
	)
	session.Start(ctx)

	if a.Config.MetricsFile != "" {
		if err := recorder.WriteFile(a.Config.MetricsFile); err != nil {
			logger.Error("writing metrics", err, logging.String("path", a.Config.MetricsFile))
			return apperrors.ExitErrorGeneric
		}
	}
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// newRenderer selects the render sink for the configured plot mode. In
// auto mode the viewer is used only when both the command input and the
// output are terminals.
func (a *Application) newRenderer(commands io.Reader, out io.Writer) plot.Renderer {
	mode := a.Config.Plot
	if mode == config.PlotAuto {
		mode = config.PlotText
		if isTerminal(commands) && isTerminal(out) {
			mode = config.PlotTUI
		}
	}

	switch mode {
	case config.PlotNone:
		return plot.NullRenderer{}
	case config.PlotTUI:
		return tui.NewViewer(a.In, out, a.Config.Samples)
	default:
		return plot.NewTextRenderer(out,
			plot.WithSize(a.chartWidth(out), a.Config.Height),
			plot.WithSamples(a.Config.Samples),
		)
	}
}

// chartWidth resolves a zero width to the terminal width.
func (a *Application) chartWidth(out io.Writer) int {
	if a.Config.Width > 0 {
		return a.Config.Width
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w - 1
		}
	}
	return plot.DefaultWidth
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	var err error
	switch a.completion {
	case "bash":
		err = a.root.GenBashCompletionV2(out, true)
	case "zsh":
		err = a.root.GenZshCompletion(out)
	case "fish":
		err = a.root.GenFishCompletion(out, true)
	case "powershell":
		err = a.root.GenPowerShellCompletionWithDesc(out)
	default:
		err = apperrors.NewConfigError("unsupported shell %q", a.completion)
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

// ExitCode maps a construction error to the process exit code.
func ExitCode(err error) int {
	var (
		cfgErr apperrors.ConfigError
		valErr apperrors.ValidationError
	)
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
