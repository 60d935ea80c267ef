package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/docpanels/internal/config"
	"github.com/Makepad-fr/docpanels/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{msg: err.Error()}
		}
		return nil
	}
}

// app carries the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	// root flags
	cfgPath string
	theme   string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	return run(&app{stdout: stdout, stderr: stderr}, args)
}

func run(a *app, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	ui.Fail(a.stderr, err.Error())
	var ue *usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(a.stderr, ui.Current().Muted.Render("Hint: run `docpanels help` to see subcommands"))
		return ExitUsage
	}
	return ExitError
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "docpanels",
		Short: "Documentation panels for the Procurement Tracker",
		Long: `docpanels renders the Procurement Tracker documentation panels
(overview, features, tech-stack, security) in the terminal, as markdown,
as HTML, or serves them over HTTP.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usagef("missing subcommand")
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ~/.config/docpanels/config.yaml)")
	pf.StringVar(&a.theme, "theme", "", "terminal theme: "+strings.Join(ui.Names(), ", "))
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.showCommand(),
		a.sectionsCommand(),
		a.browseCommand(),
		a.serveCommand(),
		a.exportCommand(),
		a.checkCommand(),
	)
	return root
}

// setup loads config, applies the theme and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.UI.Theme = a.theme
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	if !ui.SetTheme(cfg.UI.Theme) {
		return usagef("unknown theme %q (want one of %s)", cfg.UI.Theme, strings.Join(ui.Names(), ", "))
	}

	if a.logger == nil {
		logger, err := newLogger(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	zap.ReplaceGlobals(a.logger)
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("theme", cfg.UI.Theme),
		zap.String("format", cfg.UI.Format),
	)
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, usagef("invalid log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
