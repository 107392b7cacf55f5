package cli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/prabalesh/uptop/internal/collector"
	"github.com/prabalesh/uptop/internal/config"
	"github.com/prabalesh/uptop/internal/logging"
	"github.com/prabalesh/uptop/internal/uptime"
)

// App holds what every command needs once flags and config are resolved.
type App struct {
	Config config.Config
	Logger *log.Logger

	Out io.Writer
	Err io.Writer

	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
	Now           func() time.Time

	configPath string
	verbose    bool
}

func NewApp(in *os.File, out, errOut io.Writer) *App {
	return &App{
		Config: config.Default(),
		Logger: logging.Discard(),
		Out:    out,
		Err:    errOut,
		IsInteractive: func() bool {
			return isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())
		},
		Now: time.Now,
	}
}

// NewRootCmd creates the top-level "uptop" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "uptop",
		Short: "Daily and weekly machine uptime from the login history",
		Long: `uptop rebuilds how long this machine was up each day from the
reboot records of 'last -x' and reports daily and weekly totals.

Running uptop without a subcommand opens the terminal dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app, app.Config.Report.WindowDays, app.Config.Network.Interface, "")
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/uptop/config.yaml)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newReportCmd(app),
		newNetCmd(app),
		newTUICmd(app),
	)

	return root
}

func (a *App) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.Config = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(a.Err, level)
	if err != nil {
		return err
	}
	a.Logger = logger
	return nil
}

// historySource prefers a saved dump when one is given.
func (a *App) historySource(historyFile string) uptime.HistorySource {
	if historyFile != "" {
		return &collector.FileSource{Path: historyFile}
	}
	return collector.NewCommandSource(a.Config.Report.HistoryCommand, a.Config.Report.HistoryTimeout)
}
