package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/prabalesh/uptop/internal/collector"
	"github.com/prabalesh/uptop/internal/ui"
	"github.com/prabalesh/uptop/internal/uptime"
)

func newTUICmd(app *App) *cobra.Command {
	var days int
	var iface, historyFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("days") {
				days = app.Config.Report.WindowDays
			}
			if iface == "" {
				iface = app.Config.Network.Interface
			}
			return runTUI(cmd, app, days, iface, historyFile)
		},
	}

	addWindowFlag(cmd.Flags(), &days)
	addInterfaceFlag(cmd.Flags(), &iface)
	addHistoryFileFlag(cmd.Flags(), &historyFile)
	return cmd
}

func runTUI(cmd *cobra.Command, app *App, days int, iface, historyFile string) error {
	if err := uptime.ValidateWindow(days); err != nil {
		return err
	}

	// Logs would draw over the alt screen, so the engine stays quiet here.
	engine := uptime.NewEngine(app.historySource(historyFile), uptime.WithClock(app.Now))
	stats := collector.NewStatsCollector(cmd.Context(), app.Config.Network.DevPath)

	p := tea.NewProgram(
		ui.NewApp(engine, stats, iface, days),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	_, err := p.Run()
	return err
}
