package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prabalesh/uptop/internal/export"
	"github.com/prabalesh/uptop/internal/uptime"
)

func newReportCmd(app *App) *cobra.Command {
	var days int
	var output, format, historyFile string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the uptime report for the past day or week",
		Example: `  uptop report --days 7
  uptop report -d 7 --output week.txt
  uptop report -d 7 --format json --output week.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, err := export.NewExporter(format)
			if err != nil {
				return err
			}

			window, err := resolveWindow(app, days, cmd.Flags().Changed("days"))
			if err != nil {
				return err
			}

			engine := uptime.NewEngine(
				app.historySource(historyFile),
				uptime.WithLogger(app.Logger),
				uptime.WithClock(app.Now),
			)
			report, err := engine.Build(cmd.Context(), window)
			if err != nil {
				return err
			}

			text := report.Text
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			fmt.Fprint(app.Out, text)

			if output == "" {
				return nil
			}
			if err := export.WriteFile(output, exporter, report); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Report saved to %s\n", output)
			return nil
		},
	}

	addWindowFlag(cmd.Flags(), &days)
	addHistoryFileFlag(cmd.Flags(), &historyFile)
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the report to this file")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "export format: text, json, yaml")

	return cmd
}
