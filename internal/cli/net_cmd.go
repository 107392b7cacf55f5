package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prabalesh/uptop/internal/collector"
	"github.com/prabalesh/uptop/internal/models"
)

func newNetCmd(app *App) *cobra.Command {
	var iface string
	var all bool

	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show bytes received and sent since boot",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := collector.NewStatsCollector(cmd.Context(), app.Config.Network.DevPath)

			if all {
				totals, err := stats.NetworkTotals()
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, renderTotals(totals))
				return nil
			}

			name, err := resolveInterface(app, iface)
			if err != nil {
				return err
			}
			counters, err := stats.Interface(name)
			if errors.Is(err, collector.ErrInterfaceNotFound) {
				return fmt.Errorf("interface '%s' not found", name)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Total network usage on interface '%s' since boot (%s):\n",
				name, stats.BootTime().Format("Jan _2 15:04"))
			fmt.Fprintf(app.Out, "Downloaded (RX): %.2f MB\n", collector.BytesToMB(counters.RxBytes))
			fmt.Fprintf(app.Out, "Uploaded   (TX): %.2f MB\n", collector.BytesToMB(counters.TxBytes))
			return nil
		},
	}

	addInterfaceFlag(cmd.Flags(), &iface)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every interface except loopback")

	cmd.AddCommand(newNetWatchCmd(app))
	return cmd
}

func newNetWatchCmd(app *App) *cobra.Command {
	var iface string
	var interval, duration time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sample per-interval network usage for a while",
		Example: `  uptop net watch -i eth0
  uptop net watch -i wlan0 --interval 2s --duration 30s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveInterface(app, iface)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = app.Config.Network.Interval
			}
			if !cmd.Flags().Changed("duration") {
				duration = app.Config.Network.Duration
			}

			devPath := app.Config.Network.DevPath
			sampler := collector.NewSampler(func(name string) (models.InterfaceCounters, error) {
				return collector.ReadInterfaceCounters(devPath, name)
			}, name, interval, duration)
			sampler.Logger = app.Logger

			fmt.Fprintf(app.Out, "Monitoring '%s' every %s for %s...\n", name, interval, duration)
			_, err = sampler.Run(cmd.Context(), func(s models.NetSample) {
				fmt.Fprintf(app.Out, "[%ds] RX: %.2f MB, TX: %.2f MB\n", s.Elapsed, s.RxMB, s.TxMB)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if errors.Is(err, collector.ErrInterfaceNotFound) {
				return fmt.Errorf("interface '%s' not found", name)
			}
			return err
		},
	}

	addInterfaceFlag(cmd.Flags(), &iface)
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between samples (default from config)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "total sampling time (default from config)")

	return cmd
}
