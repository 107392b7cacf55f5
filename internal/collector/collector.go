package collector

import (
	"context"
	"time"

	"github.com/prabalesh/uptop/internal/models"
)

// StatsCollector reads network counters for the TUI and the net command.
// It remembers the previous reading per interface so callers can ask for
// per-interval deltas.
type StatsCollector struct {
	devPath  string
	counters *CounterCache
	bootTime time.Time
}

func NewStatsCollector(ctx context.Context, devPath string) *StatsCollector {
	return &StatsCollector{
		devPath:  devPath,
		counters: NewCounterCache(),
		bootTime: BootTime(ctx),
	}
}

func (s *StatsCollector) BootTime() time.Time {
	return s.bootTime
}

// NetworkTotals returns the counters of every non-loopback interface since boot.
func (s *StatsCollector) NetworkTotals() (models.NetworkTotals, error) {
	ifaces, err := ReadAllCounters(s.devPath)
	if err != nil {
		return models.NetworkTotals{}, err
	}

	totals := models.NetworkTotals{Interfaces: ifaces, BootTime: s.bootTime}
	for _, iface := range ifaces {
		totals.TotalRx += iface.RxBytes
		totals.TotalTx += iface.TxBytes
	}
	return totals, nil
}

func (s *StatsCollector) Interface(name string) (models.InterfaceCounters, error) {
	return ReadInterfaceCounters(s.devPath, name)
}

// Delta returns the traffic on name since the previous call. The first call
// only records a baseline and reports ok=false.
func (s *StatsCollector) Delta(name string) (rxMB, txMB float64, ok bool, err error) {
	current, err := s.Interface(name)
	if err != nil {
		return 0, 0, false, err
	}

	prev, seen := s.counters.Swap(current)
	if !seen {
		return 0, 0, false, nil
	}
	rx, tx := counterDelta(prev, current)
	return BytesToMB(rx), BytesToMB(tx), true, nil
}

func (s *StatsCollector) ResetDeltas() {
	s.counters.Clear()
}
