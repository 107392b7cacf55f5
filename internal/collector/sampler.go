package collector

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/prabalesh/uptop/internal/logging"
	"github.com/prabalesh/uptop/internal/models"
)

// CounterReader returns the current counters of one interface.
type CounterReader func(name string) (models.InterfaceCounters, error)

// Sampler polls one interface every Interval until Duration has elapsed and
// reports the traffic of each interval.
type Sampler struct {
	Read      CounterReader
	Interface string
	Interval  time.Duration
	Duration  time.Duration
	Logger    *log.Logger

	cache *CounterCache
}

func NewSampler(read CounterReader, iface string, interval, duration time.Duration) *Sampler {
	return &Sampler{
		Read:      read,
		Interface: iface,
		Interval:  interval,
		Duration:  duration,
		Logger:    logging.Discard(),
		cache:     NewCounterCache(),
	}
}

// Run blocks until the sampling window is over or ctx is done. onSample, if
// set, is called for every sample as it is taken. Samples collected before
// a read failure are returned along with the error.
func (s *Sampler) Run(ctx context.Context, onSample func(models.NetSample)) ([]models.NetSample, error) {
	if s.Interval <= 0 || s.Duration <= 0 {
		return nil, errors.New("sampler interval and duration must be positive")
	}
	if s.cache == nil {
		s.cache = NewCounterCache()
	}
	if s.Logger == nil {
		s.Logger = logging.Discard()
	}

	baseline, err := s.Read(s.Interface)
	if err != nil {
		return nil, fmt.Errorf("reading baseline for %s: %w", s.Interface, err)
	}
	s.cache.Swap(baseline)
	s.Logger.Debug("sampling started", "interface", s.Interface, "interval", s.Interval, "duration", s.Duration)

	start := time.Now()
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var samples []models.NetSample
	for {
		select {
		case <-ctx.Done():
			return samples, ctx.Err()
		case <-ticker.C:
		}

		elapsed := time.Since(start)
		current, err := s.Read(s.Interface)
		if err != nil {
			return samples, fmt.Errorf("reading %s: %w", s.Interface, err)
		}

		prev, _ := s.cache.Swap(current)
		rx, tx := counterDelta(prev, current)
		sample := models.NetSample{
			Elapsed: int(math.Round(elapsed.Seconds())),
			RxMB:    BytesToMB(rx),
			TxMB:    BytesToMB(tx),
		}
		samples = append(samples, sample)
		if onSample != nil {
			onSample(sample)
		}

		if elapsed >= s.Duration {
			s.Logger.Debug("sampling finished", "interface", s.Interface, "samples", len(samples))
			return samples, nil
		}
	}
}
