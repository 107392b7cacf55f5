package uptime

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/prabalesh/uptop/internal/logging"
	"github.com/prabalesh/uptop/internal/models"
)

// HistorySource supplies raw login/reboot history text.
type HistorySource interface {
	Name() string
	History(ctx context.Context) (string, error)
}

type Engine struct {
	source HistorySource
	now    func() time.Time
	logger *log.Logger
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(source HistorySource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		now:    time.Now,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build runs one report request end to end. Every call gets its own ledger.
func (e *Engine) Build(ctx context.Context, days int) (*models.Report, error) {
	if err := ValidateWindow(days); err != nil {
		return nil, err
	}

	now := e.now()
	id := uuid.New().String()
	logger := e.logger.With("report", id, "days", days)

	labels, err := DayLabels(days, now)
	if err != nil {
		return nil, err
	}

	text, err := e.source.History(ctx)
	if err != nil {
		logger.Error("history source failed", "source", e.source.Name(), "err", err)
		return nil, &SourceUnavailableError{Source: e.source.Name(), Err: err}
	}

	entries := ParseHistory(text, labels)
	logger.Debug("parsed history", "bytes", len(text), "matched", len(entries))

	ledger := NewLedger(labels)
	ledger.Fill(entries)

	agg := AggregateLedger(ledger)
	report := &models.Report{
		ID:          id,
		WindowDays:  days,
		GeneratedAt: now,
		Labels:      labels,
		Totals:      agg.Totals,
		Summary:     agg.Summary,
		Text:        FormatReport(days, agg),
	}
	logger.Info("report built", "sessions", len(entries))
	return report, nil
}
