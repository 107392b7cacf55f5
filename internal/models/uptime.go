package models

import "time"

// DailyTotal is the summed uptime of one day in the report window.
type DailyTotal struct {
	Label   string `json:"label" yaml:"label"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// WindowSummary is only produced for windows longer than one day.
type WindowSummary struct {
	Total   int        `json:"total_minutes" yaml:"total_minutes"`
	Average int        `json:"average_minutes" yaml:"average_minutes"`
	Max     DailyTotal `json:"max" yaml:"max"`
	Min     DailyTotal `json:"min" yaml:"min"`
}

type Report struct {
	ID          string         `json:"id" yaml:"id"`
	WindowDays  int            `json:"window_days" yaml:"window_days"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Labels      []string       `json:"labels" yaml:"labels"`
	Totals      []DailyTotal   `json:"totals" yaml:"totals"`
	Summary     *WindowSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Text        string         `json:"text" yaml:"text"`
}
