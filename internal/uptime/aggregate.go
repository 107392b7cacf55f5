package uptime

import "github.com/prabalesh/uptop/internal/models"

// Aggregate holds per-day totals oldest to newest. Summary is nil for a
// single-day window.
type Aggregate struct {
	Totals  []models.DailyTotal
	Summary *models.WindowSummary
}

func DailyTotal(l *Ledger, label string) int {
	total := 0
	for _, m := range l.Durations(label) {
		total += m
	}
	return total
}

func AggregateLedger(l *Ledger) Aggregate {
	labels := l.Labels()
	totals := make([]models.DailyTotal, 0, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		totals = append(totals, models.DailyTotal{
			Label:   labels[i],
			Minutes: DailyTotal(l, labels[i]),
		})
	}

	agg := Aggregate{Totals: totals}
	if len(totals) > 1 {
		summary := Summarize(totals)
		agg.Summary = &summary
	}
	return agg
}

// Summarize scans totals in order; the first day wins ties for max and min.
func Summarize(totals []models.DailyTotal) models.WindowSummary {
	if len(totals) == 0 {
		return models.WindowSummary{}
	}

	s := models.WindowSummary{Max: totals[0], Min: totals[0]}
	for _, t := range totals {
		s.Total += t.Minutes
		if t.Minutes > s.Max.Minutes {
			s.Max = t
		}
		if t.Minutes < s.Min.Minutes {
			s.Min = t
		}
	}
	s.Average = s.Total / len(totals)
	return s
}
