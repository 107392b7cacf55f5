package uptime

import (
	"strings"
	"time"
)

// LabelLayout matches the day column of `last`: month abbreviation and a
// space-padded day of month. Labels carry no year.
const LabelLayout = "Jan _2"

// SupportedWindows lists the window sizes a report can cover.
var SupportedWindows = []int{1, 7}

// ValidateWindow returns a *ConfigurationError for unsupported window sizes.
func ValidateWindow(days int) error {
	for _, w := range SupportedWindows {
		if days == w {
			return nil
		}
	}
	reason := "window must be 1 or 7 days"
	if days <= 0 {
		reason = "window must be positive"
	}
	return &ConfigurationError{Field: "windowDays", Value: days, Reason: reason}
}

// DayLabels returns the labels of the trailing window, today first.
func DayLabels(days int, now time.Time) ([]string, error) {
	if err := ValidateWindow(days); err != nil {
		return nil, err
	}

	labels := make([]string, 0, days)
	for i := 0; i < days; i++ {
		labels = append(labels, Label(now.AddDate(0, 0, -i)))
	}
	return labels, nil
}

// Label formats a single day.
func Label(t time.Time) string {
	return strings.TrimSpace(t.Format(LabelLayout))
}
