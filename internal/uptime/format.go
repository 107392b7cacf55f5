package uptime

import (
	"fmt"
	"strings"
)

// FormatDuration renders minutes as e.g. "1 hr and 5 mins".
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d hr%s", h, plural(h)))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", m, plural(m)))
	}
	if len(parts) == 0 {
		return "0 mins"
	}
	return strings.Join(parts, " and ")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// FormatReport renders the report text handed to exporters verbatim.
func FormatReport(days int, agg Aggregate) string {
	if agg.Summary == nil {
		day := ""
		total := 0
		if len(agg.Totals) > 0 {
			day = agg.Totals[len(agg.Totals)-1].Label
			total = agg.Totals[len(agg.Totals)-1].Minutes
		}
		return fmt.Sprintf("Total uptime in past %d day (%s): %s", days, day, FormatDuration(total))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Uptime per day for past %d days:\n", days)
	for _, t := range agg.Totals {
		fmt.Fprintf(&b, "%s: %s\n", t.Label, FormatDuration(t.Minutes))
	}

	s := agg.Summary
	fmt.Fprintf(&b, "Total uptime in past %d days: %s\n", days, FormatDuration(s.Total))
	fmt.Fprintf(&b, "Average daily uptime: %s\n", FormatDuration(s.Average))
	fmt.Fprintf(&b, "Max uptime: %s with %s\n", s.Max.Label, FormatDuration(s.Max.Minutes))
	fmt.Fprintf(&b, "Min uptime: %s with %s\n", s.Min.Label, FormatDuration(s.Min.Minutes))
	return b.String()
}
