package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/uptop/internal/models"
	"github.com/prabalesh/uptop/internal/uptime"
)

const minutesPerDay = 24 * 60

// Band classifies a day's uptime for coloring.
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandHigh
)

// UptimeBand: under 3 hours is low, under 6 moderate, anything else high.
func UptimeBand(minutes int) Band {
	switch {
	case minutes < 3*60:
		return BandLow
	case minutes < 6*60:
		return BandModerate
	default:
		return BandHigh
	}
}

func (b Band) Style() lipgloss.Style {
	switch b {
	case BandLow:
		return LowStyle
	case BandModerate:
		return ModerateStyle
	default:
		return HighStyle
	}
}

func (b Band) Color() lipgloss.Color {
	switch b {
	case BandLow:
		return ColorLow
	case BandModerate:
		return ColorModerate
	default:
		return ColorHigh
	}
}

func (b Band) Legend() string {
	switch b {
	case BandLow:
		return "< 3 hours (Low uptime)"
	case BandModerate:
		return "3 - 6 hours (Moderate uptime)"
	default:
		return "> 6 hours (High uptime)"
	}
}

// BarFraction scales minutes against a full day.
func BarFraction(minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	if minutes >= minutesPerDay {
		return 1
	}
	return float64(minutes) / minutesPerDay
}

// Chart draws one colored bar per day.
type Chart struct {
	bars  map[Band]progress.Model
	width int
}

func NewChart(width int) *Chart {
	c := &Chart{bars: make(map[Band]progress.Model)}
	for _, b := range []Band{BandLow, BandModerate, BandHigh} {
		c.bars[b] = progress.New(
			progress.WithSolidFill(string(b.Color())),
			progress.WithoutPercentage(),
		)
	}
	c.SetWidth(width)
	return c
}

func (c *Chart) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	c.width = width
	for b, bar := range c.bars {
		bar.Width = width
		c.bars[b] = bar
	}
}

func (c *Chart) Row(t models.DailyTotal) string {
	band := UptimeBand(t.Minutes)
	bar := c.bars[band]
	return fmt.Sprintf("%s %s %s",
		LabelStyle.Render(fmt.Sprintf("%-6s", t.Label)),
		bar.ViewAs(BarFraction(t.Minutes)),
		band.Style().Render(uptime.FormatDuration(t.Minutes)),
	)
}

func (c *Chart) Render(totals []models.DailyTotal) string {
	rows := make([]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, c.Row(t))
	}
	return strings.Join(rows, "\n")
}

func Legend() string {
	parts := make([]string, 0, 3)
	for _, b := range []Band{BandLow, BandModerate, BandHigh} {
		parts = append(parts, b.Style().Render("■ "+b.Legend()))
	}
	return strings.Join(parts, "  ")
}
