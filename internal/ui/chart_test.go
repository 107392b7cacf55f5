package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prabalesh/uptop/internal/models"
)

func TestUptimeBand(t *testing.T) {
	tests := []struct {
		minutes int
		want    Band
	}{
		{0, BandLow},
		{179, BandLow},
		{180, BandModerate},
		{359, BandModerate},
		{360, BandHigh},
		{1440, BandHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UptimeBand(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestBarFraction(t *testing.T) {
	assert.Equal(t, 0.0, BarFraction(0))
	assert.Equal(t, 0.0, BarFraction(-5))
	assert.Equal(t, 0.5, BarFraction(720))
	assert.Equal(t, 1.0, BarFraction(1440))
	assert.Equal(t, 1.0, BarFraction(3000))
}

func TestChartRender(t *testing.T) {
	c := NewChart(20)

	out := c.Render([]models.DailyTotal{
		{Label: "Oct 17", Minutes: 720},
		{Label: "Oct 18", Minutes: 0},
	})

	assert.Contains(t, out, "Oct 17")
	assert.Contains(t, out, "12 hrs")
	assert.Contains(t, out, "Oct 18")
	assert.Contains(t, out, "0 mins")
}

func TestChartSetWidthClamps(t *testing.T) {
	c := NewChart(2)
	assert.Equal(t, 10, c.width)
	for _, bar := range c.bars {
		assert.Equal(t, 10, bar.Width)
	}
}

func TestLegend(t *testing.T) {
	legend := Legend()
	assert.Contains(t, legend, "< 3 hours (Low uptime)")
	assert.Contains(t, legend, "3 - 6 hours (Moderate uptime)")
	assert.Contains(t, legend, "> 6 hours (High uptime)")
}
