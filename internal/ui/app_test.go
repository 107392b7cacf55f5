package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabalesh/uptop/internal/models"
)

type fakeBuilder struct {
	days []int
	err  error
}

func (f *fakeBuilder) Build(_ context.Context, days int) (*models.Report, error) {
	f.days = append(f.days, days)
	if f.err != nil {
		return nil, f.err
	}
	if days == 1 {
		return &models.Report{
			WindowDays: 1,
			Totals:     []models.DailyTotal{{Label: "Oct 18", Minutes: 225}},
			Text:       "Total uptime in past 1 day (Oct 18): 3 hrs and 45 mins",
		}, nil
	}
	totals := []models.DailyTotal{
		{Label: "Oct 12", Minutes: 60}, {Label: "Oct 13", Minutes: 120},
		{Label: "Oct 14", Minutes: 180}, {Label: "Oct 15", Minutes: 0},
		{Label: "Oct 16", Minutes: 0}, {Label: "Oct 17", Minutes: 300},
		{Label: "Oct 18", Minutes: 60},
	}
	return &models.Report{
		WindowDays: 7,
		Totals:     totals,
		Summary: &models.WindowSummary{
			Total: 720, Average: 102,
			Max: totals[5], Min: totals[3],
		},
	}, nil
}

type fakeNetwork struct {
	err error
}

func (f *fakeNetwork) Interface(name string) (models.InterfaceCounters, error) {
	if f.err != nil {
		return models.InterfaceCounters{}, f.err
	}
	return models.InterfaceCounters{Name: name, RxBytes: 10 * 1024 * 1024, TxBytes: 1024 * 1024}, nil
}

func (f *fakeNetwork) Delta(string) (float64, float64, bool, error) {
	return 1.5, 0.25, true, nil
}

func (f *fakeNetwork) BootTime() time.Time {
	return time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local)
}

func newTestApp(t *testing.T, builder *fakeBuilder, network *fakeNetwork, days int) *App {
	t.Helper()
	app := NewApp(builder, network, "wlan0", days)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return app
}

// run executes cmd and feeds its message back into the app.
func run(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	app.Update(cmd())
}

func TestAppLoadingBeforeSize(t *testing.T) {
	app := NewApp(&fakeBuilder{}, &fakeNetwork{}, "wlan0", 1)
	assert.Equal(t, "Loading...", app.View())
}

func TestAppSingleDayReport(t *testing.T) {
	builder := &fakeBuilder{}
	app := newTestApp(t, builder, &fakeNetwork{}, 1)
	app.loading = true

	run(t, app, app.buildReport())

	view := app.View()
	assert.Contains(t, view, "Past 1 Day")
	assert.Contains(t, view, "Oct 18")
	assert.Contains(t, view, "3 hrs and 45 mins")
	assert.False(t, app.loading)
	assert.Equal(t, []int{1}, builder.days)
}

func TestAppSwitchToWeek(t *testing.T) {
	builder := &fakeBuilder{}
	app := newTestApp(t, builder, &fakeNetwork{}, 1)
	run(t, app, app.buildReport())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
	assert.True(t, app.loading)
	assert.Nil(t, app.report, "old window is dropped")
	run(t, app, cmd)

	view := app.View()
	assert.Equal(t, []int{1, 7}, builder.days)
	assert.Contains(t, view, "Past 7 Days")
	assert.Contains(t, view, "Summary")
	assert.Contains(t, view, "Average daily uptime:")
	assert.Contains(t, view, "1 hr and 42 mins")
	assert.Contains(t, view, "Oct 17 with 5 hrs")
	assert.Contains(t, view, "Oct 15 with 0 mins")
	assert.Contains(t, view, BandHigh.Legend())
}

func TestAppIgnoresStaleReport(t *testing.T) {
	builder := &fakeBuilder{}
	app := newTestApp(t, builder, &fakeNetwork{}, 1)
	stale := app.buildReport()

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
	app.Update(stale())

	assert.Nil(t, app.report)
	assert.True(t, app.loading)
}

func TestAppReportError(t *testing.T) {
	builder := &fakeBuilder{err: errors.New("history source last -x unavailable")}
	app := newTestApp(t, builder, &fakeNetwork{}, 7)

	run(t, app, app.buildReport())

	assert.Contains(t, app.View(), "Error: history source last -x unavailable")
}

func TestAppNetworkTab(t *testing.T) {
	app := newTestApp(t, &fakeBuilder{}, &fakeNetwork{}, 1)
	run(t, app, app.readNetwork())

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabNetwork, app.activeTab)

	view := app.View()
	assert.Contains(t, view, "Network Usage: wlan0")
	assert.Contains(t, view, "Downloaded (RX):")
	assert.Contains(t, view, "10.00 MB")
	assert.Contains(t, view, "RX: 1.50 MB, TX: 0.25 MB")
}

func TestAppNetworkError(t *testing.T) {
	app := newTestApp(t, &fakeBuilder{}, &fakeNetwork{err: errors.New("interface not found")}, 1)
	run(t, app, app.readNetwork())
	app.activeTab = tabNetwork

	assert.Contains(t, app.View(), "Error: interface not found")
}

func TestAppKeepsRecentSamples(t *testing.T) {
	app := newTestApp(t, &fakeBuilder{}, &fakeNetwork{}, 1)
	for i := 0; i < maxSamples+5; i++ {
		app.Update(netMsg{sample: models.NetSample{Elapsed: i}, hasDelta: true})
	}

	require.Len(t, app.samples, maxSamples)
	assert.Equal(t, 5, app.samples[0].Elapsed)
}

func TestAppTabBounds(t *testing.T) {
	app := newTestApp(t, &fakeBuilder{}, &fakeNetwork{}, 1)

	app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tabUptime, app.activeTab)

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabNetwork, app.activeTab)
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t, &fakeBuilder{}, &fakeNetwork{}, 1)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppVerticalScroll(t *testing.T) {
	app := newTestApp(t, &fakeBuilder{}, &fakeNetwork{}, 7)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 14})
	run(t, app, app.buildReport())

	app.View()
	require.Greater(t, app.getMaxScrollOffset(), 0)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.verticalScrollOffset)
	assert.Contains(t, app.View(), "More content above")

	app.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, app.getMaxScrollOffset(), app.verticalScrollOffset)

	app.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, app.verticalScrollOffset)
}
