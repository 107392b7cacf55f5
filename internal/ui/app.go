package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/uptop/internal/collector"
	"github.com/prabalesh/uptop/internal/models"
	"github.com/prabalesh/uptop/internal/uptime"
)

const (
	tabUptime = iota
	tabNetwork
)

const maxSamples = 10

// ReportBuilder produces an uptime report for a window of days.
type ReportBuilder interface {
	Build(ctx context.Context, days int) (*models.Report, error)
}

// NetworkSource is the part of the stats collector the network tab reads.
type NetworkSource interface {
	Interface(name string) (models.InterfaceCounters, error)
	Delta(name string) (rxMB, txMB float64, ok bool, err error)
	BootTime() time.Time
}

type tickMsg time.Time

type reportMsg struct {
	days   int
	report *models.Report
	err    error
}

type netMsg struct {
	counters models.InterfaceCounters
	sample   models.NetSample
	hasDelta bool
	err      error
}

type App struct {
	builder   ReportBuilder
	network   NetworkSource
	iface     string
	days      int
	interval  time.Duration
	startedAt time.Time

	report    *models.Report
	reportErr error
	loading   bool

	counters models.InterfaceCounters
	samples  []models.NetSample
	netErr   error

	activeTab int
	tabs      []string
	width     int
	height    int
	// Vertical scrolling state
	verticalScrollOffset int
	contentHeight        int

	spinner spinner.Model
	chart   *Chart
}

func NewApp(builder ReportBuilder, network NetworkSource, iface string, days int) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		builder:   builder,
		network:   network,
		iface:     iface,
		days:      days,
		interval:  time.Second,
		startedAt: time.Now(),
		tabs:      []string{"Uptime", "Network"},
		spinner:   sp,
		chart:     NewChart(40),
	}
}

func (a *App) Init() tea.Cmd {
	a.loading = true
	return tea.Batch(
		a.buildReport(),
		a.readNetwork(),
		a.spinner.Tick,
		a.tick(),
	)
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) buildReport() tea.Cmd {
	days := a.days
	return func() tea.Msg {
		report, err := a.builder.Build(context.Background(), days)
		return reportMsg{days: days, report: report, err: err}
	}
}

func (a *App) readNetwork() tea.Cmd {
	elapsed := int(time.Since(a.startedAt).Round(time.Second).Seconds())
	return func() tea.Msg {
		counters, err := a.network.Interface(a.iface)
		if err != nil {
			return netMsg{err: err}
		}
		rx, tx, ok, err := a.network.Delta(a.iface)
		if err != nil {
			return netMsg{err: err}
		}
		return netMsg{
			counters: counters,
			sample:   models.NetSample{Elapsed: elapsed, RxMB: rx, TxMB: tx},
			hasDelta: ok,
		}
	}
}

// Get the height available for content (excluding sticky header elements)
func (a *App) getContentAreaHeight() int {
	// title, tabs, help and their margins
	reservedHeight := 8
	return max(1, a.height-reservedHeight)
}

func (a *App) getMaxScrollOffset() int {
	availableHeight := a.getContentAreaHeight()
	if a.contentHeight <= availableHeight {
		return 0
	}
	return a.contentHeight - availableHeight
}

func (a *App) clampVerticalScroll() {
	maxOffset := a.getMaxScrollOffset()
	a.verticalScrollOffset = max(0, min(a.verticalScrollOffset, maxOffset))
}

// Apply vertical scrolling to content by truncating lines
func (a *App) applyVerticalScroll(content string) string {
	lines := strings.Split(content, "\n")
	a.contentHeight = len(lines)

	a.clampVerticalScroll()

	availableHeight := a.getContentAreaHeight()
	if len(lines) <= availableHeight {
		return content
	}

	startLine := a.verticalScrollOffset
	endLine := min(startLine+availableHeight, len(lines))
	result := strings.Join(lines[startLine:endLine], "\n")

	if a.verticalScrollOffset > 0 {
		result = ScrollIndicatorStyle.Render("▲ More content above") + "\n" + result
	}
	if a.verticalScrollOffset < a.getMaxScrollOffset() {
		result = result + "\n" + ScrollIndicatorStyle.Render("▼ More content below")
	}
	return result
}

func (a *App) setDays(days int) tea.Cmd {
	if a.loading && a.days == days {
		return nil
	}
	if a.days != days {
		a.report = nil
		a.reportErr = nil
	}
	a.days = days
	a.loading = true
	a.verticalScrollOffset = 0
	return a.buildReport()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chart.SetWidth(min(50, a.width-40))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "left", "h":
			if a.activeTab > 0 {
				a.activeTab--
				a.verticalScrollOffset = 0
			}
		case "right", "l", "tab":
			if a.activeTab < len(a.tabs)-1 {
				a.activeTab++
				a.verticalScrollOffset = 0
			}
		case "1":
			return a, a.setDays(1)
		case "7":
			return a, a.setDays(7)
		case "r":
			a.loading = true
			return a, a.buildReport()
		case "up", "k":
			if a.verticalScrollOffset > 0 {
				a.verticalScrollOffset--
			}
		case "down", "j":
			a.verticalScrollOffset++
			a.clampVerticalScroll()
		case "pgup", "ctrl+u":
			scrollAmount := max(1, a.getContentAreaHeight()/2)
			a.verticalScrollOffset = max(0, a.verticalScrollOffset-scrollAmount)
		case "pgdown", "ctrl+d":
			scrollAmount := max(1, a.getContentAreaHeight()/2)
			a.verticalScrollOffset += scrollAmount
			a.clampVerticalScroll()
		case "home":
			a.verticalScrollOffset = 0
		case "end":
			a.verticalScrollOffset = a.getMaxScrollOffset()
		}

	case tickMsg:
		return a, tea.Batch(a.readNetwork(), a.tick())

	case reportMsg:
		// A reply for a window the user already switched away from is stale.
		if msg.days != a.days {
			return a, nil
		}
		a.loading = false
		a.report = msg.report
		a.reportErr = msg.err

	case netMsg:
		a.netErr = msg.err
		if msg.err != nil {
			return a, nil
		}
		a.counters = msg.counters
		if msg.hasDelta {
			a.samples = append(a.samples, msg.sample)
			if len(a.samples) > maxSamples {
				a.samples = a.samples[len(a.samples)-maxSamples:]
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	title := TitleStyle.Width(a.width).Render("UpTop")
	tabs := a.renderTabs()

	var content string
	switch a.activeTab {
	case tabUptime:
		content = a.renderUptime()
	case tabNetwork:
		content = a.renderNetwork()
	}

	scrollableContent := a.applyVerticalScroll(content)

	help := DimStyle.Render("←/→ h/l: tabs • 1/7: window • r: refresh • ↑/↓ k/j: scroll • PgUp/PgDn: page scroll • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		tabs,
		"",
		scrollableContent,
		"",
		help,
	)
}

func (a *App) renderTabs() string {
	var tabElements []string
	for i, tab := range a.tabs {
		if i == a.activeTab {
			tabElements = append(tabElements, ActiveTabStyle.Render(tab))
		} else {
			tabElements = append(tabElements, InactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, tabElements...)
}

func (a *App) renderUptime() string {
	header := HeaderStyle.Render(fmt.Sprintf("System Uptime per Day (Past %d %s)", a.days, dayWord(a.days)))
	content := []string{header, ""}

	switch {
	case a.loading && a.report == nil:
		content = append(content, a.spinner.View()+" Reading login history...")
	case a.reportErr != nil:
		content = append(content, ErrorStyle.Render("Error: "+a.reportErr.Error()))
	case a.report != nil:
		content = append(content, a.chart.Render(a.report.Totals), "")
		if a.report.Summary == nil {
			content = append(content, ValueStyle.Render(a.report.Text))
		} else {
			content = append(content, a.renderSummary(a.report.Summary)...)
		}
		content = append(content, "", Legend())
		if a.loading {
			content = append(content, "", a.spinner.View()+" Refreshing...")
		}
	}

	return BaseStyle.Width(max(20, a.width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, content...),
	)
}

func (a *App) renderSummary(s *models.WindowSummary) []string {
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", LabelStyle.Render(label), ValueStyle.Render(value))
	}
	return []string{
		HeaderStyle.Render("Summary"),
		row(fmt.Sprintf("Total uptime in past %d days:", a.days), uptime.FormatDuration(s.Total)),
		row("Average daily uptime:", uptime.FormatDuration(s.Average)),
		row("Max uptime:", fmt.Sprintf("%s with %s", s.Max.Label, uptime.FormatDuration(s.Max.Minutes))),
		row("Min uptime:", fmt.Sprintf("%s with %s", s.Min.Label, uptime.FormatDuration(s.Min.Minutes))),
	}
}

func (a *App) renderNetwork() string {
	content := []string{
		HeaderStyle.Render("Network Usage: " + a.iface),
		"",
	}

	if a.netErr != nil {
		content = append(content, ErrorStyle.Render("Error: "+a.netErr.Error()))
		return BaseStyle.Width(max(20, a.width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
	}

	if boot := a.network.BootTime(); !boot.IsZero() {
		content = append(content, fmt.Sprintf("%s %s", LabelStyle.Render("Up since:"), ValueStyle.Render(boot.Format("Jan _2 15:04"))))
	}
	content = append(content,
		fmt.Sprintf("%s %.2f MB", LabelStyle.Render("Downloaded (RX):"), collector.BytesToMB(a.counters.RxBytes)),
		fmt.Sprintf("%s %.2f MB", LabelStyle.Render("Uploaded   (TX):"), collector.BytesToMB(a.counters.TxBytes)),
		"",
		HeaderStyle.Render("Recent intervals"),
	)

	if len(a.samples) == 0 {
		content = append(content, DimStyle.Render("waiting for the next reading..."))
	}
	for _, s := range a.samples {
		content = append(content, fmt.Sprintf("[%ds] RX: %.2f MB, TX: %.2f MB", s.Elapsed, s.RxMB, s.TxMB))
	}

	return BaseStyle.Width(max(20, a.width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, content...),
	)
}

func dayWord(days int) string {
	if days == 1 {
		return "Day"
	}
	return "Days"
}
