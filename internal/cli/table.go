package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/uptop/internal/collector"
	"github.com/prabalesh/uptop/internal/models"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableDimStyle    = lipgloss.NewStyle().Faint(true)
)

// renderTable lays out rows in left-aligned columns sized to the widest cell.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(line(headers)))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(line(row))
	}
	return b.String()
}

func renderTotals(totals models.NetworkTotals) string {
	rows := make([][]string, 0, len(totals.Interfaces))
	for _, c := range totals.Interfaces {
		rows = append(rows, []string{
			c.Name,
			fmt.Sprintf("%.2f MB", collector.BytesToMB(c.RxBytes)),
			fmt.Sprintf("%.2f MB", collector.BytesToMB(c.TxBytes)),
		})
	}
	rows = append(rows, []string{
		"total",
		fmt.Sprintf("%.2f MB", collector.BytesToMB(totals.TotalRx)),
		fmt.Sprintf("%.2f MB", collector.BytesToMB(totals.TotalTx)),
	})

	out := renderTable([]string{"INTERFACE", "RX", "TX"}, rows)
	if !totals.BootTime.IsZero() {
		out += "\n" + tableDimStyle.Render("since "+totals.BootTime.Format("Jan _2 15:04"))
	}
	return out
}
