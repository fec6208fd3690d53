package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/clcc/cablegnosis/internal/database/repository"
	"github.com/clcc/cablegnosis/internal/monitor"
	"github.com/clcc/cablegnosis/internal/nav"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	primary := renderBarItems(m.width, nav.PrimaryBar(m.reg, m.state))
	tools := renderBarItems(m.width, nav.ToolsBar(m.reg, m.state))
	status := RenderStatusBar(m)
	footer := RenderFooter(m)

	chrome := lipgloss.Height(header) + lipgloss.Height(primary) +
		lipgloss.Height(tools) + lipgloss.Height(status) + lipgloss.Height(footer)
	bodyHeight := m.height - chrome
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if m.modal != nil {
		body = Pane{
			Title:   m.modal.Title(),
			Content: m.modal.View(max(20, m.width-6), max(6, bodyHeight-2)),
			Focused: true,
		}.Render(max(1, m.width-2), bodyHeight)
	} else {
		body = m.renderContent(max(1, m.width-2), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, primary, tools, body, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("CableGnosis Console")
	right := headerModeStyle.Render("Orchestrator | " + string(m.state.Mode))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func renderBarItems(width int, items []nav.BarItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		label := shortLabel(it.Label)
		if it.Active {
			parts = append(parts, activeItemStyle.Render(label))
		} else {
			parts = append(parts, inactiveItemStyle.Render(label))
		}
	}
	line := strings.Join(parts, barSepStyle.Render("│"))
	if line == "" {
		line = inactiveItemStyle.Render("(nothing to show)")
	}
	return renderBar(headerBarStyle, max(1, width), line, colorMantle)
}

// shortLabel trims the long work-package titles down to their code part
// for the bar ("WP4 – Technologies…" -> "WP4").
func shortLabel(label string) string {
	if i := strings.Index(label, " – "); i > 0 && i <= 8 {
		return label[:i]
	}
	if len(label) > 40 {
		return label[:37] + "..."
	}
	return label
}

func (m Model) renderContent(width, height int) string {
	active := nav.ActiveTool(m.reg, m.state)
	if active == "" {
		return emptyStateStyle.Render("No tools available in this scope.\nSwitch work package or category, or open the orchestrator (o).")
	}
	d, ok := m.reg.ByID(active)
	if !ok {
		return ""
	}

	lines := []string{
		fmt.Sprintf("id: %s    version: %s    status: %s", d.ID, orDash(d.Version), orDash(d.Status)),
	}
	if len(d.WorkPackages) > 0 {
		lines = append(lines, "work packages: "+strings.Join(d.WorkPackages, ", "))
	}
	if len(d.Categories) > 0 {
		lines = append(lines, "categories: "+strings.Join(d.Categories, ", "))
	}
	if len(d.Tags) > 0 {
		lines = append(lines, "tags: "+strings.Join(d.Tags, ", "))
	}
	if hasTag(d.Tags, "monitoring") {
		lines = append(lines, "")
		lines = append(lines, m.renderMetricWindows(width-6)...)
	}

	return Pane{
		Title:    d.Label,
		Content:  strings.Join(lines, "\n"),
		Selected: true,
	}.Render(width, height)
}

func (m Model) renderMetricWindows(width int) []string {
	var lines []string
	if m.uptimeOK {
		lines = append(lines, fmt.Sprintf("platform uptime: %.2f %%", m.uptime))
	}
	for _, metric := range monitor.Metrics() {
		readings := m.windows[metric]
		if len(readings) == 0 {
			continue
		}
		min, max, sum := readings[0].Value, readings[0].Value, 0.0
		for _, r := range readings {
			if r.Value < min {
				min = r.Value
			}
			if r.Value > max {
				max = r.Value
			}
			sum += r.Value
		}
		avg := sum / float64(len(readings))
		lines = append(lines,
			fmt.Sprintf("%-5s min %7.2f  avg %7.2f  max %7.2f", metric, min, avg, max),
			sparkline(readings, min, max, width),
		)
	}
	if len(lines) == 0 {
		lines = append(lines, "waiting for metric data... (r to refresh)")
	}
	return lines
}

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

func sparkline(readings []repository.Reading, min, max float64, width int) string {
	if width < 1 {
		width = 1
	}
	n := len(readings)
	if n > width {
		readings = readings[n-width:]
	}
	span := max - min
	var b strings.Builder
	for _, r := range readings {
		idx := 0
		if span > 0 {
			idx = int((r.Value - min) / span * float64(len(sparkGlyphs)-1))
		}
		b.WriteRune(sparkGlyphs[idx])
	}
	return b.String()
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
