package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a bordered content box with a title in the top border.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := colorBorder
	if p.Selected {
		border = colorAccent
	}
	if p.Focused {
		border = colorSuccess
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(colorText)

	innerWidth := width - 2
	titleText := " " + strings.TrimSpace(p.Title) + " "
	if ansi.StringWidth(titleText) > innerWidth-1 {
		titleText = " " + ansi.Truncate(strings.TrimSpace(p.Title), max(1, innerWidth-3), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(titleText) - 1
	if dashes < 0 {
		dashes = 0
	}
	top := borderStyle.Render("╭─") +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes)+"╮")
	bottom := borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯")

	v := borderStyle.Render("│")
	bodyLines := strings.Split(p.Content, "\n")
	innerHeight := height - 2
	if len(bodyLines) > innerHeight {
		bodyLines = bodyLines[:innerHeight]
	}
	for len(bodyLines) < innerHeight {
		bodyLines = append(bodyLines, "")
	}

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range bodyLines {
		line = ansi.Truncate(" "+line, innerWidth, "")
		pad := innerWidth - ansi.StringWidth(line)
		if pad < 0 {
			pad = 0
		}
		rows = append(rows, v+contentStyle.Render(line+strings.Repeat(" ", pad))+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}
