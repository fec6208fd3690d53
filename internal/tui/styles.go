package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerModeStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Background(colorMantle)

	activeItemStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveItemStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)
	barSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 2)

	panelDisabledStyle   = lipgloss.NewStyle().Foreground(colorBorder)
	panelSuggestionStyle = lipgloss.NewStyle().Foreground(colorText)
	panelHintStyle       = lipgloss.NewStyle().Foreground(colorMuted)
)
