package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/clcc/cablegnosis/internal/nav"
	"github.com/clcc/cablegnosis/internal/search"
)

// orchestratorScreen is the modal panel: an assistive tool search above
// the always-visible mode list. A fresh screen is built on every open,
// so the query always starts empty.
type orchestratorScreen struct {
	index *search.Index
	limit int

	query       string
	suggestions []search.Result
	nearest     string
	cursor      int
	modes       []nav.ModeOption
}

func newOrchestratorScreen(index *search.Index, limit int) *orchestratorScreen {
	s := &orchestratorScreen{
		index: index,
		limit: limit,
		modes: nav.ModeOptions(),
	}
	s.refresh()
	return s
}

func (s *orchestratorScreen) Title() string { return "Orchestrator" }
func (s *orchestratorScreen) Scope() string { return "screen:orchestrator" }

func (s *orchestratorScreen) rows() int { return len(s.suggestions) + len(s.modes) }

func (s *orchestratorScreen) refresh() {
	s.suggestions = s.index.Search(s.query, s.limit)
	s.nearest = ""
	if len(s.suggestions) == 0 && strings.TrimSpace(s.query) != "" {
		if hit, ok := s.index.Nearest(s.query); ok {
			s.nearest = hit.Label
		}
	}
	if s.cursor >= s.rows() {
		s.cursor = s.rows() - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *orchestratorScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch key := keyMsg.String(); key {
	case "esc":
		return s, nil, true
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false
	case "down":
		if s.cursor < s.rows()-1 {
			s.cursor++
		}
		return s, nil, false
	case "backspace":
		if s.query != "" {
			s.query = s.query[:len(s.query)-1]
			s.refresh()
		}
		return s, nil, false
	case "enter":
		return s.selectRow()
	case "space":
		s.query += " "
		s.refresh()
		return s, nil, false
	default:
		if isTypable(key) {
			s.query += key
			s.refresh()
		}
		return s, nil, false
	}
}

func (s *orchestratorScreen) selectRow() (Screen, tea.Cmd, bool) {
	if s.cursor < len(s.suggestions) {
		ref := s.suggestions[s.cursor].ToolID
		return s, func() tea.Msg { return NavigateMsg{Ref: ref} }, true
	}
	opt := s.modes[s.cursor-len(s.suggestions)]
	if !opt.Enabled {
		// Disabled modes are listed but never selectable.
		return s, StatusCmd(opt.Label + " is not available"), false
	}
	mode := opt.Mode
	return s, func() tea.Msg { return ModeSelectedMsg{Mode: mode} }, true
}

func (s *orchestratorScreen) View(width, height int) string {
	q := s.query
	if q == "" {
		q = "(type to search tools)"
	}
	lines := []string{"Search: " + q, ""}

	if len(s.suggestions) == 0 {
		if s.nearest != "" {
			lines = append(lines, panelHintStyle.Render("  no matches - did you mean "+s.nearest+"?"))
		} else if strings.TrimSpace(s.query) != "" {
			lines = append(lines, panelHintStyle.Render("  no matches"))
		}
	}
	for i, r := range s.suggestions {
		prefix := "  "
		if i == s.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+panelSuggestionStyle.Render(r.Label))
	}

	lines = append(lines, "", "Modes:")
	for i, opt := range s.modes {
		prefix := "  "
		if len(s.suggestions)+i == s.cursor {
			prefix = "> "
		}
		label := opt.Label
		if !opt.Enabled {
			label = panelDisabledStyle.Render(label + " (disabled)")
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", panelHintStyle.Render("Enter selects. Esc closes."))

	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], max(20, width), "")
	}
	return clipHeight(strings.Join(lines, "\n"), max(6, height))
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func isTypable(key string) bool {
	r := []rune(key)
	if len(r) != 1 {
		return false
	}
	return unicode.IsLetter(r[0]) || unicode.IsDigit(r[0]) || unicode.IsPunct(r[0])
}
