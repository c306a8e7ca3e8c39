package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const uiDivider = "──────────────────────────────────────────────────────"

// statusTTL is how long a toast stays on screen.
var statusTTL = 3 * time.Second

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: esci"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func padRight(v string, width int) string {
	v = fitText(v, width)
	if n := len([]rune(v)); n < width {
		return v + strings.Repeat(" ", width-n)
	}
	return v
}

// renderTable lays rows out in fixed-width columns separated by "│". The row
// at index selected is highlighted; pass -1 for none.
func renderTable(headers []string, rows [][]string, widths []int, selected int) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(joinCells(headers, widths))
	b.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		} else {
			b.WriteString("──")
		}
		b.WriteString(strings.Repeat("─", w))
	}

	for i, row := range rows {
		b.WriteString("\n")
		line := joinCells(row, widths)
		if i == selected {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line))
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
	}

	return b.String()
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padRight(cell, w)
	}
	return strings.Join(parts, " │ ")
}

// status is a transient message shown at the bottom of a page.
type status struct {
	text  string
	isErr bool
	id    uint64
}

func (s *status) set(gen uint64, text string, isErr bool) tea.Cmd {
	s.text = text
	s.isErr = isErr
	s.id++
	id := s.id
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen, toast: id}
	})
}

func (s *status) clear(msg clearStatusMsg, gen uint64) {
	if msg.gen == gen && msg.toast == s.id {
		s.text = ""
		s.isErr = false
	}
}

func (s status) view() string {
	switch {
	case s.text == "":
		return ""
	case s.isErr:
		return errorStyle.Render("Errore: " + s.text)
	default:
		return successStyle.Render(s.text)
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func moveCursor(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	idx += delta
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
