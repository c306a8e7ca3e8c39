package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type summaryLoadedMsg struct {
	gen     uint64
	summary models.ProcessSummary
	err     error
}

// SummaryModel shows the process summary: totals and the per-category
// breakdown.
type SummaryModel struct {
	ctx context.Context
	svc service.SummaryService

	gen     uint64
	loading bool
	summary *models.ProcessSummary
	err     error
	spinner spinner.Model
}

func NewSummaryModel(ctx context.Context, svc service.SummaryService) *SummaryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &SummaryModel{ctx: ctx, svc: svc, spinner: s}
}

func (m *SummaryModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	m.summary = nil
	m.err = nil
	return m.load()
}

func (m *SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.apply(msg.summary, msg.err)
		return m, nil

	case summaryRefreshedMsg:
		if !m.loading {
			m.apply(msg.summary, msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageHome, nil)
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.load()
		}
	}
	return m, nil
}

func (m *SummaryModel) View() string {
	var b strings.Builder

	switch {
	case m.summary == nil && m.err == nil:
		b.WriteString(m.spinner.View())
		b.WriteString(" Caricamento...")
	case m.err != nil:
		b.WriteString(errorStyle.Render(userMessage(m.err, app.MsgLoadError)))
	default:
		s := m.summary
		b.WriteString("Riepilogo Generale\n")
		b.WriteString(fmt.Sprintf("  Totale Elementi Nuovi:      %d\n", s.TotalNewElements))
		b.WriteString(fmt.Sprintf("  Totale Elementi Modificati: %d\n\n", s.TotalModifiedElements))

		if !m.svc.HasElementsToConfirm(s) {
			b.WriteString("Nessuna modifica da confermare\n")
			break
		}

		b.WriteString("Dettaglio per Categoria\n")
		rows := make([][]string, 0, len(models.Categories))
		for _, c := range s.ByCategory() {
			rows = append(rows, []string{c.Category.Label(), fmt.Sprint(c.New), fmt.Sprint(c.Modified), fmt.Sprint(c.Total())})
		}
		b.WriteString(renderTable([]string{"Categoria", "Nuovi", "Modificati", "Totale"}, rows, []int{14, 8, 10, 8}, -1))
	}

	if m.loading && (m.summary != nil || m.err != nil) {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Aggiornamento...")
	}

	return renderPage("RIEPILOGO", strings.TrimRight(b.String(), "\n"), "r: aggiorna │ esc: indietro")
}

func (m *SummaryModel) apply(summary models.ProcessSummary, err error) {
	m.loading = false
	if err != nil {
		m.summary = nil
		m.err = err
		return
	}
	m.summary = &summary
	m.err = nil
}

func (m *SummaryModel) load() tea.Cmd {
	m.loading = true
	ctx, svc, gen := m.ctx, m.svc, m.gen
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		summary, err := svc.GetProcessSummary(ctx)
		return summaryLoadedMsg{gen: gen, summary: summary, err: err}
	})
}
