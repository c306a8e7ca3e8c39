package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const emptyValue = "vuoto"

type differenceLoadedMsg struct {
	gen  uint64
	view models.DifferenceView
}

type copiedMsg struct {
	gen uint64
	err error
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// DifferenceModel compares a pending record with its confirmed counterpart.
// The field differences and the counterpart label load independently; a
// failure of one never hides the other.
type DifferenceModel struct {
	ctx context.Context
	svc service.DifferenceService

	gen     uint64
	record  models.PendingRecord
	back    string
	loading bool
	view    models.DifferenceView
	idx     int
	status  status
	spinner spinner.Model
}

func NewDifferenceModel(ctx context.Context, svc service.DifferenceService) *DifferenceModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DifferenceModel{ctx: ctx, svc: svc, spinner: s, back: pageHome}
}

// Init is only reached without a record to show.
func (m *DifferenceModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	m.loading = false
	return nil
}

func (m *DifferenceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openDifferenceMsg:
		m.gen = nextGeneration()
		m.record = msg.record
		m.back = msg.back
		m.view = models.DifferenceView{}
		m.idx = 0
		m.status = status{}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.load())

	case differenceLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.view = msg.view
		return m, nil

	case copiedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			return m, m.status.set(m.gen, msg.err.Error(), true)
		}
		return m, m.status.set(m.gen, "Copiato negli appunti", false)

	case clearStatusMsg:
		m.status.clear(msg, m.gen)
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
			return m, navigate(m.back, nil)
		case key.Matches(msg, keys.up):
			m.idx = moveCursor(m.idx, -1, len(m.view.Differences))
		case key.Matches(msg, keys.down):
			m.idx = moveCursor(m.idx, 1, len(m.view.Differences))
		case key.Matches(msg, keys.copy):
			return m, m.copySelected()
		}
	}
	return m, nil
}

func (m *DifferenceModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Caricamento...")
		return renderPage(m.title(), b.String(), "esc: indietro")
	}

	b.WriteString("Cliente: ")
	if m.view.CounterpartErr != nil || m.view.CounterpartLabel == "" {
		b.WriteString(disabledStyle.Render(app.MsgCounterpartUnavailable))
	} else {
		b.WriteString(m.view.CounterpartLabel)
	}
	b.WriteString("\n\nModifiche Proposte\n")

	switch {
	case m.view.DifferencesErr != nil:
		b.WriteString(errorStyle.Render(app.MsgDifferencesError))
	case len(m.view.Differences) == 0:
		b.WriteString(app.MsgNoDifferences)
	default:
		rows := make([][]string, len(m.view.Differences))
		for i, d := range m.view.Differences {
			rows[i] = []string{d.PropName, orEmpty(d.OldValue), orEmpty(d.NewValue)}
		}
		b.WriteString(renderTable([]string{"Campo", "Valore Precedente", "Nuovo Valore"}, rows, []int{18, 26, 26}, m.idx))
	}

	if s := m.status.view(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}

	return renderPage(m.title(), b.String(), "↑/↓: scegli │ y: copia riga │ esc: indietro")
}

func (m *DifferenceModel) title() string {
	if m.record.Category == models.CategoryReferences {
		return "Differenze Contatto"
	}
	return "Differenze Destinazione"
}

func (m *DifferenceModel) load() tea.Cmd {
	ctx, svc, gen, rec := m.ctx, m.svc, m.gen, m.record
	return func() tea.Msg {
		return differenceLoadedMsg{gen: gen, view: svc.Load(ctx, rec.Category, rec.ID, rec.Counterpart.ID)}
	}
}

func (m *DifferenceModel) copySelected() tea.Cmd {
	if m.loading || m.idx >= len(m.view.Differences) {
		return nil
	}
	d := m.view.Differences[m.idx]
	text := fmt.Sprintf("%s: %s → %s", d.PropName, orEmpty(d.OldValue), orEmpty(d.NewValue))
	gen := m.gen
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{gen: gen, err: fmt.Errorf("copia negli appunti: %w", err)}
		}
		return copiedMsg{gen: gen}
	}
}

func orEmpty(v string) string {
	if v == "" {
		return emptyValue
	}
	return v
}
