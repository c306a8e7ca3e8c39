// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type pendingLoadedMsg struct {
	gen     uint64
	records []models.PendingRecord
	err     error
}

type pendingActionMsg struct {
	gen      uint64
	decision models.Decision
	err      error
}

// openDifferenceMsg opens the difference viewer for record; back is the page
// to return to.
type openDifferenceMsg struct {
	record models.PendingRecord
	back   string
}

// PendingModel lists the records of one category awaiting confirmation and
// lets the administrator confirm, dismiss or compare them. After every
// successful action the whole list is fetched again. Decisions are ignored
// while a fetch or another decision is in flight.
type PendingModel struct {
	ctx      context.Context
	category models.Category
	page     string
	svc      service.ConfirmationService

	gen     uint64
	loading bool
	acting  bool
	records []models.PendingRecord
	loadErr error
	idx     int
	status  status
	spinner spinner.Model
}

func NewPendingModel(ctx context.Context, category models.Category, svc service.ConfirmationService) *PendingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	page := pagePendingDestinations
	if category == models.CategoryReferences {
		page = pagePendingReferences
	}
	return &PendingModel{ctx: ctx, category: category, page: page, svc: svc, spinner: s}
}

func (m *PendingModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	m.records = nil
	m.loadErr = nil
	m.idx = 0
	m.acting = false
	m.status = status{}
	return m.fetch()
}

func (m *PendingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pendingLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.records = msg.records
		m.idx = moveCursor(m.idx, 0, len(m.records))
		return m, nil

	case pendingActionMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.acting = false
		if msg.err != nil {
			fallback := app.MsgConfirmError
			if msg.decision == models.DecisionDismiss {
				fallback = app.MsgDismissError
			}
			return m, m.status.set(m.gen, userMessage(msg.err, fallback), true)
		}

		text := app.MsgConfirmSuccess
		if msg.decision == models.DecisionDismiss {
			text = app.MsgDismissSuccess
		}
		return m, tea.Batch(m.status.set(m.gen, text, false), m.fetch())

	case clearStatusMsg:
		m.status.clear(msg, m.gen)
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.acting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PendingModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageHome, nil)
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.records))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.records))
	case key.Matches(msg, keys.refresh):
		if m.loading || m.acting {
			return m, nil
		}
		return m, m.fetch()
	case key.Matches(msg, keys.confirm):
		return m, m.act(models.DecisionConfirm)
	case key.Matches(msg, keys.dismiss):
		return m, m.act(models.DecisionDismiss)
	case key.Matches(msg, keys.difference):
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !m.svc.CanViewDifference(rec) {
			return m, m.status.set(m.gen, differenceHint(rec), true)
		}
		return m, navigate(pageDifference, openDifferenceMsg{record: rec, back: m.page})
	}
	return m, nil
}

func (m *PendingModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && m.records == nil:
		b.WriteString(m.spinner.View())
		b.WriteString(" Caricamento...")
	case m.loadErr != nil && m.records == nil:
		b.WriteString(errorStyle.Render(userMessage(m.loadErr, app.MsgLoadError)))
	case len(m.records) == 0:
		b.WriteString(m.emptyText())
	default:
		rows := make([][]string, len(m.records))
		for i, rec := range m.records {
			rows[i] = append(append([]string{}, rec.Fields...), differenceCell(rec, m.svc.CanViewDifference(rec)))
		}
		headers := append(append([]string{}, models.PendingColumns(m.category)...), "Differenze")
		b.WriteString(renderTable(headers, rows, []int{20, 14, 14, 18, 14, 10}, m.idx))
	}

	if m.loadErr != nil && m.records != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(userMessage(m.loadErr, app.MsgLoadError)))
	}
	if (m.loading || m.acting) && m.records != nil {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Aggiornamento...")
	}
	if s := m.status.view(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}

	hotKeys := "c: conferma │ x: dismetti │ d: differenze │ r: aggiorna │ esc: indietro"
	if m.loading || m.acting {
		hotKeys = "d: differenze │ esc: indietro"
	}
	return renderPage(m.title(), b.String(), hotKeys)
}

func (m *PendingModel) title() string {
	if m.category == models.CategoryReferences {
		return "CONTATTI DA CONFERMARE"
	}
	return "DESTINAZIONI DA CONFERMARE"
}

func (m *PendingModel) emptyText() string {
	if m.category == models.CategoryReferences {
		return "Nessun contatto da confermare"
	}
	return "Nessuna destinazione da confermare"
}

func (m *PendingModel) selected() (models.PendingRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.PendingRecord{}, false
	}
	return m.records[m.idx], true
}

func (m *PendingModel) fetch() tea.Cmd {
	m.loading = true
	ctx, svc, category, gen := m.ctx, m.svc, m.category, m.gen
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		records, err := svc.ListPending(ctx, category)
		return pendingLoadedMsg{gen: gen, records: records, err: err}
	})
}

func (m *PendingModel) act(decision models.Decision) tea.Cmd {
	rec, ok := m.selected()
	if !ok || m.acting || m.loading {
		return nil
	}
	m.acting = true

	ctx, svc, gen := m.ctx, m.svc, m.gen
	return func() tea.Msg {
		var err error
		if decision == models.DecisionDismiss {
			err = svc.Dismiss(ctx, rec.Category, rec.ID)
		} else {
			err = svc.Confirm(ctx, rec.Category, rec.ID)
		}
		return pendingActionMsg{gen: gen, decision: decision, err: err}
	}
}

func differenceHint(rec models.PendingRecord) string {
	if rec.Counterpart.Kind == models.CounterpartProposed {
		return app.MsgIdenticalRecords
	}
	return app.MsgNoDifferences
}

func differenceCell(rec models.PendingRecord, enabled bool) string {
	if enabled {
		return "[d] vedi"
	}
	return "-"
}
