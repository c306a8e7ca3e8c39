package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuEntry struct {
	title string
	page  string
}

var homeMenu = []menuEntry{
	{title: "Riepilogo", page: pageSummary},
	{title: "Clienti", page: pageCustomers},
	{title: "Destinazioni da Confermare", page: pagePendingDestinations},
	{title: "Contatti da Confermare", page: pagePendingReferences},
}

type homeSummaryMsg struct {
	gen     uint64
	summary models.ProcessSummary
	err     error
}

// HomeModel is the landing page after sign-in. It shows who is signed in, the
// pending-changes indicator fed by the summary worker and the main menu.
type HomeModel struct {
	ctx     context.Context
	auth    service.AuthService
	summary service.SummaryService

	cred models.Credential
	gen  uint64
	idx  int

	// last is nil until the first successful refresh and after a failed one.
	last       *models.ProcessSummary
	summaryErr error
	signingOut bool
	status     status
}

func NewHomeModel(ctx context.Context, auth service.AuthService, summary service.SummaryService) *HomeModel {
	return &HomeModel{ctx: ctx, auth: auth, summary: summary}
}

func (m *HomeModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	m.signingOut = false
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryRefreshedMsg:
		m.applySummary(msg.summary, msg.err)
		return m, nil

	case homeSummaryMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.applySummary(msg.summary, msg.err)
		return m, nil

	case signOutResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.signingOut = false
		if msg.err != nil {
			return m, m.status.set(m.gen, userMessage(msg.err, app.MsgLoadError), true)
		}
		return m, func() tea.Msg { return signedOutMsg{} }

	case clearStatusMsg:
		m.status.clear(msg, m.gen)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.idx = moveCursor(m.idx, -1, len(homeMenu))
		case key.Matches(msg, keys.down):
			m.idx = moveCursor(m.idx, 1, len(homeMenu))
		case key.Matches(msg, keys.enter):
			return m, navigate(homeMenu[m.idx].page, nil)
		case key.Matches(msg, keys.refresh):
			return m, m.cmdRefresh()
		case key.Matches(msg, keys.logout):
			if m.signingOut {
				return m, nil
			}
			m.signingOut = true
			return m, m.cmdSignOut()
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if name := m.cred.DisplayName(); name != "" {
		b.WriteString("Utente: ")
		b.WriteString(name)
		b.WriteString("\n\n")
	}

	switch {
	case m.summaryErr != nil:
		b.WriteString(disabledStyle.Render("Modifiche da confermare: " + app.MsgSummaryUnknown))
		b.WriteString("\n\n")
	case m.summary.HasElementsToConfirm(m.last):
		b.WriteString(selectedStyle.Render(fmt.Sprintf("● Modifiche da confermare (%d nuove, %d modificate)",
			m.last.TotalNewElements, m.last.TotalModifiedElements)))
		b.WriteString("\n\n")
	}

	for i, entry := range homeMenu {
		if i == m.idx {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(entry.title))
		} else {
			b.WriteString("  ")
			b.WriteString(entry.title)
		}
		b.WriteString("\n")
	}

	if s := m.status.view(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}

	return renderPage(models.AppName, strings.TrimRight(b.String(), "\n"),
		"↑/↓: scegli │ enter: apri │ r: aggiorna │ l: esci dall'account │ v: info")
}

func (m *HomeModel) setCredential(cred models.Credential) {
	m.cred = cred
	m.idx = 0
	m.last = nil
	m.summaryErr = nil
}

func (m *HomeModel) applySummary(summary models.ProcessSummary, err error) {
	if err != nil {
		m.last = nil
		m.summaryErr = err
		return
	}
	m.last = &summary
	m.summaryErr = nil
}

func (m *HomeModel) cmdRefresh() tea.Cmd {
	ctx, svc, gen := m.ctx, m.summary, m.gen
	return func() tea.Msg {
		summary, err := svc.GetProcessSummary(ctx)
		return homeSummaryMsg{gen: gen, summary: summary, err: err}
	}
}

type signOutResultMsg struct {
	gen uint64
	err error
}

func (m *HomeModel) cmdSignOut() tea.Cmd {
	ctx, auth, gen := m.ctx, m.auth, m.gen
	return func() tea.Msg {
		return signOutResultMsg{gen: gen, err: auth.SignOut(ctx)}
	}
}
