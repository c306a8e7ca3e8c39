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

type customersLoadedMsg struct {
	gen       uint64
	customers []models.Customer
	err       error
}

type openCustomerMsg struct {
	id models.ID
}

// CustomersModel is the customer grid.
type CustomersModel struct {
	ctx context.Context
	svc service.CustomerService

	gen       uint64
	loading   bool
	customers []models.Customer
	err       error
	idx       int
	spinner   spinner.Model
}

func NewCustomersModel(ctx context.Context, svc service.CustomerService) *CustomersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &CustomersModel{ctx: ctx, svc: svc, spinner: s}
}

func (m *CustomersModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	m.err = nil
	return m.fetch()
}

func (m *CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.customers = msg.customers
			m.idx = moveCursor(m.idx, 0, len(m.customers))
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
		case key.Matches(msg, keys.up):
			m.idx = moveCursor(m.idx, -1, len(m.customers))
		case key.Matches(msg, keys.down):
			m.idx = moveCursor(m.idx, 1, len(m.customers))
		case key.Matches(msg, keys.refresh):
			if !m.loading {
				return m, m.fetch()
			}
		case key.Matches(msg, keys.enter):
			if m.idx < len(m.customers) {
				return m, navigate(pageCustomer, openCustomerMsg{id: m.customers[m.idx].ID})
			}
		}
	}
	return m, nil
}

func (m *CustomersModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && m.customers == nil:
		b.WriteString(m.spinner.View())
		b.WriteString(" Caricamento...")
	case m.err != nil:
		b.WriteString(errorStyle.Render(userMessage(m.err, app.MsgLoadError)))
	case len(m.customers) == 0:
		b.WriteString("Nessun cliente")
	default:
		rows := make([][]string, len(m.customers))
		for i, c := range m.customers {
			rows[i] = []string{c.ID.String(), c.Descr1, c.Typology, c.City, c.Prov}
		}
		b.WriteString(renderTable([]string{"Codice", "Ragione Sociale", "Tipologia", "Città", "Prov."}, rows, []int{8, 30, 14, 18, 5}, m.idx))
	}

	return renderPage("CLIENTI", b.String(), "↑/↓: scegli │ enter: apri │ r: aggiorna │ esc: indietro")
}

func (m *CustomersModel) fetch() tea.Cmd {
	m.loading = true
	ctx, svc, gen := m.ctx, m.svc, m.gen
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		customers, err := svc.GetCustomers(ctx)
		return customersLoadedMsg{gen: gen, customers: customers, err: err}
	})
}
