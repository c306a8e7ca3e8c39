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
	"golang.org/x/sync/errgroup"
)

const (
	tabDestinations = iota
	tabReferences
)

type customerLoadedMsg struct {
	gen          uint64
	summary      models.CustomerSummary
	destinations []models.Destination
	references   []models.Reference
	err          error
}

type entityDeletedMsg struct {
	gen uint64
	err error
}

// CustomerDetailModel shows one customer with its destinations and contacts
// and is the entry point to create, edit and delete them.
type CustomerDetailModel struct {
	ctx          context.Context
	customers    service.CustomerService
	destinations service.DestinationService
	references   service.ReferenceService

	gen     uint64
	id      models.ID
	loading bool
	err     error

	summary models.CustomerSummary
	dests   []models.Destination
	refs    []models.Reference

	tab      int
	idx      int
	deleting *confirmModel
	status   status
}

func NewCustomerDetailModel(ctx context.Context, customers service.CustomerService, destinations service.DestinationService, references service.ReferenceService) *CustomerDetailModel {
	return &CustomerDetailModel{
		ctx:          ctx,
		customers:    customers,
		destinations: destinations,
		references:   references,
	}
}

// Init reloads the last opened customer.
func (m *CustomerDetailModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	m.deleting = nil
	if m.id.IsZero() {
		return navigate(pageCustomers, nil)
	}
	return m.load()
}

func (m *CustomerDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openCustomerMsg:
		m.gen = nextGeneration()
		m.id = msg.id
		m.tab = tabDestinations
		m.idx = 0
		m.deleting = nil
		m.status = status{}
		m.summary = models.CustomerSummary{}
		m.dests, m.refs = nil, nil
		return m, m.load()

	case customerLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.summary = msg.summary
			m.dests = msg.destinations
			m.refs = msg.references
			m.idx = moveCursor(m.idx, 0, m.rowCount())
		}
		return m, nil

	case entityDeletedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			return m, m.status.set(m.gen, userMessage(msg.err, app.MsgLoadError), true)
		}
		return m, tea.Batch(m.status.set(m.gen, app.MsgDeleted, false), m.load())

	case clearStatusMsg:
		m.status.clear(msg, m.gen)
		return m, nil

	case tea.KeyMsg:
		if m.deleting != nil {
			return m.handleDeleteKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CustomerDetailModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageCustomers, nil)
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.tab = 1 - m.tab
		m.idx = 0
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, m.rowCount())
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, m.rowCount())
	case key.Matches(msg, keys.refresh):
		if !m.loading {
			return m, m.load()
		}
	case key.Matches(msg, keys.newItem):
		if m.loading || m.err != nil {
			return m, nil
		}
		return m, m.openForm(false)
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		if m.rowCount() == 0 {
			return m, nil
		}
		return m, m.openForm(true)
	case key.Matches(msg, keys.delete):
		if label, ok := m.selectedLabel(); ok {
			m.deleting = &confirmModel{message: label}
		}
	}
	return m, nil
}

func (m *CustomerDetailModel) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.deleting = nil
		return m, m.deleteSelected()
	case key.Matches(msg, keys.no):
		m.deleting = nil
	}
	return m, nil
}

func (m *CustomerDetailModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && m.summary.ID.IsZero():
		b.WriteString("Caricamento...")
		return renderPage("CLIENTE", b.String(), "esc: indietro")
	case m.err != nil:
		b.WriteString(errorStyle.Render(userMessage(m.err, app.MsgLoadError)))
		return renderPage("CLIENTE", b.String(), "r: riprova │ esc: indietro")
	}

	s := m.summary
	b.WriteString(fmt.Sprintf("%s  (%s)\n", s.Descr1, s.ID))
	b.WriteString(fmt.Sprintf("%s, %s %s\n", valueOrDash(s.Address), valueOrDash(s.City), valueOrDash(s.Province)))
	b.WriteString(fmt.Sprintf("Destinazioni: %d │ Contatti: %d │ Mezzi: %d\n\n", s.TotalDestinations, s.TotalReferences, s.TotalItems))

	destTab, refTab := "Destinazioni", "Contatti"
	if m.tab == tabDestinations {
		destTab = selectedStyle.Render("[" + destTab + "]")
	} else {
		refTab = selectedStyle.Render("[" + refTab + "]")
	}
	b.WriteString(destTab + "  " + refTab + "\n\n")

	if m.tab == tabDestinations {
		b.WriteString(m.destinationsTable())
	} else {
		b.WriteString(m.referencesTable())
	}

	if m.deleting != nil {
		b.WriteString("\n\n")
		b.WriteString(m.deleting.View())
	}
	if s := m.status.view(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}

	return renderPage("CLIENTE", b.String(), "tab: cambia elenco │ n: nuovo │ e: modifica │ D: elimina │ esc: indietro")
}

func (m *CustomerDetailModel) destinationsTable() string {
	if len(m.dests) == 0 {
		return "Nessuna destinazione"
	}
	rows := make([][]string, len(m.dests))
	for i, d := range m.dests {
		rows[i] = []string{d.Descr1, d.Address, d.City, d.County, destinationTypeLabel(d.DestinationType)}
	}
	return renderTable([]string{"Descrizione", "Indirizzo", "Città", "Prov.", "Tipologia"}, rows, []int{22, 24, 16, 5, 16}, m.idx)
}

func (m *CustomerDetailModel) referencesTable() string {
	if len(m.refs) == 0 {
		return "Nessun contatto"
	}
	rows := make([][]string, len(m.refs))
	for i, r := range m.refs {
		rows[i] = []string{r.FullName(), r.Role, r.Email, r.Telephone, r.MobilePhone}
	}
	return renderTable([]string{"Nome", "Ruolo", "Email", "Telefono", "Cellulare"}, rows, []int{22, 14, 24, 12, 12}, m.idx)
}

func (m *CustomerDetailModel) rowCount() int {
	if m.tab == tabDestinations {
		return len(m.dests)
	}
	return len(m.refs)
}

func (m *CustomerDetailModel) selectedLabel() (string, bool) {
	if m.idx >= m.rowCount() {
		return "", false
	}
	if m.tab == tabDestinations {
		return m.dests[m.idx].Descr1, true
	}
	return m.refs[m.idx].FullName(), true
}

func (m *CustomerDetailModel) openForm(edit bool) tea.Cmd {
	owner := models.Customer{ID: m.summary.ID, Descr1: m.summary.Descr1}

	if m.tab == tabDestinations {
		payload := openDestinationFormMsg{customer: owner}
		if edit {
			d := m.dests[m.idx]
			payload.destination = &d
		}
		return navigate(pageDestinationForm, payload)
	}

	payload := openReferenceFormMsg{customer: owner}
	if edit {
		r := m.refs[m.idx]
		payload.reference = &r
	}
	return navigate(pageReferenceForm, payload)
}

func (m *CustomerDetailModel) deleteSelected() tea.Cmd {
	if m.idx >= m.rowCount() {
		return nil
	}

	ctx, gen := m.ctx, m.gen
	if m.tab == tabDestinations {
		svc, id := m.destinations, m.dests[m.idx].ID
		return func() tea.Msg { return entityDeletedMsg{gen: gen, err: svc.Delete(ctx, id)} }
	}
	svc, id := m.references, m.refs[m.idx].ID
	return func() tea.Msg { return entityDeletedMsg{gen: gen, err: svc.Delete(ctx, id)} }
}

// load fetches the header and both lists concurrently.
func (m *CustomerDetailModel) load() tea.Cmd {
	m.loading = true
	ctx, gen, id := m.ctx, m.gen, m.id
	customers, destinations, references := m.customers, m.destinations, m.references

	return func() tea.Msg {
		msg := customerLoadedMsg{gen: gen}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			msg.summary, err = customers.GetCustomerSummary(gctx, id)
			return err
		})
		g.Go(func() (err error) {
			msg.destinations, err = destinations.ListByCustomer(gctx, id)
			return err
		})
		g.Go(func() (err error) {
			msg.references, err = references.ListByCustomer(gctx, id)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func destinationTypeLabel(t string) string {
	switch t {
	case models.DestinationTypeRegisteredOffice:
		return "Sede Legale"
	case models.DestinationTypeOperationalSite:
		return "Sede Operativa"
	default:
		return t
	}
}
