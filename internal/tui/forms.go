package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/internal/validators"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled input. label doubles as the key of validation
// messages, so it must match the struct's label tag.
type formField struct {
	label string
	input textinput.Model
}

// entityForm is the input grid shared by the destination and contact forms.
type entityForm struct {
	fields   []formField
	focus    int
	errs     map[string]string
	errMsg   string
	saving   bool
	customer models.Customer
}

func newEntityForm(labels ...string) entityForm {
	fields := make([]formField, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.CharLimit = 128
		in.Width = 40
		fields[i] = formField{label: label, input: in}
	}
	return entityForm{fields: fields, errs: map[string]string{}}
}

func (f *entityForm) reset(customer models.Customer, values ...string) {
	f.customer = customer
	f.errs = map[string]string{}
	f.errMsg = ""
	f.saving = false
	for i := range f.fields {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.fields[i].input.SetValue(v)
	}
	f.setFocus(0)
}

func (f *entityForm) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *entityForm) setFocus(i int) {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	for j := range f.fields {
		if j == f.focus {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
}

// update handles focus movement and typing. submit reports an enter press.
func (f *entityForm) update(msg tea.Msg) (cmd tea.Cmd, submit bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			f.setFocus(f.focus + 1)
			return nil, false
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			f.setFocus(f.focus - 1)
			return nil, false
		case key.Matches(keyMsg, keys.enter):
			return nil, !f.saving
		}
	}

	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd, false
}

// fail records a save error, splitting validation failures per field.
func (f *entityForm) fail(err error) {
	f.saving = false
	f.errs = map[string]string{}
	f.errMsg = ""

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		for _, field := range f.fields {
			if m, ok := verrs.Field(field.label); ok {
				f.errs[field.label] = m
			}
		}
		if len(f.errs) == len(verrs) {
			return
		}
	}
	f.errMsg = userMessage(err, app.MsgLoadError)
}

func (f *entityForm) view(extra string) string {
	var b strings.Builder

	b.WriteString("Cliente: ")
	b.WriteString(f.customer.Descr1)
	b.WriteString("\n\n")

	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(padRight(field.label, 16))
		b.WriteString("│ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
		if m, ok := f.errs[field.label]; ok {
			b.WriteString("                    ")
			b.WriteString(errorStyle.Render(m))
			b.WriteString("\n")
		}
	}

	if extra != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(extra))
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString("\n[Salvataggio...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Errore: " + f.errMsg))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

const formHotKeys = "tab: campo successivo │ enter: salva │ esc: annulla"

type entitySavedMsg struct {
	gen uint64
	err error
}

// ── Destination ──

const (
	destDescr1 = iota
	destDescr2
	destAddress
	destCity
	destCounty
	destEmail
	destTelephone
	destMobile
	destPersonReference
	destType
)

type openDestinationFormMsg struct {
	customer    models.Customer
	destination *models.Destination
}

type destinationTypesMsg struct {
	gen   uint64
	types []models.DestinationType
}

// DestinationFormModel creates or edits a destination.
type DestinationFormModel struct {
	ctx context.Context
	svc service.DestinationService

	gen      uint64
	form     entityForm
	existing models.Destination
	types    []models.DestinationType
}

func NewDestinationFormModel(ctx context.Context, svc service.DestinationService) *DestinationFormModel {
	return &DestinationFormModel{
		ctx: ctx,
		svc: svc,
		form: newEntityForm("Descrizione", "Descrizione 2", "Indirizzo", "Città", "Provincia",
			"Email", "Telefono", "Cellulare", "Referente", "Tipologia Sede"),
	}
}

func (m *DestinationFormModel) Init() tea.Cmd {
	return navigate(pageCustomers, nil)
}

func (m *DestinationFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openDestinationFormMsg:
		m.gen = nextGeneration()
		m.existing = models.Destination{CustomerID: msg.customer.ID, CustomerDescription: msg.customer.Descr1}
		if msg.destination != nil {
			m.existing = *msg.destination
		}
		d := m.existing
		m.form.reset(msg.customer, d.Descr1, d.Descr2, d.Address, d.City, d.County,
			d.Email, d.TelephoneNumber, d.MobileNumber, d.PersonReference, d.DestinationType)
		return m, tea.Batch(textinput.Blink, m.loadTypes())

	case destinationTypesMsg:
		if msg.gen == m.gen {
			m.types = msg.types
		}
		return m, nil

	case entitySavedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.form.fail(msg.err)
			return m, nil
		}
		return m, navigate(pageCustomer, openCustomerMsg{id: m.form.customer.ID})

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate(pageCustomer, openCustomerMsg{id: m.form.customer.ID})
		}
	}

	cmd, submit := m.form.update(msg)
	if submit {
		return m, m.save()
	}
	return m, cmd
}

func (m *DestinationFormModel) View() string {
	title := "NUOVA DESTINAZIONE"
	if !m.existing.ID.IsZero() {
		title = "MODIFICA DESTINAZIONE"
	}
	return renderPage(title, m.form.view(m.typesHint()), formHotKeys)
}

func (m *DestinationFormModel) typesHint() string {
	types := m.types
	if len(types) == 0 {
		types = []models.DestinationType{
			{ID: models.DestinationTypeRegisteredOffice, Description: "Sede Legale"},
			{ID: models.DestinationTypeOperationalSite, Description: "Sede Operativa"},
		}
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.ID + " = " + t.Description
	}
	return "Tipologia Sede: " + strings.Join(parts, ", ")
}

func (m *DestinationFormModel) destination() models.Destination {
	d := m.existing
	f := &m.form
	d.Descr1 = f.value(destDescr1)
	d.Descr2 = f.value(destDescr2)
	d.Address = f.value(destAddress)
	d.City = f.value(destCity)
	d.County = f.value(destCounty)
	d.Email = f.value(destEmail)
	d.TelephoneNumber = f.value(destTelephone)
	d.MobileNumber = f.value(destMobile)
	d.PersonReference = f.value(destPersonReference)
	d.DestinationType = f.value(destType)
	return d
}

func (m *DestinationFormModel) save() tea.Cmd {
	m.form.saving = true
	m.form.errMsg = ""
	ctx, svc, gen, d := m.ctx, m.svc, m.gen, m.destination()
	return func() tea.Msg {
		var err error
		if d.ID.IsZero() {
			_, err = svc.Create(ctx, d)
		} else {
			_, err = svc.Update(ctx, d)
		}
		return entitySavedMsg{gen: gen, err: err}
	}
}

// loadTypes is best effort; the hint falls back to the built-in types.
func (m *DestinationFormModel) loadTypes() tea.Cmd {
	ctx, svc, gen := m.ctx, m.svc, m.gen
	return func() tea.Msg {
		types, err := svc.GetTypes(ctx)
		if err != nil {
			return nil
		}
		return destinationTypesMsg{gen: gen, types: types}
	}
}

// ── Reference ──

const (
	refFirstName = iota
	refLastName
	refRole
	refEmail
	refDescription
	refTelephone
	refMobile
)

type openReferenceFormMsg struct {
	customer  models.Customer
	reference *models.Reference
}

// ReferenceFormModel creates or edits a contact.
type ReferenceFormModel struct {
	ctx context.Context
	svc service.ReferenceService

	gen      uint64
	form     entityForm
	existing models.Reference
}

func NewReferenceFormModel(ctx context.Context, svc service.ReferenceService) *ReferenceFormModel {
	return &ReferenceFormModel{
		ctx:  ctx,
		svc:  svc,
		form: newEntityForm("Nome", "Cognome", "Ruolo", "Email", "Descrizione", "Telefono", "Cellulare"),
	}
}

func (m *ReferenceFormModel) Init() tea.Cmd {
	return navigate(pageCustomers, nil)
}

func (m *ReferenceFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openReferenceFormMsg:
		m.gen = nextGeneration()
		m.existing = models.Reference{CustomerID: msg.customer.ID, CustomerDescription: msg.customer.Descr1}
		if msg.reference != nil {
			m.existing = *msg.reference
		}
		r := m.existing
		m.form.reset(msg.customer, r.FirstName, r.LastName, r.Role, r.Email, r.Description, r.Telephone, r.MobilePhone)
		return m, textinput.Blink

	case entitySavedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.form.fail(msg.err)
			return m, nil
		}
		return m, navigate(pageCustomer, openCustomerMsg{id: m.form.customer.ID})

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate(pageCustomer, openCustomerMsg{id: m.form.customer.ID})
		}
	}

	cmd, submit := m.form.update(msg)
	if submit {
		return m, m.save()
	}
	return m, cmd
}

func (m *ReferenceFormModel) View() string {
	title := "NUOVO CONTATTO"
	if !m.existing.ID.IsZero() {
		title = "MODIFICA CONTATTO"
	}
	return renderPage(title, m.form.view(""), formHotKeys)
}

func (m *ReferenceFormModel) reference() models.Reference {
	r := m.existing
	f := &m.form
	r.FirstName = f.value(refFirstName)
	r.LastName = f.value(refLastName)
	r.Role = f.value(refRole)
	r.Email = f.value(refEmail)
	r.Description = f.value(refDescription)
	r.Telephone = f.value(refTelephone)
	r.MobilePhone = f.value(refMobile)
	return r
}

func (m *ReferenceFormModel) save() tea.Cmd {
	m.form.saving = true
	m.form.errMsg = ""
	ctx, svc, gen, r := m.ctx, m.svc, m.gen, m.reference()
	return func() tea.Msg {
		var err error
		if r.ID.IsZero() {
			_, err = svc.Create(ctx, r)
		} else {
			_, err = svc.Update(ctx, r)
		}
		return entitySavedMsg{gen: gen, err: err}
	}
}
