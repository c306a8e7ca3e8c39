package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/internal/workers"
	"github.com/MKhiriev/webcrm-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the console program and bridges background events into it.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	summaryWorker workers.Worker

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// BindSummaryWorker sets the worker started on sign-in and stopped on sign-out
// or session expiry. Must be called before Run.
func (t *TUI) BindSummaryWorker(w workers.Worker) {
	t.summaryWorker = w
}

// OnSummary delivers a background summary refresh to the running program.
// It matches the handler signature of [service.SummaryJob].
func (t *TUI) OnSummary(summary models.ProcessSummary, err error) {
	t.send(summaryRefreshedMsg{summary: summary, err: err})
}

// OnSessionEvent forwards session expiry to the running program. It is meant
// to be subscribed to the session broker.
func (t *TUI) OnSessionEvent(ev models.SessionEvent) {
	if ev.Kind != models.SessionExpired {
		return
	}
	t.logger.Info().Str("reason", ev.Reason).Msg("session expired, returning to sign-in")
	t.send(sessionExpiredMsg{event: ev})
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	s := t.services
	pages := map[string]tea.Model{
		pageLogin:               NewLoginModel(ctx, s.AuthService),
		pageHome:                NewHomeModel(ctx, s.AuthService, s.SummaryService),
		pageSummary:             NewSummaryModel(ctx, s.SummaryService),
		pagePendingReferences:   NewPendingModel(ctx, models.CategoryReferences, s.ConfirmationService),
		pagePendingDestinations: NewPendingModel(ctx, models.CategoryDestinations, s.ConfirmationService),
		pageDifference:          NewDifferenceModel(ctx, s.DifferenceService),
		pageCustomers:           NewCustomersModel(ctx, s.CustomerService),
		pageCustomer:            NewCustomerDetailModel(ctx, s.CustomerService, s.DestinationService, s.ReferenceService),
		pageDestinationForm:     NewDestinationFormModel(ctx, s.DestinationService),
		pageReferenceForm:       NewReferenceFormModel(ctx, s.ReferenceService),
	}

	root := NewRootModel(ctx, s.AuthService, pages, t.summaryWorker, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	_, err := program.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
	root.summaryWorker.stop()

	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}
