// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/config"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/sandbox"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests drive the sandbox through the console's own gateway and
// services, the way the TUI does.

type tokenHolder struct {
	mu    sync.Mutex
	token string
}

func (h *tokenHolder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

type eventLog struct {
	mu     sync.Mutex
	events []models.SessionEvent
}

func (e *eventLog) Publish(ev models.SessionEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *eventLog) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}

type consoleFixture struct {
	webcrm adapter.WebCRMAdapter
	tokens *tokenHolder
	events *eventLog
}

// newConsole starts a sandbox and returns a gateway signed in as the demo
// user.
func newConsole(t *testing.T) consoleFixture {
	t.Helper()
	srv := newTestServer(t, testConfig())

	f := consoleFixture{tokens: &tokenHolder{}, events: &eventLog{}}
	webcrm, err := adapter.NewHTTPWebCRMAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 2 * time.Second},
		f.tokens, f.events, logger.Nop(),
	)
	require.NoError(t, err)
	f.webcrm = webcrm

	cred, err := webcrm.SignIn(context.Background(), models.SignInRequest{UserName: sandbox.DemoUserName, Password: sandbox.DemoPassword})
	require.NoError(t, err)
	require.NotEmpty(t, cred.AccessToken)
	f.tokens.set(cred.AccessToken)
	return f
}

func pendingIDs(records []models.PendingRecord) []models.ID {
	ids := make([]models.ID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

// ── Sign in ──

func TestConsole_SignIn_WrongPasswordIsBadRequest(t *testing.T) {
	f := newConsole(t)

	_, err := f.webcrm.SignIn(context.Background(), models.SignInRequest{UserName: sandbox.DemoUserName, Password: "x"})

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Zero(t, f.events.count(), "a failed sign-in must not expire the session")
}

func TestConsole_UnauthorizedPublishesSessionExpired(t *testing.T) {
	f := newConsole(t)
	f.tokens.set("stale")

	_, err := f.webcrm.GetProcessSummary(context.Background())

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	require.Equal(t, 1, f.events.count())
	assert.Equal(t, models.SessionExpired, f.events.events[0].Kind)
}

// ── Confirmation workflow ──

func TestConsole_ConfirmRemovesRowOnRefetch(t *testing.T) {
	// Arrange
	f := newConsole(t)
	ctx := context.Background()
	confirmations := service.NewConfirmationService(f.webcrm, logger.Nop())

	before, err := confirmations.ListPending(ctx, models.CategoryReferences)
	require.NoError(t, err)
	require.Contains(t, pendingIDs(before), models.ID("511"))

	// Act
	require.NoError(t, confirmations.Confirm(ctx, models.CategoryReferences, "511"))
	after, err := confirmations.ListPending(ctx, models.CategoryReferences)

	// Assert
	require.NoError(t, err)
	assert.NotContains(t, pendingIDs(after), models.ID("511"))
	assert.Len(t, after, len(before)-1)

	ref, err := f.webcrm.FetchReferenceByID(ctx, "511")
	require.NoError(t, err)
	assert.Equal(t, "Responsabile acquisti", ref.Role)
}

func TestConsole_DismissRemovesRowOnRefetch(t *testing.T) {
	// Arrange
	f := newConsole(t)
	ctx := context.Background()
	confirmations := service.NewConfirmationService(f.webcrm, logger.Nop())

	// Act
	require.NoError(t, confirmations.Dismiss(ctx, models.CategoryDestinations, "111"))
	after, err := confirmations.ListPending(ctx, models.CategoryDestinations)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"110", "112"}, pendingIDs(after))

	live, err := f.webcrm.FetchDestinationByID(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, "Via Po 5", live.Address)
}

func TestConsole_SecondDecisionConflicts(t *testing.T) {
	f := newConsole(t)
	ctx := context.Background()
	confirmations := service.NewConfirmationService(f.webcrm, logger.Nop())

	require.NoError(t, confirmations.Confirm(ctx, models.CategoryDestinations, "112"))
	err := confirmations.Dismiss(ctx, models.CategoryDestinations, "112")

	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestConsole_CounterpartKinds(t *testing.T) {
	f := newConsole(t)

	records, err := f.webcrm.FetchNotConfirmed(context.Background(), models.CategoryDestinations)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.False(t, records[0].CanViewDifference())
	assert.True(t, records[1].CanViewDifference())
	assert.False(t, records[2].CanViewDifference())
	assert.Equal(t, models.ID("101"), records[1].Counterpart.ID)
}

// ── Differences ──

func TestConsole_DifferenceView(t *testing.T) {
	f := newConsole(t)
	differences := service.NewDifferenceService(f.webcrm, logger.Nop())

	view := differences.Load(context.Background(), models.CategoryReferences, "511", "500")

	require.NoError(t, view.DifferencesErr)
	require.NoError(t, view.CounterpartErr)
	assert.Equal(t, "Rossi Trasporti SpA", view.CounterpartLabel)
	assert.Equal(t, []models.FieldDifference{
		{PropName: "Ruolo", OldValue: "Buyer", NewValue: "Responsabile acquisti"},
		{PropName: "Email", OldValue: "luca.neri@rossi.it", NewValue: "l.neri@rossi.it"},
	}, view.Differences)
}

// ── Summary ──

func TestConsole_SummaryFollowsDecisions(t *testing.T) {
	f := newConsole(t)
	ctx := context.Background()
	summaries := service.NewSummaryService(f.webcrm, logger.Nop())

	before, err := summaries.GetProcessSummary(ctx)
	require.NoError(t, err)
	require.NoError(t, f.webcrm.Dismiss(ctx, models.CategoryReferences, "510"))
	after, err := summaries.GetProcessSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, before.NewReferences-1, after.NewReferences)
	assert.Equal(t, before.TotalNewElements-1, after.TotalNewElements)
}

// ── CRUD ──

func TestConsole_DestinationLifecycle(t *testing.T) {
	f := newConsole(t)
	ctx := context.Background()

	created, err := f.webcrm.CreateDestination(ctx, models.Destination{
		CustomerID: "20", Descr1: "Deposito", County: "TO", DestinationType: models.DestinationTypeOperationalSite,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	assert.Equal(t, "Bianchi Logistica Srl", created.CustomerDescription)

	created.City = "Moncalieri"
	_, err = f.webcrm.UpdateDestination(ctx, created)
	require.NoError(t, err)

	list, err := f.webcrm.FetchDestinationsByCustomer(ctx, "20")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Moncalieri", list[1].City)

	require.NoError(t, f.webcrm.DeleteDestination(ctx, created.ID))
	_, err = f.webcrm.FetchDestinationByID(ctx, created.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestConsole_CustomerSummary(t *testing.T) {
	f := newConsole(t)
	customers := service.NewCustomerService(f.webcrm, logger.Nop())

	sum, err := customers.GetCustomerSummary(context.Background(), "10")

	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalDestinations)
	assert.Equal(t, 1, sum.TotalReferences)
	assert.Equal(t, 3, sum.TotalItems)
}
