// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the console's business operations on top of the
// WebCRM gateway: sign-in, the pending-changes summary, the confirmation
// workflow, the difference viewer and the customer entity screens.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/webcrm-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager owns the signed-in credential. It is implemented by
// session.Manager.
type SessionManager interface {
	Restore(ctx context.Context) (models.Credential, error)
	SignIn(ctx context.Context, cred models.Credential) error
	SignOut(ctx context.Context) error
}

// AuthService signs the administrator in and out.
type AuthService interface {
	// SignIn exchanges userName and password for a credential and persists it.
	// Returns ErrWrongCredentials when the API rejects the pair.
	SignIn(ctx context.Context, userName, password string) (models.Credential, error)

	// RestoreSession returns the persisted credential, or ErrNotSignedIn when
	// there is none or it has expired.
	RestoreSession(ctx context.Context) (models.Credential, error)

	// SignOut forgets the credential.
	SignOut(ctx context.Context) error
}

// SummaryService reads the counters of records awaiting confirmation.
type SummaryService interface {
	// GetProcessSummary fetches a fresh summary. Failure is reported as an
	// error and never as a zero summary.
	GetProcessSummary(ctx context.Context) (models.ProcessSummary, error)

	// HasElementsToConfirm reports whether any counter is positive. A nil
	// summary (unknown state) yields false.
	HasElementsToConfirm(summary *models.ProcessSummary) bool
}

// ConfirmationService drives the per-category pending list.
type ConfirmationService interface {
	// ListPending refetches the full pending set of category.
	ListPending(ctx context.Context, category models.Category) ([]models.PendingRecord, error)
	// Confirm promotes the proposed record id. Callers refetch afterwards.
	Confirm(ctx context.Context, category models.Category, id models.ID) error
	// Dismiss discards the proposed record id. Callers refetch afterwards.
	Dismiss(ctx context.Context, category models.Category, id models.ID) error
	// CanViewDifference reports whether the record has a distinct confirmed
	// counterpart to compare against.
	CanViewDifference(record models.PendingRecord) bool
}

// DifferenceService loads what the difference viewer shows.
type DifferenceService interface {
	GetDifferences(ctx context.Context, category models.Category, id models.ID) ([]models.FieldDifference, error)
	GetCounterpartLabel(ctx context.Context, category models.Category, confirmedID models.ID) (string, error)

	// Load issues both reads concurrently and reports each outcome
	// separately; it never fails as a whole.
	Load(ctx context.Context, category models.Category, id, confirmedID models.ID) models.DifferenceView
}

// CustomerService reads customers for the entity screens.
type CustomerService interface {
	GetCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id models.ID) (models.Customer, error)
	GetCustomerSummary(ctx context.Context, id models.ID) (models.CustomerSummary, error)
}

// DestinationService manages customer destinations. Create and Update
// validate locally before any request is sent.
type DestinationService interface {
	ListByCustomer(ctx context.Context, customerID models.ID) ([]models.Destination, error)
	Get(ctx context.Context, id models.ID) (models.Destination, error)
	Create(ctx context.Context, d models.Destination) (models.Destination, error)
	Update(ctx context.Context, d models.Destination) (models.Destination, error)
	Delete(ctx context.Context, id models.ID) error
	GetTypes(ctx context.Context) ([]models.DestinationType, error)
}

// ReferenceService manages customer contacts. Create and Update validate
// locally before any request is sent.
type ReferenceService interface {
	ListByCustomer(ctx context.Context, customerID models.ID) ([]models.Reference, error)
	Get(ctx context.Context, id models.ID) (models.Reference, error)
	Create(ctx context.Context, r models.Reference) (models.Reference, error)
	Update(ctx context.Context, r models.Reference) (models.Reference, error)
	Delete(ctx context.Context, id models.ID) error
}

// SummaryJob periodically refreshes the process summary while signed in.
type SummaryJob interface {
	// Start refreshes immediately and then every interval, defaulting to one
	// minute if interval is zero or negative. Any previously running job is
	// stopped before the new one begins. handler gets every outcome; exactly
	// one of summary and err is meaningful.
	Start(ctx context.Context, interval time.Duration, handler func(models.ProcessSummary, error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
