// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP gateway to the WebCRM API.
//
// [WebCRMAdapter] turns typed method calls into authenticated JSON requests.
// The bearer token is read from a [TokenSource] on every request and a 401
// from any authenticated call publishes a [models.SessionExpired] event to the
// configured [EventPublisher]; the adapter never mutates session state itself.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures so that callers can use [errors.Is] or [Classify]
// without looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/webcrm-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/webcrm_adapter_mock.go -package=mock

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request is sent without an Authorization header.
type TokenSource interface {
	Token() string
}

// EventPublisher receives session events raised by the gateway.
type EventPublisher interface {
	Publish(ev models.SessionEvent)
}

// WebCRMAdapter is the typed surface of the WebCRM API used by the services.
type WebCRMAdapter interface {
	// SignIn exchanges user name and password for a credential via the
	// password grant of POST /token.
	SignIn(ctx context.Context, req models.SignInRequest) (models.Credential, error)

	// GetProcessSummary returns the counters of records awaiting confirmation.
	GetProcessSummary(ctx context.Context) (models.ProcessSummary, error)

	// FetchNotConfirmed lists the pending records of a confirmable category.
	// The counterpart of every record is classified while decoding.
	FetchNotConfirmed(ctx context.Context, category models.Category) ([]models.PendingRecord, error)
	// Confirm promotes the proposed record id to the live version.
	Confirm(ctx context.Context, category models.Category, id models.ID) error
	// Dismiss discards the proposed record id.
	Dismiss(ctx context.Context, category models.Category, id models.ID) error
	// GetDifference returns the field-level differences of the pending record
	// id against its confirmed counterpart, in server order.
	GetDifference(ctx context.Context, category models.Category, id models.ID) ([]models.FieldDifference, error)

	GetCustomers(ctx context.Context) ([]models.Customer, error)
	FetchCustomer(ctx context.Context, id models.ID) (models.Customer, error)
	GetCustomerSummary(ctx context.Context, id models.ID) (models.CustomerSummary, error)

	FetchDestinationsByCustomer(ctx context.Context, customerID models.ID) ([]models.Destination, error)
	FetchDestinationByID(ctx context.Context, id models.ID) (models.Destination, error)
	CreateDestination(ctx context.Context, d models.Destination) (models.Destination, error)
	UpdateDestination(ctx context.Context, d models.Destination) (models.Destination, error)
	DeleteDestination(ctx context.Context, id models.ID) error
	GetDestinationTypes(ctx context.Context) ([]models.DestinationType, error)

	FetchReferencesByCustomer(ctx context.Context, customerID models.ID) ([]models.Reference, error)
	FetchReferenceByID(ctx context.Context, id models.ID) (models.Reference, error)
	CreateReference(ctx context.Context, r models.Reference) (models.Reference, error)
	UpdateReference(ctx context.Context, r models.Reference) (models.Reference, error)
	DeleteReference(ctx context.Context, id models.ID) error
}
