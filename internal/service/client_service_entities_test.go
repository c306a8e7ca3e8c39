package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/mock"
	"github.com/MKhiriev/webcrm-console/internal/validators"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Destinations ────────────────────────────────────────────────────────────

func TestDestinationCreate_InvalidNeverReachesAdapter(t *testing.T) {
	// Arrange
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewDestinationService(webcrm, validators.NewEntityValidator(""), logger.Nop())

	// Act
	_, err := svc.Create(context.Background(), models.Destination{CustomerID: "1", Email: "nope"})

	// Assert
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.Equal(t, adapter.KindValidation, adapter.Classify(err))
}

func TestDestinationCreate_Valid(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewDestinationService(webcrm, validators.NewEntityValidator(""), logger.Nop())
	d := models.Destination{CustomerID: "1", Descr1: "Magazzino", County: "TO", DestinationType: "2"}
	webcrm.EXPECT().CreateDestination(gomock.Any(), d).Return(models.Destination{ID: "9"}, nil)

	got, err := svc.Create(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, models.ID("9"), got.ID)
}

func TestDestinationUpdateAndDelete_RequireID(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewDestinationService(webcrm, validators.NewEntityValidator(""), logger.Nop())

	_, err := svc.Update(context.Background(), models.Destination{})
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrInvalidID)
}

func TestDestinationDelete_NotFound(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewDestinationService(webcrm, validators.NewEntityValidator(""), logger.Nop())
	webcrm.EXPECT().DeleteDestination(gomock.Any(), models.ID("4")).Return(adapter.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "4"), ErrRecordNotFound)
}

func TestDestinationReads(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewDestinationService(webcrm, validators.NewEntityValidator(""), logger.Nop())
	webcrm.EXPECT().FetchDestinationsByCustomer(gomock.Any(), models.ID("1")).Return([]models.Destination{{ID: "3"}}, nil)
	webcrm.EXPECT().FetchDestinationByID(gomock.Any(), models.ID("3")).Return(models.Destination{ID: "3"}, nil)
	webcrm.EXPECT().GetDestinationTypes(gomock.Any()).Return([]models.DestinationType{{ID: "1"}, {ID: "2"}}, nil)

	list, err := svc.ListByCustomer(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	d, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), d.ID)

	types, err := svc.GetTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 2)
}

// ── References ──────────────────────────────────────────────────────────────

func TestReferenceUpdate(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewReferenceService(webcrm, validators.NewEntityValidator(""), logger.Nop())
	r := models.Reference{ID: "5", CustomerID: "1", LastName: "Bianchi"}
	webcrm.EXPECT().UpdateReference(gomock.Any(), r).Return(r, nil)

	got, err := svc.Update(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestReferenceCreate_NameRequired(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewReferenceService(webcrm, validators.NewEntityValidator(""), logger.Nop())

	_, err := svc.Create(context.Background(), models.Reference{CustomerID: "1"})

	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestReferenceCreate_ServerConflict(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewReferenceService(webcrm, validators.NewEntityValidator(""), logger.Nop())
	webcrm.EXPECT().CreateReference(gomock.Any(), gomock.Any()).Return(models.Reference{}, adapter.ErrConflict)

	_, err := svc.Create(context.Background(), models.Reference{CustomerID: "1", FirstName: "Anna"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestReferenceReadsAndDelete(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewReferenceService(webcrm, validators.NewEntityValidator(""), logger.Nop())
	webcrm.EXPECT().FetchReferencesByCustomer(gomock.Any(), models.ID("1")).Return([]models.Reference{{ID: "5"}}, nil)
	webcrm.EXPECT().FetchReferenceByID(gomock.Any(), models.ID("5")).Return(models.Reference{ID: "5"}, nil)
	webcrm.EXPECT().DeleteReference(gomock.Any(), models.ID("5")).Return(nil)

	list, err := svc.ListByCustomer(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Get(context.Background(), "5")
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(context.Background(), "5"))
}

// ── Customers ───────────────────────────────────────────────────────────────

func TestCustomerService(t *testing.T) {
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	svc := NewCustomerService(webcrm, logger.Nop())
	webcrm.EXPECT().GetCustomers(gomock.Any()).Return([]models.Customer{{ID: "1"}}, nil)
	webcrm.EXPECT().FetchCustomer(gomock.Any(), models.ID("1")).Return(models.Customer{ID: "1", Descr1: "ACME"}, nil)
	webcrm.EXPECT().GetCustomerSummary(gomock.Any(), models.ID("1")).Return(models.CustomerSummary{}, adapter.ErrUnauthorized)

	customers, err := svc.GetCustomers(context.Background())
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	c, err := svc.GetCustomer(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "ACME", c.Descr1)

	_, err = svc.GetCustomerSummary(context.Background(), "1")
	assert.ErrorIs(t, err, ErrSessionExpired)
}
