// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/mock"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfirmationTest(t *testing.T) (ConfirmationService, *mock.MockWebCRMAdapter) {
	t.Helper()
	webcrm := mock.NewMockWebCRMAdapter(gomock.NewController(t))
	return NewConfirmationService(webcrm, logger.Nop()), webcrm
}

// ── ListPending ─────────────────────────────────────────────────────────────

func TestListPending(t *testing.T) {
	svc, webcrm := newConfirmationTest(t)
	records := []models.PendingRecord{
		models.PendingReference{ID: "101", ConfirmedID: "55"}.Record(),
	}
	webcrm.EXPECT().FetchNotConfirmed(gomock.Any(), models.CategoryReferences).Return(records, nil)

	got, err := svc.ListPending(context.Background(), models.CategoryReferences)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestListPending_NilBecomesEmpty(t *testing.T) {
	svc, webcrm := newConfirmationTest(t)
	webcrm.EXPECT().FetchNotConfirmed(gomock.Any(), models.CategoryDestinations).Return(nil, nil)

	got, err := svc.ListPending(context.Background(), models.CategoryDestinations)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListPending_UnsupportedCategoriesNeverCallAPI(t *testing.T) {
	svc, _ := newConfirmationTest(t)

	for _, c := range []models.Category{models.CategoryCustomers, models.CategoryItems} {
		_, err := svc.ListPending(context.Background(), c)
		assert.ErrorIs(t, err, ErrCategoryNotSupported)

		assert.ErrorIs(t, svc.Confirm(context.Background(), c, "1"), ErrCategoryNotSupported)
		assert.ErrorIs(t, svc.Dismiss(context.Background(), c, "1"), ErrCategoryNotSupported)
	}
}

func TestListPending_SessionExpired(t *testing.T) {
	svc, webcrm := newConfirmationTest(t)
	webcrm.EXPECT().FetchNotConfirmed(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("fetch: %w", adapter.ErrUnauthorized))

	_, err := svc.ListPending(context.Background(), models.CategoryReferences)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, adapter.KindAuthorization, adapter.Classify(err))
}

// ── Confirm / Dismiss ───────────────────────────────────────────────────────

func TestConfirm(t *testing.T) {
	svc, webcrm := newConfirmationTest(t)
	webcrm.EXPECT().Confirm(gomock.Any(), models.CategoryReferences, models.ID("101")).Return(nil)

	assert.NoError(t, svc.Confirm(context.Background(), models.CategoryReferences, "101"))
}

func TestDismiss(t *testing.T) {
	svc, webcrm := newConfirmationTest(t)
	webcrm.EXPECT().Dismiss(gomock.Any(), models.CategoryDestinations, models.ID("7")).Return(nil)

	assert.NoError(t, svc.Dismiss(context.Background(), models.CategoryDestinations, "7"))
}

func TestConfirm_ServerErrorPropagates(t *testing.T) {
	svc, webcrm := newConfirmationTest(t)
	webcrm.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrInternalServerError)

	err := svc.Confirm(context.Background(), models.CategoryReferences, "101")

	assert.ErrorIs(t, err, adapter.ErrServer)
}

func TestDecide_ZeroID(t *testing.T) {
	svc, _ := newConfirmationTest(t)

	assert.ErrorIs(t, svc.Confirm(context.Background(), models.CategoryReferences, "0"), ErrInvalidID)
	assert.ErrorIs(t, svc.Dismiss(context.Background(), models.CategoryReferences, ""), ErrInvalidID)
}

// ── CanViewDifference ───────────────────────────────────────────────────────

func TestCanViewDifference(t *testing.T) {
	svc, _ := newConfirmationTest(t)

	tests := []struct {
		name        string
		id          models.ID
		confirmedID models.ID
		want        bool
	}{
		{name: "identical record", id: "101", confirmedID: "101", want: false},
		{name: "zero sentinel", id: "101", confirmedID: "0", want: false},
		{name: "empty", id: "101", confirmedID: "", want: false},
		{name: "distinct counterpart", id: "101", confirmedID: "55", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.PendingReference{ID: tt.id, ConfirmedID: tt.confirmedID}.Record()
			assert.Equal(t, tt.want, svc.CanViewDifference(r))
		})
	}
}
