// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
)

type confirmationService struct {
	adapter adapter.WebCRMAdapter
	logger  *logger.Logger
}

// NewConfirmationService returns the pending-list workflow. Only categories
// whose Confirmable() is true are accepted; customers and items fail with
// ErrCategoryNotSupported without contacting the API.
func NewConfirmationService(webcrm adapter.WebCRMAdapter, log *logger.Logger) ConfirmationService {
	return &confirmationService{adapter: webcrm, logger: log}
}

func (s *confirmationService) ListPending(ctx context.Context, category models.Category) ([]models.PendingRecord, error) {
	if !category.Confirmable() {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotSupported, category)
	}

	records, err := s.adapter.FetchNotConfirmed(ctx, category)
	if err != nil {
		s.logger.Err(err).Str("category", string(category)).Msg("list pending failed")
		return nil, mapAdapterError(err)
	}
	if records == nil {
		records = []models.PendingRecord{}
	}
	return records, nil
}

func (s *confirmationService) Confirm(ctx context.Context, category models.Category, id models.ID) error {
	return s.decide(ctx, category, id, models.DecisionConfirm)
}

func (s *confirmationService) Dismiss(ctx context.Context, category models.Category, id models.ID) error {
	return s.decide(ctx, category, id, models.DecisionDismiss)
}

func (s *confirmationService) decide(ctx context.Context, category models.Category, id models.ID, d models.Decision) error {
	if !category.Confirmable() {
		return fmt.Errorf("%w: %s", ErrCategoryNotSupported, category)
	}
	if id.IsZero() {
		return fmt.Errorf("%s %s: %w", d, category, ErrInvalidID)
	}

	var err error
	if d == models.DecisionConfirm {
		err = s.adapter.Confirm(ctx, category, id)
	} else {
		err = s.adapter.Dismiss(ctx, category, id)
	}

	log := s.logger.With().
		Str("category", string(category)).
		Str("id", id.String()).
		Str("decision", d.String()).
		Logger()
	if err != nil {
		log.Error().Err(err).Msg("decision failed")
		return mapAdapterError(err)
	}

	log.Info().Msg("decision applied")
	return nil
}

func (s *confirmationService) CanViewDifference(record models.PendingRecord) bool {
	return record.CanViewDifference()
}
