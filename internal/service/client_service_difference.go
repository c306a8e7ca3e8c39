package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
	"golang.org/x/sync/errgroup"
)

type differenceService struct {
	adapter adapter.WebCRMAdapter
	logger  *logger.Logger
}

func NewDifferenceService(webcrm adapter.WebCRMAdapter, log *logger.Logger) DifferenceService {
	return &differenceService{adapter: webcrm, logger: log}
}

// GetDifferences returns the diff rows in server order. An empty, non-nil
// slice means there is nothing to show and is not an error.
func (s *differenceService) GetDifferences(ctx context.Context, category models.Category, id models.ID) ([]models.FieldDifference, error) {
	if !category.Confirmable() {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotSupported, category)
	}

	diffs, err := s.adapter.GetDifference(ctx, category, id)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if diffs == nil {
		diffs = []models.FieldDifference{}
	}
	return diffs, nil
}

// GetCounterpartLabel names the customer of the confirmed record, falling
// back to the record's own description.
func (s *differenceService) GetCounterpartLabel(ctx context.Context, category models.Category, confirmedID models.ID) (string, error) {
	if confirmedID.IsZero() {
		return "", ErrNoCounterpart
	}

	switch category {
	case models.CategoryReferences:
		ref, err := s.adapter.FetchReferenceByID(ctx, confirmedID)
		if err != nil {
			return "", mapAdapterError(err)
		}
		return firstNonEmpty(ref.CustomerDescription, ref.FullName()), nil
	case models.CategoryDestinations:
		dest, err := s.adapter.FetchDestinationByID(ctx, confirmedID)
		if err != nil {
			return "", mapAdapterError(err)
		}
		return firstNonEmpty(dest.CustomerDescription, dest.Descr1), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrCategoryNotSupported, category)
	}
}

func (s *differenceService) Load(ctx context.Context, category models.Category, id, confirmedID models.ID) models.DifferenceView {
	var view models.DifferenceView

	// the goroutines never return an error so one failure cannot cancel the other
	var g errgroup.Group
	g.Go(func() error {
		view.Differences, view.DifferencesErr = s.GetDifferences(ctx, category, id)
		return nil
	})
	g.Go(func() error {
		view.CounterpartLabel, view.CounterpartErr = s.GetCounterpartLabel(ctx, category, confirmedID)
		return nil
	})
	_ = g.Wait()

	if view.DifferencesErr != nil {
		s.logger.Err(view.DifferencesErr).Str("id", id.String()).Msg("differences unavailable")
	}
	if view.CounterpartErr != nil {
		s.logger.Warn().Err(view.CounterpartErr).Str("confirmed_id", confirmedID.String()).Msg("counterpart label unavailable")
	}
	return view
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
