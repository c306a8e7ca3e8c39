package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/validators"
	"github.com/MKhiriev/webcrm-console/models"
)

type customerService struct {
	adapter adapter.WebCRMAdapter
	logger  *logger.Logger
}

func NewCustomerService(webcrm adapter.WebCRMAdapter, log *logger.Logger) CustomerService {
	return &customerService{adapter: webcrm, logger: log}
}

func (s *customerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.adapter.GetCustomers(ctx)
	return customers, mapAdapterError(err)
}

func (s *customerService) GetCustomer(ctx context.Context, id models.ID) (models.Customer, error) {
	customer, err := s.adapter.FetchCustomer(ctx, id)
	return customer, mapAdapterError(err)
}

func (s *customerService) GetCustomerSummary(ctx context.Context, id models.ID) (models.CustomerSummary, error) {
	summary, err := s.adapter.GetCustomerSummary(ctx, id)
	return summary, mapAdapterError(err)
}

type destinationService struct {
	adapter   adapter.WebCRMAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewDestinationService(webcrm adapter.WebCRMAdapter, validator validators.Validator, log *logger.Logger) DestinationService {
	return &destinationService{adapter: webcrm, validator: validator, logger: log}
}

func (s *destinationService) ListByCustomer(ctx context.Context, customerID models.ID) ([]models.Destination, error) {
	list, err := s.adapter.FetchDestinationsByCustomer(ctx, customerID)
	return list, mapAdapterError(err)
}

func (s *destinationService) Get(ctx context.Context, id models.ID) (models.Destination, error) {
	d, err := s.adapter.FetchDestinationByID(ctx, id)
	return d, mapAdapterError(err)
}

func (s *destinationService) Create(ctx context.Context, d models.Destination) (models.Destination, error) {
	if err := s.validator.Validate(ctx, d); err != nil {
		return models.Destination{}, err
	}

	created, err := s.adapter.CreateDestination(ctx, d)
	if err != nil {
		s.logger.Err(err).Str("func", "destinationService.Create").Msg("create destination failed")
		return models.Destination{}, mapAdapterError(err)
	}
	return created, nil
}

func (s *destinationService) Update(ctx context.Context, d models.Destination) (models.Destination, error) {
	if d.ID.IsZero() {
		return models.Destination{}, fmt.Errorf("update destination: %w", ErrInvalidID)
	}
	if err := s.validator.Validate(ctx, d); err != nil {
		return models.Destination{}, err
	}

	updated, err := s.adapter.UpdateDestination(ctx, d)
	if err != nil {
		s.logger.Err(err).Str("func", "destinationService.Update").Msg("update destination failed")
		return models.Destination{}, mapAdapterError(err)
	}
	return updated, nil
}

func (s *destinationService) Delete(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		return fmt.Errorf("delete destination: %w", ErrInvalidID)
	}
	return mapAdapterError(s.adapter.DeleteDestination(ctx, id))
}

func (s *destinationService) GetTypes(ctx context.Context) ([]models.DestinationType, error) {
	types, err := s.adapter.GetDestinationTypes(ctx)
	return types, mapAdapterError(err)
}

type referenceService struct {
	adapter   adapter.WebCRMAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewReferenceService(webcrm adapter.WebCRMAdapter, validator validators.Validator, log *logger.Logger) ReferenceService {
	return &referenceService{adapter: webcrm, validator: validator, logger: log}
}

func (s *referenceService) ListByCustomer(ctx context.Context, customerID models.ID) ([]models.Reference, error) {
	list, err := s.adapter.FetchReferencesByCustomer(ctx, customerID)
	return list, mapAdapterError(err)
}

func (s *referenceService) Get(ctx context.Context, id models.ID) (models.Reference, error) {
	r, err := s.adapter.FetchReferenceByID(ctx, id)
	return r, mapAdapterError(err)
}

func (s *referenceService) Create(ctx context.Context, r models.Reference) (models.Reference, error) {
	if err := s.validator.Validate(ctx, r); err != nil {
		return models.Reference{}, err
	}

	created, err := s.adapter.CreateReference(ctx, r)
	if err != nil {
		s.logger.Err(err).Str("func", "referenceService.Create").Msg("create reference failed")
		return models.Reference{}, mapAdapterError(err)
	}
	return created, nil
}

func (s *referenceService) Update(ctx context.Context, r models.Reference) (models.Reference, error) {
	if r.ID.IsZero() {
		return models.Reference{}, fmt.Errorf("update reference: %w", ErrInvalidID)
	}
	if err := s.validator.Validate(ctx, r); err != nil {
		return models.Reference{}, err
	}

	updated, err := s.adapter.UpdateReference(ctx, r)
	if err != nil {
		s.logger.Err(err).Str("func", "referenceService.Update").Msg("update reference failed")
		return models.Reference{}, mapAdapterError(err)
	}
	return updated, nil
}

func (s *referenceService) Delete(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		return fmt.Errorf("delete reference: %w", ErrInvalidID)
	}
	return mapAdapterError(s.adapter.DeleteReference(ctx, id))
}
