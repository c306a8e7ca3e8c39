package service

import (
	"context"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
)

type summaryService struct {
	adapter adapter.WebCRMAdapter
	logger  *logger.Logger
}

func NewSummaryService(webcrm adapter.WebCRMAdapter, log *logger.Logger) SummaryService {
	return &summaryService{adapter: webcrm, logger: log}
}

func (s *summaryService) GetProcessSummary(ctx context.Context) (models.ProcessSummary, error) {
	summary, err := s.adapter.GetProcessSummary(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "summaryService.GetProcessSummary").Msg("summary unavailable")
		return models.ProcessSummary{}, mapAdapterError(err)
	}
	return summary, nil
}

func (s *summaryService) HasElementsToConfirm(summary *models.ProcessSummary) bool {
	return summary.HasElementsToConfirm()
}
