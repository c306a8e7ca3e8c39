package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/models"
)

// SummaryWorker refreshes the process summary on an interval and hands every
// outcome to handler.
type SummaryWorker struct {
	ctx      context.Context
	job      service.SummaryJob
	interval time.Duration
	handler  func(models.ProcessSummary, error)
}

func NewSummaryWorker(ctx context.Context, job service.SummaryJob, interval time.Duration, handler func(models.ProcessSummary, error)) *SummaryWorker {
	return &SummaryWorker{ctx: ctx, job: job, interval: interval, handler: handler}
}

func (w *SummaryWorker) Run() {
	w.job.Start(w.ctx, w.interval, w.handler)
}

func (w *SummaryWorker) Stop() {
	w.job.Stop()
}
