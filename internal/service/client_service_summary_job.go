package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/webcrm-console/models"
)

const defaultSummaryInterval = time.Minute

type summaryJob struct {
	summaryService SummaryService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSummaryJob creates a summaryJob that calls GetProcessSummary on a
// ticker. The job is idle until Start is called.
func NewSummaryJob(summaryService SummaryService) SummaryJob {
	return &summaryJob{summaryService: summaryService}
}

// Start implements SummaryJob. The goroutine exits when ctx is cancelled or
// Stop is called; handler is not invoked after Stop returns.
func (j *summaryJob) Start(ctx context.Context, interval time.Duration, handler func(models.ProcessSummary, error)) {
	if interval <= 0 {
		interval = defaultSummaryInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		refresh := func() {
			summary, err := j.summaryService.GetProcessSummary(jobCtx)
			if jobCtx.Err() != nil {
				return
			}
			handler(summary, err)
		}

		refresh()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				refresh()
			}
		}
	}()
}

// Stop implements SummaryJob. Safe to call when the job is not running.
func (j *summaryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
