package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/metrics"
)

const defaultInterval = 5 * time.Minute

// ServiceParams configure the refresh service.
type ServiceParams struct {
	Logger   *logger.Logger
	Registry *Registry
	Metrics  *metrics.RefreshJobMetrics
	Interval time.Duration
}

// Service executes registered refresh jobs on a fixed cadence. One job
// failing never stops the others; each cycle runs the full registry.
type Service struct {
	logg     *logger.Logger
	registry *Registry
	metrics  *metrics.RefreshJobMetrics
	interval time.Duration
}

// NewService builds a refresh service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	registry := params.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	interval := params.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		logg:     params.Logger,
		registry: registry,
		metrics:  params.Metrics,
		interval: interval,
	}, nil
}

// Run starts the refresh loop until the context is canceled. The first cycle
// runs immediately so the agent starts with fresh data.
func (s *Service) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.runCycle(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logg.Info(ctx, "refresh service context canceled")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// RunOnce executes a single cycle, for one-shot sync commands.
func (s *Service) RunOnce(ctx context.Context) {
	s.runCycle(ctx)
}

func (s *Service) runCycle(ctx context.Context) {
	s.logg.Debug(ctx, "refresh cycle starting")
	for _, job := range s.registry.Jobs() {
		s.runJob(ctx, job)
	}
	s.logg.Debug(ctx, "refresh cycle complete")
}

func (s *Service) runJob(ctx context.Context, job Job) {
	jobCtx := s.logg.WithField(ctx, "job", job.Name())
	start := time.Now()
	err := job.Run(jobCtx)
	duration := time.Since(start)
	s.metrics.ObserveDuration(job.Name(), duration)
	jobCtx = s.logg.WithField(jobCtx, "duration_ms", duration.Milliseconds())
	if err != nil {
		s.logg.Error(jobCtx, "refresh job failed", err)
		s.metrics.IncFailure(job.Name())
		return
	}
	s.logg.Debug(jobCtx, "refresh job completed")
	s.metrics.IncSuccess(job.Name())
}
