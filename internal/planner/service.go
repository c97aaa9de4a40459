package planner

import (
	"context"
	"time"
)

// Service wraps the pure pipeline with logging and metrics. Concurrent
// calls are fully independent; the Service holds no per-request state.
type Service struct {
	log     Logger
	metrics MetricsRecorder
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService constructs a planning service.
func NewService(opts ...Option) *Service {
	s := &Service{log: NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan evaluates one request. The context is accepted for interface
// symmetry with transport callers; the computation itself never blocks.
func (s *Service) Plan(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	res, err := Plan(req)
	if s.metrics != nil {
		s.metrics.Observe(ctx, "plan", err == nil, time.Since(start))
	}
	if err != nil {
		s.log.Errorf("plan failed: %v", err)
		return Result{}, err
	}
	s.log.Infof("planned %d targets across %d plates (%d wells)", len(res.Mix), len(res.Summary), len(res.Layout))
	return res, nil
}
