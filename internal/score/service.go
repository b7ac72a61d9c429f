package score

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	scoremetrics "medcalc/internal/score/metrics"
	dErrors "medcalc/pkg/domain-errors"
	"medcalc/pkg/requestcontext"
)

// Service is the dispatcher: the single entry point turning a score id and a
// raw parameter mapping into a normalized Result or one classified error.
// Each dispatch is a single synchronous pass over the immutable registry;
// concurrent calls need no coordination.
type Service struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *scoremetrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *scoremetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs the dispatcher over a built registry.
func NewService(registry *Registry, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	svc := &Service{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   otel.Tracer("medcalc/score"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.metrics.SetRegistrySize(registry.Len())
	return svc, nil
}

// Registry exposes the immutable registry for catalog reads.
func (s *Service) Registry() *Registry { return s.registry }

// Dispatch runs lookup, validation, computation, and normalization for one
// score id. Failures at any stage short-circuit into exactly one of the three
// error kinds; a raw calculator error or panic never reaches the caller.
// No retries: inputs are deterministic, so a retry would reproduce the
// same failure.
func (s *Service) Dispatch(ctx context.Context, id string, raw map[string]any) (*Result, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "score.dispatch",
		trace.WithAttributes(attribute.String("score.id", id)))
	defer span.End()

	res, err := s.dispatch(id, raw)

	outcome := "ok"
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
	}
	span.SetAttributes(attribute.String("score.outcome", outcome))
	s.metrics.ObserveDispatch(id, outcome, time.Since(start))

	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			// Full failure detail stays server-side; the caller only ever
			// sees the generic internal_error envelope.
			s.logger.ErrorContext(ctx, "score dispatch failed",
				"request_id", requestcontext.RequestID(ctx),
				"score_id", id,
				"error", err,
			)
		}
		return nil, err
	}

	s.logger.DebugContext(ctx, "score dispatched",
		"request_id", requestcontext.RequestID(ctx),
		"score_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (s *Service) dispatch(id string, raw map[string]any) (*Result, error) {
	def, err := s.registry.Lookup(id)
	if err != nil {
		return nil, err
	}

	params, err := Validate(def.Params, raw)
	if err != nil {
		return nil, err
	}

	res, err := s.compute(def, params)
	if err != nil {
		// A calculator flags its own bad-input conditions with
		// CodeValidation; everything else it returns is a defect.
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "score computation failed").
			WithDetails(map[string]any{"score_id": id})
	}

	if err := Normalize(res); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "score output contract violated").
			WithDetails(map[string]any{"score_id": id})
	}
	return res, nil
}

// compute invokes the calculator inside a failure boundary so a panicking
// unit surfaces as a classified internal error instead of unwinding through
// the caller.
func (s *Service) compute(def Definition, p Params) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = dErrors.Newf(dErrors.CodeInternal, "score %s panicked: %v", def.ID, r)
		}
	}()
	return def.Compute(p)
}
