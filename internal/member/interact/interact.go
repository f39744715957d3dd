// Package interact implements the copy-to-clipboard and share-or-copy
// interactions. Capability failures never escape as errors: they surface as
// notices on the supplied notifier.
package interact

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/notify"
)

var tracer = otel.Tracer("finitefield.org/opai-member/internal/member/interact")

// Recorder observes interaction outcomes, typically for metrics.
type Recorder interface {
	ObserveCopy(outcome string)
	ObserveShare(outcome string)
}

// CopyOutcome reports what CopyValue did.
type CopyOutcome struct {
	Copied bool
	// Err is the capability failure, nil when copied or when no clipboard exists.
	Err error
}

// ShareOutcome reports what ShareLink did.
type ShareOutcome struct {
	Shared   bool
	FellBack bool
	ShareErr error
	Copy     CopyOutcome
}

// Service runs interactions against a capability provider.
type Service struct {
	provider Provider
	notifier notify.Notifier
	logger   *zap.Logger
	recorder Recorder
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used for capability failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the outcome observer.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// NewService builds a Service. A nil provider behaves as one with no capabilities.
func NewService(provider Provider, notifier notify.Notifier, opts ...Option) *Service {
	if provider == nil {
		provider = StaticProvider{}
	}
	s := &Service{
		provider: provider,
		notifier: notifier,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CopyValue writes value to the clipboard and raises exactly one notice:
// "<label> copied" on success, a destructive fallback notice otherwise.
func (s *Service) CopyValue(ctx context.Context, value, label string) CopyOutcome {
	ctx, span := tracer.Start(ctx, "interact.CopyValue")
	defer span.End()
	span.SetAttributes(attribute.String("interact.label", label))

	outcome := s.copy(ctx, value)
	if outcome.Copied {
		s.notify(ctx, notify.Notice{
			Title:       label + " copied",
			Description: value,
			Severity:    notify.SeverityDefault,
		})
		s.observeCopy("copied")
		return outcome
	}

	if outcome.Err != nil {
		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, outcome.Err.Error())
		s.logger.Warn("clipboard write failed", zap.String("label", label), zap.Error(outcome.Err))
		s.observeCopy("failed")
	} else {
		s.observeCopy("unavailable")
	}
	s.notify(ctx, notify.Notice{
		Title:       "Copy not available",
		Description: "Select the text and copy manually.",
		Severity:    notify.SeverityDestructive,
	})
	return outcome
}

// ShareLink opens the share sheet when one exists. A successful share raises no
// notice; a missing, failed or cancelled share falls back to CopyValue once.
func (s *Service) ShareLink(ctx context.Context, value, label string) ShareOutcome {
	ctx, span := tracer.Start(ctx, "interact.ShareLink")
	defer span.End()
	span.SetAttributes(attribute.String("interact.label", label))

	var outcome ShareOutcome
	if sheet, ok := s.provider.ShareSheet(ctx); ok && sheet != nil {
		payload := Payload{
			Title: label,
			Text:  label + " - " + value,
			URL:   value,
		}
		err := guard(func() error { return sheet.Share(ctx, payload) })
		if err == nil {
			outcome.Shared = true
			s.observeShare("shared")
			return outcome
		}
		outcome.ShareErr = err
		span.RecordError(err)
		s.logger.Info("share sheet did not complete", zap.String("label", label), zap.Error(err))
	}

	outcome.FellBack = true
	s.observeShare("fallback")
	outcome.Copy = s.CopyValue(ctx, value, label)
	return outcome
}

func (s *Service) copy(ctx context.Context, value string) CopyOutcome {
	writer, ok := s.provider.Clipboard(ctx)
	if !ok || writer == nil {
		return CopyOutcome{}
	}
	if err := guard(func() error { return writer.WriteText(ctx, value) }); err != nil {
		return CopyOutcome{Err: err}
	}
	return CopyOutcome{Copied: true}
}

func (s *Service) notify(ctx context.Context, n notify.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

func (s *Service) observeCopy(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveCopy(outcome)
	}
}

func (s *Service) observeShare(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveShare(outcome)
	}
}

// guard converts a panicking capability into ErrCapabilityFailed.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCapabilityFailed, r)
		}
	}()
	return fn()
}
