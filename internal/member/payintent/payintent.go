// Package payintent stages pay-by-QR and pay-by-topup intents. Nothing here
// moves money: a valid intent only produces an acknowledgment notice.
package payintent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/catalog"
	"finitefield.org/opai-member/internal/member/notify"
)

// ErrUnknownFlow is returned by ParseFlow for anything other than qr or tether.
var ErrUnknownFlow = errors.New("payintent: unknown flow")

// Flow identifies which pay form staged the intent.
type Flow string

const (
	FlowQR     Flow = "qr"
	FlowTether Flow = "tether"
)

// ParseFlow validates a flow name.
func ParseFlow(value string) (Flow, error) {
	switch Flow(strings.ToLower(strings.TrimSpace(value))) {
	case FlowQR:
		return FlowQR, nil
	case FlowTether:
		return FlowTether, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFlow, value)
	}
}

func (f Flow) shortName() string {
	if f == FlowQR {
		return "QR"
	}
	return "Topup"
}

// IsAllowedPackage reports whether amount is exactly one of the allowed package sizes.
func IsAllowedPackage(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	for _, size := range catalog.AllowedPackages() {
		if amount == float64(size) {
			return true
		}
	}
	return false
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the longest numeric prefix of raw after leading whitespace,
// returning NaN when there is none.
func ParseAmount(raw string) float64 {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")
	match := leadingNumber.FindString(s)
	if match == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		// Out-of-range exponents still yield ±Inf, which is never allowed.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// FormatAmount renders an amount without trailing zeros.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// Result describes the outcome of a submission.
type Result struct {
	Flow     Flow
	Raw      string
	Amount   float64
	Accepted bool
}

// Recorder observes submissions, typically for metrics.
type Recorder interface {
	ObservePayIntent(flow string, accepted bool)
}

// Service validates pay intents and raises the matching notice.
type Service struct {
	notifier notify.Notifier
	logger   *zap.Logger
	recorder Recorder
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used for staged intents.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the submission observer.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// NewService builds a Service raising notices on notifier.
func NewService(notifier notify.Notifier, opts ...Option) *Service {
	s := &Service{
		notifier: notifier,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit parses raw, validates it, and raises exactly one notice. The raw input
// is returned untouched so the form can re-render it.
func (s *Service) Submit(ctx context.Context, flow Flow, raw string) Result {
	amount := ParseAmount(raw)
	result := Result{Flow: flow, Raw: raw, Amount: amount}

	if !IsAllowedPackage(amount) {
		s.notify(ctx, notify.Notice{
			Title:       "Pick a valid package",
			Description: "Valid packages are " + allowedList() + " OP CREDITS.",
			Severity:    notify.SeverityDestructive,
		})
		s.observe(flow, false)
		return result
	}

	result.Accepted = true
	s.logger.Info("pay intent staged",
		zap.String("flow", string(flow)),
		zap.Float64("amount", amount),
	)
	s.notify(ctx, notify.Notice{
		Title:       flow.shortName() + " request staged",
		Description: fmt.Sprintf("We logged your %s OP CREDITS %s intent. Submit proof in app when ready.", FormatAmount(amount), flow),
		Severity:    notify.SeverityDefault,
	})
	s.observe(flow, true)
	return result
}

func (s *Service) notify(ctx context.Context, n notify.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

func (s *Service) observe(flow Flow, accepted bool) {
	if s.recorder != nil {
		s.recorder.ObservePayIntent(string(flow), accepted)
	}
}

// allowedList renders the allowed sizes as "5, 10, 25 and 50".
func allowedList() string {
	sizes := catalog.AllowedPackages()
	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		parts = append(parts, strconv.Itoa(int(size)))
	}
	if len(parts) < 2 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
