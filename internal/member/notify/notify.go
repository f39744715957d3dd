// Package notify models the transient toast surface shared by every interaction.
package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Severity controls how a notice is styled.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notice is a single toast message.
type Notice struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`
}

// Destructive reports whether the notice signals a failure.
func (n Notice) Destructive() bool {
	return n.Severity == SeverityDestructive
}

// Notifier surfaces notices to the member.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, notice Notice)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, notice Notice) {
	f(ctx, notice)
}

// Recorder collects notices raised while handling a single request.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify records the notice, assigning an ID when missing.
func (r *Recorder) Notify(_ context.Context, notice Notice) {
	if notice.ID == "" {
		notice.ID = ulid.Make().String()
	}
	if notice.Severity == "" {
		notice.Severity = SeverityDefault
	}
	r.mu.Lock()
	r.notices = append(r.notices, notice)
	r.mu.Unlock()
}

// Notices returns a copy of the recorded notices in order.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Len returns the number of recorded notices.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notices)
}

// TriggerHeader encodes the recorded notices as an htmx HX-Trigger payload.
// It returns an empty string when nothing was recorded.
func (r *Recorder) TriggerHeader() (string, error) {
	notices := r.Notices()
	if len(notices) == 0 {
		return "", nil
	}
	data, err := json.Marshal(map[string]any{"toast": notices})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Logging wraps next so each notice is also written to the logger.
func Logging(logger *zap.Logger, next Notifier) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NotifierFunc(func(ctx context.Context, notice Notice) {
		fields := []zap.Field{
			zap.String("title", notice.Title),
			zap.String("severity", string(notice.Severity)),
		}
		if notice.Destructive() {
			logger.Warn("notice raised", fields...)
		} else {
			logger.Info("notice raised", fields...)
		}
		if next != nil {
			next.Notify(ctx, notice)
		}
	})
}
