package interact

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrClipboardDenied reports that the client refused clipboard access.
	ErrClipboardDenied = errors.New("interact: clipboard permission denied")
	// ErrShareCancelled reports that the share sheet was dismissed.
	ErrShareCancelled = errors.New("interact: share cancelled")
	// ErrCapabilityFailed reports any other capability failure.
	ErrCapabilityFailed = errors.New("interact: capability failed")
)

// ClipboardWriter writes text to the client clipboard.
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
}

// Payload is handed to the native share sheet.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// ShareSheet opens the native share sheet.
type ShareSheet interface {
	Share(ctx context.Context, payload Payload) error
}

// Provider hands out client capabilities. The boolean reports availability;
// a false result means the capability does not exist, not that it failed.
type Provider interface {
	Clipboard(ctx context.Context) (ClipboardWriter, bool)
	ShareSheet(ctx context.Context) (ShareSheet, bool)
}

// ClipboardFunc adapts a function to ClipboardWriter.
type ClipboardFunc func(ctx context.Context, text string) error

// WriteText calls f(ctx, text).
func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// ShareFunc adapts a function to ShareSheet.
type ShareFunc func(ctx context.Context, payload Payload) error

// Share calls f(ctx, payload).
func (f ShareFunc) Share(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

// StaticProvider returns fixed capabilities. Nil fields are unavailable.
type StaticProvider struct {
	Writer ClipboardWriter
	Sheet  ShareSheet
}

// Clipboard implements Provider.
func (p StaticProvider) Clipboard(context.Context) (ClipboardWriter, bool) {
	return p.Writer, p.Writer != nil
}

// ShareSheet implements Provider.
func (p StaticProvider) ShareSheet(context.Context) (ShareSheet, bool) {
	return p.Sheet, p.Sheet != nil
}

// Outcome is what the client reported after attempting a capability.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeDenied      Outcome = "denied"
	OutcomeCancelled   Outcome = "cancelled"
	OutcomeError       Outcome = "error"
	OutcomeUnavailable Outcome = "unavailable"
)

// ParseOutcome normalises a reported outcome. Empty or unknown values are
// treated as unavailable.
func ParseOutcome(value string) Outcome {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(value))); o {
	case OutcomeOK, OutcomeDenied, OutcomeCancelled, OutcomeError:
		return o
	default:
		return OutcomeUnavailable
	}
}

// ReportedProvider replays capability outcomes reported by the browser shim.
type ReportedProvider struct {
	clipboard Outcome
	share     Outcome
}

// NewReportedProvider builds a provider from the raw clipboard and share outcomes.
func NewReportedProvider(clipboard, share string) ReportedProvider {
	return ReportedProvider{
		clipboard: ParseOutcome(clipboard),
		share:     ParseOutcome(share),
	}
}

// Clipboard implements Provider.
func (p ReportedProvider) Clipboard(context.Context) (ClipboardWriter, bool) {
	if p.clipboard == OutcomeUnavailable {
		return nil, false
	}
	err := clipboardError(p.clipboard)
	return ClipboardFunc(func(context.Context, string) error { return err }), true
}

// ShareSheet implements Provider.
func (p ReportedProvider) ShareSheet(context.Context) (ShareSheet, bool) {
	if p.share == OutcomeUnavailable {
		return nil, false
	}
	err := shareError(p.share)
	return ShareFunc(func(context.Context, Payload) error { return err }), true
}

func clipboardError(o Outcome) error {
	switch o {
	case OutcomeOK:
		return nil
	case OutcomeDenied:
		return ErrClipboardDenied
	default:
		return ErrCapabilityFailed
	}
}

func shareError(o Outcome) error {
	switch o {
	case OutcomeOK:
		return nil
	case OutcomeCancelled:
		return ErrShareCancelled
	default:
		return ErrCapabilityFailed
	}
}
