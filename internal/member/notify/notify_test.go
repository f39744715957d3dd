package notify

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorderAssignsIDsAndDefaults(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	rec.Notify(context.Background(), Notice{Title: "Referral link copied", Description: "https://example.com"})
	rec.Notify(context.Background(), Notice{ID: "fixed", Title: "Copy not available", Severity: SeverityDestructive})

	notices := rec.Notices()
	require.Len(t, notices, 2)
	require.NotEmpty(t, notices[0].ID)
	require.Equal(t, SeverityDefault, notices[0].Severity)
	require.Equal(t, "fixed", notices[1].ID)
	require.True(t, notices[1].Destructive())

	notices[0].Title = "changed"
	require.Equal(t, "Referral link copied", rec.Notices()[0].Title, "Notices must return a copy")
}

func TestRecorderConcurrentNotify(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Notify(context.Background(), Notice{Title: "x"})
		}()
	}
	wg.Wait()
	require.Equal(t, 32, rec.Len())
}

func TestTriggerHeader(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	header, err := rec.TriggerHeader()
	require.NoError(t, err)
	require.Empty(t, header)

	rec.Notify(context.Background(), Notice{Title: "QR request staged", Description: "25"})
	header, err = rec.TriggerHeader()
	require.NoError(t, err)

	var payload struct {
		Toast []Notice `json:"toast"`
	}
	require.NoError(t, json.Unmarshal([]byte(header), &payload))
	require.Len(t, payload.Toast, 1)
	require.Equal(t, "QR request staged", payload.Toast[0].Title)
}

func TestLoggingForwardsAndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	rec := NewRecorder()
	n := Logging(zap.New(core), rec)

	n.Notify(context.Background(), Notice{Title: "ok", Severity: SeverityDefault})
	n.Notify(context.Background(), Notice{Title: "bad", Severity: SeverityDestructive})

	require.Equal(t, 2, rec.Len())
	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
}
