// internal/service/report_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"tcc_companion/internal/model"
	"tcc_companion/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Report(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewSessions()
	now := time.Now()

	sess := sessions.Get("alice")
	require.NoError(t, sess.Append(model.KindScale, model.NewScaleRecord("alice", now, "Beck", []int{0, 8, 8, 0, 8, 0, 8})))
	require.NoError(t, sess.Append(model.KindSleep, model.NewSleepRecord("alice", now, "23:30", "07:15", 15, 30, "85%")))

	svc := NewReportService(sessions)
	data, filename, err := svc.Report(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "rapport_alice.pdf", filename)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportService_Report_EmptySession(t *testing.T) {
	// A patient with no records still gets a full report, every section
	// carrying its explicit "no data" line.
	svc := NewReportService(store.NewSessions())
	data, filename, err := svc.Report(context.Background(), "bob")
	require.NoError(t, err)

	assert.Equal(t, "rapport_bob.pdf", filename)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "alice", want: "alice"},
		{in: "p-42_b", want: "p-42_b"},
		{in: "../etc/passwd", want: "___etc_passwd"},
		{in: "été 2026", want: "_t__2026"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in))
	}
}
