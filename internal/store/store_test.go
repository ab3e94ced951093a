// internal/store/store_test.go
package store

import (
	"fmt"
	"testing"
	"time"

	"tcc_companion/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AppendPreservesSubmissionOrder(t *testing.T) {
	sessions := NewSessions()
	sess := sessions.Get("patient-1")
	now := time.Now()

	const n = 10
	for i := 0; i < n; i++ {
		rec := model.NewActivityRecord("patient-1", now, fmt.Sprintf("activite-%d", i), 10, 5, 5)
		require.NoError(t, sess.Append(model.KindActivity, rec))
	}

	all := sess.All(model.KindActivity)
	require.Len(t, all, n)
	for i, rec := range all {
		ar := rec.(*model.ActivityRecord)
		assert.Equal(t, fmt.Sprintf("activite-%d", i), ar.Activity)
	}
	assert.Equal(t, n, sess.Count(model.KindActivity))
}

func TestSession_AppendRejectsInvalidRecords(t *testing.T) {
	sess := NewSessions().Get("patient-1")
	now := time.Now()

	tests := []struct {
		name string
		kind model.RecordKind
		rec  model.Record
	}{
		{
			name: "nil record",
			kind: model.KindSleep,
			rec:  nil,
		},
		{
			name: "kind mismatch",
			kind: model.KindSleep,
			rec:  model.NewActivityRecord("patient-1", now, "marche", 30, 5, 5),
		},
		{
			name: "unknown kind",
			kind: model.RecordKind("unknown"),
			rec:  model.NewActivityRecord("patient-1", now, "marche", 30, 5, 5),
		},
		{
			name: "wrong patient",
			kind: model.KindActivity,
			rec:  model.NewActivityRecord("patient-2", now, "marche", 30, 5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sess.Append(tt.kind, tt.rec)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}

	// Nothing partial may have been stored.
	assert.Zero(t, sess.Count(model.KindSleep))
	assert.Zero(t, sess.Count(model.KindActivity))
}

func TestSession_AllReturnsIndependentCopy(t *testing.T) {
	sess := NewSessions().Get("p")
	rec := model.NewBalanceRecord("p", time.Now(), "option", "plus", "moins", "court")
	require.NoError(t, sess.Append(model.KindBalance, rec))

	first := sess.All(model.KindBalance)
	first[0] = nil

	second := sess.All(model.KindBalance)
	require.Len(t, second, 1)
	assert.NotNil(t, second[0], "mutating a returned slice must not disturb the audit trail")
}

func TestSessions_GetIsScopedPerPatient(t *testing.T) {
	sessions := NewSessions()
	a := sessions.Get("a")
	b := sessions.Get("b")

	require.NoError(t, a.Append(model.KindActivity, model.NewActivityRecord("a", time.Now(), "lecture", 20, 6, 6)))

	assert.Equal(t, 1, a.Count(model.KindActivity))
	assert.Zero(t, b.Count(model.KindActivity))
	assert.Same(t, a, sessions.Get("a"), "same patient gets the same session")
}
