// internal/sheets/adapter_test.go
package sheets

import (
	"context"
	"testing"

	"tcc_companion/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestRowsToMaps(t *testing.T) {
	header := []string{"Patient", "Modules", "Note"}

	tests := []struct {
		name string
		rows [][]any
		want []Row
	}{
		{
			name: "complete rows",
			rows: [][]any{
				{"alice", "M1,M2", "ok"},
				{"bob", "M1", "x"},
			},
			want: []Row{
				{"Patient": "alice", "Modules": "M1,M2", "Note": "ok"},
				{"Patient": "bob", "Modules": "M1", "Note": "x"},
			},
		},
		{
			name: "short row keeps salvageable fields",
			rows: [][]any{{"alice"}},
			want: []Row{{"Patient": "alice"}},
		},
		{
			name: "extra cells beyond header are ignored",
			rows: [][]any{{"alice", "M1", "n", "surplus"}},
			want: []Row{{"Patient": "alice", "Modules": "M1", "Note": "n"}},
		},
		{
			name: "numeric cells become strings",
			rows: [][]any{{123, 4.5, true}},
			want: []Row{{"Patient": "123", "Modules": "4.5", "Note": "true"}},
		},
		{
			name: "no rows",
			rows: nil,
			want: []Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rowsToMaps(header, tt.rows))
		})
	}
}

func TestDisabledAdapter(t *testing.T) {
	a := Disabled()
	ctx := context.Background()

	err := a.Push(ctx, "Beck", []any{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSyncUnavailable)

	_, err = a.Pull(ctx, "Progression")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSyncUnavailable)

	err = a.EnsureTab(ctx, "Beck", []string{"ID"})
	assert.ErrorIs(t, err, model.ErrSyncUnavailable)
}

func TestIsMissingTab(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unable to parse range",
			err:  &googleapi.Error{Code: 400, Message: "Unable to parse range: Sommeil"},
			want: true,
		},
		{
			name: "not found",
			err:  &googleapi.Error{Code: 404, Message: "Requested entity was not found."},
			want: true,
		},
		{
			name: "auth failure",
			err:  &googleapi.Error{Code: 403, Message: "The caller does not have permission"},
			want: false,
		},
		{
			name: "plain error",
			err:  assert.AnError,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMissingTab(tt.err))
		})
	}
}

type recordingAdapter struct {
	tabs []string
}

func (r *recordingAdapter) Push(context.Context, string, []any) error { return nil }
func (r *recordingAdapter) Pull(context.Context, string) ([]Row, error) {
	return []Row{}, nil
}
func (r *recordingAdapter) EnsureTab(_ context.Context, tab string, _ []string) error {
	r.tabs = append(r.tabs, tab)
	return nil
}

func TestProvision_CreatesEveryTab(t *testing.T) {
	rec := &recordingAdapter{}
	require.NoError(t, Provision(context.Background(), rec))

	want := []string{"Beck", "Sommeil", "Activites", "Restructuration", "Balance_Decisionnelle", TabProgression, TabExclusions}
	assert.Equal(t, want, rec.tabs)
}

func TestKindTabsAndHeaders(t *testing.T) {
	// Every record kind must map to a provisionable tab with a header.
	for _, kind := range model.AllKinds() {
		assert.NotEmpty(t, kind.Tab(), "kind %s has no tab", kind)
		assert.GreaterOrEqual(t, len(kind.Header()), 4, "kind %s header too short", kind)
	}
}
