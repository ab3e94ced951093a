// internal/service/progress_service_test.go
package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tcc_companion/internal/catalog"
	"tcc_companion/internal/model"
	"tcc_companion/internal/sheets"
	"tcc_companion/internal/sheets/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocole.yaml")
	content := `
modules:
  - code: "M1"
    title: "Psychoéducation"
  - code: "M2"
    title: "Activation"
  - code: "M3"
    title: "Restructuration"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cat, err := catalog.Load(path)
	require.NoError(t, err)
	return cat
}

func TestProgressService_UnlockedModules(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)

	tests := []struct {
		name      string
		setupMock func(m *mocks.Adapter)
		want      []string
	}{
		{
			name: "patient row found",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
					{"Patient": "bob", "Modules": "M1"},
					{"Patient": "alice", "Modules": "M1, M2"},
				}, nil).Once()
			},
			want: []string{"M1", "M2"},
		},
		{
			name: "whitespace and empty tokens dropped, file order kept",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
					{"Patient": "alice", "Modules": " M3 ,, M1 , "},
				}, nil).Once()
			},
			want: []string{"M3", "M1"},
		},
		{
			name: "unknown module code degrades to locked",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
					{"Patient": "alice", "Modules": "M1,M99,M2"},
				}, nil).Once()
			},
			want: []string{"M1", "M2"},
		},
		{
			name: "no row for patient falls back to bootstrap",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
					{"Patient": "bob", "Modules": "M1,M2,M3"},
				}, nil).Once()
			},
			want: []string{"M1"},
		},
		{
			name: "pull failure falls back to bootstrap",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return(nil, model.ErrSyncUnavailable).Once()
			},
			want: []string{"M1"},
		},
		{
			name: "row with only unknown codes falls back to bootstrap",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
					{"Patient": "alice", "Modules": "M99"},
				}, nil).Once()
			},
			want: []string{"M1"},
		},
		{
			name: "salvageable row without modules field falls back to bootstrap",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
					{"Patient": "alice"},
				}, nil).Once()
			},
			want: []string{"M1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdapter := mocks.NewAdapter(t)
			tt.setupMock(mockAdapter)
			svc := NewProgressService(mockAdapter, cat)

			got := svc.UnlockedModules(ctx, "alice")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressService_ExcludedHomework(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)

	tests := []struct {
		name      string
		setupMock func(m *mocks.Adapter)
		want      model.HomeworkExclusions
	}{
		{
			name: "exclusions for two modules",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabExclusions).Return([]sheets.Row{
					{"Patient": "alice", "Module": "M1", "Indices": "0;2"},
					{"Patient": "bob", "Module": "M1", "Indices": "1"},
					{"Patient": "alice", "Module": "M2", "Indices": "1"},
				}, nil).Once()
			},
			want: model.HomeworkExclusions{"M1": {0, 2}, "M2": {1}},
		},
		{
			name: "malformed index skipped, rest of row kept",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabExclusions).Return([]sheets.Row{
					{"Patient": "alice", "Module": "M1", "Indices": "0;deux;2"},
				}, nil).Once()
			},
			want: model.HomeworkExclusions{"M1": {0, 2}},
		},
		{
			name: "no row for patient means nothing excluded",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabExclusions).Return([]sheets.Row{}, nil).Once()
			},
			want: model.HomeworkExclusions{},
		},
		{
			name: "pull failure means nothing excluded",
			setupMock: func(m *mocks.Adapter) {
				m.On("Pull", ctx, sheets.TabExclusions).Return(nil, model.ErrSyncUnavailable).Once()
			},
			want: model.HomeworkExclusions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdapter := mocks.NewAdapter(t)
			tt.setupMock(mockAdapter)
			svc := NewProgressService(mockAdapter, cat)

			got := svc.ExcludedHomework(ctx, "alice")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressService_RefreshesOnEveryCall(t *testing.T) {
	// Unlock state must be pulled fresh each time: a therapist may have
	// unlocked a module between two page loads.
	ctx := context.Background()
	cat := testCatalog(t)
	mockAdapter := mocks.NewAdapter(t)

	mockAdapter.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
		{"Patient": "alice", "Modules": "M1"},
	}, nil).Once()
	mockAdapter.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
		{"Patient": "alice", "Modules": "M1,M2"},
	}, nil).Once()

	svc := NewProgressService(mockAdapter, cat)
	assert.Equal(t, []string{"M1"}, svc.UnlockedModules(ctx, "alice"))
	assert.Equal(t, []string{"M1", "M2"}, svc.UnlockedModules(ctx, "alice"))
}
