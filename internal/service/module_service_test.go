// internal/service/module_service_test.go
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

func loadCatalog(t *testing.T, path string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(path)
	require.NoError(t, err)
	return cat
}

func testCatalogWithHomework(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocole.yaml")
	content := `
modules:
  - code: "M1"
    title: "Psychoéducation"
    objectives: "Comprendre le modèle."
    homework:
      - title: "Lire le document"
        attachment: "m1.pdf"
      - title: "Remplir l'échelle"
      - title: "Tenir l'agenda"
  - code: "M2"
    title: "Activation comportementale"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestModuleService_Overview(t *testing.T) {
	ctx := context.Background()
	cat := loadCatalog(t, testCatalogWithHomework(t))
	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "m1.pdf"), []byte("%PDF"), 0o644))

	mockAdapter := mocks.NewAdapter(t)
	mockAdapter.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
		{"Patient": "alice", "Modules": "M1"},
	}, nil).Once()
	mockAdapter.On("Pull", ctx, sheets.TabExclusions).Return([]sheets.Row{
		{"Patient": "alice", "Module": "M1", "Indices": "1"},
	}, nil).Once()

	svc := NewModuleService(cat, NewProgressService(mockAdapter, cat), assetsDir)
	overviews := svc.Overview(ctx, "alice")
	require.Len(t, overviews, 2, "every catalog module appears, locked or not")

	m1 := overviews[0]
	assert.True(t, m1.Unlocked)
	assert.Equal(t, "Comprendre le modèle.", m1.Objectives)
	require.Len(t, m1.Homework, 2, "excluded item dropped")
	assert.Equal(t, 0, m1.Homework[0].Index)
	assert.False(t, m1.Homework[0].AttachmentMissing)
	assert.Equal(t, 2, m1.Homework[1].Index, "indices stay stable after exclusion")

	m2 := overviews[1]
	assert.False(t, m2.Unlocked)
	assert.Equal(t, "Activation comportementale", m2.Title)
	assert.Empty(t, m2.Objectives, "locked modules expose the title only")
	assert.Empty(t, m2.Homework)
}

func TestModuleService_MissingAttachmentFlagged(t *testing.T) {
	ctx := context.Background()
	cat := loadCatalog(t, testCatalogWithHomework(t))

	mockAdapter := mocks.NewAdapter(t)
	mockAdapter.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
		{"Patient": "alice", "Modules": "M1"},
	}, nil).Once()
	mockAdapter.On("Pull", ctx, sheets.TabExclusions).Return([]sheets.Row{}, nil).Once()

	// Empty assets directory: m1.pdf does not exist.
	svc := NewModuleService(cat, NewProgressService(mockAdapter, cat), t.TempDir())
	overviews := svc.Overview(ctx, "alice")

	require.Len(t, overviews, 2)
	require.NotEmpty(t, overviews[0].Homework)
	assert.True(t, overviews[0].Homework[0].AttachmentMissing)
	assert.Equal(t, "m1.pdf", overviews[0].Homework[0].Attachment)

	// Items without an attachment never carry the flag.
	assert.False(t, overviews[0].Homework[1].AttachmentMissing)
}

func TestModuleService_ExclusionsIgnoredWhenPullFails(t *testing.T) {
	ctx := context.Background()
	cat := loadCatalog(t, testCatalogWithHomework(t))

	mockAdapter := mocks.NewAdapter(t)
	mockAdapter.On("Pull", ctx, sheets.TabProgression).Return([]sheets.Row{
		{"Patient": "alice", "Modules": "M1"},
	}, nil).Once()
	mockAdapter.On("Pull", ctx, sheets.TabExclusions).Return(nil, model.ErrSyncUnavailable).Once()

	svc := NewModuleService(cat, NewProgressService(mockAdapter, cat), t.TempDir())
	overviews := svc.Overview(ctx, "alice")

	require.Len(t, overviews, 2)
	assert.Len(t, overviews[0].Homework, 3, "an unreadable exclusion list hides nothing")
}
