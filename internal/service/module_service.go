// internal/service/module_service.go
package service

import (
	"context"
	"os"
	"path/filepath"

	"tcc_companion/internal/catalog"
	"tcc_companion/internal/model"
)

// ModuleService merges the static protocol catalog with a patient's unlock
// and exclusion state into what the presentation layer may show.
type ModuleService interface {
	Overview(ctx context.Context, patientID string) []*model.ModuleOverview
}

type moduleService struct {
	cat       *catalog.Catalog
	progress  ProgressService
	assetsDir string
}

func NewModuleService(cat *catalog.Catalog, progress ProgressService, assetsDir string) ModuleService {
	return &moduleService{cat: cat, progress: progress, assetsDir: assetsDir}
}

func (s *moduleService) Overview(ctx context.Context, patientID string) []*model.ModuleOverview {
	unlocked := s.progress.UnlockedModules(ctx, patientID)
	excluded := s.progress.ExcludedHomework(ctx, patientID)

	unlockedSet := make(map[string]bool, len(unlocked))
	for _, code := range unlocked {
		unlockedSet[code] = true
	}

	var out []*model.ModuleOverview
	for _, code := range s.cat.Codes() {
		def, _ := s.cat.Get(code)
		overview := &model.ModuleOverview{
			Code:     def.Code,
			Title:    def.Title,
			Unlocked: unlockedSet[code],
		}
		if !overview.Unlocked {
			// Locked modules expose the title only.
			out = append(out, overview)
			continue
		}

		overview.Description = def.Description
		overview.Objectives = def.Objectives
		overview.Documents = def.Documents
		overview.Steps = def.Steps
		overview.Homework = s.homeworkViews(def, excluded[code])
		out = append(out, overview)
	}
	return out
}

// homeworkViews filters the therapist-excluded items and flags attachments
// missing on disk. A missing file degrades to a notice, never an error.
func (s *moduleService) homeworkViews(def *model.ModuleDefinition, excludedIdx []int) []model.HomeworkView {
	excluded := make(map[int]bool, len(excludedIdx))
	for _, idx := range excludedIdx {
		excluded[idx] = true
	}

	var views []model.HomeworkView
	for i, item := range def.Homework {
		if excluded[i] {
			continue
		}
		view := model.HomeworkView{Index: i, Title: item.Title, Attachment: item.Attachment}
		if item.Attachment != "" {
			if _, err := os.Stat(filepath.Join(s.assetsDir, item.Attachment)); err != nil {
				view.AttachmentMissing = true
			}
		}
		views = append(views, view)
	}
	return views
}
