// internal/service/progress_service.go
package service

import (
	"context"
	"strconv"
	"strings"

	"tcc_companion/internal/catalog"
	"tcc_companion/internal/middleware"
	"tcc_companion/internal/model"
	"tcc_companion/internal/sheets"
)

// ProgressService reads the therapist-managed unlock state. Both tabs are
// written by the therapist directly in the spreadsheet (Progression and
// Exclusions are edited in place there, not append-only like exercise tabs)
// and the application only ever reads them. Every call pulls fresh: a
// therapist may unlock a module between two page loads, so caching here
// would be a correctness bug.
type ProgressService interface {
	// UnlockedModules returns the ordered unlocked module codes. A patient
	// with no remote row, or any pull failure, gets the bootstrap default:
	// exactly the protocol's first module.
	UnlockedModules(ctx context.Context, patientID string) []string

	// ExcludedHomework returns module code -> excluded homework indices.
	// Any failure yields an empty map, the conservative default that shows
	// the patient more homework, not less.
	ExcludedHomework(ctx context.Context, patientID string) model.HomeworkExclusions
}

type progressService struct {
	adapter sheets.Adapter
	cat     *catalog.Catalog
}

func NewProgressService(adapter sheets.Adapter, cat *catalog.Catalog) ProgressService {
	return &progressService{adapter: adapter, cat: cat}
}

func (s *progressService) UnlockedModules(ctx context.Context, patientID string) []string {
	logger := middleware.GetLogger(ctx).With("patient_id", patientID)

	rows, err := s.adapter.Pull(ctx, sheets.TabProgression)
	if err != nil {
		logger.Warn("Progression pull failed, falling back to bootstrap module", "error", err)
		return s.cat.Bootstrap()
	}

	for _, row := range rows {
		if strings.TrimSpace(row[sheets.ColPatient]) != patientID {
			continue
		}
		modules := splitList(row[sheets.ColModules], ",")
		// Unknown codes degrade to locked rather than surfacing at all.
		known := modules[:0]
		for _, code := range modules {
			if s.cat.Known(code) {
				known = append(known, code)
			} else {
				logger.Warn("Progression references unknown module, treating as locked", "module", code)
			}
		}
		if len(known) == 0 {
			return s.cat.Bootstrap()
		}
		return known
	}

	logger.Info("No progression row for patient, using bootstrap module")
	return s.cat.Bootstrap()
}

func (s *progressService) ExcludedHomework(ctx context.Context, patientID string) model.HomeworkExclusions {
	logger := middleware.GetLogger(ctx).With("patient_id", patientID)

	rows, err := s.adapter.Pull(ctx, sheets.TabExclusions)
	if err != nil {
		logger.Warn("Exclusions pull failed, excluding nothing", "error", err)
		return model.HomeworkExclusions{}
	}

	exclusions := model.HomeworkExclusions{}
	for _, row := range rows {
		if strings.TrimSpace(row[sheets.ColPatient]) != patientID {
			continue
		}
		moduleCode := strings.TrimSpace(row[sheets.ColModule])
		if moduleCode == "" {
			continue
		}
		for _, token := range splitList(row[sheets.ColIndices], ";") {
			idx, err := strconv.Atoi(token)
			if err != nil {
				// Unparseable index: skip the token, keep the rest of the row.
				logger.Warn("Skipping malformed exclusion index", "module", moduleCode, "token", token)
				continue
			}
			exclusions[moduleCode] = append(exclusions[moduleCode], idx)
		}
	}
	return exclusions
}

// splitList splits on sep, trims whitespace and drops empty tokens,
// preserving file order.
func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
