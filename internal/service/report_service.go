// internal/service/report_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tcc_companion/internal/middleware"
	"tcc_companion/internal/model"
	"tcc_companion/internal/report"
	"tcc_companion/internal/store"
)

// ReportService compiles the session tables into the exportable PDF.
type ReportService interface {
	// Report returns the PDF bytes and the download filename, which embeds
	// the patient identifier.
	Report(ctx context.Context, patientID string) ([]byte, string, error)
}

type reportService struct {
	sessions *store.Sessions
}

func NewReportService(sessions *store.Sessions) ReportService {
	return &reportService{sessions: sessions}
}

func (s *reportService) Report(ctx context.Context, patientID string) ([]byte, string, error) {
	logger := middleware.GetLogger(ctx).With("patient_id", patientID)

	sess := s.sessions.Get(patientID)
	records := make(map[model.RecordKind][]model.Record, len(model.AllKinds()))
	for _, kind := range model.AllKinds() {
		records[kind] = sess.All(kind)
	}

	doc := report.Compile(patientID, records, time.Now())
	data, err := report.Render(doc)
	if err != nil {
		logger.Error("Failed to render report", "error", err)
		return nil, "", model.NewAppError("REPORT_FAILED", "La génération du rapport a échoué.", "", model.ErrInternalServer)
	}

	filename := fmt.Sprintf("rapport_%s.pdf", sanitizeFilename(patientID))
	logger.Info("Report generated", "bytes", len(data), "filename", filename)
	return data, filename, nil
}

// sanitizeFilename keeps the opaque patient key safe inside a filename.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
