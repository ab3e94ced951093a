// internal/service/record_service.go
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tcc_companion/internal/middleware"
	"tcc_companion/internal/model"
	"tcc_companion/internal/repository"
	"tcc_companion/internal/sheets"
	"tcc_companion/internal/store"

	"gorm.io/gorm"
)

// RecordService accepts validated exercise submissions: append to the
// session store, archive locally, then mirror to the remote store. A remote
// failure never rejects the submission; the response just says the record
// is local-only.
type RecordService interface {
	SubmitScale(ctx context.Context, patientID string, req *model.PostScaleRequest) (*model.PostRecordResponse, error)
	SubmitSleep(ctx context.Context, patientID string, req *model.PostSleepRequest) (*model.PostRecordResponse, error)
	SubmitActivity(ctx context.Context, patientID string, req *model.PostActivityRequest) (*model.PostRecordResponse, error)
	SubmitRestructuring(ctx context.Context, patientID string, req *model.PostRestructuringRequest) (*model.PostRecordResponse, error)
	SubmitBalance(ctx context.Context, patientID string, req *model.PostBalanceRequest) (*model.PostRecordResponse, error)
	ListRecords(ctx context.Context, patientID string, kind model.RecordKind) ([]model.Record, error)
	// History returns the durable archive across every kind, oldest first.
	// Unlike ListRecords it survives a process restart.
	History(ctx context.Context, patientID string) ([]model.ArchiveEntry, error)
}

type recordService struct {
	sessions *store.Sessions
	db       *gorm.DB
	archive  repository.ArchiveRepository
	adapter  sheets.Adapter
}

func NewRecordService(sessions *store.Sessions, db *gorm.DB, archive repository.ArchiveRepository, adapter sheets.Adapter) RecordService {
	return &recordService{
		sessions: sessions,
		db:       db,
		archive:  archive,
		adapter:  adapter,
	}
}

const (
	msgSynced    = "Enregistré et synchronisé."
	msgLocalOnly = "Enregistré localement uniquement : la sauvegarde distante est indisponible."
)

func (s *recordService) SubmitScale(ctx context.Context, patientID string, req *model.PostScaleRequest) (*model.PostRecordResponse, error) {
	rec := model.NewScaleRecord(patientID, time.Now(), req.Scale, req.Items)
	return s.submit(ctx, patientID, rec)
}

func (s *recordService) SubmitSleep(ctx context.Context, patientID string, req *model.PostSleepRequest) (*model.PostRecordResponse, error) {
	// Reject unparseable clock times before anything is appended.
	if _, err := model.TimeInBedMinutes(req.Coucher, req.Lever); err != nil {
		return nil, model.NewAppError("INVALID_TIME", "Les heures de coucher et de lever doivent être au format HH:MM.", "coucher", model.ErrInvalidInput)
	}
	rec := model.NewSleepRecord(patientID, time.Now(), req.Coucher, req.Lever, req.LatencyMin, req.WakeMin, req.Efficiency)
	return s.submit(ctx, patientID, rec)
}

func (s *recordService) SubmitActivity(ctx context.Context, patientID string, req *model.PostActivityRequest) (*model.PostRecordResponse, error) {
	rec := model.NewActivityRecord(patientID, time.Now(), req.Activity, req.DurationMin, req.Pleasure, req.Mastery)
	return s.submit(ctx, patientID, rec)
}

func (s *recordService) SubmitRestructuring(ctx context.Context, patientID string, req *model.PostRestructuringRequest) (*model.PostRecordResponse, error) {
	rec := model.NewRestructuringRecord(patientID, time.Now(), req.Situation, req.Emotion, req.Intensity, req.AutomaticThought, req.Distortion, req.AlternativeThought, req.IntensityAfter)
	return s.submit(ctx, patientID, rec)
}

func (s *recordService) SubmitBalance(ctx context.Context, patientID string, req *model.PostBalanceRequest) (*model.PostRecordResponse, error) {
	rec := model.NewBalanceRecord(patientID, time.Now(), req.Option, req.Advantages, req.Drawbacks, req.Horizon)
	return s.submit(ctx, patientID, rec)
}

// submit runs the shared append/archive/push sequence. The session append is
// the gate: once it succeeds the submission is accepted, and archive or sync
// failures only degrade the response message.
func (s *recordService) submit(ctx context.Context, patientID string, rec model.Record) (*model.PostRecordResponse, error) {
	logger := middleware.GetLogger(ctx).With("patient_id", patientID, "kind", rec.Kind(), "record_id", rec.ID())

	if err := s.sessions.Get(patientID).Append(rec.Kind(), rec); err != nil {
		logger.Error("Failed to append record to session store", "error", err)
		return nil, model.NewAppError("INVALID_RECORD", "L'enregistrement est invalide.", "", err)
	}

	s.archiveRecord(ctx, rec, logger)

	synced := true
	message := msgSynced
	if err := s.adapter.Push(ctx, rec.Kind().Tab(), rec.Values()); err != nil {
		logger.Warn("Remote push failed, record kept locally", "error", err)
		synced = false
		message = msgLocalOnly
	}

	logger.Info("Record accepted", "synced", synced)
	return &model.PostRecordResponse{
		RecordID: rec.ID().String(),
		Synced:   synced,
		Message:  message,
	}, nil
}

// archiveRecord mirrors the record into the local database. Failure is
// logged and tolerated: the session store already holds the row.
func (s *recordService) archiveRecord(ctx context.Context, rec model.Record, logger *slog.Logger) {
	payload, err := json.Marshal(rec)
	if err != nil {
		logger.Warn("Failed to serialize record for archive", "error", err)
		return
	}
	row := &repository.ExerciseRow{
		RecordID:   rec.ID(),
		PatientID:  rec.Patient(),
		Kind:       string(rec.Kind()),
		RecordedAt: rec.RecordedAt(),
		Payload:    string(payload),
	}
	if err := s.archive.Insert(ctx, s.db, row); err != nil {
		logger.Warn("Failed to archive record locally", "error", err)
	}
}

func (s *recordService) ListRecords(ctx context.Context, patientID string, kind model.RecordKind) ([]model.Record, error) {
	if !kind.Valid() {
		return nil, model.NewAppError("UNKNOWN_KIND", "Type d'exercice inconnu.", "kind", model.ErrNotFound)
	}
	return s.sessions.Get(patientID).All(kind), nil
}

func (s *recordService) History(ctx context.Context, patientID string) ([]model.ArchiveEntry, error) {
	rows, err := s.archive.ListByPatient(ctx, s.db, patientID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to read record archive", "patient_id", patientID, "error", err)
		return nil, model.NewAppError("HISTORY_FAILED", "La lecture de l'historique a échoué.", "", model.ErrInternalServer)
	}

	entries := make([]model.ArchiveEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.ArchiveEntry{
			RecordID:   row.RecordID.String(),
			Kind:       row.Kind,
			RecordedAt: row.RecordedAt,
			Record:     json.RawMessage(row.Payload),
		})
	}
	return entries, nil
}
