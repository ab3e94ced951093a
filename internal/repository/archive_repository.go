// internal/repository/archive_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseRow is the durable copy of one accepted exercise record. The table
// is insert-only: no update or delete path exists, matching the clinical
// requirement of an auditable history.
type ExerciseRow struct {
	RecordID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID  string    `gorm:"not null;index"`
	Kind       string    `gorm:"not null;index"`
	RecordedAt time.Time `gorm:"not null"`
	Payload    string    `gorm:"type:text;not null"` // record serialized as JSON
	CreatedAt  time.Time
}

func (ExerciseRow) TableName() string {
	return "exercise_records"
}

type ArchiveRepository interface {
	Insert(ctx context.Context, db *gorm.DB, row *ExerciseRow) error
	ListByPatient(ctx context.Context, db *gorm.DB, patientID string) ([]*ExerciseRow, error)
}

type gormArchiveRepository struct{}

func NewGormArchiveRepository() ArchiveRepository {
	return &gormArchiveRepository{}
}

// Insert is a pure insert, never a read-modify-write, so it stays correct
// even if a second writer ever appears.
func (r *gormArchiveRepository) Insert(ctx context.Context, db *gorm.DB, row *ExerciseRow) error {
	return db.WithContext(ctx).Create(row).Error
}

func (r *gormArchiveRepository) ListByPatient(ctx context.Context, db *gorm.DB, patientID string) ([]*ExerciseRow, error) {
	var rows []*ExerciseRow
	result := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
