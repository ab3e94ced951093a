// internal/model/dto.go
package model

import (
	"encoding/json"
	"time"
)

// Request DTOs for the record submission endpoints. Validation happens at
// the handler boundary before anything is appended; a rejected request never
// leaves a partial record behind.

type PostScaleRequest struct {
	Scale string `json:"scale" validate:"required"`
	Items []int  `json:"items" validate:"required,min=1,dive,min=0"`
}

type PostSleepRequest struct {
	Coucher    string `json:"coucher" validate:"required"`
	Lever      string `json:"lever" validate:"required"`
	LatencyMin int    `json:"latency_min" validate:"min=0"`
	WakeMin    int    `json:"wake_min" validate:"min=0"`
	Efficiency string `json:"efficiency"`
}

type PostActivityRequest struct {
	Activity    string `json:"activity" validate:"required"`
	DurationMin int    `json:"duration_min" validate:"required,min=1"`
	Pleasure    int    `json:"pleasure" validate:"min=0,max=10"`
	Mastery     int    `json:"mastery" validate:"min=0,max=10"`
}

type PostRestructuringRequest struct {
	Situation          string `json:"situation" validate:"required"`
	Emotion            string `json:"emotion" validate:"required"`
	Intensity          int    `json:"intensity" validate:"min=0,max=10"`
	AutomaticThought   string `json:"automatic_thought" validate:"required"`
	Distortion         string `json:"distortion"`
	AlternativeThought string `json:"alternative_thought"`
	IntensityAfter     int    `json:"intensity_after" validate:"min=0,max=10"`
}

type PostBalanceRequest struct {
	Option     string `json:"option" validate:"required"`
	Advantages string `json:"advantages"`
	Drawbacks  string `json:"drawbacks"`
	Horizon    string `json:"horizon" validate:"omitempty,oneof=court long"`
}

// PostRecordResponse tells the caller where the record ended up. Synced=false
// means "saved locally only, not yet backed up", and the caller must surface
// that distinction.
type PostRecordResponse struct {
	RecordID string `json:"record_id"`
	Synced   bool   `json:"synced"`
	Message  string `json:"message"`
}

// ArchiveEntry is one durably archived record, as served by the history
// endpoint. Record carries the archived JSON payload verbatim.
type ArchiveEntry struct {
	RecordID   string          `json:"record_id"`
	Kind       string          `json:"kind"`
	RecordedAt time.Time       `json:"recorded_at"`
	Record     json.RawMessage `json:"record"`
}

// ProgressResponse is the per-patient unlock state, refreshed from the
// remote store on every call.
type ProgressResponse struct {
	UnlockedModules  []string         `json:"unlocked_modules"`
	ExcludedHomework map[string][]int `json:"excluded_homework"`
}

// HomeworkView is a homework item as shown to the patient.
type HomeworkView struct {
	Index             int    `json:"index"`
	Title             string `json:"title"`
	Attachment        string `json:"attachment,omitempty"`
	AttachmentMissing bool   `json:"attachment_missing,omitempty"`
}

// ModuleOverview merges a catalog entry with the patient's unlock and
// exclusion state.
type ModuleOverview struct {
	Code        string         `json:"code"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Objectives  string         `json:"objectives"`
	Unlocked    bool           `json:"unlocked"`
	Homework    []HomeworkView `json:"homework,omitempty"`
	Documents   []string       `json:"documents,omitempty"`
	Steps       []ModuleStep   `json:"steps,omitempty"`
}
