// internal/model/record.go
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordKind tags which table/tab an exercise entry belongs to.
type RecordKind string

const (
	KindScale         RecordKind = "scale"
	KindSleep         RecordKind = "sleep"
	KindActivity      RecordKind = "activity"
	KindRestructuring RecordKind = "restructuring"
	KindBalance       RecordKind = "balance"
)

// AllKinds returns every record kind in a fixed order. The order is also the
// tab-provisioning order on the remote store.
func AllKinds() []RecordKind {
	return []RecordKind{KindScale, KindSleep, KindActivity, KindRestructuring, KindBalance}
}

func (k RecordKind) Valid() bool {
	switch k {
	case KindScale, KindSleep, KindActivity, KindRestructuring, KindBalance:
		return true
	}
	return false
}

// Tab is the remote spreadsheet tab holding this kind. The names match the
// therapist-facing sheet and are therefore French.
func (k RecordKind) Tab() string {
	switch k {
	case KindScale:
		return "Beck"
	case KindSleep:
		return "Sommeil"
	case KindActivity:
		return "Activites"
	case KindRestructuring:
		return "Restructuration"
	case KindBalance:
		return "Balance_Decisionnelle"
	}
	return ""
}

// Header is the fixed first row of the kind's tab. Values() of the matching
// record type emits columns in exactly this order.
func (k RecordKind) Header() []string {
	base := []string{"ID", "Patient", "Horodatage"}
	switch k {
	case KindScale:
		return append(base, "Echelle", "Reponses", "Score")
	case KindSleep:
		return append(base, "Coucher", "Lever", "Endormissement_min", "Eveils_min", "Efficacite")
	case KindActivity:
		return append(base, "Activite", "Duree_min", "Plaisir", "Maitrise")
	case KindRestructuring:
		return append(base, "Situation", "Emotion", "Intensite", "Pensee_automatique", "Distorsion", "Pensee_alternative", "Intensite_apres")
	case KindBalance:
		return append(base, "Option", "Avantages", "Inconvenients", "Horizon")
	}
	return base
}

// Record is one immutable exercise entry. Corrections are new records;
// nothing ever updates or deletes an existing one.
type Record interface {
	Kind() RecordKind
	ID() uuid.UUID
	Patient() string
	RecordedAt() time.Time
	// Values serializes the record to the fixed column order of Kind().Header().
	Values() []any
}

// BaseRecord holds the fields shared by every exercise entry.
type BaseRecord struct {
	RecordID  uuid.UUID `json:"record_id"`
	PatientID string    `json:"patient_id"`
	Timestamp time.Time `json:"timestamp"`
}

func newBase(patientID string, now time.Time) BaseRecord {
	return BaseRecord{RecordID: uuid.New(), PatientID: patientID, Timestamp: now}
}

func (b BaseRecord) ID() uuid.UUID         { return b.RecordID }
func (b BaseRecord) Patient() string       { return b.PatientID }
func (b BaseRecord) RecordedAt() time.Time { return b.Timestamp }

func (b BaseRecord) baseValues() []any {
	return []any{b.RecordID.String(), b.PatientID, b.Timestamp.Format(time.RFC3339)}
}

// ScaleRecord is one completed symptom-severity questionnaire.
type ScaleRecord struct {
	BaseRecord
	ScaleName string `json:"scale"`
	Items     []int  `json:"items"`
	Score     int    `json:"score"`
}

// NewScaleRecord computes the total as the exact arithmetic sum of the item
// responses; no item is ever dropped.
func NewScaleRecord(patientID string, now time.Time, scaleName string, items []int) *ScaleRecord {
	score := 0
	for _, it := range items {
		score += it
	}
	return &ScaleRecord{
		BaseRecord: newBase(patientID, now),
		ScaleName:  scaleName,
		Items:      items,
		Score:      score,
	}
}

func (r *ScaleRecord) Kind() RecordKind { return KindScale }

func (r *ScaleRecord) Values() []any {
	parts := make([]string, len(r.Items))
	for i, it := range r.Items {
		parts[i] = strconv.Itoa(it)
	}
	return append(r.baseValues(), r.ScaleName, strings.Join(parts, ";"), r.Score)
}

// SleepRecord is one sleep-diary night. Coucher and Lever are clock times
// ("23:30"); Efficiency is kept as the raw form value (e.g. "85%") so that
// malformed entries can be excluded from aggregates instead of coerced.
type SleepRecord struct {
	BaseRecord
	Coucher    string `json:"coucher"`
	Lever      string `json:"lever"`
	LatencyMin int    `json:"latency_min"`
	WakeMin    int    `json:"wake_min"`
	Efficiency string `json:"efficiency"`
}

func NewSleepRecord(patientID string, now time.Time, coucher, lever string, latencyMin, wakeMin int, efficiency string) *SleepRecord {
	return &SleepRecord{
		BaseRecord: newBase(patientID, now),
		Coucher:    coucher,
		Lever:      lever,
		LatencyMin: latencyMin,
		WakeMin:    wakeMin,
		Efficiency: efficiency,
	}
}

func (r *SleepRecord) Kind() RecordKind { return KindSleep }

func (r *SleepRecord) Values() []any {
	return append(r.baseValues(), r.Coucher, r.Lever, r.LatencyMin, r.WakeMin, r.Efficiency)
}

// TimeInBedMinutes returns the minutes between bedtime and rise time.
func (r *SleepRecord) TimeInBedMinutes() (int, error) {
	return TimeInBedMinutes(r.Coucher, r.Lever)
}

// TimeInBedMinutes computes the duration between two "HH:MM" clock times.
// A rise time earlier than bedtime means the night wrapped past midnight.
func TimeInBedMinutes(coucher, lever string) (int, error) {
	start, err := parseClock(coucher)
	if err != nil {
		return 0, fmt.Errorf("coucher %q: %w", coucher, ErrInvalidInput)
	}
	end, err := parseClock(lever)
	if err != nil {
		return 0, fmt.Errorf("lever %q: %w", lever, ErrInvalidInput)
	}
	if end < start {
		end += 24 * 60
	}
	return end - start, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ActivityRecord is one activity-log entry with pleasure/mastery ratings.
type ActivityRecord struct {
	BaseRecord
	Activity    string `json:"activity"`
	DurationMin int    `json:"duration_min"`
	Pleasure    int    `json:"pleasure"`
	Mastery     int    `json:"mastery"`
}

func NewActivityRecord(patientID string, now time.Time, activity string, durationMin, pleasure, mastery int) *ActivityRecord {
	return &ActivityRecord{
		BaseRecord:  newBase(patientID, now),
		Activity:    activity,
		DurationMin: durationMin,
		Pleasure:    pleasure,
		Mastery:     mastery,
	}
}

func (r *ActivityRecord) Kind() RecordKind { return KindActivity }

func (r *ActivityRecord) Values() []any {
	return append(r.baseValues(), r.Activity, r.DurationMin, r.Pleasure, r.Mastery)
}

// RestructuringRecord is one cognitive-restructuring worksheet.
type RestructuringRecord struct {
	BaseRecord
	Situation          string `json:"situation"`
	Emotion            string `json:"emotion"`
	Intensity          int    `json:"intensity"`
	AutomaticThought   string `json:"automatic_thought"`
	Distortion         string `json:"distortion"`
	AlternativeThought string `json:"alternative_thought"`
	IntensityAfter     int    `json:"intensity_after"`
}

func NewRestructuringRecord(patientID string, now time.Time, situation, emotion string, intensity int, automaticThought, distortion, alternativeThought string, intensityAfter int) *RestructuringRecord {
	return &RestructuringRecord{
		BaseRecord:         newBase(patientID, now),
		Situation:          situation,
		Emotion:            emotion,
		Intensity:          intensity,
		AutomaticThought:   automaticThought,
		Distortion:         distortion,
		AlternativeThought: alternativeThought,
		IntensityAfter:     intensityAfter,
	}
}

func (r *RestructuringRecord) Kind() RecordKind { return KindRestructuring }

func (r *RestructuringRecord) Values() []any {
	return append(r.baseValues(), r.Situation, r.Emotion, r.Intensity, r.AutomaticThought, r.Distortion, r.AlternativeThought, r.IntensityAfter)
}

// BalanceRecord is one decisional-balance item.
type BalanceRecord struct {
	BaseRecord
	Option     string `json:"option"`
	Advantages string `json:"advantages"`
	Drawbacks  string `json:"drawbacks"`
	Horizon    string `json:"horizon"`
}

func NewBalanceRecord(patientID string, now time.Time, option, advantages, drawbacks, horizon string) *BalanceRecord {
	return &BalanceRecord{
		BaseRecord: newBase(patientID, now),
		Option:     option,
		Advantages: advantages,
		Drawbacks:  drawbacks,
		Horizon:    horizon,
	}
}

func (r *BalanceRecord) Kind() RecordKind { return KindBalance }

func (r *BalanceRecord) Values() []any {
	return append(r.baseValues(), r.Option, r.Advantages, r.Drawbacks, r.Horizon)
}
