// internal/model/progress.go
package model

// PatientProgress maps a patient to the ordered set of unlocked module
// codes. It is written by the therapist directly in the remote store; the
// application only ever reads it.
type PatientProgress struct {
	PatientID string   `json:"patient_id"`
	Modules   []string `json:"modules"`
}

// HomeworkExclusions maps a module code to the homework-item indices the
// therapist chose to hide for one patient. An empty map means everything is
// shown, which is the conservative default.
type HomeworkExclusions map[string][]int
