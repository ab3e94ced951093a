// internal/model/module.go
package model

// Static protocol configuration, loaded once at process start and immutable
// afterwards. These types mirror the YAML catalog file.

// StepType tags one ordered sub-step of a module.
type StepType string

const (
	StepText  StepType = "text"  // free text shown inline
	StepFile  StepType = "file"  // attached document
	StepScale StepType = "scale" // link to an in-app scale tool
)

// ModuleStep is one ordered sub-step of a protocol module.
type ModuleStep struct {
	Type  StepType `yaml:"type" json:"type"`
	Text  string   `yaml:"text,omitempty" json:"text,omitempty"`
	Path  string   `yaml:"path,omitempty" json:"path,omitempty"`
	Scale string   `yaml:"scale,omitempty" json:"scale,omitempty"`
}

// HomeworkItem is one homework assignment, optionally backed by a file.
type HomeworkItem struct {
	Title      string `yaml:"title" json:"title"`
	Attachment string `yaml:"attachment,omitempty" json:"attachment,omitempty"`
}

// ModuleDefinition is one named unit of the multi-week therapy protocol.
type ModuleDefinition struct {
	Code        string         `yaml:"code" json:"code"`
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	Objectives  string         `yaml:"objectives" json:"objectives"`
	Homework    []HomeworkItem `yaml:"homework" json:"homework"`
	Documents   []string       `yaml:"documents" json:"documents"`
	Steps       []ModuleStep   `yaml:"steps" json:"steps"`
}
