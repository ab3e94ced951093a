// internal/sheets/adapter.go
package sheets

import (
	"context"
	"fmt"

	"tcc_companion/internal/model"
)

// Row is one remote record, keyed by the tab's header cells. A cell that is
// missing or empty in the sheet is simply absent from the map, so malformed
// rows stay salvageable field by field.
type Row map[string]string

// Adapter mirrors records to a durable remote tabular store, one named tab
// per record kind. Push is a pure append and is NOT idempotent: pushing the
// same logical record twice yields two remote rows. Duplicate suppression,
// if wanted, is the caller's job via a caller-supplied key.
type Adapter interface {
	// Push appends one row of primitive values to tab. A network/auth/config
	// failure is reported as model.ErrSyncUnavailable; the caller treats it
	// as "saved locally only".
	Push(ctx context.Context, tab string, values []any) error

	// Pull returns every data row of tab, or an empty slice if the tab does
	// not exist. Only transport/auth failures are errors.
	Pull(ctx context.Context, tab string) ([]Row, error)

	// EnsureTab idempotently provisions tab with the given header row. It is
	// called once at startup, decoupled from the append path.
	EnsureTab(ctx context.Context, tab string, header []string) error
}

// rowsToMaps pairs header cells with row cells. Rows shorter than the header
// keep whatever fields they do have; extra cells beyond the header are
// ignored.
func rowsToMaps(header []string, rows [][]any) []Row {
	out := make([]Row, 0, len(rows))
	for _, raw := range rows {
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(raw) {
				continue
			}
			row[name] = fmt.Sprint(raw[i])
		}
		out = append(out, row)
	}
	return out
}

// Provision creates every record-kind tab plus the therapist-managed
// Progression and Exclusions tabs. Failures are returned to be logged;
// provisioning is best-effort and never blocks startup.
func Provision(ctx context.Context, a Adapter) error {
	for _, kind := range model.AllKinds() {
		if err := a.EnsureTab(ctx, kind.Tab(), kind.Header()); err != nil {
			return fmt.Errorf("provisioning tab %s: %w", kind.Tab(), err)
		}
	}
	if err := a.EnsureTab(ctx, TabProgression, HeaderProgression); err != nil {
		return fmt.Errorf("provisioning tab %s: %w", TabProgression, err)
	}
	if err := a.EnsureTab(ctx, TabExclusions, HeaderExclusions); err != nil {
		return fmt.Errorf("provisioning tab %s: %w", TabExclusions, err)
	}
	return nil
}

// Therapist-managed tabs. The application only reads these.
const (
	TabProgression = "Progression"
	TabExclusions  = "Exclusions"

	ColPatient = "Patient"
	ColModules = "Modules"
	ColModule  = "Module"
	ColIndices = "Indices"
)

var (
	HeaderProgression = []string{ColPatient, ColModules}
	HeaderExclusions  = []string{ColPatient, ColModule, ColIndices}
)

// Disabled returns an adapter for running without remote credentials: every
// operation fails with model.ErrSyncUnavailable, so records stay local-only
// and progress reads fall back to the bootstrap default.
func Disabled() Adapter {
	return disabledAdapter{}
}

type disabledAdapter struct{}

func (disabledAdapter) Push(context.Context, string, []any) error {
	return fmt.Errorf("remote store not configured: %w", model.ErrSyncUnavailable)
}

func (disabledAdapter) Pull(context.Context, string) ([]Row, error) {
	return nil, fmt.Errorf("remote store not configured: %w", model.ErrSyncUnavailable)
}

func (disabledAdapter) EnsureTab(context.Context, string, []string) error {
	return fmt.Errorf("remote store not configured: %w", model.ErrSyncUnavailable)
}
