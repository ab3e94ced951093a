// internal/middleware/patient.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"tcc_companion/internal/model"
	"tcc_companion/internal/webutil"
)

// PatientHeader carries the caller-supplied patient identifier. It is an
// opaque free-text key: the application never validates its format or
// uniqueness, only its presence.
const PatientHeader = "X-Patient-ID"

type patientCtxKey struct{}

// PatientContextMiddleware requires the patient header on every protected
// route and stores the identifier in the request context.
func PatientContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		patientID := strings.TrimSpace(r.Header.Get(PatientHeader))
		if patientID == "" {
			GetLogger(r.Context()).Warn("Request without patient identifier", "path", r.URL.Path)
			webutil.HandleError(w, model.NewAppError(
				"PATIENT_REQUIRED",
				"L'en-tête X-Patient-ID est obligatoire.",
				"",
				model.ErrPatientRequired,
			))
			return
		}

		ctx := context.WithValue(r.Context(), patientCtxKey{}, patientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPatientIDFromContext returns the patient identifier set by
// PatientContextMiddleware.
func GetPatientIDFromContext(ctx context.Context) (string, error) {
	patientID, ok := ctx.Value(patientCtxKey{}).(string)
	if !ok || patientID == "" {
		return "", model.ErrPatientRequired
	}
	return patientID, nil
}
