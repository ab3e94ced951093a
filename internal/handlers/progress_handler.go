// internal/handlers/progress_handler.go
package handlers

import (
	"net/http"

	"tcc_companion/internal/middleware"
	"tcc_companion/internal/model"
	"tcc_companion/internal/service"
	"tcc_companion/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress returns the unlock state, pulled fresh from the remote store
// on every call.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	patientID, err := middleware.GetPatientIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	resp := model.ProgressResponse{
		UnlockedModules:  h.service.UnlockedModules(r.Context(), patientID),
		ExcludedHomework: h.service.ExcludedHomework(r.Context(), patientID),
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
