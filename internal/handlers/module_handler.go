// internal/handlers/module_handler.go
package handlers

import (
	"net/http"

	"tcc_companion/internal/middleware"
	"tcc_companion/internal/service"
	"tcc_companion/internal/webutil"
)

type ModuleHandler struct {
	service service.ModuleService
}

func NewModuleHandler(s service.ModuleService) *ModuleHandler {
	return &ModuleHandler{service: s}
}

// GetModules returns every protocol module with the patient's unlock state;
// locked modules expose only their title.
func (h *ModuleHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	patientID, err := middleware.GetPatientIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, h.service.Overview(r.Context(), patientID))
}
