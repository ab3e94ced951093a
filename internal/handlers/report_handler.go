// internal/handlers/report_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"tcc_companion/internal/middleware"
	"tcc_companion/internal/service"
	"tcc_companion/internal/webutil"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetReport streams the cumulative PDF report for the current patient.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	patientID, err := middleware.GetPatientIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	data, filename, err := h.service.Report(r.Context(), patientID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
