// internal/handlers/record_handler.go
package handlers

import (
	"errors"
	"net/http"

	"tcc_companion/internal/middleware"
	"tcc_companion/internal/model"
	"tcc_companion/internal/service"
	"tcc_companion/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(s service.RecordService) *RecordHandler {
	return &RecordHandler{service: s}
}

// URL segment -> record kind. The API uses plural resource names.
var kindBySegment = map[string]model.RecordKind{
	"scales":        model.KindScale,
	"sleep":         model.KindSleep,
	"activities":    model.KindActivity,
	"restructuring": model.KindRestructuring,
	"balance":       model.KindBalance,
}

func (h *RecordHandler) PostScale(w http.ResponseWriter, r *http.Request) {
	var req model.PostScaleRequest
	patientID, ok := h.decodeAndValidate(w, r, &req)
	if !ok {
		return
	}
	resp, err := h.service.SubmitScale(r.Context(), patientID, &req)
	h.respond(w, r, resp, err)
}

func (h *RecordHandler) PostSleep(w http.ResponseWriter, r *http.Request) {
	var req model.PostSleepRequest
	patientID, ok := h.decodeAndValidate(w, r, &req)
	if !ok {
		return
	}
	resp, err := h.service.SubmitSleep(r.Context(), patientID, &req)
	h.respond(w, r, resp, err)
}

func (h *RecordHandler) PostActivity(w http.ResponseWriter, r *http.Request) {
	var req model.PostActivityRequest
	patientID, ok := h.decodeAndValidate(w, r, &req)
	if !ok {
		return
	}
	resp, err := h.service.SubmitActivity(r.Context(), patientID, &req)
	h.respond(w, r, resp, err)
}

func (h *RecordHandler) PostRestructuring(w http.ResponseWriter, r *http.Request) {
	var req model.PostRestructuringRequest
	patientID, ok := h.decodeAndValidate(w, r, &req)
	if !ok {
		return
	}
	resp, err := h.service.SubmitRestructuring(r.Context(), patientID, &req)
	h.respond(w, r, resp, err)
}

func (h *RecordHandler) PostBalance(w http.ResponseWriter, r *http.Request) {
	var req model.PostBalanceRequest
	patientID, ok := h.decodeAndValidate(w, r, &req)
	if !ok {
		return
	}
	resp, err := h.service.SubmitBalance(r.Context(), patientID, &req)
	h.respond(w, r, resp, err)
}

// GetRecords lists the session rows of one kind, in submission order.
func (h *RecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	patientID, err := middleware.GetPatientIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	kind, ok := kindBySegment[chi.URLParam(r, "kind")]
	if !ok {
		webutil.HandleError(w, model.NewAppError("UNKNOWN_KIND", "Type d'exercice inconnu.", "kind", model.ErrNotFound))
		return
	}

	records, err := h.service.ListRecords(r.Context(), patientID, kind)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	if records == nil {
		records = []model.Record{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, records)
}

// GetHistory lists the durable archive of every accepted record, across all
// kinds, oldest first. Unlike GetRecords it survives a restart.
func (h *RecordHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	patientID, err := middleware.GetPatientIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	entries, err := h.service.History(r.Context(), patientID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries)
}

// decodeAndValidate runs the shared front half of every submission: patient
// identity, JSON decoding, struct validation. A rejected request never
// reaches the service, so no partial record is ever stored.
func (h *RecordHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) (string, bool) {
	patientID, err := middleware.GetPatientIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return "", false
	}

	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		webutil.HandleError(w, err)
		return "", false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			webutil.HandleError(w, webutil.NewValidationErrorResponse(validationErrs))
		} else {
			webutil.HandleError(w, err)
		}
		return "", false
	}
	return patientID, true
}

func (h *RecordHandler) respond(w http.ResponseWriter, r *http.Request, resp *model.PostRecordResponse, err error) {
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}
