package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

// Handler serves patient reads for the dashboard views.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new patients handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// GetPatient handles GET /api/patients/{patientID} requests
func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "patientID")
	if id == "" {
		http.Error(w, "missing patient id", http.StatusBadRequest)
		return
	}

	patient, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to fetch patient", "patient_id", id, "error", err)
		http.Error(w, "failed to fetch patient", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patient)
}

// ListPatientsResponse is the response for listing patients
type ListPatientsResponse struct {
	Patients []*Patient `json:"patients"`
	Count    int        `json:"count"`
}

// ListPatients handles GET /api/patients requests. The optional filter
// query is passed through to the record store proxy untouched.
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	patients, err := h.repo.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list patients", "error", err)
		http.Error(w, "failed to list patients", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListPatientsResponse{Patients: patients, Count: len(patients)})
}
