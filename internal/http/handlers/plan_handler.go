// Package handlers holds the HTTP handlers that cut across feature
// packages: the treatment-plan mutations and the suggestion endpoint
// behind the discussed treatments modal.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumenmd/lead-dashboard/internal/observability/metrics"
	"github.com/lumenmd/lead-dashboard/internal/patients"
	"github.com/lumenmd/lead-dashboard/internal/plan"
	"github.com/lumenmd/lead-dashboard/internal/records"
	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

// PlanHandler serves the per-patient treatment plan endpoints.
type PlanHandler struct {
	repo    patients.Repository
	client  records.Client
	table   string
	logger  *logging.Logger
	metrics *metrics.PlanMetrics
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(repo patients.Repository, client records.Client, table string, logger *logging.Logger, m *metrics.PlanMetrics) *PlanHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlanHandler{
		repo:    repo,
		client:  client,
		table:   table,
		logger:  logger,
		metrics: m,
	}
}

// PlanResponse is the response for plan reads and mutations.
type PlanResponse struct {
	Items []plan.Item `json:"items"`
	Count int         `json:"count"`
	Added []plan.Item `json:"added,omitempty"`
}

// GetPlan handles GET /api/patients/{patientID}/plan requests
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	patient, ok := h.fetchPatient(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, PlanResponse{Items: orEmpty(patient.Plan), Count: len(patient.Plan)})
}

// AddItems handles POST /api/patients/{patientID}/plan requests. The body
// is a builder selection; a selection that builds no items is rejected
// before anything is persisted.
func (h *PlanHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	var sel plan.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	items := plan.BuildItems(sel)
	if len(items) == 0 {
		http.Error(w, "selection produces no plan items", http.StatusUnprocessableEntity)
		return
	}

	patient, ok := h.fetchPatient(w, r)
	if !ok {
		return
	}

	store := h.storeFor(r.Context(), patient)
	if err := store.Add(r.Context(), items...); err != nil {
		h.logger.Error("failed to add plan items", "patient_id", patient.ID, "error", err)
		http.Error(w, "failed to save treatment plan", http.StatusBadGateway)
		return
	}

	current := store.Items()
	writeJSON(w, http.StatusCreated, PlanResponse{Items: current, Count: len(current), Added: items})
}

// EditItem handles PATCH /api/patients/{patientID}/plan/{itemID} requests
func (h *PlanHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	var patch plan.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patient, ok := h.fetchPatient(w, r)
	if !ok {
		return
	}

	store := h.storeFor(r.Context(), patient)
	err := store.Edit(r.Context(), chi.URLParam(r, "itemID"), patch)
	switch {
	case errors.Is(err, plan.ErrItemNotFound):
		http.Error(w, "plan item not found", http.StatusNotFound)
		return
	case errors.Is(err, plan.ErrEmptyTreatment):
		http.Error(w, "treatment must not be empty", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("failed to edit plan item", "patient_id", patient.ID, "error", err)
		http.Error(w, "failed to save treatment plan", http.StatusBadGateway)
		return
	}

	current := store.Items()
	writeJSON(w, http.StatusOK, PlanResponse{Items: current, Count: len(current)})
}

// RemoveItem handles DELETE /api/patients/{patientID}/plan/{itemID} requests
func (h *PlanHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	patient, ok := h.fetchPatient(w, r)
	if !ok {
		return
	}

	store := h.storeFor(r.Context(), patient)
	err := store.Remove(r.Context(), chi.URLParam(r, "itemID"))
	switch {
	case errors.Is(err, plan.ErrItemNotFound):
		http.Error(w, "plan item not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to remove plan item", "patient_id", patient.ID, "error", err)
		http.Error(w, "failed to save treatment plan", http.StatusBadGateway)
		return
	}

	current := store.Items()
	writeJSON(w, http.StatusOK, PlanResponse{Items: current, Count: len(current)})
}

func (h *PlanHandler) fetchPatient(w http.ResponseWriter, r *http.Request) (*patients.Patient, bool) {
	id := chi.URLParam(r, "patientID")
	if id == "" {
		http.Error(w, "missing patient id", http.StatusBadRequest)
		return nil, false
	}
	patient, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, patients.ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.Error("failed to fetch patient", "patient_id", id, "error", err)
		http.Error(w, "failed to fetch patient", http.StatusBadGateway)
		return nil, false
	}
	return patient, true
}

// storeFor hydrates a plan store from the patient's loaded plan field and
// hooks cache invalidation to successful persists.
func (h *PlanHandler) storeFor(ctx context.Context, patient *patients.Patient) *plan.Store {
	store := plan.NewStore(h.client, h.table, patient.ID, h.logger, h.metrics)
	store.Hydrate(patient.PlanRaw)
	id := patient.ID
	store.OnRefresh(func() {
		h.repo.Invalidate(ctx, id)
	})
	return store
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func orEmpty(items []plan.Item) []plan.Item {
	if items == nil {
		return []plan.Item{}
	}
	return items
}
