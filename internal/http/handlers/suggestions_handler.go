package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lumenmd/lead-dashboard/internal/observability/metrics"
	"github.com/lumenmd/lead-dashboard/internal/recommend"
	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

// SuggestionsHandler answers "what should we suggest for this selection"
// for the discussed treatments modal. It is a pure read over the taxonomy:
// nothing here touches the record store.
type SuggestionsHandler struct {
	resolver *recommend.Resolver
	composer *recommend.Composer
	logger   *logging.Logger
	metrics  *metrics.PlanMetrics
}

// NewSuggestionsHandler creates a new suggestions handler.
func NewSuggestionsHandler(resolver *recommend.Resolver, composer *recommend.Composer, logger *logging.Logger, m *metrics.PlanMetrics) *SuggestionsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SuggestionsHandler{
		resolver: resolver,
		composer: composer,
		logger:   logger,
		metrics:  m,
	}
}

// SuggestionRequest mirrors the three entry flows of the modal: findings
// selected, a goal chosen, or a treatment picked first.
type SuggestionRequest struct {
	Goal      string   `json:"goal,omitempty"`
	Findings  []string `json:"findings,omitempty"`
	Treatment string   `json:"treatment,omitempty"`
}

// SuggestionResponse carries the derived suggestions for the modal.
type SuggestionResponse struct {
	Interest   string              `json:"interest,omitempty"`
	Region     string              `json:"region,omitempty"`
	Regions    []string            `json:"regions,omitempty"`
	Goals      []string            `json:"goals,omitempty"`
	Treatments []string            `json:"treatments,omitempty"`
	Products   map[string][]string `json:"products,omitempty"`
}

// Suggest handles POST /api/suggestions requests
func (h *SuggestionsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.metrics.ObserveSuggestionLatency(time.Since(start).Seconds())
	}()

	var req SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var resp SuggestionResponse
	switch {
	case req.Treatment != "":
		resp = h.suggestForTreatment(req)
	case len(req.Findings) > 0:
		resp = h.suggestForFindings(req)
	case req.Goal != "":
		resp = h.suggestForGoal(req)
	default:
		http.Error(w, "goal, findings, or treatment required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// suggestForTreatment covers the treatment-first flow: candidate goals and
// regions come from inverting the goal table, and the product context also
// carries what each selected finding derives.
func (h *SuggestionsHandler) suggestForTreatment(req SuggestionRequest) SuggestionResponse {
	context := h.composer.BuildContext(req.Goal, req.Findings, true)
	return SuggestionResponse{
		Goals:   h.resolver.GoalsForTreatment(req.Treatment),
		Regions: h.resolver.RegionsForTreatment(req.Treatment),
		Products: map[string][]string{
			req.Treatment: h.composer.RecommendedProducts(req.Treatment, context),
		},
	}
}

func (h *SuggestionsHandler) suggestForFindings(req SuggestionRequest) SuggestionResponse {
	combined := h.resolver.CombineFindings(req.Findings)
	treatments := combined.Treatments
	if len(treatments) == 0 && req.Goal != "" {
		treatments = h.resolver.TreatmentsForGoal(req.Goal)
	}

	goal := req.Goal
	if goal == "" {
		goal = combined.Interest
	}
	context := h.composer.BuildContext(goal, req.Findings, false)

	return SuggestionResponse{
		Interest:   combined.Interest,
		Region:     combined.Region,
		Treatments: treatments,
		Products:   h.productsFor(treatments, context),
	}
}

func (h *SuggestionsHandler) suggestForGoal(req SuggestionRequest) SuggestionResponse {
	treatments := h.resolver.TreatmentsForGoal(req.Goal)
	context := h.composer.BuildContext(req.Goal, nil, false)
	return SuggestionResponse{
		Interest:   req.Goal,
		Regions:    h.resolver.RegionsForGoal(req.Goal),
		Treatments: treatments,
		Products:   h.productsFor(treatments, context),
	}
}

func (h *SuggestionsHandler) productsFor(treatments []string, context string) map[string][]string {
	out := make(map[string][]string, len(treatments))
	for _, t := range treatments {
		if recommended := h.composer.RecommendedProducts(t, context); len(recommended) > 0 {
			out[t] = recommended
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
