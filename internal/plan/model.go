// Package plan builds and persists the per-patient treatment plan: the
// append-only list of treatments a provider has discussed with a lead.
// Items are created through the builder, stored whole-list in one record
// field, and mutated optimistically with rollback on a failed persist.
package plan

import "errors"

// PlanField is the record field holding the serialized plan list.
const PlanField = "Discussed Treatments"

// Item is one discussed treatment instance for a patient.
type Item struct {
	ID        string   `json:"id"`
	Interest  string   `json:"interest,omitempty"`
	Findings  []string `json:"findings,omitempty"`
	Treatment string   `json:"treatment"`
	Product   string   `json:"product,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	Region    string   `json:"region,omitempty"`
	Timeline  string   `json:"timeline,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// ItemPatch carries the editable fields of an item. Nil means "keep".
type ItemPatch struct {
	Treatment *string `json:"treatment,omitempty"`
	Product   *string `json:"product,omitempty"`
	Timeline  *string `json:"timeline,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

var (
	// ErrItemNotFound is returned when an edit or remove names an unknown item id
	ErrItemNotFound = errors.New("plan item not found")

	// ErrNoItems is returned when a mutation would persist nothing
	ErrNoItems = errors.New("no plan items to persist")

	// ErrEmptyTreatment is returned when an edit would blank an item's treatment
	ErrEmptyTreatment = errors.New("treatment must not be empty")
)
