package plan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lumenmd/lead-dashboard/internal/taxonomy"
)

// Selection carries the provider's in-progress choices from the discussed
// treatments modal. Exactly one of the three entry flows populates it: a
// single treatment (treatment-first), checked treatments under a goal or
// finding, or a goal/finding with no treatment at all.
type Selection struct {
	// Interest is the active goal text, enumerated or custom.
	Interest string `json:"interest,omitempty"`
	// Findings are the selected findings; empty outside the finding flow.
	Findings []string `json:"findings,omitempty"`

	// Treatment is the single choice in the treatment-first flow.
	Treatment string `json:"treatment,omitempty"`
	// CustomTreatment is the free text typed into the "Other" treatment.
	CustomTreatment string `json:"customTreatment,omitempty"`
	// CheckedTreatments are the multi-select choices in the goal/finding flow.
	CheckedTreatments []string `json:"checkedTreatments,omitempty"`

	// Products holds the selected products per treatment.
	Products map[string][]string `json:"products,omitempty"`
	// CustomProducts holds the free text behind an "Other" product choice,
	// per treatment.
	CustomProducts map[string]string `json:"customProducts,omitempty"`

	// Shared metadata copied onto every item built from this selection.
	Brand    string `json:"brand,omitempty"`
	Region   string `json:"region,omitempty"`
	Timeline string `json:"timeline,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// BuildItems expands a selection into persistable plan items. Pure: no
// side effects, no persistence. An empty result is the reject path — the
// caller must not persist.
//
// A treatment with N selected products fans out into N items with distinct
// ids and identical shared fields; zero products yield one item without a
// product. A selection with a goal or finding but no treatment produces a
// single "Goal only" placeholder item.
func BuildItems(sel Selection) []Item {
	treatments := effectiveTreatments(sel)
	if len(treatments) == 0 {
		return nil
	}

	findings := compact(sel.Findings)
	var items []Item
	for _, treatment := range treatments {
		for _, product := range resolveProducts(sel, treatment) {
			item := Item{
				ID:        uuid.NewString(),
				Interest:  strings.TrimSpace(sel.Interest),
				Findings:  findings,
				Treatment: treatment,
				Product:   product,
				Brand:     sel.Brand,
				Region:    sel.Region,
				Timeline:  sel.Timeline,
				Notes:     sel.Notes,
			}
			items = append(items, item)
		}
	}
	return items
}

// effectiveTreatments resolves the treatment list in precedence order:
// single treatment-first choice, then checked treatments plus custom text,
// then the "Goal only" placeholder when only a goal/finding was chosen.
func effectiveTreatments(sel Selection) []string {
	if single := strings.TrimSpace(sel.Treatment); single != "" {
		if single == taxonomy.OtherTreatment {
			if custom := strings.TrimSpace(sel.CustomTreatment); custom != "" {
				return []string{custom}
			}
		} else {
			return []string{single}
		}
	}

	var out []string
	for _, t := range sel.CheckedTreatments {
		t = strings.TrimSpace(t)
		if t == "" || t == taxonomy.OtherTreatment {
			continue
		}
		out = appendUnique(out, t)
	}
	if custom := strings.TrimSpace(sel.CustomTreatment); custom != "" {
		out = appendUnique(out, custom)
	}
	if len(out) > 0 {
		return out
	}

	if strings.TrimSpace(sel.Interest) != "" || len(compact(sel.Findings)) > 0 {
		return []string{taxonomy.GoalOnlyTreatment}
	}
	return nil
}

// resolveProducts returns the product value per fanned-out item. The empty
// string stands for "no product". An "Other" selection resolves to its
// custom text, or drops out when no text was typed.
func resolveProducts(sel Selection, treatment string) []string {
	selected := sel.Products[treatment]
	var out []string
	for _, p := range selected {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == taxonomy.OtherProduct {
			p = strings.TrimSpace(sel.CustomProducts[treatment])
			if p == "" {
				continue
			}
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func appendUnique(dst []string, value string) []string {
	for _, existing := range dst {
		if existing == value {
			return dst
		}
	}
	return append(dst, value)
}
