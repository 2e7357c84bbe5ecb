// Package recommend derives suggested goals, regions, treatments, and
// products from assessment findings using the static taxonomy catalog. All
// functions are pure lookups over the injected catalog; nothing here talks
// to the network or mutates state.
package recommend

import (
	"strings"

	"github.com/lumenmd/lead-dashboard/internal/taxonomy"
)

// Resolver answers "what does this finding/goal imply" questions against
// the catalog's rule tables.
type Resolver struct {
	catalog *taxonomy.Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(catalog *taxonomy.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// FindingMatch is what a single finding resolves to.
type FindingMatch struct {
	Goal       string   `json:"goal"`
	Region     string   `json:"region"`
	Treatments []string `json:"treatments"`
}

// ResolveFinding maps one finding to its goal, region, and candidate
// treatments. The first matching rule supplies goal and region; every
// matching rule contributes treatments. The "Other" finding sentinel never
// resolves.
func (r *Resolver) ResolveFinding(finding string) (FindingMatch, bool) {
	if taxonomy.Normalize(finding) == taxonomy.Normalize(taxonomy.OtherFinding) {
		return FindingMatch{}, false
	}
	first, ok := taxonomy.FirstMatch(r.catalog.FindingRules, finding)
	if !ok {
		return FindingMatch{}, false
	}
	match := FindingMatch{Goal: first.Goal, Region: first.Region}
	for _, outcome := range taxonomy.AllMatches(r.catalog.FindingRules, finding) {
		match.Treatments = appendUnique(match.Treatments, outcome.Treatments...)
	}
	return match, true
}

// Combined aggregates several selected findings for display and charting.
type Combined struct {
	// Interest concatenates each finding's goal in selection order. It is a
	// display string, so duplicates are kept.
	Interest string `json:"interest"`
	// Region is the single shared region, "Multiple" when the findings span
	// more than one zone, or "" when nothing resolved.
	Region string `json:"region"`
	// Treatments is the deduplicated union of candidate treatments.
	Treatments []string `json:"treatments"`
}

// CombineFindings resolves each finding and aggregates the results.
// Findings that do not resolve (including the "Other" sentinel) contribute
// nothing.
func (r *Resolver) CombineFindings(findings []string) Combined {
	var combined Combined
	var goals []string
	var regions []string
	for _, f := range findings {
		match, ok := r.ResolveFinding(f)
		if !ok {
			continue
		}
		goals = append(goals, match.Goal)
		regions = appendUnique(regions, match.Region)
		combined.Treatments = appendUnique(combined.Treatments, match.Treatments...)
	}
	combined.Interest = strings.Join(goals, ", ")
	switch len(regions) {
	case 0:
		combined.Region = ""
	case 1:
		combined.Region = regions[0]
	default:
		combined.Region = taxonomy.RegionMultiple
	}
	return combined
}

// TreatmentsForGoal returns the candidate treatments for a goal. A goal
// must always yield actionable treatments, so when no rule matches the full
// treatment enumeration is returned.
func (r *Resolver) TreatmentsForGoal(goal string) []string {
	if matched := r.matchedTreatments(goal); len(matched) > 0 {
		return matched
	}
	out := make([]string, len(r.catalog.Treatments))
	copy(out, r.catalog.Treatments)
	return out
}

// RegionsForGoal returns the charting regions a goal implies. Used only
// when no finding is selected; may be empty. First match wins, so "Define
// Jawline" hits the "jawline" row and never the broader "line" row below it.
func (r *Resolver) RegionsForGoal(goal string) []string {
	region, ok := taxonomy.FirstMatch(r.catalog.GoalRegionRules, goal)
	if !ok {
		return nil
	}
	return []string{region}
}

// GoalsForTreatment inverts the goal→treatment table: the goals whose rule
// matches name this treatment as a candidate. No fallback — an unknown
// treatment has no implied goals.
func (r *Resolver) GoalsForTreatment(treatment string) []string {
	key := taxonomy.Normalize(treatment)
	var out []string
	for _, goal := range r.catalog.Goals {
		for _, t := range r.matchedTreatments(goal) {
			if taxonomy.Normalize(t) == key {
				out = appendUnique(out, goal)
				break
			}
		}
	}
	return out
}

// RegionsForTreatment derives regions for a treatment through the inverted
// goal table.
func (r *Resolver) RegionsForTreatment(treatment string) []string {
	var out []string
	for _, goal := range r.GoalsForTreatment(treatment) {
		out = appendUnique(out, r.RegionsForGoal(goal)...)
	}
	return out
}

// matchedTreatments is TreatmentsForGoal without the fallback. First match
// wins for the same reason as RegionsForGoal.
func (r *Resolver) matchedTreatments(goal string) []string {
	treatments, ok := taxonomy.FirstMatch(r.catalog.GoalTreatmentRules, goal)
	if !ok {
		return nil
	}
	return appendUnique(nil, treatments...)
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
