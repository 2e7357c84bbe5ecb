// Package taxonomy holds the static clinical catalog behind the treatment
// plan feature: findings grouped by facial area, patient goals, charting
// regions, treatment categories, per-treatment product lists, and the
// keyword rule tables that link adjacent taxonomies together.
//
// The catalog is plain data. Build it once at startup with DefaultCatalog
// and pass it to the resolver/composer; nothing in this package mutates it
// after construction.
package taxonomy

// Sentinel values shared across the taxonomy. "Other" entries are manual
// affordances in the UI, never produced by matching.
const (
	OtherFinding   = "Other"
	OtherGoal      = "Other"
	OtherTreatment = "Other"
	OtherProduct   = "Other"

	// GoalOnlyTreatment is the placeholder treatment recorded when a
	// provider logs a goal or finding without discussing a treatment.
	GoalOnlyTreatment = "Goal only"

	// RegionMultiple is the charting region when selected findings span
	// more than one anatomical zone.
	RegionMultiple = "Multiple"
)

// Area groups findings by facial zone for display.
type Area struct {
	Name     string
	Findings []string
}

// FindingOutcome is the target side of a finding rule: the goal and region
// the finding implies, plus candidate treatments.
type FindingOutcome struct {
	Goal       string
	Region     string
	Treatments []string
}

// Catalog is the full immutable taxonomy handed to the recommendation
// engine.
type Catalog struct {
	Areas      []Area
	Goals      []string
	Regions    []string
	Treatments []string

	// ProductsByTreatment lists each treatment's catalog. Entries may be
	// empty; non-empty lists end with the "Other" affordance.
	ProductsByTreatment map[string][]string

	FindingRules       []Rule[FindingOutcome]
	GoalRegionRules    []Rule[string]
	GoalTreatmentRules []Rule[[]string]

	// ProductRules are the recommendation rows, keyed by treatment.
	ProductRules map[string][]Rule[[]string]
}

// DefaultCatalog builds the standard catalog. Each call returns a fresh
// value so callers can never alias shared mutable state.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Areas:               defaultAreas(),
		Goals:               defaultGoals(),
		Regions:             defaultRegions(),
		Treatments:          defaultTreatments(),
		ProductsByTreatment: defaultProducts(),
		FindingRules:        defaultFindingRules(),
		GoalRegionRules:     defaultGoalRegionRules(),
		GoalTreatmentRules:  defaultGoalTreatmentRules(),
		ProductRules:        defaultProductRules(),
	}
}

// AllFindings flattens the area groups into one list, excluding the "Other"
// sentinel.
func (c *Catalog) AllFindings() []string {
	var out []string
	for _, area := range c.Areas {
		out = append(out, area.Findings...)
	}
	return out
}

// AreaOf returns the display area for a finding, or "" if unknown.
func (c *Catalog) AreaOf(finding string) string {
	key := Normalize(finding)
	for _, area := range c.Areas {
		for _, f := range area.Findings {
			if Normalize(f) == key {
				return area.Name
			}
		}
	}
	return ""
}

// HasTreatment reports whether the treatment is part of the enumeration.
func (c *Catalog) HasTreatment(treatment string) bool {
	key := Normalize(treatment)
	for _, t := range c.Treatments {
		if Normalize(t) == key {
			return true
		}
	}
	return false
}

// ProductsFor returns the product catalog for a treatment. Unknown
// treatments have no products.
func (c *Catalog) ProductsFor(treatment string) []string {
	return c.ProductsByTreatment[treatment]
}

func defaultAreas() []Area {
	return []Area{
		{Name: "Forehead", Findings: []string{"Forehead Lines", "Glabellar Frown Lines", "Brow Ptosis"}},
		{Name: "Eyes", Findings: []string{"Crow's Feet", "Under Eye Hollows", "Dark Circles"}},
		{Name: "Cheeks", Findings: []string{"Mid Cheek Flattening", "Malar Volume Loss"}},
		{Name: "Nose", Findings: []string{"Dorsal Hump", "Drooping Nasal Tip"}},
		{Name: "Lips", Findings: []string{"Thin Lips", "Gummy Smile", "Perioral Lines", "Downturned Mouth Corners"}},
		{Name: "Jawline & Chin", Findings: []string{"Jowls", "Ill-Defined Jawline", "Submental Fullness", "Recessed Chin"}},
		{Name: "Skin", Findings: []string{"Acne Scarring", "Sun Damage", "Uneven Skin Tone", "Rough Skin Texture", "Facial Redness"}},
	}
}

func defaultGoals() []string {
	return []string{
		"Smooth Lines & Wrinkles",
		"Improve Cheek Definition",
		"Fuller Lips",
		"Refine Smile",
		"Refresh Under Eyes",
		"Define Jawline",
		"Slim Double Chin",
		"Improve Nose Profile",
		"Even Skin Tone",
		"Smooth Skin Texture",
		"Reduce Redness",
		"Prevent Early Aging",
	}
}

func defaultRegions() []string {
	return []string{
		"Forehead",
		"Under eyes",
		"Cheeks",
		"Nose",
		"Lips",
		"Jawline",
		"Chin",
		"Full face",
		RegionMultiple,
		"Other",
	}
}

func defaultTreatments() []string {
	return []string{
		"Neurotoxin",
		"Filler",
		"Laser",
		"Microneedling",
		"Chemical Peel",
		"Skincare",
		"Kybella",
		"Ultherapy",
	}
}

func defaultProducts() map[string][]string {
	return map[string][]string{
		"Neurotoxin":    {"Botox", "Dysport", "Xeomin", "Jeuveau", OtherProduct},
		"Filler":        {"Juvederm Ultra", "Juvederm Voluma", "Restylane Kysse", "Restylane Lyft", "RHA 3", "Sculptra", OtherProduct},
		"Laser":         {"BBL Photofacial", "Moxi", "Fraxel", "Clear + Brilliant", OtherProduct},
		"Microneedling": {"SkinPen", "Morpheus8", "Vivace", OtherProduct},
		"Chemical Peel": {"VI Peel", "Perfect Derma Peel", "Glycolic Peel", OtherProduct},
		"Skincare":      {"Medical-Grade Retinol", "Vitamin C Serum", "Tinted SPF 50", "Growth Factor Serum", OtherProduct},
		"Kybella":       nil,
		"Ultherapy":     nil,
	}
}
