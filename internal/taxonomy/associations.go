package taxonomy

// defaultFindingRules maps assessment findings to the goal, charting region,
// and candidate treatments they imply. Keywords in one rule are conjunctive;
// synonyms get their own row. More specific rows sit above broader ones
// ("mid cheek" before "cheek", "jawline" before "line") — do not reorder
// without re-checking the overlapping rows below them.
func defaultFindingRules() []Rule[FindingOutcome] {
	return []Rule[FindingOutcome]{
		{Keywords: []string{"mid cheek"}, Result: FindingOutcome{Goal: "Improve Cheek Definition", Region: "Cheeks", Treatments: []string{"Filler"}}},
		{Keywords: []string{"malar"}, Result: FindingOutcome{Goal: "Improve Cheek Definition", Region: "Cheeks", Treatments: []string{"Filler"}}},
		{Keywords: []string{"cheek"}, Result: FindingOutcome{Goal: "Improve Cheek Definition", Region: "Cheeks", Treatments: []string{"Filler"}}},
		{Keywords: []string{"thin", "lip"}, Result: FindingOutcome{Goal: "Fuller Lips", Region: "Lips", Treatments: []string{"Filler"}}},
		{Keywords: []string{"gummy"}, Result: FindingOutcome{Goal: "Refine Smile", Region: "Lips", Treatments: []string{"Neurotoxin"}}},
		{Keywords: []string{"perioral"}, Result: FindingOutcome{Goal: "Smooth Lines & Wrinkles", Region: "Lips", Treatments: []string{"Neurotoxin", "Filler"}}},
		{Keywords: []string{"downturned"}, Result: FindingOutcome{Goal: "Refine Smile", Region: "Lips", Treatments: []string{"Filler", "Neurotoxin"}}},
		{Keywords: []string{"frown"}, Result: FindingOutcome{Goal: "Smooth Lines & Wrinkles", Region: "Forehead", Treatments: []string{"Neurotoxin"}}},
		{Keywords: []string{"forehead"}, Result: FindingOutcome{Goal: "Smooth Lines & Wrinkles", Region: "Forehead", Treatments: []string{"Neurotoxin"}}},
		{Keywords: []string{"brow"}, Result: FindingOutcome{Goal: "Smooth Lines & Wrinkles", Region: "Forehead", Treatments: []string{"Neurotoxin", "Ultherapy"}}},
		{Keywords: []string{"crow"}, Result: FindingOutcome{Goal: "Smooth Lines & Wrinkles", Region: "Under eyes", Treatments: []string{"Neurotoxin"}}},
		{Keywords: []string{"hollow"}, Result: FindingOutcome{Goal: "Refresh Under Eyes", Region: "Under eyes", Treatments: []string{"Filler"}}},
		{Keywords: []string{"dark circle"}, Result: FindingOutcome{Goal: "Refresh Under Eyes", Region: "Under eyes", Treatments: []string{"Filler", "Skincare"}}},
		{Keywords: []string{"dorsal"}, Result: FindingOutcome{Goal: "Improve Nose Profile", Region: "Nose", Treatments: []string{"Filler"}}},
		{Keywords: []string{"nasal"}, Result: FindingOutcome{Goal: "Improve Nose Profile", Region: "Nose", Treatments: []string{"Filler"}}},
		{Keywords: []string{"jowl"}, Result: FindingOutcome{Goal: "Define Jawline", Region: "Jawline", Treatments: []string{"Filler", "Ultherapy"}}},
		{Keywords: []string{"jawline"}, Result: FindingOutcome{Goal: "Define Jawline", Region: "Jawline", Treatments: []string{"Filler", "Ultherapy"}}},
		{Keywords: []string{"submental"}, Result: FindingOutcome{Goal: "Slim Double Chin", Region: "Chin", Treatments: []string{"Kybella"}}},
		{Keywords: []string{"double chin"}, Result: FindingOutcome{Goal: "Slim Double Chin", Region: "Chin", Treatments: []string{"Kybella"}}},
		{Keywords: []string{"recessed chin"}, Result: FindingOutcome{Goal: "Define Jawline", Region: "Chin", Treatments: []string{"Filler"}}},
		{Keywords: []string{"acne"}, Result: FindingOutcome{Goal: "Smooth Skin Texture", Region: "Full face", Treatments: []string{"Microneedling", "Laser"}}},
		{Keywords: []string{"scar"}, Result: FindingOutcome{Goal: "Smooth Skin Texture", Region: "Full face", Treatments: []string{"Microneedling", "Laser"}}},
		{Keywords: []string{"sun damage"}, Result: FindingOutcome{Goal: "Even Skin Tone", Region: "Full face", Treatments: []string{"Laser", "Chemical Peel", "Skincare"}}},
		{Keywords: []string{"tone"}, Result: FindingOutcome{Goal: "Even Skin Tone", Region: "Full face", Treatments: []string{"Chemical Peel", "Laser", "Skincare"}}},
		{Keywords: []string{"texture"}, Result: FindingOutcome{Goal: "Smooth Skin Texture", Region: "Full face", Treatments: []string{"Microneedling", "Chemical Peel", "Skincare"}}},
		{Keywords: []string{"redness"}, Result: FindingOutcome{Goal: "Reduce Redness", Region: "Full face", Treatments: []string{"Laser", "Skincare"}}},
	}
}

// defaultGoalRegionRules maps goal text to charting regions when no finding
// was selected. "jawline" must stay above "line".
func defaultGoalRegionRules() []Rule[string] {
	return []Rule[string]{
		{Keywords: []string{"cheek"}, Result: "Cheeks"},
		{Keywords: []string{"lip"}, Result: "Lips"},
		{Keywords: []string{"smile"}, Result: "Lips"},
		{Keywords: []string{"under eye"}, Result: "Under eyes"},
		{Keywords: []string{"jawline"}, Result: "Jawline"},
		{Keywords: []string{"chin"}, Result: "Chin"},
		{Keywords: []string{"nose"}, Result: "Nose"},
		{Keywords: []string{"wrinkle"}, Result: "Forehead"},
		{Keywords: []string{"line"}, Result: "Forehead"},
		{Keywords: []string{"tone"}, Result: "Full face"},
		{Keywords: []string{"texture"}, Result: "Full face"},
		{Keywords: []string{"redness"}, Result: "Full face"},
		{Keywords: []string{"aging"}, Result: "Full face"},
	}
}

// defaultGoalTreatmentRules maps goal text to candidate treatments. First
// match wins, so "jawline" must stay above "line" here too.
func defaultGoalTreatmentRules() []Rule[[]string] {
	return []Rule[[]string]{
		{Keywords: []string{"cheek"}, Result: []string{"Filler"}},
		{Keywords: []string{"lip"}, Result: []string{"Filler"}},
		{Keywords: []string{"smile"}, Result: []string{"Neurotoxin", "Filler"}},
		{Keywords: []string{"under eye"}, Result: []string{"Filler"}},
		{Keywords: []string{"jawline"}, Result: []string{"Filler", "Ultherapy"}},
		{Keywords: []string{"chin"}, Result: []string{"Kybella", "Filler"}},
		{Keywords: []string{"nose"}, Result: []string{"Filler"}},
		{Keywords: []string{"wrinkle"}, Result: []string{"Neurotoxin"}},
		{Keywords: []string{"line"}, Result: []string{"Neurotoxin"}},
		{Keywords: []string{"tone"}, Result: []string{"Chemical Peel", "Laser", "Skincare"}},
		{Keywords: []string{"texture"}, Result: []string{"Microneedling", "Chemical Peel", "Skincare"}},
		{Keywords: []string{"redness"}, Result: []string{"Laser", "Skincare"}},
		{Keywords: []string{"aging"}, Result: []string{"Neurotoxin", "Skincare"}},
	}
}

// defaultProductRules are the recommendation rows per treatment. Unlike the
// tables above, a row fires on any keyword hit in the context string.
func defaultProductRules() map[string][]Rule[[]string] {
	return map[string][]Rule[[]string]{
		"Neurotoxin": {
			{Keywords: []string{"gummy"}, Result: []string{"Botox"}},
			{Keywords: []string{"smile"}, Result: []string{"Botox", "Dysport"}},
			{Keywords: []string{"forehead", "frown", "crow", "brow", "wrinkle", "line"}, Result: []string{"Botox", "Dysport", "Xeomin"}},
			{Keywords: []string{"prevent", "aging"}, Result: []string{"Jeuveau", "Dysport"}},
		},
		"Filler": {
			{Keywords: []string{"cheek", "malar"}, Result: []string{"Juvederm Voluma", "Restylane Lyft", "Sculptra"}},
			{Keywords: []string{"lip", "smile", "perioral"}, Result: []string{"Restylane Kysse", "Juvederm Ultra", "RHA 3"}},
			{Keywords: []string{"under eye", "hollow", "dark circle"}, Result: []string{"Restylane Lyft"}},
			{Keywords: []string{"jawline", "jowl", "chin"}, Result: []string{"Juvederm Voluma", "RHA 3"}},
			{Keywords: []string{"nose", "dorsal", "nasal"}, Result: []string{"Juvederm Voluma"}},
		},
		"Laser": {
			{Keywords: []string{"sun", "tone", "pigment", "dark"}, Result: []string{"BBL Photofacial"}},
			{Keywords: []string{"texture", "scar", "acne"}, Result: []string{"Moxi", "Fraxel"}},
			{Keywords: []string{"redness"}, Result: []string{"BBL Photofacial"}},
			{Keywords: []string{"prevent", "aging", "glow"}, Result: []string{"Clear + Brilliant", "Moxi"}},
		},
		"Microneedling": {
			{Keywords: []string{"acne", "scar"}, Result: []string{"SkinPen", "Morpheus8"}},
			{Keywords: []string{"texture", "pore", "tone"}, Result: []string{"SkinPen", "Vivace"}},
			{Keywords: []string{"jawline", "tighten"}, Result: []string{"Morpheus8"}},
		},
		"Chemical Peel": {
			{Keywords: []string{"sun", "tone", "pigment"}, Result: []string{"VI Peel", "Perfect Derma Peel"}},
			{Keywords: []string{"texture", "line", "aging"}, Result: []string{"Glycolic Peel"}},
		},
		"Skincare": {
			{Keywords: []string{"texture", "aging", "prevent", "wrinkle"}, Result: []string{"Medical-Grade Retinol", "Growth Factor Serum"}},
			{Keywords: []string{"tone", "sun", "dark"}, Result: []string{"Vitamin C Serum", "Tinted SPF 50"}},
			{Keywords: []string{"redness"}, Result: []string{"Growth Factor Serum"}},
		},
	}
}
