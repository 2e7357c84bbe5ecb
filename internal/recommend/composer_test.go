package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenmd/lead-dashboard/internal/taxonomy"
)

func newComposer() *Composer {
	catalog := taxonomy.DefaultCatalog()
	return NewComposer(catalog, NewResolver(catalog))
}

func TestRecommendedProducts(t *testing.T) {
	c := newComposer()

	tests := []struct {
		name      string
		treatment string
		context   string
		want      []string
	}{
		{"filler for cheeks", "Filler", "Improve Cheek Definition", []string{"Juvederm Voluma", "Restylane Lyft", "Sculptra"}},
		{"filler for lips", "Filler", "Fuller Lips Thin Lips", []string{"Restylane Kysse", "Juvederm Ultra", "RHA 3"}},
		{"neurotoxin for gummy smile", "Neurotoxin", "Refine Smile Gummy Smile", []string{"Botox", "Dysport"}},
		{"laser for sun damage", "Laser", "Even Skin Tone Sun Damage", []string{"BBL Photofacial"}},
		{"empty context yields nothing", "Filler", "", nil},
		{"blank context yields nothing", "Filler", "   ", nil},
		{"no keyword hit", "Filler", "something unrelated", nil},
		{"treatment without rules", "Kybella", "Slim Double Chin", nil},
		{"unknown treatment", "CoolSculpting", "cheek", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.RecommendedProducts(tt.treatment, tt.context))
		})
	}
}

func TestRecommendedProductsNeverSuggestsOther(t *testing.T) {
	c := newComposer()
	catalog := taxonomy.DefaultCatalog()

	for _, treatment := range catalog.Treatments {
		got := c.RecommendedProducts(treatment, "cheek lip smile line tone texture sun aging redness scar chin nose under eye")
		assert.NotContains(t, got, taxonomy.OtherProduct, "treatment %q", treatment)
		for _, p := range got {
			assert.Contains(t, catalog.ProductsFor(treatment), p, "treatment %q", treatment)
		}
	}
}

func TestRecommendedProductsDedupsAcrossRows(t *testing.T) {
	c := newComposer()

	// "tone" and "redness" both fire Laser rows naming BBL Photofacial.
	got := c.RecommendedProducts("Laser", "even tone facial redness")
	assert.Equal(t, []string{"BBL Photofacial"}, got)
}

func TestBuildContext(t *testing.T) {
	c := newComposer()

	assert.Equal(t, "", c.BuildContext("", nil, false))
	assert.Equal(t, "Fuller Lips", c.BuildContext("Fuller Lips", nil, false))
	assert.Equal(t, "Fuller Lips Thin Lips", c.BuildContext("Fuller Lips", []string{"Thin Lips"}, false))
	assert.Equal(t, "Thin Lips", c.BuildContext("  ", []string{"Thin Lips", " "}, false))
}

func TestBuildContextIncludesDerivedGoalAndRegion(t *testing.T) {
	c := newComposer()

	got := c.BuildContext("", []string{"Gummy Smile"}, true)
	assert.Equal(t, "Gummy Smile Refine Smile Lips", got)

	// Unresolvable findings contribute only themselves.
	got = c.BuildContext("", []string{"Other"}, true)
	assert.Equal(t, "Other", got)
}
