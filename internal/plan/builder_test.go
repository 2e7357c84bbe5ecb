package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenmd/lead-dashboard/internal/taxonomy"
)

func TestBuildItemsFansOutPerProduct(t *testing.T) {
	sel := Selection{
		Interest: "Even Skin Tone",
		Findings: []string{"Sun Damage"},
		CheckedTreatments: []string{
			"Skincare",
		},
		Products: map[string][]string{
			"Skincare": {"Vitamin C Serum", "Tinted SPF 50"},
		},
		Region:   "Full face",
		Timeline: "1-3 months",
		Notes:    "discussed at consult",
	}

	items := BuildItems(sel)
	require.Len(t, items, 2)

	assert.Equal(t, "Vitamin C Serum", items[0].Product)
	assert.Equal(t, "Tinted SPF 50", items[1].Product)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "Skincare", item.Treatment)
		assert.Equal(t, "Even Skin Tone", item.Interest)
		assert.Equal(t, []string{"Sun Damage"}, item.Findings)
		assert.Equal(t, "Full face", item.Region)
		assert.Equal(t, "1-3 months", item.Timeline)
		assert.Equal(t, "discussed at consult", item.Notes)
	}
}

func TestBuildItemsSingleTreatmentNoProducts(t *testing.T) {
	items := BuildItems(Selection{Treatment: "Kybella", Region: "Chin"})
	require.Len(t, items, 1)
	assert.Equal(t, "Kybella", items[0].Treatment)
	assert.Equal(t, "", items[0].Product)
}

func TestBuildItemsGoalOnlyPlaceholder(t *testing.T) {
	items := BuildItems(Selection{Interest: "Fuller Lips"})
	require.Len(t, items, 1)
	assert.Equal(t, taxonomy.GoalOnlyTreatment, items[0].Treatment)
	assert.Equal(t, "Fuller Lips", items[0].Interest)

	items = BuildItems(Selection{Findings: []string{"Thin Lips"}})
	require.Len(t, items, 1)
	assert.Equal(t, taxonomy.GoalOnlyTreatment, items[0].Treatment)
}

func TestBuildItemsEmptySelectionRejected(t *testing.T) {
	assert.Empty(t, BuildItems(Selection{}))
	assert.Empty(t, BuildItems(Selection{Findings: []string{"  ", ""}}))
	// "Other" treatment with no custom text and nothing else selected.
	assert.Empty(t, BuildItems(Selection{Treatment: taxonomy.OtherTreatment}))
}

func TestBuildItemsCustomTreatment(t *testing.T) {
	items := BuildItems(Selection{
		Treatment:       taxonomy.OtherTreatment,
		CustomTreatment: "PRP Facial",
	})
	require.Len(t, items, 1)
	assert.Equal(t, "PRP Facial", items[0].Treatment)
}

func TestBuildItemsCheckedTreatmentsPlusCustom(t *testing.T) {
	items := BuildItems(Selection{
		Interest:          "Smooth Skin Texture",
		CheckedTreatments: []string{"Microneedling", taxonomy.OtherTreatment, "Microneedling", " "},
		CustomTreatment:   "PRP Facial",
	})
	require.Len(t, items, 2)
	assert.Equal(t, "Microneedling", items[0].Treatment)
	assert.Equal(t, "PRP Facial", items[1].Treatment)
}

func TestBuildItemsOtherProductUsesCustomText(t *testing.T) {
	items := BuildItems(Selection{
		Treatment:      "Filler",
		Products:       map[string][]string{"Filler": {taxonomy.OtherProduct}},
		CustomProducts: map[string]string{"Filler": "Revanesse Versa"},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "Revanesse Versa", items[0].Product)
}

func TestBuildItemsOtherProductWithoutTextDrops(t *testing.T) {
	// The only selected product was "Other" with no text typed, so the
	// treatment falls back to a single no-product item.
	items := BuildItems(Selection{
		Treatment: "Filler",
		Products:  map[string][]string{"Filler": {taxonomy.OtherProduct}},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Product)

	items = BuildItems(Selection{
		Treatment: "Filler",
		Products:  map[string][]string{"Filler": {"Juvederm Ultra", taxonomy.OtherProduct}},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "Juvederm Ultra", items[0].Product)
}

func TestBuildItemsSingleTreatmentWinsOverChecked(t *testing.T) {
	items := BuildItems(Selection{
		Treatment:         "Neurotoxin",
		CheckedTreatments: []string{"Filler", "Laser"},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "Neurotoxin", items[0].Treatment)
}
