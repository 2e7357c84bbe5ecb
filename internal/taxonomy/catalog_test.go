package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogReturnsFreshValues(t *testing.T) {
	a := DefaultCatalog()
	b := DefaultCatalog()
	a.Goals[0] = "mutated"
	assert.NotEqual(t, a.Goals[0], b.Goals[0])
}

// Every rule target must be a member of the enumeration it points into, so
// matching can never surface a value the UI does not know.
func TestFindingRuleTargetsAreCataloged(t *testing.T) {
	c := DefaultCatalog()
	goals := stringSet(c.Goals)
	regions := stringSet(c.Regions)

	for _, rule := range c.FindingRules {
		require.NotEmpty(t, rule.Keywords)
		assert.Contains(t, goals, rule.Result.Goal, "goal %q", rule.Result.Goal)
		assert.Contains(t, regions, rule.Result.Region, "region %q", rule.Result.Region)
		for _, treatment := range rule.Result.Treatments {
			assert.True(t, c.HasTreatment(treatment), "treatment %q", treatment)
		}
	}
}

func TestGoalRuleTargetsAreCataloged(t *testing.T) {
	c := DefaultCatalog()
	regions := stringSet(c.Regions)

	for _, rule := range c.GoalRegionRules {
		assert.Contains(t, regions, rule.Result, "region %q", rule.Result)
	}
	for _, rule := range c.GoalTreatmentRules {
		for _, treatment := range rule.Result {
			assert.True(t, c.HasTreatment(treatment), "treatment %q", treatment)
		}
	}
}

func TestProductRuleTargetsAreCataloged(t *testing.T) {
	c := DefaultCatalog()
	for treatment, rules := range c.ProductRules {
		require.True(t, c.HasTreatment(treatment), "treatment %q", treatment)
		catalog := stringSet(c.ProductsFor(treatment))
		for _, rule := range rules {
			for _, product := range rule.Result {
				assert.Contains(t, catalog, product, "%s product %q", treatment, product)
			}
		}
	}
}

func TestProductListsEndWithOther(t *testing.T) {
	c := DefaultCatalog()
	for treatment, products := range c.ProductsByTreatment {
		if len(products) == 0 {
			continue
		}
		assert.Equal(t, OtherProduct, products[len(products)-1], "treatment %q", treatment)
	}
}

func TestEveryFindingResolvesThroughSomeRule(t *testing.T) {
	c := DefaultCatalog()
	for _, finding := range c.AllFindings() {
		_, ok := FirstMatch(c.FindingRules, finding)
		assert.True(t, ok, "finding %q has no rule", finding)
	}
}

func TestAreaOf(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, "Cheeks", c.AreaOf("Mid Cheek Flattening"))
	assert.Equal(t, "Lips", c.AreaOf("thin lips"))
	assert.Equal(t, "", c.AreaOf("Unknown Finding"))
}

func stringSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
