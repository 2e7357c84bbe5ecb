package recommend

import (
	"strings"

	"github.com/lumenmd/lead-dashboard/internal/taxonomy"
)

// Composer narrows a treatment's product catalog to the subset worth
// suggesting for the provider's current selection context.
type Composer struct {
	catalog  *taxonomy.Catalog
	resolver *Resolver
}

// NewComposer creates a composer sharing the resolver's catalog.
func NewComposer(catalog *taxonomy.Catalog, resolver *Resolver) *Composer {
	return &Composer{catalog: catalog, resolver: resolver}
}

// RecommendedProducts returns the products of every recommendation row for
// the treatment with at least one keyword hit in the context, in first-match
// order, restricted to the treatment's actual catalog. The "Other"
// affordance is never recommended. An empty context yields nothing — no
// speculative suggestions.
func (c *Composer) RecommendedProducts(treatment, context string) []string {
	if strings.TrimSpace(context) == "" {
		return nil
	}
	rules := c.catalog.ProductRules[treatment]
	if len(rules) == 0 {
		return nil
	}

	inCatalog := make(map[string]bool, len(c.catalog.ProductsFor(treatment)))
	for _, p := range c.catalog.ProductsFor(treatment) {
		inCatalog[p] = true
	}

	var out []string
	for _, products := range taxonomy.AnyKeywordMatches(rules, context) {
		for _, p := range products {
			if p == taxonomy.OtherProduct || !inCatalog[p] {
				continue
			}
			out = appendUnique(out, p)
		}
	}
	return out
}

// BuildContext assembles the space-joined context string the product rows
// match against: the active goal text, then each selected finding. With
// includeDerived set (the treatment-first entry flow) each finding also
// contributes the goal and region it resolves to, so product rows can fire
// even though the provider never picked a goal.
func (c *Composer) BuildContext(goal string, findings []string, includeDerived bool) string {
	var parts []string
	if strings.TrimSpace(goal) != "" {
		parts = append(parts, goal)
	}
	for _, f := range findings {
		if strings.TrimSpace(f) == "" {
			continue
		}
		parts = append(parts, f)
		if !includeDerived {
			continue
		}
		if match, ok := c.resolver.ResolveFinding(f); ok {
			parts = append(parts, match.Goal, match.Region)
		}
	}
	return strings.Join(parts, " ")
}
