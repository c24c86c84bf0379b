// Package catalog provides client-side filtering over the marketplace
// product list. The backend returns the full catalog in one call; narrowing
// happens locally.
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/raith/agroconnect/internal/api"
)

// Categories the marketplace recognizes, in display order.
func Categories() []string {
	return []string{"fertilizer", "pesticide", "seed", "tool", "equipment"}
}

// FilterByCategory keeps products of the given category; an empty category
// means all.
func FilterByCategory(products []api.Product, category string) []api.Product {
	if category == "" {
		return products
	}
	var out []api.Product
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// similarityThreshold keeps the ranked tail of a search useful: anything less
// similar than this to the query is noise, not a near-miss.
const similarityThreshold = 0.4

// Search ranks products against a query. Substring matches on name, seller
// or description always qualify; beyond those, names within editing distance
// of the query are included so a misspelled "fertilzer" still finds
// fertilizers. Results keep catalog order within each tier.
func Search(products []api.Product, query string) []api.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	type ranked struct {
		product api.Product
		score   float64
		pos     int
	}
	var hits []ranked
	for i, p := range products {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, query) ||
			strings.Contains(strings.ToLower(p.Seller), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			hits = append(hits, ranked{product: p, score: 1, pos: i})
			continue
		}
		if score := similarity(name, query); score >= similarityThreshold {
			hits = append(hits, ranked{product: p, score: score, pos: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].pos < hits[j].pos
	})

	out := make([]api.Product, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.product)
	}
	return out
}

// similarity scores the query against the whole name and against each word
// of it, so "urea" matches "urea fertilizer" without paying for the rest of
// the name.
func similarity(name, query string) float64 {
	candidates := append(strings.Fields(name), name)
	best := 0.0
	for _, c := range candidates {
		longest := len(c)
		if len(query) > longest {
			longest = len(query)
		}
		if longest == 0 {
			continue
		}
		d := levenshtein.ComputeDistance(c, query)
		if s := 1 - float64(d)/float64(longest); s > best {
			best = s
		}
	}
	return best
}
