package catalog

import (
	"testing"

	"github.com/raith/agroconnect/internal/api"
)

func sampleProducts() []api.Product {
	return []api.Product{
		{ID: 1, Name: "Organic Compost Fertilizer", Category: "fertilizer", Seller: "GreenGrow Supplies"},
		{ID: 2, Name: "NPK Complex Fertilizer 19:19:19", Category: "fertilizer", Seller: "AgriChem Industries"},
		{ID: 3, Name: "Urea Fertilizer", Category: "fertilizer", Seller: "FarmFresh Supplies"},
		{ID: 4, Name: "Neem Oil Pesticide", Category: "pesticide", Seller: "EcoFarm Solutions"},
		{ID: 5, Name: "Hybrid Tomato Seeds", Category: "seed", Seller: "SeedCo"},
		{ID: 6, Name: "Steel Hand Trowel", Category: "tool", Seller: "ToolWorks"},
	}
}

func ids(products []api.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	products := sampleProducts()
	got := Search(products, "   ")
	if len(got) != len(products) {
		t.Fatalf("empty query should return everything, got %d", len(got))
	}
}

func TestSearchSubstringMatch(t *testing.T) {
	got := Search(sampleProducts(), "urea")
	if len(got) == 0 || got[0].ID != 3 {
		t.Fatalf("expected Urea Fertilizer first, got %v", ids(got))
	}
}

func TestSearchMatchesSeller(t *testing.T) {
	got := Search(sampleProducts(), "ecofarm")
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected seller match on EcoFarm, got %v", ids(got))
	}
}

func TestSearchToleratesMisspelling(t *testing.T) {
	got := Search(sampleProducts(), "fertilzer")
	if len(got) < 3 {
		t.Fatalf("misspelled query should still find fertilizers, got %v", ids(got))
	}
	for _, p := range got[:3] {
		if p.Category != "fertilizer" {
			t.Fatalf("expected fertilizers ranked first, got %v", ids(got))
		}
	}
}

func TestSearchDropsNoise(t *testing.T) {
	got := Search(sampleProducts(), "zzzzqqqq")
	if len(got) != 0 {
		t.Fatalf("nonsense query should match nothing, got %v", ids(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(sampleProducts(), "pesticide")
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected the single pesticide, got %v", ids(got))
	}
	if got := FilterByCategory(sampleProducts(), ""); len(got) != 6 {
		t.Fatalf("empty category should keep all products")
	}
}
