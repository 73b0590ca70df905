package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ichipets/config"
	"ichipets/types"
	"ichipets/upstream"
)

func catalogFixture(t *testing.T, categories []types.Category, products []types.Product) *CatalogService {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(categories)
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(products)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	conf := &config.Config{
		Upstream: &config.Upstream{BaseURL: srv.URL},
		Catalog:  &config.Catalog{PageSize: 12, SuggestLimit: 5},
	}
	s := NewCatalogService(conf, upstream.NewClient(conf))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func sampleProducts() []types.Product {
	return []types.Product{
		{ID: 10, Name: "Collar", Code: "CL-01", CategoryID: 1},
		{ID: 11, Name: "Gấu bông Teddy", Code: "TD-01", CategoryID: 2},
		{ID: 12, Name: "Teddy mini", Code: "TD-02", CategoryID: 2},
		{ID: 13, Name: "Bát ăn", CategoryID: 1},
	}
}

func TestFilterByCategory(t *testing.T) {
	s := catalogFixture(t,
		[]types.Category{{ID: 1, Name: "Dogs"}},
		[]types.Product{{ID: 10, CategoryID: 1, Name: "Collar"}},
	)

	got := s.FilterByCategory(1)
	if len(got) != 1 || got[0].ID != 10 {
		t.Fatalf("expected product 10, got %+v", got)
	}

	if got := s.FilterByCategory(2); len(got) != 0 {
		t.Fatalf("expected empty list for unknown category, got %+v", got)
	}
}

func TestFilterBySearchEmptyTermIsIdentity(t *testing.T) {
	products := sampleProducts()
	s := catalogFixture(t, []types.Category{{ID: 1}, {ID: 2}}, products)

	got := s.FilterBySearch("")
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
	for i := range got {
		if got[i].ID != products[i].ID {
			t.Fatalf("order not preserved at %d: %d != %d", i, got[i].ID, products[i].ID)
		}
	}
}

func TestFilterBySearchPredicate(t *testing.T) {
	s := catalogFixture(t, nil, sampleProducts())

	got := s.FilterBySearch("teddy")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}
	for _, p := range got {
		if p.ID != 11 && p.ID != 12 {
			t.Fatalf("unexpected match %+v", p)
		}
	}

	// 编码也参与匹配
	got = s.FilterBySearch("cl-01")
	if len(got) != 1 || got[0].ID != 10 {
		t.Fatalf("expected code match for product 10, got %+v", got)
	}

	if got := s.FilterBySearch("không có"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestSuggestLimitAndIsolation(t *testing.T) {
	var many []types.Product
	for i := 0; i < 8; i++ {
		many = append(many, types.Product{ID: i + 1, Name: fmt.Sprintf("Teddy %d", i+1), CategoryID: 1})
	}
	s := catalogFixture(t, nil, many)

	got := s.Suggest("teddy", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}

	// 联想不影响主过滤结果
	if full := s.FilterBySearch("teddy"); len(full) != 8 {
		t.Fatalf("suggest mutated the main result: %d", len(full))
	}

	if got := s.Suggest("", 5); len(got) != 0 {
		t.Fatalf("empty term must suggest nothing, got %d", len(got))
	}
}

func TestPaginate(t *testing.T) {
	var list []types.Product
	for i := 0; i < 12; i++ {
		list = append(list, types.Product{ID: i + 1})
	}

	if got := Paginate(list, 1, 5); len(got) != 5 || got[0].ID != 1 {
		t.Fatalf("page 1: got %d items, first %v", len(got), got)
	}
	if got := Paginate(list, 3, 5); len(got) != 2 || got[0].ID != 11 {
		t.Fatalf("page 3: got %d items, first %v", len(got), got)
	}
	if got := TotalPages(12, 5); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := Paginate(list, 4, 5); len(got) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d", len(got))
	}
}

func TestResolveSearchWinsOverCategory(t *testing.T) {
	s := catalogFixture(t, []types.Category{{ID: 1, Name: "Dogs"}, {ID: 2, Name: "Teddy"}}, sampleProducts())

	listing := s.Resolve(Query{CategoryID: 1, Search: "teddy", Page: 1})
	if listing.Category != nil {
		t.Fatalf("category selection must be cleared when searching, got %+v", listing.Category)
	}
	if listing.Search != "teddy" {
		t.Fatalf("expected search term kept, got %q", listing.Search)
	}
	if len(listing.Items) != 2 {
		t.Fatalf("expected search results, got %+v", listing.Items)
	}
}

func TestResolveCategoryAndClamping(t *testing.T) {
	s := catalogFixture(t, []types.Category{{ID: 2, Name: "Teddy"}}, sampleProducts())

	listing := s.Resolve(Query{CategoryID: 2, Page: 99})
	if listing.Category == nil || listing.Category.ID != 2 {
		t.Fatalf("expected category 2 selected, got %+v", listing.Category)
	}
	if listing.Page != 1 {
		t.Fatalf("out-of-range page must clamp, got %d", listing.Page)
	}
	if listing.Total != 2 || listing.TotalPages != 1 {
		t.Fatalf("unexpected listing %+v", listing)
	}

	empty := s.Resolve(Query{CategoryID: 99, Page: 1})
	if empty.Total != 0 || len(empty.Items) != 0 {
		t.Fatalf("unknown category must resolve empty, got %+v", empty)
	}
}
