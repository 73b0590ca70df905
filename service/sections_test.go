package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ichipets/config"
	"ichipets/types"
	"ichipets/upstream"
)

type sectionBackend struct {
	existing    []types.ProductSection
	deleted     []string
	created     []types.ProductSection
	failOnNth   int // 第 n 次 create 失败（1 起始），0 不失败
	createCalls int
}

func (b *sectionBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/product-sections/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(b.existing)
		case r.Method == http.MethodDelete:
			b.deleted = append(b.deleted, strings.TrimPrefix(r.URL.Path, "/api/product-sections/"))
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodPost:
			b.createCalls++
			if b.failOnNth > 0 && b.createCalls == b.failOnNth {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"db down"}`))
				return
			}
			var sec types.ProductSection
			_ = json.NewDecoder(r.Body).Decode(&sec)
			b.created = append(b.created, sec)
			_, _ = w.Write([]byte(`{}`))
		}
	})
	return mux
}

func newSectionFixture(t *testing.T, backend *sectionBackend) *SectionService {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	conf := &config.Config{Upstream: &config.Upstream{BaseURL: srv.URL}}
	return &SectionService{Upstream: upstream.NewClient(conf)}
}

func TestReplaceSections(t *testing.T) {
	backend := &sectionBackend{
		existing: []types.ProductSection{{ID: 7, Title: "old"}, {ID: 8, Title: "older"}},
	}
	svc := newSectionFixture(t, backend)

	tree := []types.ProductSection{
		{Title: "Thông số", SortOrder: intPtr(1)},
		{Title: "Giới thiệu", SortOrder: intPtr(0)},
		{Title: "   "}, // 空标题的区块跳过
	}
	if err := svc.ReplaceSections(context.Background(), "tok", 12, tree); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if len(backend.deleted) != 2 {
		t.Fatalf("expected both old sections deleted, got %v", backend.deleted)
	}
	if len(backend.created) != 2 {
		t.Fatalf("expected 2 sections created, got %d", len(backend.created))
	}
	if backend.created[0].Title != "Giới thiệu" || backend.created[1].Title != "Thông số" {
		t.Fatalf("sections must be created in normalized order, got %+v", backend.created)
	}
}

func TestReplaceSectionsPartialFailure(t *testing.T) {
	backend := &sectionBackend{
		existing:  []types.ProductSection{{ID: 7, Title: "old"}},
		failOnNth: 2,
	}
	svc := newSectionFixture(t, backend)

	tree := []types.ProductSection{
		{Title: "A", SortOrder: intPtr(0)},
		{Title: "B", SortOrder: intPtr(1)},
	}
	err := svc.ReplaceSections(context.Background(), "tok", 12, tree)

	var partial *ErrSectionsPartial
	if !errors.As(err, &partial) {
		t.Fatalf("expected ErrSectionsPartial, got %v", err)
	}
	if partial.Created != 1 || partial.Wanted != 2 || partial.ProductID != 12 {
		t.Fatalf("unexpected partial report %+v", partial)
	}
}

func TestReplaceSectionsRequiresToken(t *testing.T) {
	svc := newSectionFixture(t, &sectionBackend{})
	err := svc.ReplaceSections(context.Background(), "", 12, nil)
	if !errors.Is(err, upstream.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestSectionsNormalizedOnRead(t *testing.T) {
	backend := &sectionBackend{
		existing: []types.ProductSection{
			{ID: 2, Title: "B", SortOrder: intPtr(1)},
			{ID: 1, Title: "A", SortOrder: intPtr(0), Items: []types.SectionItem{
				{Content: "y", SortOrder: intPtr(2)},
				{Content: "x", SortOrder: intPtr(0)},
			}},
		},
	}
	svc := newSectionFixture(t, backend)

	got, err := svc.Sections(context.Background(), 12)
	if err != nil {
		t.Fatalf("sections: %v", err)
	}
	if got[0].Title != "A" || got[1].Title != "B" {
		t.Fatalf("sections must come back sorted, got %+v", got)
	}
	if got[0].Items[0].Content != "x" {
		t.Fatalf("items must come back sorted, got %+v", got[0].Items)
	}
}
