package service

import (
	"reflect"
	"testing"

	"ichipets/types"
)

func intPtr(v int) *int { return &v }

func sectionOrders(sections []types.ProductSection) []string {
	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	return titles
}

func TestNormalizeSections(t *testing.T) {
	tree := []types.ProductSection{
		{Title: "C", SortOrder: intPtr(2)},
		{Title: "A", SortOrder: intPtr(0), Items: []types.SectionItem{
			{Content: "second", SortOrder: intPtr(5)},
			{Content: "first", SortOrder: intPtr(1)},
			{Content: "backfilled"}, // 缺 sort_order，应以下标补齐
		}},
		{Title: "B"}, // 缺 sort_order，下标 2 与 C 并列，稳定排序下 C 在前
	}

	got := NormalizeSections(tree)
	if titles := sectionOrders(got); !reflect.DeepEqual(titles, []string{"A", "C", "B"}) {
		t.Fatalf("unexpected section order %v", titles)
	}

	items := got[0].Items
	if items[0].Content != "first" || items[1].Content != "backfilled" || items[2].Content != "second" {
		t.Fatalf("unexpected item order %+v", items)
	}
	if items[1].SortOrder == nil || *items[1].SortOrder != 2 {
		t.Fatalf("missing sort_order must be backfilled with index, got %+v", items[1].SortOrder)
	}
}

func TestNormalizeSectionsIdempotent(t *testing.T) {
	tree := []types.ProductSection{
		{Title: "B", Items: []types.SectionItem{{Content: "x"}, {Content: "y", SortOrder: intPtr(0)}}},
		{Title: "A", SortOrder: intPtr(0)},
	}

	once := NormalizeSections(tree)
	twice := NormalizeSections(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize must be idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeOrderStable(t *testing.T) {
	type entry struct {
		name string
		ord  *int
	}
	list := []entry{
		{name: "a", ord: intPtr(1)},
		{name: "b", ord: intPtr(1)},
		{name: "c", ord: intPtr(0)},
	}
	got := NormalizeOrder(list,
		func(e entry) (int, bool) {
			if e.ord == nil {
				return 0, false
			}
			return *e.ord, true
		},
		func(e *entry, i int) { e.ord = intPtr(i) },
	)
	if got[0].name != "c" || got[1].name != "a" || got[2].name != "b" {
		t.Fatalf("ties must keep original order, got %+v", got)
	}
}

func TestSplitBanners(t *testing.T) {
	banners := []types.Banner{
		{ID: 1, SortOrder: 3, IsSubBanner: false},
		{ID: 2, SortOrder: 1, IsSubBanner: true},
		{ID: 3, SortOrder: 0, IsSubBanner: false},
		{ID: 4, SortOrder: 2, IsSubBanner: true},
	}

	main, sub := SplitBanners(banners)
	if len(main) != 2 || main[0].ID != 3 || main[1].ID != 1 {
		t.Fatalf("unexpected main banners %+v", main)
	}
	if len(sub) != 2 || sub[0].ID != 2 || sub[1].ID != 4 {
		t.Fatalf("unexpected sub banners %+v", sub)
	}
}
