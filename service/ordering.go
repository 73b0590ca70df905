package service

import (
	"sort"

	"ichipets/types"
)

// NormalizeOrder 缺 sort_order 的条目以其下标补齐，然后按 sort_order 稳定升序
func NormalizeOrder[T any](list []T, key func(T) (int, bool), assign func(*T, int)) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if _, ok := key(out[i]); !ok {
			assign(&out[i], i)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := key(out[i])
		b, _ := key(out[j])
		return a < b
	})
	return out
}

// NormalizeSections 区块与各区块的条目两层独立归一
func NormalizeSections(sections []types.ProductSection) []types.ProductSection {
	out := NormalizeOrder(sections,
		func(s types.ProductSection) (int, bool) {
			if s.SortOrder == nil {
				return 0, false
			}
			return *s.SortOrder, true
		},
		func(s *types.ProductSection, i int) {
			v := i
			s.SortOrder = &v
		},
	)
	for i := range out {
		out[i].Items = NormalizeOrder(out[i].Items,
			func(it types.SectionItem) (int, bool) {
				if it.SortOrder == nil {
					return 0, false
				}
				return *it.SortOrder, true
			},
			func(it *types.SectionItem, idx int) {
				v := idx
				it.SortOrder = &v
			},
		)
	}
	return out
}

// SortBanners sort_order 升序，相同保持原序
func SortBanners(banners []types.Banner) []types.Banner {
	out := make([]types.Banner, len(banners))
	copy(out, banners)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// SplitBanners 按 isSubBanner 分成两个展示集合，各自有序
func SplitBanners(banners []types.Banner) (main, sub []types.Banner) {
	main = make([]types.Banner, 0)
	sub = make([]types.Banner, 0)
	for _, b := range SortBanners(banners) {
		if b.IsSubBanner {
			sub = append(sub, b)
		} else {
			main = append(main, b)
		}
	}
	return main, sub
}
