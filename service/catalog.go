package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"ichipets/config"
	"ichipets/pkg/log"
	"ichipets/types"
	"ichipets/upstream"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Query 列表页的导航上下文
type Query struct {
	CategoryID int
	Search     string
	Page       int
}

// Listing 解析后的列表页状态
type Listing struct {
	Items      []types.Product `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Category   *types.Category `json:"category,omitempty"`
	Search     string          `json:"search,omitempty"`
}

type ICatalogService interface {
	Load(ctx context.Context) error
	Categories() []types.Category
	AllProducts() []types.Product
	FilterByCategory(categoryID int) []types.Product
	FilterBySearch(term string) []types.Product
	Suggest(term string, limit int) []types.Product
	Resolve(q Query) Listing
}

type CatalogService struct {
	Config   *config.Config
	Upstream *upstream.Client

	mu         sync.RWMutex
	categories []types.Category
	all        []types.Product
	byCategory cmap.ConcurrentMap[string, []types.Product]

	// 单调递增的加载序号，晚发出的加载赢，过期结果丢弃
	loadSeq atomic.Int64
}

var _ ICatalogService = (*CatalogService)(nil)

func NewCatalogService(conf *config.Config, up *upstream.Client) *CatalogService {
	return &CatalogService{
		Config:     conf,
		Upstream:   up,
		byCategory: cmap.New[[]types.Product](),
	}
}

// Load 并发拉取分类与商品，任一失败整体失败，不重试
func (s *CatalogService) Load(ctx context.Context) error {
	seq := s.loadSeq.Add(1)

	var (
		categories []types.Category
		products   []types.Product
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		categories, err = s.Upstream.Categories(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		products, err = s.Upstream.Products(egCtx, 0, "")
		return err
	})
	if err := eg.Wait(); err != nil {
		log.L.Error("catalog load failed", zap.Error(err))
		return err
	}

	if seq != s.loadSeq.Load() {
		log.L.Info("catalog load superseded", zap.Int64("seq", seq))
		return nil
	}

	grouped := cmap.New[[]types.Product]()
	for _, p := range products {
		key := strconv.Itoa(p.CategoryID)
		list, _ := grouped.Get(key)
		grouped.Set(key, append(list, p))
	}

	s.mu.Lock()
	s.categories = categories
	s.all = products
	s.byCategory = grouped
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) Categories() []types.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

func (s *CatalogService) AllProducts() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all
}

// FilterByCategory 精确取该分类的商品，无则空切片
func (s *CatalogService) FilterByCategory(categoryID int) []types.Product {
	s.mu.RLock()
	idx := s.byCategory
	s.mu.RUnlock()

	list, ok := idx.Get(strconv.Itoa(categoryID))
	if !ok {
		return []types.Product{}
	}
	return list
}

func matches(p *types.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		(p.Code != "" && strings.Contains(strings.ToLower(p.Code), term))
}

// FilterBySearch 名称或编码的大小写不敏感子串匹配；空串返回全量
func (s *CatalogService) FilterBySearch(term string) []types.Product {
	all := s.AllProducts()
	if term == "" {
		return all
	}

	lower := strings.ToLower(term)
	out := make([]types.Product, 0)
	for _, p := range all {
		if matches(&p, lower) {
			out = append(out, p)
		}
	}
	return out
}

// Suggest 输入联想，同一匹配规则，截断到 limit，不影响主列表
func (s *CatalogService) Suggest(term string, limit int) []types.Product {
	if term == "" {
		return []types.Product{}
	}
	if limit <= 0 {
		limit = s.Config.Catalog.SuggestLimitOrDefault()
	}

	lower := strings.ToLower(term)
	out := make([]types.Product, 0, limit)
	for _, p := range s.AllProducts() {
		if matches(&p, lower) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Paginate 1 起始页码的半开区间切片，越界页由调用方先钳制
func Paginate(list []types.Product, page, pageSize int) []types.Product {
	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= len(list) {
		return []types.Product{}
	}
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

func TotalPages(count, pageSize int) int {
	if count == 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Resolve 把导航上下文解析为列表页状态。
// 同时带搜索词与分类时搜索优先，分类选择被清空。
func (s *CatalogService) Resolve(q Query) Listing {
	pageSize := s.Config.Catalog.PageSizeOrDefault()

	var (
		items    []types.Product
		category *types.Category
		search   string
	)
	switch {
	case q.Search != "":
		search = q.Search
		items = s.FilterBySearch(q.Search)
	case q.CategoryID > 0:
		items = s.FilterByCategory(q.CategoryID)
		for _, c := range s.Categories() {
			if c.ID == q.CategoryID {
				cc := c
				category = &cc
				break
			}
		}
	default:
		items = s.AllProducts()
	}

	totalPages := TotalPages(len(items), pageSize)
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return Listing{
		Items:      Paginate(items, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		Total:      len(items),
		TotalPages: totalPages,
		Category:   category,
		Search:     search,
	}
}
