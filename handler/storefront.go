package handler

import (
	"net/http"
	"strconv"

	"ichipets/config"
	"ichipets/pkg/context"
	"ichipets/pkg/response"
	"ichipets/service"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type StorefrontHandler struct {
	Config   *config.Config
	Catalog  service.ICatalogService
	Sections service.ISectionService
	Upstream *upstream.Client
	Ref      *service.RefCache
}

func (h *StorefrontHandler) RegisterRouter(r gin.IRouter) {
	storefront := r.Group("/v1/storefront")
	storefront.GET("/home", context.Wrap(h.Home))
	storefront.GET("/products", context.Wrap(h.Products))
	storefront.GET("/products/:id", context.Wrap(h.ProductDetail))
	storefront.GET("/suggest", context.Wrap(h.Suggest))
}

type homePage struct {
	Banners    []types.Banner             `json:"banners"`
	SubBanners []types.Banner             `json:"sub_banners"`
	ShopInfo   *types.ShopInfo            `json:"shop_info"`
	Categories []types.Category           `json:"categories"`
	Products   map[string][]types.Product `json:"products"`
	PageSize   int                        `json:"page_size"`
}

// Home 首页数据：banner、店铺信息、分类及各分类商品，一次拉齐
func (h *StorefrontHandler) Home(c *gin.Context) error {
	ctx := c.Request.Context()

	var (
		banners  []types.Banner
		shopInfo types.ShopInfo
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return h.Ref.GetJSON(egCtx, "banners", &banners, func() (interface{}, error) {
			return h.Upstream.Banners(egCtx)
		})
	})
	eg.Go(func() error {
		return h.Ref.GetJSON(egCtx, "shopinfo", &shopInfo, func() (interface{}, error) {
			return h.Upstream.ShopInfo(egCtx)
		})
	})
	eg.Go(func() error {
		return h.Catalog.Load(egCtx)
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	main, sub := service.SplitBanners(banners)

	pageSize := 5
	if h.Config.Catalog != nil && h.Config.Catalog.HomePageSize > 0 {
		pageSize = h.Config.Catalog.HomePageSize
	}

	grouped := make(map[string][]types.Product)
	for _, cat := range h.Catalog.Categories() {
		grouped[strconv.Itoa(cat.ID)] = h.Catalog.FilterByCategory(cat.ID)
	}

	response.Success(c, homePage{
		Banners:    main,
		SubBanners: sub,
		ShopInfo:   &shopInfo,
		Categories: h.Catalog.Categories(),
		Products:   grouped,
		PageSize:   pageSize,
	})
	return nil
}

// Products 列表页：?category= ?search= ?page=，搜索优先于分类
func (h *StorefrontHandler) Products(c *gin.Context) error {
	if err := h.Catalog.Load(c.Request.Context()); err != nil {
		return err
	}

	categoryID, _ := strconv.Atoi(c.Query("category"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	listing := h.Catalog.Resolve(service.Query{
		CategoryID: categoryID,
		Search:     c.Query("search"),
		Page:       page,
	})
	response.Success(c, listing)
	return nil
}

type productDetail struct {
	Product  *types.Product           `json:"product"`
	Groups   []service.AttributeGroup `json:"attribute_groups"`
	Sections []types.ProductSection   `json:"sections"`
	Related  []types.Product          `json:"related"`
	ShopInfo *types.ShopInfo          `json:"shop_info"`
}

const relatedLimit = 10

// ProductDetail 商品详情 + 描述区块 + 店铺信息并发取，同类商品随后取
func (h *StorefrontHandler) ProductDetail(c *gin.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}
	ctx := c.Request.Context()

	var (
		product  *types.Product
		sections []types.ProductSection
		shopInfo types.ShopInfo
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		product, err = h.Upstream.Product(egCtx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		sections, err = h.Sections.Sections(egCtx, id)
		return err
	})
	eg.Go(func() error {
		return h.Ref.GetJSON(egCtx, "shopinfo", &shopInfo, func() (interface{}, error) {
			return h.Upstream.ShopInfo(egCtx)
		})
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	// 同类商品依赖详情里的 category_id，串行在后
	var related []types.Product
	if product.CategoryID > 0 {
		siblings, err := h.Upstream.Products(ctx, product.CategoryID, "")
		if err == nil {
			for _, p := range siblings {
				if p.ID == product.ID {
					continue
				}
				related = append(related, p)
				if len(related) == relatedLimit {
					break
				}
			}
		}
	}

	response.Success(c, productDetail{
		Product:  product,
		Groups:   service.GroupValues(product),
		Sections: sections,
		Related:  related,
		ShopInfo: &shopInfo,
	})
	return nil
}

func (h *StorefrontHandler) Suggest(c *gin.Context) error {
	if err := h.Catalog.Load(c.Request.Context()); err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	response.Success(c, h.Catalog.Suggest(c.Query("term"), limit))
	return nil
}
