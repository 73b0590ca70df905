package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ichipets/pkg/context"
	"ichipets/pkg/log"
	"ichipets/pkg/response"
	"ichipets/service"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminContentHandler 后台的内容维护：banner、店铺信息、商品描述区块
type AdminContentHandler struct {
	Upstream *upstream.Client
	Sections service.ISectionService
	Ref      *service.RefCache
}

func (h *AdminContentHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/banners", context.Wrap(h.Banners))
	r.POST("/banners", context.Wrap(h.CreateBanner))
	r.PUT("/banners/:id", context.Wrap(h.UpdateBanner))
	r.DELETE("/banners/:id", context.Wrap(h.DeleteBanner))

	r.GET("/shop-info", context.Wrap(h.ShopInfo))
	r.POST("/shop-info", context.Wrap(h.SaveShopInfo))
	r.DELETE("/shop-info", context.Wrap(h.DeleteShopInfo))

	r.GET("/products/:id/sections", context.Wrap(h.ProductSections))
	r.PUT("/products/:id/sections", context.Wrap(h.ReplaceSections))
	r.POST("/sections/upload-image", context.Wrap(h.UploadSectionImage))
}

func (h *AdminContentHandler) Banners(c *gin.Context) error {
	banners, err := h.Upstream.Banners(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, service.SortBanners(banners))
	return nil
}

func bannerForm(c *gin.Context) (*upstream.BannerForm, error) {
	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))
	form := &upstream.BannerForm{
		IsSubBanner: c.PostForm("isSubBanner") == "true",
		SortOrder:   sortOrder,
	}
	image, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	form.Image = image
	return form, nil
}

func (h *AdminContentHandler) CreateBanner(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	form, err := bannerForm(c)
	if err != nil {
		return err
	}
	if form.Image == nil {
		return response.NewError(http.StatusBadRequest, "image is required")
	}
	banner, err := h.Upstream.CreateBanner(c.Request.Context(), token, form)
	if err != nil {
		return err
	}
	h.Ref.Invalidate(c.Request.Context(), "banners")
	response.Success(c, banner)
	return nil
}

func (h *AdminContentHandler) UpdateBanner(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid banner id")
	}
	form, err := bannerForm(c)
	if err != nil {
		return err
	}
	if err := h.Upstream.UpdateBanner(c.Request.Context(), token, id, form); err != nil {
		return err
	}
	h.Ref.Invalidate(c.Request.Context(), "banners")
	response.Success(c, nil)
	return nil
}

func (h *AdminContentHandler) DeleteBanner(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid banner id")
	}
	if err := h.Upstream.DeleteBanner(c.Request.Context(), token, id); err != nil {
		return err
	}
	h.Ref.Invalidate(c.Request.Context(), "banners")
	response.Success(c, nil)
	return nil
}

func (h *AdminContentHandler) ShopInfo(c *gin.Context) error {
	info, err := h.Upstream.ShopInfo(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, info)
	return nil
}

// shopInfoFields 店铺信息表单里允许透传的字段
var shopInfoFields = []string{
	"name", "phone", "email", "address",
	"link_face", "link_mess", "link_tiktok",
	"opening_hours", "description",
}

func (h *AdminContentHandler) SaveShopInfo(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	ctx := c.Request.Context()

	fields := make(map[string]string)
	for _, key := range shopInfoFields {
		if v, ok := c.GetPostForm(key); ok {
			fields[key] = v
		}
	}
	logo, err := formFile(c, "logo_image")
	if err != nil {
		return err
	}

	// 有则改、无则建
	existing, err := h.Upstream.ShopInfo(ctx)
	exists := err == nil && existing != nil && existing.ID > 0

	form := &upstream.ShopInfoForm{Fields: fields, Logo: logo}
	if err := h.Upstream.SaveShopInfo(ctx, token, exists, form); err != nil {
		return err
	}
	h.Ref.Invalidate(ctx, "shopinfo")
	response.Success(c, nil)
	return nil
}

func (h *AdminContentHandler) DeleteShopInfo(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	if err := h.Upstream.DeleteShopInfo(c.Request.Context(), token); err != nil {
		return err
	}
	h.Ref.Invalidate(c.Request.Context(), "shopinfo")
	response.Success(c, nil)
	return nil
}

func (h *AdminContentHandler) ProductSections(c *gin.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}
	sections, err := h.Sections.Sections(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, sections)
	return nil
}

type replaceSectionsBody struct {
	Sections []types.ProductSection `json:"sections"`
}

func (h *AdminContentHandler) ReplaceSections(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}
	var body replaceSectionsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.Sections.ReplaceSections(c.Request.Context(), token, id, body.Sections); err != nil {
		var partial *service.ErrSectionsPartial
		if errors.As(err, &partial) {
			// 旧数据已删、新数据只写了一部分，必须如实报给后台
			log.L.Error("sections partially replaced",
				zap.Int("product_id", partial.ProductID),
				zap.Int("created", partial.Created),
				zap.Int("wanted", partial.Wanted),
				zap.Error(partial.Cause))
			return response.NewError(http.StatusBadGateway, partial.Error())
		}
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminContentHandler) UploadSectionImage(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return err
	}
	if image == nil {
		return response.NewError(http.StatusBadRequest, "image is required")
	}
	url, err := h.Sections.UploadImage(c.Request.Context(), token, *image)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"image_url": url})
	return nil
}
