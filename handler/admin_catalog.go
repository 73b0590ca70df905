package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ichipets/pkg/context"
	"ichipets/pkg/response"
	"ichipets/types"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
)

// AdminCatalogHandler 分类/商品/属性的后台维护，全部透传上游
type AdminCatalogHandler struct {
	Upstream *upstream.Client
}

func (h *AdminCatalogHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/categories", context.Wrap(h.CreateCategory))
	r.PUT("/categories/:id", context.Wrap(h.UpdateCategory))
	r.DELETE("/categories/:id", context.Wrap(h.DeleteCategory))

	r.POST("/products", context.Wrap(h.CreateProduct))
	r.PUT("/products/:id", context.Wrap(h.UpdateProduct))
	r.DELETE("/products/:id", context.Wrap(h.DeleteProduct))

	r.GET("/attributes", context.Wrap(h.Attributes))
	r.POST("/attributes", context.Wrap(h.CreateAttribute))
}

func (h *AdminCatalogHandler) categoryForm(c *gin.Context) (*upstream.CategoryForm, error) {
	form := &upstream.CategoryForm{
		Name:        c.PostForm("name"),
		Slug:        c.PostForm("slug"),
		Description: c.PostForm("description"),
	}
	if form.Name == "" {
		return nil, response.NewError(http.StatusBadRequest, "name is required")
	}
	image, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	form.Image = image
	return form, nil
}

func (h *AdminCatalogHandler) CreateCategory(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	form, err := h.categoryForm(c)
	if err != nil {
		return err
	}
	cat, err := h.Upstream.CreateCategory(c.Request.Context(), token, form)
	if err != nil {
		return err
	}
	response.Success(c, cat)
	return nil
}

func (h *AdminCatalogHandler) UpdateCategory(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid category id")
	}
	form, err := h.categoryForm(c)
	if err != nil {
		return err
	}
	if err := h.Upstream.UpdateCategory(c.Request.Context(), token, id, form); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminCatalogHandler) DeleteCategory(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid category id")
	}
	if err := h.Upstream.DeleteCategory(c.Request.Context(), token, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminCatalogHandler) productForm(c *gin.Context) (*upstream.ProductForm, error) {
	price, _ := strconv.ParseInt(c.PostForm("price"), 10, 64)
	categoryID, _ := strconv.Atoi(c.PostForm("category_id"))
	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))

	mainIndex := -1
	if v := c.PostForm("main_index"); v != "" {
		mainIndex, _ = strconv.Atoi(v)
	}

	form := &upstream.ProductForm{
		Name:              c.PostForm("name"),
		Code:              c.PostForm("code"),
		Price:             price,
		CategoryID:        categoryID,
		Description:       c.PostForm("description"),
		SortOrder:         sortOrder,
		MainIndex:         mainIndex,
		ReplaceImages:     c.PostForm("replace_images") == "true",
		ReplaceAttributes: c.PostForm("replace_attributes") == "true",
		RemoveMissing:     c.PostForm("remove_missing") == "true",
	}
	if form.Name == "" {
		return nil, response.NewError(http.StatusBadRequest, "name is required")
	}

	if raw := c.PostForm("attributes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Attributes); err != nil {
			return nil, response.NewError(http.StatusBadRequest, "invalid attributes payload")
		}
	}

	images, err := formFiles(c, "images")
	if err != nil {
		return nil, err
	}
	form.Images = images
	return form, nil
}

func (h *AdminCatalogHandler) CreateProduct(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	form, err := h.productForm(c)
	if err != nil {
		return err
	}
	product, err := h.Upstream.CreateProduct(c.Request.Context(), token, form)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (h *AdminCatalogHandler) UpdateProduct(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}
	form, err := h.productForm(c)
	if err != nil {
		return err
	}
	if err := h.Upstream.UpdateProduct(c.Request.Context(), token, id, form); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminCatalogHandler) DeleteProduct(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid product id")
	}
	if err := h.Upstream.DeleteProduct(c.Request.Context(), token, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminCatalogHandler) Attributes(c *gin.Context) error {
	attrs, err := h.Upstream.ProductAttributes(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, attrs)
	return nil
}

func (h *AdminCatalogHandler) CreateAttribute(c *gin.Context) error {
	token, err := context.GetToken(c)
	if err != nil {
		return err
	}
	var attr types.ProductAttribute
	if err := c.ShouldBindJSON(&attr); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	created, err := h.Upstream.CreateProductAttribute(c.Request.Context(), token, &attr)
	if err != nil {
		return err
	}
	response.Success(c, created)
	return nil
}
