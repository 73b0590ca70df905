package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"ichipets/types"
)

func (c *Client) Categories(ctx context.Context) ([]types.Category, error) {
	var out []types.Category
	if err := c.getJSON(ctx, "/api/categories", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products 商品列表，category_id/search 为空时不带该参数
func (c *Client) Products(ctx context.Context, categoryID int, search string) ([]types.Product, error) {
	q := url.Values{}
	if categoryID > 0 {
		q.Set("category_id", strconv.Itoa(categoryID))
	}
	if search != "" {
		q.Set("search", search)
	}
	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []types.Product
	if err := c.getJSON(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int) (*types.Product, error) {
	var out types.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/api/products/%d", id), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductAttributes(ctx context.Context) ([]types.ProductAttribute, error) {
	var out []types.ProductAttribute
	if err := c.getJSON(ctx, "/api/products/attributes", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProductAttribute(ctx context.Context, token string, attr *types.ProductAttribute) (*types.ProductAttribute, error) {
	var out types.ProductAttribute
	if token == "" {
		return nil, ErrNoToken
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/products/attributes/", token, attr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryForm 分类写操作字段，图片可选
type CategoryForm struct {
	Name        string
	Slug        string
	Description string
	Image       *FilePart
}

func (f *CategoryForm) fields() map[string]string {
	m := map[string]string{"name": f.Name}
	if f.Slug != "" {
		m["slug"] = f.Slug
	}
	if f.Description != "" {
		m["description"] = f.Description
	}
	return m
}

func (f *CategoryForm) files() []FilePart {
	if f.Image == nil {
		return nil
	}
	return []FilePart{*f.Image}
}

func (c *Client) CreateCategory(ctx context.Context, token string, form *CategoryForm) (*types.Category, error) {
	var out types.Category
	if err := c.sendForm(ctx, http.MethodPost, "/api/categories/", token, form.fields(), form.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int, form *CategoryForm) error {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), token, form.fields(), form.files(), nil)
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/categories/%d", id), token)
}
