package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ichipets/types"
)

// AttributeInput 商品保存时随表单提交的变体值
type AttributeInput struct {
	AttributeID int    `json:"attribute_id"`
	Value       string `json:"value"`
	ExtraPrice  int64  `json:"extra_price"`
}

// ProductForm 商品写操作的 multipart 字段，字段名与上游约定一致
type ProductForm struct {
	Name              string
	Code              string
	Price             int64
	CategoryID        int
	Description       string
	SortOrder         int
	Attributes        []AttributeInput
	Images            []FilePart
	MainIndex         int // -1 表示不指定主图
	ReplaceImages     bool
	ReplaceAttributes bool
	RemoveMissing     bool
}

func (f *ProductForm) fields() (map[string]string, error) {
	m := map[string]string{
		"name":       f.Name,
		"price":      strconv.FormatInt(f.Price, 10),
		"sort_order": strconv.Itoa(f.SortOrder),
	}
	if f.Code != "" {
		m["code"] = f.Code
	}
	if f.CategoryID > 0 {
		m["category_id"] = strconv.Itoa(f.CategoryID)
	}
	if f.Description != "" {
		m["description"] = f.Description
	}
	if len(f.Attributes) > 0 {
		raw, err := json.Marshal(f.Attributes)
		if err != nil {
			return nil, err
		}
		m["attributes"] = string(raw)
	}
	if f.MainIndex >= 0 {
		m["main_index"] = strconv.Itoa(f.MainIndex)
	}
	if f.ReplaceImages {
		m["replace_images"] = "true"
	}
	if f.ReplaceAttributes {
		m["replace_attributes"] = "true"
	}
	if f.RemoveMissing {
		m["remove_missing"] = "true"
	}
	return m, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, form *ProductForm) (*types.Product, error) {
	fields, err := form.fields()
	if err != nil {
		return nil, err
	}
	var out types.Product
	if err := c.sendForm(ctx, http.MethodPost, "/api/products/", token, fields, form.Images, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int, form *ProductForm) error {
	fields, err := form.fields()
	if err != nil {
		return err
	}
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), token, fields, form.Images, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d", id), token)
}
