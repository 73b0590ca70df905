package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"ichipets/types"
)

func (c *Client) Banners(ctx context.Context) ([]types.Banner, error) {
	var out []types.Banner
	if err := c.getJSON(ctx, "/api/banners", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BannerForm 新建时必须带图，编辑时图可选
type BannerForm struct {
	IsSubBanner bool
	SortOrder   int
	Image       *FilePart
}

func (f *BannerForm) fields() map[string]string {
	return map[string]string{
		"isSubBanner": strconv.FormatBool(f.IsSubBanner),
		"sort_order":  strconv.Itoa(f.SortOrder),
	}
}

func (f *BannerForm) files() []FilePart {
	if f.Image == nil {
		return nil
	}
	return []FilePart{*f.Image}
}

func (c *Client) CreateBanner(ctx context.Context, token string, form *BannerForm) (*types.Banner, error) {
	var out types.Banner
	if err := c.sendForm(ctx, http.MethodPost, "/api/banners/", token, form.fields(), form.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBanner(ctx context.Context, token string, id int, form *BannerForm) error {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf("/api/banners/%d", id), token, form.fields(), form.files(), nil)
}

func (c *Client) DeleteBanner(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/banners/%d", id), token)
}
