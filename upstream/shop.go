package upstream

import (
	"context"
	"fmt"
	"net/http"

	"ichipets/types"
)

func (c *Client) ShopInfo(ctx context.Context) (*types.ShopInfo, error) {
	var out types.ShopInfo
	if err := c.getJSON(ctx, "/api/shopInfo", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShopInfoForm 店铺信息写操作，logo 可选
type ShopInfoForm struct {
	Fields map[string]string
	Logo   *FilePart
}

func (f *ShopInfoForm) files() []FilePart {
	if f.Logo == nil {
		return nil
	}
	return []FilePart{*f.Logo}
}

// SaveShopInfo 幂等 upsert：有则 PUT，无则 POST
func (c *Client) SaveShopInfo(ctx context.Context, token string, exists bool, form *ShopInfoForm) error {
	method := http.MethodPost
	if exists {
		method = http.MethodPut
	}
	return c.sendForm(ctx, method, "/api/shopInfo", token, form.Fields, form.files(), nil)
}

func (c *Client) DeleteShopInfo(ctx context.Context, token string) error {
	return c.delete(ctx, "/api/shopInfo", token)
}

func (c *Client) CreateRequestCall(ctx context.Context, call *types.RequestCall) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/request-calls/", "", call, nil)
}

func (c *Client) RequestCalls(ctx context.Context, token string) ([]types.RequestCall, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var out []types.RequestCall
	if err := c.getJSON(ctx, "/api/request-calls", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteRequestCall(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/request-calls/%d", id), token)
}

func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	var out types.LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/users/login/", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
