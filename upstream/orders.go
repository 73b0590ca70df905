package upstream

import (
	"context"
	"fmt"
	"net/http"

	"ichipets/types"
)

// CreateOrder 顾客下单，无需 token
func (c *Client) CreateOrder(ctx context.Context, req *types.CreateOrderRequest) (*types.Order, error) {
	var out types.Order
	if err := c.sendJSON(ctx, http.MethodPost, "/api/orders/", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context, token string) ([]types.Order, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var out []types.Order
	if err := c.getJSON(ctx, "/api/orders", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, token string, id int, patch map[string]interface{}) error {
	if token == "" {
		return ErrNoToken
	}
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d", id), token, patch, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/orders/%d", id), token)
}
