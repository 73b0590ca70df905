package upstream

import (
	"context"
	"fmt"
	"net/http"

	"ichipets/types"
)

func (c *Client) ProductSections(ctx context.Context, productID int) ([]types.ProductSection, error) {
	var out []types.ProductSection
	if err := c.getJSON(ctx, fmt.Sprintf("/api/product-sections/product/%d", productID), "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProductSection(ctx context.Context, token string, productID int, section *types.ProductSection) error {
	if token == "" {
		return ErrNoToken
	}
	return c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/api/product-sections/product/%d/", productID), token, section, nil)
}

func (c *Client) DeleteProductSection(ctx context.Context, token string, sectionID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/product-sections/%d", sectionID), token)
}

// UploadSectionImage 区块图片上传，返回可引用的 URL
func (c *Client) UploadSectionImage(ctx context.Context, token string, image FilePart) (string, error) {
	var out struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.sendForm(ctx, http.MethodPost, "/api/product-sections/upload-image/", token, nil, []FilePart{image}, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}
