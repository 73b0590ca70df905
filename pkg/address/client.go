package address

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ichipets/config"
	"ichipets/types"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://provinces.open-api.vn/api"

// Client 越南行政区划公共查询服务客户端
type Client struct {
	base string
	http *http.Client
}

func NewClient(conf *config.Config) *Client {
	base := defaultBaseURL
	timeout := 10 * time.Second
	if conf.Address != nil {
		if conf.Address.BaseURL != "" {
			base = conf.Address.BaseURL
		}
		if conf.Address.TimeoutSeconds > 0 {
			timeout = time.Duration(conf.Address.TimeoutSeconds) * time.Second
		}
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("address lookup: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func units(result gjson.Result) []types.AdminUnit {
	var out []types.AdminUnit
	result.ForEach(func(_, v gjson.Result) bool {
		out = append(out, types.AdminUnit{
			Code: int(v.Get("code").Int()),
			Name: v.Get("name").String(),
		})
		return true
	})
	return out
}

func (c *Client) Provinces(ctx context.Context) ([]types.AdminUnit, error) {
	data, err := c.fetch(ctx, "/p/")
	if err != nil {
		return nil, err
	}
	return units(gjson.ParseBytes(data)), nil
}

func (c *Client) Districts(ctx context.Context, provinceCode int) ([]types.AdminUnit, error) {
	data, err := c.fetch(ctx, fmt.Sprintf("/p/%d?depth=2", provinceCode))
	if err != nil {
		return nil, err
	}
	return units(gjson.GetBytes(data, "districts")), nil
}

func (c *Client) Wards(ctx context.Context, districtCode int) ([]types.AdminUnit, error) {
	data, err := c.fetch(ctx, fmt.Sprintf("/d/%d?depth=2", districtCode))
	if err != nil {
		return nil, err
	}
	return units(gjson.GetBytes(data, "wards")), nil
}

// ResolveName 按 code 找名称，找不到返回空串
func ResolveName(list []types.AdminUnit, code int) string {
	for _, u := range list {
		if u.Code == code {
			return u.Name
		}
	}
	return ""
}
