package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"ichipets/config"
	"ichipets/pkg/log"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	// ErrUnauthorized 上游返回 401，调用方统一清会话跳登录
	ErrUnauthorized = errors.New("upstream: unauthorized")
	// ErrNoToken 管理端写操作缺少 token，不发请求
	ErrNoToken = errors.New("upstream: no token")
)

// APIError 上游非 2xx 响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.Status, e.Message)
}

// Client 商城后端 API 客户端，自身无状态
type Client struct {
	base string
	http *http.Client
}

func NewClient(conf *config.Config) *Client {
	timeout := 10 * time.Second
	if conf.Upstream != nil && conf.Upstream.TimeoutSeconds > 0 {
		timeout = time.Duration(conf.Upstream.TimeoutSeconds) * time.Second
	}
	return &Client{
		base: conf.Upstream.BaseURL,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.L.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	return data, nil
}

// errorMessage 从 JSON body 提取 message，取不到给兜底文案
func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	return "request failed"
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, token, nil, "")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	data, err := c.do(ctx, method, path, token, body, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	if token == "" {
		return ErrNoToken
	}
	_, err := c.do(ctx, http.MethodDelete, path, token, nil, "")
	return err
}

// FilePart 随 multipart 表单上传的一个文件
type FilePart struct {
	Field  string
	Name   string
	Reader io.Reader
}

// sendForm 以 multipart/form-data 发送写操作，上游的写接口均为此格式
func (c *Client) sendForm(ctx context.Context, method, path, token string, fields map[string]string, files []FilePart, out interface{}) error {
	if token == "" {
		return ErrNoToken
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	data, err := c.do(ctx, method, path, token, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
