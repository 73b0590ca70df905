package context

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ichipets/pkg/response"
	"ichipets/upstream"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func newTestRouter(h func(*gin.Context) error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", Wrap(h))
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	r.ServeHTTP(w, req)
	return w
}

// 任何 handler 返回上游 401，都要清会话并带上登录页跳转
func TestWrapUnauthorizedClearsSession(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) error {
		return fmt.Errorf("load products: %w", upstream.ErrUnauthorized)
	})
	w := doGet(r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := gjson.Get(w.Body.String(), "data.redirect").String(); got != LoginPath {
		t.Fatalf("expected redirect %q, got %q", LoginPath, got)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("session cookie not cleared")
	}
}

func TestWrapBizError(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) error {
		return response.NewError(http.StatusBadRequest, "phone is required")
	})
	w := doGet(r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if gjson.Get(body, "code").Int() != http.StatusBadRequest {
		t.Fatalf("unexpected body %s", body)
	}
	if !strings.Contains(body, "phone is required") {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestWrapInternalError(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) error {
		return errors.New("boom")
	})
	w := doGet(r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

// handler 已经写过响应时，Wrap 不得再写一次
func TestWrapWrittenResponseUntouched(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return errors.New("late failure")
	})
	w := doGet(r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gjson.Get(w.Body.String(), "data.ok").Bool() != true {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
