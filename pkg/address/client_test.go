package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ichipets/config"
	"ichipets/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.Config{Address: &config.Address{BaseURL: srv.URL}})
}

func TestProvinces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/p/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"code":1,"name":"Thành phố Hà Nội"},{"code":79,"name":"Thành phố Hồ Chí Minh"}]`))
	})

	got, err := c.Provinces(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 provinces, got %d", len(got))
	}
	if got[1].Code != 79 || got[1].Name != "Thành phố Hồ Chí Minh" {
		t.Fatalf("unexpected province %+v", got[1])
	}
}

func TestDistrictsDepth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/p/1" || r.URL.Query().Get("depth") != "2" {
			t.Fatalf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"code":1,"name":"Thành phố Hà Nội","districts":[{"code":5,"name":"Quận Cầu Giấy"}]}`))
	})

	got, err := c.Districts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Quận Cầu Giấy" {
		t.Fatalf("unexpected districts %+v", got)
	}
}

func TestWards(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":5,"wards":[{"code":151,"name":"Phường Dịch Vọng"}]}`))
	})

	got, err := c.Wards(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Code != 151 {
		t.Fatalf("unexpected wards %+v", got)
	}
}

func TestResolveName(t *testing.T) {
	list := []types.AdminUnit{{Code: 1, Name: "A"}, {Code: 2, Name: "B"}}
	if name := ResolveName(list, 2); name != "B" {
		t.Fatalf("expected B, got %q", name)
	}
	if name := ResolveName(list, 9); name != "" {
		t.Fatalf("expected empty, got %q", name)
	}
}
