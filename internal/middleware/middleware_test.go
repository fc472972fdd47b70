package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestForceHTTPS(t *testing.T) {
	cases := []struct {
		name   string
		host   string
		proto  string
		tls    bool
		status int
	}{
		{"plain http redirects", "shop.example.com", "", false, http.StatusPermanentRedirect},
		{"tls passes", "shop.example.com", "", true, http.StatusOK},
		{"proxy https passes", "shop.example.com", "https", false, http.StatusOK},
		{"localhost passes", "localhost:8080", "", false, http.StatusOK},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "http://"+c.host+"/api/url?sku=A", nil)
		if c.proto != "" {
			req.Header.Set("X-Forwarded-Proto", c.proto)
		}
		if c.tls {
			req.TLS = &tls.ConnectionState{}
		}
		rr := httptest.NewRecorder()
		ForceHTTPS(okHandler()).ServeHTTP(rr, req)
		if rr.Code != c.status {
			t.Errorf("%s: status = %d, want %d", c.name, rr.Code, c.status)
		}
		if c.status == http.StatusPermanentRedirect {
			if loc := rr.Header().Get("Location"); loc != "https://shop.example.com/api/url?sku=A" {
				t.Errorf("%s: Location = %q", c.name, loc)
			}
		}
	}
}

func TestSecurity_HeadersPresent(t *testing.T) {
	rr := httptest.NewRecorder()
	Security(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, h := range []string{"Strict-Transport-Security", "Content-Security-Policy",
		"X-Content-Type-Options", "Referrer-Policy"} {
		if rr.Header().Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
}
