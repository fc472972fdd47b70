package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const (
	chromeMac = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	googlebot = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestParseUA(t *testing.T) {
	u := parseUA(chromeMac)
	if u.Browser != "Chrome" || u.OS != "macOS" || u.Device != "Desktop" || u.IsBot {
		t.Fatalf("unexpected chrome UA: %+v", u)
	}

	b := parseUA(googlebot)
	if !b.IsBot || b.Device != "Bot" {
		t.Fatalf("googlebot not flagged: %+v", b)
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		xff, xrip, remote, want string
	}{
		{"203.0.113.7, 10.0.0.1", "", "10.0.0.2:5000", "203.0.113.7"},
		{"", "198.51.100.4", "10.0.0.2:5000", "198.51.100.4"},
		{"garbage", "", "192.0.2.9:443", "192.0.2.9"},
	}
	for _, c := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = c.remote
		if c.xff != "" {
			r.Header.Set("X-Forwarded-For", c.xff)
		}
		if c.xrip != "" {
			r.Header.Set("X-Real-Ip", c.xrip)
		}
		if got := clientIP(r); got.String() != c.want {
			t.Errorf("clientIP = %v, want %s", got, c.want)
		}
	}
}

func TestEnrich_StoresInfoAndStatus(t *testing.T) {
	var seen *RequestInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/url", nil)
	req.Header.Set("User-Agent", googlebot)
	rr := httptest.NewRecorder()
	Enrich(next).ServeHTTP(rr, req)

	if seen == nil || !seen.UA.IsBot {
		t.Fatalf("request info missing or wrong: %+v", seen)
	}
	if seen.Geo.CountryISO != "" {
		t.Fatalf("country without geo db: %q", seen.Geo.CountryISO)
	}
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rr.Code)
	}
}

func TestInitGeo_MissingFile(t *testing.T) {
	if err := InitGeo("/nonexistent/GeoLite2-Country.mmdb"); err == nil {
		t.Fatal("expected error for missing geo db")
	}
}
