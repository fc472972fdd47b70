// internal/server/router_test.go
//
// End-to-end router tests: product component mounted behind the security
// middleware, plus /metrics.

package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/yanizio/adept-commerce/components/product"
	"github.com/yanizio/adept-commerce/internal/catalog"
	"github.com/yanizio/adept-commerce/internal/component"
	"github.com/yanizio/adept-commerce/internal/server"
	"github.com/yanizio/adept-commerce/internal/urlformat"
)

type emptyCatalog struct{}

func (emptyCatalog) FetchProducts(context.Context, []string) ([]catalog.Product, error) {
	return nil, nil
}

func newRouter(t *testing.T, opts server.RouterOptions) http.Handler {
	t.Helper()
	h, err := server.NewRouter(component.Services{
		Catalog:     emptyCatalog{},
		Format:      urlformat.ProductPageWithSku,
		ProductPage: "/content/venia/product",
	}, opts)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return h
}

func TestRouter_ProductPageAndMetrics(t *testing.T) {
	h := newRouter(t, server.RouterOptions{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/content/venia/product.html/MJ01.html", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("product page status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"sku":"MJ01"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("security headers missing")
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "product_url_parse_total") {
		t.Fatalf("metrics status = %d", rr.Code)
	}
}

func TestRouter_InitFailure(t *testing.T) {
	_, err := server.NewRouter(component.Services{Catalog: emptyCatalog{}}, server.RouterOptions{})
	if err == nil {
		t.Fatal("expected init error without product page")
	}
}
