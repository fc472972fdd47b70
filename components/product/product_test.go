// components/product/product_test.go
//
// Handler tests driven through the component router with httptest.

package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yanizio/adept-commerce/internal/catalog"
	"github.com/yanizio/adept-commerce/internal/component"
	"github.com/yanizio/adept-commerce/internal/urlformat"
)

type fakeCatalog struct {
	products []catalog.Product
	err      error
}

func (f fakeCatalog) FetchProducts(context.Context, []string) ([]catalog.Product, error) {
	return f.products, f.err
}

// keyedCatalog also resolves url keys.
type keyedCatalog struct {
	fakeCatalog
	keys map[string]string
}

func (k keyedCatalog) ResolveURLKey(_ context.Context, urlKey string) (string, error) {
	if sku, ok := k.keys[urlKey]; ok {
		return sku, nil
	}
	return "", catalog.ErrNotFound
}

func newComponent(t *testing.T, cat catalog.Retriever, f urlformat.Format) http.Handler {
	t.Helper()
	c := &Component{}
	err := c.Init(component.Services{
		Catalog:     cat,
		Format:      f,
		ProductPage: "/content/venia/product",
		StrictURLs:  true,
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c.Routes()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestInit_Validation(t *testing.T) {
	c := &Component{}
	if err := c.Init(component.Services{Catalog: fakeCatalog{}}); !errors.Is(err, ErrNoProductPage) {
		t.Fatalf("err = %v, want ErrNoProductPage", err)
	}
}

func TestPage_CanonicalURL(t *testing.T) {
	h := newComponent(t, fakeCatalog{}, urlformat.ProductPageWithURLPath)

	rr := get(t, h, "/content/venia/product.html/men/tops/summit-kit.html")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body PageResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Params.URLKey != "summit-kit" || body.Params.CategoryURLKey != "tops" {
		t.Fatalf("unexpected params: %+v", body.Params)
	}
	want := "/content/venia/product.html/men/tops/summit-kit.html"
	if body.CanonicalURL != want {
		t.Fatalf("got %q, want %q", body.CanonicalURL, want)
	}
}

func TestPage_AttachesProduct(t *testing.T) {
	cat := fakeCatalog{products: []catalog.Product{{Sku: "MJ01", Name: "Summit Kit"}}}
	h := newComponent(t, cat, urlformat.ProductPageWithSku)

	rr := get(t, h, "/content/venia/product.html/MJ01.html")
	var body PageResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Product == nil || body.Product.Name != "Summit Kit" {
		t.Fatalf("product not attached: %+v", body)
	}
	if body.CanonicalURL != "/content/venia/product.html/MJ01.html" {
		t.Fatalf("got %q", body.CanonicalURL)
	}
}

func TestPage_AttachesProductByURLKey(t *testing.T) {
	cat := keyedCatalog{
		fakeCatalog: fakeCatalog{products: []catalog.Product{{Sku: "MJ01", Name: "Summit Kit"}}},
		keys:        map[string]string{"summit-kit": "MJ01"},
	}
	cases := []struct {
		format urlformat.Format
		target string
	}{
		{urlformat.ProductPageWithURLKey, "/content/venia/product.html/summit-kit.html"},
		{urlformat.ProductPageWithURLPath, "/content/venia/product.html/men/tops/summit-kit.html"},
	}
	for _, tc := range cases {
		rr := get(t, newComponent(t, cat, tc.format), tc.target)
		var body PageResponse
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode: %v", tc.format.Name(), err)
		}
		if body.Product == nil || body.Product.Sku != "MJ01" {
			t.Fatalf("%s: product not attached: %+v", tc.format.Name(), body)
		}
	}

	rr := get(t, newComponent(t, cat, urlformat.ProductPageWithURLKey),
		"/content/venia/product.html/unknown.html")
	var body PageResponse
	_ = json.NewDecoder(rr.Body).Decode(&body)
	if rr.Code != http.StatusOK || body.Product != nil {
		t.Fatalf("unknown key: status %d, product %+v", rr.Code, body.Product)
	}
}

func TestPage_StrictNotFound(t *testing.T) {
	h := newComponent(t, fakeCatalog{}, nil)

	if rr := get(t, h, "/content/venia/product.html"); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestURL_FormatOverride(t *testing.T) {
	h := newComponent(t, fakeCatalog{}, nil)

	rr := get(t, h, "/api/url?format=sku&sku=MJ01&variant_sku=MJ01-XS")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&body)
	if got, want := body["url"], "/content/venia/product.html/MJ01.html#MJ01-XS"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if rr := get(t, h, "/api/url?format=bogus"); rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestURL_Placeholders(t *testing.T) {
	h := newComponent(t, fakeCatalog{}, urlformat.ProductPageWithSkuAndURLPath)

	rr := get(t, h, "/api/url?page=")
	var body map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&body)
	if got, want := body["url"], "/content/venia/product.html/{{sku}}.html"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCarousel(t *testing.T) {
	cat := fakeCatalog{products: []catalog.Product{
		{Sku: "MJ01", Name: "Summit Kit", Type: catalog.TypeSimple, URLKey: "summit-kit"},
	}}
	h := newComponent(t, cat, nil)

	rr := get(t, h, "/api/carousel?product=MJ01&product=XX&product=MJ01")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Items []struct {
			Sku string `json:"sku"`
			URL string `json:"url"`
		} `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(body.Items))
	}
	if got, want := body.Items[0].URL, "/content/venia/product.html/summit-kit.html"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCarousel_CatalogDown(t *testing.T) {
	h := newComponent(t, fakeCatalog{err: errors.New("down")}, nil)

	if rr := get(t, h, "/api/carousel?product=MJ01"); rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
}
