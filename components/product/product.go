// components/product/product.go
//
// Product component – product page resolution, URL building, and carousels.
//
// Routes
// ------
//
//	GET <page>.html/*      parsed product page (Params + canonical URL)
//	GET /api/url           format a product URL from query parameters
//	GET /api/carousel      assemble a list from ?product= tokens
//
// The page route runs behind routing.Middleware, so handlers read Params
// from the request context and never parse paths themselves.
package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/adept-commerce/internal/carousel"
	"github.com/yanizio/adept-commerce/internal/catalog"
	"github.com/yanizio/adept-commerce/internal/component"
	"github.com/yanizio/adept-commerce/internal/routing"
	"github.com/yanizio/adept-commerce/internal/urlformat"
)

// Compile-time assertion: *Component satisfies component.Component.
var _ component.Component = (*Component)(nil)

// ErrNoProductPage is returned by Init when no product page is configured.
var ErrNoProductPage = errors.New("product: product page path is empty")

// Component serves product URLs for one format and product page.
type Component struct {
	catalog   catalog.Retriever
	format    urlformat.Format
	page      string
	strict    bool
	assembler *carousel.Assembler
}

// PageResponse is the JSON body of a resolved product page.  Product is
// set when the URL carries a SKU the catalog knows, or a url key the
// catalog can resolve.
type PageResponse struct {
	Params       urlformat.Params `json:"params"`
	CanonicalURL string           `json:"canonical_url"`
	Product      *catalog.Product `json:"product,omitempty"`
}

/*────────────────── component.Component methods ───────────────────────────*/

// Name returns the canonical component key.
func (c *Component) Name() string { return "product" }

// Init binds the component to the shared catalog and url format.
func (c *Component) Init(svc component.Services) error {
	if svc.ProductPage == "" {
		return ErrNoProductPage
	}
	a, err := carousel.New(svc.Catalog, svc.Format, svc.ProductPage)
	if err != nil {
		return err
	}
	c.catalog = svc.Catalog
	c.format = svc.Format
	if c.format == nil {
		c.format = urlformat.Default
	}
	c.page = svc.ProductPage
	c.strict = svc.StrictURLs
	c.assembler = a
	return nil
}

// Routes builds and returns the router mounted at "/".
func (c *Component) Routes() chi.Router {
	r := chi.NewRouter()

	page := r.With(routing.Middleware(c.format, c.strict))
	page.Get(c.page+urlformat.HTMLExtension, c.handlePage)
	page.Get(c.page+urlformat.HTMLExtension+"/*", c.handlePage)

	r.Route("/api", func(api chi.Router) {
		api.Get("/url", c.handleURL)
		api.Get("/carousel", c.handleCarousel)
	})
	return r
}

// Register component at program start.
func init() { component.Register(&Component{}) }

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) handlePage(w http.ResponseWriter, r *http.Request) {
	params, ok := routing.FromContext(r.Context())
	if !ok {
		http.Error(w, "product url not parsed", http.StatusInternalServerError)
		return
	}
	resp := PageResponse{
		Params:       params,
		CanonicalURL: c.format.Format(c.format.RetainParsableParameters(params)),
	}

	p, err := c.lookup(r.Context(), params)
	switch {
	case err == nil:
		resp.Product = p
	case !errors.Is(err, catalog.ErrNotFound):
		zap.L().Warn("product lookup failed",
			zap.String("sku", params.Sku),
			zap.String("url_key", params.URLKey),
			zap.Error(err))
	}
	writeJSON(w, http.StatusOK, resp)
}

// lookup finds the page's product by SKU, falling back to the url key for
// formats that carry no SKU.
func (c *Component) lookup(ctx context.Context, params urlformat.Params) (*catalog.Product, error) {
	if params.Sku != "" {
		return catalog.FetchOne(ctx, c.catalog, params.Sku)
	}
	return catalog.FetchByURLKey(ctx, c.catalog, params.URLKey)
}

// handleURL formats a URL.  ?format= overrides the configured format and
// ?page= the configured product page.
func (c *Component) handleURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := c.format
	if name := q.Get("format"); name != "" {
		var err error
		if f, err = urlformat.Lookup(name); err != nil {
			msg := err.Error() + " (known: " + strings.Join(urlformat.Names(), ", ") + ")"
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
	}

	page := q.Get("page")
	if page == "" {
		page = c.page
	}

	url := f.Format(urlformat.Params{
		Page:        page,
		Sku:         q.Get("sku"),
		URLKey:      q.Get("url_key"),
		URLPath:     q.Get("url_path"),
		URLRewrites: q["url_rewrite"],
		VariantSku:  q.Get("variant_sku"),
	})
	writeJSON(w, http.StatusOK, map[string]string{"format": f.Name(), "url": url})
}

func (c *Component) handleCarousel(w http.ResponseWriter, r *http.Request) {
	tokens := r.URL.Query()["product"]

	items, err := c.assembler.Assemble(r.Context(), tokens)
	if err != nil {
		zap.L().Error("carousel assembly failed",
			zap.Strings("tokens", tokens),
			zap.Error(err))
		http.Error(w, "catalog unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("json encode failed", zap.Error(err))
	}
}
