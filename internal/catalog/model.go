// internal/catalog/model.go
//
// Catalog records consumed by list assembly.
//
// Context
// -------
// The URL engine never talks to the catalog itself.  List assembly asks a
// Retriever for base products by SKU and reads only the fields below.
// Configurable products carry their purchasable variants; a variant has
// its own SKU, name, and thumbnail, but no routing fields of its own.
//
// Notes
// -----
// • Records are plain data, safe to log or JSON-encode.
// • Oxford commas, two spaces after periods.
package catalog

import (
	"context"
	"errors"
	"slices"
)

// Product type identifiers as stored in the catalog.
const (
	TypeSimple       = "simple"
	TypeConfigurable = "configurable"
)

// ErrNotFound is returned by lookups that expect exactly one product.
var ErrNotFound = errors.New("product not found")

// Thumbnail is a product image reference.
type Thumbnail struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// Variant is one purchasable child of a configurable product.
type Variant struct {
	Sku       string    `json:"sku"`
	Name      string    `json:"name"`
	Thumbnail Thumbnail `json:"thumbnail"`
}

// Product is a base catalog record.
type Product struct {
	Sku         string    `json:"sku"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Thumbnail   Thumbnail `json:"thumbnail"`
	URLKey      string    `json:"url_key,omitempty"`
	URLPath     string    `json:"url_path,omitempty"`
	URLRewrites []string  `json:"url_rewrites,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.URLRewrites = slices.Clone(p.URLRewrites)
	p.Variants = slices.Clone(p.Variants)
	return p
}

// IsConfigurable reports whether the product may carry variants.
func (p *Product) IsConfigurable() bool { return p.Type == TypeConfigurable }

// FindVariant returns the variant with the given SKU.  Non-configurable
// products never match.
func (p *Product) FindVariant(sku string) (Variant, bool) {
	if !p.IsConfigurable() || sku == "" {
		return Variant{}, false
	}
	for _, v := range p.Variants {
		if v.Sku == sku {
			return v, true
		}
	}
	return Variant{}, false
}

// Retriever fetches base products by SKU.  Missing SKUs are simply absent
// from the result; order is unspecified.
type Retriever interface {
	FetchProducts(ctx context.Context, skus []string) ([]Product, error)
}

// URLKeyResolver is implemented by retrievers that can map a url_key to the
// SKU of its base product.  Unknown keys yield ErrNotFound.
type URLKeyResolver interface {
	ResolveURLKey(ctx context.Context, urlKey string) (string, error)
}

// FetchOne fetches a single base product or ErrNotFound.
func FetchOne(ctx context.Context, r Retriever, sku string) (*Product, error) {
	products, err := r.FetchProducts(ctx, []string{sku})
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Sku == sku {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

// FetchByURLKey resolves urlKey through r, when r supports it, and fetches
// the matching base product.  Retrievers without url_key support yield
// ErrNotFound.
func FetchByURLKey(ctx context.Context, r Retriever, urlKey string) (*Product, error) {
	res, ok := r.(URLKeyResolver)
	if !ok || urlKey == "" {
		return nil, ErrNotFound
	}
	sku, err := res.ResolveURLKey(ctx, urlKey)
	if err != nil {
		return nil, err
	}
	return FetchOne(ctx, r, sku)
}

// Index maps products by SKU.
func Index(products []Product) map[string]*Product {
	out := make(map[string]*Product, len(products))
	for i := range products {
		out[products[i].Sku] = &products[i]
	}
	return out
}
