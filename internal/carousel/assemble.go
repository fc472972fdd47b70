// internal/carousel/assemble.go
//
// Ordered, variant-aware product lists.
//
// Context
// -------
// Carousels and teaser lists are authored as combined SKU tokens (see
// internal/identifier).  The Assembler turns those tokens into display
// items with formatted product URLs:
//
//  1. Split every token and fetch the distinct base SKUs in ONE catalog
//     call.
//  2. Walk the tokens in author order.  Repeats stay repeats; each one is
//     resolved on its own.
//  3. Skip tokens whose base product is missing.  That is a normal,
//     transient catalog state, not an error.
//  4. When the token names a variant of a configurable product, take sku,
//     name, and thumbnail from the variant.  url_key, url_path, and
//     url_rewrites always come from the base product, so every link lands
//     on the canonical product page.
//  5. Build the item.  A failure (error or panic) is logged and counted,
//     and only that item is dropped.
//
// Notes
// -----
//   - The catalog fetch is the only blocking step.  Its error is returned;
//     nothing is retried here.
//   - Oxford commas, two spaces after periods.
package carousel

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yanizio/adept-commerce/internal/catalog"
	"github.com/yanizio/adept-commerce/internal/identifier"
	"github.com/yanizio/adept-commerce/internal/metrics"
	"github.com/yanizio/adept-commerce/internal/urlformat"
)

// ErrNoCatalog is returned by New when no Retriever is supplied.
var ErrNoCatalog = errors.New("carousel: no catalog retriever configured")

// Item is one rendered list entry.
type Item struct {
	Sku        string            `json:"sku"`
	BaseSku    string            `json:"base_sku"`
	VariantSku string            `json:"variant_sku,omitempty"`
	Name       string            `json:"name"`
	Thumbnail  catalog.Thumbnail `json:"thumbnail"`
	URL        string            `json:"url"`
}

// Hook may enrich or reject an item after the URL is formatted.  A
// returned error drops the item.
type Hook func(item Item, base *catalog.Product) (Item, error)

// Option tunes an Assembler.
type Option func(*Assembler)

// WithHook installs a per-item hook.
func WithHook(h Hook) Option { return func(a *Assembler) { a.hook = h } }

// WithLogger overrides the global zap logger.
func WithLogger(l *zap.Logger) Option { return func(a *Assembler) { a.log = l } }

// Assembler builds lists against one catalog, URL format, and product
// page.  It holds no per-request state.
type Assembler struct {
	catalog catalog.Retriever
	format  urlformat.Format
	page    string
	hook    Hook
	log     *zap.Logger
}

// New validates collaborators.  A nil format falls back to
// urlformat.Default.
func New(r catalog.Retriever, f urlformat.Format, productPage string, opts ...Option) (*Assembler, error) {
	if r == nil {
		return nil, ErrNoCatalog
	}
	if f == nil {
		f = urlformat.Default
	}
	a := &Assembler{catalog: r, format: f, page: productPage}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		a.log = zap.L()
	}
	return a, nil
}

// Assemble resolves tokens into items, preserving order and duplicates.
func (a *Assembler) Assemble(ctx context.Context, tokens []string) ([]Item, error) {
	bases := identifier.BaseSkus(tokens)
	if len(bases) == 0 {
		return []Item{}, nil
	}

	products, err := a.catalog.FetchProducts(ctx, bases)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	index := catalog.Index(products)

	items := make([]Item, 0, len(tokens))
	for _, token := range tokens {
		id := identifier.SplitCombinedSku(token)
		base, ok := index[id.Sku]
		if !ok {
			metrics.CarouselItemsSkippedTotal.Inc()
			a.log.Debug("carousel product not found", zap.String("token", token))
			continue
		}

		item, err := a.build(id, base)
		if err != nil {
			metrics.CarouselItemsFailedTotal.Inc()
			a.log.Error("carousel item failed",
				zap.String("token", token),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// build never lets a panic escape; it is reported as an error instead.
func (a *Assembler) build(id identifier.Identifier, base *catalog.Product) (item Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("build item %s: %v", id.Sku, r)
		}
	}()

	item = Item{
		Sku:        base.Sku,
		BaseSku:    base.Sku,
		VariantSku: id.VariantSku,
		Name:       base.Name,
		Thumbnail:  base.Thumbnail,
	}
	if id.HasVariant() {
		if v, ok := base.FindVariant(id.VariantSku); ok {
			item.Sku = v.Sku
			item.Name = v.Name
			item.Thumbnail = v.Thumbnail
		}
	}

	item.URL = a.format.Format(urlformat.Params{
		Page:        a.page,
		Sku:         base.Sku,
		URLKey:      base.URLKey,
		URLPath:     base.URLPath,
		URLRewrites: base.URLRewrites,
		VariantSku:  id.VariantSku,
	}.Clone())

	if a.hook != nil {
		return a.hook(item, base)
	}
	return item, nil
}
