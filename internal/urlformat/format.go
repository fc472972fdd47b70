// internal/urlformat/format.go
//
// Format contract and the registry of product URL formats.
//
// Context
// -------
// A deployment picks exactly one product URL format by name (see
// internal/config, `url_format.product`).  Each format is an immutable
// package-level value, so the same instance is shared by every request
// without locking.
//
// Workflow
// --------
//  1. cmd/web resolves the configured name with Lookup.
//  2. routing.Middleware calls Parse on every product request.
//  3. carousel.Assemble and the product component call Format.
//
// Notes
// -----
//   - Unknown names are a configuration error surfaced at startup, never a
//     per-request failure.
//   - Oxford commas, two spaces after periods.
package urlformat

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
)

// ErrUnknownFormat is returned by Lookup for unregistered names.
var ErrUnknownFormat = errors.New("unknown url format")

// Format renders Params into a URL and parses request paths back into
// Params.  Implementations must be safe for concurrent use.
type Format interface {
	// Name is the configuration key, e.g. "sku-and-url-path".
	Name() string

	// Pattern documents the URL shape using placeholder tokens.
	Pattern() string

	// Format renders p.  Absent fields render as placeholder tokens.
	Format(p Params) string

	// Parse rebuilds Params from a request.  Query values are accepted
	// for future formats; none of the current ones read them.
	Parse(info *PathInfo, query url.Values) Params

	// RetainParsableParameters returns a copy of p holding only the fields
	// Parse could have produced.
	RetainParsableParameters(p Params) Params
}

// Registered format names.
const (
	NameSkuAndURLPath = "sku-and-url-path"
	NameSku           = "sku"
	NameURLKey        = "url-key"
	NameURLPath       = "url-path"
)

// Shared instances.
var (
	ProductPageWithSkuAndURLPath Format = skuAndURLPathFormat{}
	ProductPageWithSku           Format = skuFormat{}
	ProductPageWithURLKey        Format = urlKeyFormat{}
	ProductPageWithURLPath       Format = urlPathFormat{}

	// Default is used when configuration leaves the format empty.
	Default = ProductPageWithURLKey
)

var registry = map[string]Format{
	NameSkuAndURLPath: ProductPageWithSkuAndURLPath,
	NameSku:           ProductPageWithSku,
	NameURLKey:        ProductPageWithURLKey,
	NameURLPath:       ProductPageWithURLPath,
}

// Lookup returns the format registered under name.  Empty name yields
// Default.
func Lookup(name string) (Format, error) {
	if name == "" {
		return Default, nil
	}
	if f, ok := registry[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Names lists every registered format name in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
