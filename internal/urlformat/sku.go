package urlformat

import (
	"net/url"
	"strings"
)

// skuFormat renders {{page}}.html/{{sku}}.html#{{variant_sku}}.
type skuFormat struct{}

func (skuFormat) Name() string    { return NameSku }
func (skuFormat) Pattern() string { return "{{page}}.html/{{sku}}.html#{{variant_sku}}" }

func (skuFormat) Format(p Params) string {
	var b strings.Builder
	b.WriteString(orPlaceholder(p.Page, PlaceholderPage))
	b.WriteString(HTMLExtensionAndSuffix)
	b.WriteString(orPlaceholder(p.Sku, PlaceholderSku))
	b.WriteString(HTMLExtension)
	b.WriteString(optionalAnchor(p.VariantSku))
	return b.String()
}

// Parse keeps the whole suffix as the SKU, slashes included.
func (skuFormat) Parse(info *PathInfo, _ url.Values) Params {
	params := newParams(info)
	if info == nil {
		return params
	}
	if suffix := trimSuffix(info.Suffix); !isBlank(suffix) {
		params.Sku = suffix
	}
	return params
}

// RetainParsableParameters keeps page and sku.  URLRewrites comes back as
// an empty slice rather than nil so callers can range over it safely.
func (skuFormat) RetainParsableParameters(p Params) Params {
	return Params{
		Page:        p.Page,
		Sku:         p.Sku,
		URLRewrites: []string{},
	}
}
