// internal/urlformat/sku_url_path.go
//
// Hybrid format: {{page}}.html/{{sku}}/{{url_path}}.html#{{variant_sku}}
//
// The SKU is the first suffix segment; everything after it is the full
// category and product url_path.  The url_path part is optional, so
// "/page.html/sku.html" is a valid URL for this format as well.
package urlformat

import (
	"net/url"
	"strings"
)

type skuAndURLPathFormat struct{}

func (skuAndURLPathFormat) Name() string { return NameSkuAndURLPath }

func (skuAndURLPathFormat) Pattern() string {
	return "{{page}}.html/{{sku}}/{{url_path}}.html#{{variant_sku}}"
}

func (skuAndURLPathFormat) Format(p Params) string {
	var b strings.Builder
	b.WriteString(orPlaceholder(p.Page, PlaceholderPage))
	b.WriteString(HTMLExtensionAndSuffix)
	b.WriteString(orPlaceholder(p.Sku, PlaceholderSku))
	if path, ok := resolvePath(p); ok {
		b.WriteByte('/')
		b.WriteString(path)
	}
	b.WriteString(HTMLExtension)
	b.WriteString(optionalAnchor(p.VariantSku))
	return b.String()
}

func (skuAndURLPathFormat) Parse(info *PathInfo, _ url.Values) Params {
	params := newParams(info)
	if info == nil {
		return params
	}

	suffix := trimSuffix(info.Suffix)
	if isBlank(suffix) {
		return params
	}

	slash := strings.IndexByte(suffix, '/')
	if slash <= 0 {
		params.Sku = suffix
		return params
	}

	params.Sku = suffix[:slash]
	params.URLPath = suffix[slash+1:]
	params.URLKey, params.CategoryURLKey = splitURLPath(params.URLPath)
	return params
}

func (skuAndURLPathFormat) RetainParsableParameters(p Params) Params {
	return Params{
		Page:    p.Page,
		Sku:     p.Sku,
		URLKey:  p.URLKey,
		URLPath: p.URLPath,
	}
}
