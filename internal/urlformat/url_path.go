package urlformat

import (
	"net/url"
	"strings"
)

// urlPathFormat renders {{page}}.html/{{url_path}}.html#{{variant_sku}}.
type urlPathFormat struct{}

func (urlPathFormat) Name() string    { return NameURLPath }
func (urlPathFormat) Pattern() string { return "{{page}}.html/{{url_path}}.html#{{variant_sku}}" }

// Format resolves the path through SelectURLPath and then the bare
// url_key.  With neither available the placeholder is rendered.
func (urlPathFormat) Format(p Params) string {
	path, _ := resolvePath(p)

	var b strings.Builder
	b.WriteString(orPlaceholder(p.Page, PlaceholderPage))
	b.WriteString(HTMLExtensionAndSuffix)
	b.WriteString(orPlaceholder(path, PlaceholderURLPath))
	b.WriteString(HTMLExtension)
	b.WriteString(optionalAnchor(p.VariantSku))
	return b.String()
}

// Parse treats the suffix as the url_path.  Only the immediate parent of
// the url_key is kept as category_url_key:
//
//	/a/b/c.html  →  url_path "a/b/c", url_key "c", category "b"
//	/a.html      →  url_path "a",     url_key "a", no category
func (urlPathFormat) Parse(info *PathInfo, _ url.Values) Params {
	params := newParams(info)
	if info == nil {
		return params
	}

	suffix := trimSuffix(info.Suffix)
	if isBlank(suffix) {
		return params
	}

	params.URLPath = suffix
	params.URLKey, params.CategoryURLKey = splitURLPath(suffix)
	return params
}

func (urlPathFormat) RetainParsableParameters(p Params) Params {
	return Params{Page: p.Page, URLKey: p.URLKey, URLPath: p.URLPath}
}
