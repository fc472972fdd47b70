package urlformat

import (
	"net/url"
	"strings"
)

// urlKeyFormat renders {{page}}.html/{{url_key}}.html#{{variant_sku}}.
//
// It is the only format that accepts url_path in place of a missing
// url_key.  The reverse never happens.
type urlKeyFormat struct{}

func (urlKeyFormat) Name() string    { return NameURLKey }
func (urlKeyFormat) Pattern() string { return "{{page}}.html/{{url_key}}.html#{{variant_sku}}" }

func (urlKeyFormat) Format(p Params) string {
	key := p.URLKey
	if key == "" {
		key = p.URLPath
	}

	var b strings.Builder
	b.WriteString(orPlaceholder(p.Page, PlaceholderPage))
	b.WriteString(HTMLExtensionAndSuffix)
	b.WriteString(orPlaceholder(key, PlaceholderURLKey))
	b.WriteString(HTMLExtension)
	b.WriteString(optionalAnchor(p.VariantSku))
	return b.String()
}

func (urlKeyFormat) Parse(info *PathInfo, _ url.Values) Params {
	params := newParams(info)
	if info == nil {
		return params
	}
	if suffix := trimSuffix(info.Suffix); !isBlank(suffix) {
		params.URLKey = suffix
	}
	return params
}

func (urlKeyFormat) RetainParsableParameters(p Params) Params {
	return Params{Page: p.Page, URLKey: p.URLKey}
}
