// internal/urlformat/helpers.go
//
// Pure helpers shared by the product URL formats.
//
// Context
// -------
// The formats differ only in which fields they place between the page
// path and the trailing `.html`.  Everything else (placeholders, the page
// suffix, the variant anchor, url_path selection, and suffix segmentation)
// lives here so every format behaves the same way at the edges.
//
// Notes
// -----
//   - Nothing in this file allocates beyond the returned strings, and no
//     helper can panic on arbitrary input.
//   - Oxford commas, two spaces after periods.
package urlformat

import "strings"

const (
	// HTMLExtension terminates every formatted URL.
	HTMLExtension = ".html"

	// HTMLExtensionAndSuffix separates the page path from the suffix.
	HTMLExtensionAndSuffix = ".html/"

	// contentNode is the per-page content resource.  A request resolved to
	// the content node still belongs to the page above it.
	contentNode = "/jcr:content"
)

// Placeholder tokens rendered in place of absent fields.
const (
	PlaceholderPage    = "{{page}}"
	PlaceholderSku     = "{{sku}}"
	PlaceholderURLKey  = "{{url_key}}"
	PlaceholderURLPath = "{{url_path}}"
)

// SelectURLPath picks the path representation a format should render.
//
//  1. A non-empty explicit urlPath always wins.
//  2. Otherwise the first non-empty rewrite whose last segment equals
//     urlKey wins, when urlKey is known.
//  3. Otherwise the first non-empty rewrite wins.
//
// A trailing ".html" on a rewrite is dropped because the formats append
// their own.  The bool is false when nothing resolves; falling back to the
// bare url key is left to the caller.
func SelectURLPath(urlPath string, rewrites []string, urlKey string) (string, bool) {
	if urlPath != "" {
		return urlPath, true
	}

	first := ""
	for _, rw := range rewrites {
		rw = strings.TrimSuffix(strings.Trim(rw, "/"), HTMLExtension)
		if rw == "" {
			continue
		}
		if urlKey != "" && lastSegment(rw) == urlKey {
			return rw, true
		}
		if first == "" {
			first = rw
		}
	}
	return first, first != ""
}

// urlKeyOf returns urlKey, or the last segment of urlPath when the key is
// unknown.
func urlKeyOf(urlPath, urlKey string) string {
	if urlKey != "" || urlPath == "" {
		return urlKey
	}
	return lastSegment(urlPath)
}

// resolvePath runs SelectURLPath and then accepts the bare url key.
func resolvePath(p Params) (string, bool) {
	key := urlKeyOf(p.URLPath, p.URLKey)
	if path, ok := SelectURLPath(p.URLPath, p.URLRewrites, key); ok {
		return path, true
	}
	return key, key != ""
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

func optionalAnchor(variant string) string {
	if variant == "" {
		return ""
	}
	return "#" + variant
}

// removeContentNode cuts the content node and anything below it.
func removeContentNode(resourcePath string) string {
	if i := strings.Index(resourcePath, contentNode); i != -1 {
		return resourcePath[:i]
	}
	return resourcePath
}

// trimSuffix strips the trailing ".html" and the leading "/" from a
// request suffix.
func trimSuffix(suffix string) string {
	return strings.TrimPrefix(strings.TrimSuffix(suffix, HTMLExtension), "/")
}

func lastSegment(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// splitURLPath returns the last segment of urlPath and the segment right
// before it.  Deeper ancestors are discarded.  A slash at index 0 is not a
// separator: "/b" is the url key itself and "/a/b" has category "/a".
func splitURLPath(urlPath string) (urlKey, categoryURLKey string) {
	last := strings.LastIndexByte(urlPath, '/')
	if last <= 0 {
		return urlPath, ""
	}
	parent := urlPath[:last]
	if prev := strings.LastIndexByte(parent, '/'); prev > 0 {
		return urlPath[last+1:], parent[prev+1:]
	}
	return urlPath[last+1:], parent
}

// isBlank mirrors a whitespace-only check on the suffix.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// newParams seeds Params with the page derived from info.
func newParams(info *PathInfo) Params {
	if info == nil {
		return Params{}
	}
	return Params{Page: removeContentNode(info.ResourcePath)}
}
