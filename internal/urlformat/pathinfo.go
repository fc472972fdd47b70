package urlformat

import "strings"

// PathInfo is the parse input: the page resource path plus the request
// suffix that follows the ".html" extension.
//
//	/page/path.html/foo-bar.html  →  ResourcePath "/page/path"
//	                                 Suffix       "/foo-bar.html"
type PathInfo struct {
	ResourcePath string
	Suffix       string
}

// SplitRequestPath decomposes a decoded request path.  The extension is the
// first ".html" that ends a segment, so "/foo.htmlx/page.html" splits at
// "page.html".  The resource path ends at the first "." of its last
// segment, so selectors such as "/page.mobile.html/x.html" still resolve
// to "/page".  Paths without an ".html" extension yield an empty suffix.
func SplitRequestPath(path string) PathInfo {
	ext := extensionIndex(path)
	if ext == -1 {
		return PathInfo{ResourcePath: path}
	}

	resource := path[:ext]
	seg := strings.LastIndexByte(resource, '/')
	if dot := strings.IndexByte(resource[seg+1:], '.'); dot != -1 {
		resource = resource[:seg+1+dot]
	}

	return PathInfo{ResourcePath: resource, Suffix: path[ext+len(HTMLExtension):]}
}

// extensionIndex returns the index of the first ".html" followed by "/" or
// the end of path, or -1.
func extensionIndex(path string) int {
	for from := 0; ; {
		i := strings.Index(path[from:], HTMLExtension)
		if i == -1 {
			return -1
		}
		i += from
		end := i + len(HTMLExtension)
		if end == len(path) || path[end] == '/' {
			return i
		}
		from = i + 1
	}
}
