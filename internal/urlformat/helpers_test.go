package urlformat

import "testing"

func TestSelectURLPath(t *testing.T) {
	cases := []struct {
		name     string
		urlPath  string
		rewrites []string
		urlKey   string
		want     string
		ok       bool
	}{
		{"explicit wins", "a/b", []string{"x/y"}, "b", "a/b", true},
		{"first rewrite", "", []string{"x/y", "z/w"}, "", "x/y", true},
		{"skips empty rewrite", "", []string{"", "z/w"}, "", "z/w", true},
		{"prefers key match", "", []string{"foo", "foo/bar"}, "bar", "foo/bar", true},
		{"no key match keeps first", "", []string{"a/x", "b/y"}, "z", "a/x", true},
		{"drops html extension", "", []string{"cat/prod.html"}, "", "cat/prod", true},
		{"nothing", "", nil, "key", "", false},
	}
	for _, tc := range cases {
		got, ok := SelectURLPath(tc.urlPath, tc.rewrites, tc.urlKey)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: got (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSplitURLPath(t *testing.T) {
	cases := []struct{ in, key, cat string }{
		{"a/b/c", "c", "b"},
		{"a", "a", ""},
		{"a/b", "b", "a"},
		{"", "", ""},
		{"/b", "/b", ""},
		{"/a/b", "b", "/a"},
		{"x/a/b", "b", "a"},
	}
	for _, tc := range cases {
		key, cat := splitURLPath(tc.in)
		if key != tc.key || cat != tc.cat {
			t.Errorf("%q: got (%q, %q), want (%q, %q)", tc.in, key, cat, tc.key, tc.cat)
		}
	}
}

func TestOptionalAnchor(t *testing.T) {
	if got := optionalAnchor(""); got != "" {
		t.Fatalf("empty variant: got %q", got)
	}
	if got := optionalAnchor("v1"); got != "#v1" {
		t.Fatalf("got %q, want #v1", got)
	}
}

func TestSplitRequestPath(t *testing.T) {
	cases := []struct {
		in   string
		want PathInfo
	}{
		{"/page/path.html/foo-bar.html", PathInfo{"/page/path", "/foo-bar.html"}},
		{"/page/path.html", PathInfo{"/page/path", ""}},
		{"/page/path.mobile.html/a/b.html", PathInfo{"/page/path", "/a/b.html"}},
		{"/page/path", PathInfo{"/page/path", ""}},
		{"/v1.2/page.html/x.html", PathInfo{"/v1.2/page", "/x.html"}},
		{"/content/foo.htmlx/page.html/x.html", PathInfo{"/content/foo.htmlx/page", "/x.html"}},
		{"/content/page.htmlx", PathInfo{"/content/page.htmlx", ""}},
		{"/page.html.html", PathInfo{"/page", ""}},
	}
	for _, tc := range cases {
		if got := SplitRequestPath(tc.in); got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
