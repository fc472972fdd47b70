// internal/routing/middleware.go
//
// Product-page URL parsing middleware.
//
// Context
// -------
// Product pages are addressed as "<page>.html/<suffix>", where the suffix
// layout depends on the configured url format.  Middleware decomposes the
// request path once, parses it with that format, and stores the result on
// the request context so handlers never look at raw paths.
//
// Workflow
// --------
//   1. urlformat.SplitRequestPath(r.URL.Path) → PathInfo.
//   2. format.Parse(info, r.URL.Query()) → Params.
//   3. In strict mode a request whose suffix names no product (no sku,
//      url_key, or url_path) is answered with 404.
//   4. routing.WithParams(ctx, params) and on to the next handler.
//
// Notes
// -----
// • Parsing never fails.  Garbage suffixes simply yield sparse Params.
// • Oxford commas, two spaces after periods.

package routing

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/adept-commerce/internal/metrics"
	"github.com/yanizio/adept-commerce/internal/urlformat"
)

// Middleware returns a chi-compatible middleware bound to format f.
func Middleware(f urlformat.Format, strict bool) func(http.Handler) http.Handler {
	if f == nil {
		f = urlformat.Default
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := urlformat.SplitRequestPath(r.URL.Path)
			params := f.Parse(&info, r.URL.Query())
			metrics.URLParseTotal.WithLabelValues(f.Name()).Inc()

			if strict && !identifiesProduct(params) {
				zap.L().Debug("product url not resolvable",
					zap.String("path", r.URL.Path),
					zap.String("format", f.Name()))
				http.NotFound(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithParams(r.Context(), params)))
		})
	}
}

func identifiesProduct(p urlformat.Params) bool {
	return p.Sku != "" || p.URLKey != "" || p.URLPath != ""
}
