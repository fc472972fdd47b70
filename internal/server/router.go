// internal/server/router.go
//
// Root router.
//
// The router is built once at boot.  It wires the access log, security,
// and optional HTTPS middleware, initialises and mounts every registered Component,
// and exposes Prometheus on /metrics.

package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/adept-commerce/internal/component"
	"github.com/yanizio/adept-commerce/internal/middleware"
	"github.com/yanizio/adept-commerce/internal/requestinfo"
)

// RouterOptions tunes NewRouter.
type RouterOptions struct {
	ForceHTTPS bool
}

// NewRouter builds the process-wide http.Handler.  A component whose Init
// fails aborts the build.
func NewRouter(svc component.Services, opts RouterOptions) (http.Handler, error) {
	r := chi.NewRouter()

	// Access log first so redirects and 404s are recorded too.
	r.Use(requestinfo.Enrich)
	if opts.ForceHTTPS {
		r.Use(middleware.ForceHTTPS)
	}
	r.Use(middleware.Security)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, c := range component.All() {
		if err := c.Init(svc); err != nil {
			return nil, fmt.Errorf("init component %s: %w", c.Name(), err)
		}
		r.Mount("/", c.Routes())
		zap.L().Debug("component mounted", zap.String("component", c.Name()))
	}
	return r, nil
}
