package routing

import (
	"context"

	"github.com/yanizio/adept-commerce/internal/urlformat"
)

type ctxKey struct{}

// WithParams stores parsed URL parameters on ctx.
func WithParams(ctx context.Context, p urlformat.Params) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the parameters stored by Middleware.
func FromContext(ctx context.Context) (urlformat.Params, bool) {
	p, ok := ctx.Value(ctxKey{}).(urlformat.Params)
	return p, ok
}
