package logging

import "context"

type contextKey struct{}

// Request identifies one backend call for log correlation.
type Request struct {
	ID     string
	Method string
	Path   string
}

// WithRequest attaches a backend request to the context.
func WithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// RequestFrom returns the request stored on ctx, if any.
func RequestFrom(ctx context.Context) (Request, bool) {
	r, ok := ctx.Value(contextKey{}).(Request)
	return r, ok
}
