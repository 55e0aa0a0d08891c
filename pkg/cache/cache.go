package cache

import "context"

// Loader returns cached values and computes them on a miss.
// Memory and Redis both implement it.
type Loader[V any] interface {
	GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error)
}

var (
	_ Loader[string] = (*Memory[string])(nil)
	_ Loader[string] = (*Redis[string])(nil)
)
