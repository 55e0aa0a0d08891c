// Package cache provides a bounded in-memory cache for render artifacts.
//
// sprout caches values that are expensive to compute but pure functions of
// their key: generated stylesheets keyed by the set of classes on a page,
// and parsed markdown documents keyed by slug. [Memory] is a size-bounded
// LRU with an optional TTL.
//
//	sheets := cache.NewMemory[string](
//	    cache.WithMaxEntries(512),
//	    cache.WithTTL(10 * time.Minute),
//	)
//
//	css, err := sheets.GetOrLoad(ctx, key, func(ctx context.Context) (string, error) {
//	    return generate(classes), nil
//	})
//
// [Redis] stores JSON encoded values in a shared Redis instance so several
// processes reuse each other's work. Both implement [Loader].
//
//	sheets := cache.NewRedis[string](client, cache.WithPrefix("sprout:css"))
//
// # Stampede Prevention
//
// [Memory.GetOrLoad] deduplicates concurrent misses for the same key with
// singleflight, so a burst of requests for a cold page computes the value
// once. Loader errors are returned to every waiter and nothing is cached.
package cache
