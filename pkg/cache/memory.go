package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultMaxEntries = 1024

// Option configures a Memory cache.
type Option func(*options)

type options struct {
	ttl        time.Duration
	maxEntries int
}

// WithTTL sets how long entries stay valid. Zero (the default) keeps entries
// until they are evicted by size.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.ttl = d
		}
	}
}

// WithMaxEntries bounds the number of entries. When full, the least recently
// used entry is dropped. Default: 1024.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}

type item[V any] struct {
	storedAt time.Time
	value    V
	key      string
}

// Memory is a concurrency-safe LRU cache.
type Memory[V any] struct {
	items  map[string]*list.Element
	order  *list.List // front = most recently used
	group  singleflight.Group
	opts   options
	now    func() time.Time
	mu     sync.Mutex
	closed bool
}

// NewMemory creates an empty cache.
func NewMemory[V any](opts ...Option) *Memory[V] {
	o := options{maxEntries: defaultMaxEntries}
	for _, opt := range opts {
		opt(&o)
	}
	return &Memory[V]{
		items: make(map[string]*list.Element),
		order: list.New(),
		opts:  o,
		now:   time.Now,
	}
}

// Get returns the cached value for key.
// Returns ErrNotFound when the key is missing or expired.
func (m *Memory[V]) Get(key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, ErrClosed
	}

	el, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	it := el.Value.(*item[V])
	if m.expired(it) {
		m.remove(el)
		return zero, ErrNotFound
	}

	m.order.MoveToFront(el)
	return it.value, nil
}

// Set stores value under key, evicting the least recently used entry if the
// cache is full.
func (m *Memory[V]) Set(key string, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if el, ok := m.items[key]; ok {
		it := el.Value.(*item[V])
		it.value = value
		it.storedAt = m.now()
		m.order.MoveToFront(el)
		return nil
	}

	for len(m.items) >= m.opts.maxEntries {
		m.remove(m.order.Back())
	}

	m.items[key] = m.order.PushFront(&item[V]{key: key, value: value, storedAt: m.now()})
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.remove(el)
	}
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close drops all entries. Subsequent operations return ErrClosed.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.items = make(map[string]*list.Element)
	m.order.Init()
	return nil
}

// GetOrLoad returns the cached value for key or computes it with load.
// Concurrent callers missing the same key share one load call.
func (m *Memory[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, err := m.Get(key); err == nil {
		return v, nil
	} else if err == ErrClosed {
		return v, err
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		_ = m.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := res.(V)
	return v, nil
}

func (m *Memory[V]) expired(it *item[V]) bool {
	return m.opts.ttl > 0 && m.now().Sub(it.storedAt) > m.opts.ttl
}

// remove must be called with mu held.
func (m *Memory[V]) remove(el *list.Element) {
	if el == nil {
		return
	}
	m.order.Remove(el)
	delete(m.items, el.Value.(*item[V]).key)
}
