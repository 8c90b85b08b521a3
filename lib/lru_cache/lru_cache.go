// Package lru_cache implements a fixed capacity least recently used cache.
//
// LRU is not safe for concurrent use. Callers sharing a cache between
// goroutines must guard every call with their own lock.
package lru_cache

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to be called with every entry the cache evicts.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(l *LRU[K, V]) {
		l.onEvict = fn
	}
}

type LRU[K comparable, V any] struct {
	capacity int
	cache    map[K]handle
	list     *list[K, V]

	onEvict func(key K, value V)
}

func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	l := &LRU[K, V]{
		capacity: capacity,
		cache:    make(map[K]handle, sizeHint(capacity)+1),
		list:     newList[K, V](capacity),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Get returns the value stored for key and marks it as most recently used.
// A miss leaves the cache untouched.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	h, exists := l.cache[key]
	if !exists {
		var zero V
		return zero, false
	}

	l.list.moveToFront(h)

	return l.list.nodes[h].val, true
}

// Put stores value under key and marks it as most recently used. Inserting a
// new key into a full cache evicts the least recently used entry.
func (l *LRU[K, V]) Put(key K, value V) {
	h, exists := l.cache[key]
	if exists {
		l.list.nodes[h].val = value
		l.list.moveToFront(h)
		return
	}

	h = l.list.alloc(key, value)
	l.cache[key] = h
	l.list.attachFront(h)

	if l.CapacityReached() {
		l.evict()
	}

	l.checkSize()
}

// Peek returns the value stored for key without changing its recency.
func (l *LRU[K, V]) Peek(key K) (V, bool) {
	h, exists := l.cache[key]
	if !exists {
		var zero V
		return zero, false
	}

	return l.list.nodes[h].val, true
}

// Contains reports whether key is cached without changing its recency.
func (l *LRU[K, V]) Contains(key K) bool {
	_, exists := l.cache[key]
	return exists
}

// CapacityReached reports whether the cache holds more entries than it may keep.
func (l *LRU[K, V]) CapacityReached() bool {
	return len(l.cache) > l.capacity
}

func (l *LRU[K, V]) Len() int {
	return len(l.cache)
}

func (l *LRU[K, V]) Cap() int {
	return l.capacity
}

// Keys returns the cached keys ordered from most to least recently used.
func (l *LRU[K, V]) Keys() []K {
	return l.list.keys()
}

func (l *LRU[K, V]) evict() {
	h, ok := l.list.evictBack()
	if !ok {
		panic("invariant violation: eviction from empty list")
	}

	n := l.list.nodes[h]
	delete(l.cache, n.key)
	l.list.release(h)

	if l.onEvict != nil {
		l.onEvict(n.key, n.val)
	}
}

func (l *LRU[K, V]) checkSize() {
	if len(l.cache) != l.list.size {
		panic(fmt.Sprintf("invariant violation: index holds %d keys, list holds %d nodes", len(l.cache), l.list.size))
	}
}
