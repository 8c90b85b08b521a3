package lru_cache

import "fmt"

// handle addresses a node inside the list arena.
type handle int

const (
	nilHandle handle = -1

	// head and tail are sentinels allocated once per list, they never carry user data.
	head handle = 0
	tail handle = 1
)

type node[K comparable, V any] struct {
	key K
	val V

	prev handle
	next handle
}

// list keeps recency order. head.next is the most recently used node,
// tail.prev the least recently used one.
type list[K comparable, V any] struct {
	nodes []node[K, V]
	free  []handle
	size  int
}

// maxPrealloc bounds the slots reserved up front, larger lists grow on demand.
const maxPrealloc = 1024

// sizeHint returns how many entries to reserve for a list or index of the given capacity.
func sizeHint(capacity int) int {
	if capacity > maxPrealloc {
		return maxPrealloc
	}

	return capacity
}

func newList[K comparable, V any](capacity int) *list[K, V] {
	// two sentinels plus one transient node above capacity
	nodes := make([]node[K, V], 2, sizeHint(capacity)+3)

	nodes[head] = node[K, V]{prev: nilHandle, next: tail}
	nodes[tail] = node[K, V]{prev: head, next: nilHandle}

	return &list[K, V]{nodes: nodes}
}

// alloc returns a detached node holding key and val, reusing a released slot when possible.
func (l *list[K, V]) alloc(key K, val V) handle {
	n := node[K, V]{key: key, val: val, prev: nilHandle, next: nilHandle}

	if len(l.free) > 0 {
		h := l.free[len(l.free)-1]
		l.free = l.free[:len(l.free)-1]
		l.nodes[h] = n
		return h
	}

	l.nodes = append(l.nodes, n)
	return handle(len(l.nodes) - 1)
}

// release drops the node's data and makes its slot available to alloc.
func (l *list[K, V]) release(h handle) {
	l.nodes[h] = node[K, V]{prev: nilHandle, next: nilHandle}
	l.free = append(l.free, h)
}

func (l *list[K, V]) attachFront(h handle) {
	n := &l.nodes[h]
	if h == head || h == tail || n.prev != nilHandle || n.next != nilHandle {
		panic(fmt.Sprintf("invariant violation: attach of linked node %d", h))
	}

	first := l.nodes[head].next
	n.prev = head
	n.next = first
	l.nodes[first].prev = h
	l.nodes[head].next = h
	l.size++

	l.checkLinks(head)
	l.checkLinks(h)
}

func (l *list[K, V]) detach(h handle) {
	if h == head || h == tail {
		panic(fmt.Sprintf("invariant violation: detach of sentinel %d", h))
	}

	n := &l.nodes[h]
	prev, next := n.prev, n.next
	if prev == nilHandle || next == nilHandle || l.nodes[prev].next != h || l.nodes[next].prev != h {
		panic(fmt.Sprintf("invariant violation: detach of unattached node %d", h))
	}

	l.nodes[prev].next = next
	l.nodes[next].prev = prev
	n.prev, n.next = nilHandle, nilHandle
	l.size--

	l.checkLinks(prev)
}

func (l *list[K, V]) moveToFront(h handle) {
	if l.nodes[head].next == h {
		return
	}

	l.detach(h)
	l.attachFront(h)
}

// evictBack detaches the least recently used node. It reports false when the list is empty.
func (l *list[K, V]) evictBack() (handle, bool) {
	last := l.nodes[tail].prev
	if last == head {
		return nilHandle, false
	}

	l.detach(last)
	return last, true
}

// checkLinks asserts that h and its successor point at each other.
func (l *list[K, V]) checkLinks(h handle) {
	next := l.nodes[h].next
	if next == nilHandle || l.nodes[next].prev != h {
		panic(fmt.Sprintf("invariant violation: broken link after node %d", h))
	}
}

// verify walks the list in both directions and checks it against size.
func (l *list[K, V]) verify() error {
	steps := 0
	prev := head
	for h := l.nodes[head].next; h != tail; h = l.nodes[h].next {
		if h == nilHandle || h == head {
			return fmt.Errorf("forward walk hit handle %d after %d steps", h, steps)
		}
		if l.nodes[h].prev != prev {
			return fmt.Errorf("node %d: prev is %d, want %d", h, l.nodes[h].prev, prev)
		}

		prev = h
		steps++
		if steps > l.size {
			return fmt.Errorf("forward walk longer than size %d", l.size)
		}
	}
	if steps != l.size {
		return fmt.Errorf("forward walk took %d steps, size is %d", steps, l.size)
	}
	if l.nodes[tail].prev != prev {
		return fmt.Errorf("tail.prev is %d, want %d", l.nodes[tail].prev, prev)
	}

	steps = 0
	for h := l.nodes[tail].prev; h != head; h = l.nodes[h].prev {
		if h == nilHandle || h == tail {
			return fmt.Errorf("backward walk hit handle %d after %d steps", h, steps)
		}

		steps++
		if steps > l.size {
			return fmt.Errorf("backward walk longer than size %d", l.size)
		}
	}
	if steps != l.size {
		return fmt.Errorf("backward walk took %d steps, size is %d", steps, l.size)
	}

	return nil
}

// keys returns the keys from most to least recently used.
func (l *list[K, V]) keys() []K {
	out := make([]K, 0, l.size)
	for h := l.nodes[head].next; h != tail; h = l.nodes[h].next {
		out = append(out, l.nodes[h].key)
	}

	return out
}

// keysBackward returns the keys from least to most recently used.
func (l *list[K, V]) keysBackward() []K {
	out := make([]K, 0, l.size)
	for h := l.nodes[tail].prev; h != head; h = l.nodes[h].prev {
		out = append(out, l.nodes[h].key)
	}

	return out
}
