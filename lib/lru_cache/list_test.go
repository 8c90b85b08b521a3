package lru_cache

import (
	"reflect"
	"testing"
)

func mustVerify[K comparable, V any](t *testing.T, l *list[K, V]) {
	t.Helper()
	if err := l.verify(); err != nil {
		t.Fatalf("list invariant broken: %v", err)
	}
}

func TestList_Empty(t *testing.T) {
	l := newList[int, string](4)
	mustVerify(t, l)

	if l.nodes[head].next != tail || l.nodes[tail].prev != head {
		t.Fatalf("expected sentinels to point at each other")
	}

	if _, ok := l.evictBack(); ok {
		t.Fatalf("expected evictBack on empty list to report empty")
	}
	mustVerify(t, l)
}

func TestList_AttachFront(t *testing.T) {
	l := newList[int, string](4)

	for i := 1; i <= 3; i++ {
		l.attachFront(l.alloc(i, "v"))
		mustVerify(t, l)
	}

	if got, want := l.keys(), []int{3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
	if got, want := l.keysBackward(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("keysBackward = %v, want %v", got, want)
	}
}

func TestList_Detach(t *testing.T) {
	cases := []struct {
		name   string
		detach int
		want   []int
	}{
		{"front", 4, []int{3, 2, 1}},
		{"middle", 2, []int{4, 3, 1}},
		{"back", 1, []int{4, 3, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newList[int, int](4)
			handles := map[int]handle{}
			for i := 1; i <= 4; i++ {
				handles[i] = l.alloc(i, i*10)
				l.attachFront(handles[i])
			}

			h := handles[tc.detach]
			l.detach(h)
			mustVerify(t, l)

			if l.nodes[h].prev != nilHandle || l.nodes[h].next != nilHandle {
				t.Errorf("expected detached node links to be cleared")
			}
			if got := l.keys(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("keys = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestList_DetachLastNodeRestoresEmpty(t *testing.T) {
	l := newList[int, int](1)
	h := l.alloc(1, 1)
	l.attachFront(h)
	l.detach(h)
	mustVerify(t, l)

	if l.nodes[head].next != tail || l.nodes[tail].prev != head {
		t.Fatalf("expected empty list after detaching the only node")
	}
}

func TestList_MoveToFront(t *testing.T) {
	l := newList[int, int](3)
	handles := map[int]handle{}
	for i := 1; i <= 3; i++ {
		handles[i] = l.alloc(i, i)
		l.attachFront(handles[i])
	}

	l.moveToFront(handles[1])
	mustVerify(t, l)
	if got, want := l.keys(), []int{1, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}

	// already at the front
	l.moveToFront(handles[1])
	mustVerify(t, l)
	if got, want := l.keys(), []int{1, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestList_EvictBack(t *testing.T) {
	l := newList[int, int](3)
	for i := 1; i <= 3; i++ {
		l.attachFront(l.alloc(i, i))
	}

	for _, want := range []int{1, 2, 3} {
		h, ok := l.evictBack()
		if !ok {
			t.Fatalf("expected node %d to be evicted", want)
		}
		mustVerify(t, l)

		if l.nodes[h].key != want {
			t.Errorf("evicted key %d, want %d", l.nodes[h].key, want)
		}
	}

	if _, ok := l.evictBack(); ok {
		t.Errorf("expected empty list")
	}
	if l.size != 0 {
		t.Errorf("size = %d, want 0", l.size)
	}
}

func TestList_ReleaseReusesSlot(t *testing.T) {
	l := newList[int, int](1)
	h := l.alloc(1, 1)
	l.attachFront(h)
	l.detach(h)
	l.release(h)

	if got := l.alloc(2, 2); got != h {
		t.Errorf("alloc returned handle %d, want released handle %d", got, h)
	}
	if len(l.nodes) != 3 {
		t.Errorf("arena grew to %d slots, want 3", len(l.nodes))
	}
}

func TestList_DetachSentinelPanics(t *testing.T) {
	l := newList[int, int](1)

	for _, h := range []handle{head, tail} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected detach of sentinel %d to panic", h)
				}
			}()
			l.detach(h)
		}()
	}
}

func TestList_DetachUnattachedPanics(t *testing.T) {
	l := newList[int, int](1)
	h := l.alloc(1, 1)

	defer func() {
		if recover() == nil {
			t.Errorf("expected detach of unattached node to panic")
		}
	}()
	l.detach(h)
}
