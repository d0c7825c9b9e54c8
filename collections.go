package sugar

import (
	"cmp"
	"container/heap"
	"container/list"
)

// Entry is a key/value pair consumed by [MapOf].
type Entry[K comparable, V any] struct {
	Key K
	Val V
}

// E builds an [Entry]. It exists so map literals stay on one line:
//
//	m := sugar.MapOf(sugar.E("a", 1), sugar.E("b", 2))
func E[K comparable, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Val: v}
}

// MapOf builds a map from the given entries, inserting them in call
// order. Duplicate keys follow standard map semantics: last write wins.
// With no entries it returns an empty, non-nil map.
func MapOf[K comparable, V any](entries ...Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Val
	}
	return m
}

// Set is an unordered collection of unique elements backed by a map.
type Set[T comparable] map[T]struct{}

// SetOf builds a [Set] from the given elements. Duplicates collapse.
// With no elements it returns an empty, non-nil set.
func SetOf[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Delete removes v from the set. Removing an absent element is a no-op.
func (s Set[T]) Delete(v T) { delete(s, v) }

// Len returns the number of elements in the set.
func (s Set[T]) Len() int { return len(s) }

// Slice returns the elements in unspecified order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// ListOf builds a [list.List] by pushing each element to the back, so
// iteration from the front sees call-site order.
func ListOf[T any](elems ...T) *list.List {
	l := list.New()
	for _, e := range elems {
		l.PushBack(e)
	}
	return l
}

// FrontListOf builds a [list.List] by pushing each element to the
// front, so iteration from the front sees the reverse of call-site order.
func FrontListOf[T any](elems ...T) *list.List {
	l := list.New()
	for _, e := range elems {
		l.PushFront(e)
	}
	return l
}

// RepeatList builds a [list.List] holding n copies of v pushed to the
// back. Panics if n is negative.
func RepeatList[T any](v T, n int) *list.List {
	if n < 0 {
		panic("sugar: RepeatList requires n >= 0")
	}
	l := list.New()
	for i := 0; i < n; i++ {
		l.PushBack(v)
	}
	return l
}

// RepeatFrontList is [RepeatList] pushing to the front instead.
// Panics if n is negative.
func RepeatFrontList[T any](v T, n int) *list.List {
	if n < 0 {
		panic("sugar: RepeatFrontList requires n >= 0")
	}
	l := list.New()
	for i := 0; i < n; i++ {
		l.PushFront(v)
	}
	return l
}

// Heap is a min-heap of ordered values built by [HeapOf].
// The zero value is not usable; always construct via HeapOf.
type Heap[T cmp.Ordered] struct {
	items heapItems[T]
}

// HeapOf builds a min-heap from the given elements. With no elements it
// returns an empty heap.
func HeapOf[T cmp.Ordered](elems ...T) *Heap[T] {
	h := &Heap[T]{items: append(heapItems[T]{}, elems...)}
	heap.Init(&h.items)
	return h
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) { heap.Push(&h.items, v) }

// Pop removes and returns the minimum element.
// The second return is false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&h.items).(T), true
}

// Peek returns the minimum element without removing it.
// The second return is false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

type heapItems[T cmp.Ordered] []T

func (h heapItems[T]) Len() int           { return len(h) }
func (h heapItems[T]) Less(i, j int) bool { return cmp.Less(h[i], h[j]) }
func (h heapItems[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *heapItems[T]) Push(x any)        { *h = append(*h, x.(T)) }
func (h *heapItems[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
