package sugar

import (
	"sync"
	"sync/atomic"
)

// Ptr returns a pointer to a fresh heap cell holding v.
func Ptr[T any](v T) *T { return &v }

// Ptr2 wraps two values independently and returns both pointers.
func Ptr2[A, B any](a A, b B) (*A, *B) { return &a, &b }

// Ptr3 wraps three values independently and returns all three pointers.
func Ptr3[A, B, C any](a A, b B, c C) (*A, *B, *C) { return &a, &b, &c }

// Ptrs wraps each element of a homogeneous list independently.
func Ptrs[T any](vs ...T) []*T {
	out := make([]*T, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

// Atomic is a lock-free shared cell holding a single value.
// Create one via [NewAtomic]; the zero value holds no value and
// Load on it panics.
type Atomic[T any] struct {
	p atomic.Pointer[T]
}

// NewAtomic wraps v in an [Atomic] cell.
func NewAtomic[T any](v T) *Atomic[T] {
	a := &Atomic[T]{}
	a.p.Store(&v)
	return a
}

// Load returns the current value.
func (a *Atomic[T]) Load() T { return *a.p.Load() }

// Store replaces the current value with v.
func (a *Atomic[T]) Store(v T) { a.p.Store(&v) }

// Swap stores v and returns the previous value.
func (a *Atomic[T]) Swap(v T) T { return *a.p.Swap(&v) }

// CompareAndSwap stores new in a only if the current value equals old,
// reporting whether the swap happened. Comparison is by value, so this
// is a free function: it needs a comparable T, which a method on
// Atomic[T any] cannot require.
func CompareAndSwap[T comparable](a *Atomic[T], old, new T) bool {
	for {
		cur := a.p.Load()
		if *cur != old {
			return false
		}
		v := new
		if a.p.CompareAndSwap(cur, &v) {
			return true
		}
	}
}

// Mutex is a mutex-guarded cell holding a single value.
// It only allocates the lock-protected cell; acquisition and release
// discipline is entirely the caller's responsibility.
type Mutex[T any] struct {
	mu sync.Mutex
	v  T
}

// NewMutex wraps v in a [Mutex] cell.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{v: v}
}

// Lock acquires the lock and returns the guarded value.
// The pointer is valid until the matching [Mutex.Unlock].
func (m *Mutex[T]) Lock() *T {
	m.mu.Lock()
	return &m.v
}

// Unlock releases the lock.
func (m *Mutex[T]) Unlock() { m.mu.Unlock() }

// Do runs fn with the lock held.
func (m *Mutex[T]) Do(fn func(v *T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.v)
}

// RWMutex is a reader/writer locked cell holding a single value.
type RWMutex[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewRWMutex wraps v in an [RWMutex] cell.
func NewRWMutex[T any](v T) *RWMutex[T] {
	return &RWMutex[T]{v: v}
}

// RLock acquires the read lock and returns a copy of the guarded value.
// Must be paired with [RWMutex.RUnlock].
func (m *RWMutex[T]) RLock() T {
	m.mu.RLock()
	return m.v
}

// RUnlock releases the read lock.
func (m *RWMutex[T]) RUnlock() { m.mu.RUnlock() }

// Lock acquires the write lock and returns the guarded value.
// The pointer is valid until the matching [RWMutex.Unlock].
func (m *RWMutex[T]) Lock() *T {
	m.mu.Lock()
	return &m.v
}

// Unlock releases the write lock.
func (m *RWMutex[T]) Unlock() { m.mu.Unlock() }

// Read runs fn with the read lock held, passing a copy of the value.
func (m *RWMutex[T]) Read(fn func(v T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.v)
}

// Write runs fn with the write lock held.
func (m *RWMutex[T]) Write(fn func(v *T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.v)
}

// Cow is a copy-on-write cell: it either references existing data
// (borrowed) or holds its own copy (owned). Create one via [Borrow] or
// [Own]. The zero value reads as T's zero value and promotes to owned
// on the first [Cow.Mut].
type Cow[T any] struct {
	ref   *T
	v     T
	owned bool
}

// Borrow builds a [Cow] referencing existing data. Reads go through the
// pointer until the cell is promoted by [Cow.Mut].
// Panics if p is nil.
func Borrow[T any](p *T) Cow[T] {
	if p == nil {
		panic("sugar: Borrow requires non-nil pointer")
	}
	return Cow[T]{ref: p}
}

// Own builds a [Cow] that takes ownership of newly produced data.
func Own[T any](v T) Cow[T] {
	return Cow[T]{v: v, owned: true}
}

// IsOwned reports whether the cell holds its own copy.
func (c *Cow[T]) IsOwned() bool { return c.owned }

// Get returns the current value.
func (c *Cow[T]) Get() T {
	if c.owned || c.ref == nil {
		return c.v
	}
	return *c.ref
}

// Mut returns a mutable pointer to the cell's own copy, promoting a
// borrowed cell to owned first. clone produces the copy; a nil clone
// means a plain assignment, which is only safe for values without
// shared backing (no slices, maps, or pointers inside T).
func (c *Cow[T]) Mut(clone func(T) T) *T {
	if !c.owned {
		if c.ref != nil {
			if clone != nil {
				c.v = clone(*c.ref)
			} else {
				c.v = *c.ref
			}
		}
		c.ref = nil
		c.owned = true
	}
	return &c.v
}
