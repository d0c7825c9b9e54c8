package seqx

import (
	"context"
	"io"
)

// FromSlice creates a sequence yielding the slice's elements in order.
func FromSlice[T any](items []T) *Seq[T] {
	var idx int
	return New(func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		if idx >= len(items) {
			var zero T
			return zero, io.EOF
		}
		val := items[idx]
		idx++
		return val, nil
	})
}

// FromChan creates a sequence that pulls from a channel. The sequence
// ends when the channel is closed or the context is cancelled.
func FromChan[T any](ch <-chan T) *Seq[T] {
	return New(func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				var zero T
				return zero, io.EOF
			}
			return v, nil
		}
	})
}

// FromFunc creates a sequence from a pull function. Alias for [New].
func FromFunc[T any](fn func(context.Context) (T, error)) *Seq[T] {
	return New(fn)
}

// FromMap creates a sequence yielding the map's entries as [Pair]
// values, in Go's unspecified map iteration order. The entries are
// snapshotted on the first pull.
func FromMap[K comparable, V any](m map[K]V) *Seq[Pair[K, V]] {
	var (
		pairs []Pair[K, V]
		init  bool
		idx   int
	)
	return New(func(ctx context.Context) (Pair[K, V], error) {
		select {
		case <-ctx.Done():
			var zero Pair[K, V]
			return zero, ctx.Err()
		default:
		}
		if !init {
			init = true
			pairs = make([]Pair[K, V], 0, len(m))
			for k, v := range m {
				pairs = append(pairs, Pair[K, V]{First: k, Second: v})
			}
		}
		if idx >= len(pairs) {
			var zero Pair[K, V]
			return zero, io.EOF
		}
		p := pairs[idx]
		idx++
		return p, nil
	})
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Range creates a sequence counting from start up to, but not
// including, stop. Empty if start >= stop.
func Range[N integer](start, stop N) *Seq[N] {
	cur := start
	return New(func(ctx context.Context) (N, error) {
		select {
		case <-ctx.Done():
			var zero N
			return zero, ctx.Err()
		default:
		}
		if cur >= stop {
			var zero N
			return zero, io.EOF
		}
		v := cur
		cur++
		return v, nil
	})
}

// RangeStep is [Range] with an explicit stride. A negative step counts
// down (stop still excluded). Panics if step is zero.
func RangeStep[N integer](start, stop, step N) *Seq[N] {
	if step == 0 {
		panic("seqx: RangeStep requires non-zero step")
	}
	cur := start
	return New(func(ctx context.Context) (N, error) {
		select {
		case <-ctx.Done():
			var zero N
			return zero, ctx.Err()
		default:
		}
		if (step > 0 && cur >= stop) || (step < 0 && cur <= stop) {
			var zero N
			return zero, io.EOF
		}
		v := cur
		cur += step
		return v, nil
	})
}

// Repeat creates a sequence yielding n copies of v.
// Panics if n is negative.
func Repeat[T any](v T, n int) *Seq[T] {
	if n < 0 {
		panic("seqx: Repeat requires n >= 0")
	}
	var idx int
	return New(func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		if idx >= n {
			var zero T
			return zero, io.EOF
		}
		idx++
		return v, nil
	})
}

// Generate creates an infinite sequence starting at seed, with each
// subsequent value produced by next. Bound it with [Seq.Take] or cancel
// the context to stop pulling.
func Generate[T any](seed T, next func(T) T) *Seq[T] {
	cur := seed
	first := true
	return New(func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		if first {
			first = false
			return cur, nil
		}
		cur = next(cur)
		return cur, nil
	})
}
