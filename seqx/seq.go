package seqx

import (
	"context"
	"io"
)

// Seq is a lazy, pull-based sequence. Values are produced one at a time
// by [Seq.Next]; exhaustion is reported with [io.EOF].
//
// Sequences are single-consumer. Next must not be called concurrently,
// and a drained sequence cannot be restarted.
type Seq[T any] struct {
	next func(ctx context.Context) (T, error)
}

// New creates a sequence from a pull function. fn must return [io.EOF]
// once exhausted and keep returning it on subsequent calls.
func New[T any](fn func(ctx context.Context) (T, error)) *Seq[T] {
	if fn == nil {
		panic("seqx: New requires non-nil pull function")
	}
	return &Seq[T]{next: fn}
}

// Next returns the next value in the sequence.
// Returns io.EOF when the sequence is exhausted.
func (s *Seq[T]) Next(ctx context.Context) (T, error) {
	return s.next(ctx)
}

// Filter yields only the values for which fn returns true.
func (s *Seq[T]) Filter(fn func(T) bool) *Seq[T] {
	return New(func(ctx context.Context) (T, error) {
		for {
			val, err := s.Next(ctx)
			if err != nil {
				return val, err
			}
			if fn(val) {
				return val, nil
			}
		}
	})
}

// Take limits the sequence to n values.
func (s *Seq[T]) Take(n int) *Seq[T] {
	var idx int
	return New(func(ctx context.Context) (T, error) {
		if idx >= n {
			var zero T
			return zero, io.EOF
		}
		val, err := s.Next(ctx)
		if err != nil {
			return val, err
		}
		idx++
		return val, nil
	})
}

// Skip discards the first n values.
func (s *Seq[T]) Skip(n int) *Seq[T] {
	var skipped int
	return New(func(ctx context.Context) (T, error) {
		for skipped < n {
			_, err := s.Next(ctx)
			if err != nil {
				var zero T
				return zero, err
			}
			skipped++
		}
		return s.Next(ctx)
	})
}

// Peek invokes fn on each value as it passes through, unchanged.
func (s *Seq[T]) Peek(fn func(T)) *Seq[T] {
	return New(func(ctx context.Context) (T, error) {
		val, err := s.Next(ctx)
		if err == nil {
			fn(val)
		}
		return val, err
	})
}
