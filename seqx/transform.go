package seqx

import (
	"context"
	"io"
)

// Map transforms a sequence by applying fn to each value.
// Note: this is a function and not a method because Go does not support
// generic methods on generic types.
func Map[A, B any](s *Seq[A], fn func(A) B) *Seq[B] {
	if s == nil {
		panic("seqx: Map requires non-nil source")
	}
	if fn == nil {
		panic("seqx: Map requires non-nil transform")
	}
	return New(func(ctx context.Context) (B, error) {
		val, err := s.Next(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(val), nil
	})
}

// FlatMap maps each value to a sub-sequence and yields the
// sub-sequences' values back to back.
func FlatMap[A, B any](s *Seq[A], fn func(A) *Seq[B]) *Seq[B] {
	if s == nil {
		panic("seqx: FlatMap requires non-nil source")
	}
	if fn == nil {
		panic("seqx: FlatMap requires non-nil transform")
	}
	var cur *Seq[B]
	return New(func(ctx context.Context) (B, error) {
		for {
			if cur == nil {
				v, err := s.Next(ctx)
				if err != nil {
					var zero B
					return zero, err
				}
				cur = fn(v)
			}
			b, err := cur.Next(ctx)
			if err == io.EOF {
				cur = nil
				continue
			}
			return b, err
		}
	})
}
