package seqx

import "context"

// Pair holds two values paired from two sequences.
// It is used by [Zip] and [FromMap].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs values from two sequences element by element. The resulting
// sequence ends as soon as either input is exhausted. Both inputs are
// pulled sequentially (a first, then b) within each Next call, which is
// safe because sequences are single-consumer.
//
// Panics if a or b is nil.
func Zip[A, B any](a *Seq[A], b *Seq[B]) *Seq[Pair[A, B]] {
	if a == nil {
		panic("seqx: Zip requires non-nil first sequence")
	}
	if b == nil {
		panic("seqx: Zip requires non-nil second sequence")
	}
	return New(func(ctx context.Context) (Pair[A, B], error) {
		va, err := a.Next(ctx)
		if err != nil {
			var zero Pair[A, B]
			return zero, err
		}
		vb, err := b.Next(ctx)
		if err != nil {
			var zero Pair[A, B]
			return zero, err
		}
		return Pair[A, B]{First: va, Second: vb}, nil
	})
}
