package seqx

import "context"

// Scan yields the running accumulations of fn over the sequence. The
// first yielded value is fn(initial, firstValue).
//
// This is the streaming counterpart of [Reduce]: Reduce produces a
// single final value, Scan a sequence of intermediate ones.
//
// Panics if s or fn is nil.
func Scan[T, R any](s *Seq[T], initial R, fn func(R, T) R) *Seq[R] {
	if s == nil {
		panic("seqx: Scan requires non-nil source")
	}
	if fn == nil {
		panic("seqx: Scan requires non-nil accumulator")
	}
	acc := initial
	return New(func(ctx context.Context) (R, error) {
		val, err := s.Next(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		acc = fn(acc, val)
		return acc, nil
	})
}
