package seqx

import (
	"context"
	"io"
)

// Comp builds a lazy comprehension over a single generator: each value
// drawn from src that passes every filter is transformed and yielded.
func Comp[T, R any](src *Seq[T], transform func(T) R, filters ...func(T) bool) *Seq[R] {
	if src == nil {
		panic("seqx: Comp requires non-nil source")
	}
	if transform == nil {
		panic("seqx: Comp requires non-nil transform")
	}
	return New(func(ctx context.Context) (R, error) {
	pull:
		for {
			v, err := src.Next(ctx)
			if err != nil {
				var zero R
				return zero, err
			}
			for _, keep := range filters {
				if !keep(v) {
					continue pull
				}
			}
			return transform(v), nil
		}
	})
}

// Comp2 builds a lazy comprehension over two generators. The leftmost
// generator is the outermost loop and varies slowest; inner is invoked
// once per outer value, so inner ranges may depend on the outer binding.
func Comp2[A, B, R any](
	outer *Seq[A],
	inner func(A) *Seq[B],
	transform func(A, B) R,
	filters ...func(A, B) bool,
) *Seq[R] {
	if outer == nil {
		panic("seqx: Comp2 requires non-nil outer generator")
	}
	if inner == nil || transform == nil {
		panic("seqx: Comp2 requires non-nil inner generator and transform")
	}
	var (
		a    A
		cur  *Seq[B]
		live bool
	)
	return New(func(ctx context.Context) (R, error) {
	pull:
		for {
			if !live {
				v, err := outer.Next(ctx)
				if err != nil {
					var zero R
					return zero, err
				}
				a, cur, live = v, inner(v), true
			}
			b, err := cur.Next(ctx)
			if err == io.EOF {
				live = false
				continue
			}
			if err != nil {
				var zero R
				return zero, err
			}
			for _, keep := range filters {
				if !keep(a, b) {
					continue pull
				}
			}
			return transform(a, b), nil
		}
	})
}

// Comp3 builds a lazy comprehension over three generators, the deepest
// supported nesting. Loop order follows [Comp2]: leftmost outermost.
func Comp3[A, B, C, R any](
	outer *Seq[A],
	inner func(A) *Seq[B],
	innermost func(A, B) *Seq[C],
	transform func(A, B, C) R,
	filters ...func(A, B, C) bool,
) *Seq[R] {
	if outer == nil {
		panic("seqx: Comp3 requires non-nil outer generator")
	}
	if inner == nil || innermost == nil || transform == nil {
		panic("seqx: Comp3 requires non-nil generators and transform")
	}
	var (
		a     A
		b     B
		mid   *Seq[B]
		deep  *Seq[C]
		midOK bool
		dpOK  bool
	)
	return New(func(ctx context.Context) (R, error) {
	pull:
		for {
			if !midOK {
				v, err := outer.Next(ctx)
				if err != nil {
					var zero R
					return zero, err
				}
				a, mid, midOK = v, inner(v), true
			}
			if !dpOK {
				v, err := mid.Next(ctx)
				if err == io.EOF {
					midOK = false
					continue
				}
				if err != nil {
					var zero R
					return zero, err
				}
				b, deep, dpOK = v, innermost(a, v), true
			}
			c, err := deep.Next(ctx)
			if err == io.EOF {
				dpOK = false
				continue
			}
			if err != nil {
				var zero R
				return zero, err
			}
			for _, keep := range filters {
				if !keep(a, b, c) {
					continue pull
				}
			}
			return transform(a, b, c), nil
		}
	})
}
