package seqx

import (
	"context"
	"io"

	"github.com/baxromumarov/sugar"
)

// ToSlice drains the sequence into a slice, preserving pull order.
// An empty sequence yields a nil slice.
func (s *Seq[T]) ToSlice(ctx context.Context) ([]T, error) {
	var items []T
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
}

// ForEach applies fn to each value in pull order. Stops at the first
// error from fn or the sequence.
func (s *Seq[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(val); err != nil {
			return err
		}
	}
}

// Count drains the sequence and returns the number of values.
func (s *Seq[T]) Count(ctx context.Context) (int, error) {
	var count int
	for {
		_, err := s.Next(ctx)
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		count++
	}
}

// Reduce folds the sequence into a single value, starting from initial.
func Reduce[T, R any](ctx context.Context, s *Seq[T], initial R, fn func(R, T) R) (R, error) {
	if s == nil {
		panic("seqx: Reduce requires non-nil source")
	}
	if fn == nil {
		panic("seqx: Reduce requires non-nil accumulator")
	}
	acc := initial
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return acc, nil
		}
		if err != nil {
			var zero R
			return zero, err
		}
		acc = fn(acc, val)
	}
}

// CollectSet drains the sequence into a [sugar.Set]. Duplicates collapse.
func CollectSet[T comparable](ctx context.Context, s *Seq[T]) (sugar.Set[T], error) {
	set := sugar.SetOf[T]()
	err := s.ForEach(ctx, func(v T) error {
		set.Add(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// CollectMap drains the sequence into a map, deriving each entry's key
// and value from the pulled value. Duplicate keys follow standard map
// semantics: last write wins.
func CollectMap[T any, K comparable, V any](
	ctx context.Context,
	s *Seq[T],
	key func(T) K,
	val func(T) V,
) (map[K]V, error) {
	if key == nil || val == nil {
		panic("seqx: CollectMap requires non-nil key and val functions")
	}
	m := make(map[K]V)
	err := s.ForEach(ctx, func(v T) error {
		m[key(v)] = val(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
