package seqx

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq_NextSequence(t *testing.T) {
	ctx := context.Background()
	s := FromSlice([]int{1, 2})

	v, err := s.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = s.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = s.Next(ctx)
	assert.Equal(t, io.EOF, err)

	// exhausted sequences keep returning EOF
	_, err = s.Next(ctx)
	assert.Equal(t, io.EOF, err)
}

func TestNew_NilPanics(t *testing.T) {
	assert.Panics(t, func() { New[int](nil) })
}

func TestSeq_Filter(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4}).Filter(func(v int) bool { return v%2 == 0 })

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)
}

func TestSeq_Take(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5}).Take(3)

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSeq_TakeMoreThanAvailable(t *testing.T) {
	s := FromSlice([]int{1, 2}).Take(10)

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestSeq_Skip(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5}).Skip(2)

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, got)
}

func TestSeq_SkipAll(t *testing.T) {
	s := FromSlice([]int{1, 2}).Skip(5)

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSeq_Peek(t *testing.T) {
	var seen []int
	s := FromSlice([]int{1, 2, 3}).Peek(func(v int) { seen = append(seen, v) })

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestSeq_FluentChain(t *testing.T) {
	s := Range(1, 11).
		Filter(func(v int) bool { return v%2 == 0 }).
		Take(3)

	got, err := s.ToSlice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestSeq_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Range(0, 1000).ToSlice(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeq_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	s := FromFunc(func(ctx context.Context) (int, error) {
		calls++
		if calls > 2 {
			return 0, boom
		}
		return calls, nil
	})

	_, err := Map(s, func(v int) int { return v * 10 }).ToSlice(context.Background())
	assert.ErrorIs(t, err, boom)
}
