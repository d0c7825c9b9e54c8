package seqx

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSlice_EmptySequence(t *testing.T) {
	got, err := FromSlice[string](nil).ToSlice(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestForEach(t *testing.T) {
	var got []int
	err := Range(1, 4).ForEach(context.Background(), func(v int) error {
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestForEach_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var got []int
	err := Range(0, 100).ForEach(context.Background(), func(v int) error {
		if v == 3 {
			return boom
		}
		got = append(got, v)
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestCount(t *testing.T) {
	n, err := Range(0, 42).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestReduce(t *testing.T) {
	sum, err := Reduce(context.Background(), Range(1, 5), 0,
		func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}

func TestReduce_EmptyReturnsInitial(t *testing.T) {
	got, err := Reduce(context.Background(), FromSlice[int](nil), 7,
		func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestCollectSet(t *testing.T) {
	set, err := CollectSet(context.Background(),
		Comp(Range(0, 10), func(x int) int { return x % 3 }))
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has(0))
	assert.True(t, set.Has(1))
	assert.True(t, set.Has(2))
}

func TestCollectSet_Empty(t *testing.T) {
	set, err := CollectSet(context.Background(), FromSlice[int](nil))
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, 0, set.Len())
}

func TestCollectMap(t *testing.T) {
	m, err := CollectMap(context.Background(), Range(1, 4),
		func(v int) string { return strconv.Itoa(v) },
		func(v int) int { return v * v })
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1, "2": 4, "3": 9}, m)
}

func TestCollectMap_LastWriteWins(t *testing.T) {
	m, err := CollectMap(context.Background(), Range(0, 6),
		func(v int) int { return v % 2 },
		func(v int) int { return v })
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 4, 1: 5}, m)
}

func TestCollectMap_Empty(t *testing.T) {
	m, err := CollectMap(context.Background(), FromSlice[int](nil),
		func(v int) int { return v },
		func(v int) int { return v })
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Empty(t, m)
}

func TestCollect_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	mk := func() *Seq[int] {
		calls := 0
		return FromFunc(func(ctx context.Context) (int, error) {
			calls++
			if calls > 1 {
				return 0, boom
			}
			return calls, nil
		})
	}

	_, err := CollectSet(context.Background(), mk())
	assert.ErrorIs(t, err, boom)

	_, err = CollectMap(context.Background(), mk(),
		func(v int) int { return v }, func(v int) int { return v })
	assert.ErrorIs(t, err, boom)

	_, err = Reduce(context.Background(), mk(), 0, func(acc, v int) int { return acc + v })
	assert.ErrorIs(t, err, boom)
}
