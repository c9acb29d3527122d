package numeric

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashFold(acc string, i int) string {
	if acc == "" {
		return fmt.Sprint(i)
	}
	return fmt.Sprintf("%v-%v", acc, i)
}

func TestAccumulate(t *testing.T) {
	s := Iota(make([]int, 10), 1)
	assert.Equal(t, 55, Accumulate(s, 0))
	assert.Equal(t, 3628800, AccumulateFunc(s, 1, FoldFunc[int, int](Multiplies[int])))
	assert.Equal(t, 12, Accumulate([]int{}, 12))
	assert.Equal(t, 12, Accumulate[int](nil, 12))
	assert.Equal(t, "1-2-3-4-5-6-7-8-9-10", AccumulateFunc(s, "", dashFold))
	assert.Equal(t, "10-9-8-7-6-5-4-3-2-1", AccumulateRight(s, "", dashFold))
	assert.Equal(t, "", AccumulateRight([]int{}, "", dashFold))
}

func TestAccumulateIsLeftToRight(t *testing.T) {
	// Minus is neither associative nor commutative.
	assert.Equal(t, 100-1-2-3, AccumulateFunc([]int{1, 2, 3}, 100, FoldFunc[int, int](Minus[int])))
	assert.Equal(t, 100-3-2-1, AccumulateRight([]int{1, 2, 3}, 100, FoldFunc[int, int](Minus[int])))
	words := strings.Fields(faker.Sentence())
	require.NotEmpty(t, words)
	assert.Equal(t, strings.Join(words, ""), AccumulateFunc(words, "", func(acc, w string) string { return acc + w }))
}

func TestAccumulateSequence(t *testing.T) {
	s := Iota(make([]float64, 10), 1)
	assert.Equal(t, 55.0, AccumulateSequence(slices.Values(s), 0.0, Plus[float64]))
	assert.Equal(t, 5.5, AccumulateSequence(slices.Values(s), 0.0, Plus[float64])/float64(len(s)))
	assert.Equal(t, 3, AccumulateSequence(slices.Values([]string{"a", "bb"}), 0, func(acc int, e string) int { return acc + len(e) }))
	assert.Equal(t, 7.0, AccumulateSequence[float64](nil, 7.0, Plus[float64]))
}

func TestReduce(t *testing.T) {
	s := Iota(make([]int64, 10), 1)
	assert.Equal(t, int64(55), Reduce(s, 0))
	assert.Equal(t, int64(-5), Reduce([]int64{}, -5))
	assert.Equal(t, int64(3628800), ReduceFunc(s, 1, Multiplies[int64]))

	values, err := faker.RandomInt(-1000, 1000, 200)
	require.NoError(t, err)
	assert.Equal(t, Accumulate(values, 42), Reduce(values, 42))
	assert.Equal(t, AccumulateFunc(values, 0, FoldFunc[int, int](Plus[int])), ReduceFunc(values, 0, Plus[int]))
}
