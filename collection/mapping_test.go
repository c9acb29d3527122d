package collection

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	num := []int{1, 2, 3, 4}
	assert.Equal(t, []string{"1", "2", "3", "4"}, Map(num, strconv.Itoa))
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, Map(num, func(i int) float64 { return float64(i) / 2 }))
	assert.Empty(t, Map([]int{}, strconv.Itoa))
	assert.Empty(t, Map(nil, strconv.Itoa))
}

func TestMapSequence(t *testing.T) {
	calls := 0
	times10 := func(i int) int {
		calls++
		return i * 10
	}
	seq := MapSequence(RangeSequence(1, 5, nil), times10)
	assert.Zero(t, calls)
	assert.Equal(t, []int{10, 20, 30, 40}, slices.Collect(seq))
	assert.Equal(t, 4, calls)

	var partial []int
	for v := range seq {
		partial = append(partial, v)
		if len(partial) == 2 {
			break
		}
	}
	assert.Equal(t, []int{10, 20}, partial)
	assert.Equal(t, 6, calls)
}
