package collection

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterReject(t *testing.T) {
	values := Range(1, 11, nil)
	isEven := func(i int) bool { return i%2 == 0 }
	assert.Equal(t, []int{2, 4, 6, 8, 10}, Filter(values, isEven))
	assert.Equal(t, []int{1, 3, 5, 7, 9}, Reject(values, isEven))
	assert.Equal(t, Range(1, 11, nil), values)
	assert.Empty(t, Filter([]int{}, isEven))
	assert.Empty(t, Reject([]int{2}, isEven))
}

func TestFilterSequence(t *testing.T) {
	aboveFive := func(f float64) bool { return f > 5 }
	var visited []float64
	for v := range FilterSequence(slices.Values([]float64{1.5, 6.5, 7, 2, 9}), aboveFive) {
		visited = append(visited, v)
		if len(visited) == 2 {
			break
		}
	}
	assert.Equal(t, []float64{6.5, 7}, visited)
}
