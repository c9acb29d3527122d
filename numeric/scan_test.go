package numeric

import (
	"math"
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fibonacci = []uint64{
	1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181, 6765, 10946, 17711, 28657, 46368,
	75025, 121393, 196418, 317811, 514229, 832040, 1346269, 2178309, 3524578, 5702887, 9227465, 14930352, 24157817,
	39088169, 63245986, 102334155, 165580141, 267914296, 433494437, 701408733, 1134903170, 1836311903, 2971215073,
	4807526976, 7778742049, 12586269025, 20365011074, 32951280099, 53316291173, 86267571272, 139583862445,
	225851433717, 365435296162, 591286729879, 956722026041, 1548008755920, 2504730781961, 4052739537881,
	6557470319842, 10610209857723, 17167680177565, 27777890035288, 44945570212853, 72723460248141, 117669030460994,
	190392490709135, 308061521170129, 498454011879264, 806515533049393, 1304969544928657, 2111485077978050,
	3416454622906707, 5527939700884757, 8944394323791464, 14472334024676221, 23416728348467685, 37889062373143906,
	61305790721611591, 99194853094755497, 160500643816367088, 259695496911122585, 420196140727489673,
	679891637638612258, 1100087778366101931, 1779979416004714189, 2880067194370816120, 4660046610375530309,
	7540113804746346429, 12200160415121876738,
}

func TestPartialSum(t *testing.T) {
	evens := PartialSum(nil, slices.Repeat([]int{2}, 10))
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, evens)
	powers := PartialSumFunc(nil, slices.Repeat([]int{2}, 10), Multiplies[int])
	assert.Equal(t, []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}, powers)

	factorials := PartialSumFunc(nil, Iota(make([]uint64, 20), 1), Multiplies[uint64])
	require.Len(t, factorials, 20)
	assert.Equal(t, uint64(1), factorials[0])
	assert.Equal(t, uint64(3628800), factorials[9])
	assert.Equal(t, uint64(2432902008176640000), factorials[19])

	assert.Empty(t, PartialSum([]int{}, []int{}))
	assert.Empty(t, PartialSum[int](nil, nil))
}

func TestPartialSumDestination(t *testing.T) {
	s := []int{1, 2, 3, 4}
	// in place
	out := PartialSum(s, s)
	assert.Equal(t, []int{1, 3, 6, 10}, s)
	assert.Same(t, &s[0], &out[0])

	// large enough destination is reused
	dst := make([]int, 0, 10)
	out = PartialSum(dst, []int{5, 5})
	assert.Equal(t, []int{5, 10}, out)
	assert.Equal(t, 10, cap(out))

	// too small destination is not
	dst = make([]int, 1)
	out = PartialSum(dst, []int{5, 5})
	assert.Equal(t, []int{5, 10}, out)
	assert.Equal(t, []int{0}, dst)
}

func TestPartialSumIsLeftToRight(t *testing.T) {
	assert.Equal(t, []int{10, 9, 7, 4}, PartialSumFunc(nil, []int{10, 1, 2, 3}, Minus[int]))
}

func TestScanProperties(t *testing.T) {
	values, err := faker.RandomInt(-1000, 1000, 300)
	require.NoError(t, err)
	init := len(values)

	inclusive := InclusiveScan(nil, values)
	exclusive := ExclusiveScan(nil, values, init)
	require.Len(t, inclusive, len(values))
	require.Len(t, exclusive, len(values))
	assert.Equal(t, init, exclusive[0])
	for i := range values {
		assert.Equal(t, Accumulate(values[:i+1], 0), inclusive[i])
		if i > 0 {
			assert.Equal(t, inclusive[i-1]+init, exclusive[i])
		}
	}
	assert.Equal(t, PartialSum(nil, values), inclusive)
	assert.Equal(t, InclusiveScanInit(nil, values, 0, Plus[int]), inclusive)
	assert.Equal(t, values, AdjacentDifference(nil, PartialSum(nil, values)))
	assert.Equal(t, values, PartialSum(nil, AdjacentDifference(nil, values)))
}

func TestExclusiveInclusiveScan(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	assert.Equal(t, []int{0, 3, 4, 8, 9, 14, 23, 25}, ExclusiveScan(nil, s, 0))
	assert.Equal(t, []int{3, 4, 8, 9, 14, 23, 25, 31}, InclusiveScan(nil, s))
	assert.Equal(t, []int{1, 3, 3, 12, 12, 60, 540, 1080}, ExclusiveScanFunc(nil, s, 1, Multiplies[int]))
	assert.Equal(t, []int{3, 3, 12, 12, 60, 540, 1080, 6480}, InclusiveScanFunc(nil, s, Multiplies[int]))
	assert.Equal(t, []int{13, 14, 18, 19, 24, 33, 35, 41}, InclusiveScanInit(nil, s, 10, Plus[int]))
	assert.Empty(t, ExclusiveScan(nil, []int{}, 5))
	assert.Empty(t, InclusiveScanInit(nil, []int{}, 5, Plus[int]))

	inPlace := slices.Clone(s)
	ExclusiveScan(inPlace, inPlace, 0)
	assert.Equal(t, []int{0, 3, 4, 8, 9, 14, 23, 25}, inPlace)
}

func TestTransformScans(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	timesTen := func(v int) int { return v * 10 }
	assert.Equal(t, []int{0, 30, 40, 80, 90, 140, 230, 250}, TransformExclusiveScan(nil, s, 0, Plus[int], timesTen))
	assert.Equal(t, []int{30, 40, 80, 90, 140, 230, 250, 310}, TransformInclusiveScan(nil, s, Plus[int], timesTen))
	assert.Equal(t, []float64{1.5, 2, 4, 4.5}, TransformInclusiveScan(nil, []int{3, 1, 4, 1}, Plus[float64], func(v int) float64 { return float64(v) / 2 }))
	assert.Empty(t, TransformInclusiveScan(nil, []int{}, Plus[int], timesTen))
	assert.Empty(t, TransformExclusiveScan(nil, []int{}, 1, Plus[int], timesTen))
}

func TestAdjacentDifference(t *testing.T) {
	assert.Equal(t, []int{2, 2, 2, 2}, AdjacentDifference(nil, []int{2, 4, 6, 8}))
	assert.Equal(t, []int{1, 1, 2, 3, 4}, AdjacentDifference(nil, []int{1, 2, 4, 7, 11}))
	assert.Equal(t, []int{1, 3, 6, 11, 18}, AdjacentDifferenceFunc(nil, []int{1, 2, 4, 7, 11}, Plus[int]))
	assert.Empty(t, AdjacentDifference(nil, []int{}))

	s := []int{2, 4, 6, 8}
	AdjacentDifference(s, s)
	assert.Equal(t, []int{2, 2, 2, 2}, s)
}

func TestAdjacentDifferenceFibonacci(t *testing.T) {
	a := make([]uint64, len(fibonacci))
	a[0] = 1
	AdjacentDifferenceFunc(a[1:], a[:len(a)-1], Plus[uint64])
	assert.Equal(t, fibonacci, a)
	assert.Less(t, a[len(a)-1], uint64(math.MaxUint64))
}
