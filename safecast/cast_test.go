package safecast

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		value    float64
		expected int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{1024.7, 1024},
		{math.MaxFloat64, math.MaxInt},
		{-math.MaxFloat64, math.MinInt},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v", test.value), func(t *testing.T) {
			assert.Equal(t, test.expected, ToInt(test.value))
		})
	}
	assert.Equal(t, math.MaxInt, ToInt(uint64(math.MaxUint64)))
	assert.Equal(t, 12, ToInt(int8(12)))
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), ToInt64(uint64(math.MaxUint64)))
	assert.Equal(t, int64(-5), ToInt64(int8(-5)))
	assert.Equal(t, int64(math.MinInt64), ToInt64(-math.MaxFloat32))
}

func TestToUint64(t *testing.T) {
	assert.Equal(t, uint64(0), ToUint64(-1))
	assert.Equal(t, uint64(0), ToUint64(int64(math.MinInt64)))
	assert.Equal(t, uint64(math.MaxInt64), ToUint64(int64(math.MaxInt64)))
	assert.Equal(t, uint64(math.MaxUint64), ToUint64(math.MaxFloat64))
	assert.Equal(t, 0.5, ToFloat64(float32(0.5)))
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, uint64(0), Magnitude(0))
	assert.Equal(t, uint64(21), Magnitude(-21))
	assert.Equal(t, uint64(21), Magnitude(uint8(21)))
	assert.Equal(t, uint64(128), Magnitude(int8(math.MinInt8)))
	assert.Equal(t, uint64(1)<<63, Magnitude(int64(math.MinInt64)))
	assert.Equal(t, uint64(math.MaxUint64), Magnitude(uint64(math.MaxUint64)))
}

func TestFromUint64(t *testing.T) {
	v, exact := FromUint64[int8](127)
	assert.True(t, exact)
	assert.Equal(t, int8(127), v)
	_, exact = FromUint64[int8](128)
	assert.False(t, exact)
	_, exact = FromUint64[uint8](256)
	assert.False(t, exact)
	u, exact := FromUint64[uint32](math.MaxUint32)
	assert.True(t, exact)
	assert.Equal(t, uint32(math.MaxUint32), u)
	_, exact = FromUint64[int64](uint64(1) << 63)
	assert.False(t, exact)
	w, exact := FromUint64[uint64](math.MaxUint64)
	assert.True(t, exact)
	assert.Equal(t, uint64(math.MaxUint64), w)
}
