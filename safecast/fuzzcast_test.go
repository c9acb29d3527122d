package safecast

import (
	"math"
	"testing"
)

func FuzzToInt(f *testing.F) {
	f.Add(0.0)
	f.Add(math.MaxFloat64)
	f.Add(-math.MaxFloat64)
	f.Fuzz(func(t *testing.T, from float64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		_ = ToInt(from)
	})
}

func FuzzMagnitude(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, from int64) {
		m := Magnitude(from)
		if from >= 0 && m != uint64(from) {
			t.Fatalf("magnitude of %v: %v", from, m)
		}
		if from < 0 && from != math.MinInt64 && m != uint64(-from) {
			t.Fatalf("magnitude of %v: %v", from, m)
		}
	})
}

func FuzzFromUint64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(math.MaxInt32))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, from uint64) {
		v, exact := FromUint64[int32](from)
		if exact != (from <= math.MaxInt32) {
			t.Fatalf("conversion of %v reported exact=%v", from, exact)
		}
		if exact && uint64(v) != from {
			t.Fatalf("conversion of %v gave %v", from, v)
		}
	})
}
