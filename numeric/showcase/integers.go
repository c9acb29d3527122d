package showcase

import (
	"context"
	"math"

	"github.com/ARM-software/golang-numeric/numeric"
)

const divisor int32 = 3

func demoGCD(_ context.Context, out *Printer, _ *numeric.Policy) error {
	out.Println("greatest common divisors:")
	for _, v := range numeric.Iota(make([]int32, 30), 21) {
		out.Printf("gcd of %2d & %2d is %2d\n", divisor, v, numeric.GCD(divisor, v))
	}
	return out.Err()
}

func demoLCM(_ context.Context, out *Printer, _ *numeric.Policy) error {
	out.Println("least common multiples:")
	for _, v := range numeric.Iota(make([]int32, 30), 21) {
		lcm, err := numeric.LCMChecked(divisor, v)
		if err != nil {
			return err
		}
		out.Printf("lcm of %2d & %2d is %2d\n", divisor, v, lcm)
	}
	return out.Err()
}

func demoMidpoint(_ context.Context, out *Printer, _ *numeric.Policy) error {
	maxA := uint32(math.MaxUint32)
	maxB := maxA - 2
	out.Printf("max_a: %v\n", maxA)
	out.Printf("max_b: %v\n", maxB)
	out.Printf("Incorrect (overflow and wrapping): %v\n", (maxA+maxB)/2)
	out.Printf("Correct: %v\n\n", numeric.Midpoint(maxA, maxB))

	largest := math.MaxFloat64
	out.Printf("Incorrect floating-point (overflow): %v\n", (largest+largest)/2)
	out.Printf("Correct floating-point: %v\n\n", numeric.MidpointFloat(largest, largest))

	digits := []byte("0123456789")
	for _, pair := range [][2]int{{2, 4}, {2, 5}, {5, 2}, {2, 6}} {
		out.Printf("midpoint('%c', '%c'): '%c'\n", digits[pair[0]], digits[pair[1]], numeric.MidpointOf(digits, pair[0], pair[1]))
	}
	return out.Err()
}
