package showcase

import (
	"context"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/golang-numeric/collection"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/numeric"
)

// reduceSampleSize is the number of elements summed when comparing folding with reduction.
var reduceSampleSize = 10_000_007

func dashFold(acc string, i int) string {
	return acc + "-" + strconv.Itoa(i)
}

func demoIota(_ context.Context, out *Printer, _ *numeric.Policy) error {
	list := numeric.Iota(make([]int, 10), -4)
	shuffled := slices.Clone(list)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	out.Row("Contents of the list: ", list, 0, 0)
	out.Row("Contents of the list, shuffled: ", shuffled, 0, 0)
	out.Printf("Same elements: %v\n", mapset.NewThreadUnsafeSet(list...).Equal(mapset.NewThreadUnsafeSet(shuffled...)))
	return out.Err()
}

func demoAccumulate(_ context.Context, out *Printer, _ *numeric.Policy) error {
	vec := numeric.Iota(make([]int, 10), 1)
	sum := numeric.Accumulate(vec, 0)
	product := numeric.AccumulateFunc(vec, 1, numeric.FoldFunc[int, int](numeric.Multiplies[int]))
	dashed := numeric.AccumulateFunc(vec[1:], strconv.Itoa(vec[0]), dashFold)
	rightDashed := numeric.AccumulateRight(vec[:len(vec)-1], strconv.Itoa(vec[len(vec)-1]), dashFold)
	out.Printf("sum: %v\n", sum)
	out.Printf("product: %v\n", product)
	out.Printf("dash-separated string: %v\n", dashed)
	out.Printf("dash-separated string (right-folded): %v\n", rightDashed)

	average := numeric.AccumulateSequence(slices.Values(vec), 0.0, func(acc float64, i int) float64 {
		return acc + float64(i)
	}) / float64(len(vec))
	out.Printf("average: %v\n", average)
	aboveAverage := collection.Reject(vec, func(i int) bool {
		return float64(i) < average
	})
	out.Row("", aboveAverage, 0, 0)
	return out.Err()
}

func timed[T any](f func() (T, error)) (result T, elapsed time.Duration, err error) {
	start := time.Now()
	result, err = f()
	elapsed = time.Since(start)
	return
}

func demoReduce(ctx context.Context, out *Printer, p *numeric.Policy) error {
	vec := slices.Repeat([]float64{0.5}, reduceSampleSize)
	skewed := func(n1, n2 float64) float64 {
		return n1 + n2*11.5
	}
	runs := []struct {
		name string
		run  func() (float64, error)
	}{
		{
			name: "accumulate",
			run: func() (float64, error) {
				return numeric.Accumulate(vec, 0.0), nil
			},
		},
		{
			name: "reduce",
			run: func() (float64, error) {
				return numeric.ExecuteReduce(ctx, p, vec, 0.0, numeric.Plus[float64])
			},
		},
		{
			name: "reduce from 777.7",
			run: func() (float64, error) {
				return numeric.ExecuteReduce(ctx, p, vec, 777.7, numeric.Plus[float64])
			},
		},
		{
			name: "accumulate with n1+n2*11.5",
			run: func() (float64, error) {
				return numeric.AccumulateFunc(vec, 0.0, numeric.FoldFunc[float64, float64](skewed)), nil
			},
		},
		{
			name: "reduce with n1+n2*11.5 (not associative)",
			run: func() (float64, error) {
				return numeric.ExecuteReduce(ctx, p, vec, 0.0, skewed)
			},
		},
	}
	for i := range runs {
		result, elapsed, err := timed(runs[i].run)
		if err != nil {
			return err
		}
		out.Printf("%v result %f took %v\n", runs[i].name, result, elapsed)
	}

	trace, err := logs.NewStringLogger("reduce")
	if err != nil {
		return err
	}
	defer func() { _ = trace.Close() }()
	sum, err := numeric.ExecuteReduce(ctx, numeric.NewPolicy(numeric.Trace(trace)), []int{1, 2, 3, 4}, 0, numeric.Plus[int])
	if err != nil {
		return err
	}
	out.Printf("traced reduce of 1 2 3 4 result %v\n%v", sum, trace.GetLogContent())
	return out.Err()
}

func demoTransformReduce(ctx context.Context, out *Printer, p *numeric.Policy) error {
	ones := slices.Repeat([]float64{1}, 10007)
	result, err := numeric.ExecuteTransformReduce(ctx, p, ones, ones, 0.0, numeric.Plus[float64], numeric.Multiplies[float64])
	if err != nil {
		return err
	}
	out.Printf("transform_reduce result %v\n", result)

	x := []int{0, 1, 2, 3, 4}
	y := []int{5, 4, 2, 3, 1}
	out.Println("list x:")
	out.Row("", x, 4, 25)
	out.Printf("accumulate sum %v\n", numeric.Accumulate(x, 0))
	out.Println("list y:")
	out.Row("", y, 4, 25)
	out.Printf("accumulate sum %v\n", numeric.Accumulate(y, 0))
	products, err := numeric.ExecuteTransformReduce(ctx, p, x, y, 0, numeric.Plus[int], numeric.Multiplies[int])
	if err != nil {
		return err
	}
	out.Printf("transform_reduce x y %v\n", products)
	out.Printf("inner_product x y %v\n", numeric.InnerProduct(x, y, 0))
	out.Println()

	values := collection.Range(1, 101, nil)
	out.Row("", slices.Repeat([]int{1}, len(values)), 2, 25)
	out.Row("", values, 4, 25)
	total, err := numeric.ExecuteTransformReduceUnary(ctx, p, values, 0, numeric.Plus[int], numeric.Identity[int])
	if err != nil {
		return err
	}
	out.Printf("%20v %v\n", "identity", total)
	total, err = numeric.ExecuteTransformReduce(ctx, p, values, slices.Repeat([]int{1}, len(values)), 0, numeric.Plus[int], numeric.Multiplies[int])
	if err != nil {
		return err
	}
	out.Printf("%20v %v\n", "multiplied by one", total)
	total = numeric.AccumulateSequence(collection.RangeSequence(1, 101, nil), 0, numeric.FoldFunc[int, int](numeric.Plus[int]))
	out.Printf("%20v %v\n", "sequence", total)
	return out.Err()
}

func demoInnerProduct(_ context.Context, out *Printer, _ *numeric.Policy) error {
	a := []int{0, 1, 2, 3, 4}
	b := []int{5, 4, 2, 3, 1}
	out.Println("lists a & b:")
	out.Row("", a, 0, 0)
	out.Row("", b, 0, 0)
	out.Printf("Inner product of a and b: %v\n", numeric.InnerProduct(a, b, 0))
	matches := numeric.InnerProductFunc(a, b, 0, numeric.CountTrue, numeric.EqualTo[int])
	out.Printf("Number of pairwise matches between a and b: %v\n", matches)
	return out.Err()
}
