package showcase

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/ARM-software/golang-numeric/collection"
	"github.com/ARM-software/golang-numeric/field"
	"github.com/ARM-software/golang-numeric/numeric"
)

var knownFibonacci = []uint64{
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

// knownFactorials lists 1! to 20!, the largest factorial fitting in 64 bits.
var knownFactorials = []uint64{
	1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600, 6227020800, 87178291200, 1307674368000,
	20922789888000, 355687428096000, 6402373705728000, 121645100408832000, 2432902008176640000,
}

var scanInput = []int{3, 1, 4, 1, 5, 9, 2, 6}

type scanResult struct {
	label  string
	values []int
}

func demoAdjacentDifference(_ context.Context, out *Printer, _ *numeric.Policy) error {
	vec := collection.Range(2, 21, field.ToOptionalInt(2))
	out.Row("", vec, 2, 0)
	numeric.AdjacentDifference(vec, vec)
	out.Row("", vec, 2, 0)

	out.Printf("\nFibonacci series, x(n) = x(n-1) + x(n-2) [first %v terms]\n\n", len(knownFibonacci))
	series := make([]uint64, len(knownFibonacci))
	series[0] = 1
	numeric.AdjacentDifferenceFunc(series[1:], series[:len(series)-1], numeric.Plus[uint64])
	out.Row("", series, 20, 3)
	out.Println()
	out.Printf("matches the known series: %v\n", slices.Equal(series, knownFibonacci))
	out.Printf("%42v%20v\n", "Max 64-bit unsigned integer: ", uint64(math.MaxUint64))
	return out.Err()
}

func demoPartialSum(_ context.Context, out *Printer, _ *numeric.Policy) error {
	vec := slices.Repeat([]int{2}, 10)
	out.Row("", vec, 0, 0)
	out.Row(fmt.Sprintf("The first %v even numbers are: ", len(vec)), numeric.PartialSum(nil, vec), 0, 0)
	out.Row("", vec, 0, 0)
	numeric.PartialSumFunc(vec, vec, numeric.Multiplies[int])
	out.Row(fmt.Sprintf("The first %v powers of 2 are: ", len(vec)), vec, 0, 0)

	out.Println()
	out.Println("Factorials (using partial sums):")
	indices := slices.Repeat([]uint64{1}, len(knownFactorials))
	out.Row("", indices, 2, 0)
	factorials := numeric.PartialSum(nil, indices)
	out.Row("", factorials, 2, 0)
	numeric.PartialSumFunc(factorials, factorials, numeric.Multiplies[uint64])
	out.Row("", factorials, 20, 1)
	out.Printf("matches the known factorials: %v\n", slices.Equal(factorials, knownFactorials))
	return out.Err()
}

func demoScans(ctx context.Context, out *Printer, p *numeric.Policy) error {
	exclusiveSum, err := numeric.ExecuteExclusiveScan(ctx, p, nil, scanInput, 0, numeric.Plus[int])
	if err != nil {
		return err
	}
	inclusiveSum, err := numeric.ExecuteInclusiveScan(ctx, p, nil, scanInput, numeric.Plus[int])
	if err != nil {
		return err
	}
	exclusiveProduct, err := numeric.ExecuteExclusiveScan(ctx, p, nil, scanInput, 1, numeric.Multiplies[int])
	if err != nil {
		return err
	}
	inclusiveProduct, err := numeric.ExecuteInclusiveScan(ctx, p, nil, scanInput, numeric.Multiplies[int])
	if err != nil {
		return err
	}
	printScans(out, 20, []scanResult{
		{label: "exclusive sum: ", values: exclusiveSum},
		{label: "inclusive sum: ", values: inclusiveSum},
		{},
		{label: "exclusive product: ", values: exclusiveProduct},
		{label: "inclusive product: ", values: inclusiveProduct},
	})
	return out.Err()
}

func demoTransformScans(ctx context.Context, out *Printer, p *numeric.Policy) error {
	timesTen := func(x int) int {
		return x * 10
	}
	exclusive, err := numeric.ExecuteTransformExclusiveScan(ctx, p, nil, scanInput, 0, numeric.Plus[int], timesTen)
	if err != nil {
		return err
	}
	inclusive, err := numeric.ExecuteTransformInclusiveScan(ctx, p, make([]int, len(scanInput)), scanInput, numeric.Plus[int], timesTen)
	if err != nil {
		return err
	}
	out.Row("transformed input: ", collection.Map(scanInput, timesTen), 0, 0)
	out.Println()
	printScans(out, 26, []scanResult{
		{label: "10 times exclusive sum: ", values: exclusive},
		{label: "10 times inclusive sum: ", values: inclusive},
	})
	return out.Err()
}

// printScans prints results twice: unaligned, then right-aligned on pad columns after the input.
// A result without label is printed as an empty line.
func printScans(out *Printer, pad int, results []scanResult) {
	for i := range results {
		if results[i].label == "" {
			out.Println()
			continue
		}
		out.Row(results[i].label, results[i].values, 0, 0)
	}
	out.Println()
	out.Row(fmt.Sprintf("%*v", pad, "input data: "), scanInput, 4, 0)
	out.Println()
	for i := range results {
		if results[i].label == "" {
			out.Println()
			continue
		}
		out.Row(fmt.Sprintf("%*v", pad, results[i].label), results[i].values, 4, 0)
	}
}
