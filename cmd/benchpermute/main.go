// Command benchpermute times the reordering strategies against each other
// across a range of buffer sizes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	algospl "github.com/cwbudde/algo-spl"
)

type benchResult struct {
	strategy algospl.Strategy
	nsPerOp  float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %12s  %12s\n", "size", "strategy", "ns/op")

	for _, n := range sizes {
		results := benchmarkSize(rnd, n, *iters, *warmup)

		sort.Slice(results, func(i, j int) bool {
			return results[i].nsPerOp < results[j].nsPerOp
		})

		for _, res := range results {
			fmt.Printf("%8d  %12s  %12.1f\n", n, res.strategy, res.nsPerOp)
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int) []benchResult {
	stages := log2(n)
	if stages < 0 {
		fmt.Printf("skipping %d: not a power of 2\n", n)
		return nil
	}

	buf := make([]uint32, n)
	for i := range buf {
		buf[i] = rnd.Uint32()
	}

	var results []benchResult

	for _, strategy := range []algospl.Strategy{algospl.StrategyIncremental, algospl.StrategyTable} {
		plan, err := algospl.NewPlan[uint32](stages, algospl.WithStrategy(strategy))
		if err != nil {
			fmt.Printf("skipping %d/%s: %v\n", n, strategy, err)
			continue
		}

		// The permutation is an involution, so repeated calls just toggle
		// between two orderings and no per-iteration reset is needed.
		for i := 0; i < warmup; i++ {
			plan.Permute(buf)
		}

		start := time.Now()
		for i := 0; i < iters; i++ {
			plan.Permute(buf)
		}
		elapsed := time.Since(start)

		results = append(results, benchResult{
			strategy: strategy,
			nsPerOp:  float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func parseSizes(s string) []int {
	var sizes []int

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			fmt.Printf("ignoring size %q\n", part)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}

// log2 returns log2(n) for powers of 2 and -1 otherwise.
func log2(n int) int {
	if n < 1 || n&(n-1) != 0 {
		return -1
	}

	stages := 0
	for n > 1 {
		n >>= 1
		stages++
	}

	return stages
}
