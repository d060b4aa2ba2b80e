package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"
)

const usage = `Usage: solver <input_file> <solution_file> <timeout_seconds> <random_seed>
Input file in .dzn or .json format.

Flags:
`

func main() {
	bench := flag.Int("bench", 1, "run N concurrent driver workers (different seeds) and keep the best")
	verbose := flag.Bool("verbose", false, "print detailed search progress to stderr")
	jsonOut := flag.Bool("json", false, "print the final summary as JSON in addition to the solution file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 4 {
		flag.Usage()
		os.Exit(1)
	}

	Verbose = *verbose

	inputFile := args[0]
	solutionFile := args[1]
	timeoutSeconds, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid timeout_seconds %q\n", args[2])
		os.Exit(1)
	}
	seed, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid random_seed %q\n", args[3])
		os.Exit(1)
	}

	in, err := ParseInstance(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := NewConfig(in.Warehouses())
	timeout := time.Duration(timeoutSeconds) * time.Second

	workers := *bench
	if workers < 1 {
		workers = 1
	}

	bestSol, bestTimeBest := runWorkers(in, cfg, seed, timeout, workers)

	out, err := os.Create(solutionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot create %s: %v\n", solutionFile, err)
		os.Exit(1)
	}
	WriteSolution(out, in, bestSol, bestTimeBest.Seconds())
	out.Close()

	fmt.Print(FormatSummary(bestSol, bestTimeBest.Seconds()))

	if *jsonOut {
		printJSONSummary(bestSol, bestTimeBest)
	}
}

// runWorkers fans workers concurrent Driver runs, each with its own
// seeded RNG and owned mutable search state (Instance is read-only and
// shared), then returns the best result — mirroring the teacher's
// clone-per-worker / channel-collect Optimize() fan-out.
func runWorkers(in *Instance, cfg Config, seed int64, timeout time.Duration, workers int) (*Solution, time.Duration) {
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}

	type result struct {
		sol      *Solution
		timeBest time.Duration
	}

	results := make(chan result, workers)
	var wg sync.WaitGroup

	for wIdx := 0; wIdx < workers; wIdx++ {
		wg.Add(1)
		go func(offset int64) {
			defer wg.Done()
			rng := NewRNG(seed + offset)
			d := NewDriver(in, cfg, rng, timeout)
			d.Run()
			results <- result{sol: d.Best(), timeBest: d.TimeBest()}
		}(int64(wIdx))
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var best *Solution
	var bestTimeBest time.Duration
	for r := range results {
		if r.sol == nil {
			continue
		}
		if best == nil || r.sol.Cost() < best.Cost()-MyEpsilon {
			best = r.sol
			bestTimeBest = r.timeBest
		}
	}
	return best, bestTimeBest
}

type jsonSummary struct {
	Violations int     `json:"violations"`
	Cost       float64 `json:"cost"`
	SupplyCost float64 `json:"supplyCost"`
	OpeningCost int    `json:"openingCost"`
	TimeBestMs int64   `json:"timeBestMs"`
}

func printJSONSummary(sol *Solution, timeBest time.Duration) {
	s := jsonSummary{
		Violations:  sol.ComputeViolations(),
		Cost:        sol.Cost(),
		SupplyCost:  sol.SupplyCostTotal(),
		OpeningCost: sol.OpeningCost(),
		TimeBestMs:  timeBest.Milliseconds(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(s)
}
