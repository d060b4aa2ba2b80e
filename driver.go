package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// Driver ties Constructor, LocalSearch/IteratedLocalSearch, the elite pool,
// and the pattern-mining/reduced-instance loop to a wall-clock budget,
// following the reference solver's outer loop exactly.
type Driver struct {
	in      *Instance
	cfg     Config
	rng     *rand.Rand
	elite   *ElitePool
	timeout time.Duration

	best     *Solution
	timeBest time.Duration
}

func NewDriver(in *Instance, cfg Config, rng *rand.Rand, timeout time.Duration) *Driver {
	var elite *ElitePool
	if cfg.EliteMaxSize > 0 {
		elite = NewElitePool(cfg.EliteMaxSize)
	}
	return &Driver{in: in, cfg: cfg, rng: rng, elite: elite, timeout: timeout}
}

func (d *Driver) Best() *Solution        { return d.best }
func (d *Driver) TimeBest() time.Duration { return d.timeBest }

// Run executes the multi-start MR-ILS loop until the timeout elapses.
func (d *Driver) Run() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	var patterns []Pattern
	var reducedCache *ReducedInstanceCache

	i := 0
	nuIter := 0
	maxNuIter := 0
	eliteUpdated := false
	p := 0

	for ctx.Err() == nil {
		i++

		if d.elite != nil && eliteUpdated &&
			(nuIter > maxNuIter || (d.elite.Len() == d.cfg.EliteMaxSize && len(patterns) == 0 && time.Since(start) > d.timeout/2)) {
			if Verbose {
				fmt.Fprintln(os.Stderr, "mining elite...")
			}
			patterns = MineElite(d.in, d.elite, d.cfg.MinSup, d.cfg.NPatterns)
			reducedCache = NewReducedInstanceCache(d.in, patterns)
			eliteUpdated = false
			p = 0
		}

		var sol *Solution
		if len(patterns) == 0 {
			if Verbose {
				fmt.Fprintln(os.Stderr, "generating initial solution...")
			}
			sol = InitialSolution(d.in, d.cfg, d.rng)
		} else {
			reduced := reducedCache.Get(p)

			if Verbose {
				fmt.Fprintln(os.Stderr, "generating initial solution (reduced)...")
			}
			reducedSol := InitialSolution(reduced, d.cfg, d.rng)
			reducedSol = IteratedLocalSearch(ctx, reduced, reducedSol, d.cfg, d.rng)

			sol = NewSolution(d.in)
			for w := 0; w < d.in.Warehouses(); w++ {
				for s := range reducedSol.SuppliedStores(w) {
					sol.Assign(s, w, reducedSol.Supply(s, w))
				}
			}
			for _, sup := range patterns[p] {
				sol.Assign(sup.S, sup.W, sup.Q)
			}

			p = (p + 1) % len(patterns)
		}

		if Verbose {
			fmt.Fprintln(os.Stderr, "local search...")
		}
		sol = IteratedLocalSearch(ctx, d.in, sol, d.cfg, d.rng)

		if d.elite != nil {
			nuIter++
			if d.elite.Insert(sol) {
				nuIter = 0
				eliteUpdated = true
			}
		}

		if d.best == nil || sol.Cost() < d.best.Cost()-MyEpsilon {
			d.timeBest = time.Since(start)
			d.best = sol.Copy()
		}

		elapsed := time.Since(start)
		estNIter := 1000
		if elapsed > 0 {
			estNIter = int(float64(d.timeout) / (float64(elapsed) / float64(i)))
			if estNIter > 1000 {
				estNIter = 1000
			}
		}
		maxNuIter = int(d.cfg.StabiParam * float64(estNIter))
	}
}
