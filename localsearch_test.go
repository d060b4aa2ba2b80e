package main

import (
	"context"
	"testing"
)

// TestLocalSearchRelocatesToCheaperFreeWarehouse is scenario E4: store 0 is
// fully supplied by warehouse 0; warehouse 1 is closed (fixed cost 0, so
// opening it is free) and strictly cheaper for store 0. One LocalSearch
// pass must relocate all of store 0's supply to warehouse 1.
func TestLocalSearchRelocatesToCheaperFreeWarehouse(t *testing.T) {
	in := &Instance{
		warehouses:        2,
		stores:            1,
		capacity:          []int{10, 10},
		fixedCost:         []int{5, 0},
		amountOfGood:      []int{6},
		supplyCost:        [][]float64{{3.0, 1.0}},
		incompatible:      [][]bool{{false}},
		wIncompatible:     [][]bool{{false}, {false}},
		incompatiblePairs: nil,
	}
	sol := NewSolution(in)
	sol.Assign(0, 0, 6)

	ctx := context.Background()
	LocalSearch(ctx, in, sol)

	if sol.Supply(0, 1) != 6 {
		t.Fatalf("Supply(0,1) = %d, want 6 (fully relocated)", sol.Supply(0, 1))
	}
	if sol.Supply(0, 0) != 0 {
		t.Fatalf("Supply(0,0) = %d, want 0", sol.Supply(0, 0))
	}
	if sol.Load(0) != 0 {
		t.Fatalf("warehouse 0 should be closed after relocation, Load(0) = %d", sol.Load(0))
	}
}

// TestLocalSearchSwapAdmissibleUnderIncompatibility is scenario E5: stores 0
// and 1 are incompatible and initially split across two warehouses; a swap
// that keeps them split (0 moves to w1, 1 moves to w0) must remain
// admissible, and must only apply if it strictly improves cost.
func TestLocalSearchSwapAdmissibleUnderIncompatibility(t *testing.T) {
	in := &Instance{
		warehouses:   2,
		stores:       2,
		capacity:     []int{10, 10},
		fixedCost:    []int{1, 1},
		amountOfGood: []int{5, 5},
		supplyCost: [][]float64{
			{5.0, 1.0}, // store 0 much cheaper at warehouse 1
			{1.0, 5.0}, // store 1 much cheaper at warehouse 0
		},
		incompatible: [][]bool{
			{false, true},
			{true, false},
		},
		wIncompatible:     [][]bool{{false, false}, {false, false}},
		incompatiblePairs: [][2]int{{0, 1}},
	}
	sol := NewSolution(in)
	sol.Assign(0, 0, 5) // store 0 @ w0 (expensive)
	sol.Assign(1, 1, 5) // store 1 @ w1 (expensive)

	before := sol.Cost()
	ctx := context.Background()
	LocalSearch(ctx, in, sol)

	if sol.Cost() >= before {
		t.Fatalf("expected swap to improve cost: before=%v after=%v", before, sol.Cost())
	}
	// Stores must remain split across warehouses (never co-located).
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Supply(0, w) > 0 && sol.Supply(1, w) > 0 {
			t.Fatalf("incompatible stores co-located at warehouse %d", w)
		}
	}
}

func TestLocalSearchMonotonicallyImprovesOrHoldsCost(t *testing.T) {
	in := feasibleInstance()
	rng := NewRNG(3)
	sol := initialSolutionGreedyOpening(in, rng)

	before := sol.Cost()
	ctx := context.Background()
	LocalSearch(ctx, in, sol)

	if sol.Cost() > before+MyEpsilon {
		t.Fatalf("LocalSearch increased cost: before=%v after=%v", before, sol.Cost())
	}
}

func TestIteratedLocalSearchNeverWorsensBest(t *testing.T) {
	in := feasibleInstance()
	rng := NewRNG(9)
	sol := initialSolutionGreedyOpening(in, rng)
	before := sol.Cost()

	cfg := Config{ILSMaxIter: 20, ILSAccept: 1.02}
	ctx := context.Background()
	best := IteratedLocalSearch(ctx, in, sol, cfg, rng)

	if best.Cost() > before+MyEpsilon {
		t.Fatalf("IteratedLocalSearch result cost %v worse than input %v", best.Cost(), before)
	}
}
