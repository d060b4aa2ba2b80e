package main

import "testing"

func feasibleInstance() *Instance {
	return &Instance{
		warehouses:   3,
		stores:       4,
		capacity:     []int{20, 15, 25},
		fixedCost:    []int{50, 40, 30},
		amountOfGood: []int{10, 8, 12, 9},
		supplyCost: [][]float64{
			{1.0, 2.0, 3.0},
			{2.0, 1.0, 2.5},
			{3.0, 2.5, 1.0},
			{1.5, 1.5, 1.5},
		},
		incompatible: [][]bool{
			{false, false, false, true},
			{false, false, false, false},
			{false, false, false, false},
			{true, false, false, false},
		},
		wIncompatible:     [][]bool{{false, false, false, false}, {false, false, false, false}, {false, false, false, false}},
		incompatiblePairs: [][2]int{{0, 3}},
	}
}

func TestConstructGreedyOpeningFeasible(t *testing.T) {
	in := feasibleInstance()
	rng := NewRNG(42)

	sol := initialSolutionGreedyOpening(in, rng)

	for s := 0; s < in.Stores(); s++ {
		if sol.AssignedGoods(s) != in.AmountOfGoods(s) {
			t.Fatalf("store %d assigned %d, want %d", s, sol.AssignedGoods(s), in.AmountOfGoods(s))
		}
	}
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Load(w) > in.Capacity(w) {
			t.Fatalf("warehouse %d load %d exceeds capacity %d", w, sol.Load(w), in.Capacity(w))
		}
	}
	if v := sol.ComputeViolations(); v != 0 {
		t.Fatalf("ComputeViolations() = %d, want 0", v)
	}
}

func TestConstructRandomOpeningFeasible(t *testing.T) {
	in := feasibleInstance()
	rng := NewRNG(7)

	sol := initialSolutionRandomOpening(in, rng)

	for s := 0; s < in.Stores(); s++ {
		if sol.AssignedGoods(s) != in.AmountOfGoods(s) {
			t.Fatalf("store %d assigned %d, want %d", s, sol.AssignedGoods(s), in.AmountOfGoods(s))
		}
	}
	if v := sol.ComputeViolations(); v != 0 {
		t.Fatalf("ComputeViolations() = %d, want 0", v)
	}
}

// TestConstructForcedOpening is scenario E2: a cheap-ratio warehouse should
// be preferred by the greedy ordering even though its fixed cost is lower.
func TestConstructForcedOpening(t *testing.T) {
	in := &Instance{
		warehouses:        2,
		stores:            1,
		capacity:          []int{5, 5},
		fixedCost:         []int{100, 1},
		amountOfGood:      []int{5},
		supplyCost:        [][]float64{{1.0, 100.0}},
		incompatible:      [][]bool{{false}},
		wIncompatible:     [][]bool{{false}, {false}},
		incompatiblePairs: nil,
	}
	rng := NewRNG(1)

	sol := initialSolutionGreedyOpening(in, rng)

	if sol.Supply(0, 1) != 5 {
		t.Fatalf("expected store fully assigned to warehouse 1 (cheaper ratio), Supply(0,1) = %d", sol.Supply(0, 1))
	}
	if got, want := sol.Cost(), 1.0+500.0; got != want {
		t.Fatalf("Cost() = %v, want %v", got, want)
	}
}
