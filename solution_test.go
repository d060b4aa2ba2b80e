package main

import "testing"

func smallInstance() *Instance {
	in := &Instance{
		warehouses:   2,
		stores:       2,
		capacity:     []int{10, 10},
		fixedCost:    []int{5, 7},
		amountOfGood: []int{4, 3},
		supplyCost: [][]float64{
			{1.0, 2.0},
			{3.0, 1.0},
		},
		incompatible: [][]bool{
			{false, true},
			{true, false},
		},
		wIncompatible: [][]bool{
			{false, false},
			{false, false},
		},
		incompatiblePairs: [][2]int{{0, 1}},
	}
	return in
}

func TestAssignUpdatesCachedFields(t *testing.T) {
	in := smallInstance()
	sol := NewSolution(in)

	sol.Assign(0, 0, 4)

	if got := sol.AssignedGoods(0); got != 4 {
		t.Fatalf("AssignedGoods(0) = %d, want 4", got)
	}
	if got := sol.Load(0); got != 4 {
		t.Fatalf("Load(0) = %d, want 4", got)
	}
	if _, ok := sol.SuppliedStores(0)[0]; !ok {
		t.Fatalf("supplied_stores[0] should contain store 0")
	}
	if got := sol.OpeningCost(); got != 5 {
		t.Fatalf("OpeningCost() = %d, want 5", got)
	}
	if got := sol.SupplyCostTotal(); got != 4.0 {
		t.Fatalf("SupplyCostTotal() = %v, want 4.0", got)
	}
	if got := sol.Cost(); got != 9.0 {
		t.Fatalf("Cost() = %v, want 9.0", got)
	}
}

func TestAssignRevokeIsIdentity(t *testing.T) {
	in := smallInstance()
	sol := NewSolution(in)

	sol.Assign(0, 0, 4)
	sol.Assign(1, 1, 3)
	before := sol.Copy()

	sol.Assign(0, 1, 2)
	sol.RevokeAssignment(0, 1, 2)

	if sol.Cost() != before.Cost() {
		t.Fatalf("Cost() after Assign+Revoke = %v, want %v", sol.Cost(), before.Cost())
	}
	if sol.ComputeViolations() != before.ComputeViolations() {
		t.Fatalf("Violations changed after Assign+Revoke round-trip")
	}
	for s := 0; s < in.Stores(); s++ {
		for w := 0; w < in.Warehouses(); w++ {
			if sol.Supply(s, w) != before.Supply(s, w) {
				t.Fatalf("Supply(%d,%d) = %d, want %d", s, w, sol.Supply(s, w), before.Supply(s, w))
			}
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	in := smallInstance()
	sol := NewSolution(in)
	sol.Assign(0, 0, 4)

	cp := sol.Copy()
	cp.Assign(1, 1, 3)

	if sol.Load(1) != 0 {
		t.Fatalf("original solution mutated via copy: Load(1) = %d, want 0", sol.Load(1))
	}
	if cp.Cost() == sol.Cost() {
		t.Fatalf("copy should diverge in cost after further assignment")
	}
}

func TestIncompatibilitiesCounting(t *testing.T) {
	in := smallInstance()
	sol := NewSolution(in)

	sol.Assign(0, 0, 4)
	if got := sol.Incompatibilities(0, 1); got != 1 {
		t.Fatalf("Incompatibilities(0,1) = %d, want 1 after assigning incompatible store 0", got)
	}

	sol.RevokeAssignment(0, 0, 4)
	if got := sol.Incompatibilities(0, 1); got != 0 {
		t.Fatalf("Incompatibilities(0,1) = %d, want 0 after revoking", got)
	}
}

func TestIncompatibilitiesSentinelFromReduction(t *testing.T) {
	in := smallInstance()
	in.wIncompatible[0][1] = true
	sol := NewSolution(in)

	if got := sol.Incompatibilities(0, 1); got != 2 {
		t.Fatalf("Incompatibilities(0,1) = %d, want 2 (reduction sentinel)", got)
	}
}

func TestComputeViolationsDetectsUnderSupply(t *testing.T) {
	in := smallInstance()
	sol := NewSolution(in)
	sol.Assign(0, 0, 2) // store 0 demands 4, only 2 supplied

	if v := sol.ComputeViolations(); v == 0 {
		t.Fatalf("expected under-supply violation, got 0")
	}
}

func TestComputeViolationsDetectsIncompatibility(t *testing.T) {
	in := smallInstance()
	sol := NewSolution(in)
	sol.Assign(0, 0, 4)
	sol.Assign(1, 0, 3) // stores 0 and 1 are incompatible, both at warehouse 0

	if v := sol.ComputeViolations(); v == 0 {
		t.Fatalf("expected incompatibility violation, got 0")
	}
}
