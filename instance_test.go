package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDzn = `Warehouses = 2;
Stores = 2;
Capacity = [10, 10];
FixedCosts = [5, 7];
Goods = [4, 3];
SupplyCost = [| 1.0, 2.0
             | 3.0, 1.0 |];
IncompatiblePairs = 1;
Pairs = [ (1,2) ];
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestParseDznInstance(t *testing.T) {
	path := writeTempFile(t, "instance.dzn", sampleDzn)

	in, err := ParseInstance(path)
	if err != nil {
		t.Fatalf("ParseInstance: %v", err)
	}

	if in.Warehouses() != 2 || in.Stores() != 2 {
		t.Fatalf("dims = (%d,%d), want (2,2)", in.Warehouses(), in.Stores())
	}
	if in.Capacity(0) != 10 || in.Capacity(1) != 10 {
		t.Fatalf("Capacity = (%d,%d), want (10,10)", in.Capacity(0), in.Capacity(1))
	}
	if in.FixedCost(0) != 5 || in.FixedCost(1) != 7 {
		t.Fatalf("FixedCost = (%d,%d), want (5,7)", in.FixedCost(0), in.FixedCost(1))
	}
	if in.AmountOfGoods(0) != 4 || in.AmountOfGoods(1) != 3 {
		t.Fatalf("AmountOfGoods = (%d,%d), want (4,3)", in.AmountOfGoods(0), in.AmountOfGoods(1))
	}
	if in.SupplyCost(0, 0) != 1.0 || in.SupplyCost(1, 1) != 1.0 {
		t.Fatalf("unexpected supply cost matrix")
	}
	if !in.Incompatible(0, 1) || !in.Incompatible(1, 0) {
		t.Fatalf("expected stores 0,1 to be incompatible (1-based pair (1,2))")
	}
}

func TestParseJSONInstance(t *testing.T) {
	doc := `{
		"warehouses": 2, "stores": 2,
		"capacity": [10, 10], "fixedCosts": [5, 7], "goods": [4, 3],
		"supplyCost": [[1.0, 2.0], [3.0, 1.0]],
		"incompatiblePairs": [[1, 2]]
	}`
	path := writeTempFile(t, "instance.json", doc)

	in, err := ParseInstance(path)
	if err != nil {
		t.Fatalf("ParseInstance: %v", err)
	}
	if in.Warehouses() != 2 || in.Stores() != 2 {
		t.Fatalf("dims = (%d,%d), want (2,2)", in.Warehouses(), in.Stores())
	}
	if !in.Incompatible(0, 1) {
		t.Fatalf("expected stores 0,1 to be incompatible")
	}
}

func TestParseInstanceMissingFile(t *testing.T) {
	_, err := ParseInstance("/nonexistent/path/instance.dzn")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestReducedInstanceLift is scenario E6: a pattern fixing 3 units of
// store 0 at warehouse 0 on a trivial 1x1 instance should pre-pay the
// fixed cost and 3 units of supply cost, and shrink capacity/demand
// accordingly.
func TestReducedInstanceLift(t *testing.T) {
	base := &Instance{
		warehouses:   1,
		stores:       1,
		capacity:     []int{10},
		fixedCost:    []int{5},
		amountOfGood: []int{7},
		supplyCost:   [][]float64{{2.0}},
		incompatible: [][]bool{{false}},
		wIncompatible: [][]bool{{false}},
	}
	pattern := Pattern{{W: 0, S: 0, Q: 3}}

	red := NewReducedInstance(base, pattern)

	if red.Capacity(0) != 7 {
		t.Fatalf("reduced Capacity(0) = %d, want 7", red.Capacity(0))
	}
	if red.AmountOfGoods(0) != 4 {
		t.Fatalf("reduced AmountOfGoods(0) = %d, want 4", red.AmountOfGoods(0))
	}
	if red.FixedCost(0) != 0 {
		t.Fatalf("reduced FixedCost(0) = %d, want 0", red.FixedCost(0))
	}
	if red.ReductionOpeningCost() != 5 {
		t.Fatalf("ReductionOpeningCost() = %d, want 5", red.ReductionOpeningCost())
	}
	if red.ReductionSupplyCost() != 6.0 {
		t.Fatalf("ReductionSupplyCost() = %v, want 6.0", red.ReductionSupplyCost())
	}

	// A reduced solution fully assigning the remaining 4 units...
	redSol := NewSolution(red)
	redSol.Assign(0, 0, 4)
	if got, want := redSol.Cost(), 5.0+6.0+0.0+8.0; got != want {
		t.Fatalf("reduced solution Cost() = %v, want %v", got, want)
	}

	// ...lifts back to the original instance with equal cost.
	lifted := NewSolution(base)
	for w := 0; w < red.Warehouses(); w++ {
		for s := range redSol.SuppliedStores(w) {
			lifted.Assign(s, w, redSol.Supply(s, w))
		}
	}
	for _, sup := range pattern {
		lifted.Assign(sup.S, sup.W, sup.Q)
	}

	if lifted.Supply(0, 0) != 7 {
		t.Fatalf("lifted Supply(0,0) = %d, want 7", lifted.Supply(0, 0))
	}
	if lifted.Cost() != redSol.Cost() {
		t.Fatalf("lifted Cost() = %v, want %v (equal to reduced solution cost)", lifted.Cost(), redSol.Cost())
	}
}
