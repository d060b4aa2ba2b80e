package main

// Solution is an incrementally maintained assignment of goods to
// warehouses for one Instance. All derived quantities (assigned goods per
// store, load per warehouse, supplied-store sets, incompatibility counts,
// and both cost components) are cached and kept consistent by Assign and
// RevokeAssignment alone — never recomputed from scratch.
type Solution struct {
	in *Instance

	supplyCost float64
	openCost   int

	supply          [][]int // [store][warehouse]
	assignedGoods   []int
	load            []int
	incompatCounts  [][]int // [warehouse][store]
	suppliedStores  []map[int]struct{}
}

// NewSolution returns an empty solution over in: nothing assigned, nothing
// open.
func NewSolution(in *Instance) *Solution {
	sol := &Solution{
		in:             in,
		supply:         make([][]int, in.Stores()),
		assignedGoods:  make([]int, in.Stores()),
		load:           make([]int, in.Warehouses()),
		incompatCounts: make([][]int, in.Warehouses()),
		suppliedStores: make([]map[int]struct{}, in.Warehouses()),
	}
	for s := range sol.supply {
		sol.supply[s] = make([]int, in.Warehouses())
	}
	for w := range sol.incompatCounts {
		sol.incompatCounts[w] = make([]int, in.Stores())
		sol.suppliedStores[w] = make(map[int]struct{})
	}
	return sol
}

// Copy returns an independent deep copy of sol.
func (sol *Solution) Copy() *Solution {
	cp := &Solution{
		in:             sol.in,
		supplyCost:     sol.supplyCost,
		openCost:       sol.openCost,
		supply:         make([][]int, len(sol.supply)),
		assignedGoods:  append([]int(nil), sol.assignedGoods...),
		load:           append([]int(nil), sol.load...),
		incompatCounts: make([][]int, len(sol.incompatCounts)),
		suppliedStores: make([]map[int]struct{}, len(sol.suppliedStores)),
	}
	for s, row := range sol.supply {
		cp.supply[s] = append([]int(nil), row...)
	}
	for w, row := range sol.incompatCounts {
		cp.incompatCounts[w] = append([]int(nil), row...)
	}
	for w, set := range sol.suppliedStores {
		ns := make(map[int]struct{}, len(set))
		for s := range set {
			ns[s] = struct{}{}
		}
		cp.suppliedStores[w] = ns
	}
	return cp
}

func (sol *Solution) Supply(s, w int) int { return sol.supply[s][w] }
func (sol *Solution) Load(w int) int      { return sol.load[w] }
func (sol *Solution) ResidualCapacity(w int) int {
	return sol.in.Capacity(w) - sol.load[w]
}
func (sol *Solution) AssignedGoods(s int) int { return sol.assignedGoods[s] }
func (sol *Solution) ResidualAmount(s int) int {
	return sol.in.AmountOfGoods(s) - sol.assignedGoods[s]
}
func (sol *Solution) SuppliedStores(w int) map[int]struct{} { return sol.suppliedStores[w] }

// Incompatibilities returns the number of stores already supplied by w that
// conflict with s. If the reduction permanently forbids w for s, a +2
// sentinel is added so any `<= 1` relaxed-admissibility test never admits a
// reduction-forbidden warehouse.
func (sol *Solution) Incompatibilities(w, s int) int {
	if sol.in.WarehouseIncompatible(w, s) {
		return sol.incompatCounts[w][s] + 2
	}
	return sol.incompatCounts[w][s]
}

// Assign supplies q goods of store s from warehouse w, updating all cached
// derived quantities.
func (sol *Solution) Assign(s, w, q int) {
	if sol.supply[s][w] == 0 {
		for s2 := 0; s2 < sol.in.Stores(); s2++ {
			if sol.in.Incompatible(s, s2) {
				sol.incompatCounts[w][s2]++
			}
		}
		sol.suppliedStores[w][s] = struct{}{}
	}

	sol.supply[s][w] += q
	sol.assignedGoods[s] += q

	sol.supplyCost += sol.in.SupplyCost(s, w) * float64(q)

	if sol.load[w] == 0 {
		sol.openCost += sol.in.FixedCost(w)
	}
	sol.load[w] += q
}

// RevokeAssignment undoes q units of a prior Assign(s, w, ...), exactly
// mirroring Assign's bookkeeping in reverse.
func (sol *Solution) RevokeAssignment(s, w, q int) {
	sol.supply[s][w] -= q
	sol.assignedGoods[s] -= q
	sol.load[w] -= q

	sol.supplyCost -= sol.in.SupplyCost(s, w) * float64(q)
	if sol.load[w] == 0 {
		sol.openCost -= sol.in.FixedCost(w)
	}

	if sol.supply[s][w] == 0 {
		for s2 := 0; s2 < sol.in.Stores(); s2++ {
			if sol.in.Incompatible(s, s2) {
				sol.incompatCounts[w][s2]--
			}
		}
		delete(sol.suppliedStores[w], s)
	}
}

// Cost is the total solution cost: supply cost plus opening cost, including
// any reduction offsets carried by the underlying (possibly reduced)
// instance.
func (sol *Solution) Cost() float64 {
	return sol.SupplyCostTotal() + float64(sol.OpeningCost())
}

func (sol *Solution) SupplyCostTotal() float64 {
	return sol.supplyCost + sol.in.ReductionSupplyCost()
}

func (sol *Solution) OpeningCost() int {
	return sol.openCost + sol.in.ReductionOpeningCost()
}

// ComputeViolations counts, for diagnostic purposes only, under-supplied
// stores, over-capacity warehouses, and same-warehouse incompatible-pair
// occurrences. A feasible solution has zero violations.
func (sol *Solution) ComputeViolations() int {
	violations := 0
	for s := 0; s < sol.in.Stores(); s++ {
		if sol.assignedGoods[s] < sol.in.AmountOfGoods(s) {
			violations++
		}
	}
	for w := 0; w < sol.in.Warehouses(); w++ {
		if sol.load[w] > sol.in.Capacity(w) {
			violations++
		}
	}
	for _, pair := range sol.in.IncompatiblePairs() {
		s1, s2 := pair[0], pair[1]
		for w := 0; w < sol.in.Warehouses(); w++ {
			if sol.supply[s1][w] > 0 && sol.supply[s2][w] > 0 {
				violations++
			}
		}
	}
	return violations
}
