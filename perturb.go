package main

import "math/rand"

// Perturbation applies one of five randomly chosen kick operators to sol,
// updating invalid/closingForbidden/openingForbidden with the side effects
// the subsequent local-search pass must respect. It returns the operator id
// (1..5) on success, or 0 if no candidate existed for the chosen operator
// (the caller retries with a fresh random choice).
func Perturbation(in *Instance, sol *Solution, rng *rand.Rand, invalid, closingForbidden, openingForbidden intSet) int {
	closingForbidden.clear()
	openingForbidden.clear()

	switch 1 + rng.Intn(5) {
	case 1:
		return perturbCloseWarehouse(in, sol, rng, invalid, openingForbidden)
	case 2:
		return perturbOpenWarehouse(in, sol, rng, invalid, closingForbidden)
	case 3:
		return perturbCloseOneOpenOne(in, sol, rng, invalid, closingForbidden, openingForbidden)
	case 4:
		return perturbCloseOneOpenTwo(in, sol, invalid, closingForbidden, openingForbidden)
	default:
		return perturbOpenOneCloseTwo(in, sol, invalid, closingForbidden, openingForbidden)
	}
}

// perturbCloseWarehouse closes a single-store warehouse, reassigning its
// one store to the cheapest compatible open destination (or, failing that,
// any compatible closed one), and forbids reopening it this round.
func perturbCloseWarehouse(in *Instance, sol *Solution, rng *rand.Rand, invalid, openingForbidden intSet) int {
	var candidates []int
	for w := 0; w < in.Warehouses(); w++ {
		if len(sol.SuppliedStores(w)) == 1 && in.FixedCost(w) != 0 {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return 0
	}

	w1 := candidates[rng.Intn(len(candidates))]
	var s int
	for st := range sol.SuppliedStores(w1) {
		s = st
		break
	}

	sol.RevokeAssignment(s, w1, sol.Supply(s, w1))

	for sol.ResidualAmount(s) > 0 {
		bestW := in.Warehouses()
		for w2 := 0; w2 < in.Warehouses(); w2++ {
			if (sol.Load(w2) != 0 || in.FixedCost(w2) == 0) && sol.ResidualCapacity(w2) > 0 &&
				sol.Incompatibilities(w2, s) == 0 &&
				(bestW == in.Warehouses() || in.SupplyCost(s, w2) < in.SupplyCost(s, bestW)) {
				bestW = w2
			}
		}

		if bestW == in.Warehouses() {
			for w2 := 0; w2 < in.Warehouses(); w2++ {
				if w2 != w1 && sol.Load(w2) == 0 && in.FixedCost(w2) != 0 && sol.ResidualCapacity(w2) > 0 &&
					(bestW == in.Warehouses() || in.SupplyCost(s, w2) < in.SupplyCost(s, bestW)) {
					bestW = w2
				}
			}
		}

		sol.Assign(s, bestW, min(sol.ResidualAmount(s), sol.ResidualCapacity(bestW)))
		invalid.add(bestW)
	}

	openingForbidden.add(w1)
	return 1
}

// perturbOpenWarehouse marks a currently-closed warehouse as forced-open
// (no assignment change; the following local-search pass populates it).
func perturbOpenWarehouse(in *Instance, sol *Solution, rng *rand.Rand, invalid, closingForbidden intSet) int {
	var candidates []int
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Load(w) == 0 && in.FixedCost(w) != 0 {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return 0
	}

	w := candidates[rng.Intn(len(candidates))]
	closingForbidden.add(w)
	invalid.add(w)
	return 2
}

// perturbCloseOneOpenOne moves all of a paid open warehouse's supply to a
// paid closed warehouse with enough residual capacity.
func perturbCloseOneOpenOne(in *Instance, sol *Solution, rng *rand.Rand, invalid, closingForbidden, openingForbidden intSet) int {
	var candidates []int
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Load(w) != 0 && in.FixedCost(w) != 0 {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	w1 := candidates[rng.Intn(len(candidates))]

	candidates = candidates[:0]
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Load(w) == 0 && in.FixedCost(w) != 0 && sol.ResidualCapacity(w) >= sol.Load(w1) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	w2 := candidates[rng.Intn(len(candidates))]

	for len(sol.SuppliedStores(w1)) > 0 {
		var s int
		for st := range sol.SuppliedStores(w1) {
			s = st
			break
		}
		q := sol.Supply(s, w1)
		sol.RevokeAssignment(s, w1, q)
		sol.Assign(s, w2, q)
	}

	openingForbidden.add(w1)
	closingForbidden.add(w2)
	invalid.add(w2)
	return 3
}

// perturbCloseOneOpenTwo finds the best (w1 open, w2<w3 closed) triple where
// replacing w1 with w2+w3 strictly lowers fixed cost and fits w1's load,
// then redistributes w1's stores to the cheaper of w2/w3 first, spilling
// residual to the other.
func perturbCloseOneOpenTwo(in *Instance, sol *Solution, invalid, closingForbidden, openingForbidden intSet) int {
	bestImprovement := 0
	var bestW1, bestW2, bestW3 int

	for w1 := 0; w1 < in.Warehouses(); w1++ {
		if sol.Load(w1) == 0 || in.FixedCost(w1) == 0 {
			continue
		}
		for w2 := 0; w2 < in.Warehouses(); w2++ {
			if sol.Load(w2) != 0 || in.FixedCost(w2) == 0 || in.FixedCost(w2) >= in.FixedCost(w1) {
				continue
			}
			for w3 := w2 + 1; w3 < in.Warehouses(); w3++ {
				improvement := in.FixedCost(w1) - (in.FixedCost(w2) + in.FixedCost(w3))
				if sol.Load(w3) == 0 && in.FixedCost(w3) != 0 &&
					in.Capacity(w2)+in.Capacity(w3) >= sol.Load(w1) && improvement > bestImprovement {
					bestImprovement = improvement
					bestW1, bestW2, bestW3 = w1, w2, w3
				}
			}
		}
	}

	if bestImprovement == 0 {
		return 0
	}

	for len(sol.SuppliedStores(bestW1)) > 0 {
		var s int
		for st := range sol.SuppliedStores(bestW1) {
			s = st
			break
		}
		sol.RevokeAssignment(s, bestW1, sol.Supply(s, bestW1))

		switch {
		case sol.ResidualCapacity(bestW2) > 0 && sol.ResidualCapacity(bestW3) > 0:
			if in.SupplyCost(s, bestW2) < in.SupplyCost(s, bestW3) {
				sol.Assign(s, bestW2, min(sol.ResidualAmount(s), sol.ResidualCapacity(bestW2)))
				if sol.ResidualAmount(s) > 0 {
					sol.Assign(s, bestW3, sol.ResidualAmount(s))
				}
			} else {
				sol.Assign(s, bestW3, min(sol.ResidualAmount(s), sol.ResidualCapacity(bestW3)))
				if sol.ResidualAmount(s) > 0 {
					sol.Assign(s, bestW2, sol.ResidualAmount(s))
				}
			}
		case sol.ResidualCapacity(bestW2) > 0:
			sol.Assign(s, bestW2, sol.ResidualAmount(s))
		default:
			sol.Assign(s, bestW3, sol.ResidualAmount(s))
		}
	}

	openingForbidden.add(bestW1)
	closingForbidden.add(bestW2)
	closingForbidden.add(bestW3)
	invalid.add(bestW2)
	invalid.add(bestW3)
	return 4
}

// perturbOpenOneCloseTwo is the inverse of perturbCloseOneOpenTwo: finds
// (w1 closed, w2<w3 open) such that merging w2+w3 into w1 strictly lowers
// fixed cost, fits capacity, and does not co-locate any incompatible pair,
// then moves all of w2's and w3's supply into w1.
func perturbOpenOneCloseTwo(in *Instance, sol *Solution, invalid, closingForbidden, openingForbidden intSet) int {
	bestImprovement := 0
	var bestW1, bestW2, bestW3 int

	for w1 := 0; w1 < in.Warehouses(); w1++ {
		if sol.Load(w1) != 0 || in.FixedCost(w1) == 0 {
			continue
		}
		for w2 := 0; w2 < in.Warehouses(); w2++ {
			if sol.Load(w2) == 0 || in.Capacity(w1) <= sol.Load(w2) || in.FixedCost(w2) == 0 || in.FixedCost(w1) >= in.FixedCost(w2) {
				continue
			}
			for w3 := w2 + 1; w3 < in.Warehouses(); w3++ {
				improvement := in.FixedCost(w2) + in.FixedCost(w3) - in.FixedCost(w1)
				if sol.Load(w3) == 0 || in.FixedCost(w3) == 0 || in.Capacity(w1) < sol.Load(w2)+sol.Load(w3) || improvement <= bestImprovement {
					continue
				}
				compatible := true
				for s1 := range sol.SuppliedStores(w2) {
					for s2 := range sol.SuppliedStores(w3) {
						if in.Incompatible(s1, s2) {
							compatible = false
							break
						}
					}
					if !compatible {
						break
					}
				}
				if compatible {
					bestImprovement = improvement
					bestW1, bestW2, bestW3 = w1, w2, w3
				}
			}
		}
	}

	if bestImprovement == 0 {
		return 0
	}

	for len(sol.SuppliedStores(bestW2)) > 0 {
		var s int
		for st := range sol.SuppliedStores(bestW2) {
			s = st
			break
		}
		sol.RevokeAssignment(s, bestW2, sol.Supply(s, bestW2))
		sol.Assign(s, bestW1, sol.ResidualAmount(s))
	}
	for len(sol.SuppliedStores(bestW3)) > 0 {
		var s int
		for st := range sol.SuppliedStores(bestW3) {
			s = st
			break
		}
		sol.RevokeAssignment(s, bestW3, sol.Supply(s, bestW3))
		sol.Assign(s, bestW1, sol.ResidualAmount(s))
	}

	closingForbidden.add(bestW1)
	openingForbidden.add(bestW2)
	openingForbidden.add(bestW3)
	invalid.add(bestW1)
	return 5
}
