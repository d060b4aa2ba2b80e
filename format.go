package main

import (
	"fmt"
	"io"
	"strings"
)

// WriteSolution prints the solution line "{(s,w,q), ...}" followed by a
// "TimeToBest: <seconds>" line, using 1-based indices.
func WriteSolution(w io.Writer, in *Instance, sol *Solution, timeBestSeconds float64) {
	fmt.Fprint(w, "{")
	first := true
	for s := 0; s < in.Stores(); s++ {
		for wh := 0; wh < in.Warehouses(); wh++ {
			if sol.Supply(s, wh) > 0 {
				if !first {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprintf(w, "(%d,%d,%d)", s+1, wh+1, sol.Supply(s, wh))
				first = false
			}
		}
	}
	fmt.Fprint(w, "}\n")
	fmt.Fprintf(w, "TimeToBest: %.1f\n", timeBestSeconds)
}

// FormatCosts renders a human-readable cost breakdown, mirroring the
// reference's PrintCosts diagnostic.
func FormatCosts(in *Instance, sol *Solution) string {
	var b strings.Builder
	cost := 0.0
	for s := 0; s < in.Stores(); s++ {
		for w := 0; w < in.Warehouses(); w++ {
			if sol.Supply(s, w) > 0 {
				q := sol.Supply(s, w)
				cost += in.SupplyCost(s, w) * float64(q)
				fmt.Fprintf(&b, "Moving %d goods from warehouse %d to store %d, cost %dx%.2f = %.2f (%.2f)\n",
					q, w+1, s+1, q, in.SupplyCost(s, w), float64(q)*in.SupplyCost(s, w), cost)
			}
		}
	}
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Load(w) > 0 {
			cost += float64(in.FixedCost(w))
			fmt.Fprintf(&b, "Opening warehouse %d, cost %d (%.2f)\n", w+1, in.FixedCost(w), cost)
		}
	}
	return b.String()
}

// FormatViolations renders a human-readable violation report, mirroring the
// reference's PrintViolations diagnostic.
func FormatViolations(in *Instance, sol *Solution) string {
	var b strings.Builder
	for s := 0; s < in.Stores(); s++ {
		if sol.AssignedGoods(s) < in.AmountOfGoods(s) {
			fmt.Fprintf(&b, "Goods of store %d are not moved completely (amount = %d, moved = %d)\n",
				s+1, in.AmountOfGoods(s), sol.AssignedGoods(s))
		}
	}
	for w := 0; w < in.Warehouses(); w++ {
		if sol.Load(w) > in.Capacity(w) {
			fmt.Fprintf(&b, "Goods of warehouse %d exceed its capacity (capacity = %d, moved = %d)\n",
				w+1, in.Capacity(w), sol.Load(w))
		}
	}
	for _, pair := range in.IncompatiblePairs() {
		s1, s2 := pair[0], pair[1]
		for w := 0; w < in.Warehouses(); w++ {
			if sol.Supply(s1, w) > 0 && sol.Supply(s2, w) > 0 {
				fmt.Fprintf(&b, "Warehouse %d supplies incompatible stores %d and %d\n", w+1, s1+1, s2+1)
			}
		}
	}
	return b.String()
}

// FormatSummary renders the one-line-per-metric console report main.go
// prints after a run.
func FormatSummary(sol *Solution, timeBest float64) string {
	return fmt.Sprintf(
		"Number of violations: %d\nCost: %.2f = %.2f (supply cost) + %d (opening cost)\nTime to reach best solution: %.1f s\n",
		sol.ComputeViolations(), sol.Cost(), sol.SupplyCostTotal(), sol.OpeningCost(), timeBest)
}
