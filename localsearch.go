package main

import (
	"container/heap"
	"context"
	"math/rand"
)

// intSet is a small explicit set of warehouse indices, used for
// invalid_warehouses / closing_forbidden / opening_forbidden bookkeeping.
type intSet map[int]struct{}

func newIntSet() intSet { return make(intSet) }

func (s intSet) has(w int) bool { _, ok := s[w]; return ok }
func (s intSet) add(w int)      { s[w] = struct{}{} }
func (s intSet) clear() {
	for w := range s {
		delete(s, w)
	}
}

func allWarehouses(n int) intSet {
	s := newIntSet()
	for w := 0; w < n; w++ {
		s.add(w)
	}
	return s
}

// LocalSearch descends sol to a local optimum of N1 (relocate) and N2
// (swap) under no forbid-sets, via the priority-queue multi-improvement
// strategy: every pass (re)computes all improving moves touching an
// invalidated warehouse, then drains them in decreasing-improvement order,
// skipping any move whose endpoints were touched earlier in the same drain
// (the staleness guard) instead of paying for full re-evaluation.
func LocalSearch(ctx context.Context, in *Instance, sol *Solution) {
	runMultiImprovement(ctx, in, sol, allWarehouses(in.Warehouses()), nil, nil)
}

// runMultiImprovement is the shared engine behind LocalSearch and the inner
// loop of IteratedLocalSearch. closingForbidden/openingForbidden may be nil
// (meaning "nothing forbidden") for the plain LocalSearch case.
func runMultiImprovement(ctx context.Context, in *Instance, sol *Solution, invalid intSet, closingForbidden, openingForbidden intSet) {
	mh := &moveHeap{}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		generateMoves(in, sol, invalid, invalid, closingForbidden, openingForbidden, mh)
		generateMovesFixedInvalid(in, sol, invalid, closingForbidden, openingForbidden, mh)

		if mh.Len() == 0 {
			return
		}

		invalid.clear()
		heap.Init(mh)

		for mh.Len() > 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}

			m := heap.Pop(mh).(Move)
			if invalid.has(m.W1) || invalid.has(m.W2) {
				continue
			}
			applyMove(sol, in, m)
			invalid.add(m.W1)
			invalid.add(m.W2)
		}
	}
}

// generateMoves enumerates moves where w1 ranges over the invalidated set
// (first sweep of the reference's two-pass scheme: w1 in invalid, w2 over
// all warehouses).
func generateMoves(in *Instance, sol *Solution, w1Set, _ intSet, closingForbidden, openingForbidden intSet, mh *moveHeap) {
	for w1 := range w1Set {
		if sol.Load(w1) == 0 {
			continue
		}
		for s1 := range sol.SuppliedStores(w1) {
			for w2 := 0; w2 < in.Warehouses(); w2++ {
				if w1 == w2 {
					continue
				}
				if openingForbidden != nil && openingForbidden.has(w2) {
					continue
				}
				emitMovesFor(in, sol, s1, w1, w2, closingForbidden, mh)
			}
		}
	}
}

// generateMovesFixedInvalid enumerates the reference's second sweep: w1
// ranges over ALL warehouses, w2 ranges over the invalidated set.
func generateMovesFixedInvalid(in *Instance, sol *Solution, invalid intSet, closingForbidden, openingForbidden intSet, mh *moveHeap) {
	for w1 := 0; w1 < in.Warehouses(); w1++ {
		if sol.Load(w1) == 0 {
			continue
		}
		for s1 := range sol.SuppliedStores(w1) {
			for w2 := range invalid {
				if w1 == w2 {
					continue
				}
				if openingForbidden != nil && openingForbidden.has(w2) {
					continue
				}
				emitMovesFor(in, sol, s1, w1, w2, closingForbidden, mh)
			}
		}
	}
}

// emitMovesFor pushes every improving N1/N2 move generated from (s1 @ w1)
// against destination w2 onto mh.
func emitMovesFor(in *Instance, sol *Solution, s1, w1, w2 int, closingForbidden intSet, mh *moveHeap) {
	// N1: relocate s1's supply from w1 to w2.
	if sol.Incompatibilities(w2, s1) == 0 && sol.ResidualCapacity(w2) > 0 {
		q := min(sol.Supply(s1, w1), sol.ResidualCapacity(w2))
		improvement := (in.SupplyCost(s1, w1) - in.SupplyCost(s1, w2)) * float64(q)
		if sol.Load(w2) == 0 {
			improvement -= float64(in.FixedCost(w2))
		}
		if q == sol.Load(w1) && (closingForbidden == nil || !closingForbidden.has(w1)) {
			improvement += float64(in.FixedCost(w1))
		}
		if improvement > MyEpsilon {
			heap.Push(mh, Move{Kind: MoveRelocate, S1: s1, S2: in.Stores(), W1: w1, W2: w2, Improvement: improvement})
		}
	}

	// N2: swap s1 @ w1 with some s2 @ w2.
	if sol.Incompatibilities(w2, s1) <= 1 {
		for s2 := range sol.SuppliedStores(w2) {
			if s1 == s2 {
				continue
			}
			admissible := (sol.Incompatibilities(w1, s2) == 0 && sol.Incompatibilities(w2, s1) == 0) ||
				(sol.Incompatibilities(w1, s2) == 1 && in.Incompatible(s1, s2))
			if !admissible {
				continue
			}
			if sol.Supply(s1, w1) > sol.ResidualCapacity(w2)+sol.Supply(s2, w2) {
				continue
			}
			if sol.Supply(s2, w2) > sol.ResidualCapacity(w1)+sol.Supply(s1, w1) {
				continue
			}
			improvement := (in.SupplyCost(s1, w1)-in.SupplyCost(s1, w2))*float64(sol.Supply(s1, w1)) +
				(in.SupplyCost(s2, w2)-in.SupplyCost(s2, w1))*float64(sol.Supply(s2, w2))
			if improvement > MyEpsilon {
				heap.Push(mh, Move{Kind: MoveSwap, S1: s1, S2: s2, W1: w1, W2: w2, Improvement: improvement})
			}
		}
	}
}

func applyMove(sol *Solution, in *Instance, m Move) {
	if m.Kind == MoveRelocate {
		q := min(sol.Supply(m.S1, m.W1), sol.ResidualCapacity(m.W2))
		sol.RevokeAssignment(m.S1, m.W1, q)
		sol.Assign(m.S1, m.W2, q)
		return
	}

	q1 := sol.Supply(m.S1, m.W1)
	sol.RevokeAssignment(m.S1, m.W1, q1)
	sol.Assign(m.S1, m.W2, q1)

	q2 := sol.Supply(m.S2, m.W2)
	sol.RevokeAssignment(m.S2, m.W2, q2)
	sol.Assign(m.S2, m.W1, q2)
}

// IteratedLocalSearch repeatedly descends, perturbs, and accepts-or-reverts
// for up to cfg.ILSMaxIter rounds, returning the best solution found. If
// cfg.ILSMaxIter == 1 it degrades to a single LocalSearch call.
func IteratedLocalSearch(ctx context.Context, in *Instance, sol *Solution, cfg Config, rng *rand.Rand) *Solution {
	if cfg.ILSMaxIter == 1 {
		LocalSearch(ctx, in, sol)
		return sol
	}

	bestSol := sol.Copy()
	workingSol := sol.Copy()

	invalid := allWarehouses(in.Warehouses())
	closingForbidden := newIntSet()
	openingForbidden := newIntSet()

	for i := 0; i < cfg.ILSMaxIter; i++ {
		select {
		case <-ctx.Done():
			return bestSol
		default:
		}

		if i > 0 {
			if sol.Cost()+MyEpsilon < cfg.ILSAccept*bestSol.Cost() {
				workingSol = sol.Copy()
			} else {
				sol = workingSol.Copy()
			}

			perturbation := 0
			for trials := 0; perturbation == 0 && trials < 5; trials++ {
				perturbation = Perturbation(in, sol, rng, invalid, closingForbidden, openingForbidden)
			}
			if perturbation == 0 {
				break
			}
		}

		runMultiImprovement(ctx, in, sol, invalid, closingForbidden, openingForbidden)

		if sol.Cost() < bestSol.Cost()-MyEpsilon {
			bestSol = sol.Copy()
		}
	}

	return bestSol
}
