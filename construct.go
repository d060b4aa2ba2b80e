package main

import (
	"math/rand"
	"sort"
)

// InitialSolution builds a feasible starting solution over in, using either
// the greedy fixed-cost/capacity-ratio warehouse ordering or roulette-wheel
// opening, per cfg.RandomOpening.
func InitialSolution(in *Instance, cfg Config, rng *rand.Rand) *Solution {
	if cfg.RandomOpening {
		return initialSolutionRandomOpening(in, rng)
	}
	return initialSolutionGreedyOpening(in, rng)
}

// initialSolutionGreedyOpening opens the smallest prefix of
// fixed_cost/capacity-ranked warehouses whose combined capacity meets total
// demand, seeds each with one random compatible store, then greedily
// completes every remaining store's demand, promoting more warehouses into
// the open set on exhaustion. Restarts from scratch, unboundedly, if no
// compatible destination remains anywhere (callers must guarantee
// feasibility of the instance).
func initialSolutionGreedyOpening(in *Instance, rng *rand.Rand) *Solution {
	for {
		sol := NewSolution(in)
		feasible := true

		warehouses := make([]int, in.Warehouses())
		for w := range warehouses {
			warehouses[w] = w
		}
		sort.Slice(warehouses, func(i, j int) bool {
			wi, wj := warehouses[i], warehouses[j]
			return float64(in.FixedCost(wi))/float64(in.Capacity(wi)) <
				float64(in.FixedCost(wj))/float64(in.Capacity(wj))
		})

		totalDemand := 0
		for s := 0; s < in.Stores(); s++ {
			totalDemand += in.AmountOfGoods(s)
		}

		lastOpen := 0
		totalCapacity := in.Capacity(warehouses[0])
		for w := 1; totalCapacity < totalDemand; w++ {
			lastOpen = w
			totalCapacity += in.Capacity(warehouses[w])
		}

		for w := 0; w <= lastOpen; w++ {
			wh := warehouses[w]
			if sol.ResidualCapacity(wh) == 0 {
				continue
			}
			s := rng.Intn(in.Stores())
			trials := 0
			for sol.ResidualAmount(s) == 0 || sol.Incompatibilities(wh, s) != 0 {
				trials++
				if trials > in.Stores() {
					break
				}
				s = rng.Intn(in.Stores())
			}
			if trials <= in.Stores() {
				sol.Assign(s, wh, min(sol.ResidualAmount(s), in.Capacity(wh)))
			}
		}

		for s := 0; feasible && s < in.Stores(); s++ {
			for sol.ResidualAmount(s) > 0 {
				bestW := in.Warehouses()
				for w := 0; w <= lastOpen; w++ {
					wh := warehouses[w]
					if sol.ResidualCapacity(wh) > 0 && sol.Incompatibilities(wh, s) == 0 &&
						(bestW == in.Warehouses() || in.SupplyCost(s, wh) < in.SupplyCost(s, bestW)) {
						bestW = wh
					}
				}

				if bestW == in.Warehouses() {
					next := lastOpen + 1
					for next < in.Warehouses() &&
						(sol.ResidualCapacity(warehouses[next]) == 0 || sol.Incompatibilities(warehouses[next], s) != 0) {
						next++
					}
					if next < in.Warehouses() {
						nextW := warehouses[next]
						lastOpen++
						for i := next; i > lastOpen; i-- {
							warehouses[i] = warehouses[i-1]
						}
						warehouses[lastOpen] = nextW
						bestW = nextW
					} else {
						feasible = false
						break
					}
				}

				sol.Assign(s, bestW, min(sol.ResidualAmount(s), sol.ResidualCapacity(bestW)))
			}
		}

		if feasible {
			return sol
		}
	}
}

// initialSolutionRandomOpening mirrors the greedy variant but chooses which
// warehouses to open (both in the seed phase and on promotion) by
// roulette-wheel selection weighted by capacity/fixed_cost.
func initialSolutionRandomOpening(in *Instance, rng *rand.Rand) *Solution {
	for {
		sol := NewSolution(in)
		feasible := true

		warehouses := make([]int, in.Warehouses())
		relativeCostSum := 0.0
		for w := range warehouses {
			warehouses[w] = w
			relativeCostSum += relativeCost(in, w)
		}

		totalDemand := 0
		for s := 0; s < in.Stores(); s++ {
			totalDemand += in.AmountOfGoods(s)
		}

		lastOpen := -1
		totalCapacity := 0
		for totalCapacity < totalDemand {
			r := rng.Float64()
			cumProb := 0.0
			for w := lastOpen + 1; w < in.Warehouses(); w++ {
				selProb := relativeCost(in, warehouses[w]) / relativeCostSum
				if r <= cumProb+selProb {
					lastOpen++
					warehouses[lastOpen], warehouses[w] = warehouses[w], warehouses[lastOpen]
					totalCapacity += in.Capacity(warehouses[lastOpen])
					relativeCostSum -= relativeCost(in, warehouses[lastOpen])
					break
				}
				cumProb += selProb
			}
		}

		for w := 0; w <= lastOpen; w++ {
			wh := warehouses[w]
			if sol.ResidualCapacity(wh) == 0 {
				continue
			}
			s := rng.Intn(in.Stores())
			trials := 0
			for sol.ResidualAmount(s) == 0 || sol.Incompatibilities(wh, s) != 0 {
				trials++
				if trials > in.Stores() {
					break
				}
				s = rng.Intn(in.Stores())
			}
			if trials <= in.Stores() {
				sol.Assign(s, wh, min(sol.ResidualAmount(s), in.Capacity(wh)))
			}
		}

		for s := 0; feasible && s < in.Stores(); s++ {
			for sol.ResidualAmount(s) > 0 {
				bestW := in.Warehouses()
				for w := 0; w <= lastOpen; w++ {
					wh := warehouses[w]
					if sol.ResidualCapacity(wh) > 0 && sol.Incompatibilities(wh, s) == 0 &&
						(bestW == in.Warehouses() || in.SupplyCost(s, wh) < in.SupplyCost(s, bestW)) {
						bestW = wh
					}
				}

				if bestW == in.Warehouses() {
					if lastOpen < in.Warehouses()-1 {
						for bestW == in.Warehouses() {
							r := rng.Float64()
							cumProb := 0.0
							for w := lastOpen + 1; w < in.Warehouses(); w++ {
								selProb := relativeCost(in, warehouses[w]) / relativeCostSum
								if r <= cumProb+selProb {
									if sol.ResidualCapacity(warehouses[w]) > 0 && sol.Incompatibilities(warehouses[w], s) == 0 {
										lastOpen++
										warehouses[lastOpen], warehouses[w] = warehouses[w], warehouses[lastOpen]
										totalCapacity += in.Capacity(warehouses[lastOpen])
										relativeCostSum -= relativeCost(in, warehouses[lastOpen])
										bestW = warehouses[lastOpen]
									}
									break
								}
								cumProb += selProb
							}
						}
					} else {
						feasible = false
						break
					}
				}

				sol.Assign(s, bestW, min(sol.ResidualAmount(s), sol.ResidualCapacity(bestW)))
			}
		}

		if feasible {
			return sol
		}
	}
}

func relativeCost(in *Instance, w int) float64 {
	if in.FixedCost(w) == 0 {
		return float64(in.Capacity(w))
	}
	return float64(in.Capacity(w)) / float64(in.FixedCost(w))
}
