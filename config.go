package main

// Config holds the tunable parameters of one MR-ILS run. Adjust these to
// trade speed for solution quality.
type Config struct {
	// RandomOpening selects roulette-based warehouse opening in the
	// constructor instead of the greedy fixed-cost/capacity-ratio variant.
	RandomOpening bool
	// ILSMaxIter bounds the number of accept/perturb rounds per
	// IteratedLocalSearch call. A value of 1 degrades ILS to a single
	// LocalSearch pass.
	ILSMaxIter int
	// ILSAccept is the relative-cost tolerance for accepting a perturbed
	// solution as the new working basis (1.0 = only strict improvements).
	ILSAccept float64
	// EliteMaxSize bounds the elite pool. 0 disables elite tracking and the
	// reduced-instance mining loop entirely.
	EliteMaxSize int
	// NPatterns caps how many frequent patterns MineElite keeps per mining
	// pass.
	NPatterns int
	// MinSup is the minimum support fraction (of the elite pool) an
	// itemset must reach to be mined as a pattern.
	MinSup float64
	// StabiParam scales the iteration-stagnation threshold that triggers
	// the next elite mining pass.
	StabiParam float64
}

// MyEpsilon is the precision tolerance used throughout to avoid numerical
// instability when comparing costs.
const MyEpsilon = 1e-5

// NewConfig selects default parameters by instance size, following the
// reference parameter table.
func NewConfig(warehouses int) Config {
	switch {
	case warehouses <= 150:
		return Config{
			RandomOpening: true,
			ILSMaxIter:    100,
			ILSAccept:     1.01,
			EliteMaxSize:  5,
			NPatterns:     10,
			MinSup:        0.4,
			StabiParam:    0.07,
		}
	case warehouses <= 600:
		return Config{
			RandomOpening: false,
			ILSMaxIter:    200,
			ILSAccept:     1.01,
			EliteMaxSize:  10,
			NPatterns:     6,
			MinSup:        0.9,
			StabiParam:    0.03,
		}
	case warehouses <= 1400:
		return Config{
			RandomOpening: false,
			ILSMaxIter:    100,
			ILSAccept:     1.05,
			EliteMaxSize:  5,
			NPatterns:     6,
			MinSup:        0.8,
			StabiParam:    0.04,
		}
	case warehouses <= 2000:
		return Config{
			RandomOpening: false,
			ILSMaxIter:    100,
			ILSAccept:     1.05,
			EliteMaxSize:  5,
			NPatterns:     6,
			MinSup:        0.8,
			StabiParam:    0.03,
		}
	default:
		return Config{
			RandomOpening: false,
			ILSMaxIter:    200,
			ILSAccept:     1.02,
			EliteMaxSize:  5,
			NPatterns:     1,
			MinSup:        1.0,
			StabiParam:    0.04,
		}
	}
}

// Verbose controls whether detailed search progress is printed to stderr.
var Verbose bool
