package main

import "sort"

// ElitePool is a bounded ordered multiset of solutions kept sorted by cost
// ascending (ties within MyEpsilon kept in insertion order), used as the
// sampling base for pattern mining.
type ElitePool struct {
	maxSize int
	sols    []*Solution
}

func NewElitePool(maxSize int) *ElitePool {
	return &ElitePool{maxSize: maxSize}
}

func (e *ElitePool) Len() int { return len(e.sols) }

// Insert adds a copy of sol into the pool in cost order, evicting the worst
// element if the pool overflows. It reports whether the pool composition
// actually changed (new element kept, or an inserted copy improved over the
// prior worst) — the trigger condition for a subsequent MineElite pass.
func (e *ElitePool) Insert(sol *Solution) (updated bool) {
	cp := sol.Copy()
	idx := sort.Search(len(e.sols), func(i int) bool {
		return e.sols[i].Cost() >= cp.Cost()-MyEpsilon
	})
	e.sols = append(e.sols, nil)
	copy(e.sols[idx+1:], e.sols[idx:])
	e.sols[idx] = cp

	if len(e.sols) > e.maxSize {
		worst := e.sols[len(e.sols)-1]
		if worst.Cost()-MyEpsilon > cp.Cost() {
			updated = true
		}
		e.sols = e.sols[:len(e.sols)-1]
	} else {
		updated = true
	}
	return updated
}

// MineElite builds one transaction per elite solution (the set of
// warehouse*Stores+store items it supplies), mines frequent/maximal
// itemsets, and translates the surviving itemsets into Patterns using the
// minimum observed quantity supplied across the elite pool for each
// (w,s) pair.
func MineElite(in *Instance, elite *ElitePool, minSup float64, nPatterns int) []Pattern {
	if elite.Len() <= 1 {
		return nil
	}

	mSup := int(minSup * float64(elite.Len()))
	if mSup < 2 {
		mSup = 2
	}

	minSupply := make([][]int, in.Stores())
	for s := range minSupply {
		minSupply[s] = make([]int, in.Warehouses())
		for w := range minSupply[s] {
			minSupply[s][w] = -1
		}
	}

	transactions := make([]map[int]struct{}, 0, elite.Len())
	for _, sol := range elite.sols {
		tx := make(map[int]struct{})
		for w := 0; w < in.Warehouses(); w++ {
			for s := range sol.SuppliedStores(w) {
				index := w*in.Stores() + s
				tx[index] = struct{}{}
				q := sol.Supply(s, w)
				if minSupply[s][w] == -1 || q < minSupply[s][w] {
					minSupply[s][w] = q
				}
			}
		}
		transactions = append(transactions, tx)
	}

	itemsets := MineFrequentItemsets(transactions, mSup, nPatterns)

	patterns := make([]Pattern, 0, len(itemsets))
	for _, itemset := range itemsets {
		pattern := make(Pattern, 0, len(itemset))
		for _, index := range itemset {
			w := index / in.Stores()
			s := index % in.Stores()
			q := minSupply[s][w]
			if q <= 0 {
				continue
			}
			pattern = append(pattern, Supply{W: w, S: s, Q: q})
		}
		if len(pattern) > 0 {
			patterns = append(patterns, pattern)
		}
	}
	return patterns
}

// ReducedInstanceCache lazily builds and caches one reduced Instance per
// pattern index, mirroring the reference's reduced_instances vector.
type ReducedInstanceCache struct {
	base     *Instance
	patterns []Pattern
	cache    []*Instance
}

func NewReducedInstanceCache(base *Instance, patterns []Pattern) *ReducedInstanceCache {
	return &ReducedInstanceCache{base: base, patterns: patterns}
}

func (c *ReducedInstanceCache) Get(p int) *Instance {
	for len(c.cache) <= p {
		c.cache = append(c.cache, nil)
	}
	if c.cache[p] == nil {
		c.cache[p] = NewReducedInstance(c.base, c.patterns[p])
	}
	return c.cache[p]
}
