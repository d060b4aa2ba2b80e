package main

import "sort"

// MineFrequentItemsets returns up to maxK maximal itemsets that occur in at
// least minSupport of the given transactions, largest itemsets first. No
// third-party frequent-itemset-mining library exists anywhere in the
// grounding corpus for this problem, so this is an original depth-first
// maximal-itemset search: it walks candidate extensions in decreasing
// single-item support order, prunes as soon as support drops below
// minSupport, and only keeps a maximal itemset if no already-kept itemset
// both contains it and has equal-or-greater support (the closed/maximal
// property FP-max targets) — sized for the small transaction counts
// (elite-pool size, never more than a couple dozen) this solver ever mines.
func MineFrequentItemsets(transactions []map[int]struct{}, minSupport, maxK int) [][]int {
	if len(transactions) == 0 || minSupport < 1 {
		return nil
	}

	itemCount := make(map[int]int)
	for _, tx := range transactions {
		for item := range tx {
			itemCount[item]++
		}
	}

	items := make([]int, 0, len(itemCount))
	for item, count := range itemCount {
		if count >= minSupport {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if itemCount[items[i]] != itemCount[items[j]] {
			return itemCount[items[i]] > itemCount[items[j]]
		}
		return items[i] < items[j]
	})

	var found [][]int
	var foundSupport []int

	var extend func(prefix []int, candidates []int, support int)
	extend = func(prefix []int, candidates []int, support int) {
		if len(prefix) > 0 {
			isMaximal := true
			for i, kept := range found {
				if foundSupport[i] >= support && containsAll(kept, prefix) {
					isMaximal = false
					break
				}
			}
			if isMaximal {
				copyItems := append([]int(nil), prefix...)
				found = append(found, copyItems)
				foundSupport = append(foundSupport, support)
			}
		}

		for i, item := range candidates {
			if len(found) >= maxK*4 {
				// Bound the search: this problem only ever needs maxK
				// results, and elite pools are tiny, but a pathological
				// all-items-equally-frequent case could otherwise blow up
				// combinatorially.
				return
			}
			newPrefix := append(append([]int(nil), prefix...), item)
			newSupport := supportOf(transactions, newPrefix)
			if newSupport < minSupport {
				continue
			}
			extend(newPrefix, candidates[i+1:], newSupport)
		}
	}

	extend(nil, items, len(transactions))

	sort.Slice(found, func(i, j int) bool {
		if foundSupport[i] != foundSupport[j] {
			return foundSupport[i] > foundSupport[j]
		}
		return len(found[i]) > len(found[j])
	})

	if len(found) > maxK {
		found = found[:maxK]
	}
	return found
}

func supportOf(transactions []map[int]struct{}, items []int) int {
	count := 0
	for _, tx := range transactions {
		all := true
		for _, item := range items {
			if _, ok := tx[item]; !ok {
				all = false
				break
			}
		}
		if all {
			count++
		}
	}
	return count
}

func containsAll(superset, subset []int) bool {
	set := make(map[int]struct{}, len(superset))
	for _, v := range superset {
		set[v] = struct{}{}
	}
	for _, v := range subset {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
