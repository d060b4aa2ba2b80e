package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// parseJSONInstanceFile loads the alternate JSON instance document:
//
//	{
//	  "warehouses": N, "stores": M,
//	  "capacity": [...], "fixedCosts": [...], "goods": [...],
//	  "supplyCost": [[...], ...],
//	  "incompatiblePairs": [[s,s'], ...]
//	}
//
// using gjson.Get(...).ForEach(...), the same idiom this dependency's home
// codebase uses for its own custom JSON game-data format. Indices follow the
// same 1-based convention as the native .dzn format.
func parseJSONInstanceFile(fileName string) (*Instance, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %v", ErrInputFormat, fileName, err)
	}
	return parseJSONInstance(string(raw))
}

func parseJSONInstance(doc string) (*Instance, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrInputFormat)
	}
	root := gjson.Parse(doc)

	warehouses := int(root.Get("warehouses").Int())
	stores := int(root.Get("stores").Int())
	if warehouses <= 0 || stores <= 0 {
		return nil, fmt.Errorf("%w: missing warehouses/stores", ErrInputFormat)
	}

	in := &Instance{
		warehouses:   warehouses,
		stores:       stores,
		capacity:     make([]int, warehouses),
		fixedCost:    make([]int, warehouses),
		amountOfGood: make([]int, stores),
		supplyCost:   make([][]float64, stores),
	}
	for s := range in.supplyCost {
		in.supplyCost[s] = make([]float64, warehouses)
	}
	in.incompatible = make([][]bool, stores)
	for s := range in.incompatible {
		in.incompatible[s] = make([]bool, stores)
	}
	in.wIncompatible = make([][]bool, warehouses)
	for w := range in.wIncompatible {
		in.wIncompatible[w] = make([]bool, stores)
	}

	var parseErr error
	w := 0
	root.Get("capacity").ForEach(func(_, v gjson.Result) bool {
		if w >= warehouses {
			return false
		}
		in.capacity[w] = int(v.Int())
		w++
		return true
	})

	w = 0
	root.Get("fixedCosts").ForEach(func(_, v gjson.Result) bool {
		if w >= warehouses {
			return false
		}
		in.fixedCost[w] = int(v.Int())
		w++
		return true
	})

	s := 0
	root.Get("goods").ForEach(func(_, v gjson.Result) bool {
		if s >= stores {
			return false
		}
		in.amountOfGood[s] = int(v.Int())
		s++
		return true
	})

	s = 0
	root.Get("supplyCost").ForEach(func(_, row gjson.Result) bool {
		if s >= stores {
			return false
		}
		w := 0
		row.ForEach(func(_, v gjson.Result) bool {
			if w >= warehouses {
				return false
			}
			in.supplyCost[s][w] = v.Float()
			w++
			return true
		})
		s++
		return true
	})

	pairs := root.Get("incompatiblePairs").Array()
	in.incompatiblePairs = make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		pv := p.Array()
		if len(pv) != 2 {
			parseErr = fmt.Errorf("%w: incompatiblePairs entry must have 2 elements", ErrInputFormat)
			return nil, parseErr
		}
		s1 := int(pv[0].Int()) - 1
		s2 := int(pv[1].Int()) - 1
		in.incompatiblePairs = append(in.incompatiblePairs, [2]int{s1, s2})
		in.incompatible[s1][s2] = true
		in.incompatible[s2][s1] = true
	}

	return in, nil
}
