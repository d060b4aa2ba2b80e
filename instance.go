package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInputFormat reports that an instance file could not be parsed.
var ErrInputFormat = errors.New("invalid instance file")

// Instance is the immutable problem data for one WLP-I run: warehouse
// capacities and fixed costs, store demands, the supply-cost matrix, and the
// store-incompatibility relation. A reduced instance additionally carries a
// fixed-pattern cost offset pre-paid by MineReduce.
type Instance struct {
	warehouses, stores int

	capacity     []int
	fixedCost    []int
	amountOfGood []int
	supplyCost   [][]float64 // [store][warehouse]

	incompatiblePairs [][2]int
	incompatible      [][]bool // [store][store]
	wIncompatible     [][]bool // [warehouse][store]

	reductionOpeningCost int
	reductionSupplyCost  float64
}

func (in *Instance) Warehouses() int                 { return in.warehouses }
func (in *Instance) Stores() int                      { return in.stores }
func (in *Instance) Capacity(w int) int               { return in.capacity[w] }
func (in *Instance) FixedCost(w int) int              { return in.fixedCost[w] }
func (in *Instance) AmountOfGoods(s int) int          { return in.amountOfGood[s] }
func (in *Instance) SupplyCost(s, w int) float64       { return in.supplyCost[s][w] }
func (in *Instance) Incompatible(s1, s2 int) bool      { return in.incompatible[s1][s2] }
func (in *Instance) WarehouseIncompatible(w, s int) bool { return in.wIncompatible[w][s] }
func (in *Instance) ReductionOpeningCost() int         { return in.reductionOpeningCost }
func (in *Instance) ReductionSupplyCost() float64      { return in.reductionSupplyCost }
func (in *Instance) IncompatiblePairs() [][2]int       { return in.incompatiblePairs }

// ParseInstance loads an Instance from file_name, dispatching on extension:
// ".json" uses the gjson-based loader, anything else the native .dzn-like
// scanner.
func ParseInstance(fileName string) (*Instance, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".json") {
		return parseJSONInstanceFile(fileName)
	}
	return parseDznInstance(fileName)
}

// parseDznInstance scans the native textual format:
//
//	Warehouses = N;
//	Stores = M;
//	Capacity = [c1, ..., cN];
//	FixedCosts = [f1, ..., fN];
//	Goods = [g1, ..., gM];
//	SupplyCost = [| c_1,1, ..., c_1,N | c_2,1, ... | ... |];
//	IncompatiblePairs = K;
//	Pairs = [ (s,s'), ... ];
//
// Store indices in the file are 1-based; the instance stores them 0-based.
func parseDznInstance(fileName string) (*Instance, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %v", ErrInputFormat, fileName, err)
	}
	defer f.Close()

	sc := newFieldScanner(bufio.NewReader(f))

	warehouses, err := sc.intAfter("Warehouses")
	if err != nil {
		return nil, err
	}
	stores, err := sc.intAfter("Stores")
	if err != nil {
		return nil, err
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

	if err := sc.skipTo('['); err != nil {
		return nil, fmt.Errorf("%w: Capacity section: %v", ErrInputFormat, err)
	}
	for w := 0; w < warehouses; w++ {
		v, err := sc.intToken()
		if err != nil {
			return nil, fmt.Errorf("%w: Capacity[%d]: %v", ErrInputFormat, w, err)
		}
		in.capacity[w] = v
	}

	if err := sc.skipTo('['); err != nil {
		return nil, fmt.Errorf("%w: FixedCosts section: %v", ErrInputFormat, err)
	}
	for w := 0; w < warehouses; w++ {
		v, err := sc.intToken()
		if err != nil {
			return nil, fmt.Errorf("%w: FixedCosts[%d]: %v", ErrInputFormat, w, err)
		}
		in.fixedCost[w] = v
	}

	if err := sc.skipTo('['); err != nil {
		return nil, fmt.Errorf("%w: Goods section: %v", ErrInputFormat, err)
	}
	for s := 0; s < stores; s++ {
		v, err := sc.intToken()
		if err != nil {
			return nil, fmt.Errorf("%w: Goods[%d]: %v", ErrInputFormat, s, err)
		}
		in.amountOfGood[s] = v
	}

	if err := sc.skipTo('['); err != nil {
		return nil, fmt.Errorf("%w: SupplyCost section: %v", ErrInputFormat, err)
	}
	if err := sc.skipTo('|'); err != nil {
		return nil, fmt.Errorf("%w: SupplyCost opening bar: %v", ErrInputFormat, err)
	}
	for s := 0; s < stores; s++ {
		for w := 0; w < warehouses; w++ {
			v, err := sc.floatToken()
			if err != nil {
				return nil, fmt.Errorf("%w: SupplyCost[%d][%d]: %v", ErrInputFormat, s, w, err)
			}
			in.supplyCost[s][w] = v
		}
	}

	nPairs, err := sc.intAfter("IncompatiblePairs")
	if err != nil {
		return nil, err
	}
	in.incompatiblePairs = make([][2]int, nPairs)
	if err := sc.skipTo('['); err != nil {
		return nil, fmt.Errorf("%w: Pairs section: %v", ErrInputFormat, err)
	}
	for i := 0; i < nPairs; i++ {
		s1, s2, err := sc.pairToken()
		if err != nil {
			return nil, fmt.Errorf("%w: Pairs[%d]: %v", ErrInputFormat, i, err)
		}
		in.incompatiblePairs[i] = [2]int{s1 - 1, s2 - 1}
		in.incompatible[s1-1][s2-1] = true
		in.incompatible[s2-1][s1-1] = true
	}

	return in, nil
}

// NewReducedInstance builds a reduced copy of base fixing pattern's
// assignments: for each (w,s,q), the opening and supply costs are pre-paid
// into the reduction offsets, capacity and demand are decremented, and any
// store incompatible with s becomes permanently incompatible with w.
func NewReducedInstance(base *Instance, pattern Pattern) *Instance {
	red := &Instance{
		warehouses:           base.warehouses,
		stores:               base.stores,
		reductionOpeningCost: base.reductionOpeningCost,
		reductionSupplyCost:  base.reductionSupplyCost,
		incompatiblePairs:    base.incompatiblePairs,
		incompatible:         base.incompatible,
	}
	red.capacity = append([]int(nil), base.capacity...)
	red.fixedCost = append([]int(nil), base.fixedCost...)
	red.amountOfGood = append([]int(nil), base.amountOfGood...)
	red.supplyCost = make([][]float64, len(base.supplyCost))
	for i, row := range base.supplyCost {
		red.supplyCost[i] = append([]float64(nil), row...)
	}
	red.wIncompatible = make([][]bool, len(base.wIncompatible))
	for i, row := range base.wIncompatible {
		red.wIncompatible[i] = append([]bool(nil), row...)
	}

	for _, sup := range pattern {
		red.reductionOpeningCost += red.fixedCost[sup.W]
		red.reductionSupplyCost += red.supplyCost[sup.S][sup.W] * float64(sup.Q)
		red.fixedCost[sup.W] = 0
		red.capacity[sup.W] -= sup.Q
		red.amountOfGood[sup.S] -= sup.Q
		for s := 0; s < red.stores; s++ {
			if red.incompatible[sup.S][s] {
				red.wIncompatible[sup.W][s] = true
			}
		}
	}
	return red
}

// fieldScanner is a tiny hand-rolled scanner for the .dzn-like grammar: it
// skips to named delimiters and reads whitespace/comma separated numeric
// tokens, mirroring the reference implementation's char-by-char ifstream
// reads without pulling in a general-purpose parsing library (no third-party
// parser in the corpus targets this custom grammar).
type fieldScanner struct {
	r   *bufio.Reader
	buf strings.Builder
}

func newFieldScanner(r *bufio.Reader) *fieldScanner {
	return &fieldScanner{r: r}
}

func (s *fieldScanner) skipTo(delim byte) error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if b == delim {
			return nil
		}
	}
}

func (s *fieldScanner) nextToken() (string, error) {
	s.buf.Reset()
	// skip separators
	var b byte
	var err error
	for {
		b, err = s.r.ReadByte()
		if err != nil {
			return "", err
		}
		if isTokenSep(b) {
			continue
		}
		break
	}
	s.buf.WriteByte(b)
	for {
		b, err = s.r.ReadByte()
		if err != nil {
			break
		}
		if isTokenSep(b) {
			break
		}
		s.buf.WriteByte(b)
	}
	return s.buf.String(), nil
}

func isTokenSep(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ',', ';', '[', ']', '|', '(', ')':
		return true
	}
	return false
}

func (s *fieldScanner) intToken() (int, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (s *fieldScanner) floatToken() (float64, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// pairToken reads "(s,s2)" as two integers; skipTo('(') is the caller's job
// only for the first pair, since nextToken's separator set already strips
// parens and commas around subsequent values.
func (s *fieldScanner) pairToken() (int, int, error) {
	if err := s.skipTo('('); err != nil {
		return 0, 0, err
	}
	a, err := s.intToken()
	if err != nil {
		return 0, 0, err
	}
	b, err := s.intToken()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// intAfter reads "<name> = <value>;" and returns value, having already
// consumed the name token via skipTo('=').
func (s *fieldScanner) intAfter(name string) (int, error) {
	if err := s.skipTo('='); err != nil {
		return 0, fmt.Errorf("%w: expected %s section: %v", ErrInputFormat, name, err)
	}
	v, err := s.intToken()
	if err != nil {
		return 0, fmt.Errorf("%w: %s value: %v", ErrInputFormat, name, err)
	}
	return v, nil
}
