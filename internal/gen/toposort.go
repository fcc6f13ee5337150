package gen

import (
	"slices"

	"github.com/cockroachdb/errors"

	"modelgen/utils"
)

// topoSort orders n items so that every item follows the items depsFn
// returns for it. Among ready items the lowest index goes first, which keeps
// the result stable for a given input.
//
// On a cycle the ordered prefix is returned together with the items that
// could not be placed.
func topoSort(n int, depsFn func(i int) []int) (order, stuck []int, err error) {
	if n <= 0 {
		return nil, nil, nil
	}

	pending := make([]int, n)
	dependents := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if !utils.IsInRange(0, d, n-1) {
				return nil, nil, errors.Newf("dependency index out of range: %d depends on %d", i, d)
			}

			pending[i]++
			dependents[d] = append(dependents[d], i)
		}
	}

	var ready []int

	for i, p := range pending {
		if p == 0 {
			ready = append(ready, i)
		}
	}

	order = make([]int, 0, n)

	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		for _, j := range dependents[next] {
			if pending[j]--; pending[j] > 0 {
				continue
			}

			at, _ := slices.BinarySearch(ready, j)
			ready = slices.Insert(ready, at, j)
		}
	}

	if len(order) == n {
		return order, nil, nil
	}

	for i, p := range pending {
		if p > 0 {
			stuck = append(stuck, i)
		}
	}

	return order, stuck, errors.Newf("cycle between %d item(s)", len(stuck))
}

// CycleError lists units whose references form a cycle.
type CycleError struct {
	Units []string
}

func (e *CycleError) Error() string {
	return "reference cycle between units " + joinQuoted(e.Units)
}

// BuildOrder returns the units so that every referenced unit precedes the
// units referencing it. Self references are ignored. Java accepts mutual
// references, so a *CycleError is informational: the ordered prefix is
// returned followed by the cyclic units in tree order.
func (p *Plan) BuildOrder() ([]Unit, error) {
	index := make(map[string]int, len(p.Units))
	for i := range p.Units {
		index[p.Units[i].Qualified()] = i
	}

	order, stuck, err := topoSort(len(p.Units), func(i int) []int {
		var deps []int

		for _, q := range p.Units[i].DependsOn {
			if j, ok := index[q]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})

	units := make([]Unit, 0, len(p.Units))
	for _, i := range order {
		units = append(units, p.Units[i])
	}

	if err == nil {
		return units, nil
	}

	cerr := &CycleError{}

	for _, i := range stuck {
		units = append(units, p.Units[i])
		cerr.Units = append(cerr.Units, p.Units[i].Entity)
	}

	return units, cerr
}
