package gen

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Empty(t, stuck)
	assert.Equal(t, []int{2, 0, 1}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	order, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	require.Error(t, err)
	assert.Equal(t, []int{2}, order)
	assert.Equal(t, []int{0, 1}, stuck)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, _, err := topoSort(1, func(int) []int { return []int{4} })
	require.Error(t, err)
}

func TestPlan_BuildOrder(t *testing.T) {
	p := &Plan{Units: []Unit{
		{Entity: "person", Class: "Person", Package: "app", DependsOn: []string{"zoo.Animal", "app.Person"}},
		{Entity: "animal", Class: "Animal", Package: "zoo", DependsOn: []string{"zoo.Food"}},
		{Entity: "food", Class: "Food", Package: "zoo"},
	}}

	units, err := p.BuildOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "animal", "person"}, entityNames(units))
}

func TestPlan_BuildOrderCycle(t *testing.T) {
	p := &Plan{Units: []Unit{
		{Entity: "person", Class: "Person", Package: "app", DependsOn: []string{"zoo.Animal"}},
		{Entity: "animal", Class: "Animal", Package: "zoo", DependsOn: []string{"app.Person"}},
		{Entity: "food", Class: "Food", Package: "zoo"},
	}}

	units, err := p.BuildOrder()

	var cerr *CycleError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, []string{"person", "animal"}, cerr.Units)
	assert.Equal(t, []string{"food", "person", "animal"}, entityNames(units))
	assert.Contains(t, err.Error(), `"person", "animal"`)
}

func entityNames(units []Unit) []string {
	out := make([]string, len(units))
	for i := range units {
		out[i] = units[i].Entity
	}

	return out
}
