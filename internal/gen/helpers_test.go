package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"modelgen/internal/schema"
)

// personTree builds the reference scenario:
//
//	entity Person [app, model]
//	  name: string
//	  pets: Animal (ordered)
//	entity Animal [zoo]
//	  legs: int
func personTree() (root, person, animal *schema.Node) {
	root = schema.NewRoot()

	person = root.AddEntity("Person", schema.WithNamespace("app", "model"))
	person.AddProperty("name", "string")
	person.AddProperty("pets", "Animal", schema.Many("ordered"))

	animal = root.AddEntity("Animal", schema.WithNamespace("zoo"))
	animal.AddProperty("legs", "int")

	return root, person, animal
}

func property(t *testing.T, entity *schema.Node, name string) *schema.Node {
	t.Helper()

	for _, p := range entity.Children(schema.KindProperty) {
		if p.Name() == name {
			return p
		}
	}

	require.FailNow(t, "no such property", name)

	return nil
}
