package schema

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zooTree builds:
//
//	root [app]
//	  module zoo [zoo]
//	    entity animal
//	      property legs: int
//	    module birds [birds]
//	      entity parrot (postfix [talking])
//	  entity person [model]
//	    property name: string
//	    property pets: animal (ordered)
func zooTree() *Node {
	root := NewRoot("app")

	zoo := root.AddModule("zoo", WithNamespace("zoo"))
	animal := zoo.AddEntity("animal")
	animal.AddProperty("legs", "int")

	birds := zoo.AddModule("birds", WithNamespace("birds"))
	birds.AddEntity("parrot", WithNamespacePostfix("talking"))

	person := root.AddEntity("person", WithNamespace("model"))
	person.AddProperty("name", "string")
	person.AddProperty("pets", "animal", Many("ordered"))

	return root
}

func names(seq func(func(*Node) bool)) []string {
	var out []string
	for n := range seq {
		out = append(out, n.Name())
	}

	return out
}

func TestDescendants_DepthFirstPreOrder(t *testing.T) {
	root := zooTree()

	assert.Equal(t,
		[]string{"zoo", "animal", "legs", "birds", "parrot", "person", "name", "pets"},
		names(root.Descendants(nil)))

	entities := root.Descendants(func(n *Node) bool { return n.Kind() == KindEntity })
	assert.Equal(t, []string{"animal", "parrot", "person"}, names(entities))

	// Early break stops the walk.
	var first []string
	for n := range root.Descendants(nil) {
		first = append(first, n.Name())
		if len(first) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"zoo", "animal"}, first)
}

func TestDescendants_Deterministic(t *testing.T) {
	root := zooTree()
	a := slices.Collect(root.Descendants(nil))
	b := slices.Collect(root.Descendants(nil))
	assert.Equal(t, a, b)
}

func TestNode_Navigation(t *testing.T) {
	root := zooTree()

	person := root.Children(KindEntity)[0]
	require.Equal(t, "person", person.Name())
	assert.Len(t, root.Children(KindModule), 1)
	assert.Empty(t, root.Children(KindProperty))

	pets := person.Children(KindProperty)[1]
	assert.Equal(t, "animal", pets.DeclaredType())
	assert.Same(t, root, pets.Root())
	assert.Same(t, person, pets.Parent())
	assert.Same(t, person, pets.Enclosing(KindEntity))
	assert.Same(t, root, pets.Enclosing(KindRoot))
	assert.Nil(t, pets.Enclosing(KindModule))
	assert.Equal(t, "person.pets", pets.Path())
	assert.Equal(t, "property pets", pets.String())
	assert.Equal(t, "root", root.String())
}

func TestNode_Namespace(t *testing.T) {
	root := zooTree()

	var parrot, animal, legs *Node
	for n := range root.Descendants(nil) {
		switch n.Name() {
		case "parrot":
			parrot = n
		case "animal":
			animal = n
		case "legs":
			legs = n
		}
	}

	assert.Equal(t, []string{"app"}, root.Namespace())
	assert.Equal(t, []string{"app", "zoo"}, animal.Namespace())
	assert.Equal(t, []string{"app", "zoo", "birds"}, parrot.Namespace())
	assert.Equal(t, []string{"talking"}, parrot.NamespacePostfix())
	assert.Empty(t, animal.NamespacePostfix())

	assert.True(t, root.HasNamespace())
	assert.True(t, animal.HasNamespace())
	assert.False(t, legs.HasNamespace())
	assert.True(t, parrot.SupportsPostfix())
	assert.False(t, root.SupportsPostfix())
}

func TestNode_Standard(t *testing.T) {
	e := NewRoot("x").AddEntity("e")

	_, explicit := e.AddProperty("a", "thing").Standard()
	assert.False(t, explicit)

	std, explicit := e.AddProperty("b", "thing", WithStandard(true)).Standard()
	assert.True(t, explicit)
	assert.True(t, std)

	std, explicit = e.AddProperty("c", "string", WithStandard(false)).Standard()
	assert.True(t, explicit)
	assert.False(t, std)
}

func TestNewRoot_CopiesNamespace(t *testing.T) {
	ns := []string{"app", "model"}
	root := NewRoot(ns...)
	ns[0] = "changed"

	assert.Equal(t, []string{"app", "model"}, root.Namespace())
}
