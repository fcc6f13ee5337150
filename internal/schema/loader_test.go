package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zooYAML = `
version: "1"
namespace: app
modules:
  - name: zoo
    namespace: zoo
    entities:
      - name: animal
        properties:
          - name: legs
            type: int
entities:
  - name: person
    namespace: [model]
    namespace_postfix: people.core
    properties:
      - name: name
        type: string
      - name: pets
        type: animal
        many: ordered
      - name: tags
        type: string
        many: true
      - name: avatar
        type: image
        standard: true
      - name: nickname
        type: string
        many:
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(zooYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, Segments{"app"}, f.Namespace)
	require.Len(t, f.Modules, 1)
	assert.Equal(t, Segments{"zoo"}, f.Modules[0].Namespace)

	require.Len(t, f.Entities, 1)
	person := f.Entities[0]
	assert.Equal(t, Segments{"model"}, person.Namespace)
	assert.Equal(t, Segments{"people", "core"}, person.NamespacePostfix)

	require.Len(t, person.Properties, 5)
	assert.Nil(t, person.Properties[0].Many.Value)
	assert.Equal(t, "ordered", person.Properties[1].Many.Value)
	assert.Equal(t, true, person.Properties[2].Many.Value)
	require.NotNil(t, person.Properties[3].Standard)
	assert.True(t, *person.Properties[3].Standard)
	assert.Nil(t, person.Properties[4].Many.Value)
}

func TestFile_Build(t *testing.T) {
	f, err := Parse([]byte(zooYAML))
	require.NoError(t, err)

	root, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"zoo", "animal", "legs", "person", "name", "pets", "tags", "avatar", "nickname"},
		names(root.Descendants(nil)))

	person := root.Children(KindEntity)[0]
	assert.Equal(t, []string{"app", "model"}, person.Namespace())
	assert.Equal(t, []string{"people", "core"}, person.NamespacePostfix())

	props := person.Children(KindProperty)

	m, err := props[1].Multiplicity()
	require.NoError(t, err)
	assert.Equal(t, OrderedMany, m)

	m, err = props[2].Multiplicity()
	require.NoError(t, err)
	assert.Equal(t, UnorderedMany, m)

	std, explicit := props[3].Standard()
	assert.True(t, explicit)
	assert.True(t, std)

	assert.True(t, Validate(root).Len() == 0, "%v", Validate(root).All())
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("namespace: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, f.Version)

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, f.Version)
	assert.Empty(t, f.Entities)
}

func TestParse_KeepsUnrecognizedMany(t *testing.T) {
	f, err := Parse([]byte(`
namespace: shop
entities:
  - name: order
    properties:
      - name: lines
        type: line
        many: 3
`))
	require.NoError(t, err)

	root, err := f.Build()
	require.NoError(t, err)

	lines := root.Children(KindEntity)[0].Children(KindProperty)[0]
	_, err = lines.Multiplicity()

	var amb *AmbiguousMultiplicityError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, 3, amb.Value)
	assert.Equal(t, "order.lines", amb.Property)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		errSubstr string
	}{
		{"many as list", "entities:\n  - name: a\n    properties:\n      - name: b\n        type: c\n        many: [ordered]\n", "many must be a scalar"},
		{"namespace as map", "namespace: {a: b}\n", "expected namespace string or list"},
		{"unknown key", "namspace: app\n", "namspace"},
		{"invalid yaml", "entities: [\n", "failed to parse schema YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestBuild_UnsupportedVersion(t *testing.T) {
	f, err := Parse([]byte("version: \"2\"\n"))
	require.NoError(t, err)

	_, err = f.Build()

	var verr *UnsupportedVersionError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "2", verr.Version)
}

func TestLoadTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(zooYAML), 0o600))

	root, err := LoadTree(path)
	require.NoError(t, err)
	assert.Len(t, root.Children(KindEntity), 1)

	_, err = LoadTree(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestMarshal_RoundTripsTree(t *testing.T) {
	f, err := Parse([]byte(zooYAML))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	a, err := f.Build()
	require.NoError(t, err)

	b, err := again.Build()
	require.NoError(t, err)

	assert.Equal(t, names(a.Descendants(nil)), names(b.Descendants(nil)))
	assert.Equal(t, a.Children(KindEntity)[0].NamespacePostfix(), b.Children(KindEntity)[0].NamespacePostfix())
}

func TestWriteFile_Skeleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas", "model.yaml")

	require.NoError(t, WriteFile(path, Skeleton(), false))

	root, err := LoadTree(path)
	require.NoError(t, err)

	res := Validate(root)
	assert.Zero(t, res.Len())

	keeper := root.Children(KindEntity)[0]
	assert.Equal(t, []string{"com", "example", "staff"}, keeper.Namespace())
	assert.Equal(t, []string{"people"}, keeper.NamespacePostfix())

	many := make(map[string]Multiplicity)
	for _, p := range keeper.Children(KindProperty) {
		m, err := p.Multiplicity()
		require.NoError(t, err)

		many[p.Name()] = m
	}

	assert.Equal(t, map[string]Multiplicity{
		"email":   Scalar,
		"animals": OrderedMany,
		"shifts":  UnorderedMany,
		"badge":   Scalar,
	}, many)

	err = WriteFile(path, Skeleton(), false)
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "use --force to overwrite it")

	require.NoError(t, WriteFile(path, Skeleton(), true))
}
