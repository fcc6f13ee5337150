package schema

// SchemaVersion is the only schema file version understood by Build.
const SchemaVersion = "1"

// File is the YAML representation of a schema tree.
type File struct {
	Version   string   `yaml:"version"`
	Namespace Segments `yaml:"namespace,omitempty"`
	Modules   []Module `yaml:"modules,omitempty"`
	Entities  []Entity `yaml:"entities,omitempty"`
}

// Module groups entities under an extended namespace.
type Module struct {
	Name      string   `yaml:"name"`
	Namespace Segments `yaml:"namespace,omitempty"`
	Modules   []Module `yaml:"modules,omitempty"`
	Entities  []Entity `yaml:"entities,omitempty"`
}

// Entity describes one generated class.
type Entity struct {
	Name             string     `yaml:"name"`
	Namespace        Segments   `yaml:"namespace,omitempty"`
	NamespacePostfix Segments   `yaml:"namespace_postfix,omitempty"`
	Properties       []Property `yaml:"properties,omitempty"`
}

// Property describes one field of an entity.
type Property struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Many     ManyValue `yaml:"many,omitempty"`
	Standard *bool     `yaml:"standard,omitempty"`
}

// Segments is a namespace given either as "app.model" or as [app, model].
type Segments []string

// ManyValue keeps the multiplicity scalar exactly as written so that
// unrecognized values are reported instead of coerced.
type ManyValue struct {
	Value any
}

// IsZero lets yaml omitempty drop an undeclared multiplicity.
func (m ManyValue) IsZero() bool {
	return m.Value == nil
}

// Build turns the file into an immutable tree.
func (f *File) Build() (*Node, error) {
	if f.Version != SchemaVersion {
		return nil, &UnsupportedVersionError{Version: f.Version}
	}

	root := NewRoot(f.Namespace...)
	buildModules(root, f.Modules)
	buildEntities(root, f.Entities)

	return root, nil
}

func buildModules(parent *Node, modules []Module) {
	for i := range modules {
		m := &modules[i]
		node := parent.AddModule(m.Name, WithNamespace(m.Namespace...))
		buildModules(node, m.Modules)
		buildEntities(node, m.Entities)
	}
}

func buildEntities(parent *Node, entities []Entity) {
	for i := range entities {
		e := &entities[i]
		node := parent.AddEntity(e.Name,
			WithNamespace(e.Namespace...),
			WithNamespacePostfix(e.NamespacePostfix...),
		)

		for _, p := range e.Properties {
			opts := []Option{Many(p.Many.Value)}
			if p.Standard != nil {
				opts = append(opts, WithStandard(*p.Standard))
			}

			node.AddProperty(p.Name, p.Type, opts...)
		}
	}
}
