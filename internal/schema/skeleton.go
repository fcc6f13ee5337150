package schema

// Skeleton returns a small schema showing every feature of the format:
// a module, a namespace postfix, primitive and entity types, both kinds of
// collection and the standard flag.
func Skeleton() *File {
	standard := true

	return &File{
		Version:   SchemaVersion,
		Namespace: Segments{"com", "example"},
		Modules: []Module{
			{
				Name:      "zoo",
				Namespace: Segments{"zoo"},
				Entities: []Entity{
					{
						Name: "animal",
						Properties: []Property{
							{Name: "name", Type: "string"},
							{Name: "legs", Type: "int"},
							{Name: "born", Type: "date"},
						},
					},
				},
			},
		},
		Entities: []Entity{
			{
				Name:             "keeper",
				Namespace:        Segments{"staff"},
				NamespacePostfix: Segments{"people"},
				Properties: []Property{
					{Name: "email", Type: "email"},
					{Name: "animals", Type: "animal", Many: ManyValue{Value: "ordered"}},
					{Name: "shifts", Type: "date", Many: ManyValue{Value: true}},
					{Name: "badge", Type: "photo", Standard: &standard},
				},
			},
		},
	}
}
