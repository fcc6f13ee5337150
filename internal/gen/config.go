package gen

import (
	"modelgen/primitive"
)

// Config holds Java specific generation settings.
type Config struct {
	// Extension of generated files, including the dot.
	Extension string
	// Separator joins namespace segments in qualified names.
	Separator string
	// ImportFormat renders one import line from a qualified name.
	ImportFormat string
	// OrderedCollection is the container for ordered-many properties.
	OrderedCollection string
	// UnorderedCollection is the container for unordered-many properties.
	UnorderedCollection string
	// Types maps primitive kinds to Java type text.
	Types *primitive.Table
	// Workers bounds concurrent unit planning; <= 0 means GOMAXPROCS.
	Workers int
	// SkipSameNamespaceImports drops imports of types living in the
	// importing entity's own package.
	SkipSameNamespaceImports bool
}

// DefaultConfig returns the default Java configuration.
func DefaultConfig() Config {
	return Config{
		Extension:           ".java",
		Separator:           ".",
		ImportFormat:        "import %s;",
		OrderedCollection:   "java.util.List",
		UnorderedCollection: "java.util.Set",
		Types:               primitive.DefaultTable(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Extension == "" {
		c.Extension = def.Extension
	}

	if c.Separator == "" {
		c.Separator = def.Separator
	}

	if c.ImportFormat == "" {
		c.ImportFormat = def.ImportFormat
	}

	if c.OrderedCollection == "" {
		c.OrderedCollection = def.OrderedCollection
	}

	if c.UnorderedCollection == "" {
		c.UnorderedCollection = def.UnorderedCollection
	}

	if c.Types == nil {
		c.Types = def.Types
	}

	return c
}
