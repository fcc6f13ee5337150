package gen

import (
	"strings"

	"github.com/cockroachdb/errors"

	"modelgen/internal/common"
	"modelgen/internal/naming"
	"modelgen/internal/schema"
)

// typeRef is a Java type with an optional generic container.
type typeRef struct {
	Container string // Simple container name ("List", "Set"), empty for scalars
	Name      string // Element type text
}

// String returns the type text, e.g. "Animal", "List<Animal>".
func (t typeRef) String() string {
	if t.Container == "" {
		return t.Name
	}

	var sb strings.Builder

	sb.WriteString(t.Container)
	sb.WriteString("<")
	sb.WriteString(t.Name)
	sb.WriteString(">")

	return sb.String()
}

// BaseTypeText maps a declared type to Java: primitive text from the table,
// otherwise the class name of the symbol.
func (r *Resolver) BaseTypeText(declared string) (string, error) {
	if text, ok := r.cfg.Types.Lookup(declared); ok {
		return text, nil
	}

	cls, err := naming.ClassName(declared)
	if err != nil {
		return "", errors.Wrap(err, "declared type")
	}

	return cls, nil
}

func (r *Resolver) typeRef(p *schema.Node) (typeRef, error) {
	m, err := p.Multiplicity()
	if err != nil {
		return typeRef{}, err
	}

	base, err := r.BaseTypeText(p.DeclaredType())
	if err != nil {
		return typeRef{}, errors.Wrapf(err, "%s", p)
	}

	ref := typeRef{Name: base}

	switch m {
	case schema.OrderedMany:
		ref.Container = common.SimpleName(r.cfg.OrderedCollection)
	case schema.UnorderedMany:
		ref.Container = common.SimpleName(r.cfg.UnorderedCollection)
	case schema.Scalar:
	}

	return ref, nil
}

// TypeText returns the declared Java type of a property: the base type,
// wrapped in List<> for ordered-many and Set<> for unordered-many.
func (r *Resolver) TypeText(p *schema.Node) (string, error) {
	ref, err := r.typeRef(p)
	if err != nil {
		return "", err
	}

	return ref.String(), nil
}
