package gen

import (
	"fmt"
	"strings"

	"modelgen/internal/diagnostic"
	"modelgen/internal/schema"
)

// UnresolvedReferenceError is returned when a property's declared type does
// not name exactly one entity with a namespace.
type UnresolvedReferenceError struct {
	PropertyKind schema.NodeKind
	PropertyName string
	DeclaredType string

	// FoundKind and FoundName describe the first node carrying the declared
	// name, if any. FoundKind is KindUnknown when nothing matched.
	FoundKind schema.NodeKind
	FoundName string

	UnitKind schema.NodeKind
	UnitName string

	// Shadowed is the path of an entity carrying the declared name that
	// comes after FoundName in depth-first order.
	Shadowed string
	// Matches holds the qualified names of all entities carrying the
	// declared name when there is more than one.
	Matches []string

	// Candidates are entity names similar to DeclaredType.
	Candidates []string
}

func (e *UnresolvedReferenceError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %q: cannot resolve type %q of %s %q",
		e.UnitKind, e.UnitName, e.DeclaredType, e.PropertyKind, e.PropertyName)

	switch {
	case e.FoundKind == schema.KindUnknown:
		sb.WriteString(": no definition found")
	case e.FoundKind != schema.KindEntity:
		fmt.Fprintf(&sb, ": first match is %s %q, not an entity (is a %s name used as a type reference?)",
			e.FoundKind, e.FoundName, e.FoundKind)
	case len(e.Matches) > 1:
		fmt.Fprintf(&sb, ": %d entities match: %s", len(e.Matches), joinQuoted(e.Matches))
	default:
		fmt.Fprintf(&sb, ": entity %q has no namespace", e.FoundName)
	}

	return sb.String()
}

// Ambiguous reports whether the declared name matches several entities.
func (e *UnresolvedReferenceError) Ambiguous() bool {
	return e.FoundKind == schema.KindEntity && len(e.Matches) > 1
}

func (e *UnresolvedReferenceError) DiagnosticCode() string {
	if e.Ambiguous() {
		return diagnostic.CodeAmbiguousReference
	}

	return diagnostic.CodeUnresolvedReference
}

func (e *UnresolvedReferenceError) Suggestions() []string {
	return e.Candidates
}

func joinQuoted(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(quoted, ", ")
}
