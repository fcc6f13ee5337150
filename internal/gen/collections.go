package gen

import (
	"fmt"
	"strings"

	"modelgen/internal/common"
	"modelgen/internal/schema"
)

// Imports returns the qualified names a unit must import for its
// non-standard property types, one per distinct declared type in
// first-occurrence order.
func (r *Resolver) Imports(entity *schema.Node) ([]string, error) {
	var (
		out  []string
		seen = make(map[string]struct{})
	)

	var ownNS string

	if r.cfg.SkipSameNamespaceImports {
		ns, err := r.QualifiedNamespace(entity)
		if err != nil {
			return nil, err
		}

		ownNS = ns
	}

	for _, p := range entity.Children(schema.KindProperty) {
		if r.isStandard(p) {
			continue
		}

		if _, dup := seen[p.DeclaredType()]; dup {
			continue
		}

		seen[p.DeclaredType()] = struct{}{}

		q, err := r.QualifiedImportFor(p)
		if err != nil {
			return nil, err
		}

		if r.cfg.SkipSameNamespaceImports && common.Qualifier(q) == ownNS {
			continue
		}

		out = append(out, q)
	}

	return common.Uniq(out), nil
}

// ImportsFor renders the import block for a unit's referenced types,
// one statement per line. Empty when nothing needs importing.
func (r *Resolver) ImportsFor(entity *schema.Node) (string, error) {
	qs, err := r.Imports(entity)
	if err != nil {
		return "", err
	}

	return r.formatImports(qs), nil
}

// CollectionImports returns the container types a unit needs: none when no
// property is many-valued, otherwise the ordered container and/or the
// unordered one, ordered first.
func (r *Resolver) CollectionImports(entity *schema.Node) ([]string, error) {
	var ordered, unordered bool

	for _, p := range entity.Children(schema.KindProperty) {
		m, err := p.Multiplicity()
		if err != nil {
			return nil, err
		}

		switch m {
		case schema.OrderedMany:
			ordered = true
		case schema.UnorderedMany:
			unordered = true
		case schema.Scalar:
		}
	}

	var out []string

	if ordered {
		out = append(out, r.cfg.OrderedCollection)
	}

	if unordered {
		out = append(out, r.cfg.UnorderedCollection)
	}

	return out, nil
}

// CollectionImportsFor renders CollectionImports as import statements.
func (r *Resolver) CollectionImportsFor(entity *schema.Node) (string, error) {
	qs, err := r.CollectionImports(entity)
	if err != nil {
		return "", err
	}

	return r.formatImports(qs), nil
}

func (r *Resolver) formatImports(qualified []string) string {
	lines := r.importLines(qualified)
	return strings.Join(lines, "\n")
}

func (r *Resolver) importLines(qualified []string) []string {
	if len(qualified) == 0 {
		return nil
	}

	lines := make([]string, len(qualified))
	for i, q := range qualified {
		lines[i] = fmt.Sprintf(r.cfg.ImportFormat, q)
	}

	return lines
}
