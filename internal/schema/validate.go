package schema

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"modelgen/internal/diagnostic"
	"modelgen/internal/naming"
)

// Validate checks the structure of a tree. It does not resolve type
// references; that happens per unit during generation.
func Validate(root *Node) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if root == nil {
		res.AddError(diagnostic.CodeInternal, "schema tree is nil", "", "")
		return res
	}

	validateSegments(res, root, root.namespace)
	validateSiblings(res, root)

	for n := range root.Descendants(nil) {
		validateNode(res, n)
	}

	validateEntityNames(res, root)

	return res
}

func validateNode(res *diagnostic.Diagnostics, n *Node) {
	unit := unitName(n)
	path := n.Path()

	if err := naming.Validate(n.name); err != nil {
		res.Add(diagnostic.FromError(errors.Wrapf(err, "%s name", n.kind), unit, path))
	}

	validateSegments(res, n, n.namespace)
	validateSegments(res, n, n.postfix)
	validateSiblings(res, n)

	parentKind := n.parent.kind

	switch n.kind {
	case KindModule:
		if parentKind != KindRoot && parentKind != KindModule {
			res.AddError(diagnostic.CodeMisplacedNode,
				fmt.Sprintf("module %q must be declared under the root or another module, not a %s", n.name, parentKind),
				unit, path)
		}

	case KindEntity:
		if parentKind != KindRoot && parentKind != KindModule {
			res.AddError(diagnostic.CodeMisplacedNode,
				fmt.Sprintf("entity %q must be declared under the root or a module, not a %s", n.name, parentKind),
				unit, path)
		}

		if len(n.Namespace()) == 0 {
			res.AddError(diagnostic.CodeMissingNamespace,
				fmt.Sprintf("entity %q has no namespace; declare one on the root, a module or the entity", n.name),
				unit, path)
		}

	case KindProperty:
		if parentKind != KindEntity {
			res.AddError(diagnostic.CodeMisplacedNode,
				fmt.Sprintf("property %q must be declared on an entity, not a %s", n.name, parentKind),
				unit, path)
		}

		validateProperty(res, n, unit, path)

	default:
		res.AddError(diagnostic.CodeInternal, fmt.Sprintf("unexpected node kind %s", n.kind), unit, path)
	}
}

func validateProperty(res *diagnostic.Diagnostics, n *Node, unit, path string) {
	if n.declaredType == "" {
		res.AddError(diagnostic.CodeMissingType, fmt.Sprintf("property %q has no type", n.name), unit, path)
	} else if err := naming.Validate(n.declaredType); err != nil {
		res.Add(diagnostic.FromError(errors.Wrapf(err, "type of property %q", n.name), unit, path))
	}

	if _, err := n.Multiplicity(); err != nil {
		res.Add(diagnostic.FromError(err, unit, path))
	}

	if !n.HasNamespace() && (len(n.namespace) > 0 || len(n.postfix) > 0) {
		res.AddWarning(diagnostic.CodeMisplacedNode,
			fmt.Sprintf("namespace on property %q is ignored", n.name), unit, path)
	}
}

func validateSegments(res *diagnostic.Diagnostics, n *Node, segments []string) {
	for _, seg := range segments {
		if err := naming.Validate(seg); err != nil {
			res.Add(diagnostic.FromError(errors.Wrap(err, "namespace segment"), unitName(n), n.Path()))
		}
	}
}

// validateSiblings reports children that share a name with an earlier child
// of the same kind.
func validateSiblings(res *diagnostic.Diagnostics, n *Node) {
	type key struct {
		kind NodeKind
		name string
	}

	seen := make(map[key]struct{}, len(n.children))

	for _, c := range n.children {
		k := key{c.kind, c.name}
		if _, ok := seen[k]; ok {
			res.AddError(diagnostic.CodeDuplicateName,
				fmt.Sprintf("duplicate %s %q", c.kind, c.name), unitName(c), c.Path())

			continue
		}

		seen[k] = struct{}{}
	}
}

// validateEntityNames reports entities sharing a name with an earlier entity
// elsewhere in the tree. Type references are by bare name, so such a
// reference could not tell them apart. Duplicates under the same parent
// are left to validateSiblings.
func validateEntityNames(res *diagnostic.Diagnostics, root *Node) {
	first := make(map[string]*Node)

	for e := range root.Descendants(func(n *Node) bool { return n.kind == KindEntity }) {
		prev, ok := first[e.name]
		if !ok {
			first[e.name] = e
			continue
		}

		if prev.parent == e.parent {
			continue
		}

		res.AddError(diagnostic.CodeDuplicateName,
			fmt.Sprintf("entity %q is also declared at %s; entity names must be unique across the schema", e.name, prev.Path()),
			e.name, e.Path())
	}
}

// unitName is the name of the entity a node belongs to, if any.
func unitName(n *Node) string {
	if n.kind == KindEntity {
		return n.name
	}

	if e := n.Enclosing(KindEntity); e != nil {
		return e.name
	}

	return ""
}
