package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"modelgen/internal/logger"
	"modelgen/internal/match"
	"modelgen/internal/naming"
	"modelgen/internal/schema"
)

// maxSuggestions bounds "did you mean" candidates on unresolved references.
const maxSuggestions = 3

// Resolver answers type, namespace and import questions about one tree.
// It is safe for concurrent use once constructed.
type Resolver struct {
	root    *schema.Node
	cfg     Config
	symbols *symbolTable
}

// symbolTable indexes a tree by node name.
type symbolTable struct {
	// first maps a name to the first node carrying it in depth-first order.
	first map[string]*schema.Node
	// definitions maps a name to every entity carrying it, in depth-first order.
	definitions map[string][]*schema.Node
	// entities lists entity names in depth-first order, for suggestions.
	entities []string
}

func indexTree(root *schema.Node) *symbolTable {
	st := &symbolTable{
		first:       make(map[string]*schema.Node),
		definitions: make(map[string][]*schema.Node),
	}

	for n := range root.Descendants(nil) {
		if _, ok := st.first[n.Name()]; !ok {
			st.first[n.Name()] = n
		}

		if n.Kind() == schema.KindEntity {
			st.definitions[n.Name()] = append(st.definitions[n.Name()], n)
			st.entities = append(st.entities, n.Name())
		}
	}

	return st
}

// NewResolver indexes the tree that node belongs to.
func NewResolver(node *schema.Node, cfg Config) *Resolver {
	root := node.Root()

	r := &Resolver{
		root:    root,
		cfg:     cfg.withDefaults(),
		symbols: indexTree(root),
	}

	logger.Logger.Debugw("symbol table built",
		"symbols", len(r.symbols.first),
		"entities", len(r.symbols.entities))

	return r
}

// Config returns the effective configuration.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Root returns the indexed tree.
func (r *Resolver) Root() *schema.Node {
	return r.root
}

// Entities returns every entity of the tree in depth-first order.
func (r *Resolver) Entities() []*schema.Node {
	var out []*schema.Node
	for n := range r.root.Descendants(isEntity) {
		out = append(out, n)
	}

	return out
}

func isEntity(n *schema.Node) bool {
	return n.Kind() == schema.KindEntity
}

// symbolsFor returns the index of the tree from belongs to. Nodes of a
// foreign tree get a fresh index with identical semantics.
func (r *Resolver) symbolsFor(from *schema.Node) *symbolTable {
	if tree := from.Root(); tree != r.root {
		return indexTree(tree)
	}

	return r.symbols
}

// isStandard reports whether a property needs no import: the explicit flag
// wins, otherwise the primitive table decides.
func (r *Resolver) isStandard(p *schema.Node) bool {
	if std, explicit := p.Standard(); explicit {
		return std
	}

	_, ok := r.cfg.Types.Lookup(p.DeclaredType())

	return ok
}

// namespaceSegments returns the node's namespace, plus its postfix when the
// node supports one, plus extra, each in lower camel case.
func (r *Resolver) namespaceSegments(node *schema.Node, extra ...string) ([]string, error) {
	raw := node.Namespace()
	if node.SupportsPostfix() {
		raw = append(raw, node.NamespacePostfix()...)
	}

	raw = append(raw, extra...)

	segs := make([]string, 0, len(raw))

	for _, s := range raw {
		v, err := naming.VariableName(s)
		if err != nil {
			return nil, errors.Wrapf(err, "namespace of %s", node)
		}

		segs = append(segs, v)
	}

	return segs, nil
}

// QualifiedNamespace joins the node's namespace segments (and extra local
// segments) with the configured separator.
func (r *Resolver) QualifiedNamespace(node *schema.Node, extra ...string) (string, error) {
	segs, err := r.namespaceSegments(node, extra...)
	if err != nil {
		return "", err
	}

	return strings.Join(segs, r.cfg.Separator), nil
}

// ResolveTypeDefinition finds the entity defining the declared type of p.
// The first node with a matching name in depth-first order must be an
// entity with a non-empty namespace, and no other entity may carry the
// same name. Anything else leaves the reference unresolved.
func (r *Resolver) ResolveTypeDefinition(p *schema.Node) (*schema.Node, error) {
	st := r.symbolsFor(p)
	target := p.DeclaredType()
	found := st.first[target]
	defs := st.definitions[target]

	if found != nil && found.Kind() == schema.KindEntity && len(defs) == 1 && len(found.Namespace()) > 0 {
		return found, nil
	}

	uerr := &UnresolvedReferenceError{
		PropertyKind: p.Kind(),
		PropertyName: p.Name(),
		DeclaredType: target,
	}

	if found != nil {
		uerr.FoundKind = found.Kind()
		uerr.FoundName = found.Name()
	}

	if unit := unitOf(p); unit != nil {
		uerr.UnitKind = unit.Kind()
		uerr.UnitName = unit.Name()
	}

	var hints []string

	switch {
	case found != nil && found.Kind() != schema.KindEntity && len(defs) > 0:
		uerr.Shadowed = defs[0].Path()
		hints = append(hints, fmt.Sprintf("entity %s exists but %s %s comes first",
			uerr.Shadowed, found.Kind(), found.Path()))

	case len(defs) > 1:
		for _, d := range defs {
			uerr.Matches = append(uerr.Matches, r.describeDefinition(d))
		}

		hints = append(hints, "entity names must be unique across the schema")
	}

	if len(defs) == 0 || found.Kind() != schema.KindEntity {
		others := slices.DeleteFunc(slices.Clone(st.entities), func(n string) bool { return n == target })
		uerr.Candidates = match.Suggest(target, others, maxSuggestions)
	}

	if len(uerr.Candidates) > 0 {
		hints = append(hints, fmt.Sprintf("did you mean %s?", strings.Join(uerr.Candidates, ", ")))
	}

	var err error = uerr
	for _, h := range hints {
		err = errors.WithHint(err, h)
	}

	return nil, err
}

// describeDefinition names an entity by its qualified class name, or by its
// tree path when that cannot be computed.
func (r *Resolver) describeDefinition(def *schema.Node) string {
	q, err := r.qualifiedName(def)
	if err != nil {
		return def.Path()
	}

	return q
}

// unitOf returns the entity a node belongs to, falling back to its parent.
func unitOf(n *schema.Node) *schema.Node {
	if e := n.Enclosing(schema.KindEntity); e != nil {
		return e
	}

	return n.Parent()
}

// QualifiedImportFor returns the fully qualified Java name of the type p
// refers to, e.g. "zoo.Animal".
func (r *Resolver) QualifiedImportFor(p *schema.Node) (string, error) {
	def, err := r.ResolveTypeDefinition(p)
	if err != nil {
		return "", err
	}

	return r.qualifiedName(def)
}

func (r *Resolver) qualifiedName(def *schema.Node) (string, error) {
	ns, err := r.QualifiedNamespace(def)
	if err != nil {
		return "", err
	}

	cls, err := naming.ClassName(def.Name())
	if err != nil {
		return "", errors.Wrapf(err, "class name of %s", def)
	}

	if ns == "" {
		return cls, nil
	}

	return ns + r.cfg.Separator + cls, nil
}
