package schema

import (
	"iter"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Node is a single element of the schema tree.
// Fields are unexported so that a built tree cannot be changed by consumers.
type Node struct {
	name         string
	kind         NodeKind
	declaredType string
	many         any
	standard     *bool
	namespace    []string
	postfix      []string

	parent   *Node
	children []*Node
}

// Option configures a node while it is added to the tree.
type Option func(*Node)

// WithNamespace appends segments to the namespace inherited from the parent.
func WithNamespace(segments ...string) Option {
	return func(n *Node) {
		n.namespace = append(n.namespace, segments...)
	}
}

// WithNamespacePostfix sets segments that extend the entity's own qualified
// namespace without being inherited by anything else.
func WithNamespacePostfix(segments ...string) Option {
	return func(n *Node) {
		n.postfix = append(n.postfix, segments...)
	}
}

// WithStandard explicitly marks a property as referring (or not) to a type
// that needs no import, overriding the primitive table.
func WithStandard(standard bool) Option {
	return func(n *Node) {
		n.standard = &standard
	}
}

// Many sets the raw multiplicity of a property. See ParseMultiplicity.
func Many(v any) Option {
	return func(n *Node) {
		n.many = v
	}
}

// NewRoot creates the top node of a tree with the given base namespace.
func NewRoot(namespace ...string) *Node {
	return &Node{kind: KindRoot, namespace: slices.Clone(namespace)}
}

// AddModule adds a grouping node. Its namespace extends the parent's.
func (n *Node) AddModule(name string, opts ...Option) *Node {
	return n.add(&Node{name: name, kind: KindModule}, opts)
}

// AddEntity adds a node that becomes one generated class.
func (n *Node) AddEntity(name string, opts ...Option) *Node {
	return n.add(&Node{name: name, kind: KindEntity}, opts)
}

// AddProperty adds a field of declaredType to an entity.
func (n *Node) AddProperty(name, declaredType string, opts ...Option) *Node {
	return n.add(&Node{name: name, kind: KindProperty, declaredType: declaredType}, opts)
}

func (n *Node) add(child *Node, opts []Option) *Node {
	for _, opt := range opts {
		opt(child)
	}

	child.parent = n
	n.children = append(n.children, child)

	return child
}

func (n *Node) Name() string         { return n.name }
func (n *Node) Kind() NodeKind       { return n.kind }
func (n *Node) DeclaredType() string { return n.declaredType }
func (n *Node) Parent() *Node        { return n.parent }

// RawMultiplicity returns the multiplicity value as it was declared.
func (n *Node) RawMultiplicity() any { return n.many }

// Multiplicity interprets the declared multiplicity.
// It fails with *AmbiguousMultiplicityError for unrecognized values.
func (n *Node) Multiplicity() (Multiplicity, error) {
	m, err := ParseMultiplicity(n.many)

	var amb *AmbiguousMultiplicityError
	if errors.As(err, &amb) {
		amb.Property = n.Path()
	}

	return m, err
}

// Root walks parent links up to the top of the tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// Children returns the direct children of the given kind in declaration order.
func (n *Node) Children(kind NodeKind) []*Node {
	var out []*Node

	for _, c := range n.children {
		if c.kind == kind {
			out = append(out, c)
		}
	}

	return out
}

// Descendants yields every node beneath n that satisfies pred, depth-first in
// declaration order. A nil pred matches everything.
func (n *Node) Descendants(pred func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(pred, yield)
	}
}

func (n *Node) walk(pred func(*Node) bool, yield func(*Node) bool) bool {
	for _, c := range n.children {
		if pred == nil || pred(c) {
			if !yield(c) {
				return false
			}
		}

		if !c.walk(pred, yield) {
			return false
		}
	}

	return true
}

// Enclosing returns the nearest ancestor of the given kind, or nil.
func (n *Node) Enclosing(kind NodeKind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.kind == kind {
			return p
		}
	}

	return nil
}

// Namespace returns the segments inherited from all ancestors followed by the
// node's own. The postfix is not included.
func (n *Node) Namespace() []string {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}

	var ns []string
	for i := len(chain) - 1; i >= 0; i-- {
		ns = append(ns, chain[i].namespace...)
	}

	return ns
}

// NamespacePostfix returns the node's own postfix segments.
func (n *Node) NamespacePostfix() []string {
	return slices.Clone(n.postfix)
}

// SupportsPostfix reports whether the node kind carries a namespace postfix.
func (n *Node) SupportsPostfix() bool {
	return n.kind == KindEntity
}

// HasNamespace reports whether the node kind exposes namespace information.
// Properties live in their entity's namespace and do not expose one.
func (n *Node) HasNamespace() bool {
	switch n.kind {
	case KindRoot, KindModule, KindEntity:
		return true
	default:
		return false
	}
}

// Standard returns the explicit standard flag and whether one was set.
func (n *Node) Standard() (standard, explicit bool) {
	if n.standard == nil {
		return false, false
	}

	return *n.standard, true
}

// Path is the dotted chain of names from the root to n, e.g. "shop.order.status".
func (n *Node) Path() string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		if cur.name != "" {
			names = append(names, cur.name)
		}
	}

	slices.Reverse(names)

	return strings.Join(names, ".")
}

func (n *Node) String() string {
	if n.name == "" {
		return n.kind.String()
	}

	return n.kind.String() + " " + n.name
}
