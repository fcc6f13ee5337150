package schema

// NodeKind distinguishes the role of a node in the tree.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindRoot
	KindModule
	KindEntity
	KindProperty
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindModule:
		return "module"
	case KindEntity:
		return "entity"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}
