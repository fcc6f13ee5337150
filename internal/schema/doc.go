// Package schema holds the abstract model tree that drives generation.
//
// A tree has a single root, optional nested modules, entities (one generated
// Java class each) and properties (typed fields of an entity). Namespaces are
// inherited from ancestors and may be extended per node; entities may add a
// namespace postfix that only affects their own location.
//
// Trees are built once, either programmatically through NewRoot and the Add*
// methods or from YAML through Parse/LoadFile, and are read-only afterwards.
package schema
