// Package gen maps a schema tree onto Java: type text, qualified namespaces,
// imports and output paths, plus the per-entity Unit plan consumed by
// templates.
//
// Resolution approach:
//   - A symbol table (name -> first node in depth-first order) is built once
//     per tree; lookups then match a linear descendant scan exactly.
//   - Every operation is a pure function of the read-only tree, so units are
//     planned concurrently without locking.
//   - Per-unit failures are collected as diagnostics and never abort the
//     remaining units.
package gen
