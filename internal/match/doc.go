// Package match ranks schema names by similarity to an unknown name.
//
// It backs the "did you mean" hints attached to unresolved type references.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "OrderStatus" and "order_status" compare equal
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names and keeps the close ones
package match
