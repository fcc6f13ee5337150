// Package diagnostic provides structured errors, warnings and infos collected
// while validating a schema and planning generated units.
//
// Key capabilities:
//   - Stable codes per failure class (unresolved_reference, ambiguous_multiplicity, ...)
//   - Location by unit (entity) and property path
//   - Suggestions for likely fixes
//   - Aggregation across units so one failure does not hide the others
package diagnostic
