// Package resolver normalizes schema nodes for form rendering. It
// collapses anyOf unions into a single representative schema, records
// whether the union allowed null, and merges union-level metadata into
// the selected alternative. The resolver never recurses into nested
// properties or items; callers walk the document themselves and pass one
// node at a time through Extract.
//
// Resolution is a pure computation: inputs are never mutated, identical
// input yields identical output, and the package holds no state between
// calls, so concurrent use needs no locking.
package resolver
