// Package item defines the read-only view of a metadata record consumed by
// the crosswalk engine, plus an in-memory Record implementation.
//
// An Item exposes multi-valued element texts addressed by element set and
// element name, and an ordered list of attached files. Texts keep storage
// order; nothing here reorders or deduplicates values.
package item
