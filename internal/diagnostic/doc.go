// Package diagnostic provides structured warnings, errors, and notes
// produced while validating crosswalks and checking catalog items.
//
// Key capabilities:
//   - Crosswalk validation errors (duplicate fields, unknown handlers)
//   - Per-item warnings for fields that will produce no output
//   - Aggregation across many items with Merge
package diagnostic
