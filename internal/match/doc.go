// Package match suggests the closest known name for a misspelled one.
// Names are compared after normalization (case folded, separators removed)
// by normalized Levenshtein similarity.
package match
