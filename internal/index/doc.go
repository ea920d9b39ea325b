// Package index keeps a Bleve full-text index of item texts so records can
// be selected by query before rendering.
//
// Each item is indexed as one document keyed by its decimal id. Dublin Core
// elements become lower-case fields (title, creator, subject, ...); item
// type elements are prefixed with "itemtype_". Queries use the Bleve query
// string syntax, so both free text and field scoped terms work:
//
//	harbor
//	subject:boats
//	+type:map itemtype_state:ma
package index
