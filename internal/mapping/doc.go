// Package mapping provides the crosswalk definition that drives the Dublin
// Core engine: an ordered list of rules binding a record field to an element
// set and a named handler, a YAML loader for crosswalk files, a generic
// handler registry, and structural validation.
//
// # Schema Overview
//
// A crosswalk file has the following structure:
//
//	version: "1"
//	rules:
//	  - field: title                 # handler defaults to "default"
//	  - field: subject
//	    handler: subject
//	  - field: location
//	    set: Item Type Metadata      # set defaults to "Dublin Core"
//	    handler: location
//
// Rule order is output order. Field names are normalized to lower case
// because the default handler emits them verbatim as dc:<field> elements.
//
// # Handler Kinds
//
//   - default: one dc:<field> per stored value
//   - identifier: display URL plus first file thumbnail
//   - subject: comma split, first-occurrence dedup, "Other" dropped
//   - type: classification with early termination
//   - date: dcterms:created from the first value
//   - description: dcterms:abstract from the first value
//   - location: per-place dcterms:spatial with state and country
//
// # Registry
//
// Registry binds handler kinds to implementations once, at setup. Bind
// resolves every rule of a crosswalk and fails if any kind is unregistered,
// so dispatch never branches on field names at render time.
package mapping
