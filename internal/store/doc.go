// Package store persists item records in SQLite and reads them back as
// lazy item handles for the Dublin Core engine.
//
// # Tables
//
// The layout follows the element-set model of digital collection catalogs:
//
//	items          (id, modified)
//	element_sets   (id, name)              -- "Dublin Core", "Item Type Metadata"
//	elements       (id, element_set_id, name)
//	element_texts  (id, item_id, element_id, position, text)
//	files          (id, item_id, position, filename)
//
// Set and element names compare case-insensitively. Positions keep the
// storage order of texts and files.
//
// # Catalog Files
//
// A catalog is a YAML file of items that can be imported into the store:
//
//	version: "1"
//	items:
//	  - id: 42
//	    modified: 2024-03-01T10:00:00Z
//	    texts:
//	      Dublin Core:
//	        Title: [Wharf at low tide]
//	        Subject: ["Harbors, Boats"]
//	      Item Type Metadata:
//	        Location: [Bar Harbor]
//	        State: [ME]
//	    files: [wharf.tif]
//
// The SQLite driver requires cgo. Builds without cgo compile, but Open
// returns ErrNoDriver.
package store
