// Package dublincore maps item records into the oai_dc metadata format.
//
// Engine.AppendMetadata appends one oai_dc:dc element to a caller-supplied
// <metadata> element. The first child is always the institutional
// dc:contributor; the remaining children follow the crosswalk rule order,
// each field handled by the handler its rule names:
//
//   - default: every stored value as dc:<field>
//   - identifier: dc:identifier with the display URL, then dcterms:hasFormat
//     with the first file's thumbnail
//   - subject: comma split, first-occurrence dedup, "Other" dropped
//   - type: Article/Document/Publication become Text, Map becomes Image with
//     format Map; Article and Map stop further format parts
//   - date: dcterms:created
//   - description: dcterms:abstract
//   - location: one dcterms:spatial per comma part, qualified with State and
//     Country from the item type metadata
//
// The engine is immutable after New and keeps no state between calls.
// Collaborator errors are returned wrapped; elements appended before the
// failure stay in the output.
package dublincore
