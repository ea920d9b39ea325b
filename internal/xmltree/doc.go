// Package xmltree provides an append-only XML element tree for building
// namespaced metadata documents.
//
// Elements are created with a namespace prefix and a local name and are
// written out with qualified names exactly as given. Children, once
// appended, are never removed or reordered, so document order is always
// append order.
//
// Key operations:
//   - NewElement / AppendChild / AppendText: build the tree
//   - DeclareNamespace / DeclareSchemaLocation / SetAttr: root decorations
//   - Encode / EncodeIndent: serialize through encoding/xml
package xmltree
