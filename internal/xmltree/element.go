package xmltree

import (
	"strings"
)

// XSI namespace used for schema location declarations.
const (
	XSIPrefix    = "xsi"
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// Attr is a single attribute with a qualified name (e.g. "xmlns:dc").
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element under construction.
type Element struct {
	prefix   string
	local    string
	attrs    []Attr
	children []*Element
	text     string
}

// NewElement creates a detached element. An empty prefix produces an
// unqualified name.
func NewElement(prefix, local string) *Element {
	return &Element{prefix: prefix, local: local}
}

// NewTextElement creates a detached element holding character data.
func NewTextElement(prefix, local, text string) *Element {
	return &Element{prefix: prefix, local: local, text: text}
}

// Name returns the qualified element name.
func (e *Element) Name() string {
	if e.prefix == "" {
		return e.local
	}

	return e.prefix + ":" + e.local
}

// Prefix returns the namespace prefix.
func (e *Element) Prefix() string {
	return e.prefix
}

// Local returns the local part of the element name.
func (e *Element) Local() string {
	return e.local
}

// Text returns the character data of the element.
func (e *Element) Text() string {
	return e.text
}

// AppendChild appends child as the last child of e and returns the child.
func (e *Element) AppendChild(child *Element) *Element {
	e.children = append(e.children, child)
	return child
}

// AppendElement creates an empty child element and appends it.
func (e *Element) AppendElement(prefix, local string) *Element {
	return e.AppendChild(NewElement(prefix, local))
}

// AppendText creates a child element holding text and appends it.
func (e *Element) AppendText(prefix, local, text string) *Element {
	return e.AppendChild(NewTextElement(prefix, local, text))
}

// Children returns a copy of the child list in document order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)

	return out
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.children)
}

// Child returns the i-th child or nil when out of range.
func (e *Element) Child(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return nil
	}

	return e.children[i]
}

// SetAttr sets an attribute on e, replacing an existing value with the
// same qualified name. New attributes keep insertion order.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}

	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Attrs returns a copy of the attribute list.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)

	return out
}

// DeclareNamespace binds prefix to uri on e.
func (e *Element) DeclareNamespace(prefix, uri string) {
	if prefix == "" {
		e.SetAttr("xmlns", uri)
		return
	}

	e.SetAttr("xmlns:"+prefix, uri)
}

// DeclareSchemaLocation adds a namespace/schema pair to xsi:schemaLocation,
// declaring the xsi prefix when needed.
func (e *Element) DeclareSchemaLocation(namespace, schema string) {
	if _, ok := e.Attr("xmlns:" + XSIPrefix); !ok {
		e.DeclareNamespace(XSIPrefix, XSINamespace)
	}

	name := XSIPrefix + ":schemaLocation"
	pair := namespace + " " + schema

	current, ok := e.Attr(name)
	if !ok || current == "" {
		e.SetAttr(name, pair)
		return
	}

	e.SetAttr(name, strings.Join([]string{current, pair}, " "))
}

// Find returns the children whose qualified name equals name.
func (e *Element) Find(name string) []*Element {
	var out []*Element

	for _, c := range e.children {
		if c.Name() == name {
			out = append(out, c)
		}
	}

	return out
}
