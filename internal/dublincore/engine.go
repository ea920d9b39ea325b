package dublincore

import (
	"errors"
	"fmt"

	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/mapping"
	"oai-dc-mapper/internal/xmltree"
)

// URLResolver yields the canonical, absolute display URL of an item.
type URLResolver interface {
	DisplayURL(it item.Item) (string, error)
}

// handlerFunc appends the output of one field to dc.
type handlerFunc func(e *Engine, it item.Item, field string, texts []item.TextValue, dc *xmltree.Element) error

// Engine is the oai_dc crosswalk. It is safe for concurrent use when the
// items and resolver it is given are.
type Engine struct {
	urls     URLResolver
	bindings []mapping.Binding[handlerFunc]
}

// handlers returns the registry of built-in handlers.
func handlers() *mapping.Registry[handlerFunc] {
	r := mapping.NewRegistry[handlerFunc]()
	r.Add(mapping.HandlerDefault, appendDefault)
	r.Add(mapping.HandlerIdentifier, appendIdentifier)
	r.Add(mapping.HandlerSubject, appendSubjects)
	r.Add(mapping.HandlerType, appendType)
	r.Add(mapping.HandlerDate, appendDate)
	r.Add(mapping.HandlerDescription, appendDescription)
	r.Add(mapping.HandlerLocation, appendLocation)

	return r
}

// Handlers returns the handler kinds a crosswalk may bind, in ascending
// order.
func Handlers() []mapping.HandlerKind {
	return handlers().Kinds()
}

// New creates an engine for the default crosswalk.
func New(urls URLResolver) (*Engine, error) {
	return NewWithCrosswalk(urls, mapping.DefaultCrosswalk())
}

// NewWithCrosswalk creates an engine for cw. The crosswalk must validate
// without errors.
func NewWithCrosswalk(urls URLResolver, cw *mapping.Crosswalk) (*Engine, error) {
	if urls == nil {
		return nil, errors.New("url resolver is nil")
	}

	if diags := mapping.Validate(cw); !diags.IsValid() {
		return nil, fmt.Errorf("invalid crosswalk: %w", diags.Error())
	}

	bindings, err := handlers().Bind(cw)
	if err != nil {
		return nil, fmt.Errorf("binding crosswalk: %w", err)
	}

	return &Engine{urls: urls, bindings: bindings}, nil
}

// Rules returns the bound rules in output order.
func (e *Engine) Rules() []mapping.Rule {
	out := make([]mapping.Rule, len(e.bindings))
	for i, b := range e.bindings {
		out[i] = b.Rule
	}

	return out
}

// AppendMetadata appends one oai_dc:dc element describing it to metadata.
func (e *Engine) AppendMetadata(it item.Item, metadata *xmltree.Element) error {
	dc := metadata.AppendElement(MetadataPrefix, "dc")
	dc.DeclareNamespace(MetadataPrefix, MetadataNamespace)
	dc.DeclareNamespace(prefixDC, DCNamespace)
	dc.DeclareNamespace(prefixDCTerms, DCTermsNamespace)
	dc.DeclareSchemaLocation(MetadataNamespace, MetadataSchema)

	dc.AppendText(prefixDC, "contributor", Contributor)

	for _, b := range e.bindings {
		texts, err := it.FieldTexts(b.Rule.Set, b.Rule.Field)
		if err != nil {
			return fmt.Errorf("item %d: reading %s/%s: %w", it.ID(), b.Rule.Set, b.Rule.Field, err)
		}

		if err := b.Handler(e, it, b.Rule.Field, texts, dc); err != nil {
			return fmt.Errorf("item %d: mapping %s: %w", it.ID(), b.Rule.Field, err)
		}
	}

	return nil
}
