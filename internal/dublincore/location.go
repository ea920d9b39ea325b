package dublincore

import (
	"fmt"

	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/xmltree"
)

// Auxiliary location fields and display substitutions.
const (
	fieldState   = "State"
	fieldCountry = "Country"

	abbrevMDI       = "MDI"
	mountDesertIsle = "Mount Desert Island"
	stateMaine      = "ME"
	stateMaineName  = "Maine"
	homeCountry     = "USA"
)

// placeContext carries the state and country shared by all places of one
// location value.
type placeContext struct {
	State   string
	Country string
}

// qualify builds the spatial term for one place.
func (c placeContext) qualify(place string) string {
	composite := place
	if composite == abbrevMDI {
		composite = mountDesertIsle
	}

	if c.State != "" {
		state := c.State
		if state == stateMaine {
			state = stateMaineName
		}

		composite = joinPlace(composite, state)
	}

	if c.Country != "" && c.Country != homeCountry {
		composite = joinPlace(composite, c.Country)
	}

	return composite
}

// joinPlace appends part, separated by ", " only when base is non-empty.
func joinPlace(base, part string) string {
	if base == "" {
		return part
	}

	return base + ", " + part
}

// spatialTerms returns one qualified term per comma part of text. Empty
// parts are kept and still receive state and country.
func spatialTerms(text string, ctx placeContext) []string {
	parts := splitTrim(text)

	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = ctx.qualify(p)
	}

	return out
}

// appendLocation emits one dcterms:spatial per place in the first value.
// An empty value is one empty place and still carries state and country.
// An item with no location value at all yields nothing, not a term built
// from state and country alone.
func appendLocation(_ *Engine, it item.Item, _ string, texts []item.TextValue, dc *xmltree.Element) error {
	if len(texts) == 0 {
		return nil
	}

	state, err := it.FieldTexts(item.SetItemType, fieldState)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fieldState, err)
	}

	country, err := it.FieldTexts(item.SetItemType, fieldCountry)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fieldCountry, err)
	}

	ctx := placeContext{State: item.FirstText(state), Country: item.FirstText(country)}

	for _, term := range spatialTerms(item.FirstText(texts), ctx) {
		dc.AppendText(prefixDCTerms, "spatial", term)
	}

	return nil
}
