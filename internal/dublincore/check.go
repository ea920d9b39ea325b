package dublincore

import (
	"fmt"

	"oai-dc-mapper/internal/diagnostic"
	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/mapping"
)

// fieldTitle is the field whose absence is reported as a warning.
const fieldTitle = "title"

// Check reports fields of it that will map to nothing. A read failure is an
// error; a missing title is a warning; other empty fields are infos.
func (e *Engine) Check(it item.Item) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	scope := fmt.Sprintf("item %d", it.ID())

	for _, b := range e.bindings {
		texts, err := it.FieldTexts(b.Rule.Set, b.Rule.Field)
		if err != nil {
			diags.AddError("read_failed", err.Error(), scope, b.Rule.Field)
			continue
		}

		if !mapsToNothing(b.Rule.Handler, texts) {
			continue
		}

		if b.Rule.Field == fieldTitle {
			diags.AddWarning("missing_title", "item has no title", scope, b.Rule.Field)
			continue
		}

		diags.AddInfo("empty_field", fmt.Sprintf("no value for %s", b.Rule), scope, b.Rule.Field)
	}

	return diags
}

// mapsToNothing reports whether the handler of kind emits no element for
// texts.
func mapsToNothing(kind mapping.HandlerKind, texts []item.TextValue) bool {
	switch kind {
	case mapping.HandlerIdentifier:
		// mapped from the display url
		return false
	case mapping.HandlerDate, mapping.HandlerDescription:
		return item.FirstText(texts) == ""
	default:
		return len(texts) == 0
	}
}
