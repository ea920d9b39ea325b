package dublincore

import (
	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/xmltree"
)

// Primary type values with special handling.
const (
	typeArticle     = "Article"
	typeDocument    = "Document"
	typePublication = "Publication"
	typeMap         = "Map"

	dcmiText  = "Text"
	dcmiImage = "Image"
)

// typeTerm is one output element of the type handler.
type typeTerm struct {
	local string // "type" or "format"
	value string
}

// classifyType maps a comma separated type value to dc:type and dc:format
// terms. The first part selects the primary type; Article and Map are
// terminal and drop any remaining parts, every other primary type lets the
// remaining parts through as formats.
func classifyType(text string) []typeTerm {
	var out []typeTerm

	stop := false

	for i, part := range splitTrim(text) {
		if stop {
			break
		}

		if i > 0 {
			out = append(out, typeTerm{"format", part})
			continue
		}

		switch part {
		case typeArticle:
			out = append(out, typeTerm{"type", dcmiText})
			stop = true
		case typeDocument, typePublication:
			out = append(out, typeTerm{"type", dcmiText})
		case typeMap:
			out = append(out, typeTerm{"type", dcmiImage}, typeTerm{"format", typeMap})
			stop = true
		default:
			out = append(out, typeTerm{"type", part})
		}
	}

	return out
}

// appendType emits the classified dc:type and dc:format elements from the
// first value. An empty value is classified like any other and yields
// dc:type "". An item with no type value at all yields nothing rather than
// being treated as an empty value.
func appendType(_ *Engine, _ item.Item, _ string, texts []item.TextValue, dc *xmltree.Element) error {
	if len(texts) == 0 {
		return nil
	}

	for _, term := range classifyType(item.FirstText(texts)) {
		dc.AppendText(prefixDC, term.local, term.value)
	}

	return nil
}
