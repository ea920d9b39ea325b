package dublincore

import (
	"fmt"
	"strings"

	"oai-dc-mapper/internal/common"
	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/xmltree"
)

// excludedSubject is never emitted as a dc:subject.
const excludedSubject = "Other"

// splitTrim splits text on commas and trims each part. Empty parts are kept.
func splitTrim(text string) []string {
	parts := strings.Split(text, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

// appendDefault emits dc:<field> for every stored value.
func appendDefault(_ *Engine, _ item.Item, field string, texts []item.TextValue, dc *xmltree.Element) error {
	for _, t := range texts {
		dc.AppendText(prefixDC, field, t.Text)
	}

	return nil
}

// appendDate emits dcterms:created from the first value.
func appendDate(_ *Engine, _ item.Item, _ string, texts []item.TextValue, dc *xmltree.Element) error {
	if text := item.FirstText(texts); text != "" {
		dc.AppendText(prefixDCTerms, "created", text)
	}

	return nil
}

// appendDescription emits dcterms:abstract from the first value.
func appendDescription(_ *Engine, _ item.Item, _ string, texts []item.TextValue, dc *xmltree.Element) error {
	if text := item.FirstText(texts); text != "" {
		dc.AppendText(prefixDCTerms, "abstract", text)
	}

	return nil
}

// appendIdentifier emits the display URL and, when the item has files, the
// first file's thumbnail. Stored identifier values are not used.
func appendIdentifier(e *Engine, it item.Item, _ string, _ []item.TextValue, dc *xmltree.Element) error {
	url, err := e.urls.DisplayURL(it)
	if err != nil {
		return fmt.Errorf("resolving display url: %w", err)
	}

	dc.AppendText(prefixDC, "identifier", url)

	files, err := it.Files()
	if err != nil {
		return fmt.Errorf("listing files: %w", err)
	}

	first, ok := common.First(files)
	if !ok {
		return nil
	}

	thumb, err := first.DerivativePath(item.DerivativeThumbnail)
	if err != nil {
		return fmt.Errorf("resolving thumbnail: %w", err)
	}

	dc.AppendText(prefixDCTerms, "hasFormat", thumb)

	return nil
}

// subjectTerms flattens comma separated subject values into distinct terms
// in order of first occurrence.
func subjectTerms(texts []item.TextValue) []string {
	var terms []string
	for _, t := range texts {
		terms = append(terms, splitTrim(t.Text)...)
	}

	return common.Unique(terms)
}

// appendSubjects emits one dc:subject per distinct term except "Other".
func appendSubjects(_ *Engine, _ item.Item, _ string, texts []item.TextValue, dc *xmltree.Element) error {
	for _, term := range subjectTerms(texts) {
		if term == excludedSubject {
			continue
		}

		dc.AppendText(prefixDC, "subject", term)
	}

	return nil
}
