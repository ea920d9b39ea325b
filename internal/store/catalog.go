package store

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"oai-dc-mapper/internal/diagnostic"
	"oai-dc-mapper/internal/item"
)

// Catalog is the root of a catalog file.
type Catalog struct {
	// Version of the catalog schema.
	Version string `yaml:"version,omitempty"`

	// Items in file order.
	Items []CatalogItem `yaml:"items"`
}

// CatalogItem is one item of a catalog file.
type CatalogItem struct {
	ID       int64     `yaml:"id"`
	Modified time.Time `yaml:"modified,omitempty"`

	// Texts maps element set name to element name to values.
	Texts map[string]map[string][]string `yaml:"texts,omitempty"`

	// Files are stored file names in order.
	Files []string `yaml:"files,omitempty"`
}

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return ParseCatalog(data)
}

// ParseCatalog parses catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyCatalogDefaults(&c)

	return &c, nil
}

// applyCatalogDefaults fills in the version and trims set and element names.
func applyCatalogDefaults(c *Catalog) {
	if c.Version == "" {
		c.Version = "1"
	}

	for i := range c.Items {
		it := &c.Items[i]
		if it.Texts == nil {
			continue
		}

		texts := make(map[string]map[string][]string, len(it.Texts))

		for set, fields := range it.Texts {
			set = strings.TrimSpace(set)
			if texts[set] == nil {
				texts[set] = map[string][]string{}
			}

			for field, values := range fields {
				field = strings.TrimSpace(field)
				texts[set][field] = append(texts[set][field], values...)
			}
		}

		it.Texts = texts
	}
}

// MarshalCatalog serializes a catalog to YAML.
func MarshalCatalog(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteCatalog writes a catalog to path.
func WriteCatalog(c *Catalog, path string) error {
	data, err := MarshalCatalog(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

// Validate reports structural problems of the catalog.
func (c *Catalog) Validate() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	seen := map[int64]bool{}

	for _, it := range c.Items {
		scope := fmt.Sprintf("item %d", it.ID)

		if it.ID <= 0 {
			diags.AddError("invalid_id", "item id must be positive", scope, "id")
			continue
		}

		if seen[it.ID] {
			diags.AddError("duplicate_id", "item id appears more than once", scope, "id")
		}

		seen[it.ID] = true

		if it.Modified.IsZero() {
			diags.AddWarning("no_modified", "item has no modification time", scope, "modified")
		}

		for _, f := range it.Files {
			if strings.TrimSpace(f) == "" {
				diags.AddError("empty_file", "file name is empty", scope, "files")
			}
		}
	}

	return diags
}

// Records converts the catalog to records. Sets and elements are ordered by
// name; values keep their file order.
func (c *Catalog) Records(derivatives item.DerivativeResolver) []*item.Record {
	out := make([]*item.Record, 0, len(c.Items))

	for _, ci := range c.Items {
		rec := &item.Record{RecordID: ci.ID, UpdatedAt: ci.Modified}

		for _, set := range sortedKeys(ci.Texts) {
			fields := ci.Texts[set]
			for _, field := range sortedKeys(fields) {
				rec.Add(set, field, fields[field]...)
			}
		}

		for _, f := range ci.Files {
			rec.AddFile(f, derivatives)
		}

		out = append(out, rec)
	}

	return out
}

// CatalogFromRecords builds a catalog holding recs.
func CatalogFromRecords(recs []*item.Record) *Catalog {
	c := &Catalog{Version: "1"}

	for _, rec := range recs {
		ci := CatalogItem{ID: rec.RecordID, Modified: rec.UpdatedAt}

		for _, et := range rec.Texts {
			if ci.Texts == nil {
				ci.Texts = map[string]map[string][]string{}
			}

			if ci.Texts[et.Set] == nil {
				ci.Texts[et.Set] = map[string][]string{}
			}

			ci.Texts[et.Set][et.Element] = append(ci.Texts[et.Set][et.Element], et.Text)
		}

		for _, f := range rec.Attached {
			ci.Files = append(ci.Files, f.Filename)
		}

		c.Items = append(c.Items, ci)
	}

	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
