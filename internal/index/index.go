package index

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"

	"oai-dc-mapper/internal/item"
)

// Index is a Bleve index of item records.
type Index struct {
	index bleve.Index
}

// Open opens the index at path, creating it when it does not exist.
func Open(path string) (*Index, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		idx, err := bleve.New(path, bleve.NewIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("creating index %s: %w", path, err)
		}

		return &Index{index: idx}, nil
	}

	idx, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}

	return &Index{index: idx}, nil
}

// OpenMem creates an in-memory index.
func OpenMem() (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating memory index: %w", err)
	}

	return &Index{index: idx}, nil
}

// Close closes the index.
func (x *Index) Close() error {
	if x.index != nil {
		return x.index.Close()
	}

	return nil
}

// document flattens the texts of rec into index fields.
func document(rec *item.Record) map[string]any {
	doc := map[string]any{}

	for _, et := range rec.Texts {
		name := fieldName(et.Set, et.Element)

		switch v := doc[name].(type) {
		case nil:
			doc[name] = et.Text
		case string:
			doc[name] = []string{v, et.Text}
		case []string:
			doc[name] = append(v, et.Text)
		}
	}

	return doc
}

// fieldName returns the index field of set/element.
func fieldName(set, element string) string {
	name := strings.ToLower(strings.Join(strings.Fields(element), "_"))
	if strings.EqualFold(set, item.SetDublinCore) {
		return name
	}

	prefix := strings.ToLower(strings.Join(strings.Fields(set), ""))
	prefix = strings.TrimSuffix(prefix, "metadata")

	return prefix + "_" + name
}

// IndexRecords adds or replaces recs in one batch.
func (x *Index) IndexRecords(recs []*item.Record) error {
	batch := x.index.NewBatch()

	for _, rec := range recs {
		if err := batch.Index(docID(rec.RecordID), document(rec)); err != nil {
			return fmt.Errorf("indexing item %d: %w", rec.RecordID, err)
		}
	}

	return x.index.Batch(batch)
}

// Delete removes the item with the given id.
func (x *Index) Delete(id int64) error {
	return x.index.Delete(docID(id))
}

// Count returns the number of indexed items.
func (x *Index) Count() (int, error) {
	c, err := x.index.DocCount()

	return int(c), err
}

// Search returns the ids of items matching query in ascending order. An
// empty query matches every item. limit <= 0 returns every match.
func (x *Index) Search(query string, limit int) ([]int64, error) {
	var q bleveQuery.Query
	if strings.TrimSpace(query) == "" {
		q = bleve.NewMatchAllQuery()
	} else {
		q = bleve.NewQueryStringQuery(query)
	}

	if limit <= 0 {
		count, err := x.index.DocCount()
		if err != nil {
			return nil, fmt.Errorf("counting documents: %w", err)
		}

		limit = int(count)
	}

	req := bleve.NewSearchRequest(q)
	req.Size = limit
	req.Fields = []string{}

	res, err := x.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	ids := make([]int64, 0, len(res.Hits))

	for _, hit := range res.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed document id %q: %w", hit.ID, err)
		}

		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids, nil
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}
