package store

import (
	"context"
	"fmt"
	"time"

	"oai-dc-mapper/internal/item"
)

// Handle is a lazy item backed by the store.
type Handle struct {
	store    *Store
	id       int64
	modified time.Time
}

var (
	_ item.Item    = (*Handle)(nil)
	_ item.Stamped = (*Handle)(nil)
)

// ID implements item.Item.
func (h *Handle) ID() int64 {
	return h.id
}

// Modified implements item.Stamped.
func (h *Handle) Modified() time.Time {
	return h.modified
}

// FieldTexts implements item.Item.
func (h *Handle) FieldTexts(set, field string) ([]item.TextValue, error) {
	rows, err := h.store.db.Query(`
		SELECT et.text FROM element_texts et
		JOIN elements e ON e.id = et.element_id
		JOIN element_sets es ON es.id = e.element_set_id
		WHERE et.item_id = ? AND es.name = ? AND e.name = ?
		ORDER BY et.position`, h.id, set, field)
	if err != nil {
		return nil, fmt.Errorf("querying %s/%s: %w", set, field, err)
	}
	defer rows.Close()

	out := []item.TextValue{}

	for rows.Next() {
		var tv item.TextValue
		if err := rows.Scan(&tv.Text); err != nil {
			return nil, err
		}

		out = append(out, tv)
	}

	return out, rows.Err()
}

// Files implements item.Item.
func (h *Handle) Files() ([]item.FileRef, error) {
	names, err := h.store.filenames(context.Background(), h.id)
	if err != nil {
		return nil, err
	}

	out := make([]item.FileRef, 0, len(names))
	for _, name := range names {
		out = append(out, item.File{Filename: name, Resolver: h.store.derivatives})
	}

	return out, nil
}
