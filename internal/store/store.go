package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"oai-dc-mapper/internal/item"
)

var (
	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoDriver is returned by Open in builds without cgo.
	ErrNoDriver = errors.New("sqlite backend is not available in non-cgo builds, rebuild with CGO_ENABLED=1")
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY,
	modified TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS element_sets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE COLLATE NOCASE
);
CREATE TABLE IF NOT EXISTS elements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	element_set_id INTEGER NOT NULL REFERENCES element_sets(id),
	name TEXT NOT NULL COLLATE NOCASE,
	UNIQUE (element_set_id, name)
);
CREATE TABLE IF NOT EXISTS element_texts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item_id INTEGER NOT NULL REFERENCES items(id),
	element_id INTEGER NOT NULL REFERENCES elements(id),
	position INTEGER NOT NULL,
	text TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS element_texts_item ON element_texts (item_id, element_id, position);
CREATE TABLE IF NOT EXISTS files (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item_id INTEGER NOT NULL REFERENCES items(id),
	position INTEGER NOT NULL,
	filename TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS files_item ON files (item_id, position);
`

// Store is a SQLite item store.
type Store struct {
	db          *sql.DB
	derivatives item.DerivativeResolver
}

// Open opens or creates the database at path. Files read back from the
// store resolve their derivatives through derivatives, which may be nil.
func Open(path string, derivatives item.DerivativeResolver) (*Store, error) {
	if !driverAvailable {
		return nil, ErrNoDriver
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	// SQLite allows a single writer; one connection also keeps ":memory:"
	// databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, derivatives: derivatives}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

// Put inserts or replaces rec.
func (s *Store) Put(ctx context.Context, rec *item.Record) error {
	return s.PutAll(ctx, []*item.Record{rec})
}

// PutAll inserts or replaces all records in one transaction.
func (s *Store) PutAll(ctx context.Context, recs []*item.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	for _, rec := range recs {
		if err := putRecord(ctx, tx, rec); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("item %d: %w", rec.RecordID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func putRecord(ctx context.Context, tx *sql.Tx, rec *item.Record) error {
	if rec.RecordID <= 0 {
		return fmt.Errorf("invalid id %d", rec.RecordID)
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO items (id, modified) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET modified = excluded.modified`,
		rec.RecordID, formatTime(rec.UpdatedAt))
	if err != nil {
		return fmt.Errorf("writing item: %w", err)
	}

	if err := deleteChildren(ctx, tx, rec.RecordID); err != nil {
		return err
	}

	elements := map[[2]string]int64{}

	for pos, et := range rec.Texts {
		key := [2]string{et.Set, et.Element}

		id, ok := elements[key]
		if !ok {
			id, err = elementID(ctx, tx, et.Set, et.Element)
			if err != nil {
				return err
			}

			elements[key] = id
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO element_texts (item_id, element_id, position, text) VALUES (?, ?, ?, ?)`,
			rec.RecordID, id, pos, et.Text)
		if err != nil {
			return fmt.Errorf("writing %s/%s: %w", et.Set, et.Element, err)
		}
	}

	for pos, f := range rec.Attached {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO files (item_id, position, filename) VALUES (?, ?, ?)`,
			rec.RecordID, pos, f.Filename)
		if err != nil {
			return fmt.Errorf("writing file %q: %w", f.Filename, err)
		}
	}

	return nil
}

func deleteChildren(ctx context.Context, tx *sql.Tx, id int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM element_texts WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("clearing texts: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("clearing files: %w", err)
	}

	return nil
}

// elementID returns the id of set/element, creating both rows as needed.
func elementID(ctx context.Context, tx *sql.Tx, set, element string) (int64, error) {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO element_sets (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, set)
	if err != nil {
		return 0, fmt.Errorf("writing element set %q: %w", set, err)
	}

	var setID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM element_sets WHERE name = ?`, set).Scan(&setID); err != nil {
		return 0, fmt.Errorf("reading element set %q: %w", set, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO elements (element_set_id, name) VALUES (?, ?)
		 ON CONFLICT(element_set_id, name) DO NOTHING`, setID, element)
	if err != nil {
		return 0, fmt.Errorf("writing element %q: %w", element, err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM elements WHERE element_set_id = ? AND name = ?`, setID, element).Scan(&id); err != nil {
		return 0, fmt.Errorf("reading element %q: %w", element, err)
	}

	return id, nil
}

// Delete removes the item with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := deleteChildren(ctx, tx, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("deleting item %d: %w", id, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}

	return tx.Commit()
}

// Count returns the number of stored items.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)

	return count, err
}

// IDs returns all item ids in ascending order.
func (s *Store) IDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Item returns a lazy handle to the item with the given id. Field values and
// files are read from the database on each call.
func (s *Store) Item(ctx context.Context, id int64) (*Handle, error) {
	var modified string

	err := s.db.QueryRowContext(ctx, `SELECT modified FROM items WHERE id = ?`, id).Scan(&modified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("reading item %d: %w", id, err)
	}

	t, err := parseTime(modified)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", id, err)
	}

	return &Handle{store: s, id: id, modified: t}, nil
}

// Record reads the item with the given id into memory.
func (s *Store) Record(ctx context.Context, id int64) (*item.Record, error) {
	h, err := s.Item(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := &item.Record{RecordID: id, UpdatedAt: h.modified}

	rows, err := s.db.QueryContext(ctx, `
		SELECT es.name, e.name, et.text FROM element_texts et
		JOIN elements e ON e.id = et.element_id
		JOIN element_sets es ON es.id = e.element_set_id
		WHERE et.item_id = ?
		ORDER BY et.position`, id)
	if err != nil {
		return nil, fmt.Errorf("reading texts of item %d: %w", id, err)
	}

	for rows.Next() {
		var et item.ElementText
		if err := rows.Scan(&et.Set, &et.Element, &et.Text); err != nil {
			rows.Close()
			return nil, err
		}

		rec.Texts = append(rec.Texts, et)
	}

	if err := rows.Close(); err != nil {
		return nil, err
	}

	names, err := s.filenames(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		rec.AddFile(name, s.derivatives)
	}

	return rec, nil
}

func (s *Store) filenames(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT filename FROM files WHERE item_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("reading files of item %d: %w", id, err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing modified time %q: %w", s, err)
	}

	return t, nil
}
