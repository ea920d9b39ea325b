//go:build cgo

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oai-dc-mapper/internal/item"
)

type testDerivatives struct{}

func (testDerivatives) Path(filename, kind string) (string, error) {
	return kind + "/" + filename, nil
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "items.db"), testDerivatives{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sampleRecord() *item.Record {
	return (&item.Record{RecordID: 42, UpdatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}).
		Add(item.SetDublinCore, "Title", "Wharf", "Wharf, alternate").
		Add(item.SetDublinCore, "Subject", "Harbors").
		Add(item.SetItemType, "Location", "Bar Harbor").
		AddFile("wharf.tif", nil).
		AddFile("wharf-back.tif", nil)
}

func TestStore_PutAndItem(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, sampleRecord()))

	h, err := s.Item(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), h.ID())
	assert.True(t, h.Modified().Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))

	titles, err := h.FieldTexts(item.SetDublinCore, "title")
	require.NoError(t, err)
	assert.Equal(t, []item.TextValue{{Text: "Wharf"}, {Text: "Wharf, alternate"}}, titles)

	// Set and element names match case-insensitively.
	loc, err := h.FieldTexts("item type metadata", "LOCATION")
	require.NoError(t, err)
	assert.Equal(t, []item.TextValue{{Text: "Bar Harbor"}}, loc)

	missing, err := h.FieldTexts(item.SetDublinCore, "rights")
	require.NoError(t, err)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)

	files, err := h.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)

	thumb, err := files[0].DerivativePath(item.DerivativeThumbnail)
	require.NoError(t, err)
	assert.Equal(t, "thumbnail/wharf.tif", thumb)
}

func TestStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, sampleRecord()))

	updated := (&item.Record{RecordID: 42}).Add(item.SetDublinCore, "Title", "Renamed")
	require.NoError(t, s.Put(ctx, updated))

	rec, err := s.Record(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []item.ElementText{{Set: item.SetDublinCore, Element: "Title", Text: "Renamed"}}, rec.Texts)
	assert.Empty(t, rec.Attached)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_Record(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	want := sampleRecord()
	require.NoError(t, s.Put(ctx, want))

	got, err := s.Record(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want.Texts, got.Texts)
	require.Len(t, got.Attached, 2)
	assert.Equal(t, "wharf.tif", got.Attached[0].Filename)
	assert.Equal(t, "wharf-back.tif", got.Attached[1].Filename)
}

func TestStore_IDsAndDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.PutAll(ctx, []*item.Record{
		{RecordID: 7},
		{RecordID: 3},
		{RecordID: 12},
	}))

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 12}, ids)

	require.NoError(t, s.Delete(ctx, 7))
	require.ErrorIs(t, s.Delete(ctx, 7), ErrItemNotFound)

	_, err = s.Item(ctx, 7)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestStore_PutAllRollsBack(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	err := s.PutAll(ctx, []*item.Record{{RecordID: 1}, {RecordID: 0}})
	require.Error(t, err)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_ImportCatalog(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	c, err := ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)
	require.NoError(t, s.PutAll(ctx, c.Records(nil)))

	h, err := s.Item(ctx, 2)
	require.NoError(t, err)

	types, err := h.FieldTexts(item.SetDublinCore, "type")
	require.NoError(t, err)
	assert.Equal(t, []item.TextValue{{Text: "Map, Historical"}}, types)
}
