package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhowden/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oai-dc-mapper/internal/item"
)

// fakeTags implements the tag.Metadata methods read by recordFromTags.
type fakeTags struct {
	tag.Metadata

	title, artist, albumArtist, album, genre, comment string
	year                                              int
	fileType                                          tag.FileType
}

func (f fakeTags) Title() string          { return f.title }
func (f fakeTags) Artist() string         { return f.artist }
func (f fakeTags) AlbumArtist() string    { return f.albumArtist }
func (f fakeTags) Album() string          { return f.album }
func (f fakeTags) Genre() string          { return f.genre }
func (f fakeTags) Comment() string        { return f.comment }
func (f fakeTags) Year() int              { return f.year }
func (f fakeTags) FileType() tag.FileType { return f.fileType }

func TestRecordFromTags(t *testing.T) {
	m := fakeTags{
		title:       "Harbor Song",
		artist:      "Track Artist",
		albumArtist: "The Islanders",
		album:       "Tides",
		genre:       "Folk",
		comment:     "Recorded at the town hall",
		year:        1978,
		fileType:    tag.MP3,
	}

	rec := recordFromTags(m, "/music/harbor.mp3")

	assert.Equal(t, []item.ElementText{
		{Set: item.SetDublinCore, Element: "Title", Text: "Harbor Song"},
		{Set: item.SetDublinCore, Element: "Creator", Text: "The Islanders"},
		{Set: item.SetDublinCore, Element: "Subject", Text: "Folk"},
		{Set: item.SetDublinCore, Element: "Description", Text: "Recorded at the town hall"},
		{Set: item.SetDublinCore, Element: "Date", Text: "1978"},
		{Set: item.SetDublinCore, Element: "Type", Text: TypeSound},
		{Set: item.SetDublinCore, Element: "Source", Text: "Tides"},
		{Set: item.SetItemType, Element: "Original Format", Text: "MP3"},
	}, rec.Texts)
}

func TestRecordFromTags_Fallbacks(t *testing.T) {
	rec := recordFromTags(fakeTags{artist: "Solo"}, "/music/Low Tide.flac")

	assert.Equal(t, []item.ElementText{
		{Set: item.SetDublinCore, Element: "Title", Text: "Low Tide"},
		{Set: item.SetDublinCore, Element: "Creator", Text: "Solo"},
		{Set: item.SetDublinCore, Element: "Type", Text: TypeSound},
	}, rec.Texts)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.MP3"), "x")
	writeFile(t, filepath.Join(root, "a", "c.flac"), "x")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "cover.jpg"), "x")

	paths, err := Walk(root, DefaultExtensions)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "c.flac"),
		filepath.Join(root, "b.MP3"),
	}, paths)

	paths, err = Walk(root, []string{"TXT", ".jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "cover.jpg"),
		filepath.Join(root, "notes.txt"),
	}, paths)
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "absent"), DefaultExtensions)
	require.Error(t, err)
}

func TestDir_SkipsUntagged(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.mp3"), "this is not an audio file at all")
	writeFile(t, filepath.Join(root, "two.ogg"), "neither is this one, it has no tags")

	res, err := Dir(context.Background(), root, Options{Workers: 2})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, filepath.Join(root, "one.mp3"), res.Skipped[0].Path)
	assert.Error(t, res.Skipped[0].Err)
}

func TestFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Files(ctx, []string{"a.mp3"}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_Since(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := &Result{Records: []*item.Record{
		{RecordID: 1, UpdatedAt: base.Add(-time.Hour)},
		{RecordID: 2, UpdatedAt: base.Add(time.Hour)},
	}}

	got := res.Since(base)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].RecordID)
}
