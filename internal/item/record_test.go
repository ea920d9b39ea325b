package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{}

func (stubResolver) Path(filename, kind string) (string, error) {
	return "/files/" + kind + "/" + filename, nil
}

func TestRecord_FieldTexts(t *testing.T) {
	r := &Record{RecordID: 7}
	r.Add(SetDublinCore, "Subject", "Places, Town").
		Add(SetDublinCore, "Title", "Harbor").
		Add(SetDublinCore, "subject", "Places, Shore").
		Add(SetItemType, "Location", "Bar Harbor")

	texts, err := r.FieldTexts("dublin core", "subject")
	require.NoError(t, err)
	assert.Equal(t, []TextValue{{Text: "Places, Town"}, {Text: "Places, Shore"}}, texts)

	loc, err := r.FieldTexts(SetItemType, "location")
	require.NoError(t, err)
	assert.Equal(t, "Bar Harbor", FirstText(loc))

	// location lives in a different set
	none, err := r.FieldTexts(SetDublinCore, "location")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.Equal(t, int64(7), r.ID())
}

func TestRecord_Files(t *testing.T) {
	r := &Record{}
	files, err := r.Files()
	require.NoError(t, err)
	assert.Empty(t, files)

	r.AddFile("a.tif", stubResolver{}).AddFile("b.tif", stubResolver{})

	files, err = r.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)

	p, err := files[0].DerivativePath(DerivativeThumbnail)
	require.NoError(t, err)
	assert.Equal(t, "/files/thumbnail/a.tif", p)
}

func TestFile_NoResolver(t *testing.T) {
	_, err := File{Filename: "x.jpg"}.DerivativePath(DerivativeThumbnail)
	require.ErrorIs(t, err, ErrNoResolver)
	assert.Contains(t, err.Error(), "x.jpg")
}

func TestFirstText(t *testing.T) {
	assert.Empty(t, FirstText(nil))
	assert.Equal(t, "a", FirstText([]TextValue{{Text: "a"}, {Text: "b"}}))
}
