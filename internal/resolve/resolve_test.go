package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oai-dc-mapper/internal/item"
)

func TestNewURLs_RequiresAbsolute(t *testing.T) {
	for _, base := range []string{"", "example.org", "/items", "://bad"} {
		t.Run(base, func(t *testing.T) {
			_, err := NewURLs(base)
			require.Error(t, err)
		})
	}
}

func TestURLs_DisplayURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://example.org", "https://example.org/items/show/42"},
		{"https://example.org/", "https://example.org/items/show/42"},
		{"https://example.org/archive", "https://example.org/archive/items/show/42"},
		{" https://example.org/archive/ ", "https://example.org/archive/items/show/42"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			urls, err := NewURLs(tt.base)
			require.NoError(t, err)

			got, err := urls.DisplayURL(&item.Record{RecordID: 42})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivatives_Path(t *testing.T) {
	d, err := NewDerivatives("https://example.org/files")
	require.NoError(t, err)

	tests := []struct {
		kind string
		want string
	}{
		{item.DerivativeOriginal, "https://example.org/files/original/scan%20001.tif"},
		{item.DerivativeFullsize, "https://example.org/files/fullsize/scan%20001.jpg"},
		{item.DerivativeThumbnail, "https://example.org/files/thumbnails/scan%20001.jpg"},
		{item.DerivativeSquareThumbnail, "https://example.org/files/square_thumbnails/scan%20001.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := d.Path("scan 001.tif", tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivatives_Errors(t *testing.T) {
	d, err := NewDerivatives("https://example.org/files")
	require.NoError(t, err)

	_, err = d.Path("a.tif", "poster")
	require.ErrorIs(t, err, ErrUnknownDerivative)

	_, err = d.Path("", item.DerivativeThumbnail)
	require.Error(t, err)
}

func TestDerivatives_WithRecord(t *testing.T) {
	d, err := NewDerivatives("https://example.org/files/")
	require.NoError(t, err)

	rec := (&item.Record{}).AddFile("photo.png", d)
	files, err := rec.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)

	got, err := files[0].DerivativePath(item.DerivativeThumbnail)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/files/thumbnails/photo.jpg", got)
}
