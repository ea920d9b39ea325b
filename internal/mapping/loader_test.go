package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oai-dc-mapper/internal/item"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
rules:
  - field: Title
  - field: subject
    handler: subject
  - field: location
    set: Item Type Metadata
    handler: location
`

	cw, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cw)

	assert.Equal(t, "1", cw.Version)
	require.Len(t, cw.Rules, 3)

	// Defaults applied, field lower-cased
	assert.Equal(t, Rule{Field: "title", Set: item.SetDublinCore, Handler: HandlerDefault}, cw.Rules[0])
	assert.Equal(t, HandlerSubject, cw.Rules[1].Handler)
	assert.Equal(t, item.SetItemType, cw.Rules[2].Set)
	assert.Equal(t, HandlerLocation, cw.Rules[2].Handler)
	assert.Equal(t, []string{"title", "subject", "location"}, cw.Fields())
}

func TestParse_DefaultVersion(t *testing.T) {
	cw, err := Parse([]byte("rules: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", cw.Version)
	assert.Empty(t, cw.Rules)
}

func TestParse_UnknownHandler(t *testing.T) {
	yaml := `
rules:
  - field: title
    handler: uppercase
`
	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown handler "uppercase"`)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("rules: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse crosswalk YAML")
}

func TestMarshal_RoundTripDefault(t *testing.T) {
	data, err := Marshal(DefaultCrosswalk())
	require.NoError(t, err)
	assert.Contains(t, string(data), "handler: identifier")
	assert.Contains(t, string(data), "set: Item Type Metadata")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultCrosswalk(), back)
}

func TestWriteFileAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosswalk.yaml")
	require.NoError(t, WriteFile(DefaultCrosswalk(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	cw, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCrosswalk().Fields(), cw.Fields())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
