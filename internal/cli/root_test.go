package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oai-dc-mapper/internal/mapping"
)

// testConfig writes a config file pointing the store and index into a temp
// directory and returns its path.
func testConfig(t *testing.T, extra string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "database: " + filepath.Join(dir, "items.db") + "\n" +
		"index: " + filepath.Join(dir, "items.bleve") + "\n" +
		"base_url: https://example.org\n" +
		"files_url: https://example.org/files\n" +
		"repository_id: shpl\n" +
		"workers: 2\n" + extra

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var err error

	out := testboil.CaptureStdout(t, func(t *testing.T) {
		err = Execute(context.Background(), args)
	})

	return out, err
}

func TestCrosswalk_WriteAndReload(t *testing.T) {
	cfg := testConfig(t, "")
	path := filepath.Join(t.TempDir(), "crosswalk.yaml")

	_, err := execute(t, "crosswalk", "--config", cfg, "--handlers=false", "--default", "--write", path)
	require.NoError(t, err)

	cw, err := mapping.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mapping.DefaultCrosswalk(), cw)
}

func TestCrosswalk_ConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosswalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - field: title\n  - field: rights\n"), 0o644))

	cfg := testConfig(t, "crosswalk: "+path+"\n")

	out, err := execute(t, "crosswalk", "--config", cfg, "--handlers=false", "--default=false", "--write", "")
	require.NoError(t, err)
	testboil.AssertStringContains(t, out, "field: rights")
	assert.NotContains(t, out, "field: location")
}

func TestCrosswalk_Handlers(t *testing.T) {
	cfg := testConfig(t, "")

	out, err := execute(t, "crosswalk", "--config", cfg, "--handlers")
	require.NoError(t, err)
	testboil.FailTestIfDiff(t, out, "default\nidentifier\nsubject\ntype\ndate\ndescription\nlocation\n")

	_, err = execute(t, "crosswalk", "--config", cfg, "--handlers=false", "--write", "")
	require.NoError(t, err)
}

func TestCheck_InvalidCrosswalk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosswalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - field: title\n  - field: Title\n"), 0o644))

	cfg := testConfig(t, "crosswalk: "+path+"\n")

	out, err := execute(t, "check", "--config", cfg, "--crosswalk-only")
	require.Error(t, err)
	testboil.AssertStringContains(t, out, "duplicate_field")
}

func TestCheck_CrosswalkOnly(t *testing.T) {
	cfg := testConfig(t, "")

	out, err := execute(t, "check", "--config", cfg, "--crosswalk-only", "--quiet=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "error")
}

func TestCheck_SuggestsElement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosswalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - field: identifier\n    handler: identifier\n  - field: creater\n"), 0o644))

	cfg := testConfig(t, "crosswalk: "+path+"\n")

	out, err := execute(t, "check", "--config", cfg, "--crosswalk-only", "--quiet=false")
	require.NoError(t, err)
	testboil.AssertStringContains(t, out, "unknown_element")
	testboil.AssertStringContains(t, out, `did you mean "creator"?`)
}

func TestFormats(t *testing.T) {
	cfg := testConfig(t, "")

	out, err := execute(t, "formats", "--config", cfg, "--indent", "")
	require.NoError(t, err)
	testboil.AssertStringContains(t, out, `<request verb="ListMetadataFormats">https://example.org</request>`)
	testboil.AssertStringContains(t, out, "<metadataPrefix>oai_dc</metadataPrefix>")
	testboil.AssertStringContains(t, out, "<metadataNamespace>http://www.openarchives.org/OAI/2.0/oai_dc/</metadataNamespace>")
}

func TestRoot_BadConfig(t *testing.T) {
	cfg := testConfig(t, "")
	t.Setenv("OAIDC_WORKERS", "0")

	_, err := execute(t, "crosswalk", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestRender_BadID(t *testing.T) {
	cfg := testConfig(t, "")

	_, err := execute(t, "render", "--config", cfg, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid item id "abc"`)
}
