package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadParsesDocument(t *testing.T) {
	path := writeManifest(t, `{"name":"shop","version":"0.0.0","scripts":{"dev":"vite"}}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", doc["name"])
}

func TestLoadCorruptManifest(t *testing.T) {
	path := writeManifest(t, `{"name": "shop",`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadNullDocument(t *testing.T) {
	path := writeManifest(t, `null`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestMergeScriptsPreservesExistingValues(t *testing.T) {
	doc := Document{
		"name":    "shop",
		"version": "0.0.0",
		"scripts": map[string]any{"dev": "custom"},
	}

	added, err := doc.MergeScripts(map[string]string{"dev": "vite", "build": "vite build"})
	require.NoError(t, err)

	scripts, err := doc.Scripts()
	require.NoError(t, err)
	assert.Equal(t, "custom", scripts["dev"], "existing value must never be replaced")
	assert.Equal(t, "vite build", scripts["build"])
	assert.Equal(t, []string{"build"}, added)
}

func TestMergeScriptsCreatesTableWhenAbsent(t *testing.T) {
	doc := Document{"name": "shop", "version": "0.0.0"}

	added, err := doc.MergeScripts(map[string]string{"dev": "vite"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dev"}, added)

	scripts, err := doc.Scripts()
	require.NoError(t, err)
	assert.Equal(t, "vite", scripts["dev"])
}

func TestMergeScriptsRejectsNonObjectTable(t *testing.T) {
	doc := Document{"name": "shop", "scripts": "oops"}

	_, err := doc.MergeScripts(DesiredScripts())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestMergeIsNoOpOnFixedPoint(t *testing.T) {
	doc := Document{"name": "shop", "version": "0.0.0"}

	_, err := doc.MergeScripts(DesiredScripts())
	require.NoError(t, err)
	first, err := doc.Encode()
	require.NoError(t, err)

	added, err := doc.MergeScripts(DesiredScripts())
	require.NoError(t, err)
	assert.Empty(t, added)

	second, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second, "second merge must be byte-identical")
}

func TestEncodeDeterministic(t *testing.T) {
	doc := Document{
		"version": "1.2.3",
		"name":    "shop",
		"scripts": map[string]any{"test": "vitest run", "dev": "vite"},
	}

	a, err := doc.Encode()
	require.NoError(t, err)
	b, err := doc.Encode()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, byte('\n'), a[len(a)-1], "output must end with a newline")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := writeManifest(t, `{}`)
	doc := Document{"name": "shop", "version": "0.0.0"}

	require.NoError(t, doc.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", reloaded["name"])

	// No stray temp files left next to the manifest.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMergeFilePreservesUnrelatedKeys(t *testing.T) {
	path := writeManifest(t, `{
  "name": "shop",
  "version": "0.0.0",
  "private": true,
  "dependencies": {
    "react": "^19.0.0"
  },
  "scripts": {
    "test": "jest"
  }
}`)

	added, err := MergeFile(path, DesiredScripts())
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "dev", "format", "lint", "preview"}, added)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, true, doc["private"])

	deps, ok := doc["dependencies"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "^19.0.0", deps["react"])

	scripts, err := doc.Scripts()
	require.NoError(t, err)
	assert.Equal(t, "jest", scripts["test"], "user-chosen test runner must survive the re-run")
	assert.Equal(t, "vite", scripts["dev"])
}

func TestMergeFileCorruptLeavesFileUntouched(t *testing.T) {
	original := `{"name": "shop",`
	path := writeManifest(t, original)

	_, err := MergeFile(path, DesiredScripts())
	require.ErrorIs(t, err, ErrCorrupt)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data), "no mutation on parse failure")
}

func TestDesiredScriptsTable(t *testing.T) {
	desired := DesiredScripts()
	assert.Len(t, desired, 6)
	assert.Equal(t, "vite", desired["dev"])
	assert.Equal(t, "vite build", desired["build"])
	assert.Equal(t, "vite preview", desired["preview"])
	assert.Equal(t, "eslint .", desired["lint"])
	assert.Equal(t, "prettier --write .", desired["format"])
	assert.Equal(t, "vitest run", desired["test"])
}
