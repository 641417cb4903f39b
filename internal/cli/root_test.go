package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitegen-labs/vitegen/internal/generator"
)

// chdir changes the working directory for the duration of the test,
// matching t.Chdir, which needs a newer Go toolchain than is available here.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestRunGenerateMissingArgument(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := runGenerate(rootCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrInvalidName)
	assert.Equal(t, ExitMissingArgument, ExitCodeFor(err))

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "missing argument must not touch the filesystem")
}

func TestRunGenerateRejectsUnsafeName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := runGenerate(rootCmd, []string{"../escape"})
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrInvalidName)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
