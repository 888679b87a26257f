package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")

	require.NoError(t, WriteFile(path, []byte("# Changelog\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Changelog\n", string(data))
}

func TestWriteFile_OverwritesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0o644))

	require.NoError(t, WriteFile(path, []byte("new\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "CHANGELOG.md")

	err := WriteFile(path, []byte("x"))
	assert.Error(t, err)
}

func TestWriteFile_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")

	require.NoError(t, WriteFile(path, []byte("content\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CHANGELOG.md", entries[0].Name())
}
