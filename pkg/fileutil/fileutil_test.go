//go:build !integration

package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "process.xml")
	require.NoError(t, os.WriteFile(file, []byte("<process/>"), 0o644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir), "directories are not files")
	assert.False(t, FileExists(filepath.Join(dir, "missing.xml")))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.md")

	require.NoError(t, WriteFile(path, []byte("first run\n")))
	require.NoError(t, WriteFile(path, []byte("second\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	require.NoError(t, AppendFile(path, []byte("one\n")))
	require.NoError(t, AppendFile(path, []byte("two\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestAppendFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist", "summary.md")

	err := AppendFile(path, []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
