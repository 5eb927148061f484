package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) (*FSSink, string, string) {
	t.Helper()

	dir := t.TempDir()
	successPath := filepath.Join(dir, "upload.log")
	errorPath := filepath.Join(dir, "error.log")

	sink, err := NewFileSink(successPath, errorPath)
	require.NoError(t, err)

	return sink, successPath, errorPath
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestNewFileSink_CreatesFiles(t *testing.T) {
	_, successPath, errorPath := newTestSink(t)

	assert.FileExists(t, successPath)
	assert.FileExists(t, errorPath)
}

func TestNewFileSink_BadPath(t *testing.T) {
	_, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "upload.log"), "error.log")
	assert.Error(t, err)
}

func TestFSSink_AppendLines(t *testing.T) {
	sink, successPath, errorPath := newTestSink(t)

	require.NoError(t, sink.AppendSuccess("https://gitlab.com/g/proj1"))
	require.NoError(t, sink.AppendSuccess("https://gitlab.com/g/proj2"))
	require.NoError(t, sink.AppendError("Failed to create project a: boom - "))

	assert.Equal(t, "https://gitlab.com/g/proj1\nhttps://gitlab.com/g/proj2\n", readFile(t, successPath))
	assert.Equal(t, "Failed to create project a: boom - \n", readFile(t, errorPath))
}

func TestFSSink_ResetOnlyTruncatesSuccessLog(t *testing.T) {
	sink, successPath, errorPath := newTestSink(t)

	require.NoError(t, sink.AppendSuccess("first"))
	require.NoError(t, sink.AppendError("old error"))

	require.NoError(t, sink.ResetSuccessLog())
	require.NoError(t, sink.AppendSuccess("second"))
	require.NoError(t, sink.AppendError("new error"))

	assert.Equal(t, "second\n", readFile(t, successPath))
	assert.Equal(t, "old error\nnew error\n", readFile(t, errorPath))
}

func TestNewFileSink_KeepsExistingErrorLog(t *testing.T) {
	dir := t.TempDir()
	errorPath := filepath.Join(dir, "error.log")
	require.NoError(t, os.WriteFile(errorPath, []byte("from last run\n"), LogFilePerm))

	sink, err := NewFileSink(filepath.Join(dir, "upload.log"), errorPath)
	require.NoError(t, err)
	require.NoError(t, sink.AppendError("this run"))

	assert.Equal(t, "from last run\nthis run\n", readFile(t, errorPath))
}
