package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Write(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "animals.html")

	sink := NewSink(out, nil)
	require.NoError(t, sink.Write(context.Background(), "<html>zoo</html>"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<html>zoo</html>", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover temp file %s", e.Name())
	}
}

func TestSink_Write_Overwrites(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "animals.html")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0644))

	sink := NewSink(out, nil)
	require.NoError(t, sink.Write(context.Background(), "new"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSink_Write_CreatesParentDirs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public", "pages", "animals.html")

	sink := NewSink(out, nil)
	require.NoError(t, sink.Write(context.Background(), "page"))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}
