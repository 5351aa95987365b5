package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"site.mox", "site"},
		{"/pages/site.mox", "site"},
		{"nested/dir/about.mox", "about"},
		{"noext", "noext"},
		{"two.dots.mox", "two.dots"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BaseName(tt.path), tt.path)
	}
}

func TestWriteDerivesNameFromSource(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("/somewhere/site.mox", []byte("content"), ".html")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "site.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	_, err = w.Write("site.mox", []byte("old"), ".gmi")
	require.NoError(t, err)
	path, err := w.Write("site.mox", []byte("new"), ".gmi")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestNewCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "deep")
	_, err := New(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
