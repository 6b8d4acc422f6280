package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))
	}
}

func TestDiscover_Directories(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"a.go",
		"sub/b.go",
		"sub/b_test.go",
		"vendor/c.go",
		".hidden/d.go",
		"_skip/e.go",
		"testdata/f.go",
		"README.md",
	)

	files, err := Discover(context.Background(), root, filepath.Join(root, "a.go"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.go"),
		filepath.Join(root, "sub", "b.go"),
		filepath.Join(root, "sub", "b_test.go"),
	}, files)
}

func TestDiscover_IgnoresNonGoFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notes.txt")

	files, err := Discover(context.Background(), filepath.Join(root, "notes.txt"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWriteFile_KeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n"), 0o600))

	require.NoError(t, WriteFile(path, []byte("package b\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(data))
}
