package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shapes/internal/shape"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoaderLoadAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.yaml"), "id: bravo\nshapes:\n  - {name: dot, glyph: b, rows: [1]}\n")
	writeFile(t, filepath.Join(root, "nested", "a.yml"), "id: alpha\nshapes:\n  - {name: dot, glyph: a, rows: [1]}\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "not a set")

	sets, err := NewLoader(root).LoadAll()
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "alpha", sets[0].ID)
	assert.Equal(t, "bravo", sets[1].ID)
	assert.Equal(t, filepath.Join(root, "nested", "a.yml"), sets[0].Source)
}

func TestLoaderSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.yaml")
	writeFile(t, path, "id: one\nshapes:\n  - {name: dot, glyph: o, rows: [1]}\n")

	sets, err := NewLoader(path).LoadAll()
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "one", sets[0].ID)
}

func TestLoaderRejectsMalformedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good.yaml"), "id: good\nshapes:\n  - {name: dot, glyph: g, rows: [1]}\n")
	writeFile(t, filepath.Join(root, "bad.yaml"), "id: bad\nshapes:\n  - {name: wide, glyph: w, rows: [4, 0]}\n")

	_, err := NewLoader(root).LoadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, shape.ErrDefinition)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll()
	assert.Error(t, err)
}
