// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("21. Sponge Cake\n"))
	writeFile(t, dir, "a.txt", []byte("1. Lemon Cake\r\nIngredients\r\n"))
	writeFile(t, dir, "notes.md", []byte("# not a recipe"))
	writeFile(t, dir, "c.TXT", []byte("case differs"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	listing, err := ReadDir(context.Background(), dir, "")
	require.NoError(t, err)

	require.Len(t, listing.Documents, 2)
	assert.Equal(t, "a.txt", listing.Documents[0].Name)
	assert.Equal(t, []string{"1. Lemon Cake", "Ingredients"}, listing.Documents[0].Lines)
	assert.Equal(t, filepath.Join(dir, "a.txt"), listing.Documents[0].Path)
	assert.Equal(t, "b.txt", listing.Documents[1].Name)
	assert.NoError(t, listing.Documents[1].Err)

	assert.ElementsMatch(t, []string{"notes.md", "c.TXT", "nested.txt"}, listing.Skipped)
}

func TestReadDirCustomExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.recipe", []byte("1. Cake"))
	writeFile(t, dir, "b.txt", []byte("2. Pie"))

	listing, err := ReadDir(context.Background(), dir, ".recipe")
	require.NoError(t, err)
	require.Len(t, listing.Documents, 1)
	assert.Equal(t, "a.recipe", listing.Documents[0].Name)
	assert.Equal(t, []string{"b.txt"}, listing.Skipped)
}

func TestReadDirMissing(t *testing.T) {
	_, err := ReadDir(context.Background(), filepath.Join(t.TempDir(), "nope"), "txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input directory")
}

func TestReadDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("1. Cake"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadDir(ctx, dir, "txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadLinesStripsUTF8BOM(t *testing.T) {
	got, err := ReadLines(strings.NewReader("\uFEFF1. Lemon Cake\nMethod"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Lemon Cake", "Method"}, got)
}

func TestReadLinesUTF16(t *testing.T) {
	// "1. ½" as UTF-16LE with a byte-order mark.
	data := []byte{0xFF, 0xFE, '1', 0, '.', 0, ' ', 0, 0xBD, 0x00}
	got, err := ReadLines(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, []string{"1. ½"}, got)
}

func TestReadLinesEmpty(t *testing.T) {
	got, err := ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
