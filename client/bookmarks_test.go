package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkStore_AddRemoveList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factnet_bookmarks.json")

	store, err := OpenBookmarkStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.List())

	added, err := store.Add("abc123")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add("abc123")
	require.NoError(t, err)
	assert.False(t, added, "second add of the same id")

	_, err = store.Add("def456")
	require.NoError(t, err)

	assert.True(t, store.Contains("abc123"))
	assert.False(t, store.Contains("zzz"))
	assert.Equal(t, []string{"abc123", "def456"}, store.List())

	removed, err := store.Remove("abc123")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove("abc123")
	require.NoError(t, err)
	assert.False(t, removed, "removing an id that is not present")

	assert.Equal(t, []string{"def456"}, store.List())
}

func TestBookmarkStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factnet_bookmarks.json")

	store, err := OpenBookmarkStore(path)
	require.NoError(t, err)
	_, err = store.Add("abc123")
	require.NoError(t, err)
	_, err = store.Add("def456")
	require.NoError(t, err)

	reopened, err := OpenBookmarkStore(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123", "def456"}, reopened.List())
}

func TestBookmarkStore_MissingFileIsEmpty(t *testing.T) {
	store, err := OpenBookmarkStore(filepath.Join(t.TempDir(), "nope", "factnet_bookmarks.json"))
	require.NoError(t, err)
	assert.Empty(t, store.List())
}

func TestBookmarkStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factnet_bookmarks.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := OpenBookmarkStore(path)
	require.Error(t, err)
}
