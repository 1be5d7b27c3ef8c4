package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// bookmarksFileName matches the storage key the web frontend uses.
const bookmarksFileName = "factnet_bookmarks.json"

// BookmarkStore keeps a local set of bookmarked article ids, persisted to a
// JSON file. Bookmarks never leave the client machine.
type BookmarkStore struct {
	mu   sync.Mutex
	path string
	ids  map[string]bool
}

// DefaultBookmarkPath returns the bookmark file location under the user
// config directory.
func DefaultBookmarkPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "factnet", bookmarksFileName), nil
}

// OpenBookmarkStore loads the bookmark set at path, creating an empty store
// when the file does not exist yet.
func OpenBookmarkStore(path string) (*BookmarkStore, error) {
	s := &BookmarkStore{
		path: path,
		ids:  make(map[string]bool),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s, nil
}

// Add bookmarks an article id. It reports whether the id was newly added.
func (s *BookmarkStore) Add(articleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[articleID] {
		return false, nil
	}
	s.ids[articleID] = true
	return true, s.save()
}

// Remove drops a bookmark. It reports whether the id was present.
func (s *BookmarkStore) Remove(articleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids[articleID] {
		return false, nil
	}
	delete(s.ids, articleID)
	return true, s.save()
}

// Contains reports whether an article id is bookmarked.
func (s *BookmarkStore) Contains(articleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[articleID]
}

// List returns all bookmarked ids in sorted order.
func (s *BookmarkStore) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *BookmarkStore) save() error {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
