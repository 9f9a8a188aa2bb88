package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spinapp/spin/internal/core"
)

// Library enumerates folders and tracks under a music root directory.
type Library struct {
	root string
	exts map[string]struct{}
}

// New creates a Library rooted at the given directory. Extensions are
// matched case-insensitively and must include the leading dot.
func New(root string, extensions []string) *Library {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Library{
		root: root,
		exts: exts,
	}
}

// Root returns the library root directory.
func (l *Library) Root() string {
	return l.root
}

// Folders returns the sorted names of non-hidden directories under the root.
func (l *Library) Folders() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read library root: %w", err)
	}

	var folders []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		folders = append(folders, e.Name())
	}
	sort.Strings(folders)
	return folders, nil
}

// Tracks returns the de-duplicated, sorted tracks in a folder. Only files
// with a supported extension are included.
func (l *Library) Tracks(folder string) ([]core.Track, error) {
	dir := filepath.Join(l.root, folder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", folder, err)
	}

	seen := make(map[string]struct{})
	var tracks []core.Track
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := l.exts[ext]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tracks = append(tracks, core.NewTrack(filepath.Join(dir, name)))
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Name < tracks[j].Name
	})
	return tracks, nil
}
