package patch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Set is the immutable collection of patch documents for one run, loaded
// once from a patch directory. Document order is the lexical walk order of
// the tree, so processing is deterministic.
type Set struct {
	Root      string
	Documents []Document
}

// LoadSet reads every file under root into a patch document keyed by its
// path relative to root.
func LoadSet(root string) (*Set, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patch directory: %w", err)
	}

	set := &Set{Root: absRoot}
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read patch document %s: %w", path, err)
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}

		set.Documents = append(set.Documents, Document{
			Path:    filepath.ToSlash(rel),
			Content: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load patch directory %s: %w", root, err)
	}

	return set, nil
}

// Len returns the number of documents in the set.
func (s *Set) Len() int {
	return len(s.Documents)
}
