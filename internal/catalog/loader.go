package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads user set files from a directory tree or a single file.
type Loader struct {
	Root string
}

// NewLoader creates a new set loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every .yaml/.yml file under Root (or Root itself when it is
// a file). A malformed file fails the whole load.
// Returns sets sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Set, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		s, err := l.LoadFile(l.Root)
		if err != nil {
			return nil, err
		}
		return []Set{s}, nil
	}

	var result []Set
	err = filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		s, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		result = append(result, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// LoadFile loads a single set file.
func (l *Loader) LoadFile(p string) (Set, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Set{}, fmt.Errorf("catalog: reading file %s: %w", p, err)
	}

	s, err := ParseYAML(data)
	if err != nil {
		return Set{}, fmt.Errorf("catalog: parsing file %s: %w", p, err)
	}
	s.Source = p
	return s, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
