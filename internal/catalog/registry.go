package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// SetInfo contains metadata about a registered set.
type SetInfo struct {
	ID     string
	Title  string
	Count  int
	Source string
}

var (
	sets = make(map[string]Set)
	mu   sync.RWMutex
)

// Register adds a set to the registry.
// Panics if the set is invalid or a set with the same ID is already registered.
func Register(s Set) {
	if err := s.Validate(); err != nil {
		panic(err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := sets[s.ID]; exists {
		panic(fmt.Sprintf("catalog: set %q already registered", s.ID))
	}
	sets[s.ID] = s
}

// Add registers a set loaded at runtime, returning an error instead of
// panicking when the ID is taken.
func Add(s Set) error {
	if err := s.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if existing, exists := sets[s.ID]; exists {
		return fmt.Errorf("catalog: set %q from %s already defined by %s", s.ID, s.Source, existing.Source)
	}
	sets[s.ID] = s
	return nil
}

// List returns information about all registered sets, sorted by ID.
func List() []SetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SetInfo, 0, len(sets))
	for id, s := range sets {
		result = append(result, SetInfo{
			ID:     id,
			Title:  s.Title,
			Count:  len(s.Shapes),
			Source: s.Source,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the set registered under id.
func Get(id string) (Set, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sets[id]
	if !ok {
		return Set{}, fmt.Errorf("catalog: unknown set %q", id)
	}
	return s, nil
}

// Exists checks if a set with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sets[id]
	return ok
}
