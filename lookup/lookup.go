// Package lookup resolves human-readable names to graph identifiers and back.
//
// A Directory is built once from a name → id mapping and is read-only
// afterwards. Separate directories serve entities and groups, since their
// identifiers live in distinct namespaces.
//
// When several names map to the same id, Name returns the lexicographically
// smallest of them, so reverse lookups never depend on map iteration order.
package lookup

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownName is returned when a name is not in the directory.
	ErrUnknownName = errors.New("lookup: unknown name")

	// ErrUnknownID is returned when no name maps to an id.
	ErrUnknownID = errors.New("lookup: unknown id")
)

// Directory is an immutable bidirectional name ↔ id index.
type Directory[K comparable] struct {
	byName map[string]K
	byID   map[K]string
}

// NewDirectory indexes names. The input map is copied.
func NewDirectory[K comparable](names map[string]K) *Directory[K] {
	d := &Directory[K]{
		byName: make(map[string]K, len(names)),
		byID:   make(map[K]string, len(names)),
	}

	// sorted so the smallest name claims a shared id first
	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	for _, name := range keys {
		id := names[name]
		d.byName[name] = id
		if _, taken := d.byID[id]; !taken {
			d.byID[id] = name
		}
	}

	return d
}

// ID returns the id registered for name.
func (d *Directory[K]) ID(name string) (K, error) {
	id, ok := d.byName[name]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	return id, nil
}

// Name returns the name registered for id.
func (d *Directory[K]) Name(id K) (string, error) {
	name, ok := d.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownID, id)
	}

	return name, nil
}

// IDs resolves every name in order, stopping at the first unknown one.
func (d *Directory[K]) IDs(names []string) ([]K, error) {
	out := make([]K, 0, len(names))
	for _, name := range names {
		id, err := d.ID(name)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, nil
}

// Names resolves every id in order, stopping at the first unknown one.
// A nil input yields nil, so a missing path stays missing after translation.
func (d *Directory[K]) Names(ids []K) ([]string, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, err := d.Name(id)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}

	return out, nil
}

// Len returns the number of registered names.
func (d *Directory[K]) Len() int { return len(d.byName) }
