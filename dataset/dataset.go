// Package dataset decodes the raw relation and the name directories from
// YAML documents. JSON is a subset of YAML, so JSON exports load unchanged.
//
// Relation documents are a sequence of [actor, actor, film] integer records:
//
//	- [4724, 1640, 9045]
//	- [1640, 1640, 9045]
//
// Directory documents map names to integer ids:
//
//	Kevin Bacon: 4724
//	Bryn Dowling: 1175130
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/costar/cooccur"
	"github.com/katalvlaran/costar/lookup"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDecode wraps YAML syntax and type errors.
	ErrDecode = errors.New("dataset: decode failed")

	// ErrMalformedRecord is returned for a relation record that is not exactly three ids.
	ErrMalformedRecord = errors.New("dataset: malformed record")
)

// recordArity is the number of fields in a relation record.
const recordArity = 3

// LoadRelation decodes a relation document. An empty document yields an empty relation.
func LoadRelation(r io.Reader) ([]cooccur.Triple[int, int], error) {
	var raw [][]int
	if err := decode(r, &raw); err != nil {
		return nil, err
	}

	rel := make([]cooccur.Triple[int, int], 0, len(raw))
	for i, rec := range raw {
		if len(rec) != recordArity {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrMalformedRecord, i, len(rec), recordArity)
		}
		rel = append(rel, cooccur.Triple[int, int]{A: rec[0], B: rec[1], Group: rec[2]})
	}

	return rel, nil
}

// LoadDirectory decodes a name → id document.
func LoadDirectory(r io.Reader) (*lookup.Directory[int], error) {
	var names map[string]int
	if err := decode(r, &names); err != nil {
		return nil, err
	}

	return lookup.NewDirectory(names), nil
}

// LoadRelationFile opens path and decodes it with LoadRelation.
func LoadRelationFile(path string) ([]cooccur.Triple[int, int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open relation: %w", err)
	}
	defer f.Close()

	return LoadRelation(f)
}

// LoadDirectoryFile opens path and decodes it with LoadDirectory.
func LoadDirectoryFile(path string) (*lookup.Directory[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open directory: %w", err)
	}
	defer f.Close()

	return LoadDirectory(f)
}

func decode(r io.Reader, out any) error {
	err := yaml.NewDecoder(r).Decode(out)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
}
