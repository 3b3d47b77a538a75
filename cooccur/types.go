// Package cooccur declares the Triple, Set and Graph types, the Build
// options, and the sentinel errors returned by graph lookups.
package cooccur

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for graph lookups.
var (
	// ErrEntityNotFound indicates an entity has no adjacency entry.
	ErrEntityNotFound = errors.New("cooccur: entity not found")

	// ErrGroupNotFound indicates a group never appeared in the relation.
	ErrGroupNotFound = errors.New("cooccur: group not found")

	// ErrNotCoMembers indicates two entities share no group.
	ErrNotCoMembers = errors.New("cooccur: entities are not co-members")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cooccur: invalid option supplied")
)

// Triple is one record of the raw relation: entities A and B took part in Group.
// A == B is allowed and only contributes to group membership.
type Triple[E, G comparable] struct {
	A     E
	B     E
	Group G
}

// neighborhood holds the co-members of one entity in first-seen order,
// each mapped to the group set shared with that co-member.
type neighborhood[E, G comparable] struct {
	peers  []E
	shared map[E]*Set[G]
}

// Graph is the immutable co-occurrence graph produced by Build.
type Graph[E, G comparable] struct {
	adjacency map[E]*neighborhood[E, G]
	entities  []E // adjacency keys in first-seen order

	members map[G]*Set[E]
	groups  []G // membership keys in first-seen order

	edges int // unordered co-member pairs
}

// Option configures Build via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*BuildOptions)

// BuildOptions holds the parameters of a single Build call.
type BuildOptions struct {
	// Logger receives a debug summary once the relation is consumed.
	Logger *zap.Logger

	// Capacity, if > 0, pre-sizes the adjacency map.
	Capacity int

	err error
}

// DefaultOptions returns BuildOptions with a no-op logger and no pre-sizing.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Logger:   zap.NewNop(),
		Capacity: 0,
	}
}

// WithLogger sets the logger used for the build summary.
func WithLogger(l *zap.Logger) Option {
	return func(o *BuildOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCapacity pre-sizes the adjacency map for n entities.
//
//	n > 0: pre-size
//	n == 0: let the map grow on demand
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *BuildOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}
