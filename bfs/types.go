// Package bfs provides tunable options and error definitions
// for the generic breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilFunc is returned when the goal or successor function is nil.
	ErrNilFunc = errors.New("bfs: goal and successor functions are required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrSuccessors wraps errors returned by a Successors function.
	ErrSuccessors = errors.New("bfs: successor lookup failed")
)

// Goal reports whether a vertex ends the search.
type Goal[V comparable] func(V) bool

// Successors returns the neighbors of a vertex.
// The returned slice is only read, never retained or modified.
type Successors[V comparable] func(V) ([]V, error)

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded internally and surfaced
// as ErrOptionViolation when the search starts.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks of a single search.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is added to the agenda,
	// with its distance from the origin.
	OnEnqueue func(v V, depth int)

	// MaxDepth, if > 0, stops expanding paths that already have MaxDepth hops.
	// A value of 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context,
// a no-op hook and no depth limit.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:       context.Background(),
		OnEnqueue: func(V, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxDepth bounds the number of hops explored.
//
//	d > 0: paths longer than d hops are never built
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

func buildOptions[V comparable](opts []Option[V]) (Options[V], error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
