package paths

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for engine configuration and queries.
var (
	// ErrGraphNil is returned if a nil graph is passed to NewEngine.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrNoRoot is returned by root-based queries when no root was configured.
	ErrNoRoot = errors.New("paths: no root entity configured")

	// ErrNegativeDistance is returned for a negative frontier distance.
	ErrNegativeDistance = errors.New("paths: distance cannot be negative")
)

// Option configures an Engine.
type Option[E comparable] func(*Options[E])

// Options holds Engine configuration.
// The root entity is only settable through WithRoot, which also marks it present.
type Options[E comparable] struct {
	root    E
	hasRoot bool

	// Ctx bounds every search run by the engine.
	Ctx context.Context

	// Logger receives debug summaries of group and frontier queries.
	Logger *zap.Logger
}

// DefaultOptions returns Options without a root, with a background
// context and a no-op logger.
func DefaultOptions[E comparable]() Options[E] {
	return Options[E]{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithRoot sets the root entity used by RootFrontier and PathFromRoot.
func WithRoot[E comparable](root E) Option[E] {
	return func(o *Options[E]) {
		o.root = root
		o.hasRoot = true
	}
}

// WithContext sets the context passed to every search.
// A nil ctx keeps the current one.
func WithContext[E comparable](ctx context.Context) Option[E] {
	return func(o *Options[E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger[E comparable](l *zap.Logger) Option[E] {
	return func(o *Options[E]) {
		if l != nil {
			o.Logger = l
		}
	}
}
