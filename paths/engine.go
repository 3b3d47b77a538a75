package paths

import (
	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/cooccur"
	"go.uber.org/zap"
)

// Engine runs read-only path queries over one immutable cooccur.Graph.
// It holds no mutable state, so a single Engine may serve concurrent callers.
type Engine[E, G comparable] struct {
	graph *cooccur.Graph[E, G]
	opts  Options[E]
}

// NewEngine wraps g. Returns ErrGraphNil for a nil graph.
func NewEngine[E, G comparable](g *cooccur.Graph[E, G], opts ...Option[E]) (*Engine[E, G], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[E, G]{graph: g, opts: o}, nil
}

// Graph returns the wrapped graph.
func (e *Engine[E, G]) Graph() *cooccur.Graph[E, G] { return e.graph }

// Root returns the configured root entity, if any.
func (e *Engine[E, G]) Root() (E, bool) { return e.opts.root, e.opts.hasRoot }

// ActedTogether reports whether a and b share a group; see cooccur.Graph.ActedTogether.
func (e *Engine[E, G]) ActedTogether(a, b E) (bool, error) {
	return e.graph.ActedTogether(a, b)
}

// search runs the shared BFS primitive over the graph's co-members.
func (e *Engine[E, G]) search(origin E, goal bfs.Goal[E]) ([]E, error) {
	return bfs.Search(origin, goal, e.graph.Successors, bfs.WithContext[E](e.opts.Ctx))
}

// PathToEntity returns a shortest path from origin to target, both included.
// origin == target yields [origin] without touching the graph; an unreachable
// target yields nil. An origin without co-members fails with cooccur.ErrEntityNotFound.
func (e *Engine[E, G]) PathToEntity(origin, target E) ([]E, error) {
	if origin == target {
		return []E{origin}, nil
	}

	return e.search(origin, func(v E) bool { return v == target })
}

// PathToGoal returns a shortest path from origin to any entity satisfying goal.
// If origin satisfies goal the result is [origin]; if nothing reachable does, nil.
func (e *Engine[E, G]) PathToGoal(origin E, goal func(E) bool) ([]E, error) {
	if goal == nil {
		return nil, bfs.ErrNilFunc
	}
	if goal(origin) {
		return []E{origin}, nil
	}

	return e.search(origin, goal)
}

// PathBetweenGroups returns the shortest entity path that starts at a member
// of from and ends at a member of to, or nil if no member of from reaches to.
//
// Every member of from is tried with a full search, in membership order, and
// the first strictly shortest path wins. A member that also belongs to to
// short-circuits as a one-element path.
//
// Errors:
//   - cooccur.ErrGroupNotFound if either group is unknown.
//   - cooccur.ErrEntityNotFound (wrapped) if a member of from that is not in to
//     has no co-members.
//
// Complexity: O(|from| · (V + E)).
func (e *Engine[E, G]) PathBetweenGroups(from, to G) ([]E, error) {
	starts, err := e.graph.MemberSet(from)
	if err != nil {
		return nil, err
	}
	targets, err := e.graph.MemberSet(to)
	if err != nil {
		return nil, err
	}

	var best []E
	// every start gets a full search, even after a one-element hit, so ties keep membership order
	for start := range starts.All() {
		path, err := e.PathToGoal(start, targets.Contains)
		if err != nil {
			return nil, err
		}
		if path != nil && (best == nil || len(path) < len(best)) {
			best = path
		}
	}

	e.opts.Logger.Debug("group bridge resolved",
		zap.Any("from", from),
		zap.Any("to", to),
		zap.Int("candidates", starts.Len()),
		zap.Int("length", len(best)),
	)

	return best, nil
}

// GroupsForPath returns, for each consecutive pair of path, the earliest
// group in which the two co-occurred. A nil path yields nil; a path of fewer
// than two entities yields an empty slice. A hop between entities that share
// no group fails with cooccur.ErrNotCoMembers.
func (e *Engine[E, G]) GroupsForPath(path []E) ([]G, error) {
	if path == nil {
		return nil, nil
	}
	if len(path) < 2 {
		return []G{}, nil
	}
	out := make([]G, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		group, err := e.graph.FirstSharedGroup(path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, group)
	}

	return out, nil
}

// MoviePath returns the groups linking a shortest path from a to b,
// or nil when b is unreachable. a == b yields an empty slice.
func (e *Engine[E, G]) MoviePath(a, b E) ([]G, error) {
	path, err := e.PathToEntity(a, b)
	if err != nil {
		return nil, err
	}

	return e.GroupsForPath(path)
}

// Distance returns the hop count between a and b and whether b is reachable.
func (e *Engine[E, G]) Distance(a, b E) (int, bool, error) {
	path, err := e.PathToEntity(a, b)
	if err != nil || path == nil {
		return 0, false, err
	}

	return len(path) - 1, true, nil
}

// PathFromRoot returns a shortest path from the configured root to target.
func (e *Engine[E, G]) PathFromRoot(target E) ([]E, error) {
	if !e.opts.hasRoot {
		return nil, ErrNoRoot
	}

	return e.PathToEntity(e.opts.root, target)
}

// RootFrontier returns the entities exactly n hops from the configured root.
func (e *Engine[E, G]) RootFrontier(n int) ([]E, error) {
	if !e.opts.hasRoot {
		return nil, ErrNoRoot
	}

	return e.FrontierAtDistance(e.opts.root, n)
}
