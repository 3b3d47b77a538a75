// Package bfs provides a generic breadth-first shortest-path search,
// decoupled from any concrete graph representation.
//
// What
//
//   - Search(origin, isGoal, successors) returns the shortest sequence of
//     vertices from origin to the first discovered vertex satisfying isGoal,
//     both endpoints included.
//   - Distances(origin, successors) returns the hop distance of every
//     vertex reachable from origin.
//   - Vertices are any comparable type; neighbors come from a Successors
//     function, so callers plug in maps, adjacency lists or graph methods.
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - One primitive serves point-to-point, point-to-predicate and
//     set-to-set queries by varying the goal predicate.
//
// Agenda
//
//	Search keeps an agenda of full paths and a read cursor that only moves
//	forward. Paths are appended as vertices are discovered, and the cursor
//	walks them in FIFO order. Nothing is ever removed from the front, so a
//	long agenda costs no re-slicing, and the path to the goal is ready the
//	moment the goal is discovered.
//
// Semantics
//
//   - The origin itself is never tested against isGoal; callers that accept
//     a zero-hop answer check it before calling Search.
//   - A vertex is enqueued at most once, at its true shortest distance.
//   - "No path" is (nil, nil), distinct from any found path (length ≥ 2).
//   - Ties between equally short paths follow successor order.
//
// Complexity (V, E = reachable vertices, edges)
//
//   - Time:   O(V + E) successor visits, plus path copies.
//   - Memory: O(V · d) for the agenda, d = average depth.
//
// Options
//
//   - WithContext(ctx):   stop with ctx.Err() once ctx is done.
//   - WithMaxDepth(d):    do not expand paths with d or more hops (d > 0).
//   - WithOnEnqueue(fn):  hook called for every vertex added to the agenda.
//
// Errors
//
//   - ErrNilFunc          if isGoal or successors is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative depth).
//   - ErrSuccessors       wraps any error returned by successors.
//   - ctx.Err()           on cancellation.
package bfs
