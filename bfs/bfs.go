// Package bfs provides a generic breadth-first shortest-path search
// over any successor function.
package bfs

import "fmt"

// searcher encapsulates mutable Search state.
type searcher[V comparable] struct {
	opts       Options[V]
	isGoal     Goal[V]
	successors Successors[V]
	agenda     [][]V
	cursor     int
	seen       map[V]struct{}
}

// Search returns the shortest path from origin to a vertex satisfying isGoal,
// origin and goal included, or nil when no reachable vertex qualifies.
// The origin is not tested against isGoal.
// Returns ErrNilFunc, ErrOptionViolation, a wrapped ErrSuccessors,
// or the context error on cancellation.
func Search[V comparable](origin V, isGoal Goal[V], successors Successors[V], opts ...Option[V]) ([]V, error) {
	if isGoal == nil || successors == nil {
		return nil, ErrNilFunc
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	s := &searcher[V]{
		opts:       o,
		isGoal:     isGoal,
		successors: successors,
		agenda:     [][]V{{origin}},
		seen:       map[V]struct{}{origin: {}},
	}

	return s.loop()
}

// loop advances the cursor over the agenda until a goal is discovered,
// the agenda is exhausted, or an error occurs.
func (s *searcher[V]) loop() ([]V, error) {
	for s.cursor < len(s.agenda) {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		path := s.agenda[s.cursor]
		s.cursor++
		if found, err := s.expand(path); found != nil || err != nil {
			return found, err
		}
	}

	return nil, nil
}

// expand extends path by every unseen successor of its last vertex.
// It returns the extended path as soon as one of them is a goal.
func (s *searcher[V]) expand(path []V) ([]V, error) {
	depth := len(path) - 1
	if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
		return nil, nil
	}
	last := path[depth]
	next, err := s.successors(last)
	if err != nil {
		return nil, fmt.Errorf("%w: expanding %v: %w", ErrSuccessors, last, err)
	}
	for _, nbr := range next {
		if _, ok := s.seen[nbr]; ok {
			continue
		}
		s.seen[nbr] = struct{}{}
		extended := extend(path, nbr)
		if s.isGoal(nbr) {
			return extended, nil
		}
		s.opts.OnEnqueue(nbr, depth+1)
		s.agenda = append(s.agenda, extended)
	}

	return nil, nil
}

// extend returns a fresh copy of path with v appended, so agenda entries never share backing arrays.
func extend[V comparable](path []V, v V) []V {
	out := make([]V, len(path)+1)
	copy(out, path)
	out[len(path)] = v

	return out
}

// Distances returns the hop distance from origin to every vertex it can reach,
// origin included at distance 0. With MaxDepth d > 0, vertices farther
// than d hops are left out; OnEnqueue fires once per discovered vertex.
func Distances[V comparable](origin V, successors Successors[V], opts ...Option[V]) (map[V]int, error) {
	if successors == nil {
		return nil, ErrNilFunc
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	dist := map[V]int{origin: 0}
	queue := []V{origin}
	for head := 0; head < len(queue); head++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := queue[head]
		d := dist[cur]
		if o.MaxDepth > 0 && d >= o.MaxDepth {
			continue
		}
		next, err := successors(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: expanding %v: %w", ErrSuccessors, cur, err)
		}
		for _, nbr := range next {
			if _, ok := dist[nbr]; ok {
				continue
			}
			dist[nbr] = d + 1
			o.OnEnqueue(nbr, d+1)
			queue = append(queue, nbr)
		}
	}

	return dist, nil
}
