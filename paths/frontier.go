package paths

import (
	"fmt"

	"go.uber.org/zap"
)

// FrontierAtDistance returns the entities whose shortest distance from origin
// is exactly n hops, in discovery order.
//
// Implementation:
//   - Stage 1: n == 0 returns [origin] without a lookup.
//   - Stage 2: Expand level by level; a global seen set holds every entity of
//     the levels processed so far, so an entity joins only the frontier of its
//     true distance.
//   - Stage 3: Stop at level n, or as soon as a level comes out empty; the
//     (possibly empty) frontier just built is the answer.
//
// Errors:
//   - ErrNegativeDistance for n < 0.
//   - cooccur.ErrEntityNotFound if n > 0 and origin has no co-members.
//   - the engine context error on cancellation.
func (e *Engine[E, G]) FrontierAtDistance(origin E, n int) ([]E, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDistance, n)
	}
	if n == 0 {
		return []E{origin}, nil
	}

	seen := map[E]struct{}{origin: {}}
	current := []E{origin}
	for level := 1; ; level++ {
		if err := e.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		next := make([]E, 0, len(current))
		for _, v := range current {
			peers, err := e.graph.Successors(v)
			if err != nil {
				return nil, err
			}
			for _, p := range peers {
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				next = append(next, p)
			}
		}

		if level == n || len(next) == 0 {
			e.opts.Logger.Debug("frontier computed",
				zap.Any("origin", origin),
				zap.Int("distance", n),
				zap.Int("reached", level),
				zap.Int("size", len(next)),
			)
			return next, nil
		}
		current = next
	}
}
