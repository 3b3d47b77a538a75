package cooccur

import "go.uber.org/zap"

// Build consumes relation in a single pass and returns the frozen Graph.
//
// Implementation:
//   - Stage 1: Apply options; an invalid option aborts with ErrOptionViolation.
//   - Stage 2: For every triple, add both entities to the membership set of its group.
//   - Stage 3: Skip edge creation for self-pairs (A == B).
//   - Stage 4: Get-or-insert the pair's shared group set and add the group to it.
//
// Duplicate triples are absorbed by the sets. The order of the relation only
// affects iteration order, never the resulting structure.
//
// Complexity: O(len(relation)) amortized time and space.
func Build[E, G comparable](relation []Triple[E, G], opts ...Option) (*Graph[E, G], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Graph[E, G]{
		adjacency: make(map[E]*neighborhood[E, G], o.Capacity),
		entities:  make([]E, 0, o.Capacity),
		members:   make(map[G]*Set[E]),
	}
	for _, t := range relation {
		g.addMembership(t.Group, t.A, t.B)
		if t.A == t.B {
			continue
		}
		g.link(t.A, t.B, t.Group)
	}

	o.Logger.Debug("co-occurrence graph built",
		zap.Int("records", len(relation)),
		zap.Int("entities", len(g.entities)),
		zap.Int("groups", len(g.groups)),
		zap.Int("pairs", g.edges),
	)

	return g, nil
}

// addMembership records a and b as members of group.
func (g *Graph[E, G]) addMembership(group G, a, b E) {
	set, ok := g.members[group]
	if !ok {
		set = newSet[E]()
		g.members[group] = set
		g.groups = append(g.groups, group)
	}
	set.add(a)
	set.add(b)
}

// link adds group to the set shared by a and b, creating the pair on first sight.
// Both directions receive the same *Set so they can never diverge.
func (g *Graph[E, G]) link(a, b E, group G) {
	na := g.neighborhoodOf(a)
	shared, ok := na.shared[b]
	if !ok {
		shared = newSet[G]()
		na.shared[b] = shared
		na.peers = append(na.peers, b)

		nb := g.neighborhoodOf(b)
		nb.shared[a] = shared
		nb.peers = append(nb.peers, a)
		g.edges++
	}
	shared.add(group)
}

// neighborhoodOf returns the neighborhood of e, inserting an empty one if absent.
func (g *Graph[E, G]) neighborhoodOf(e E) *neighborhood[E, G] {
	n, ok := g.adjacency[e]
	if !ok {
		n = &neighborhood[E, G]{shared: make(map[E]*Set[G])}
		g.adjacency[e] = n
		g.entities = append(g.entities, e)
	}

	return n
}
