// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Every slice-returning method yields first-seen order.
// Errors:
//   - Absent entities → ErrEntityNotFound; absent groups → ErrGroupNotFound.
//   - Nothing here falls back to a zero value for an unknown id.

package cooccur

import "fmt"

// HasEntity reports whether e has at least one co-member.
func (g *Graph[E, G]) HasEntity(e E) bool {
	_, ok := g.adjacency[e]
	return ok
}

// HasGroup reports whether group appeared in the relation.
func (g *Graph[E, G]) HasGroup(group G) bool {
	_, ok := g.members[group]
	return ok
}

// ActedTogether reports whether a and b co-occurred in at least one group.
// Every entity co-occurs with itself, so a == b is true without any lookup.
// Otherwise a must be present in the graph; b need not be.
//
// Errors:
//   - ErrEntityNotFound: a != b and a has no adjacency entry.
//
// Complexity: O(1)
func (g *Graph[E, G]) ActedTogether(a, b E) (bool, error) {
	if a == b {
		return true, nil
	}
	n, err := g.lookup(a)
	if err != nil {
		return false, err
	}
	_, ok := n.shared[b]

	return ok, nil
}

// Successors returns the co-members of e in first-seen order.
// The returned slice is owned by the graph and must not be modified;
// use CoMembers for a private copy. The signature matches bfs.Successors.
//
// Errors:
//   - ErrEntityNotFound: e has no adjacency entry.
func (g *Graph[E, G]) Successors(e E) ([]E, error) {
	n, err := g.lookup(e)
	if err != nil {
		return nil, err
	}

	return n.peers, nil
}

// CoMembers returns a copy of the co-members of e in first-seen order.
func (g *Graph[E, G]) CoMembers(e E) ([]E, error) {
	peers, err := g.Successors(e)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(peers))
	copy(out, peers)

	return out, nil
}

// GroupSet returns the set of groups shared by a and b.
// The same *Set is returned for (a, b) and (b, a).
//
// Errors:
//   - ErrEntityNotFound: a has no adjacency entry.
//   - ErrNotCoMembers:   b is not a co-member of a.
func (g *Graph[E, G]) GroupSet(a, b E) (*Set[G], error) {
	n, err := g.lookup(a)
	if err != nil {
		return nil, err
	}
	shared, ok := n.shared[b]
	if !ok {
		return nil, fmt.Errorf("%w: %v and %v", ErrNotCoMembers, a, b)
	}

	return shared, nil
}

// SharedGroups returns a copy of the groups shared by a and b in first-seen order.
func (g *Graph[E, G]) SharedGroups(a, b E) ([]G, error) {
	shared, err := g.GroupSet(a, b)
	if err != nil {
		return nil, err
	}

	return shared.Values(), nil
}

// FirstSharedGroup returns the earliest group, in relation order, that linked a and b.
func (g *Graph[E, G]) FirstSharedGroup(a, b E) (G, error) {
	shared, err := g.GroupSet(a, b)
	if err != nil {
		var zero G
		return zero, err
	}
	first, _ := shared.First() // never empty: a pair exists only once a group was added

	return first, nil
}

// MemberSet returns the membership set of group.
//
// Errors:
//   - ErrGroupNotFound: group never appeared in the relation.
func (g *Graph[E, G]) MemberSet(group G) (*Set[E], error) {
	set, ok := g.members[group]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrGroupNotFound, group)
	}

	return set, nil
}

// Members returns a copy of the members of group in first-seen order.
func (g *Graph[E, G]) Members(group G) ([]E, error) {
	set, err := g.MemberSet(group)
	if err != nil {
		return nil, err
	}

	return set.Values(), nil
}

// IsMember reports whether e took part in group.
func (g *Graph[E, G]) IsMember(group G, e E) (bool, error) {
	set, err := g.MemberSet(group)
	if err != nil {
		return false, err
	}

	return set.Contains(e), nil
}

// Entities returns every entity with at least one co-member, in first-seen order.
func (g *Graph[E, G]) Entities() []E {
	out := make([]E, len(g.entities))
	copy(out, g.entities)

	return out
}

// Groups returns every group of the relation, in first-seen order.
func (g *Graph[E, G]) Groups() []G {
	out := make([]G, len(g.groups))
	copy(out, g.groups)

	return out
}

// EntityCount returns the number of entities with at least one co-member.
func (g *Graph[E, G]) EntityCount() int { return len(g.entities) }

// GroupCount returns the number of distinct groups.
func (g *Graph[E, G]) GroupCount() int { return len(g.groups) }

// EdgeCount returns the number of unordered co-member pairs.
func (g *Graph[E, G]) EdgeCount() int { return g.edges }

func (g *Graph[E, G]) lookup(e E) (*neighborhood[E, G], error) {
	n, ok := g.adjacency[e]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrEntityNotFound, e)
	}

	return n, nil
}
