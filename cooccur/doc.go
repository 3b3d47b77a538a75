// Package cooccur builds an immutable, undirected co-occurrence graph from a
// flat relation of (entity, entity, group) triples.
//
// Two entities are co-members when at least one triple names them together.
// The graph keeps, for every co-member pair, the set of groups in which the
// pair co-occurred, and a separate membership index from each group to every
// entity that took part in it.
//
// Structure
//
//	adjacency[a][b] -> *Set[G]   (one Set per unordered pair, shared by a→b and b→a)
//	members[g]      -> *Set[E]   (every entity named by a triple for g)
//
// Invariants
//
//   - Symmetric: if b is a co-member of a, a is a co-member of b, and both
//     directions point at the very same *Set[G].
//   - No self-loops: a triple (a, a, g) only adds a to members[g].
//   - Every group seen in the relation has a non-empty membership set.
//   - An entity that never shared a triple with a different entity has no
//     adjacency entry; lookups for it return ErrEntityNotFound.
//
// Determinism
//
//	Co-members, group sets and membership sets iterate in the order in which
//	the relation first introduced them. Queries that must pick "one of
//	several" (e.g. the group linking two entities) take the earliest.
//
// Concurrency
//
//	A Graph is never mutated after Build returns, so any number of goroutines
//	may read it concurrently without locks.
//
// Errors
//
//   - ErrEntityNotFound   entity has no adjacency entry.
//   - ErrGroupNotFound    group never appeared in the relation.
//   - ErrNotCoMembers     two entities share no group.
//   - ErrOptionViolation  invalid Option passed to Build.
package cooccur
