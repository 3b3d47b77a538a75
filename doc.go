// Package costar computes shortest-path connectivity between entities that
// are linked through shared groups, such as actors who appeared in the same
// film.
//
// The module is organized in small packages:
//
//	cooccur/ — builds the immutable co-occurrence graph and group membership index
//	bfs/     — generic breadth-first search over any successor function
//	paths/   — Engine with the derived queries (entity paths, frontiers, group bridges)
//	lookup/  — name ↔ id directories for entities and groups
//	dataset/ — YAML/JSON decoding of relations and directories
//
// Quick ASCII example:
//
//	Bacon ─Apollo 13─ Hanks ─Big─ Perkins
//
// Bacon and Perkins are two hops apart; GroupsForPath names the films.
package costar
