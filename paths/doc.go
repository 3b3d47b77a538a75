// Package paths answers shortest-path queries over a cooccur.Graph.
//
// An Engine wraps a built graph and offers:
//
//   - ActedTogether(a, b)          direct co-occurrence test
//   - FrontierAtDistance(o, n)     entities exactly n hops from o
//   - PathToEntity(o, t)           shortest entity path o → t
//   - PathToGoal(o, goal)          shortest entity path to any entity satisfying goal
//   - PathBetweenGroups(ga, gb)    shortest path from a member of ga to a member of gb
//   - GroupsForPath(path)          one linking group per hop of an entity path
//   - MoviePath(a, b)              PathToEntity followed by GroupsForPath
//   - Distance(a, b)               hop count between two entities
//
// A root entity may be configured with WithRoot; RootFrontier and
// PathFromRoot then run against it, so the engine is not tied to any
// particular well-connected entity.
//
// Result conventions
//
//	A nil path means "no path", and is never an error. A path that starts at
//	its goal is the one-element path [origin]. Looking up an entity or group
//	the graph does not know propagates cooccur.ErrEntityNotFound or
//	cooccur.ErrGroupNotFound, wrapped when it surfaces through a search.
//
// Determinism
//
//	Traversal follows the graph's first-seen order, so every query returns
//	the same answer for the same relation. PathBetweenGroups keeps the first
//	strictly shortest path in membership order of the first group, and
//	GroupsForPath picks the earliest group linking each hop.
package paths
