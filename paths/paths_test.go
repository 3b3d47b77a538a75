package paths_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/cooccur"
	"github.com/katalvlaran/costar/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type triple = cooccur.Triple[int, string]

func newEngine(t *testing.T, rel []triple, opts ...paths.Option[int]) *paths.Engine[int, string] {
	t.Helper()
	g, err := cooccur.Build(rel)
	require.NoError(t, err)
	e, err := paths.NewEngine(g, opts...)
	require.NoError(t, err)

	return e
}

// chain is 1 ─A─ 2 ─B─ 3 ─A─ 4.
func chain() []triple {
	return []triple{
		{A: 1, B: 2, Group: "A"},
		{A: 2, B: 3, Group: "B"},
		{A: 3, B: 4, Group: "A"},
	}
}

// randomRelation builds a reproducible sparse relation over n entities.
func randomRelation(seed int64, n, records int) []cooccur.Triple[int, int] {
	rnd := rand.New(rand.NewSource(seed))
	rel := make([]cooccur.Triple[int, int], records)
	for i := range rel {
		rel[i] = cooccur.Triple[int, int]{A: rnd.Intn(n), B: rnd.Intn(n), Group: rnd.Intn(records / 2)}
	}

	return rel
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := paths.NewEngine[int, string](nil)
	assert.ErrorIs(t, err, paths.ErrGraphNil)

	g, err := cooccur.Build(chain())
	require.NoError(t, err)

	// a nil context keeps the background one, as in bfs.WithContext
	e, err := paths.NewEngine(g, paths.WithContext[int](nil))
	require.NoError(t, err)
	path, err := e.PathToEntity(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, path)
}

// TestChainScenario walks the 1–2–3–4 scenario through every query.
func TestChainScenario(t *testing.T) {
	e := newEngine(t, chain())

	path, err := e.PathToEntity(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, path)

	groups, err := e.GroupsForPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, groups)

	frontier, err := e.FrontierAtDistance(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, frontier)

	ok, err := e.ActedTogether(1, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	movies, err := e.MoviePath(4, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, movies)

	d, reachable, err := e.Distance(1, 4)
	require.NoError(t, err)
	assert.True(t, reachable)
	assert.Equal(t, 3, d)
}

// TestSelfPairScenario covers an entity known only through a self-pair.
func TestSelfPairScenario(t *testing.T) {
	e := newEngine(t, []triple{{A: 5, B: 5, Group: "C"}})

	members, err := e.Graph().Members("C")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, members)

	ok, err := e.ActedTogether(5, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = e.ActedTogether(5, 6)
	assert.ErrorIs(t, err, cooccur.ErrEntityNotFound)

	path, err := e.PathToEntity(5, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, path)

	frontier, err := e.FrontierAtDistance(5, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, frontier)

	_, err = e.FrontierAtDistance(5, 1)
	assert.ErrorIs(t, err, cooccur.ErrEntityNotFound)
}

func TestPathToEntity(t *testing.T) {
	e := newEngine(t, append(chain(),
		triple{A: 10, B: 11, Group: "X"},
	))

	// unreachable is nil, not an error
	path, err := e.PathToEntity(1, 11)
	require.NoError(t, err)
	assert.Nil(t, path)

	// unknown origin propagates the lookup failure through the search
	_, err = e.PathToEntity(99, 1)
	assert.ErrorIs(t, err, cooccur.ErrEntityNotFound)
	assert.ErrorIs(t, err, bfs.ErrSuccessors)

	// unknown target is simply unreachable
	path, err = e.PathToEntity(1, 99)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestPathToGoal(t *testing.T) {
	e := newEngine(t, chain())

	path, err := e.PathToGoal(2, func(v int) bool { return v > 1 })
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)

	path, err = e.PathToGoal(1, func(v int) bool { return v >= 3 })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)

	path, err = e.PathToGoal(1, func(v int) bool { return v > 100 })
	require.NoError(t, err)
	assert.Nil(t, path)

	_, err = e.PathToGoal(1, nil)
	assert.ErrorIs(t, err, bfs.ErrNilFunc)
}

// TestPathBetweenGroups picks the shortest bridge among all starting members.
func TestPathBetweenGroups(t *testing.T) {
	// X = {1, 2}, D = {4}; from 1 the bridge is [1 2 3 4], from 2 it is [2 3 4].
	core, logs := observer.New(zap.DebugLevel)
	e := newEngine(t, []triple{
		{A: 1, B: 2, Group: "X"},
		{A: 2, B: 3, Group: "B"},
		{A: 3, B: 4, Group: "C"},
		{A: 4, B: 4, Group: "D"},
		{A: 7, B: 8, Group: "Y"},
	}, paths.WithLogger[int](zap.New(core)))

	path, err := e.PathBetweenGroups("X", "D")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, path)
	assert.Equal(t, 1, logs.FilterMessage("group bridge resolved").Len())

	// overlapping groups bridge in a single entity
	path, err = e.PathBetweenGroups("B", "C")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, path)

	path, err = e.PathBetweenGroups("X", "Y")
	require.NoError(t, err)
	assert.Nil(t, path)

	_, err = e.PathBetweenGroups("X", "nope")
	assert.ErrorIs(t, err, cooccur.ErrGroupNotFound)
	_, err = e.PathBetweenGroups("nope", "X")
	assert.ErrorIs(t, err, cooccur.ErrGroupNotFound)
}

// TestPathBetweenGroups_SelfPairMember covers start members known only through a self-pair.
func TestPathBetweenGroups_SelfPairMember(t *testing.T) {
	e := newEngine(t, []triple{
		{A: 9, B: 9, Group: "S"},
		{A: 1, B: 1, Group: "S"},
		{A: 1, B: 2, Group: "P"},
		{A: 2, B: 2, Group: "T"},
		{A: 9, B: 9, Group: "U"},
	})

	// 9 is in both groups: a one-element bridge without any lookup
	path, err := e.PathBetweenGroups("U", "S")
	require.NoError(t, err)
	assert.Equal(t, []int{9}, path)

	// 9 is not in T and has no co-members: the lookup failure propagates
	_, err = e.PathBetweenGroups("S", "T")
	assert.True(t, errors.Is(err, cooccur.ErrEntityNotFound) && errors.Is(err, bfs.ErrSuccessors), "got %v", err)
}

// TestPathBetweenGroups_TieKeepsFirst checks the deterministic tie-break.
func TestPathBetweenGroups_TieKeepsFirst(t *testing.T) {
	// S = {1, 2}; both reach T = {9} in two hops.
	e := newEngine(t, []triple{
		{A: 1, B: 2, Group: "S"},
		{A: 1, B: 5, Group: "P"},
		{A: 2, B: 6, Group: "Q"},
		{A: 5, B: 9, Group: "R"},
		{A: 6, B: 9, Group: "R"},
		{A: 9, B: 9, Group: "T"},
	})
	path, err := e.PathBetweenGroups("S", "T")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 9}, path)
}

func TestGroupsForPath(t *testing.T) {
	e := newEngine(t, append(chain(), triple{A: 1, B: 2, Group: "Z"}))

	groups, err := e.GroupsForPath(nil)
	require.NoError(t, err)
	assert.Nil(t, groups)

	groups, err = e.GroupsForPath([]int{3})
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)

	// earliest linking group wins: A was seen before Z for 1–2
	groups, err = e.GroupsForPath([]int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, groups)

	_, err = e.GroupsForPath([]int{1, 3})
	assert.ErrorIs(t, err, cooccur.ErrNotCoMembers)

	movies, err := e.MoviePath(2, 2)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestFrontierAtDistance(t *testing.T) {
	// 1 links to 2 and 3; 2 and 3 both link to 4; 4 links to 5.
	e := newEngine(t, []triple{
		{A: 1, B: 2, Group: "a"},
		{A: 1, B: 3, Group: "b"},
		{A: 2, B: 4, Group: "c"},
		{A: 3, B: 4, Group: "d"},
		{A: 4, B: 5, Group: "e"},
	})

	want := [][]int{{1}, {2, 3}, {4}, {5}, {}, {}}
	for n, w := range want {
		got, err := e.FrontierAtDistance(1, n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, w, got, "n=%d", n)
	}

	_, err := e.FrontierAtDistance(1, -1)
	assert.ErrorIs(t, err, paths.ErrNegativeDistance)
}

// TestFrontier_PartitionsReachable checks frontiers are disjoint and match BFS distances.
func TestFrontier_PartitionsReachable(t *testing.T) {
	g, err := cooccur.Build(randomRelation(7, 300, 600))
	require.NoError(t, err)
	e, err := paths.NewEngine(g)
	require.NoError(t, err)

	origin := g.Entities()[0]
	dist, err := bfs.Distances(origin, g.Successors)
	require.NoError(t, err)

	placed := map[int]int{}
	for n := 0; ; n++ {
		frontier, err := e.FrontierAtDistance(origin, n)
		require.NoError(t, err)
		if len(frontier) == 0 {
			break
		}
		for _, v := range frontier {
			_, dup := placed[v]
			require.False(t, dup, "entity %d in two frontiers", v)
			placed[v] = n
		}
	}
	assert.Equal(t, dist, placed)
}

// TestPathToEntity_Minimal compares path lengths with independent BFS distances.
func TestPathToEntity_Minimal(t *testing.T) {
	g, err := cooccur.Build(randomRelation(11, 200, 400))
	require.NoError(t, err)
	e, err := paths.NewEngine(g)
	require.NoError(t, err)

	entities := g.Entities()
	origin := entities[0]
	dist, err := bfs.Distances(origin, g.Successors)
	require.NoError(t, err)

	for _, target := range entities {
		path, err := e.PathToEntity(origin, target)
		require.NoError(t, err)
		d, reachable := dist[target]
		if !reachable {
			assert.Nil(t, path, "target %d", target)
			continue
		}
		require.Len(t, path, d+1, "target %d", target)
		assert.Equal(t, origin, path[0])
		assert.Equal(t, target, path[len(path)-1])
		for i := 0; i+1 < len(path); i++ {
			ok, err := g.ActedTogether(path[i], path[i+1])
			require.NoError(t, err)
			assert.True(t, ok, "hop %d-%d", path[i], path[i+1])
		}
		groups, err := e.GroupsForPath(path)
		require.NoError(t, err)
		assert.Len(t, groups, len(path)-1)
	}
}

func TestRootQueries(t *testing.T) {
	e := newEngine(t, chain())
	_, err := e.PathFromRoot(4)
	assert.ErrorIs(t, err, paths.ErrNoRoot)
	_, err = e.RootFrontier(1)
	assert.ErrorIs(t, err, paths.ErrNoRoot)
	_, ok := e.Root()
	assert.False(t, ok)

	// a caller-composed option can only set the root through WithRoot
	custom := func(o *paths.Options[int]) { paths.WithRoot(3)(o) }
	e = newEngine(t, chain(), custom)
	path, err := e.PathFromRoot(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, path)

	e = newEngine(t, chain(), paths.WithRoot(2))
	root, ok := e.Root()
	require.True(t, ok)
	assert.Equal(t, 2, root)

	path, err = e.PathFromRoot(4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, path)

	frontier, err := e.RootFrontier(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, frontier)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := newEngine(t, chain(), paths.WithContext[int](ctx))

	_, err := e.PathToEntity(1, 4)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = e.FrontierAtDistance(1, 2)
	assert.ErrorIs(t, err, context.Canceled)

	// zero-hop answers never start a search
	path, err := e.PathToEntity(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)
}
