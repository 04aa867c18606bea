package relalg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relalg/internal/plan"
)

// edgeGraph is a Graph with arbitrary fan-in, so shared subtrees can be
// exercised independently of the node family.
type edgeGraph [][]plan.Handle

func (g edgeGraph) Len() int { return len(g) }

func (g edgeGraph) Sources(h plan.Handle) []plan.Handle { return g[h] }

func TestLinearizeChain(t *testing.T) {
	// 2 -> 1 -> 0
	g := edgeGraph{nil, {0}, {1}}
	assert.Equal(t, []plan.Handle{0, 1, 2}, linearize(g, 2))
}

func TestLinearizeSingleLeaf(t *testing.T) {
	g := edgeGraph{nil}
	assert.Equal(t, []plan.Handle{0}, linearize(g, 0))
}

func TestLinearizeDiamondEmitsSharedOnce(t *testing.T) {
	// 3 -> {1, 2}, 1 -> 0, 2 -> 0
	g := edgeGraph{nil, {0}, {0}, {1, 2}}
	assert.Equal(t, []plan.Handle{0, 1, 2, 3}, linearize(g, 3))
}

func TestLinearizeSourceOrderIsRespected(t *testing.T) {
	// 3 -> {2, 1}: the first listed source is walked first.
	g := edgeGraph{nil, {0}, {0}, {2, 1}}
	assert.Equal(t, []plan.Handle{0, 2, 1, 3}, linearize(g, 3))
}

func TestLinearizeSharedSourceListedTwice(t *testing.T) {
	g := edgeGraph{nil, {0, 0}}
	assert.Equal(t, []plan.Handle{0, 1}, linearize(g, 1))
}

func TestLinearizeSharedDeepSubtree(t *testing.T) {
	// 4 -> {3, 1}, 3 -> {2}, 2 -> {1}, 1 -> {0}
	// 1 is reachable directly from 4 and through 3 -> 2.
	g := edgeGraph{nil, {0}, {1}, {2}, {3, 1}}
	assert.Equal(t, []plan.Handle{0, 1, 2, 3, 4}, linearize(g, 4))
}

func TestLinearizeIgnoresUnreachable(t *testing.T) {
	g := edgeGraph{nil, nil, {0}}
	assert.Equal(t, []plan.Handle{0, 2}, linearize(g, 2))
}

// randomDAG builds a graph where every edge points to a lower handle, the
// same shape plan.Plan guarantees by construction.
func randomDAG(r *rand.Rand, n int) edgeGraph {
	g := make(edgeGraph, n)
	for i := 1; i < n; i++ {
		fanIn := r.Intn(4)
		for j := 0; j < fanIn; j++ {
			g[i] = append(g[i], plan.Handle(r.Intn(i)))
		}
	}
	return g
}

func reachable(g edgeGraph, root plan.Handle) map[plan.Handle]bool {
	seen := map[plan.Handle]bool{root: true}
	todo := []plan.Handle{root}
	for len(todo) > 0 {
		h := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, s := range g[h] {
			if !seen[s] {
				seen[s] = true
				todo = append(todo, s)
			}
		}
	}
	return seen
}

func TestLinearizeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(20261014))

	for trial := 0; trial < 200; trial++ {
		g := randomDAG(r, 1+r.Intn(30))
		root := plan.Handle(len(g) - 1)

		order := linearize(g, root)
		want := reachable(g, root)

		require.Len(t, order, len(want), "one entry per distinct reachable node")

		position := make(map[plan.Handle]int, len(order))
		for i, h := range order {
			_, dup := position[h]
			require.False(t, dup, "node %d emitted twice", h)
			require.True(t, want[h], "node %d is not reachable", h)
			position[h] = i
		}

		for h, pos := range position {
			for _, s := range g[h] {
				require.Less(t, position[s], pos, "source %d must precede %d", s, h)
			}
		}

		assert.Equal(t, root, order[len(order)-1], "root is emitted last")
	}
}
