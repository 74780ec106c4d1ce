package bellmanford_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/wgraph"
)

// randomGraph builds a graph with n nodes and m random edges (self-loops and
// parallel edges included) with weights in [lo, hi].
func randomGraph(t testing.TB, rng *rand.Rand, n, m int, lo, hi int64) *wgraph.Graph {
	t.Helper()
	g, err := wgraph.New(n, wgraph.WithEdgeCapacity(m))
	require.NoError(t, err)
	for i := 0; i < m; i++ {
		w := lo + rng.Int63n(hi-lo+1)
		require.NoError(t, g.AddEdge(rng.Intn(n), rng.Intn(n), w))
	}

	return g
}

// bruteForce enumerates every simple path from src and returns, per node,
// the minimal path weight ("inf" when unreachable). Without a reachable
// negative cycle the shortest walk is always a simple path.
func bruteForce(g *wgraph.Graph, src int) []string {
	n := g.NodeCount()
	adj := make([][]wgraph.Edge, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e)
	}

	best := make([]*int64, n)
	onPath := make([]bool, n)
	var walk func(u int, d int64)
	walk = func(u int, d int64) {
		if best[u] == nil || d < *best[u] {
			v := d
			best[u] = &v
		}
		onPath[u] = true
		for _, e := range adj[u] {
			if !onPath[e.To] {
				walk(e.To, d+e.Weight)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	out := make([]string, n)
	for v, b := range best {
		if b == nil {
			out[v] = "inf"
		} else {
			out[v] = bellmanford.Finite(*b).String()
		}
	}

	return out
}

// minWeights maps each ordered pair to its lightest parallel edge.
func minWeights(g *wgraph.Graph) map[[2]int]int64 {
	m := make(map[[2]int]int64)
	for _, e := range g.Edges() {
		k := [2]int{e.From, e.To}
		if w, ok := m[k]; !ok || e.Weight < w {
			m[k] = e.Weight
		}
	}

	return m
}

// reachable returns the set of nodes reachable from src (src included).
func reachable(g *wgraph.Graph, src int) []bool {
	seen := make([]bool, g.NodeCount())
	seen[src] = true
	queue := []int{src}
	edges := g.Edges()
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range edges {
			if e.From == u && !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return seen
}

// TestProperty_BruteForceCrossCheck compares the engine with exhaustive
// enumeration on many small random graphs, and validates every reported
// negative cycle.
func TestProperty_BruteForceCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	var succeeded, cycles int

	for iter := 0; iter < 400; iter++ {
		n := 1 + rng.Intn(6)
		m := rng.Intn(3 * n)
		g := randomGraph(t, rng, n, m, -3, 9)
		src := rng.Intn(n)

		eng, err := bellmanford.New(g, src)
		if err != nil {
			var nce *bellmanford.NegativeCycleError
			require.ErrorAs(t, err, &nce, "iteration %d", iter)
			cycles++

			// The reported cycle is closed, reachable, made of real edges and negative.
			c := nce.Cycle
			require.GreaterOrEqual(t, len(c), 2)
			require.Equal(t, c[0], c[len(c)-1])
			assert.True(t, reachable(g, src)[c[0]])
			mw := minWeights(g)
			var sum int64
			for i := 0; i+1 < len(c); i++ {
				w, ok := mw[[2]int{c[i], c[i+1]}]
				require.True(t, ok, "cycle uses missing edge %d→%d", c[i], c[i+1])
				sum += w
			}
			assert.Less(t, sum, int64(0), "cycle %v", c)
			continue
		}
		succeeded++

		if diff := cmp.Diff(bruteForce(g, src), render(eng.Distances())); diff != "" {
			t.Fatalf("iteration %d: distances mismatch (-brute +engine):\n%s", iter, diff)
		}
	}

	// Make sure the generator exercises both outcomes.
	assert.Positive(t, succeeded)
	assert.Positive(t, cycles)
}

// TestProperty_PredecessorChains checks that for every reachable v the
// predecessor walk reaches the source in at most N-1 steps and the edge
// weights along it sum to distance[v].
func TestProperty_PredecessorChains(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(8)
		g := randomGraph(t, rng, n, rng.Intn(4*n), 0, 20) // no negative weights → no cycles
		src := rng.Intn(n)

		eng, err := bellmanford.New(g, src)
		require.NoError(t, err)
		mw := minWeights(g)

		for v := 0; v < n; v++ {
			if !eng.Reachable(v) {
				_, err = eng.ShortestPath(v)
				assert.ErrorIs(t, err, bellmanford.ErrNoPath)
				continue
			}
			path, err := eng.ShortestPath(v)
			require.NoError(t, err)
			require.LessOrEqual(t, len(path), n)
			assert.Equal(t, src, path[0])
			assert.Equal(t, v, path[len(path)-1])

			var sum int64
			for i := 0; i+1 < len(path); i++ {
				w, ok := mw[[2]int{path[i], path[i+1]}]
				require.True(t, ok)
				sum += w
			}
			d, _ := eng.Distance(v)
			want, _ := d.Value()
			assert.Equal(t, want, sum, "node %d path %v", v, path)
		}
	}
}

// TestProperty_Idempotent builds two engines from the same input.
func TestProperty_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := randomGraph(t, rng, 30, 120, -1, 15)
	for src := 0; src < g.NodeCount(); src++ {
		a, errA := bellmanford.New(g, src)
		b, errB := bellmanford.New(g, src)
		if errA != nil {
			assert.Equal(t, errA.Error(), errB.Error())
			continue
		}
		require.NoError(t, errB)
		assert.Equal(t, a.Distances(), b.Distances())
		assert.Equal(t, a.Predecessors(), b.Predecessors())
	}
}

// TestConcurrentQueries runs read-only queries from many goroutines under -race.
func TestConcurrentQueries(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGraph(t, rng, 40, 200, 0, 10)
	eng, err := bellmanford.New(g, 0)
	require.NoError(t, err)

	want := make([]string, g.NodeCount())
	for v := range want {
		want[v] = eng.PathString(v)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < g.NodeCount(); v++ {
				assert.Equal(t, want[v], eng.PathString(v))
				_, _ = eng.Distance(v)
				_ = eng.Distances()
			}
		}()
	}
	wg.Wait()
}
