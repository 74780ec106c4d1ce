// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on weighted directed graphs that may contain negative edge weights.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - V-1 relaxation passes, each scanning all E edges in order.
//   - One verification pass over all E edges to detect negative cycles.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor tables.
//   - O(E) for the edge snapshot taken from the graph.
//
// Notes on implementation choices:
//
//   - Unreached nodes hold Infinity(), never a maximal integer, so no edge
//     leaving an unreached node can relax anything.
//   - Finite additions are overflow-checked and fail with ErrWeightOverflow.
//   - Ties keep the last strictly improving edge in scan order.
package bellmanford

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/bellman/wgraph"
)

// New runs Bellman-Ford over g from source and returns the frozen engine.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, N) (ErrInvalidIndex). With N = 0 no source is valid.
//  3. Every edge endpoint must lie in [0, N) (ErrInvalidIndex).
//
// Failures during the run:
//
//   - *NegativeCycleError (matches ErrNegativeCycle) if a negative cycle is
//     reachable from source. No engine is returned.
//   - ErrWeightOverflow if a finite path weight leaves the int64 range
//     without a negative cycle behind it.
//   - ErrGraphTooLarge if N exceeds wgraph.MaxNodes.
//
// Options customization:
//
//   - WithEarlyExit(): stop once a pass relaxes nothing.
//   - WithLogger(l):   Debug records per pass.
func New(g Graph, source int, opts ...Option) (*Engine, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph. A typed nil *wgraph.Graph is nil too.
	if g == nil {
		return nil, ErrNilGraph
	}
	if wg, ok := g.(*wgraph.Graph); ok && wg == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate the size and the source before any work is done.
	n := g.NodeCount()
	if n > wgraph.MaxNodes {
		return nil, fmt.Errorf("%w: N=%d, limit %d", ErrGraphTooLarge, n, wgraph.MaxNodes)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidIndex, source, n)
	}

	// 4) Snapshot edges and validate endpoints.
	edges := g.Edges()
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge #%d %d→%d with N=%d", ErrInvalidIndex, i, e.From, e.To, n)
		}
	}

	// 5) Run relaxation and verification on private tables.
	r := &runner{
		n:      n,
		source: source,
		edges:  edges,
		dist:   make([]Distance, n),
		pred:   make([]int, n),
		log:    cfg.Logger,
	}
	r.init()

	passes, err := r.relaxAll(cfg.EarlyExit)
	if err != nil {
		return nil, err
	}
	if err = r.verify(); err != nil {
		return nil, err
	}

	// 6) Publish the tables only once no negative cycle was found.
	r.log.Debug("bellmanford: shortest paths computed",
		slog.Int("nodes", n), slog.Int("edges", len(edges)), slog.Int("source", source), slog.Int("passes", passes))

	return &Engine{
		source: source,
		dist:   r.dist,
		pred:   r.pred,
		passes: passes,
	}, nil
}

// runner holds the mutable state of a single Bellman-Ford execution.
// Its tables are handed to an Engine only after verify succeeds.
type runner struct {
	n      int
	source int
	edges  []wgraph.Edge
	dist   []Distance
	pred   []int
	log    *slog.Logger
}

// init sets dist[source]=0, every other distance to Infinity and every
// predecessor to NoPredecessor.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.dist[v] = Infinity()
		r.pred[v] = NoPredecessor
	}
	r.dist[r.source] = Finite(0)
}

// relaxAll performs up to N-1 passes over all edges and returns the number
// of passes executed. With earlyExit it stops after the first quiet pass.
func (r *runner) relaxAll(earlyExit bool) (int, error) {
	passes := 0
	for i := 0; i < r.n-1; i++ {
		passes++
		relaxed, _, err := r.pass()
		if err != nil {
			return passes, err
		}
		r.log.Debug("bellmanford: relaxation pass", slog.Int("pass", passes), slog.Int("relaxed", relaxed))
		if earlyExit && relaxed == 0 {
			break
		}
	}

	return passes, nil
}

// verify performs the extra pass. Any relaxation means a negative cycle is
// reachable from the source; the cycle is isolated from the predecessor table.
func (r *runner) verify() error {
	relaxed, last, err := r.pass()
	if err != nil {
		return err
	}
	if relaxed == 0 {
		return nil
	}

	cycle := r.extractCycle(last)
	r.log.Debug("bellmanford: negative cycle detected", slog.Int("relaxed", relaxed), slog.Any("cycle", cycle))

	return &NegativeCycleError{Cycle: cycle}
}

// pass scans every edge once. It returns how many edges relaxed and the head
// of the last relaxed edge (NoPredecessor if none).
func (r *runner) pass() (relaxed, last int, err error) {
	last = NoPredecessor
	var ok bool
	for _, e := range r.edges {
		if ok, err = r.relax(e); err != nil {
			return relaxed, last, err
		}
		if ok {
			relaxed++
			last = e.To
		}
	}

	return relaxed, last, nil
}

// relax applies the relaxation rule to e and reports whether dist[e.To] improved.
// An edge leaving an unreached node never relaxes.
func (r *runner) relax(e wgraph.Edge) (bool, error) {
	du := r.dist[e.From]
	if du.inf {
		return false, nil
	}

	cand, ok := addInt64(du.value, e.Weight)
	if !ok {
		// Distances driven below the int64 range by a negative cycle
		// are reported as that cycle.
		if e.Weight < 0 {
			if cycle := r.extractCycle(e.From); cycle != nil {
				r.log.Debug("bellmanford: negative cycle detected on underflow", slog.Any("cycle", cycle))
				return false, &NegativeCycleError{Cycle: cycle}
			}
		}
		return false, fmt.Errorf("%w: edge %d→%d weight=%d from distance %d",
			ErrWeightOverflow, e.From, e.To, e.Weight, du.value)
	}

	dv := r.dist[e.To]
	if !dv.inf && cand >= dv.value {
		return false, nil
	}

	r.dist[e.To] = Finite(cand)
	r.pred[e.To] = e.From

	return true, nil
}

// extractCycle walks N predecessor links from x, which lands inside a cycle
// of the predecessor graph, then collects that cycle in edge direction.
// Returns nil if the chain breaks before a cycle closes.
func (r *runner) extractCycle(x int) []int {
	if x == NoPredecessor {
		return nil
	}
	for i := 0; i < r.n; i++ {
		x = r.pred[x]
		if x == NoPredecessor {
			return nil
		}
	}

	cycle := []int{x}
	for v := r.pred[x]; ; v = r.pred[v] {
		if v == NoPredecessor || len(cycle) > r.n {
			return nil
		}
		cycle = append(cycle, v)
		if v == x {
			break
		}
	}
	reverseInts(cycle)

	return cycle
}

// addInt64 returns a+b and false if the sum overflows.
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
