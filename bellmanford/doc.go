// Package bellmanford computes single-source shortest paths on weighted
// directed graphs whose edges may carry negative weights.
//
// Overview:
//
//   - New(g, source) runs Bellman-Ford: N-1 relaxation passes over every edge,
//     followed by one verification pass that detects negative cycles reachable
//     from the source.
//   - On success the returned *Engine is frozen: its distance and predecessor
//     tables never change, and queries may run concurrently.
//   - On a reachable negative cycle New returns a *NegativeCycleError and no
//     engine; distances computed so far are discarded.
//   - Negative cycles that cannot be reached from the source are ignored.
//
// Distances:
//
//   - Every node has a Distance: Finite(d) or Infinity() for unreached nodes.
//     Infinity is an explicit state, not a maximal integer, so it can never be
//     corrupted by adding an edge weight.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrNilGraph:                 New received a nil graph.
//   - ErrInvalidIndex:             source, destination or edge endpoint outside [0, N).
//   - ErrNegativeCycle:            a negative cycle is reachable from the source
//     (the concrete value is *NegativeCycleError, carrying the cycle).
//   - ErrNoPath:                   the destination is unreachable.
//   - ErrWeightOverflow:           a finite path weight left the int64 range
//     (a negative cycle driving distances below it is still ErrNegativeCycle).
//   - ErrGraphTooLarge:            N exceeds wgraph.MaxNodes.
//   - ErrInconsistentPredecessors: internal consistency guard for path walks.
//
// API reference:
//
//	func New(g Graph, source int, opts ...Option) (*Engine, error)
//	func (e *Engine) Distance(v int) (Distance, error)
//	func (e *Engine) Predecessor(v int) (int, error)
//	func (e *Engine) ShortestPath(dest int) ([]int, error)
//	func (e *Engine) PathString(dest int) string
//	func FormatPath(path []int) string
//
// Example:
//
//	g := wgraph.MustNew(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	eng, err := bellmanford.New(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(eng.PathString(2)) // 0-->1-->2
//
// Tie-breaking: when several edges produce the same minimal distance, the
// predecessor is the tail of the first edge, in scan order, that reached that
// distance. Any returned path is a valid shortest path.
//
// Thread safety:
//
//   - New reads the graph once through Edges(); the graph must not be mutated
//     concurrently with that call.
//   - An *Engine is immutable and safe for concurrent queries.
package bellmanford
