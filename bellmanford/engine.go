package bellmanford

import "fmt"

// Engine holds the frozen result of a successful Bellman-Ford run from one
// source. It is never mutated after New returns, so any number of goroutines
// may query it concurrently.
type Engine struct {
	source int
	dist   []Distance
	pred   []int
	passes int
}

// Source returns the source node.
func (e *Engine) Source() int { return e.source }

// NodeCount returns N of the graph the engine was built from.
func (e *Engine) NodeCount() int { return len(e.dist) }

// Passes returns how many relaxation passes ran, excluding the verification pass.
// Without WithEarlyExit it is always N-1.
func (e *Engine) Passes() int { return e.passes }

// Distance returns the shortest distance from the source to v.
func (e *Engine) Distance(v int) (Distance, error) {
	if err := e.checkIndex(v); err != nil {
		return Distance{}, err
	}

	return e.dist[v], nil
}

// Distances returns a copy of the distance table indexed by node.
func (e *Engine) Distances() []Distance {
	out := make([]Distance, len(e.dist))
	copy(out, e.dist)

	return out
}

// Predecessor returns the node preceding v on its shortest path, or
// NoPredecessor when v is the source or unreached.
func (e *Engine) Predecessor(v int) (int, error) {
	if err := e.checkIndex(v); err != nil {
		return NoPredecessor, err
	}

	return e.pred[v], nil
}

// Predecessors returns a copy of the predecessor table indexed by node.
func (e *Engine) Predecessors() []int {
	out := make([]int, len(e.pred))
	copy(out, e.pred)

	return out
}

// Reachable reports whether v is a valid node reachable from the source.
func (e *Engine) Reachable(v int) bool {
	return v >= 0 && v < len(e.dist) && !e.dist[v].inf
}

// ShortestPath returns the nodes of a shortest path from the source to dest,
// both included. For dest == source the path is [source].
//
// Errors:
//   - ErrInvalidIndex if dest is outside [0, N).
//   - ErrNoPath if dest is unreachable.
//   - ErrInconsistentPredecessors if the predecessor chain does not reach the
//     source within N nodes.
//
// Complexity: O(path length) ≤ O(V).
func (e *Engine) ShortestPath(dest int) ([]int, error) {
	if err := e.checkIndex(dest); err != nil {
		return nil, err
	}
	if e.dist[dest].inf {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, e.source, dest)
	}

	// Walk back from dest; a simple path has at most N nodes.
	n := len(e.dist)
	path := make([]int, 0, 8)
	for cur := dest; ; cur = e.pred[cur] {
		if cur == NoPredecessor || len(path) == n {
			return nil, fmt.Errorf("%w: walking back from %d", ErrInconsistentPredecessors, dest)
		}
		path = append(path, cur)
		if cur == e.source {
			break
		}
	}
	reverseInts(path)

	return path, nil
}

func (e *Engine) checkIndex(v int) error {
	if v < 0 || v >= len(e.dist) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, v, len(e.dist))
	}

	return nil
}
