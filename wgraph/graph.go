package wgraph

import "fmt"

// New creates a graph with n nodes and no edges.
// By default self-loops and parallel edges are allowed.
// n must lie in [0, MaxNodes].
// Complexity: O(1)
func New(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyNodes, n, MaxNodes)
	}
	g := &Graph{
		n:          n,
		allowLoops: true,
		allowMulti: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.allowMulti {
		g.pairs = make(map[[2]int]struct{})
	}

	return g, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(n int, opts ...GraphOption) *Graph {
	g, err := New(n, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// AddEdge appends the directed edge from→to with the given weight.
//
// Errors:
//   - ErrNodeOutOfRange if from or to is outside [0, N).
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the pair already exists and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Endpoint validation does not need the lock: n is immutable.
	if err := g.checkNode(from); err != nil {
		return err
	}
	if err := g.checkNode(to); err != nil {
		return err
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d→%d", ErrLoopNotAllowed, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Reject parallel edges if configured.
	if g.pairs != nil {
		key := [2]int{from, to}
		if _, dup := g.pairs[key]; dup {
			return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
		}
		g.pairs[key] = struct{}{}
	}

	// 3) Append, preserving insertion order.
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges, parallel edges counted separately.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a snapshot of all edges in insertion order.
// The returned slice is owned by the caller.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the i-th edge in insertion order.
// It panics if i is out of range, like a slice index.
func (g *Graph) Edge(i int) Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[i]
}

// HasNode reports whether v is a valid index in [0, N).
func (g *Graph) HasNode(v int) bool { return v >= 0 && v < g.n }

// Validate checks that every edge endpoint lies in [0, N).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, e := range g.edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return fmt.Errorf("%w: edge #%d %d→%d with N=%d", ErrNodeOutOfRange, i, e.From, e.To, g.n)
		}
	}

	return nil
}

func (g *Graph) checkNode(v int) error {
	if !g.HasNode(v) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, v, g.n)
	}

	return nil
}

// Validate checks that the problem's graph is present and that both query
// indices are valid nodes.
func (p *Problem) Validate() error {
	if p.Graph == nil {
		return fmt.Errorf("%w: missing graph", ErrSyntax)
	}
	if err := p.Graph.checkNode(p.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := p.Graph.checkNode(p.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	return nil
}
