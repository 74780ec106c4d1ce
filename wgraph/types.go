package wgraph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and loading.
var (
	// ErrNegativeNodeCount indicates New was called with n < 0.
	ErrNegativeNodeCount = errors.New("wgraph: node count must be non-negative")

	// ErrTooManyNodes indicates New was called with n > MaxNodes.
	ErrTooManyNodes = errors.New("wgraph: node count exceeds limit")

	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("wgraph: node index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("wgraph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("wgraph: multi-edges not allowed")

	// ErrSyntax indicates a malformed graph description.
	ErrSyntax = errors.New("wgraph: syntax error")
)

// MaxNodes bounds N so that per-node tables stay allocatable.
const MaxNodes = 1 << 24

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates room for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, n)
		}
	}
}

// WithoutLoops rejects self-loops (from == to) with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithoutMultiEdges rejects a second edge between the same ordered pair
// with ErrMultiEdgeNotAllowed.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// Graph is a fixed-size weighted digraph over nodes 0..N-1.
//
// mu guards edges and pairs; the node count never changes after New.
type Graph struct {
	mu sync.RWMutex

	n          int
	allowLoops bool
	allowMulti bool

	edges []Edge
	// pairs tracks existing (from,to) pairs, only when multi-edges are disabled.
	pairs map[[2]int]struct{}
}

// Problem is a graph together with the query a description file asks for.
type Problem struct {
	Graph       *Graph
	Source      int
	Destination int
}
