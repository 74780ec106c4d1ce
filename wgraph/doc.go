// Package wgraph provides a compact, index-addressed, weighted directed graph
// used as the input of single-source shortest-path computations.
//
// Nodes are dense integers in [0, N). There is no separate vertex object: a
// node is its index. Edges are stored in insertion order, which is also the
// order in which algorithms such as Bellman-Ford scan them.
//
// The Graph G = (V,E) supports:
//
//   - Negative, zero and positive int64 weights.
//   - Self-loops (disable with WithoutLoops).
//   - Parallel edges between the same pair of nodes (disable with WithoutMultiEdges).
//   - Deterministic iteration: Edges() returns a snapshot in insertion order.
//
// Loading graph descriptions:
//
//	– ParseText(r)  plain text: node count, "source destination", then "from to weight" lines.
//	– ParseYAML(r)  YAML document with nodes, source, destination and an edges list.
//	– Load(path)    picks the format from the file extension (.yaml/.yml → YAML).
//
// Example text file:
//
//	# three nodes, route 0 → 2
//	3
//	0 2
//	0 1 1
//	1 2 2
//
// Errors:
//
//	ErrNegativeNodeCount   - node count below zero.
//	ErrTooManyNodes        - node count above MaxNodes.
//	ErrNodeOutOfRange      - an index outside [0, N).
//	ErrLoopNotAllowed      - self-loop while loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge while multi-edges are disabled.
//	ErrSyntax              - malformed graph description.
//
// Thread safety: all Graph methods are guarded by a sync.RWMutex, so a graph may
// be read from many goroutines while it is not being mutated.
package wgraph
