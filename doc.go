// Package bellman is a small toolkit for single-source shortest paths on
// weighted directed graphs whose edges may carry negative weights.
//
// What is inside?
//
//	wgraph/          — dense, index-addressed weighted digraph + text/YAML loaders
//	bellmanford/     — Bellman-Ford engine: distances, predecessors, path queries,
//	                   negative cycle detection with the offending cycle
//	cmd/bellmanford/ — command-line driver printing "s-->n1-->...-->t"
//	examples/        — runnable scenarios (toll rebates, currency arbitrage)
//
// Quick example:
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
// Every failure is a sentinel error that can be matched with errors.Is:
// an index out of range, a reachable negative cycle, or an unreachable
// destination. The engine never panics on bad input nor exits the process.
//
//	go get github.com/katalvlaran/bellman
package bellman
