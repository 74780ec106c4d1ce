// Command bellmanford loads a weighted directed graph description and prints
// the shortest path between the source and destination it names.
//
// Usage:
//
//	bellmanford graph.txt
//	bellmanford --source 2 --destination 5 --table graph.yaml
//
// The text format is: node count, "source destination", then one
// "from to weight" edge per line. YAML files use the keys nodes, source,
// destination and edges (see package wgraph).
//
// A negative cycle or an unreachable destination is reported as a message on
// stdout; unreadable files and invalid indices exit with status 1.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
