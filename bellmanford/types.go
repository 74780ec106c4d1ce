package bellmanford

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/bellman/wgraph"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to New.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrInvalidIndex indicates a source, destination or edge endpoint outside [0, N).
	ErrInvalidIndex = errors.New("bellmanford: node index out of range")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	// Construction fails as a whole; no distances are published.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrNoPath indicates the queried destination is unreachable from the source.
	ErrNoPath = errors.New("bellmanford: path does not exist")

	// ErrGraphTooLarge indicates a graph with more than wgraph.MaxNodes nodes.
	ErrGraphTooLarge = errors.New("bellmanford: graph too large")

	// ErrWeightOverflow indicates a finite path weight left the int64 range.
	ErrWeightOverflow = errors.New("bellmanford: path weight overflows int64")

	// ErrInconsistentPredecessors indicates the predecessor chain did not lead
	// back to the source within N steps. A correctly constructed engine never
	// returns it.
	ErrInconsistentPredecessors = errors.New("bellmanford: predecessor chain does not reach source")
)

// NoPredecessor marks the source and every unreached node in the predecessor table.
const NoPredecessor = -1

// Graph is the read-only view New needs: a node count and the edges in the
// order they are scanned. *wgraph.Graph satisfies it.
type Graph interface {
	NodeCount() int
	Edges() []wgraph.Edge
}

// NegativeCycleError reports a negative cycle found during construction.
//
// Cycle is a closed walk [a b ... a] following edge direction whose total
// weight is negative. It is nil if the cycle could not be isolated from the
// predecessor table. errors.Is(err, ErrNegativeCycle) holds for every value.
type NegativeCycleError struct {
	Cycle []int
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	if len(e.Cycle) == 0 {
		return ErrNegativeCycle.Error()
	}

	return fmt.Sprintf("%s: %s", ErrNegativeCycle.Error(), FormatPath(e.Cycle))
}

// Unwrap lets errors.Is match ErrNegativeCycle.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Distance is the shortest known distance from the source to a node.
// The zero value is a finite distance of 0; unreached nodes hold Infinity().
type Distance struct {
	value int64
	inf   bool
}

// Finite returns the finite distance d.
func Finite(d int64) Distance { return Distance{value: d} }

// Infinity returns the distance of a node not reachable from the source.
func Infinity() Distance { return Distance{inf: true} }

// IsInf reports whether the node is unreached.
func (d Distance) IsInf() bool { return d.inf }

// Value returns the finite distance and true, or 0 and false for Infinity.
func (d Distance) Value() (int64, bool) {
	if d.inf {
		return 0, false
	}

	return d.value, true
}

// String renders "inf" for unreached nodes.
func (d Distance) String() string {
	if d.inf {
		return "inf"
	}

	return strconv.FormatInt(d.value, 10)
}

// Options configures the behavior of New.
//
// EarlyExit – stop relaxation passes after the first pass that changes nothing.
// Logger    – receives Debug records about passes and the outcome.
type Options struct {
	EarlyExit bool
	Logger    *slog.Logger
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithEarlyExit stops the N-1 relaxation passes as soon as one full pass
// performs no relaxation. A quiet pass is a fixed point, so the tables are
// identical to those of a run without the option.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithLogger sets the logger used for Debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with every pass executed and logging discarded.
func DefaultOptions() Options {
	return Options{
		EarlyExit: false,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
