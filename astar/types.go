// Package astar defines configuration options, routing statistics, and
// sentinel errors for the single-net A* router.
package astar

import "errors"

// Sentinel errors returned by Route.
var (
	// ErrNilFabric indicates a nil fabric was passed to Route.
	ErrNilFabric = errors.New("astar: fabric is nil")

	// ErrNilNet indicates a nil net was passed to Route.
	ErrNilNet = errors.New("astar: net is nil")

	// ErrNotFrozen indicates the fabric was not frozen, so its
	// reverse-connection data is not populated yet.
	ErrNotFrozen = errors.New("astar: fabric must be frozen before routing")

	// ErrNoSinks indicates the net has no input sink pins to route.
	ErrNoSinks = errors.New("astar: net has no input sink pins")

	// ErrNotInputPin indicates a sink pin was not classified as an input.
	ErrNotInputPin = errors.New("astar: sink pin is not an input")

	// ErrUnboundPin indicates a pin has no external wire on the fabric.
	ErrUnboundPin = errors.New("astar: pin has no external wire")

	// ErrNoRoute indicates the frontier was exhausted before a sink's
	// target wire was reached.
	ErrNoRoute = errors.New("astar: frontier exhausted before reaching target")

	// ErrExpansionBudget indicates the MaxExpansions budget ran out.
	ErrExpansionBudget = errors.New("astar: expansion budget exceeded")

	// ErrAmbiguousFinalize indicates a wire without a pin connection had
	// more or fewer than one forward connection while finalizing a route.
	ErrAmbiguousFinalize = errors.New("astar: branch while finalizing pin chain")

	// ErrBadMaxExpansions indicates WithMaxExpansions received a negative value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Options configures the behavior of Route.
//
// MaxExpansions: hard cap on total node expansions across all sinks of
// one Route call; 0 (the default) means unlimited.
// OnExpand: observation hook invoked for every expanded node.
type Options struct {
	// MaxExpansions caps total expansions per Route call. 0 disables the cap.
	MaxExpansions int

	// OnExpand, if non-nil, is called when a node is popped for expansion,
	// with the node's wire ID, its hop cost, and its queue priority.
	OnExpand func(wireID string, cost, priority int)
}

// Option represents a functional option for configuring Route.
type Option func(*Options)

// WithMaxExpansions caps the total number of node expansions in one Route
// call; exceeding it fails the call with ErrExpansionBudget. Must be
// non-negative; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand installs an observation hook called for every expanded
// node. The hook must not mutate the fabric or the tree.
func WithOnExpand(fn func(wireID string, cost, priority int)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// DefaultOptions returns the Route defaults: unlimited expansions, no hook.
func DefaultOptions() Options {
	return Options{}
}

// Stats reports work done by one Route call.
type Stats struct {
	// Expansions counts nodes popped from the frontier, across all sinks.
	Expansions int

	// Pushes counts nodes inserted into the frontier, across all sinks,
	// including per-sink queue rebuilds.
	Pushes int

	// Sinks holds per-sink counters in routing order.
	Sinks []SinkStats
}

// SinkStats reports work done routing one sink pin.
type SinkStats struct {
	// Pin is the sink pin's name.
	Pin string

	// Expansions counts nodes popped while routing this sink.
	Expansions int
}
