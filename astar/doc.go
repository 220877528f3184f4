// Package astar implements a single-net A*-style router over a frozen
// fabric: best-first search that grows a route tree from a net's source
// wire to the target wire of each sink pin in turn, reusing branches
// discovered for earlier sinks.
//
// Overview:
//
//   - Route resolves the net's source pin to its external wire, builds a
//     one-node search tree there, and routes each input sink pin in net
//     order.
//   - Per sink, the target wire is resolved by walking the sink pin's
//     reverse connections backward through single-fanout chains until a
//     true branch point, collapsing already-determined wire runs into one
//     coarse hop.
//   - The frontier is a priority queue rebuilt from the whole tree at the
//     start of every sink, so node priorities are re-evaluated against the
//     new target; per-node used-branch sets persist with the tree and stop
//     a node from expanding twice toward the same wire.
//   - When a sink's target is reached, the route is finalized by following
//     single-choice connections forward until a pin-connected wire, then
//     the tree is pruned to the accumulated terminal set.
//   - After the last sink, the search tree is converted into a plain
//     routetree.Node, the package's output artifact.
//
// Cost model:
//
//	priority = cost(node) + manhattan(node, target) + manhattan(node, source)
//
// cost is the hop count from the root. The distance-back-to-source term
// biases the search toward compact trees near the source wire, at the
// price of admissibility. Ties are broken by queue insertion order, so a
// given fabric and net always route the same way.
//
// Bounded search:
//
// An unroutable sink never spins the router forever: an exhausted frontier
// yields ErrNoRoute, and WithMaxExpansions installs a hard budget yielding
// ErrExpansionBudget.
//
// Error handling (sentinel errors):
//
//   - ErrNilFabric:         Route received a nil fabric.
//   - ErrNilNet:            Route received a nil net.
//   - ErrNotFrozen:         the fabric has no reverse-connection data yet.
//   - ErrNoSinks:           the net has no input pins to route.
//   - ErrNotInputPin:       a sink pin is not an input.
//   - ErrUnboundPin:        a pin has no external wire.
//   - ErrNoRoute:           the frontier drained before reaching a target.
//   - ErrExpansionBudget:   the WithMaxExpansions budget ran out.
//   - ErrAmbiguousFinalize: a branch appeared mid-finalize where a
//     single-fanout chain was required.
//
// All validation happens before any search state is built, so a failed
// Route never leaves partial state behind; every call owns fresh working
// maps and queues.
//
// Complexity:
//
//   - Per sink, each tree node is expanded at most once per queue build
//     and each wire is branched to at most once per node, so expansion is
//     O(E log N) in fabric edges and tree size; queue rebuilds add O(N log N)
//     per sink.
//
// See also:
//
//   - routetree: the tree grown here and handed to callers.
//   - fabric: the read-only interconnect graph being searched.
package astar
