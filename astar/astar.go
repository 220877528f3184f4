package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/fabroute/fabric"
	"github.com/katalvlaran/fabroute/netlist"
	"github.com/katalvlaran/fabroute/routetree"
)

// Route computes a physical route for net over the frozen fabric fab,
// connecting the net's source pin to every input sink pin in net order.
// It returns the finished plain route tree rooted at the source wire,
// together with search statistics.
//
// Preconditions and validation (in order):
//  1. fab must be non-nil (ErrNilFabric).
//  2. net must be non-nil (ErrNilNet).
//  3. fab must be frozen so reverse connections exist (ErrNotFrozen).
//  4. net must have exactly one source pin (netlist.ErrNoSource /
//     netlist.ErrMultipleSources, wrapped).
//  5. the source pin must be bound to a wire (ErrUnboundPin).
//  6. net must have at least one input sink pin (ErrNoSinks).
//
// All validation precedes any mutation; a failed call leaves no state.
func Route(fab *fabric.Fabric, net *netlist.Net, opts ...Option) (*routetree.Node, *Stats, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order.
	if fab == nil {
		return nil, nil, ErrNilFabric
	}
	if net == nil {
		return nil, nil, ErrNilNet
	}
	if !fab.Frozen() {
		return nil, nil, ErrNotFrozen
	}
	src, err := net.SourcePin()
	if err != nil {
		return nil, nil, fmt.Errorf("astar: %w", err)
	}
	startWire := src.ExternalWire()
	if startWire == nil {
		return nil, nil, fmt.Errorf("%w: source pin %q", ErrUnboundPin, src.Name())
	}
	sinks := net.SinkPins()
	if len(sinks) == 0 {
		return nil, nil, fmt.Errorf("%w: net %q", ErrNoSinks, net.Name())
	}

	// 3) All working state is scoped to this call; nothing survives it.
	r := &runner{
		opts:   cfg,
		start:  routetree.NewSearch(startWire),
		source: startWire.Tile(),
		used:   make(map[string]map[string]struct{}),
	}

	// 4) Route every sink in net order, pruning after each terminal so
	//    the tree only ever carries paths that reach a resolved sink.
	terminals := make([]*routetree.SearchNode, 0, len(sinks))
	for _, pin := range sinks {
		target, errT := resolveTargetWire(pin)
		if errT != nil {
			return nil, nil, errT
		}
		r.target = target.Tile()
		r.rebuildQueue()

		terminal, errE := r.expand(pin, target)
		if errE != nil {
			return nil, nil, errE
		}
		terminals = append(terminals, terminal)
		r.start.Prune(terminals...)
	}

	// 5) Hand the caller a plain route tree; the search variant dies here.
	return r.start.ConvertToRouteTree(), &r.stats, nil
}

// runner holds the mutable state of one Route call: the search tree, the
// frontier, and the per-node used-branch sets.
type runner struct {
	opts   Options
	start  *routetree.SearchNode
	pq     searchPQ
	used   map[string]map[string]struct{} // node key → wires already branched to
	source fabric.Tile
	target fabric.Tile
	seq    uint64 // insertion sequence for stable tie-breaking
	stats  Stats
}

// resolveTargetWire returns the coarse target wire for a sink pin:
// starting at the pin's external wire it walks reverse connections
// backward while exactly one reverse hop exists and the upstream wire
// still has a single forward choice, stopping at the first branch point.
// Single-fanout chains collapse into the one hop finalize will rebuild.
func resolveTargetWire(pin *fabric.SitePin) (*fabric.Wire, error) {
	if !pin.IsInput() {
		return nil, fmt.Errorf("%w: %q", ErrNotInputPin, pin.Name())
	}
	sink := pin.ExternalWire()
	if sink == nil {
		return nil, fmt.Errorf("%w: sink pin %q", ErrUnboundPin, pin.Name())
	}

	// seen guards against degenerate single-fanout loops in the fabric.
	seen := map[string]struct{}{sink.ID(): {}}
	for {
		rev := sink.ReverseConnections()
		if len(rev) != 1 {
			break
		}
		prev := rev[0].SourceWire()
		if len(prev.Connections()) > 1 {
			break
		}
		if _, ok := seen[prev.ID()]; ok {
			break
		}
		seen[prev.ID()] = struct{}{}
		sink = prev
	}

	return sink, nil
}

// rebuildQueue discards the frontier and re-inserts every node currently
// in the tree, so priorities are re-evaluated against the new target.
// The tree and the used-branch sets persist across sinks; only the queue
// is rebuilt.
func (r *runner) rebuildQueue() {
	r.pq = r.pq[:0]
	heap.Init(&r.pq)
	for node := range r.start.Preorder() {
		r.push(node)
	}
}

// expand pops the cheapest frontier node and grows the tree along its
// wire's forward connections until target is reached, then finalizes the
// terminal. Fails with ErrNoRoute on an empty frontier and with
// ErrExpansionBudget when the MaxExpansions cap is hit.
func (r *runner) expand(pin *fabric.SitePin, target *fabric.Wire) (*routetree.SearchNode, error) {
	r.stats.Sinks = append(r.stats.Sinks, SinkStats{Pin: pin.Name()})
	sinkStats := &r.stats.Sinks[len(r.stats.Sinks)-1]

	for {
		if r.pq.Len() == 0 {
			return nil, fmt.Errorf("%w: sink pin %q", ErrNoRoute, pin.Name())
		}
		if r.opts.MaxExpansions > 0 && r.stats.Expansions >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionBudget, r.stats.Expansions)
		}

		item := heap.Pop(&r.pq).(*queueItem)
		current := item.node
		r.stats.Expansions++
		sinkStats.Expansions++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(current.Wire().ID(), current.Cost(), item.priority)
		}

		// Wires this node has already branched toward; shared by every
		// queue generation so re-expansion never duplicates children.
		branches := r.used[current.Key()]
		if branches == nil {
			branches = make(map[string]struct{})
			r.used[current.Key()] = branches
		}

		for _, conn := range current.Wire().Connections() {
			sinkWire := conn.SinkWire()

			// Target reached: attach the terminal hop and walk the
			// remaining single-fanout chain to the pin-connected wire.
			if sinkWire == target {
				return r.finalize(current.Attach(conn))
			}

			if _, branched := branches[sinkWire.ID()]; branched {
				continue
			}
			child := current.Attach(conn)
			child.SetCost(current.Cost() + 1)
			r.push(child)
			branches[sinkWire.ID()] = struct{}{}
		}
	}
}

// finalize completes a sink's route by following forward connections from
// the reached target wire until a wire with a pin connection, attaching
// one node per hop. Each intermediate wire must offer exactly one forward
// choice; anything else is ErrAmbiguousFinalize.
func (r *runner) finalize(node *routetree.SearchNode) (*routetree.SearchNode, error) {
	for len(node.Wire().PinConnections()) == 0 {
		conns := node.Wire().Connections()
		if len(conns) != 1 {
			return nil, fmt.Errorf("%w: wire %q has %d forward connections",
				ErrAmbiguousFinalize, node.Wire().ID(), len(conns))
		}
		node = node.Attach(conns[0])
	}

	return node, nil
}

// push inserts node into the frontier, priced against the current target.
func (r *runner) push(node *routetree.SearchNode) {
	r.seq++
	heap.Push(&r.pq, &queueItem{node: node, priority: r.priority(node), seq: r.seq})
	r.stats.Pushes++
}

// priority combines hop cost with Manhattan distance to the target and
// back to the source, keeping the frontier near the source's neighborhood.
func (r *runner) priority(node *routetree.SearchNode) int {
	tile := node.Wire().Tile()

	return node.Cost() + tile.Distance(r.target) + tile.Distance(r.source)
}

// queueItem pairs a search node with its priority at insertion time and
// an insertion sequence number for stable tie-breaking.
type queueItem struct {
	node     *routetree.SearchNode
	priority int
	seq      uint64
}

// searchPQ is a min-heap of *queueItem ordered by priority, then by
// insertion sequence. Entries are priced when pushed; the queue is
// rebuilt per sink rather than re-priced in place.
type searchPQ []*queueItem

// Len returns the number of items in the heap.
func (pq searchPQ) Len() int { return len(pq) }

// Less orders by priority ascending, insertion sequence as tie-break.
func (pq searchPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq searchPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *queueItem.
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
