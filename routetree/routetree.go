package routetree

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/fabroute/fabric"
)

// ref constrains the node-pointer type threaded through base, letting the
// shared implementation reach the embedded base of any parent or child
// regardless of the concrete variant.
type ref[PT any] interface {
	comparable
	// rtBase returns the node's embedded *base[PT] as an any; it is
	// declared untyped here because Go rejects a constraint that refers
	// back to the generic type it constrains. rb recovers the real type.
	rtBase() any
}

// rb recovers the embedded base of a node from its untyped rtBase result.
func rb[PT ref[PT]](p PT) *base[PT] { return p.rtBase().(*base[PT]) }

// base carries the self-referential structure shared by Node and
// SearchNode: the wire a node represents, its incoming connection, its
// single parent, and its ordered children. Each variant supplies a
// factory (fresh) so shared operations can construct children of the
// right concrete type.
type base[PT ref[PT]] struct {
	wire     *fabric.Wire
	conn     *fabric.Connection
	self     PT
	parent   PT
	children []PT
	fresh    func(w *fabric.Wire, c *fabric.Connection) PT
}

// init wires up a freshly allocated node. Called by variant constructors.
func (b *base[PT]) init(self PT, w *fabric.Wire, c *fabric.Connection, fresh func(*fabric.Wire, *fabric.Connection) PT) {
	b.self = self
	b.wire = w
	b.conn = c
	b.fresh = fresh
}

// Wire returns the wire this node represents. Fixed at construction.
func (b *base[PT]) Wire() *fabric.Wire { return b.wire }

// Connection returns the incoming connection this node represents, or nil
// for an unsourced root.
func (b *base[PT]) Connection() *fabric.Connection { return b.conn }

// Parent returns this node's parent, or the zero value for a root.
func (b *base[PT]) Parent() PT { return b.parent }

// Children returns a copy of this node's ordered child list.
func (b *base[PT]) Children() []PT {
	out := make([]PT, len(b.children))
	copy(out, b.children)

	return out
}

// IsSourced reports whether this node has a parent.
func (b *base[PT]) IsSourced() bool {
	var zero PT

	return b.parent != zero
}

// IsLeaf reports whether this node has no children. In a fully routed
// tree a leaf should connect to a site pin or bel pin.
func (b *base[PT]) IsLeaf() bool { return len(b.children) == 0 }

// Key returns the node's map/set identity, derived from its incoming
// connection; two nodes representing the same connection share a key.
// Roots are keyed by their wire instead.
func (b *base[PT]) Key() string {
	if b.conn != nil {
		return b.conn.ID()
	}

	return "root:" + b.wire.ID()
}

// Root walks parent links upward and returns the tree's root.
// Complexity: O(depth).
func (b *base[PT]) Root() PT {
	cur := b.self
	for rb(cur).IsSourced() {
		cur = rb(cur).parent
	}

	return cur
}

// Attach creates a child node for the sink wire of c, links it under this
// node, and returns it. The caller guarantees c leaves this node's wire.
func (b *base[PT]) Attach(c *fabric.Connection) PT {
	child := b.fresh(c.SinkWire(), c)
	rb(child).parent = b.self
	b.children = append(b.children, child)

	return child
}

// AttachNode attaches a pre-existing, unparented node as a child via c.
// Returns ErrAlreadySourced if the node has a parent, or ErrConnMismatch
// if c does not sink at the node's wire. On success the node's parent
// link and stored connection are updated.
func (b *base[PT]) AttachNode(c *fabric.Connection, child PT) error {
	cb := rb(child)
	if cb.IsSourced() {
		return fmt.Errorf("%w: node %s", ErrAlreadySourced, cb.Key())
	}
	if sw := c.SinkWire(); sw == nil || sw != cb.wire {
		return fmt.Errorf("%w: connection %s, node wire %s", ErrConnMismatch, c.ID(), cb.wire.ID())
	}

	cb.parent = b.self
	cb.conn = c
	b.children = append(b.children, child)

	return nil
}

// Detach removes every direct child whose incoming connection equals c,
// clearing its parent link. Grandchildren are not searched; the detached
// subtrees stay intact below their (now parentless) roots.
func (b *base[PT]) Detach(c *fabric.Connection) {
	var zero PT
	kept := b.children[:0]
	for _, child := range b.children {
		cb := rb(child)
		if cb.conn != nil && cb.conn.ID() == c.ID() {
			cb.parent = zero
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(b.children); i++ {
		b.children[i] = zero
	}
	b.children = kept
}

// DetachAll removes every descendant reached through a connection equal
// to c, depth-first.
func (b *base[PT]) DetachAll(c *fabric.Connection) {
	b.Detach(c)
	for _, child := range b.children {
		rb(child).DetachAll(c)
	}
}

// DeepCopy returns a structurally identical, fully independent tree:
// new node instances, same wire and connection references. Mutating the
// copy never affects the original.
func (b *base[PT]) DeepCopy() PT {
	cp := b.fresh(b.wire, b.conn)
	cpb := rb(cp)
	for _, child := range b.children {
		childCopy := rb(child).DeepCopy()
		rb(childCopy).parent = cp
		cpb.children = append(cpb.children, childCopy)
	}

	return cp
}

// Prune removes, bottom-up, every subtree containing none of the given
// terminal nodes. A node survives if it keeps at least one child after
// recursive pruning or is itself one of the terminals. Reports whether
// this node survived. Terminals are matched by node identity, so a
// duplicate node built for the same connection does not shield a subtree.
func (b *base[PT]) Prune(terminals ...PT) bool {
	keep := make(map[PT]struct{}, len(terminals))
	for _, t := range terminals {
		keep[t] = struct{}{}
	}

	return b.prune(keep)
}

func (b *base[PT]) prune(keep map[PT]struct{}) bool {
	var zero PT
	kept := b.children[:0]
	for _, child := range b.children {
		if rb(child).prune(keep) {
			kept = append(kept, child)
			continue
		}
		rb(child).parent = zero
	}
	for i := len(kept); i < len(b.children); i++ {
		b.children[i] = zero
	}
	b.children = kept

	if len(b.children) > 0 {
		return true
	}
	_, ok := keep[b.self]

	return ok
}

// Preorder returns a lazy, restartable preorder sequence of all nodes
// reachable from this node: each node is yielded strictly before its
// descendants, children in child-list order. The walk is driven by an
// explicit stack, so deep chains cannot exhaust the call stack.
// Complexity: O(n) over the nodes yielded.
func (b *base[PT]) Preorder() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		stack := []PT{b.self}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			// Push children in reverse so they pop in child-list order.
			kids := rb(cur).children
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
}

// ConfigPoints walks the whole tree from its root in preorder and
// collects the configuration point of every configurable connection.
// The result lists points in root-to-leaf discovery order.
func (b *base[PT]) ConfigPoints() []fabric.ConfigPoint {
	var points []fabric.ConfigPoint
	root := b.Root()
	for n := range rb(root).Preorder() {
		if c := rb(n).conn; c != nil && c.IsConfigurable() {
			points = append(points, c.ConfigPoint())
		}
	}

	return points
}

// ConnectingSitePin returns the site pin connected to this node's wire,
// or nil if the wire has no pin connection.
func (b *base[PT]) ConnectingSitePin() *fabric.SitePin {
	pins := b.wire.PinConnections()
	if len(pins) == 0 {
		return nil
	}

	return pins[0].SitePin()
}

// ConnectingBelPin returns the bel pin connected to this node's wire, or
// nil if the wire has no terminal connection.
func (b *base[PT]) ConnectingBelPin() *fabric.BelPin {
	terms := b.wire.Terminals()
	if len(terms) == 0 {
		return nil
	}

	return terms[0].BelPin()
}

// Node is the plain route-tree variant consumed downstream of routing.
type Node struct {
	base[*Node]
}

// rtBase exposes the embedded base to the shared implementation.
func (n *Node) rtBase() any { return &n.base }

// New creates a bare route-tree root at the given wire, with no incoming
// connection.
func New(w *fabric.Wire) *Node {
	return newNode(w, nil)
}

// newNode is the Node construction factory used by the shared operations.
func newNode(w *fabric.Wire, c *fabric.Connection) *Node {
	n := &Node{}
	n.base.init(n, w, c, newNode)

	return n
}
