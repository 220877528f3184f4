package routetree

import "github.com/katalvlaran/fabroute/fabric"

// SearchNode is the cost-bearing route-tree variant used while a route is
// being searched. Cost is the hop count from the tree's root along the
// path used to reach this node; queue ordering between search nodes is
// defined by the router, not here, because it depends on the router's
// moving target.
type SearchNode struct {
	base[*SearchNode]
	cost int
}

// rtBase exposes the embedded base to the shared implementation.
func (s *SearchNode) rtBase() any { return &s.base }

// NewSearch creates a bare search-tree root at the given wire.
func NewSearch(w *fabric.Wire) *SearchNode {
	return newSearchNode(w, nil)
}

// newSearchNode is the SearchNode construction factory used by the shared
// operations. Fresh nodes start at cost zero.
func newSearchNode(w *fabric.Wire, c *fabric.Connection) *SearchNode {
	s := &SearchNode{}
	s.base.init(s, w, c, newSearchNode)

	return s
}

// Cost returns the hop count from the root to this node.
func (s *SearchNode) Cost() int { return s.cost }

// SetCost records the hop count from the root to this node.
func (s *SearchNode) SetCost(cost int) { s.cost = cost }

// ConvertToRouteTree rebuilds this search tree as a plain route tree by
// re-attaching every connection onto freshly constructed plain nodes in
// preorder, discarding costs. The search tree is left untouched.
func (s *SearchNode) ConvertToRouteTree() *Node {
	root := newNode(s.wire, s.conn)
	s.convertChildren(root)

	return root
}

// convertChildren mirrors s's subtree below the plain node dst.
func (s *SearchNode) convertChildren(dst *Node) {
	for _, child := range s.children {
		child.convertChildren(dst.Attach(child.conn))
	}
}
