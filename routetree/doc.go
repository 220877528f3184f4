// Package routetree implements the mutable, self-referential tree of
// connections that represents one net's physical path through a fabric.
//
// Overview:
//
//   - A tree is a set of nodes reachable from a single root. The root
//     represents an unsourced starting wire and carries no incoming
//     connection; every other node represents exactly one connection's
//     destination wire.
//   - Node is the plain variant consumed downstream; SearchNode is the
//     cost-bearing variant used transiently by the astar router and
//     converted to a plain tree when routing finishes.
//   - Both variants share one implementation, parameterized by a
//     construction factory, so the shared code never needs to know which
//     concrete variant it is growing.
//
// Operations:
//
//   - Attach / AttachNode: grow the tree by one connection, either by
//     creating the child or by adopting a pre-built, unparented node.
//   - Detach / DetachAll: remove children (or any descendants) reached
//     through a given connection, clearing their parent links.
//   - DeepCopy: a structurally identical, fully independent tree sharing
//     wire and connection references with the original.
//   - Prune: bottom-up removal of every subtree containing none of the
//     given terminal nodes.
//   - Preorder: a lazy, restartable preorder sequence driven by an
//     explicit work stack, so arbitrarily deep trees cannot exhaust the
//     call stack during traversal.
//   - ConfigPoints: the configuration points of every configurable
//     connection in the tree, collected in preorder from the root.
//
// Invariants:
//
//   - A node has at most one parent at any time.
//   - A sourced node's incoming connection sinks at the node's own wire.
//   - Parent links never form a cycle.
//   - Key() is derived from the incoming connection, so two nodes built
//     for the same connection collide as map/set keys.
//
// Error handling (sentinel errors):
//
//   - ErrAlreadySourced: AttachNode received a node that has a parent.
//   - ErrConnMismatch:   AttachNode received a connection that does not
//     sink at the node's wire.
//
// Complexity:
//
//   - Attach, Detach: O(1) / O(children).
//   - DeepCopy, Prune, Preorder, ConfigPoints: O(n) in tree size.
//
// See also:
//
//   - astar: grows a SearchNode tree and converts it into a Node tree.
//   - fabric: supplies the Wire and Connection identities nodes carry.
package routetree
