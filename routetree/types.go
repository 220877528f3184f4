// Package routetree defines sentinel errors shared by the route-tree
// variants.
package routetree

import "errors"

// Sentinel errors for tree assembly.
var (
	// ErrAlreadySourced indicates AttachNode received a node that already
	// has a parent.
	ErrAlreadySourced = errors.New("routetree: node already sourced")

	// ErrConnMismatch indicates AttachNode received a connection whose sink
	// wire differs from the node's wire.
	ErrConnMismatch = errors.New("routetree: connection does not sink at node wire")
)
