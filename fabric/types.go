// Package fabric defines core types, options, and sentinel errors for the
// interconnect-fabric model: tiles, wires, connections, and pins.
package fabric

import (
	"errors"
	"strconv"
)

// Sentinel errors for fabric construction and queries.
var (
	// ErrEmptyWireID indicates AddWire was called with an empty wire ID.
	ErrEmptyWireID = errors.New("fabric: wire ID is empty")

	// ErrDuplicateWire indicates AddWire was called with an existing ID.
	ErrDuplicateWire = errors.New("fabric: wire already exists")

	// ErrWireNotFound indicates an operation referenced a missing wire.
	ErrWireNotFound = errors.New("fabric: wire not found")

	// ErrSelfConnection indicates Connect was called with identical endpoints.
	ErrSelfConnection = errors.New("fabric: wire cannot connect to itself")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("fabric: fabric is frozen")

	// ErrNilPin indicates a nil pin was passed to ConnectSitePin or ConnectBelPin.
	ErrNilPin = errors.New("fabric: pin is nil")

	// ErrPinBound indicates the pin is already bound to a wire.
	ErrPinBound = errors.New("fabric: pin already bound to a wire")

	// ErrBadDimensions indicates Grid was called with non-positive dimensions.
	ErrBadDimensions = errors.New("fabric: grid dimensions must be positive")
)

// Tile is the spatial coordinate of a wire within the fabric.
type Tile struct {
	// Row is the vertical coordinate, increasing downward.
	Row int

	// Col is the horizontal coordinate, increasing rightward.
	Col int
}

// Distance returns the Manhattan distance |ΔRow| + |ΔCol| between t and o.
// Complexity: O(1).
func (t Tile) Distance(o Tile) int {
	dr := t.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := t.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// String renders the tile as "(row,col)".
func (t Tile) String() string {
	return "(" + strconv.Itoa(t.Row) + "," + strconv.Itoa(t.Col) + ")"
}

// ConfigPoint is the identity of a configurable (programmable) interconnect
// point. Setting the point physically realizes its connection.
type ConfigPoint string

// PinDirection classifies a SitePin as an input or output of its site.
type PinDirection int

const (
	// Input marks a site pin that receives a signal and must be routed to.
	Input PinDirection = iota

	// Output marks a site pin that drives a signal onto the fabric.
	Output
)

// String returns "input" or "output".
func (d PinDirection) String() string {
	if d == Output {
		return "output"
	}

	return "input"
}

// ConnOption configures properties of individual connections when added.
type ConnOption func(*Connection)

// WithConfigurable marks the connection as a programmable interconnect
// point; its ConfigPoint identity is derived from its endpoints.
func WithConfigurable() ConnOption {
	return func(c *Connection) { c.configurable = true }
}

// GridOption configures the synthetic Grid fabric generator.
type GridOption func(*gridOptions)

// gridOptions holds tunable parameters for Grid.
type gridOptions struct {
	prefix string // wire-ID prefix for generated junction wires
}

// WithGridPrefix overrides the default "J" prefix of generated wire IDs.
func WithGridPrefix(prefix string) GridOption {
	return func(o *gridOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// defaultGridOptions returns the Grid defaults: prefix "J".
func defaultGridOptions() gridOptions {
	return gridOptions{prefix: "J"}
}
