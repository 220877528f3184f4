// Package fabric models the static interconnect graph a router searches:
// wires joined by directed connections, placed on a grid of tiles, and
// terminated by site-level and primitive-level pins.
//
// Overview:
//
//   - A Fabric is built incrementally (AddWire, Connect, ConnectSitePin,
//     ConnectBelPin) and then frozen with Freeze, which derives the
//     reverse-connection index and makes the fabric immutable.
//   - After Freeze every query (Connections, ReverseConnections,
//     PinConnections, Terminals, Tile) is a lock-free, read-only lookup.
//   - Connections are identified by a unique ID and may carry a
//     ConfigPoint — the identity of the programmable interconnect point
//     that must be set to realize the connection physically.
//
// When to use:
//
//   - As the device model consumed by the astar router and the routetree
//     package.
//   - To build synthetic fabrics for tests and benchmarks; see Grid for a
//     ready-made rows×cols switch-matrix generator.
//
// Key features:
//
//   - Two-phase lifecycle: mutable build phase, immutable query phase.
//     Mutations after Freeze fail with ErrFrozen; reverse-connection
//     queries before Freeze are meaningless and routing against an
//     unfrozen fabric is rejected by the router.
//   - Deterministic ordering: forward connections keep insertion order,
//     reverse connections are derived in sorted-wire order at Freeze.
//   - Thread safety: the build phase is guarded by a sync.RWMutex, the
//     same locking discipline as the rest of the library's mutable types.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyWireID:   AddWire called with an empty ID.
//   - ErrDuplicateWire: AddWire called with an ID already present.
//   - ErrWireNotFound:  Connect/ConnectSitePin referenced a missing wire.
//   - ErrSelfConnection: Connect called with identical endpoints.
//   - ErrFrozen:        any mutation attempted after Freeze.
//   - ErrNilPin:        ConnectSitePin/ConnectBelPin called with nil pin.
//   - ErrPinBound:      the pin is already bound to another wire.
//   - ErrBadDimensions: Grid called with rows < 1 or cols < 1.
//
// See also:
//
//   - routetree: consumes Wire and Connection to represent routed paths.
//   - astar: searches a frozen Fabric for a route.
package fabric
