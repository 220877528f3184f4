package fabric

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Fabric is the in-memory interconnect graph. It has a two-phase
// lifecycle: a mutable build phase (AddWire, Connect, ConnectSitePin,
// ConnectBelPin) followed by Freeze, after which the fabric is immutable
// and every query is a plain read.
//
// mu guards all mutable state during the build phase. Once frozen, no
// state changes, so concurrent queries need no locking.
type Fabric struct {
	mu sync.RWMutex

	wires      map[string]*Wire
	nextConnID uint64
	frozen     bool
}

// NewFabric creates an empty, unfrozen fabric.
// Complexity: O(1).
func NewFabric() *Fabric {
	return &Fabric{wires: make(map[string]*Wire)}
}

// AddWire creates a wire with the given unique ID at the given tile.
// Returns ErrEmptyWireID, ErrDuplicateWire, or ErrFrozen.
// Complexity: O(1).
func (f *Fabric) AddWire(id string, tile Tile) (*Wire, error) {
	if id == "" {
		return nil, ErrEmptyWireID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.frozen {
		return nil, ErrFrozen
	}
	if _, exists := f.wires[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateWire, id)
	}

	w := &Wire{id: id, tile: tile}
	f.wires[id] = w

	return w, nil
}

// Wire returns the wire with the given ID, or false if absent.
// Complexity: O(1).
func (f *Fabric) Wire(id string) (*Wire, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	w, ok := f.wires[id]

	return w, ok
}

// Wires returns all wire IDs in sorted order.
// Complexity: O(V log V).
func (f *Fabric) Wires() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]string, 0, len(f.wires))
	for id := range f.wires {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Connect adds a directed wire→wire connection from fromID to toID.
// Options: WithConfigurable marks the connection as a programmable
// interconnect point. Returns ErrWireNotFound, ErrSelfConnection, or
// ErrFrozen. Complexity: O(1).
func (f *Fabric) Connect(fromID, toID string, opts ...ConnOption) (*Connection, error) {
	if fromID == toID {
		return nil, fmt.Errorf("%w: %q", ErrSelfConnection, fromID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.frozen {
		return nil, ErrFrozen
	}
	from, ok := f.wires[fromID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWireNotFound, fromID)
	}
	to, ok := f.wires[toID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWireNotFound, toID)
	}

	c := &Connection{source: from, sink: to}
	for _, opt := range opts {
		opt(c)
	}
	c.id = f.connID(c)
	from.conns = append(from.conns, c)

	return c, nil
}

// ConnectSitePin binds pin to the wire with the given ID and records a
// pin-terminating connection on that wire. Returns ErrNilPin, ErrPinBound,
// ErrWireNotFound, or ErrFrozen. Complexity: O(1).
func (f *Fabric) ConnectSitePin(wireID string, pin *SitePin) (*Connection, error) {
	if pin == nil {
		return nil, ErrNilPin
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.frozen {
		return nil, ErrFrozen
	}
	if pin.external != nil {
		return nil, fmt.Errorf("%w: pin %q on wire %q", ErrPinBound, pin.name, pin.external.id)
	}
	w, ok := f.wires[wireID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWireNotFound, wireID)
	}

	c := &Connection{source: w, sitePin: pin}
	c.id = f.connID(c)
	w.pinConns = append(w.pinConns, c)
	pin.external = w

	return c, nil
}

// ConnectBelPin records a terminal (bel-pin) connection on the wire with
// the given ID. Returns ErrNilPin, ErrWireNotFound, or ErrFrozen.
// Complexity: O(1).
func (f *Fabric) ConnectBelPin(wireID string, pin *BelPin) (*Connection, error) {
	if pin == nil {
		return nil, ErrNilPin
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.frozen {
		return nil, ErrFrozen
	}
	w, ok := f.wires[wireID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWireNotFound, wireID)
	}

	c := &Connection{source: w, belPin: pin}
	c.id = f.connID(c)
	w.terminals = append(w.terminals, c)

	return c, nil
}

// Freeze derives the reverse-connection index and makes the fabric
// immutable. Reverse lists are built by scanning wires in sorted-ID order
// so their contents are deterministic. Freeze is idempotent.
// Complexity: O(V log V + E).
func (f *Fabric) Freeze() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.frozen {
		return
	}

	ids := make([]string, 0, len(f.wires))
	for id := range f.wires {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, c := range f.wires[id].conns {
			c.sink.reverse = append(c.sink.reverse, c)
		}
	}
	f.frozen = true
}

// Frozen reports whether Freeze has been called.
func (f *Fabric) Frozen() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.frozen
}

// connID generates a unique, human-readable connection identifier.
// Caller must hold mu.
func (f *Fabric) connID(c *Connection) string {
	f.nextConnID++

	return c.source.id + "->" + c.endpointName() + "#" + strconv.FormatUint(f.nextConnID, 10)
}
