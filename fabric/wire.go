package fabric

// Wire is one segment of the interconnect fabric. Its identity and tile
// are fixed at creation; its connection sets grow during the build phase
// and become effectively immutable after Fabric.Freeze.
//
// All slice-returning queries expose internal storage for speed (they sit
// on the router's hot path); callers must treat the results as read-only.
type Wire struct {
	id   string
	tile Tile

	conns     []*Connection // forward wire→wire connections, insertion order
	reverse   []*Connection // wire→wire connections sinking here; derived at Freeze
	pinConns  []*Connection // connections terminating at a SitePin
	terminals []*Connection // connections terminating at a BelPin
}

// ID returns the wire's unique identifier.
func (w *Wire) ID() string { return w.id }

// Tile returns the tile coordinate owning this wire.
func (w *Wire) Tile() Tile { return w.tile }

// Connections returns the forward wire→wire connections of this wire,
// in insertion order. Read-only.
func (w *Wire) Connections() []*Connection { return w.conns }

// ReverseConnections returns the wire→wire connections whose sink is this
// wire. Empty until the fabric is frozen. Read-only.
func (w *Wire) ReverseConnections() []*Connection { return w.reverse }

// PinConnections returns the connections terminating at a site pin.
// Read-only.
func (w *Wire) PinConnections() []*Connection { return w.pinConns }

// Terminals returns the connections terminating at a primitive (bel) pin.
// Read-only.
func (w *Wire) Terminals() []*Connection { return w.terminals }

// Connection is a directed edge from one wire to another wire, a site pin,
// or a bel pin. Connections are immutable once created and are identified
// by a unique ID, suitable as a map/set key.
type Connection struct {
	id     string
	source *Wire

	// Exactly one of the following three is non-nil.
	sink    *Wire
	sitePin *SitePin
	belPin  *BelPin

	configurable bool
}

// ID returns the connection's unique identifier.
func (c *Connection) ID() string { return c.id }

// SourceWire returns the wire this connection leaves.
func (c *Connection) SourceWire() *Wire { return c.source }

// SinkWire returns the wire this connection enters, or nil for a
// pin-terminating connection.
func (c *Connection) SinkWire() *Wire { return c.sink }

// SitePin returns the site pin this connection terminates at, or nil.
func (c *Connection) SitePin() *SitePin { return c.sitePin }

// BelPin returns the bel pin this connection terminates at, or nil.
func (c *Connection) BelPin() *BelPin { return c.belPin }

// IsPin reports whether the connection terminates at a site pin.
func (c *Connection) IsPin() bool { return c.sitePin != nil }

// IsTerminal reports whether the connection terminates at a bel pin.
func (c *Connection) IsTerminal() bool { return c.belPin != nil }

// IsConfigurable reports whether the connection is a programmable
// interconnect point.
func (c *Connection) IsConfigurable() bool { return c.configurable }

// ConfigPoint returns the configuration-point identity of a configurable
// connection; the empty ConfigPoint for direct connections.
func (c *Connection) ConfigPoint() ConfigPoint {
	if !c.configurable {
		return ""
	}

	return ConfigPoint(c.source.id + "->" + c.endpointName())
}

// endpointName names the far end of the connection for IDs and config points.
func (c *Connection) endpointName() string {
	switch {
	case c.sink != nil:
		return c.sink.id
	case c.sitePin != nil:
		return c.sitePin.name
	default:
		return c.belPin.name
	}
}

// SitePin is a site-level terminal of the fabric. A pin is bound to at
// most one external wire (via Fabric.ConnectSitePin); routing to or from
// a site starts at that wire.
type SitePin struct {
	name     string
	dir      PinDirection
	external *Wire
}

// NewSitePin creates an unbound site pin with the given name and direction.
func NewSitePin(name string, dir PinDirection) *SitePin {
	return &SitePin{name: name, dir: dir}
}

// Name returns the pin's name.
func (p *SitePin) Name() string { return p.name }

// Direction returns whether the pin is an Input or Output.
func (p *SitePin) Direction() PinDirection { return p.dir }

// IsInput reports whether the pin receives a signal (must be routed to).
func (p *SitePin) IsInput() bool { return p.dir == Input }

// ExternalWire returns the fabric wire the pin is bound to, or nil if the
// pin has not been connected yet.
func (p *SitePin) ExternalWire() *Wire { return p.external }

// BelPin is a primitive-level terminal of the fabric.
type BelPin struct {
	name string
}

// NewBelPin creates a bel pin with the given name.
func NewBelPin(name string) *BelPin {
	return &BelPin{name: name}
}

// Name returns the pin's name.
func (p *BelPin) Name() string { return p.name }
