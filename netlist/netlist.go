// Package netlist models the logical nets a router must realize: each net
// names one source site pin that drives the signal and any number of sink
// site pins that receive it.
//
// A Net is a thin, ordered collection of fabric.SitePin values. The
// router resolves the source pin to its external wire, routes to every
// input pin in the order they were added, and ignores output pins beyond
// the single driver.
package netlist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fabroute/fabric"
)

// Sentinel errors for net construction and queries.
var (
	// ErrNilPin is returned when AddPin receives a nil pin.
	ErrNilPin = errors.New("netlist: pin is nil")

	// ErrNoSource is returned when a net has no output (driver) pin.
	ErrNoSource = errors.New("netlist: net has no source pin")

	// ErrMultipleSources is returned when a net has more than one output pin.
	ErrMultipleSources = errors.New("netlist: net has multiple source pins")
)

// Net is one logical net: a named signal with one driver and a set of
// receivers. Pins keep insertion order; the router visits sinks in that
// order.
type Net struct {
	name string
	pins []*fabric.SitePin
}

// New creates an empty net with the given name.
func New(name string) *Net {
	return &Net{name: name}
}

// Name returns the net's name.
func (n *Net) Name() string { return n.name }

// AddPin appends a site pin to the net. Returns ErrNilPin for nil input.
func (n *Net) AddPin(p *fabric.SitePin) error {
	if p == nil {
		return ErrNilPin
	}
	n.pins = append(n.pins, p)

	return nil
}

// Pins returns all pins of the net in insertion order. Read-only.
func (n *Net) Pins() []*fabric.SitePin { return n.pins }

// SourcePin returns the net's single output pin. Returns ErrNoSource if
// the net has no output pin and ErrMultipleSources if it has more than one.
func (n *Net) SourcePin() (*fabric.SitePin, error) {
	var src *fabric.SitePin
	for _, p := range n.pins {
		if p.IsInput() {
			continue
		}
		if src != nil {
			return nil, fmt.Errorf("%w: net %q", ErrMultipleSources, n.name)
		}
		src = p
	}
	if src == nil {
		return nil, fmt.Errorf("%w: net %q", ErrNoSource, n.name)
	}

	return src, nil
}

// SinkPins returns the net's input pins in insertion order.
func (n *Net) SinkPins() []*fabric.SitePin {
	sinks := make([]*fabric.SitePin, 0, len(n.pins))
	for _, p := range n.pins {
		if p.IsInput() {
			sinks = append(sinks, p)
		}
	}

	return sinks
}
