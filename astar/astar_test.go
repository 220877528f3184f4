// Package astar_test contains unit and end-to-end tests for the
// single-net router: input validation, target-wire resolution, search
// behavior over small synthetic fabrics, and bounded-search failures.
package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fabroute/astar"
	"github.com/katalvlaran/fabroute/fabric"
	"github.com/katalvlaran/fabroute/netlist"
	"github.com/katalvlaran/fabroute/routetree"
)

// addWire is a test shorthand that fails fast on builder errors.
func addWire(t *testing.T, f *fabric.Fabric, id string, row, col int) {
	t.Helper()
	_, err := f.AddWire(id, fabric.Tile{Row: row, Col: col})
	require.NoError(t, err)
}

// connect is a test shorthand for a configurable wire→wire connection.
func connect(t *testing.T, f *fabric.Fabric, from, to string) {
	t.Helper()
	_, err := f.Connect(from, to, fabric.WithConfigurable())
	require.NoError(t, err)
}

// diamondNet builds the canonical two-path fabric
//
//	A(0,0) ──► B(0,1) ──► C(0,2)
//	  │                    ▲
//	  └──────► D(1,1) ─────┘
//
// with an output pin on A and an input pin on C, and returns the frozen
// fabric plus a net over both pins.
func diamondNet(t *testing.T) (*fabric.Fabric, *netlist.Net) {
	t.Helper()

	f := fabric.NewFabric()
	addWire(t, f, "A", 0, 0)
	addWire(t, f, "B", 0, 1)
	addWire(t, f, "C", 0, 2)
	addWire(t, f, "D", 1, 1)
	connect(t, f, "A", "B")
	connect(t, f, "B", "C")
	connect(t, f, "A", "D")
	connect(t, f, "D", "C")

	out := fabric.NewSitePin("Q", fabric.Output)
	in := fabric.NewSitePin("IN", fabric.Input)
	_, err := f.ConnectSitePin("A", out)
	require.NoError(t, err)
	_, err = f.ConnectSitePin("C", in)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("sig")
	require.NoError(t, net.AddPin(out))
	require.NoError(t, net.AddPin(in))

	return f, net
}

// preorderWires flattens a routed tree into wire IDs.
func preorderWires(root *routetree.Node) []string {
	var out []string
	for n := range root.Preorder() {
		out = append(out, n.Wire().ID())
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned, in order, before any search begins.
// ------------------------------------------------------------------------

func TestRoute_NilFabric(t *testing.T) {
	_, _, err := astar.Route(nil, netlist.New("n"))
	assert.ErrorIs(t, err, astar.ErrNilFabric)
}

func TestRoute_NilNet(t *testing.T) {
	f := fabric.NewFabric()
	_, _, err := astar.Route(f, nil)
	assert.ErrorIs(t, err, astar.ErrNilNet)
}

func TestRoute_NotFrozen(t *testing.T) {
	f := fabric.NewFabric()
	_, _, err := astar.Route(f, netlist.New("n"))
	assert.ErrorIs(t, err, astar.ErrNotFrozen)
}

func TestRoute_NoSourcePin(t *testing.T) {
	f := fabric.NewFabric()
	addWire(t, f, "A", 0, 0)
	in := fabric.NewSitePin("IN", fabric.Input)
	_, err := f.ConnectSitePin("A", in)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("n")
	require.NoError(t, net.AddPin(in))

	_, _, err = astar.Route(f, net)
	assert.ErrorIs(t, err, netlist.ErrNoSource)
}

func TestRoute_UnboundSourcePin(t *testing.T) {
	f := fabric.NewFabric()
	f.Freeze()

	net := netlist.New("n")
	require.NoError(t, net.AddPin(fabric.NewSitePin("Q", fabric.Output)))
	require.NoError(t, net.AddPin(fabric.NewSitePin("IN", fabric.Input)))

	_, _, err := astar.Route(f, net)
	assert.ErrorIs(t, err, astar.ErrUnboundPin)
}

func TestRoute_NoSinks(t *testing.T) {
	f := fabric.NewFabric()
	addWire(t, f, "A", 0, 0)
	out := fabric.NewSitePin("Q", fabric.Output)
	_, err := f.ConnectSitePin("A", out)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("n")
	require.NoError(t, net.AddPin(out))

	_, _, err = astar.Route(f, net)
	assert.ErrorIs(t, err, astar.ErrNoSinks)
}

func TestWithMaxExpansions_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, astar.ErrBadMaxExpansions.Error(), func() {
		astar.WithMaxExpansions(-1)(&astar.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. End-to-end: single sink over the diamond fabric.
// ------------------------------------------------------------------------

func TestRoute_Diamond_SingleSink(t *testing.T) {
	f, net := diamondNet(t)

	root, stats, err := astar.Route(f, net)
	require.NoError(t, err)
	require.NotNil(t, root)

	// Exactly one path of length two from A to C survives. Tiles make the
	// route through B strictly cheaper, so the result is deterministic.
	assert.Equal(t, []string{"A", "B", "C"}, preorderWires(root))

	// Structural invariant: every sourced node's connection sinks at its wire.
	for n := range root.Preorder() {
		if n.IsSourced() {
			assert.Same(t, n.Wire(), n.Connection().SinkWire())
		}
	}

	// The terminal connects to the sink site pin.
	var leaf *routetree.Node
	for n := range root.Preorder() {
		if n.IsLeaf() {
			leaf = n
		}
	}
	require.NotNil(t, leaf)
	require.NotNil(t, leaf.ConnectingSitePin())
	assert.Equal(t, "IN", leaf.ConnectingSitePin().Name())

	// Exactly the two configuration points of the chosen path, in
	// root-to-leaf order.
	assert.Equal(t, []fabric.ConfigPoint{"A->B", "B->C"}, root.ConfigPoints())

	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.Expansions, "A then B")
	require.Len(t, stats.Sinks, 1)
	assert.Equal(t, "IN", stats.Sinks[0].Pin)
}

func TestRoute_Diamond_Repeatable(t *testing.T) {
	f, net := diamondNet(t)

	first, _, err := astar.Route(f, net)
	require.NoError(t, err)
	second, _, err := astar.Route(f, net)
	require.NoError(t, err)

	// Per-call working state means identical, independent results.
	assert.Equal(t, preorderWires(first), preorderWires(second))
	assert.Equal(t, first.ConfigPoints(), second.ConfigPoints())

	// Routing never mutates the fabric.
	a, _ := f.Wire("A")
	assert.Len(t, a.Connections(), 2)
}

func TestRoute_ExpandHook(t *testing.T) {
	f, net := diamondNet(t)

	var expanded []string
	_, _, err := astar.Route(f, net, astar.WithOnExpand(func(wireID string, cost, priority int) {
		expanded = append(expanded, wireID)
		if wireID == "A" {
			assert.Equal(t, 0, cost)
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, expanded)
}

// ------------------------------------------------------------------------
// 3. Multiple sinks: branch reuse and shared segments.
// ------------------------------------------------------------------------

func TestRoute_TwoSinks_SharedSegment(t *testing.T) {
	// A(0,0) ──► B(0,1) ──► C(0,2)  [sink IN1]
	//                 └───► D(1,1)  [sink IN2]
	f := fabric.NewFabric()
	addWire(t, f, "A", 0, 0)
	addWire(t, f, "B", 0, 1)
	addWire(t, f, "C", 0, 2)
	addWire(t, f, "D", 1, 1)
	connect(t, f, "A", "B")
	connect(t, f, "B", "C")
	connect(t, f, "B", "D")

	out := fabric.NewSitePin("Q", fabric.Output)
	in1 := fabric.NewSitePin("IN1", fabric.Input)
	in2 := fabric.NewSitePin("IN2", fabric.Input)
	_, err := f.ConnectSitePin("A", out)
	require.NoError(t, err)
	_, err = f.ConnectSitePin("C", in1)
	require.NoError(t, err)
	_, err = f.ConnectSitePin("D", in2)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("fanout")
	require.NoError(t, net.AddPin(out))
	require.NoError(t, net.AddPin(in1))
	require.NoError(t, net.AddPin(in2))

	root, stats, err := astar.Route(f, net)
	require.NoError(t, err)

	// The shared A→B segment stays a single node with two children.
	kids := root.Children()
	require.Len(t, kids, 1)
	b := kids[0]
	assert.Equal(t, "B", b.Wire().ID())
	require.Len(t, b.Children(), 2)
	childWires := []string{b.Children()[0].Wire().ID(), b.Children()[1].Wire().ID()}
	assert.ElementsMatch(t, []string{"C", "D"}, childWires)

	require.Len(t, stats.Sinks, 2)
	assert.Equal(t, "IN1", stats.Sinks[0].Pin)
	assert.Equal(t, "IN2", stats.Sinks[1].Pin)
}

// ------------------------------------------------------------------------
// 4. Target resolution and finalization over single-fanout chains.
// ------------------------------------------------------------------------

func TestRoute_CollapsesSingleFanoutChain(t *testing.T) {
	// S ──► X ──► P1 ──► T [sink]; X ──► Q makes X a branch point, so the
	// coarse target resolves to P1 and finalize rebuilds P1→T.
	f := fabric.NewFabric()
	addWire(t, f, "S", 0, 0)
	addWire(t, f, "X", 0, 1)
	addWire(t, f, "P1", 0, 2)
	addWire(t, f, "T", 0, 3)
	addWire(t, f, "Q", 1, 1)
	connect(t, f, "S", "X")
	connect(t, f, "X", "P1")
	connect(t, f, "X", "Q")
	connect(t, f, "P1", "T")

	out := fabric.NewSitePin("Q", fabric.Output)
	in := fabric.NewSitePin("IN", fabric.Input)
	_, err := f.ConnectSitePin("S", out)
	require.NoError(t, err)
	_, err = f.ConnectSitePin("T", in)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("chain")
	require.NoError(t, net.AddPin(out))
	require.NoError(t, net.AddPin(in))

	root, stats, err := astar.Route(f, net)
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "X", "P1", "T"}, preorderWires(root))
	// The P1→T hop comes from finalization, not search: only S and X pop.
	assert.Equal(t, 2, stats.Expansions)
}

// ------------------------------------------------------------------------
// 5. Bounded search: exhausted frontier and expansion budget.
// ------------------------------------------------------------------------

func TestRoute_UnreachableSink(t *testing.T) {
	f := fabric.NewFabric()
	addWire(t, f, "A", 0, 0)
	addWire(t, f, "B", 0, 1)
	addWire(t, f, "C", 5, 5)
	connect(t, f, "A", "B")

	out := fabric.NewSitePin("Q", fabric.Output)
	in := fabric.NewSitePin("IN", fabric.Input)
	_, err := f.ConnectSitePin("A", out)
	require.NoError(t, err)
	_, err = f.ConnectSitePin("C", in)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("island")
	require.NoError(t, net.AddPin(out))
	require.NoError(t, net.AddPin(in))

	root, _, err := astar.Route(f, net)
	assert.Nil(t, root)
	assert.ErrorIs(t, err, astar.ErrNoRoute)
	assert.ErrorContains(t, err, "IN")
}

func TestRoute_ExpansionBudget(t *testing.T) {
	f, net := diamondNet(t)

	// One expansion (A) is not enough to reach C.
	_, _, err := astar.Route(f, net, astar.WithMaxExpansions(1))
	assert.ErrorIs(t, err, astar.ErrExpansionBudget)

	// A generous budget routes normally.
	root, _, err := astar.Route(f, net, astar.WithMaxExpansions(100))
	require.NoError(t, err)
	assert.Len(t, preorderWires(root), 3)
}

// ------------------------------------------------------------------------
// 6. Grid end-to-end: larger fabric, heuristic-guided expansion.
// ------------------------------------------------------------------------

func TestRoute_Grid(t *testing.T) {
	f, err := fabric.Grid(4, 4)
	require.NoError(t, err)

	out := fabric.NewSitePin("Q", fabric.Output)
	in := fabric.NewSitePin("IN", fabric.Input)
	_, err = f.ConnectSitePin(fabric.GridWireID("J", 0, 0), out)
	require.NoError(t, err)
	_, err = f.ConnectSitePin(fabric.GridWireID("J", 3, 3), in)
	require.NoError(t, err)
	f.Freeze()

	net := netlist.New("across")
	require.NoError(t, net.AddPin(out))
	require.NoError(t, net.AddPin(in))

	root, stats, err := astar.Route(f, net)
	require.NoError(t, err)

	wires := preorderWires(root)
	assert.Len(t, wires, 7, "a 4x4 grid crossing is six hops")
	assert.Equal(t, fabric.GridWireID("J", 0, 0), wires[0])
	assert.Equal(t, fabric.GridWireID("J", 3, 3), wires[6])
	assert.Len(t, root.ConfigPoints(), 6)
	assert.Positive(t, stats.Expansions)
	assert.Positive(t, stats.Pushes)
}
