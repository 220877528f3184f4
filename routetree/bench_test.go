package routetree_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/fabroute/fabric"
	"github.com/katalvlaran/fabroute/routetree"
)

// benchChain builds a single-fanout chain of n wires and the route tree
// spanning it, returning the root and the tip.
func benchChain(b *testing.B, n int) (*routetree.Node, *routetree.Node) {
	b.Helper()

	f := fabric.NewFabric()
	prev := "W0"
	if _, err := f.AddWire(prev, fabric.Tile{}); err != nil {
		b.Fatal(err)
	}
	conns := make([]*fabric.Connection, 0, n-1)
	for i := 1; i < n; i++ {
		id := "W" + strconv.Itoa(i)
		if _, err := f.AddWire(id, fabric.Tile{Col: i}); err != nil {
			b.Fatal(err)
		}
		c, err := f.Connect(prev, id)
		if err != nil {
			b.Fatal(err)
		}
		conns = append(conns, c)
		prev = id
	}
	f.Freeze()

	w0, _ := f.Wire("W0")
	root := routetree.New(w0)
	tip := root
	for _, c := range conns {
		tip = tip.Attach(c)
	}

	return root, tip
}

func BenchmarkPreorder_Chain1k(b *testing.B) {
	root, _ := benchChain(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		for range root.Preorder() {
			count++
		}
		if count != 1000 {
			b.Fatalf("unexpected node count %d", count)
		}
	}
}

func BenchmarkDeepCopy_Chain1k(b *testing.B) {
	root, _ := benchChain(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if cp := root.DeepCopy(); cp == nil {
			b.Fatal("nil copy")
		}
	}
}

func BenchmarkPrune_Chain1k(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		root, tip := benchChain(b, 1000)
		b.StartTimer()
		if !root.Prune(tip) {
			b.Fatal("prune dropped the terminal path")
		}
	}
}
