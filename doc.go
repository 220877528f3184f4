// Package fabroute is an in-memory toolkit for computing physical signal
// routes through a fixed interconnect fabric — the kind of wire/switchbox
// graph found in FPGA-like devices.
//
// 🚀 What is fabroute?
//
//	A small, focused library that brings together:
//		• Fabric model: wires, directed connections, tiles and pins,
//		  built once and frozen into a read-only interconnect graph
//		• Route trees: a mutable tree of connections representing one
//		  net's physical path — attach, detach, deep-copy, prune, traverse
//		• A* router: best-first search connecting one source pin to every
//		  sink pin of a net, reusing already-discovered branches
//
// ✨ Why choose fabroute?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – frozen fabrics, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – observation hooks (OnExpand) for custom instrumentation
//
// Under the hood, everything is organized under four subpackages:
//
//	fabric/    — wires, connections, tiles, pins; grid fabric generator
//	netlist/   — nets and their source/sink site pins
//	routetree/ — the route-tree abstraction and its search variant
//	astar/     — the single-net A* routing engine
//
// Quick ASCII example:
//
//	    [A]──►[B]──►[C]
//	     │           ▲
//	     └──►[D]─────┘
//
//	two equal-length paths from wire A to wire C; the router picks one
//	and returns it as a route tree rooted at A.
//
// Dive into the examples/ directory for full routing walkthroughs.
//
//	go get github.com/katalvlaran/fabroute
package fabroute
