package rvsdg_test

import (
	"fmt"

	"github.com/feroldi/vsdg/rvsdg"
)

// testOp is the small operation vocabulary the package's tests are built
// over: a handful of literal/arithmetic/memory shapes, enough to exercise
// every signature shape (pure zero-input, pure multi-input, and
// side-effectful) without pulling in a real embedder.
type testOp struct {
	kind opKind
	lit  int
}

type opKind int

const (
	litKind opKind = iota
	negKind
	binAddKind
	loadKind
	storeKind
	statefulKind
	stKind
)

func lit(v int) testOp     { return testOp{kind: litKind, lit: v} }
func neg() testOp          { return testOp{kind: negKind} }
func binAdd() testOp       { return testOp{kind: binAddKind} }
func load() testOp         { return testOp{kind: loadKind} }
func store() testOp        { return testOp{kind: storeKind} }
func stateful() testOp     { return testOp{kind: statefulKind} }
func initialState() testOp { return testOp{kind: stKind} }

// Sig implements rvsdg.Operation.
func (o testOp) Sig() rvsdg.Signature {
	switch o.kind {
	case litKind:
		return rvsdg.Signature{ValOuts: 1}
	case negKind:
		return rvsdg.Signature{ValIns: 1, ValOuts: 1}
	case binAddKind:
		return rvsdg.Signature{ValIns: 2, ValOuts: 1}
	case loadKind:
		// Pure: depends on a state origin for sequencing but produces no
		// new one, so it stays eligible for interning.
		return rvsdg.Signature{ValIns: 1, StIns: 1, ValOuts: 1}
	case storeKind:
		return rvsdg.Signature{ValIns: 2, StIns: 1, StOuts: 1}
	case statefulKind:
		return rvsdg.Signature{ValIns: 1, StOuts: 1}
	case stKind:
		return rvsdg.Signature{StOuts: 1}
	default:
		panic("unreachable")
	}
}

func (o testOp) String() string {
	switch o.kind {
	case litKind:
		return fmt.Sprintf("Lit(%d)", o.lit)
	case negKind:
		return "Neg"
	case binAddKind:
		return "BinAdd"
	case loadKind:
		return "Load"
	case storeKind:
		return "Store"
	case statefulKind:
		return "Stateful"
	case stKind:
		return "St"
	default:
		return "?"
	}
}
