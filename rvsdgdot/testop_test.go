package rvsdgdot_test

import (
	"fmt"

	"github.com/feroldi/vsdg/rvsdg"
)

// dotOp is the small load/store operation vocabulary used to exercise the
// printer: enough to build the S5-style straight-line memory program the
// DOT output format is specified against.
type dotOp struct {
	kind opKind
	lit  int
}

type opKind int

const (
	litKind opKind = iota
	binAddKind
	loadKind
	storeKind
	stKind
)

func lit(v int) dotOp       { return dotOp{kind: litKind, lit: v} }
func binAdd() dotOp         { return dotOp{kind: binAddKind} }
func load() dotOp           { return dotOp{kind: loadKind} }
func store() dotOp          { return dotOp{kind: storeKind} }
func initialState() dotOp   { return dotOp{kind: stKind} }

func (o dotOp) Sig() rvsdg.Signature {
	switch o.kind {
	case litKind:
		return rvsdg.Signature{ValOuts: 1}
	case binAddKind:
		return rvsdg.Signature{ValIns: 2, ValOuts: 1}
	case loadKind:
		return rvsdg.Signature{ValIns: 1, StIns: 1, ValOuts: 1}
	case storeKind:
		return rvsdg.Signature{ValIns: 2, StIns: 1, StOuts: 1}
	case stKind:
		return rvsdg.Signature{StOuts: 1}
	default:
		panic("unreachable")
	}
}

func (o dotOp) String() string {
	switch o.kind {
	case litKind:
		return fmt.Sprintf("Lit(%d)", o.lit)
	case binAddKind:
		return "BinAdd"
	case loadKind:
		return "Load"
	case storeKind:
		return "Store"
	case stKind:
		return "St"
	default:
		return "?"
	}
}
