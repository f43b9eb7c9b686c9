package rvsdgdot_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/feroldi/vsdg/rvsdg"
	"github.com/feroldi/vsdg/rvsdgdot"
)

// The program under test is the straight-line memory sequence
// x := 100; y := 104; *x := *x + 4; *y := *y + 5, built directly against
// the value/state arena so the printer sees exactly the node order a real
// embedder's lowering pass would produce.
var _ = Describe("Fprint", func() {
	It("renders the load/store scenario exactly", func() {
		ctx := rvsdg.New[dotOp]()

		nx := ctx.MkNode(lit(100))
		ny := ctx.MkNode(lit(104))
		n4 := ctx.MkNode(lit(4))
		n5 := ctx.MkNode(lit(5))
		ns := ctx.MkNode(initialState())

		l1 := ctx.NodeBuilder(load()).Operand(nx.ValOut(0)).State(ns.StOut(0)).Finish()
		add4 := ctx.NodeBuilder(binAdd()).Operands(l1.ValOut(0), n4.ValOut(0)).Finish()
		store1 := ctx.NodeBuilder(store()).Operands(nx.ValOut(0), add4.ValOut(0)).State(ns.StOut(0)).Finish()

		l2 := ctx.NodeBuilder(load()).Operand(ny.ValOut(0)).State(store1.StOut(0)).Finish()
		add5 := ctx.NodeBuilder(binAdd()).Operands(l2.ValOut(0), n5.ValOut(0)).Finish()
		store2 := ctx.NodeBuilder(store()).Operands(ny.ValOut(0), add5.ValOut(0)).State(store1.StOut(0)).Finish()
		_ = store2

		const want = `digraph rvsdg {
    node [shape=record]
    edge [arrowhead=none]
    n0 [label="{{Lit(100)}|{<o0>0}}"]
    n1 [label="{{Lit(104)}|{<o0>0}}"]
    n2 [label="{{Lit(4)}|{<o0>0}}"]
    n3 [label="{{Lit(5)}|{<o0>0}}"]
    n4 [label="{{St}|{<o0>0}}"]
    n5 [label="{{<i0>0|<i1>1}|{Load}|{<o0>0}}"]
    n0:o0 -> n5:i0 [color=blue]
    n4:o0 -> n5:i1 [style=dashed, color=red]
    n6 [label="{{<i0>0|<i1>1}|{BinAdd}|{<o0>0}}"]
    n5:o0 -> n6:i0 [color=blue]
    n2:o0 -> n6:i1 [color=blue]
    n7 [label="{{<i0>0|<i1>1|<i2>2}|{Store}|{<o0>0}}"]
    n0:o0 -> n7:i0 [color=blue]
    n6:o0 -> n7:i1 [color=blue]
    n4:o0 -> n7:i2 [style=dashed, color=red]
    n8 [label="{{<i0>0|<i1>1}|{Load}|{<o0>0}}"]
    n1:o0 -> n8:i0 [color=blue]
    n7:o0 -> n8:i1 [style=dashed, color=red]
    n9 [label="{{<i0>0|<i1>1}|{BinAdd}|{<o0>0}}"]
    n8:o0 -> n9:i0 [color=blue]
    n3:o0 -> n9:i1 [color=blue]
    n10 [label="{{<i0>0|<i1>1|<i2>2}|{Store}|{<o0>0}}"]
    n1:o0 -> n10:i0 [color=blue]
    n9:o0 -> n10:i1 [color=blue]
    n7:o0 -> n10:i2 [style=dashed, color=red]
}
`
		Expect(rvsdgdot.Sprint(ctx)).To(Equal(want))
	})
})
