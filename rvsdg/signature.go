package rvsdg

// Signature is the 4-tuple (value-ins, value-outs, state-ins, state-outs)
// of a node kind, as spec.md §2/§4.1 defines it.
type Signature struct {
	ValIns  int
	ValOuts int
	StIns   int
	StOuts  int
}

// NumInputPorts returns the total number of input-port slots a node with
// this signature has (value ports first, then state ports).
func (s Signature) NumInputPorts() int { return s.ValIns + s.StIns }

// NumOutputPorts returns the total number of output-port slots a node with
// this signature has (value ports first, then state ports).
func (s Signature) NumOutputPorts() int { return s.ValOuts + s.StOuts }

// IsSideEffectful reports whether a node with this signature must never be
// interned: any signature with at least one state output (spec.md §2,
// invariant 5).
func (s Signature) IsSideEffectful() bool { return s.StOuts > 0 }

// Operation is the contract an embedder's operation vocabulary S must
// satisfy (spec.md §6, "External Interfaces"). S must be comparable so
// that structurally-equal pure nodes can be deduplicated by the interning
// table, and so handles built over S remain simple, copyable values —
// Go's built-in struct/value equality stands in for the original's
// derived Eq/Hash/Clone; "debug rendering" is satisfied for any S by the
// fmt package's %v verb (S may additionally implement fmt.Stringer for a
// nicer rendering, used by rvsdgdot).
type Operation interface {
	comparable

	// Sig returns this operation's signature.
	Sig() Signature
}

// kindTag discriminates the four NodeKind variants spec.md §3/§6 define:
// a wrapped operation, or one of the three structured shells.
type kindTag uint8

const (
	kindOp kindTag = iota
	kindApply
	kindGamma
	kindOmega
)

// ApplySig is the structured-node signature for an Apply node (spec.md
// §4.1): applies a function value to its arguments, propagating the
// region's results as the node's outputs.
type ApplySig struct {
	ArgValIns      int
	ArgStIns       int
	RegionValRes   int
	RegionStRes    int
}

// Sig derives the Apply node's port-count signature. The function itself
// occupies value-input slot 0, ahead of the argument inputs.
func (a ApplySig) Sig() Signature {
	return Signature{
		ValIns:  1 + a.ArgValIns,
		StIns:   a.ArgStIns,
		ValOuts: a.RegionValRes,
		StOuts:  a.RegionStRes,
	}
}

// GammaSig is the structured-node signature for a Gamma node (spec.md
// §4.1): a multi-way, region-bodied conditional.
type GammaSig struct {
	ValIns  int
	ValOuts int
	StIns   int
	StOuts  int
}

// Sig derives the Gamma node's port-count signature. The predicate
// occupies value-input slot 0, ahead of the declared value inputs.
func (g GammaSig) Sig() Signature {
	return Signature{
		ValIns:  1 + g.ValIns,
		ValOuts: g.ValOuts,
		StIns:   g.StIns,
		StOuts:  g.StOuts,
	}
}

// OmegaSig is the structured-node signature for the top-level Omega shell
// (spec.md §4.1, §9). Its Sig is always empty: the source this spec is
// drawn from has no representation for imports/exports as ports, and
// spec.md §9 leaves that unspecified rather than guessed at here.
type OmegaSig struct {
	Imports int
	Exports int
}

// Sig always returns the zero Signature for Omega; see the Open Questions
// section of DESIGN.md for why Imports/Exports don't participate.
func (OmegaSig) Sig() Signature { return Signature{} }

// NodeKind is the closed set of node shapes a node in this core may carry:
// either a wrapped embedder operation, or one of the three structured
// shells (Apply, Gamma, Omega). NodeKind is comparable whenever S is,
// which lets the interning table (intern.go) compare it directly with ==
// as part of a nodeTerm key.
type NodeKind[S Operation] struct {
	tag   kindTag
	op    S
	apply ApplySig
	gamma GammaSig
	omega OmegaSig
}

// OpKind wraps an embedder operation as a NodeKind.
func OpKind[S Operation](op S) NodeKind[S] {
	return NodeKind[S]{tag: kindOp, op: op}
}

// ApplyKind wraps an ApplySig as a NodeKind.
func ApplyKind[S Operation](sig ApplySig) NodeKind[S] {
	return NodeKind[S]{tag: kindApply, apply: sig}
}

// GammaKind wraps a GammaSig as a NodeKind.
func GammaKind[S Operation](sig GammaSig) NodeKind[S] {
	return NodeKind[S]{tag: kindGamma, gamma: sig}
}

// OmegaKind wraps an OmegaSig as a NodeKind.
func OmegaKind[S Operation](sig OmegaSig) NodeKind[S] {
	return NodeKind[S]{tag: kindOmega, omega: sig}
}

// Sig dispatches to the active variant's signature derivation.
func (k NodeKind[S]) Sig() Signature {
	switch k.tag {
	case kindOp:
		return k.op.Sig()
	case kindApply:
		return k.apply.Sig()
	case kindGamma:
		return k.gamma.Sig()
	default:
		return k.omega.Sig()
	}
}

// Op returns the wrapped operation and true if k is an operation node.
func (k NodeKind[S]) Op() (S, bool) {
	if k.tag == kindOp {
		return k.op, true
	}
	var zero S
	return zero, false
}

// Apply returns the Apply signature and true if k is an Apply shell.
func (k NodeKind[S]) Apply() (ApplySig, bool) {
	return k.apply, k.tag == kindApply
}

// Gamma returns the Gamma signature and true if k is a Gamma shell.
func (k NodeKind[S]) Gamma() (GammaSig, bool) {
	return k.gamma, k.tag == kindGamma
}

// Omega returns the Omega signature and true if k is an Omega shell.
func (k NodeKind[S]) Omega() (OmegaSig, bool) {
	return k.omega, k.tag == kindOmega
}

// IsSideEffectful reports whether k's signature has at least one state
// output, the sole condition gating interning (spec.md §2, invariant 5).
func (k NodeKind[S]) IsSideEffectful() bool { return k.Sig().IsSideEffectful() }
