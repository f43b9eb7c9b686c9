package rvsdg

import "fmt"

// FaultKind classifies a programmer fault, per the taxonomy spec.md §7
// lays out. Every fault listed there indicates a bug in the embedder, not
// a recoverable runtime condition, so the core panics rather than
// returning an error; FaultKind lets a test harness (or a recovering
// caller who really wants to) distinguish which contract was broken.
type FaultKind uint8

const (
	// ArityFault: origin count != declared input-port count.
	ArityFault FaultKind = iota
	// PortTypeFault: connecting a value user to a state origin or vice versa.
	PortTypeFault
	// ContextFault: connecting ports or handles from different contexts.
	ContextFault
	// DoubleConnectFault: connect on an already-linked input slot.
	DoubleConnectFault
	// RangeFault: an index outside a port or slot's bounds.
	RangeFault
	// IllegalProducerFault: Producer() called on a region-argument origin.
	IllegalProducerFault
	// RegionCreationUnsupportedFault: mk_region_for_node is not
	// implemented in this core; see DESIGN.md's Open Questions.
	RegionCreationUnsupportedFault
)

func (k FaultKind) String() string {
	switch k {
	case ArityFault:
		return "ArityFault"
	case PortTypeFault:
		return "PortTypeFault"
	case ContextFault:
		return "ContextFault"
	case DoubleConnectFault:
		return "DoubleConnectFault"
	case RangeFault:
		return "RangeFault"
	case IllegalProducerFault:
		return "IllegalProducerFault"
	case RegionCreationUnsupportedFault:
		return "RegionCreationUnsupportedFault"
	default:
		return "UnknownFault"
	}
}

// Fault is the panic value raised for every programmer-fault condition
// spec.md §7 describes. It implements error so a recovering caller can use
// errors.As, but it is never returned from a function in this package —
// it is always panicked.
type Fault struct {
	Kind    FaultKind
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("rvsdg: %s: %s", f.Kind, f.Message)
}

// fault panics with a *Fault of the given kind, formatting Message like
// fmt.Sprintf.
func fault(kind FaultKind, format string, args ...any) {
	panic(&Fault{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
