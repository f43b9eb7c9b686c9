package rvsdg

import "fmt"

// NodeId is a dense, arena-stable index for a node in a Context. NodeIds
// are never reused or reassigned for the lifetime of the context.
type NodeId uint32

// RegionId is a dense, arena-stable index for a region in a Context. This
// core only ever allocates RegionId(0), the implicit top-level region.
type RegionId uint32

func (id NodeId) String() string   { return fmt.Sprintf("n%d", uint32(id)) }
func (id RegionId) String() string { return fmt.Sprintf("r%d", uint32(id)) }

// userKind discriminates the two UserId variants.
type userKind uint8

const (
	userIn userKind = iota
	userRes
)

// UserId addresses an input-port slot ("user" slot): either an input of a
// node (In) or a result port of a region (Res). This core never
// constructs a Res variant, since no region other than RegionId(0) can be
// created, but the variant is kept so the identifier shape matches the
// full RVSDG data model spec.md §3 describes.
type UserId struct {
	kind   userKind
	node   NodeId
	region RegionId
	index  int
}

// InUserId builds a UserId addressing input port index of node.
func InUserId(node NodeId, index int) UserId {
	return UserId{kind: userIn, node: node, index: index}
}

// ResUserId builds a UserId addressing result port index of region.
func ResUserId(region RegionId, index int) UserId {
	return UserId{kind: userRes, region: region, index: index}
}

// IsIn reports whether u addresses a node input port.
func (u UserId) IsIn() bool { return u.kind == userIn }

// IsRes reports whether u addresses a region result port.
func (u UserId) IsRes() bool { return u.kind == userRes }

// NodeId returns the owning node and true if u is an In variant.
func (u UserId) NodeId() (NodeId, bool) {
	if u.kind != userIn {
		return 0, false
	}
	return u.node, true
}

// Index returns the port index addressed by u, regardless of variant.
func (u UserId) Index() int { return u.index }

func (u UserId) String() string {
	switch u.kind {
	case userIn:
		return fmt.Sprintf("In{node:%s, index:%d}", u.node, u.index)
	default:
		return fmt.Sprintf("Res{region:%s, index:%d}", u.region, u.index)
	}
}

// originKind discriminates the two OriginId variants.
type originKind uint8

const (
	originOut originKind = iota
	originArg
)

// OriginId addresses an output-port slot ("origin" slot): either the
// output of a node (Out) or an argument port of a region (Arg). This core
// never constructs an Arg variant for the same reason UserId never
// constructs Res: no additional regions can be created yet.
type OriginId struct {
	kind   originKind
	node   NodeId
	region RegionId
	index  int
}

// OutOriginId builds an OriginId addressing output port index of node.
func OutOriginId(node NodeId, index int) OriginId {
	return OriginId{kind: originOut, node: node, index: index}
}

// ArgOriginId builds an OriginId addressing argument port index of region.
func ArgOriginId(region RegionId, index int) OriginId {
	return OriginId{kind: originArg, region: region, index: index}
}

// IsOut reports whether o addresses a node output port.
func (o OriginId) IsOut() bool { return o.kind == originOut }

// IsArg reports whether o addresses a region argument port.
func (o OriginId) IsArg() bool { return o.kind == originArg }

// NodeId returns the producing node and true if o is an Out variant.
func (o OriginId) NodeId() (NodeId, bool) {
	if o.kind != originOut {
		return 0, false
	}
	return o.node, true
}

// Index returns the port index addressed by o, regardless of variant.
func (o OriginId) Index() int { return o.index }

func (o OriginId) String() string {
	switch o.kind {
	case originOut:
		return fmt.Sprintf("Out{node:%s, index:%d}", o.node, o.index)
	default:
		return fmt.Sprintf("Arg{region:%s, index:%d}", o.region, o.index)
	}
}
