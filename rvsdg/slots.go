package rvsdg

// userSlot is the storage behind one input-port ("user") slot: spec.md §3
// describes it as holding the OriginId it is connected to (or empty during
// construction) plus prev/next UserIds forming the intrusive doubly-linked
// list of all users sharing that origin. The *Set fields stand in for the
// original's Cell<Option<T>> — Go has no null state for a value struct, so
// "empty" is tracked explicitly rather than with a sentinel id.
type userSlot struct {
	origin    OriginId
	originSet bool

	prev    UserId
	prevSet bool

	next    UserId
	nextSet bool
}

// originSlot is the storage behind one output-port ("origin") slot:
// spec.md §3 describes it as holding the head and tail UserId of its user
// list, both empty when there are no users yet.
type originSlot struct {
	head    UserId
	headSet bool

	tail    UserId
	tailSet bool
}

// nodeData is the arena-resident record for one node (spec.md §3). kind is
// immutable after creation; ins/outs are sized from kind's signature at
// construction and never resized afterward. innerRegions is always empty
// in this core (spec.md §9: region creation is unimplemented), kept as a
// field only so the shape of the data model matches the full spec.
type nodeData[S Operation] struct {
	kind         NodeKind[S]
	ins          []userSlot
	outs         []originSlot
	outerRegion  RegionId
	innerRegions innerRegionList
}

// innerRegionList is the (always-empty, in this core) sibling-list head
// spec.md §3 reserves for structured nodes' child regions.
type innerRegionList struct {
	first    RegionId
	last     RegionId
	nonEmpty bool
}

// regionData is the arena-resident record for one region (spec.md §3).
// This core only ever populates RegionId(0) — the implicit top-level
// region — with empty argument and result port sequences, since Omega's
// signature is empty (see signature.go) and no node can yet acquire a
// child region.
type regionData struct {
	sequenceIndex int
	args          []originSlot
	res           []userSlot

	prevRegion    RegionId
	prevRegionSet bool
	nextRegion    RegionId
	nextRegionSet bool
}
