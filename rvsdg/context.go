package rvsdg

import (
	"log/slog"

	"github.com/google/uuid"
)

// Context owns every node and region in an RVSDG graph: the node and
// region arenas, and the interning table used to hash-cons pure nodes at
// construction time (spec.md §2, "Graph context"). All handles (Node,
// User, Origin and their typed wrappers) are non-owning cursors that
// borrow from a Context.
//
// Context equality is by address only: two distinct contexts are never
// equal even if structurally identical (spec.md §4.2). Go's == on a
// *Context[S] already gives that for free, so Context never implements a
// custom Equal.
//
// A Context is not safe for concurrent use: spec.md §5 describes this core
// as single-threaded cooperative, non-suspending. All reads and mutations
// must happen on one logical owner.
type Context[S Operation] struct {
	id  uuid.UUID
	cfg Config

	nodes   []nodeData[S]
	regions []regionData
	intern  *internTable[S]
}

// New creates an empty context with interning enabled and a default
// logger.
func New[S Operation]() *Context[S] {
	return WithConfig[S](DefaultConfig())
}

// WithConfig creates an empty context with the given configuration. The
// top-level region RegionId(0) is always allocated up front, per spec.md
// §3's single-implicit-region model.
func WithConfig[S Operation](cfg Config) *Context[S] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	ctx := &Context[S]{
		id:      uuid.New(),
		cfg:     cfg,
		regions: []regionData{{sequenceIndex: 0}},
		intern:  newInternTable[S](),
	}
	return ctx
}

func (ctx *Context[S]) log() *slog.Logger {
	return ctx.cfg.Logger.With(slog.String("graph_id", ctx.id.String()))
}

// NumNodes returns the number of nodes allocated so far.
func (ctx *Context[S]) NumNodes() int { return len(ctx.nodes) }

// NumEdges returns the total number of input-port slots across every node
// (spec.md §4.2: "edge count = sum of input-slot counts").
func (ctx *Context[S]) NumEdges() int {
	n := 0
	for i := range ctx.nodes {
		n += len(ctx.nodes[i].ins)
	}
	return n
}

// ---------- bounds-checked low-level accessors ----------

func (ctx *Context[S]) nodeDataPtr(id NodeId) *nodeData[S] {
	if int(id) >= len(ctx.nodes) {
		fault(RangeFault, "node id %s out of range (have %d nodes)", id, len(ctx.nodes))
	}
	return &ctx.nodes[id]
}

func (ctx *Context[S]) regionDataPtr(id RegionId) *regionData {
	if int(id) >= len(ctx.regions) {
		fault(RangeFault, "region id %s out of range (have %d regions)", id, len(ctx.regions))
	}
	return &ctx.regions[id]
}

func (ctx *Context[S]) userSlotPtr(uid UserId) *userSlot {
	if node, ok := uid.NodeId(); ok {
		nd := ctx.nodeDataPtr(node)
		idx := uid.Index()
		if idx < 0 || idx >= len(nd.ins) {
			fault(RangeFault, "user %s out of range (node has %d input ports)", uid, len(nd.ins))
		}
		return &nd.ins[idx]
	}
	rd := ctx.regionDataPtr(uid.region)
	idx := uid.Index()
	if idx < 0 || idx >= len(rd.res) {
		fault(RangeFault, "user %s out of range (region has %d result ports)", uid, len(rd.res))
	}
	return &rd.res[idx]
}

func (ctx *Context[S]) originSlotPtr(oid OriginId) *originSlot {
	if node, ok := oid.NodeId(); ok {
		nd := ctx.nodeDataPtr(node)
		idx := oid.Index()
		if idx < 0 || idx >= len(nd.outs) {
			fault(RangeFault, "origin %s out of range (node has %d output ports)", oid, len(nd.outs))
		}
		return &nd.outs[idx]
	}
	rd := ctx.regionDataPtr(oid.region)
	idx := oid.Index()
	if idx < 0 || idx >= len(rd.args) {
		fault(RangeFault, "origin %s out of range (region has %d argument ports)", oid, len(rd.args))
	}
	return &rd.args[idx]
}

// userSlot returns a read-only copy of the slot addressed by uid.
func (ctx *Context[S]) userSlot(uid UserId) userSlot { return *ctx.userSlotPtr(uid) }

// originSlot returns a read-only copy of the slot addressed by oid.
func (ctx *Context[S]) originSlot(oid OriginId) originSlot { return *ctx.originSlotPtr(oid) }

// nodeData returns a read-only view of id's node data: its kind, its
// input/output slot counts, and its owning region. The returned value
// shares the underlying slot slices with the arena (they are read-only
// from any caller reachable through the public API), so this is cheap.
func (ctx *Context[S]) nodeData(id NodeId) nodeData[S] { return *ctx.nodeDataPtr(id) }

// ---------- handle factories ----------

// NodeRef returns a bounds-checked handle for id.
func (ctx *Context[S]) NodeRef(id NodeId) Node[S] {
	if int(id) >= len(ctx.nodes) {
		fault(RangeFault, "NodeRef(%s): out of range (have %d nodes)", id, len(ctx.nodes))
	}
	return Node[S]{ctx: ctx, id: id}
}

// UserRef returns a bounds-checked handle for id.
func (ctx *Context[S]) UserRef(id UserId) User[S] {
	ctx.userSlotPtr(id) // bounds-check
	return User[S]{ctx: ctx, id: id}
}

// OriginRef returns a bounds-checked handle for id.
func (ctx *Context[S]) OriginRef(id OriginId) Origin[S] {
	ctx.originSlotPtr(id) // bounds-check
	return Origin[S]{ctx: ctx, id: id}
}

// usersOf builds the double-ended users iterator over origin id's user
// list (spec.md §4.6).
func (ctx *Context[S]) usersOf(id OriginId) *Users[S] {
	slot := ctx.originSlot(id)
	if !slot.headSet {
		return &Users[S]{ctx: ctx, hasNext: false}
	}
	return &Users[S]{ctx: ctx, hasNext: true, first: slot.head, last: slot.tail}
}

// ---------- construction ----------

// MkNode is a convenience for a zero-input operation node: MkNode(op) ==
// NodeBuilder(op).Finish() when op has no input ports.
func (ctx *Context[S]) MkNode(op S) Node[S] {
	id := ctx.mkNodeWith(OpKind[S](op), nil)
	return Node[S]{ctx: ctx, id: id}
}

// NodeBuilder begins staged construction of an operation node (spec.md
// §4.3).
func (ctx *Context[S]) NodeBuilder(op S) *Builder[S] {
	return newBuilder(ctx, OpKind[S](op))
}

// MkNodeWith is the lowest-level constructor (spec.md §4.4): kind's
// signature must have exactly len(origins) input ports. Structured shells
// (Apply/Gamma/Omega) are constructed through this entry point directly,
// since there is no per-shell builder convenience in this core.
func (ctx *Context[S]) MkNodeWith(kind NodeKind[S], origins []OriginId) Node[S] {
	return Node[S]{ctx: ctx, id: ctx.mkNodeWith(kind, origins)}
}

// mkNodeWith implements the construction algorithm of spec.md §4.4.
func (ctx *Context[S]) mkNodeWith(kind NodeKind[S], origins []OriginId) NodeId {
	sig := kind.Sig()

	// 1. Arity check.
	if len(origins) != sig.NumInputPorts() {
		fault(ArityFault, "mk_node_with: kind declares %d input ports, got %d origins", sig.NumInputPorts(), len(origins))
	}

	const region = RegionId(0)

	// 2. Interning decision.
	if ctx.cfg.OptInterning && !sig.IsSideEffectful() {
		term := nodeTerm[S]{region: region, kind: kind, origins: encodeOrigins(origins)}
		hash := hashNodeTerm(term)
		if id, ok := ctx.intern.lookup(term, hash); ok {
			ctx.cfg.Metrics.nodeInterned()
			ctx.log().Debug("mk_node_with: interned hit", slog.Any("node", id))
			return id
		}
		id := ctx.createNode(kind, origins, region)
		ctx.intern.insert(term, hash, id)
		return id
	}

	return ctx.createNode(kind, origins, region)
}

// createNode allocates a fresh node, linking each input into its origin's
// user list, exactly as spec.md §4.4 steps 3-7 describe.
func (ctx *Context[S]) createNode(kind NodeKind[S], origins []OriginId, region RegionId) NodeId {
	sig := kind.Sig()
	nodeId := NodeId(len(ctx.nodes))

	// 4. Build input slots. Slots for this not-yet-committed node are
	// staged in a local buffer first, because an origin's current tail
	// user might itself be one of this node's own earlier input slots
	// (e.g. an operation consuming the same origin twice): that slot has
	// no home in the arena yet, so its next-pointer must be fixed up in
	// the local buffer rather than dereferenced through the arena.
	newIns := make([]userSlot, 0, len(origins))
	for i, origin := range origins {
		newUserId := InUserId(nodeId, i)

		origSlot := ctx.originSlotPtr(origin)
		var slot userSlot
		slot.origin = origin
		slot.originSet = true

		if origSlot.tailSet {
			tail := origSlot.tail
			if tailNode, ok := tail.NodeId(); ok && tailNode == nodeId {
				// Special case (spec.md §4.4 point 4): the current tail
				// is one of this node's own in-progress input slots.
				newIns[tail.Index()].next = newUserId
				newIns[tail.Index()].nextSet = true
			} else {
				tailSlot := ctx.userSlotPtr(tail)
				tailSlot.next = newUserId
				tailSlot.nextSet = true
			}
			slot.prev = tail
			slot.prevSet = true
			origSlot.tail = newUserId
		} else {
			origSlot.head = newUserId
			origSlot.headSet = true
			origSlot.tail = newUserId
			origSlot.tailSet = true
		}

		newIns = append(newIns, slot)
		ctx.cfg.Metrics.edgeLinked()
	}

	// 5. Allocate output slots, all empty.
	outs := make([]originSlot, sig.NumOutputPorts())

	// 6. Commit.
	ctx.nodes = append(ctx.nodes, nodeData[S]{
		kind:        kind,
		ins:         newIns,
		outs:        outs,
		outerRegion: region,
	})

	ctx.cfg.Metrics.nodeCreated()
	ctx.log().Debug("mk_node_with: created node", slog.Any("node", nodeId), slog.Int("ins", len(newIns)), slog.Int("outs", len(outs)))

	return nodeId
}

// CreateNode allocates a node of the given kind with every input and
// output slot left unconnected, bypassing interning entirely (spec.md
// §4.5's escape hatch: "a node is created without inputs and wired
// afterward"). Each returned input slot must be wired exactly once, via
// ConnectPorts or a typed handle's Connect, before the graph is
// considered well-formed; nothing in this package enforces that
// eventually, matching the original's own caveat that this path does no
// deduplication.
func (ctx *Context[S]) CreateNode(kind NodeKind[S]) Node[S] {
	sig := kind.Sig()
	nodeId := NodeId(len(ctx.nodes))
	ctx.nodes = append(ctx.nodes, nodeData[S]{
		kind:        kind,
		ins:         make([]userSlot, sig.NumInputPorts()),
		outs:        make([]originSlot, sig.NumOutputPorts()),
		outerRegion: RegionId(0),
	})
	ctx.cfg.Metrics.nodeCreated()
	ctx.log().Debug("create_node: allocated unconnected node", slog.Any("node", nodeId))
	return Node[S]{ctx: ctx, id: nodeId}
}

// ConnectPorts is the manual-wiring escape hatch of spec.md §4.5: it links
// an as-yet-unconnected input slot to an origin, appending it to the tail
// of that origin's user list. It is fatal to call this on an
// already-connected input slot, or to connect a value port to a state
// port or vice versa. Unlike the typed ValUser/StUser.Connect, this entry
// point takes untyped ids, so the value/state check has to happen at
// runtime here instead of at compile time.
func (ctx *Context[S]) ConnectPorts(user UserId, origin OriginId) {
	if ctx.isStateUser(user) != ctx.isStateOrigin(origin) {
		fault(PortTypeFault, "connect_ports: user %s and origin %s are not both value or both state ports", user, origin)
	}
	ctx.connectPorts(user, origin)
}

// isStateUser reports whether the node-input slot addressed by uid falls
// in its node's state-port range (false for region Res ports, which this
// core never allocates).
func (ctx *Context[S]) isStateUser(uid UserId) bool {
	node, ok := uid.NodeId()
	if !ok {
		return false
	}
	sig := ctx.nodeData(node).kind.Sig()
	return uid.Index() >= sig.ValIns
}

// isStateOrigin reports whether the node-output slot addressed by oid
// falls in its node's state-port range (false for region Arg ports, which
// this core never allocates).
func (ctx *Context[S]) isStateOrigin(oid OriginId) bool {
	node, ok := oid.NodeId()
	if !ok {
		return false
	}
	sig := ctx.nodeData(node).kind.Sig()
	return oid.Index() >= sig.ValOuts
}

func (ctx *Context[S]) connectPorts(user UserId, origin OriginId) {
	userSlot := ctx.userSlotPtr(user)
	if userSlot.originSet || userSlot.prevSet || userSlot.nextSet {
		fault(DoubleConnectFault, "connect_ports: user %s is already connected", user)
	}

	userSlot.origin = origin
	userSlot.originSet = true

	origSlot := ctx.originSlotPtr(origin)
	if origSlot.tailSet {
		tail := origSlot.tail
		ctx.userSlotPtr(tail).next = user
		ctx.userSlotPtr(tail).nextSet = true
		userSlot.prev = tail
		userSlot.prevSet = true
		origSlot.tail = user
	} else {
		origSlot.head = user
		origSlot.headSet = true
		origSlot.tail = user
		origSlot.tailSet = true
	}

	ctx.cfg.Metrics.edgeLinked()
	ctx.log().Debug("connect_ports", slog.Any("user", user), slog.Any("origin", origin))
}

// MkRegionForNode is declared per spec.md §3/§9 ("Apply/Gamma/Omega shells
// are declared in the data model but region creation is unimplemented in
// the source") but is not implemented in this core: calling it always
// panics with a RegionCreationUnsupportedFault. See DESIGN.md's Open
// Questions for why this stays an explicit panic rather than a silent
// no-op.
func (ctx *Context[S]) MkRegionForNode(node NodeId, regionSig struct{ ValArgs, ValRes, StArgs, StRes int }) RegionId {
	fault(RegionCreationUnsupportedFault, "mk_region_for_node is not implemented in this core (node %s)", node)
	panic("unreachable")
}
