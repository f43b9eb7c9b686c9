package rvsdg

// Node is a copyable, comparable cursor referring to a node owned by ctx.
// Node carries no storage of its own; every accessor reaches back into
// the owning Context's arena.
type Node[S Operation] struct {
	ctx *Context[S]
	id  NodeId
}

// Id returns the node's identifier.
func (n Node[S]) Id() NodeId { return n.id }

// Kind returns the node's immutable kind.
func (n Node[S]) Kind() NodeKind[S] {
	return n.ctx.nodeData(n.id).kind
}

// Sig returns the node's signature (derived from its kind).
func (n Node[S]) Sig() Signature { return n.Kind().Sig() }

// ValIn returns the typed value-input handle at port, bounds- and
// type-checked against the node's signature.
func (n Node[S]) ValIn(port int) ValUser[S] {
	sig := n.Sig()
	if port < 0 || port >= sig.ValIns {
		fault(RangeFault, "ValIn(%d): node %s has %d value-input ports", port, n.id, sig.ValIns)
	}
	return ValUser[S]{User[S]{ctx: n.ctx, id: InUserId(n.id, port)}}
}

// ValOut returns the typed value-output handle at port, bounds- and
// type-checked against the node's signature.
func (n Node[S]) ValOut(port int) ValOrigin[S] {
	sig := n.Sig()
	if port < 0 || port >= sig.ValOuts {
		fault(RangeFault, "ValOut(%d): node %s has %d value-output ports", port, n.id, sig.ValOuts)
	}
	return ValOrigin[S]{Origin[S]{ctx: n.ctx, id: OutOriginId(n.id, port)}}
}

// StIn returns the typed state-input handle at port. State ports are
// addressed after all value ports, per spec.md §4.7.
func (n Node[S]) StIn(port int) StUser[S] {
	sig := n.Sig()
	if port < 0 || port >= sig.StIns {
		fault(RangeFault, "StIn(%d): node %s has %d state-input ports", port, n.id, sig.StIns)
	}
	return StUser[S]{User[S]{ctx: n.ctx, id: InUserId(n.id, sig.ValIns+port)}}
}

// StOut returns the typed state-output handle at port.
func (n Node[S]) StOut(port int) StOrigin[S] {
	sig := n.Sig()
	if port < 0 || port >= sig.StOuts {
		fault(RangeFault, "StOut(%d): node %s has %d state-output ports", port, n.id, sig.StOuts)
	}
	return StOrigin[S]{Origin[S]{ctx: n.ctx, id: OutOriginId(n.id, sig.ValOuts+port)}}
}

// User is an untyped, copyable cursor addressing one input-port slot.
type User[S Operation] struct {
	ctx *Context[S]
	id  UserId
}

// Id returns the user's identifier.
func (u User[S]) Id() UserId { return u.id }

// IsConnected reports whether this user slot currently has an origin,
// without faulting on an unconnected slot the way Origin does. Consumers
// like the DOT printer need to skip edges for inputs that were never
// wired (e.g. after S6-style manual construction leaves some unconnected
// momentarily).
func (u User[S]) IsConnected() bool {
	return u.ctx.userSlot(u.id).originSet
}

// Origin returns the origin this user is currently connected to. Calling
// Origin on an unconnected user is a programmer fault (spec.md §7 doesn't
// name it explicitly, but an unconnected slot has no meaningful origin to
// return, so this is treated like any other invalid-state access).
func (u User[S]) Origin() Origin[S] {
	slot := u.ctx.userSlot(u.id)
	if !slot.originSet {
		fault(RangeFault, "Origin(): user %s is not connected", u.id)
	}
	return Origin[S]{ctx: u.ctx, id: slot.origin}
}

// Origin is an untyped, copyable cursor addressing one output-port slot.
type Origin[S Operation] struct {
	ctx *Context[S]
	id  OriginId
}

// Id returns the origin's identifier.
func (o Origin[S]) Id() OriginId { return o.id }

// Producer returns the node that owns this origin. Calling Producer on a
// region-argument origin is fatal (spec.md §4.7, §7): this core has no
// region arguments to resolve to a producing node.
func (o Origin[S]) Producer() Node[S] {
	node, ok := o.id.NodeId()
	if !ok {
		fault(IllegalProducerFault, "Producer(): origin %s is a region argument, not a node output", o.id)
	}
	return Node[S]{ctx: o.ctx, id: node}
}

// Users returns a double-ended iterator walking every user connected to
// this origin, in connection order (spec.md §4.6).
func (o Origin[S]) Users() *Users[S] {
	return o.ctx.usersOf(o.id)
}

// ValUser is a value-typed input-port handle: it can only be connected to
// a ValOrigin (spec.md §4.7).
type ValUser[S Operation] struct{ User[S] }

// Origin returns the value origin this user is connected to.
func (u ValUser[S]) Origin() ValOrigin[S] {
	return ValOrigin[S]{u.User.Origin()}
}

// Connect wires this value user to val_origin via the manual
// escape-hatch (spec.md §4.5). Fatal if the ports are of different
// contexts or if this user is already connected. Value/state port-type
// mismatches are not a runtime concern here: ValUser only ever accepts a
// ValOrigin at compile time, so PortTypeFault can only be raised through
// the untyped Context.ConnectPorts escape hatch.
func (u ValUser[S]) Connect(valOrigin ValOrigin[S]) {
	if u.ctx != valOrigin.ctx {
		fault(ContextFault, "Connect: user %s and origin %s belong to different contexts", u.id, valOrigin.id)
	}
	u.ctx.connectPorts(u.id, valOrigin.id)
}

// StUser is a state-typed input-port handle: it can only be connected to
// a StOrigin.
type StUser[S Operation] struct{ User[S] }

// Origin returns the state origin this user is connected to.
func (u StUser[S]) Origin() StOrigin[S] {
	return StOrigin[S]{u.User.Origin()}
}

// Connect wires this state user to stOrigin via the manual escape hatch.
// Fatal if the ports are of different contexts or if this user is already
// connected.
func (u StUser[S]) Connect(stOrigin StOrigin[S]) {
	if u.ctx != stOrigin.ctx {
		fault(ContextFault, "Connect: user %s and origin %s belong to different contexts", u.id, stOrigin.id)
	}
	u.ctx.connectPorts(u.id, stOrigin.id)
}

// ValOrigin is a value-typed output-port handle.
type ValOrigin[S Operation] struct{ Origin[S] }

// Users returns a double-ended iterator over this origin's value users.
func (o ValOrigin[S]) Users() *ValUsers[S] {
	return &ValUsers[S]{o.Origin.Users()}
}

// Producer returns the node that produces this value.
func (o ValOrigin[S]) Producer() Node[S] { return o.Origin.Producer() }

// StOrigin is a state-typed output-port handle.
type StOrigin[S Operation] struct{ Origin[S] }

// Users returns a double-ended iterator over this origin's state users.
func (o StOrigin[S]) Users() *StUsers[S] {
	return &StUsers[S]{o.Origin.Users()}
}

// Producer returns the node that produces this state edge.
func (o StOrigin[S]) Producer() Node[S] { return o.Origin.Producer() }
