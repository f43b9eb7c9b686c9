package rvsdg

// Builder stages the construction of a single node across several calls
// before committing it, per spec.md §4.3. Operands and State connect
// origins by position, in the order value ports then state ports appear
// in the node's declared signature; Finish validates the staged buffer's
// size against that signature and performs the actual allocation through
// Context.mkNodeWith.
//
// A Builder is single-use: call Finish exactly once.
type Builder[S Operation] struct {
	ctx  *Context[S]
	kind NodeKind[S]

	valOrigins []OriginId
	stOrigins  []OriginId
}

func newBuilder[S Operation](ctx *Context[S], kind NodeKind[S]) *Builder[S] {
	return &Builder[S]{ctx: ctx, kind: kind}
}

// Operand appends a single value origin to the staged input list.
func (b *Builder[S]) Operand(origin ValOrigin[S]) *Builder[S] {
	b.checkContext(origin.ctx)
	b.valOrigins = append(b.valOrigins, origin.id)
	return b
}

// Operands appends every value origin in origins, in order.
func (b *Builder[S]) Operands(origins ...ValOrigin[S]) *Builder[S] {
	for _, o := range origins {
		b.Operand(o)
	}
	return b
}

// State appends a single state origin to the staged input list.
func (b *Builder[S]) State(origin StOrigin[S]) *Builder[S] {
	b.checkContext(origin.ctx)
	b.stOrigins = append(b.stOrigins, origin.id)
	return b
}

// States appends every state origin in origins, in order.
func (b *Builder[S]) States(origins ...StOrigin[S]) *Builder[S] {
	for _, o := range origins {
		b.State(o)
	}
	return b
}

func (b *Builder[S]) checkContext(other *Context[S]) {
	if b.ctx != other {
		fault(ContextFault, "builder: operand belongs to a different context")
	}
}

// Finish validates the staged operand/state counts against the node
// kind's signature and commits the node, in one call to
// Context.mkNodeWith (spec.md §4.4). Fatal on arity mismatch, exactly as
// a direct MkNodeWith call with the wrong number of origins would be.
func (b *Builder[S]) Finish() Node[S] {
	sig := b.kind.Sig()
	if len(b.valOrigins) != sig.ValIns {
		fault(ArityFault, "builder.Finish: kind declares %d value-input ports, got %d operands", sig.ValIns, len(b.valOrigins))
	}
	if len(b.stOrigins) != sig.StIns {
		fault(ArityFault, "builder.Finish: kind declares %d state-input ports, got %d states", sig.StIns, len(b.stOrigins))
	}

	origins := make([]OriginId, 0, len(b.valOrigins)+len(b.stOrigins))
	origins = append(origins, b.valOrigins...)
	origins = append(origins, b.stOrigins...)

	id := b.ctx.mkNodeWith(b.kind, origins)
	return Node[S]{ctx: b.ctx, id: id}
}
