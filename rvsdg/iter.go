package rvsdg

// Users is a double-ended iterator walking the doubly-linked user list
// rooted at an origin, head-to-tail via Next or tail-to-head via NextBack
// (spec.md §4.6). Forward and backward calls may be interleaved; the pair
// of endpoints is a half-open invariant that always meets in the middle
// without yielding any element twice.
//
// Mutating the graph while a Users iterator is live is a caller contract
// violation, not something this package enforces structurally — spec.md
// §5 is explicit that this is a caller contract, since the iterator holds
// only the two endpoint ids, not a lock.
type Users[S Operation] struct {
	ctx     *Context[S]
	hasNext bool
	first   UserId
	last    UserId
}

// Next yields the next user in head-to-tail order, or (zero, false) once
// exhausted.
func (it *Users[S]) Next() (User[S], bool) {
	if !it.hasNext {
		return User[S]{}, false
	}
	first, last := it.first, it.last
	if first != last {
		if slot := it.ctx.userSlot(first); slot.nextSet {
			it.first = slot.next
		} else {
			it.hasNext = false
		}
	} else {
		it.hasNext = false
	}
	return User[S]{ctx: it.ctx, id: first}, true
}

// NextBack yields the next user in tail-to-head order, or (zero, false)
// once exhausted.
func (it *Users[S]) NextBack() (User[S], bool) {
	if !it.hasNext {
		return User[S]{}, false
	}
	first, last := it.first, it.last
	if first != last {
		if slot := it.ctx.userSlot(last); slot.prevSet {
			it.last = slot.prev
		} else {
			it.hasNext = false
		}
	} else {
		it.hasNext = false
	}
	return User[S]{ctx: it.ctx, id: last}, true
}

// ValUsers is the value-typed projection of Users, yielding ValUser
// instead of the untyped User.
type ValUsers[S Operation] struct{ *Users[S] }

// Next yields the next value user in head-to-tail order.
func (it *ValUsers[S]) Next() (ValUser[S], bool) {
	u, ok := it.Users.Next()
	return ValUser[S]{u}, ok
}

// NextBack yields the next value user in tail-to-head order.
func (it *ValUsers[S]) NextBack() (ValUser[S], bool) {
	u, ok := it.Users.NextBack()
	return ValUser[S]{u}, ok
}

// StUsers is the state-typed projection of Users, yielding StUser instead
// of the untyped User.
type StUsers[S Operation] struct{ *Users[S] }

// Next yields the next state user in head-to-tail order.
func (it *StUsers[S]) Next() (StUser[S], bool) {
	u, ok := it.Users.Next()
	return StUser[S]{u}, ok
}

// NextBack yields the next state user in tail-to-head order.
func (it *StUsers[S]) NextBack() (StUser[S], bool) {
	u, ok := it.Users.NextBack()
	return StUser[S]{u}, ok
}
